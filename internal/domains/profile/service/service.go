package service

import (
	"context"
	"fmt"
	"path"
	"venuely/config"
	"venuely/infras/otel"
	"venuely/infras/s3"
	"venuely/internal/domains/profile/model"
	"venuely/internal/domains/profile/model/dto"
	"venuely/internal/domains/profile/repository"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/constant"
	"venuely/shared/failure"
	"venuely/shared/media"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProfile = "profile:get"

	avatarDirectory = "avatars"
)

type Profile interface {
	GetMe(ctx context.Context) (dto.ProfileResponse, error)
	UpdateMe(ctx context.Context, req dto.UpdateProfileRequest) error
	UploadAvatar(ctx context.Context, req dto.UploadAvatarRequest) (dto.UploadAvatarResponse, error)
}

type serviceImpl struct {
	repo  repository.Profile
	s3    s3.S3
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Profile, s3 s3.S3, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Profile {
	return &serviceImpl{
		repo:  repo,
		s3:    s3,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetMe(ctx context.Context) (res dto.ProfileResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	cacheKey := shared.BuildCacheKey(cacheGetProfile, user)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for profile")

		return res, nil
	}

	profile, err := s.repo.Get(ctx, shared.FilterByID(user, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("profile not found")
	}

	res.FromModel(profile)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save profile to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateMe(ctx context.Context, req dto.UpdateProfileRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req == (dto.UpdateProfileRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(user, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update profile")

		return fmt.Errorf("failed to update profile: %w", err)
	}

	s.invalidate(ctx, user)

	return nil
}

// UploadAvatar stores the image and points the profile at it. The previous avatar is removed afterwards.
func (s *serviceImpl) UploadAvatar(ctx context.Context, req dto.UploadAvatarRequest) (res dto.UploadAvatarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadAvatar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = media.Check(s.cfg, media.KindImage, req.ContentType, req.Size); err != nil {
		return res, err //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(user, model.FieldID, model.TableName)

	profile, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("profile not found")
	}

	url, err := s.s3.Put(ctx, s3.Object{
		Directory:   path.Join(avatarDirectory, user),
		Name:        media.ObjectName(req.FileName, req.ContentType),
		ContentType: req.ContentType,
		Body:        req.File,
		Size:        req.Size,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to upload avatar")

		return res, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err = s.repo.Update(ctx, shared.TransformFields(dto.UpdateAvatarRequest{AvatarURL: url}, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update avatar")

		return res, fmt.Errorf("failed to update avatar: %w", err)
	}

	s.invalidate(ctx, user)

	if profile.AvatarURL != nil && *profile.AvatarURL != constant.Empty {
		previous := *profile.AvatarURL

		go func() {
			if err := s.s3.Remove(context.WithoutCancel(ctx), previous); err != nil {
				log.Warn().Err(err).Str("url", previous).Msg("failed to remove previous avatar")
			}
		}()
	}

	res.URL = url

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, user string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProfile, user)); err != nil {
			log.Error().Err(err).Msg("failed to delete profile from cache")
		}
	}()
}
