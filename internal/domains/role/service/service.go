package service

import (
	"context"
	"fmt"
	"venuely/config"
	"venuely/infras/otel"
	"venuely/internal/domains/role/model"
	"venuely/internal/domains/role/model/dto"
	"venuely/internal/domains/role/repository"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/constant"
	"venuely/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRole = "role:get"
)

type Role interface {
	FetchRole(ctx context.Context, accountID string) (role string, found bool, err error)
	Get(ctx context.Context, accountID string) (dto.RoleResponse, error)
}

type serviceImpl struct {
	repo  repository.Role
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Role, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Role {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// FetchRole reads the stored role through the cache. A missing record is not an error.
func (s *serviceImpl) FetchRole(ctx context.Context, accountID string) (role string, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FetchRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRole, accountID)

	if err = s.cache.Get(ctx, cacheKey, &role); err == nil && role != constant.Empty {
		return role, true, nil
	}

	record, err := s.repo.Get(ctx, shared.FilterByID(accountID, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("account_id", accountID).Msg("failed to get role")

		return constant.Empty, false, fmt.Errorf("failed to get role: %w", err)
	}

	if record.ID == constant.Empty {
		return constant.Empty, false, nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, record.Role, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save role to cache")
		}
	}()

	return record.Role, true, nil
}

func (s *serviceImpl) Get(ctx context.Context, accountID string) (res dto.RoleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	role, found, err := s.FetchRole(ctx, accountID)
	if err != nil {
		return res, err
	}

	if !found {
		return res, failure.NotFound("role not found")
	}

	res.UserID = accountID
	res.Role = role

	return res, nil
}
