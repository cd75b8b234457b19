package service

import (
	"context"
	"errors"
	"fmt"
	"venuely/config"
	"venuely/infras/jwt"
	"venuely/infras/otel"
	"venuely/infras/postgres"
	accountModel "venuely/internal/domains/account/model"
	accountRepo "venuely/internal/domains/account/repository"
	"venuely/internal/domains/auth/model/dto"
	profileRepo "venuely/internal/domains/profile/repository"
	roleDto "venuely/internal/domains/role/model/dto"
	roleModel "venuely/internal/domains/role/model"
	roleRepo "venuely/internal/domains/role/repository"
	"venuely/shared"
	"venuely/shared/cache"
	"venuely/shared/constant"
	"venuely/shared/failure"
	"venuely/shared/password"
	gRepo "venuely/shared/repository"
	"venuely/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheVerifyEmail = "auth:verify"

	msgEmailRegistered    = "email already registered"
	msgInvalidCredentials = "invalid email or password"
	msgEmailNotConfirmed  = "email not confirmed"
	msgAccountDeactivated = "user account is deactivated"
	msgInvalidVerifyToken = "invalid or expired verification token"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context, accessToken string, req dto.LogoutRequest) error
	Session(ctx context.Context) (dto.AccountResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	accountRepo accountRepo.Account
	profileRepo profileRepo.Profile
	roleRepo    roleRepo.Role
	transactor  postgres.Transactor
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(
	accountRepo accountRepo.Account,
	profileRepo profileRepo.Profile,
	roleRepo roleRepo.Role,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	jwt jwt.JWT,
) Auth {
	return &serviceImpl{
		accountRepo: accountRepo,
		profileRepo: profileRepo,
		roleRepo:    roleRepo,
		transactor:  transactor,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		jwtService:  jwt,
	}
}

// Register writes the account, its profile and its role in one transaction.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	emailFilter := shared.FilterByID(req.Email, accountModel.FieldEmail, accountModel.TableName)

	exists, err := s.accountRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if account exists")

		return res, fmt.Errorf("failed to check if account exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString(msgEmailRegistered)
	}

	if err = password.Check(req.Password); err != nil {
		return res, failure.BadRequest(err)
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	requireConfirmation := s.cfg.Auth.RequireEmailConfirmation

	account := req.ToAccountModel(hashedPassword, !requireConfirmation)
	profile := req.ToProfileModel(account.ID)
	role := roleDto.NewRole(account.ID, req.Role, account.ID)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.accountRepo.InsertTx(ctx, tx, account); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.profileRepo.InsertTx(ctx, tx, profile); err != nil {
			return err //nolint:wrapcheck
		}

		return s.roleRepo.InsertTx(ctx, tx, role) //nolint:wrapcheck
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(msgEmailRegistered)
		}

		log.Error().Err(err).Msg("failed to create account")

		return res, fmt.Errorf("failed to create account: %w", err)
	}

	res.Account.FromModel(account)

	if requireConfirmation {
		if err = s.sendVerification(ctx, account); err != nil {
			return res, err
		}

		res.ConfirmationRequired = true

		return res, nil
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, account.ID, account.Email, role.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.Session = &dto.SessionResponse{}
	res.Session.FromTokenPair(tokenPair, res.Account)

	return res, nil
}

func (s *serviceImpl) sendVerification(ctx context.Context, account accountModel.Account) error {
	token := uuid.NewString()
	ttl := s.cfg.Auth.VerificationTTLMinutes * constant.MinutesToSeconds

	if err := s.cache.Save(ctx, shared.BuildCacheKey(cacheVerifyEmail, token), account.ID, ttl); err != nil {
		log.Error().Err(err).Msg("failed to store verification token")

		return fmt.Errorf("failed to store verification token: %w", err)
	}

	log.Info().
		Str("email", account.Email).
		Str("link", fmt.Sprintf("%s/verify-email?%s=%s", s.cfg.Auth.SiteURL, constant.RequestParamToken, token)).
		Msg("email confirmation link issued")

	return nil
}

func (s *serviceImpl) VerifyEmail(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyEmail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheVerifyEmail, token)

	var accountID string
	if err = s.cache.Get(ctx, cacheKey, &accountID); err != nil || accountID == constant.Empty {
		log.Warn().Err(err).Msg("verification token not found")

		return failure.BadRequestFromString(msgInvalidVerifyToken)
	}

	updatedFields := shared.TransformFields(dto.VerifyEmailRequest{IsVerified: true}, accountID)

	if err = s.accountRepo.Update(ctx, updatedFields, shared.FilterByID(accountID, accountModel.FieldID, accountModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to verify account")

		return fmt.Errorf("failed to verify account: %w", err)
	}

	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		log.Warn().Err(err).Msg("failed to consume verification token")
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	emailFilter := shared.FilterByID(req.Email, accountModel.FieldEmail, accountModel.TableName)

	account, err := s.accountRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return res, fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString(msgInvalidCredentials)
	}

	if err := password.Verify(req.Password, account.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString(msgInvalidCredentials)
	}

	if !account.Active {
		return res, failure.BadRequestFromString(msgAccountDeactivated)
	}

	if s.cfg.Auth.RequireEmailConfirmation && !account.IsVerified {
		return res, failure.BadRequestFromString(msgEmailNotConfirmed)
	}

	role, err := s.roleRepo.Get(ctx, shared.FilterByID(account.ID, roleModel.FieldUserID, roleModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get role")

		return res, fmt.Errorf("failed to get role: %w", err)
	}

	if role.Role == constant.Empty {
		role.Role = constant.RoleUser
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, account.ID, account.Email, role.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}, account.ID)

	if err := s.accountRepo.Update(ctx, updatedFields, emailFilter); err != nil {
		log.Warn().Err(err).Str("account_id", account.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	var accountResponse dto.AccountResponse
	accountResponse.FromModel(account)

	res.FromTokenPair(tokenPair, accountResponse)
	res.Role = role.Role

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("invalid refresh token")

		return res, failure.Unauthorized("invalid refresh token")
	}

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair, dto.AccountResponse{ID: claims.UserID, Email: claims.Email})

	return res, nil
}

// Logout revokes the access token and, when supplied, the refresh token.
func (s *serviceImpl) Logout(ctx context.Context, accessToken string, req dto.LogoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(ctx, accessToken, jwt.AccessToken)
	if err != nil {
		return failure.Unauthorized("invalid access token")
	}

	if err = s.jwtService.Revoke(ctx, claims); err != nil {
		log.Error().Err(err).Msg("failed to revoke access token")

		return fmt.Errorf("failed to revoke access token: %w", err)
	}

	if req.RefreshToken == constant.Empty {
		return nil
	}

	refreshClaims, err := s.jwtService.ValidateToken(ctx, req.RefreshToken, jwt.RefreshToken)
	if errors.Is(err, jwt.ErrRevokedToken) {
		return nil
	}

	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid refresh token on logout")

		return nil
	}

	if err = s.jwtService.Revoke(ctx, refreshClaims); err != nil {
		log.Error().Err(err).Msg("failed to revoke refresh token")

		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}

func (s *serviceImpl) Session(ctx context.Context) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Session")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	account, err := s.accountRepo.Get(ctx, shared.FilterByID(accountID, accountModel.FieldID, accountModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return res, fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == constant.Empty {
		return res, failure.NotFound("account not found")
	}

	res.FromModel(account)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(accountID, accountModel.FieldID, accountModel.TableName)

	account, err := s.accountRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == constant.Empty {
		return failure.NotFound("account not found")
	}

	if err := password.Verify(req.CurrentPassword, account.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	if err = password.Check(req.NewPassword); err != nil {
		return failure.BadRequest(err)
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, accountID)

	if err = s.accountRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
