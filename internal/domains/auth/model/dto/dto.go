package dto

import (
	"strings"
	"time"
	"venuely/infras/jwt"
	accountModel "venuely/internal/domains/account/model"
	profileModel "venuely/internal/domains/profile/model"
	gModel "venuely/shared/model"
	"venuely/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email    string `json:"email"             validate:"required,email,max=255"`
	Password string `json:"password"          validate:"required,min=6,max=72"`
	FullName string `json:"full_name"         validate:"required,max=100"`
	Phone    string `json:"phone,omitempty"   validate:"omitempty,max=20"`
	Address  string `json:"address,omitempty" validate:"omitempty,max=255"`
	Role     string `json:"role"              validate:"required,oneof=user organizer"`
}

// NormalizeEmail lowercases and trims an address so lookups and the unique index agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *RegisterRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

func (r *RegisterRequest) ToAccountModel(hashedPassword string, verified bool) accountModel.Account {
	id := uuid.NewString()

	return accountModel.Account{
		ID:         id,
		Email:      r.Email,
		Password:   hashedPassword,
		IsVerified: verified,
		Active:     true,
		Metadata:   newMetadata(id),
	}
}

func (r *RegisterRequest) ToProfileModel(accountID string) profileModel.Profile {
	return profileModel.Profile{
		ID:       accountID,
		Email:    r.Email,
		FullName: r.FullName,
		Phone:    optional(r.Phone),
		Address:  optional(r.Address),
		Metadata: newMetadata(accountID),
	}
}

type AccountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (a *AccountResponse) FromModel(model accountModel.Account) {
	a.ID = model.ID
	a.Email = model.Email
}

type SessionResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int64           `json:"expires_in"`
	ExpiresAt    string          `json:"expires_at"`
	Account      AccountResponse `json:"account"`
}

func (s *SessionResponse) FromTokenPair(tokenPair *jwt.TokenPair, account AccountResponse) {
	s.AccessToken = tokenPair.AccessToken
	s.RefreshToken = tokenPair.RefreshToken
	s.TokenType = tokenPair.TokenType
	s.ExpiresIn = tokenPair.ExpiresIn
	s.ExpiresAt = timezone.Now().Add(time.Duration(tokenPair.ExpiresIn) * time.Second).Format(time.RFC3339)
	s.Account = account
}

type RegisterResponse struct {
	Account              AccountResponse  `json:"account"`
	Session              *SessionResponse `json:"session,omitempty"`
	ConfirmationRequired bool             `json:"confirmation_required"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	SessionResponse
	Role string `json:"role"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	SessionResponse
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty"`
}

type VerifyEmailRequest struct {
	IsVerified bool `db:"is_verified" json:"is_verified"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=6,max=72"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required"`
}

func newMetadata(actor string) gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  actor,
		ModifiedBy: actor,
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
