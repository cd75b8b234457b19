package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"venuely/config"
	"venuely/infras/jwt"
	jwtMocks "venuely/infras/jwt/mocks"
	otelMocks "venuely/infras/otel/mocks"
	"venuely/internal/session"
	sessionMocks "venuely/internal/session/mocks"
	"venuely/permissions"
	"venuely/shared/constant"
	"venuely/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type authMockSet struct {
	jwt   *jwtMocks.MockJWT
	roles *sessionMocks.MockRoleSource
}

func newAuthRouter(ctrl *gomock.Controller, seen *string) (http.Handler, authMockSet) {
	m := authMockSet{
		jwt:   jwtMocks.NewMockJWT(ctrl),
		roles: sessionMocks.NewMockRoleSource(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	mw := middleware.NewAuthRoleMiddleware(
		m.jwt,
		otelMocks.NewOtel(),
		permissions.Get(),
		session.NewRoleResolverWithTimeout(m.roles, time.Second),
		cfg,
	)

	ok := func(w http.ResponseWriter, r *http.Request) {
		*seen, _ = r.Context().Value(constant.ContextKeyUserID).(string)
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(mw.APIKey)
		r.Use(mw.Auth)
		r.Use(mw.RBAC)

		r.Post("/v1/auth/login", ok)
		r.Post("/v1/events", ok)
		r.Get("/v1/events/open", ok)
	})

	return r, m
}

func TestAuthRole(t *testing.T) {
	claims := &jwt.Claims{UserID: "u-1", Email: "amna@example.com", TokenID: "t-1"}

	tests := []struct {
		name       string
		method     string
		path       string
		headers    map[string]string
		setupMock  func(m authMockSet)
		wantStatus int
		wantUser   string
	}{
		{
			name:       "public route needs no token",
			method:     http.MethodPost,
			path:       "/v1/auth/login",
			setupMock:  func(authMockSet) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing authorization header",
			method:     http.MethodPost,
			path:       "/v1/events",
			setupMock:  func(authMockSet) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			method:     http.MethodPost,
			path:       "/v1/events",
			headers:    map[string]string{"Authorization": "Basic abc"},
			setupMock:  func(authMockSet) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "expired token",
			method:  http.MethodPost,
			path:    "/v1/events",
			headers: map[string]string{"Authorization": "Bearer old"},
			setupMock: func(m authMockSet) {
				m.jwt.EXPECT().ValidateToken(gomock.Any(), "old", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "revoked token",
			method:  http.MethodPost,
			path:    "/v1/events",
			headers: map[string]string{"Authorization": "Bearer gone"},
			setupMock: func(m authMockSet) {
				m.jwt.EXPECT().ValidateToken(gomock.Any(), "gone", jwt.AccessToken).Return(nil, jwt.ErrRevokedToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "user creates an event",
			method:  http.MethodPost,
			path:    "/v1/events",
			headers: map[string]string{"Authorization": "Bearer good"},
			setupMock: func(m authMockSet) {
				m.jwt.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(claims, nil)
				m.roles.EXPECT().FetchRole(gomock.Any(), "u-1").Return(constant.RoleUser, true, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   "u-1",
		},
		{
			name:    "user cannot browse open events",
			method:  http.MethodGet,
			path:    "/v1/events/open",
			headers: map[string]string{"Authorization": "Bearer good"},
			setupMock: func(m authMockSet) {
				m.jwt.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(claims, nil)
				m.roles.EXPECT().FetchRole(gomock.Any(), "u-1").Return(constant.RoleUser, true, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:    "organizer browses open events",
			method:  http.MethodGet,
			path:    "/v1/events/open",
			headers: map[string]string{"Authorization": "Bearer good"},
			setupMock: func(m authMockSet) {
				m.jwt.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(claims, nil)
				m.roles.EXPECT().FetchRole(gomock.Any(), "u-1").Return(constant.RoleOrganizer, true, nil)
			},
			wantStatus: http.StatusOK,
			wantUser:   "u-1",
		},
		{
			name:    "role store failure falls back to user",
			method:  http.MethodGet,
			path:    "/v1/events/open",
			headers: map[string]string{"Authorization": "Bearer good"},
			setupMock: func(m authMockSet) {
				m.jwt.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).Return(claims, nil)
				m.roles.EXPECT().FetchRole(gomock.Any(), "u-1").Return("", false, errors.New("connection reset"))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "internal call with api key",
			method:     http.MethodGet,
			path:       "/v1/events/open",
			headers:    map[string]string{"X-API-Key": "internal-key"},
			setupMock:  func(authMockSet) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong api key",
			method:     http.MethodGet,
			path:       "/v1/events/open",
			headers:    map[string]string{"X-API-Key": "guess"},
			setupMock:  func(authMockSet) {},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			var seen string

			router, m := newAuthRouter(ctrl, &seen)
			tt.setupMock(m)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUser, seen)
		})
	}
}
