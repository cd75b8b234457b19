package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"venuely/config"
	"venuely/infras/jwt"
	"venuely/infras/otel"
	"venuely/internal/session"
	"venuely/permissions"
	"venuely/shared/constant"
	"venuely/shared/failure"
	"venuely/transport/http/response"

	"github.com/go-chi/chi/v5"
)

// internalCallKey marks a request authenticated by the service API key.
type internalCallKey struct{}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	roles      *session.RoleResolver
	cfg        *config.Config
}

func NewAuthRoleMiddleware(
	jwtService jwt.JWT,
	otel otel.Otel,
	permissions *permissions.PermissionData,
	roles *session.RoleResolver,
	cfg *config.Config,
) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		roles:      roles,
		cfg:        cfg,
	}
}

func internalCall(r *http.Request) bool {
	internal, _ := r.Context().Value(internalCallKey{}).(bool)

	return internal
}

// permissionFor resolves the chi pattern of r and looks it up in permissions.json.
func (m *authRoleImpl) permissionFor(r *http.Request) (string, permissions.Permission) {
	pattern := r.URL.Path

	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.Routes != nil {
		pattern = rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)
	}

	if m.permission == nil {
		return pattern, permissions.Permission{}
	}

	return pattern, m.permission.FindPermissions(pattern, r.Method)
}

func reject(w http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(w, err)
}

func tokenFailure(err error) error {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrRevokedToken):
		return failure.Unauthorized("Token has been revoked")
	case errors.Is(err, jwt.ErrInvalidClaim):
		return failure.Unauthorized("Invalid token claims")
	case errors.Is(err, jwt.ErrInvalidToken):
		return failure.Unauthorized("Invalid token")
	default:
		return failure.Unauthorized("Token validation failed")
	}
}

// Auth validates the bearer access token and resolves the caller's role from the role store.
// Routes marked skip in permissions.json and API key calls pass through untouched.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		pattern, permission := m.permissionFor(r)
		if internalCall(r) || permission.Skip {
			next.ServeHTTP(w, r)

			return
		}

		scope.SetAttributes(map[string]any{"http.route": pattern, "http.method": r.Method})

		header := r.Header.Get(constant.RequestHeaderAuthorization)
		if header == "" {
			reject(w, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			reject(w, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, token, jwt.AccessToken)
		if err != nil {
			reject(w, scope, tokenFailure(err))

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			reject(w, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		role := m.roles.ResolveRole(ctx, claims.UserID)
		scope.SetAttribute("user.role", role.String())

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role.String())
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RBAC admits the resolved role when the route lists allowed roles. Routes without a role
// list are open to any authenticated caller.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if internalCall(r) {
			next.ServeHTTP(w, r)

			return
		}

		if m.permission == nil {
			reject(w, scope, failure.ForbiddenError)

			return
		}

		_, permission := m.permissionFor(r)
		if m.permission.Skip || permission.Skip || len(permission.Permissions) == 0 {
			next.ServeHTTP(w, r)

			return
		}

		role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)
		if !slices.Contains(permission.Permissions, role) {
			scope.SetAttributes(map[string]any{"user.role": role, "allowed_roles": permission.Permissions})
			reject(w, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// APIKey lets internal services in with X-API-Key. A wrong key is rejected and a missing
// one falls through to token authentication.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		key := r.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(w, r)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || key != m.cfg.App.APIKey {
			reject(w, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), internalCallKey{}, true)))
	})
}
