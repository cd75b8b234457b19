package session

//go:generate go run go.uber.org/mock/mockgen -source=./role.go -destination=./mocks/role_mock.go -package=mocks

import (
	"context"
	"time"

	"venuely/config"
	"venuely/shared/constant"

	"github.com/rs/zerolog/log"
)

// DefaultRoleTimeout bounds a single role lookup.
const DefaultRoleTimeout = 5 * time.Second

type Role string

const (
	RoleUser      Role = constant.RoleUser
	RoleOrganizer Role = constant.RoleOrganizer
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleOrganizer
}

func (r Role) String() string {
	return string(r)
}

// RoleSource looks up the stored role of an account. found is false when no record exists.
type RoleSource interface {
	FetchRole(ctx context.Context, accountID string) (role string, found bool, err error)
}

// RoleResolver turns a RoleSource lookup into a role that is always usable.
// Absence, errors and timeouts all resolve to RoleUser.
type RoleResolver struct {
	source  RoleSource
	timeout time.Duration
}

func NewRoleResolver(source RoleSource, cfg *config.Config) *RoleResolver {
	return NewRoleResolverWithTimeout(source, time.Duration(cfg.Auth.RoleResolveTimeoutSeconds)*time.Second)
}

func NewRoleResolverWithTimeout(source RoleSource, timeout time.Duration) *RoleResolver {
	if timeout <= 0 {
		timeout = DefaultRoleTimeout
	}

	return &RoleResolver{
		source:  source,
		timeout: timeout,
	}
}

type lookup struct {
	role  string
	found bool
	err   error
}

// ResolveRole races the lookup against the timeout. Whichever settles first wins;
// a late lookup result is dropped.
func (r *RoleResolver) ResolveRole(ctx context.Context, accountID string) Role {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	results := make(chan lookup, 1)

	go func() {
		role, found, err := r.source.FetchRole(ctx, accountID)
		results <- lookup{role: role, found: found, err: err}
	}()

	select {
	case res := <-results:
		if res.err != nil {
			log.Warn().Err(res.err).Str("account_id", accountID).Msg("role lookup failed, falling back to user")

			return RoleUser
		}

		if !res.found {
			return RoleUser
		}

		role := Role(res.role)
		if !role.Valid() {
			log.Warn().Str("account_id", accountID).Str("role", res.role).Msg("unknown role stored, falling back to user")

			return RoleUser
		}

		return role
	case <-ctx.Done():
		log.Warn().Err(ctx.Err()).Str("account_id", accountID).Dur("timeout", r.timeout).Msg("role lookup timed out, falling back to user")

		return RoleUser
	}
}
