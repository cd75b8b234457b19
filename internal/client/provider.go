package client

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
	authDto "venuely/internal/domains/auth/model/dto"
	"venuely/internal/session"

	"github.com/rs/zerolog/log"
)

// Provider backs session.Resolver with the venuely auth endpoints and a FileStore.
type Provider struct {
	api   *API
	store *FileStore
	now   func() time.Time

	mu        sync.Mutex
	listeners map[int]session.Listener
	nextID    int
}

func NewProvider(api *API, store *FileStore) *Provider {
	return &Provider{
		api:       api,
		store:     store,
		now:       time.Now,
		listeners: map[int]session.Listener{},
	}
}

// CurrentSession loads the stored session, refreshing it once when the access token has expired.
func (p *Provider) CurrentSession(ctx context.Context) (*session.Session, error) {
	current, err := p.store.Load()
	if err != nil || current == nil {
		return nil, err
	}

	if current.ExpiresAt.IsZero() || p.now().Before(current.ExpiresAt) {
		return current, nil
	}

	refreshed, err := p.api.Refresh(ctx, current.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("stored session expired and could not be refreshed")

		if clearErr := p.store.Clear(); clearErr != nil {
			log.Warn().Err(clearErr).Msg("failed to clear expired session")
		}

		return nil, nil
	}

	current = toSession(refreshed.SessionResponse)
	if err := p.store.Save(current); err != nil {
		return nil, err
	}

	p.emit(ctx, session.EventTokenRefreshed, current)

	return current, nil
}

// SignUp registers the account. The server builds the confirmation link itself, so redirectTo
// is only logged.
func (p *Provider) SignUp(
	ctx context.Context,
	email, password string,
	metadata session.ProfileMetadata,
	redirectTo string,
) (session.SignUpResult, error) {
	log.Debug().Str("redirect_to", redirectTo).Msg("signing up")

	res, err := p.api.Register(ctx, authDto.RegisterRequest{
		Email:    email,
		Password: password,
		FullName: metadata.FullName,
		Phone:    metadata.Phone,
		Address:  metadata.Address,
		Role:     metadata.Role.String(),
	})
	if err != nil {
		return session.SignUpResult{}, toAuthError(err)
	}

	result := session.SignUpResult{
		Account:              &session.Account{ID: res.Account.ID, Email: res.Account.Email},
		ConfirmationRequired: res.ConfirmationRequired,
	}

	if res.Session != nil {
		result.Session = toSession(*res.Session)

		if err := p.store.Save(result.Session); err != nil {
			return result, err
		}

		p.emit(ctx, session.EventSignedIn, result.Session)
	}

	return result, nil
}

func (p *Provider) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	res, err := p.api.Login(ctx, email, password)
	if err != nil {
		return nil, toAuthError(err)
	}

	current := toSession(res.SessionResponse)
	if err := p.store.Save(current); err != nil {
		return nil, err
	}

	p.emit(ctx, session.EventSignedIn, current)

	return current, nil
}

// SignOut revokes the tokens server side. The local file is removed even when that call fails.
func (p *Provider) SignOut(ctx context.Context, current *session.Session) error {
	if current == nil {
		stored, err := p.store.Load()
		if err != nil {
			log.Warn().Err(err).Msg("failed to read stored session before signing out")
		}

		current = stored
	}

	var logoutErr error
	if current != nil {
		logoutErr = p.api.Logout(ctx, current.AccessToken, current.RefreshToken)
	}

	if err := p.store.Clear(); err != nil {
		return err
	}

	p.emit(ctx, session.EventSignedOut, nil)

	if logoutErr != nil {
		return toAuthError(logoutErr)
	}

	return nil
}

func (p *Provider) OnAuthStateChange(listener session.Listener) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextID++
	id := p.nextID
	p.listeners[id] = listener

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()

		delete(p.listeners, id)
	}
}

func (p *Provider) emit(ctx context.Context, event session.AuthEvent, current *session.Session) {
	p.mu.Lock()
	listeners := make([]session.Listener, 0, len(p.listeners))
	for _, listener := range p.listeners {
		listeners = append(listeners, listener)
	}
	p.mu.Unlock()

	for _, listener := range listeners {
		listener(ctx, event, current)
	}
}

func toSession(res authDto.SessionResponse) *session.Session {
	expiresAt, err := time.Parse(time.RFC3339, res.ExpiresAt)
	if err != nil {
		expiresAt = time.Time{}
	}

	return &session.Session{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    expiresAt,
		Account:      session.Account{ID: res.Account.ID, Email: res.Account.Email},
	}
}

func toAuthError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return &session.AuthError{Status: apiErr.Status, Message: apiErr.Message}
	}

	return &session.AuthError{Status: http.StatusServiceUnavailable, Message: err.Error()}
}

// RoleSource reads the stored role through GET /v1/auth/role. A 404 means no record.
type RoleSource struct {
	api   *API
	store *FileStore
}

func NewRoleSource(api *API, store *FileStore) *RoleSource {
	return &RoleSource{
		api:   api,
		store: store,
	}
}

func (r *RoleSource) FetchRole(ctx context.Context, accountID string) (string, bool, error) {
	current, err := r.store.Load()
	if err != nil {
		return "", false, err
	}

	if current == nil || current.Account.ID != accountID {
		return "", false, nil
	}

	res, err := r.api.Role(ctx, current.AccessToken)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return "", false, nil
	}

	if err != nil {
		return "", false, err
	}

	return res.Role, true, nil
}
