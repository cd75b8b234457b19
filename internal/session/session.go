package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type AuthEvent string

const (
	EventInitialSession AuthEvent = "INITIAL_SESSION"
	EventSignedIn       AuthEvent = "SIGNED_IN"
	EventSignedOut      AuthEvent = "SIGNED_OUT"
	EventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
)

type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	Account      Account   `json:"account"`
}

// ProfileMetadata travels with a sign-up and seeds the profile and role records.
type ProfileMetadata struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     Role   `json:"role"`
}

// SignUpResult is handed back to the caller unchanged.
type SignUpResult struct {
	Account              *Account `json:"account,omitempty"`
	Session              *Session `json:"session,omitempty"`
	ConfirmationRequired bool     `json:"confirmation_required"`
}

// AuthError is the normalized error every Provider returns for auth failures.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// Listener receives provider notifications.
type Listener func(ctx context.Context, event AuthEvent, session *Session)

// Provider is the identity provider the Resolver synchronizes with.
type Provider interface {
	CurrentSession(ctx context.Context) (*Session, error)
	SignUp(ctx context.Context, email, password string, metadata ProfileMetadata, redirectTo string) (SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, session *Session) error
	OnAuthStateChange(listener Listener) (unsubscribe func())
}

// State is a snapshot handed to observers.
type State struct {
	Account *Account
	Session *Session
	Role    Role
	Loading bool
}

func (s State) Authenticated() bool {
	return s.Session != nil && s.Role.Valid()
}

// Resolver owns the process-wide session triple and keeps it in step with the Provider.
type Resolver struct {
	provider   Provider
	roles      *RoleResolver
	redirectTo string

	mu         sync.RWMutex
	state      State
	generation uint64

	subMu       sync.Mutex
	subscribers []subscriber
	nextID      int

	unsubscribeProvider func()
}

type subscriber struct {
	id int
	fn func(State)
}

func New(provider Provider, roles *RoleResolver, redirectTo string) *Resolver {
	resolver := &Resolver{
		provider:   provider,
		roles:      roles,
		redirectTo: redirectTo,
		state:      State{Loading: true},
	}

	resolver.unsubscribeProvider = provider.OnAuthStateChange(resolver.HandleAuthChange)

	return resolver
}

// Close detaches the Resolver from the Provider.
func (r *Resolver) Close() {
	if r.unsubscribeProvider != nil {
		r.unsubscribeProvider()
	}
}

func (r *Resolver) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot()
}

// Subscribe registers fn for every state change. Observers run in registration order.
func (r *Resolver) Subscribe(fn func(State)) (unsubscribe func()) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	r.nextID++
	id := r.nextID
	r.subscribers = append(r.subscribers, subscriber{id: id, fn: fn})

	return func() {
		r.subMu.Lock()
		defer r.subMu.Unlock()

		for idx, sub := range r.subscribers {
			if sub.id == id {
				r.subscribers = append(r.subscribers[:idx], r.subscribers[idx+1:]...)

				return
			}
		}
	}
}

// Bootstrap loads the current session and its role. Loading stays true until both finish.
func (r *Resolver) Bootstrap(ctx context.Context) {
	gen := r.claim()

	current, err := r.provider.CurrentSession(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load current session")

		current = nil
	}

	var role Role
	if current != nil {
		role = r.roles.ResolveRole(ctx, current.Account.ID)
	}

	r.commit(gen, func(state *State) {
		state.Session = current
		state.Account = accountOf(current)
		state.Role = role
		state.Loading = false
	})
}

// HandleAuthChange is registered with the Provider. A nil session clears the role. When
// notifications overlap, only the latest one writes its role.
func (r *Resolver) HandleAuthChange(ctx context.Context, event AuthEvent, current *Session) {
	log.Debug().Str("event", string(event)).Bool("session", current != nil).Msg("auth state changed")

	gen := r.begin(func(state *State) {
		state.Loading = true
		state.Session = current
		state.Account = accountOf(current)
	})

	var role Role
	if current != nil {
		role = r.roles.ResolveRole(ctx, current.Account.ID)
	}

	if !r.commit(gen, func(state *State) {
		state.Role = role
		state.Loading = false
	}) {
		log.Debug().Str("event", string(event)).Msg("dropped role of a superseded auth change")
	}
}

// SignUp forwards to the Provider with the confirmation redirect and returns its raw result.
func (r *Resolver) SignUp(ctx context.Context, email, password string, metadata ProfileMetadata) (SignUpResult, error) {
	return r.provider.SignUp(ctx, email, password, metadata, r.redirectTo) //nolint:wrapcheck
}

// SignIn returns only the normalized error. State follows from the Provider notification.
func (r *Resolver) SignIn(ctx context.Context, email, password string) error {
	_, err := r.provider.SignIn(ctx, email, password)

	return normalize(err)
}

// SignOut clears local state before asking the Provider. A Provider failure is
// returned and the local state stays cleared.
func (r *Resolver) SignOut(ctx context.Context) error {
	var previous *Session

	r.begin(func(state *State) {
		previous = state.Session
		state.Session = nil
		state.Account = nil
		state.Role = ""
	})

	if err := r.provider.SignOut(ctx, previous); err != nil {
		return normalize(err)
	}

	return nil
}

func (r *Resolver) claim() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation++

	return r.generation
}

// begin applies mutate as a new generation and notifies observers.
func (r *Resolver) begin(mutate func(state *State)) uint64 {
	r.mu.Lock()
	r.generation++
	gen := r.generation
	mutate(&r.state)
	snapshot := r.snapshot()
	r.mu.Unlock()

	r.notify(snapshot)

	return gen
}

// commit applies mutate only while gen is still the latest generation.
func (r *Resolver) commit(gen uint64, mutate func(state *State)) bool {
	r.mu.Lock()
	if r.generation != gen {
		r.mu.Unlock()

		return false
	}

	mutate(&r.state)
	snapshot := r.snapshot()
	r.mu.Unlock()

	r.notify(snapshot)

	return true
}

func (r *Resolver) notify(snapshot State) {
	r.subMu.Lock()
	subscribers := make([]subscriber, len(r.subscribers))
	copy(subscribers, r.subscribers)
	r.subMu.Unlock()

	for _, sub := range subscribers {
		sub.fn(snapshot)
	}
}

func (r *Resolver) snapshot() State {
	state := r.state

	if r.state.Account != nil {
		account := *r.state.Account
		state.Account = &account
	}

	if r.state.Session != nil {
		current := *r.state.Session
		state.Session = &current
	}

	return state
}

func accountOf(current *Session) *Account {
	if current == nil {
		return nil
	}

	account := current.Account

	return &account
}

func normalize(err error) error {
	if err == nil {
		return nil
	}

	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr
	}

	return &AuthError{Message: err.Error()}
}
