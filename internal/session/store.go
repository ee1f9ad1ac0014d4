// Package session owns the client-side record of who is logged in.
//
// The Store is the single source of truth for the current token and resolved
// user. It is created in the resolving state; Initialize must complete before
// any authorization decision is made on top of it (the route guard enforces
// this ordering). All mutation goes through Initialize, Login, Logout, and
// Invalidate; consumers only read.
package session

import (
	"context"
	"sync"

	"github.com/vendalink/vendalink/internal/domain"
	"github.com/vendalink/vendalink/internal/log"
)

// State describes whether the store has finished resolving the persisted
// session. Resolving is distinct from both authenticated and unauthenticated;
// consumers must not commit to either until the store is resolved.
type State int

const (
	// StateResolving means a persisted token may exist but has not been
	// validated yet
	StateResolving State = iota
	// StateResolved means the store reflects a final answer: either an
	// authenticated user or no session
	StateResolved
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// IdentityAPI is the slice of the backend the store needs: credential login
// and the identity-check endpoint. *api.Client satisfies it.
type IdentityAPI interface {
	Login(ctx context.Context, email, password string) (*domain.AuthResponse, error)
	Me(ctx context.Context) (*domain.User, error)
}

// Store holds the current session and persists it across runs
type Store struct {
	mu      sync.RWMutex
	storage Storage
	logger  *log.Logger

	state State
	token string
	user  *domain.User
}

// New creates a Store in the resolving state
func New(storage Storage, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		storage: storage,
		logger:  logger,
		state:   StateResolving,
	}
}

// Initialize resolves the persisted session. With no stored token it resolves
// to unauthenticated without any network call. With a stored token it calls
// the identity-check endpoint; any failure on this path fails closed: the
// persisted credentials are cleared and the store resolves unauthenticated.
// Initialize never returns an error for an absent or rejected session; that
// is a normal state, not a failure.
//
// Calling Initialize on an already-resolved store is a no-op.
func (s *Store) Initialize(ctx context.Context, identity IdentityAPI) error {
	s.mu.Lock()
	if s.state == StateResolved {
		s.mu.Unlock()
		return nil
	}

	creds, err := s.storage.Load()
	if err != nil {
		// Unreadable or corrupt storage degrades to "no session".
		s.logger.WithError(err).Warn("discarding unreadable stored session")
		s.resolveUnauthenticatedLocked()
		s.mu.Unlock()
		return nil
	}

	if creds == nil || creds.Token == "" {
		s.resolveUnauthenticatedLocked()
		s.mu.Unlock()
		return nil
	}

	// Hold the candidate token in memory while still resolving so the
	// request gateway attaches it to the identity-check call.
	s.token = creds.Token
	s.mu.Unlock()

	user, err := identity.Me(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.logger.WithError(err).Info("stored token rejected, clearing session")
		s.resolveUnauthenticatedLocked()
		return nil
	}

	s.user = user
	s.state = StateResolved
	return nil
}

// Login authenticates against the backend and, on success, stores the token
// and user both in memory and in persisted storage. On failure the store is
// left exactly as it was and the error is returned to the caller.
func (s *Store) Login(ctx context.Context, identity IdentityAPI, email, password string) (*domain.User, error) {
	auth, err := identity.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = auth.Token
	user := auth.User
	s.user = &user
	s.state = StateResolved

	if err := s.storage.Save(&Credentials{Token: auth.Token, User: s.user}); err != nil {
		// The backend accepted the login; the session stays valid in
		// memory and only persistence across runs is lost.
		s.logger.WithError(err).Warn("could not persist session credentials")
	}

	return s.user, nil
}

// Logout clears the in-memory and persisted session. Safe to call when
// already logged out.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

// Invalidate clears the session after the backend rejected its token
// (an expired or revoked credential discovered mid-run).
func (s *Store) Invalidate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked()
}

// Token returns the current bearer token, or "" when there is none.
// Wired into the request gateway as its TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser returns the resolved user, if any
func (s *Store) CurrentUser() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateResolved || s.user == nil {
		return nil, false
	}
	return s.user, true
}

// IsAuthenticated reports whether a validated session exists right now
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateResolved && s.user != nil && s.token != ""
}

// State returns the store's resolution state
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// resolveUnauthenticatedLocked clears everything and marks the store resolved.
// Callers must hold the write lock.
func (s *Store) resolveUnauthenticatedLocked() {
	_ = s.clearLocked()
}

// clearLocked wipes memory and persisted storage. Callers must hold the
// write lock.
func (s *Store) clearLocked() error {
	s.token = ""
	s.user = nil
	s.state = StateResolved

	if err := s.storage.Clear(); err != nil {
		s.logger.WithError(err).Warn("could not clear persisted credentials")
		return err
	}
	return nil
}
