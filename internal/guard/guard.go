// Package guard gates protected commands and views on session state.
//
// The guard never commits to an authorization decision while the session
// store is still resolving a persisted token: a user with a valid stored
// session must not be bounced to login just because validation has not
// finished yet.
package guard

import (
	"context"

	"github.com/vendalink/vendalink/internal/domain"
	"github.com/vendalink/vendalink/internal/errors"
	"github.com/vendalink/vendalink/internal/session"
)

// Decision is the guard's view of the current session
type Decision int

const (
	// DecisionResolving means session resolution is still in flight;
	// show a neutral waiting state, decide nothing yet
	DecisionResolving Decision = iota
	// DecisionAuthorized means a validated user is present
	DecisionAuthorized
	// DecisionUnauthorized means resolution finished with no session
	DecisionUnauthorized
)

// String returns the string representation of the decision
func (d Decision) String() string {
	switch d {
	case DecisionResolving:
		return "resolving"
	case DecisionAuthorized:
		return "authorized"
	case DecisionUnauthorized:
		return "unauthorized"
	default:
		return "unknown"
	}
}

// Guard derives authorization decisions from the session store
type Guard struct {
	store *session.Store
}

// New creates a Guard over the given session store
func New(store *session.Store) *Guard {
	return &Guard{store: store}
}

// Decide maps the store's current state to a Decision. While the store is
// resolving the answer is DecisionResolving, never a premature allow or deny.
func (g *Guard) Decide() Decision {
	if g.store.State() == session.StateResolving {
		return DecisionResolving
	}
	if _, ok := g.store.CurrentUser(); ok {
		return DecisionAuthorized
	}
	return DecisionUnauthorized
}

// Require drives session resolution to completion and then admits or denies.
// On denial it returns a coded error directing the user to login; the
// attempted destination is discarded.
func (g *Guard) Require(ctx context.Context, identity session.IdentityAPI) (*domain.User, error) {
	if err := g.store.Initialize(ctx, identity); err != nil {
		return nil, err
	}

	user, ok := g.store.CurrentUser()
	if !ok {
		return nil, errors.NewAuthRequiredError()
	}
	return user, nil
}
