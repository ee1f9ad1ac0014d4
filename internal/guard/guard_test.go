package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendalink/vendalink/internal/domain"
	"github.com/vendalink/vendalink/internal/errors"
	"github.com/vendalink/vendalink/internal/session"
)

type memStorage struct {
	creds *session.Credentials
}

func (m *memStorage) Load() (*session.Credentials, error) { return m.creds, nil }
func (m *memStorage) Save(c *session.Credentials) error   { m.creds = c; return nil }
func (m *memStorage) Clear() error                        { m.creds = nil; return nil }

type fakeIdentity struct {
	meFn func(ctx context.Context) (*domain.User, error)
}

func (f *fakeIdentity) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	return nil, assert.AnError
}

func (f *fakeIdentity) Me(ctx context.Context) (*domain.User, error) {
	return f.meFn(ctx)
}

func TestDecide_ResolvingIsNeverADecision(t *testing.T) {
	store := session.New(&memStorage{creds: &session.Credentials{Token: "tok-1"}}, nil)
	g := New(store)

	// Nothing has resolved the session yet: the guard must not commit to
	// authorized or unauthorized.
	assert.Equal(t, DecisionResolving, g.Decide())
}

func TestDecide_AfterResolution(t *testing.T) {
	tests := []struct {
		name  string
		creds *session.Credentials
		me    func(ctx context.Context) (*domain.User, error)
		want  Decision
	}{
		{
			name:  "no stored session",
			creds: nil,
			want:  DecisionUnauthorized,
		},
		{
			name:  "valid stored session",
			creds: &session.Credentials{Token: "tok-1"},
			me: func(ctx context.Context) (*domain.User, error) {
				return &domain.User{ID: 1, Email: "ada@example.com", Role: domain.RoleAdmin}, nil
			},
			want: DecisionAuthorized,
		},
		{
			name:  "rejected stored session",
			creds: &session.Credentials{Token: "tok-stale"},
			me: func(ctx context.Context) (*domain.User, error) {
				return nil, assert.AnError
			},
			want: DecisionUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := session.New(&memStorage{creds: tt.creds}, nil)
			g := New(store)

			require.NoError(t, store.Initialize(context.Background(), &fakeIdentity{meFn: tt.me}))
			assert.Equal(t, tt.want, g.Decide())
		})
	}
}

func TestRequire_AdmitsValidatedUser(t *testing.T) {
	store := session.New(&memStorage{creds: &session.Credentials{Token: "tok-1"}}, nil)
	g := New(store)

	identity := &fakeIdentity{meFn: func(ctx context.Context) (*domain.User, error) {
		return &domain.User{ID: 1, Email: "ada@example.com", Role: domain.RoleAdmin}, nil
	}}

	user, err := g.Require(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestRequire_DeniesWithCodedError(t *testing.T) {
	store := session.New(&memStorage{}, nil)
	g := New(store)

	_, err := g.Require(context.Background(), &fakeIdentity{})
	require.Error(t, err)

	var verr *errors.VendalinkError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, errors.ErrCodeAuthRequired, verr.Code)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "resolving", DecisionResolving.String())
	assert.Equal(t, "authorized", DecisionAuthorized.String())
	assert.Equal(t, "unauthorized", DecisionUnauthorized.String())
	assert.Equal(t, "unknown", Decision(99).String())
}
