package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendalink/vendalink/internal/domain"
)

// memStorage is an in-memory Storage for tests
type memStorage struct {
	creds    *Credentials
	loadErr  error
	saveErr  error
	clearErr error

	saveCalls  int
	clearCalls int
}

func (m *memStorage) Load() (*Credentials, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.creds, nil
}

func (m *memStorage) Save(creds *Credentials) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.creds = creds
	return nil
}

func (m *memStorage) Clear() error {
	m.clearCalls++
	if m.clearErr != nil {
		return m.clearErr
	}
	m.creds = nil
	return nil
}

// fakeIdentity is a scripted IdentityAPI for tests
type fakeIdentity struct {
	loginFn func(ctx context.Context, email, password string) (*domain.AuthResponse, error)
	meFn    func(ctx context.Context) (*domain.User, error)

	loginCalls int
	meCalls    int
}

func (f *fakeIdentity) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	f.loginCalls++
	return f.loginFn(ctx, email, password)
}

func (f *fakeIdentity) Me(ctx context.Context) (*domain.User, error) {
	f.meCalls++
	return f.meFn(ctx)
}

func testUser() domain.User {
	return domain.User{
		ID:    7,
		Name:  "Ada Admin",
		Email: "ada@example.com",
		Role:  domain.RoleAdmin,
	}
}

func TestNew_StartsResolving(t *testing.T) {
	store := New(&memStorage{}, nil)

	assert.Equal(t, StateResolving, store.State())
	assert.False(t, store.IsAuthenticated())

	_, ok := store.CurrentUser()
	assert.False(t, ok, "no user may be reported while resolving")
}

func TestInitialize_NoStoredToken_SkipsNetwork(t *testing.T) {
	identity := &fakeIdentity{
		meFn: func(ctx context.Context) (*domain.User, error) {
			t.Fatal("identity check must not be called without a stored token")
			return nil, nil
		},
	}
	store := New(&memStorage{}, nil)

	require.NoError(t, store.Initialize(context.Background(), identity))

	assert.Equal(t, StateResolved, store.State())
	assert.False(t, store.IsAuthenticated())
	assert.Zero(t, identity.meCalls)
}

func TestInitialize_ValidStoredToken_ResolvesAuthenticated(t *testing.T) {
	user := testUser()
	storage := &memStorage{creds: &Credentials{Token: "tok-1", User: &user}}
	store := New(storage, nil)

	identity := &fakeIdentity{
		meFn: func(ctx context.Context) (*domain.User, error) {
			// The candidate token must already be visible to the request
			// gateway while the identity check is in flight.
			assert.Equal(t, "tok-1", store.Token())
			u := testUser()
			return &u, nil
		},
	}

	require.NoError(t, store.Initialize(context.Background(), identity))

	assert.Equal(t, 1, identity.meCalls)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok-1", store.Token())

	got, ok := store.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Equal(t, domain.RoleAdmin, got.Role)
}

func TestInitialize_RejectedToken_FailsClosed(t *testing.T) {
	user := testUser()
	storage := &memStorage{creds: &Credentials{Token: "tok-stale", User: &user}}
	store := New(storage, nil)

	identity := &fakeIdentity{
		meFn: func(ctx context.Context) (*domain.User, error) {
			return nil, assert.AnError
		},
	}

	require.NoError(t, store.Initialize(context.Background(), identity),
		"a rejected session is a normal outcome, not an error")

	assert.Equal(t, StateResolved, store.State())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, storage.creds, "rejected credentials must be cleared from storage")
}

func TestInitialize_UnreadableStorage_FailsClosed(t *testing.T) {
	storage := &memStorage{loadErr: assert.AnError}
	store := New(storage, nil)

	identity := &fakeIdentity{
		meFn: func(ctx context.Context) (*domain.User, error) {
			t.Fatal("identity check must not run when storage is unreadable")
			return nil, nil
		},
	}

	require.NoError(t, store.Initialize(context.Background(), identity))
	assert.Equal(t, StateResolved, store.State())
	assert.False(t, store.IsAuthenticated())
}

func TestInitialize_Idempotent(t *testing.T) {
	user := testUser()
	storage := &memStorage{creds: &Credentials{Token: "tok-1", User: &user}}
	store := New(storage, nil)

	identity := &fakeIdentity{
		meFn: func(ctx context.Context) (*domain.User, error) {
			u := testUser()
			return &u, nil
		},
	}

	require.NoError(t, store.Initialize(context.Background(), identity))
	require.NoError(t, store.Initialize(context.Background(), identity))

	assert.Equal(t, 1, identity.meCalls, "a resolved store must not re-validate")
	assert.True(t, store.IsAuthenticated())
}

func TestLogin_Success_PersistsSession(t *testing.T) {
	storage := &memStorage{}
	store := New(storage, nil)
	require.NoError(t, store.Initialize(context.Background(), &fakeIdentity{}))

	identity := &fakeIdentity{
		loginFn: func(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
			assert.Equal(t, "ada@example.com", email)
			assert.Equal(t, "s3cret", password)
			return &domain.AuthResponse{Token: "tok-new", User: testUser()}, nil
		},
	}

	user, err := store.Login(context.Background(), identity, "ada@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok-new", store.Token())

	require.NotNil(t, storage.creds)
	assert.Equal(t, "tok-new", storage.creds.Token)
	require.NotNil(t, storage.creds.User)
	assert.Equal(t, "ada@example.com", storage.creds.User.Email)
}

func TestLogin_Failure_LeavesStoreUntouched(t *testing.T) {
	storage := &memStorage{}
	store := New(storage, nil)
	require.NoError(t, store.Initialize(context.Background(), &fakeIdentity{}))

	identity := &fakeIdentity{
		loginFn: func(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
			return nil, assert.AnError
		},
	}

	_, err := store.Login(context.Background(), identity, "ada@example.com", "wrong")
	require.Error(t, err)

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Zero(t, storage.saveCalls)
}

func TestLogin_Failure_KeepsExistingSession(t *testing.T) {
	storage := &memStorage{}
	store := New(storage, nil)
	require.NoError(t, store.Initialize(context.Background(), &fakeIdentity{}))

	ok := &fakeIdentity{
		loginFn: func(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
			return &domain.AuthResponse{Token: "tok-live", User: testUser()}, nil
		},
	}
	_, err := store.Login(context.Background(), ok, "ada@example.com", "s3cret")
	require.NoError(t, err)

	bad := &fakeIdentity{
		loginFn: func(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
			return nil, assert.AnError
		},
	}
	_, err = store.Login(context.Background(), bad, "other@example.com", "nope")
	require.Error(t, err)

	// The rejected attempt must not disturb the session already in place.
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok-live", store.Token())
}

func TestLogin_PersistFailure_SessionStaysValid(t *testing.T) {
	storage := &memStorage{saveErr: assert.AnError}
	store := New(storage, nil)

	identity := &fakeIdentity{
		loginFn: func(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
			return &domain.AuthResponse{Token: "tok-new", User: testUser()}, nil
		},
	}

	user, err := store.Login(context.Background(), identity, "ada@example.com", "s3cret")
	require.NoError(t, err, "a persistence failure must not fail an accepted login")
	require.NotNil(t, user)

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok-new", store.Token())
}

func TestLogout_ClearsAndIsIdempotent(t *testing.T) {
	storage := &memStorage{}
	store := New(storage, nil)

	identity := &fakeIdentity{
		loginFn: func(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
			return &domain.AuthResponse{Token: "tok-live", User: testUser()}, nil
		},
	}
	_, err := store.Login(context.Background(), identity, "ada@example.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, store.Logout())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, storage.creds)

	// Logging out again is harmless.
	require.NoError(t, store.Logout())
}

func TestInvalidate_ClearsRejectedSession(t *testing.T) {
	storage := &memStorage{}
	store := New(storage, nil)

	identity := &fakeIdentity{
		loginFn: func(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
			return &domain.AuthResponse{Token: "tok-revoked", User: testUser()}, nil
		},
	}
	_, err := store.Login(context.Background(), identity, "ada@example.com", "s3cret")
	require.NoError(t, err)

	require.NoError(t, store.Invalidate())
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())
	assert.Nil(t, storage.creds)
}
