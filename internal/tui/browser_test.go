package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendalink/vendalink/internal/domain"
	"github.com/vendalink/vendalink/internal/errors"
	"github.com/vendalink/vendalink/internal/guard"
	"github.com/vendalink/vendalink/internal/session"
)

type memStorage struct {
	creds *session.Credentials
}

func (m *memStorage) Load() (*session.Credentials, error) { return m.creds, nil }
func (m *memStorage) Save(c *session.Credentials) error   { m.creds = c; return nil }
func (m *memStorage) Clear() error                        { m.creds = nil; return nil }

type fakeIdentity struct {
	user *domain.User
}

func (f *fakeIdentity) Login(ctx context.Context, email, password string) (*domain.AuthResponse, error) {
	return nil, assert.AnError
}

func (f *fakeIdentity) Me(ctx context.Context) (*domain.User, error) {
	if f.user == nil {
		return nil, assert.AnError
	}
	return f.user, nil
}

func newTestBrowser(creds *session.Credentials, identity session.IdentityAPI, loader RowLoader) *Browser {
	store := session.New(&memStorage{creds: creds}, nil)
	columns := []table.Column{{Title: "ID", Width: 4}, {Title: "Name", Width: 20}}
	return NewBrowser(context.Background(), "Customers", guard.New(store), identity, columns, loader)
}

func TestBrowser_ShowsNeutralStateWhileResolving(t *testing.T) {
	b := newTestBrowser(nil, &fakeIdentity{}, nil)

	view := b.View()
	assert.Contains(t, view, "Checking session...")
	assert.NotContains(t, view, "Customers", "no protected content before the session resolves")
}

func TestBrowser_DeniedSessionQuitsWithAuthError(t *testing.T) {
	b := newTestBrowser(nil, &fakeIdentity{}, func(ctx context.Context) ([]table.Row, error) {
		t.Fatal("rows must not load for a denied session")
		return nil, nil
	})

	msg := b.resolveSession()
	resolved, ok := msg.(sessionResolvedMsg)
	require.True(t, ok)
	require.Error(t, resolved.err)

	model, cmd := b.Update(resolved)
	require.NotNil(t, cmd, "a denied session must quit the program")

	browser := model.(*Browser)
	var verr *errors.VendalinkError
	require.ErrorAs(t, browser.Err(), &verr)
	assert.Equal(t, errors.ErrCodeAuthRequired, verr.Code)
}

func TestBrowser_AuthorizedSessionLoadsRows(t *testing.T) {
	user := &domain.User{ID: 1, Email: "ada@example.com", Role: domain.RoleAdmin}
	loaded := false

	b := newTestBrowser(
		&session.Credentials{Token: "tok-1"},
		&fakeIdentity{user: user},
		func(ctx context.Context) ([]table.Row, error) {
			loaded = true
			return []table.Row{{"1", "Acme Corp"}}, nil
		},
	)

	msg := b.resolveSession()
	resolved, ok := msg.(sessionResolvedMsg)
	require.True(t, ok)
	require.NoError(t, resolved.err)

	model, cmd := b.Update(resolved)
	require.NotNil(t, cmd)

	rowsMsg := cmd()
	model, _ = model.(*Browser).Update(rowsMsg)
	assert.True(t, loaded)

	view := model.(*Browser).View()
	assert.Contains(t, view, "Customers")
	assert.Contains(t, view, "Acme Corp")
}

func TestBrowser_LoadFailureQuitsWithError(t *testing.T) {
	b := newTestBrowser(
		&session.Credentials{Token: "tok-1"},
		&fakeIdentity{user: &domain.User{ID: 1, Role: domain.RoleAdmin}},
		func(ctx context.Context) ([]table.Row, error) {
			return nil, assert.AnError
		},
	)

	model, _ := b.Update(sessionResolvedMsg{})
	model, cmd := model.(*Browser).Update(rowsLoadedMsg{err: assert.AnError})
	require.NotNil(t, cmd)
	assert.Error(t, model.(*Browser).Err())
}

func TestBrowser_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		b := newTestBrowser(nil, &fakeIdentity{}, nil)

		var msg tea.KeyMsg
		switch key {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}

		model, cmd := b.Update(msg)
		require.NotNil(t, cmd, "key %q must quit", key)
		assert.True(t, strings.TrimSpace(model.(*Browser).View()) == "", "quitting view must be empty")
	}
}
