package cmd

import (
	"context"
	stderrors "errors"

	"github.com/charmbracelet/bubbles/table"

	"github.com/vendalink/vendalink/internal/api"
	"github.com/vendalink/vendalink/internal/config"
	"github.com/vendalink/vendalink/internal/domain"
	"github.com/vendalink/vendalink/internal/errors"
	"github.com/vendalink/vendalink/internal/guard"
	"github.com/vendalink/vendalink/internal/log"
	"github.com/vendalink/vendalink/internal/rbac"
	"github.com/vendalink/vendalink/internal/session"
	"github.com/vendalink/vendalink/internal/tui"
	"github.com/vendalink/vendalink/internal/ux"
)

// app wires the session store, the API client, and the guard together.
// This is the single composition point: every command reaches the session
// through it, nothing touches the persisted credentials directly.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	store  *session.Store
	client *api.Client
	guard  *guard.Guard
}

var currentApp *app

// getApp builds (once) and returns the wired application
func getApp() (*app, error) {
	if currentApp != nil {
		return currentApp, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = log.ParseLevel(cfg.LogLevel)
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	store := session.New(session.NewFileStorage(config.CredentialsPath()), logger)
	client := api.NewClient(cfg.APIURL, store.Token, api.WithTimeout(cfg.Timeout))

	currentApp = &app{
		cfg:    cfg,
		logger: logger,
		store:  store,
		client: client,
		guard:  guard.New(store),
	}
	return currentApp, nil
}

// resetApp discards the wired application. Tests use this to start clean.
func resetApp() {
	currentApp = nil
}

// requireAuth resolves the session and admits only authenticated users
func requireAuth(ctx context.Context) (*app, *domain.User, error) {
	a, err := getApp()
	if err != nil {
		return nil, nil, err
	}

	user, err := a.guard.Require(ctx, a.client)
	if err != nil {
		return nil, nil, err
	}
	return a, user, nil
}

// requireMutate denies the action unless the resolved role holds mutation rights
func requireMutate(user *domain.User, action string) error {
	if !rbac.ForUser(user).Mutate {
		return errors.NewPermissionDeniedError(action)
	}
	return nil
}

// wrapAPIError translates backend failures for the user. A 401/403 on a
// protected call means the token was invalidated server-side: the session
// is cleared and the user is told to log in again.
func (a *app) wrapAPIError(err error) error {
	if err == nil {
		return nil
	}

	if api.IsUnauthorized(err) {
		if cerr := a.store.Invalidate(); cerr != nil {
			a.logger.WithError(cerr).Warn("could not clear invalidated session")
		}
		return errors.NewSessionExpiredError()
	}

	var apiErr *api.APIError
	if !stderrors.As(err, &apiErr) {
		// No HTTP status at all: the backend was never reached.
		return errors.NewAPIUnavailableError(err)
	}
	return err
}

// formatter builds the output formatter selected by config/flags
func (a *app) formatter() (ux.Formatter, error) {
	return ux.NewFormatter(a.cfg.Output, &ux.FormatterOptions{NoColor: flagNoColor})
}

// newResourceBrowser builds an interactive table browser wired to the guard
func newResourceBrowser(ctx context.Context, a *app, title string, columns []table.Column, loader tui.RowLoader) *tui.Browser {
	return tui.NewBrowser(ctx, title, a.guard, a.client, columns, loader)
}
