// Interactive list browser for CRM records. The browser owns the waiting
// state: while the session store is still resolving it shows a neutral
// spinner and renders no protected content at all.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vendalink/vendalink/internal/guard"
	"github.com/vendalink/vendalink/internal/session"
)

// RowLoader fetches the records to display once the session is authorized
type RowLoader func(ctx context.Context) ([]table.Row, error)

// Browser is the bubbletea model for an interactive list view
type Browser struct {
	title    string
	guard    *guard.Guard
	identity session.IdentityAPI
	loader   RowLoader

	ctx     context.Context
	table   table.Model
	spinner spinner.Model
	styles  Styles

	phase    browserPhase
	err      error
	quitting bool
}

type browserPhase int

const (
	phaseResolving browserPhase = iota
	phaseLoading
	phaseReady
	phaseFailed
)

type sessionResolvedMsg struct {
	err error
}

type rowsLoadedMsg struct {
	rows []table.Row
	err  error
}

// NewBrowser creates a Browser for the given columns and loader
func NewBrowser(ctx context.Context, title string, g *guard.Guard, identity session.IdentityAPI, columns []table.Column, loader RowLoader) *Browser {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	return &Browser{
		title:    title,
		guard:    g,
		identity: identity,
		loader:   loader,
		ctx:      ctx,
		table:    tbl,
		spinner:  sp,
		styles:   DefaultStyles(),
		phase:    phaseResolving,
	}
}

// Init starts the spinner and session resolution
func (b *Browser) Init() tea.Cmd {
	return tea.Batch(b.spinner.Tick, b.resolveSession)
}

func (b *Browser) resolveSession() tea.Msg {
	_, err := b.guard.Require(b.ctx, b.identity)
	return sessionResolvedMsg{err: err}
}

func (b *Browser) loadRows() tea.Msg {
	rows, err := b.loader(b.ctx)
	return rowsLoadedMsg{rows: rows, err: err}
}

// Update handles messages
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			b.quitting = true
			return b, tea.Quit
		}

	case sessionResolvedMsg:
		if msg.err != nil {
			b.phase = phaseFailed
			b.err = msg.err
			return b, tea.Quit
		}
		b.phase = phaseLoading
		return b, b.loadRows

	case rowsLoadedMsg:
		if msg.err != nil {
			b.phase = phaseFailed
			b.err = msg.err
			return b, tea.Quit
		}
		b.phase = phaseReady
		b.table.SetRows(msg.rows)
		return b, nil

	case tea.WindowSizeMsg:
		b.table.SetWidth(msg.Width)

	case spinner.TickMsg:
		if b.phase == phaseResolving || b.phase == phaseLoading {
			var cmd tea.Cmd
			b.spinner, cmd = b.spinner.Update(msg)
			return b, cmd
		}
	}

	if b.phase == phaseReady {
		var cmd tea.Cmd
		b.table, cmd = b.table.Update(msg)
		return b, cmd
	}

	return b, nil
}

// View renders the current phase
func (b *Browser) View() string {
	if b.quitting {
		return ""
	}

	switch b.phase {
	case phaseResolving:
		return b.spinner.View() + " Checking session..."
	case phaseLoading:
		return b.spinner.View() + " Loading " + b.title + "..."
	case phaseFailed:
		return b.styles.Error.Render("Error: ") + b.err.Error() + "\n"
	default:
		title := b.styles.Title.Render(b.title)
		help := b.styles.Muted.Render("↑/↓ navigate • q quit")
		return title + "\n" + b.table.View() + "\n" + help + "\n"
	}
}

// Err returns the error the browser quit with, if any
func (b *Browser) Err() error {
	return b.err
}

// Run executes the browser program and returns the error that stopped it
func (b *Browser) Run() error {
	if _, err := tea.NewProgram(b).Run(); err != nil {
		return err
	}
	return b.err
}
