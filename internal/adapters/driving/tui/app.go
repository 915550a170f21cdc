// Package tui implements the interactive terminal interface
// following the Elm architecture.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/messages"
	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/styles"
	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/views/chartform"
	"github.com/jyotish-labs/hora-cli/internal/adapters/driving/tui/views/results"
	"github.com/jyotish-labs/hora-cli/internal/core/domain"
	"github.com/jyotish-labs/hora-cli/internal/logger"
)

// App is the main TUI application. It implements tea.Model.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// formView is the position entry form.
	formView *chartform.View

	// resultsView is the computed chart view.
	resultsView *results.View

	// session is the transient form state held in the session store.
	session *domain.ChartSession

	// currentView tracks which view is active.
	currentView messages.ViewType

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	session := domain.NewChartSession()
	if _, err := ports.Sessions.Create(session); err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	s := styles.DefaultStyles()
	formView := chartform.NewView(s)
	formView.Restore(session)
	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		formView:    formView,
		resultsView: results.NewView(s, ports.Chart, ports.Export),
		session:     session,
		currentView: messages.ViewForm,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("hora - D-2 chart"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.formView.SetWidth(msg.Width)
		return a, nil

	case messages.ExportDoneMsg:
		var cmd tea.Cmd
		a.resultsView, cmd = a.resultsView.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.teardown()
			return a, tea.Quit
		case "q":
			if a.currentView == messages.ViewResults {
				a.teardown()
				return a, tea.Quit
			}
		case "esc":
			if a.currentView == messages.ViewResults {
				a.currentView = messages.ViewForm
				return a, nil
			}
		case "enter":
			if a.currentView == messages.ViewForm {
				return a, a.computeChart()
			}
		}
	}

	return a.updateActiveView(msg)
}

func (a *App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewForm:
		a.formView, cmd = a.formView.Update(msg)
	case messages.ViewResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	}
	return a, cmd
}

// computeChart collects the form entries, stores them on the session
// and switches to the results view.
func (a *App) computeChart() tea.Cmd {
	ascendant, planets := a.formView.Entries()

	a.session.Ascendant = ascendant
	a.session.Planets = planets
	if err := a.ports.Sessions.Update(a.session); err != nil {
		logger.Warn("session update failed: %v", err)
	}

	rows := a.ports.Chart.Build(ascendant, planets)
	if len(rows) == 0 {
		a.formView.SetNotice("No entries with a chosen sign yet.")
		return nil
	}

	logger.Debug("computed %d chart rows", len(rows))
	a.resultsView.SetRows(rows)
	a.currentView = messages.ViewResults
	return nil
}

// teardown discards the transient session.
func (a *App) teardown() {
	if a.session != nil {
		_ = a.ports.Sessions.Delete(a.session.ID)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	switch a.currentView {
	case messages.ViewResults:
		return a.resultsView.View()
	default:
		return a.formView.View()
	}
}

// CurrentView exposes the active view for tests.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}
