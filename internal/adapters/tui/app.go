package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tally/internal/adapters/tui/views"
	"tally/internal/application"
)

// ViewState represents the current view
type ViewState int

const (
	ViewCounters ViewState = iota
	ViewConfirm
	ViewEdit
	ViewNewList
	ViewHelp
)

// App is the main TUI application model
type App struct {
	ctrl   *application.Controller
	logger *zap.Logger

	state    ViewState
	counters *views.CountersModel
	deletion *views.ConfirmModel
	reset    *views.ConfirmModel
	confirm  *views.ConfirmModel
	edit     *views.EditModel
	newList  *views.NewListModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(ctrl *application.Controller, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		ctrl:     ctrl,
		logger:   logger,
		state:    ViewCounters,
		counters: views.NewCountersModel(ctrl),
		deletion: views.NewConfirmModel(ctrl.DeleteDialog()),
		reset:    views.NewConfirmModel(ctrl.ResetDialog()),
		edit:     views.NewEditModel(ctrl.EditDialog()),
		newList:  views.NewNewListModel(ctrl),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.counters.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.counters.SetSize(msg.Width, msg.Height)
		a.deletion.SetSize(msg.Width, msg.Height)
		a.reset.SetSize(msg.Width, msg.Height)
		a.edit.SetSize(msg.Width, msg.Height)
		a.newList.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToConfirmMsg:
		a.state = ViewConfirm
		a.confirm = a.deletion
		if msg.Kind == application.DialogReset {
			a.confirm = a.reset
		}
		a.logger.Debug("open confirm dialog", zap.Stringer("kind", msg.Kind))
		return a, nil

	case views.SwitchToEditMsg:
		a.state = ViewEdit
		return a, a.edit.Load()

	case views.SwitchToNewListMsg:
		a.state = ViewNewList
		return a, a.newList.Reset()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToCountersMsg:
		a.state = ViewCounters
		a.counters.Refresh()
		return a, nil

	case views.DoneMsg:
		a.state = ViewCounters
		a.counters.Refresh()
		switch {
		case msg.Err != nil:
			a.counters.SetMessage(msg.Err.Error(), true)
		case msg.Message != "":
			a.counters.SetMessage(msg.Message, false)
		}
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewCounters:
		_, cmd = a.counters.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewEdit:
		_, cmd = a.edit.Update(msg)
	case ViewNewList:
		_, cmd = a.newList.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewConfirm:
		return a.confirm.View()
	case ViewEdit:
		return a.edit.View()
	case ViewNewList:
		return a.newList.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.counters.View()
	}
}
