package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/application/commands"
)

// NewListModel prompts for the name of a new counter list
type NewListModel struct {
	ViewState
	ctrl commands.Controller
	form *InputForm
}

// NewNewListModel creates a new list-creation view model
func NewNewListModel(ctrl commands.Controller) *NewListModel {
	return &NewListModel{
		ctrl: ctrl,
		form: NewInputForm(NewInputField("Name", "Workouts", 60)),
	}
}

// Reset clears the form for a fresh entry
func (m *NewListModel) Reset() tea.Cmd {
	m.ClearMessage()
	m.form.Reset()
	return m.form.Init()
}

// Init initializes the view
func (m *NewListModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the view
func (m *NewListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToCountersMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			result, err := commands.NewAddListCommand(m.ctrl, m.form.Value(0)).Execute(context.Background())
			if err != nil {
				m.form.SetError(0, err.Error())
				return m, nil
			}
			return m, func() tea.Msg { return DoneMsg{Message: result.Message} }
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// View renders the view
func (m *NewListModel) View() string {
	return NewViewBuilder().
		Title("New List").
		Line(m.form.RenderField(0)).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("create")).
		String()
}
