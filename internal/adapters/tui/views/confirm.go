package views

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/adapters/tui/styles"
	"tally/internal/application"
)

// ConfirmModel shows a delete or reset confirmation for one counter
type ConfirmModel struct {
	ConfirmationModel
	dialog *application.ConfirmDialog
}

// NewConfirmModel creates a confirmation view for dialog
func NewConfirmModel(dialog *application.ConfirmDialog) *ConfirmModel {
	return &ConfirmModel{
		ConfirmationModel: NewConfirmationModel(),
		dialog:            dialog,
	}
}

// Init initializes the confirmation view
func (m *ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg, m.confirm, m.cancel)
		if handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *ConfirmModel) confirm() tea.Msg {
	target, _ := m.dialog.Target()
	applied, err := m.dialog.Confirm()
	if err != nil {
		return DoneMsg{Err: err}
	}
	if !applied {
		return DoneMsg{}
	}

	switch m.dialog.Kind() {
	case application.DialogReset:
		return DoneMsg{Message: fmt.Sprintf("Reset %s to %d", target.Name, target.ResetValue)}
	default:
		return DoneMsg{Message: fmt.Sprintf("Deleted %s", target.Name)}
	}
}

func (m *ConfirmModel) cancel() tea.Msg {
	m.dialog.Cancel()
	return SwitchToCountersMsg{}
}

// View renders the confirmation view
func (m *ConfirmModel) View() string {
	target, ok := m.dialog.Target()
	v := NewViewBuilder()

	switch m.dialog.Kind() {
	case application.DialogReset:
		v.Title("Reset Counter")
		if ok {
			v.Counter("Reset counter", target).
				BlankLine().
				Muted(fmt.Sprintf("  Value goes from %d back to %d.", target.Value, target.ResetValue)).
				BlankLine()
		}
		v.Raw(RenderConfirmPrompt("Reset this counter?"))
	default:
		v.Title("Delete Counter")
		v.Line(styles.ErrorMsg.Render("This action cannot be undone!")).BlankLine()
		if ok {
			v.Counter("Delete counter", target).BlankLine()
		}
		v.Raw(RenderConfirmPrompt("Are you sure?"))
	}

	return v.String()
}
