package views

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/adapters/tui/styles"
	"tally/internal/application"
)

// EditKeyMap defines key bindings for the edit view
type EditKeyMap struct {
	NextColor key.Binding
	PrevColor key.Binding
}

var EditKeys = EditKeyMap{
	NextColor: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "next color"),
	),
	PrevColor: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "previous color"),
	),
}

// EditModel is the form for changing a counter's fields
type EditModel struct {
	ViewState
	dialog *application.EditDialog
	form   *InputForm
	seen   []string
}

// NewEditModel creates a new edit view model
func NewEditModel(dialog *application.EditDialog) *EditModel {
	fields := make([]InputField, 0, len(application.TextFields))
	for _, f := range application.TextFields {
		limit := 20
		if f == application.FieldName {
			limit = 60
		}
		fields = append(fields, NewInputField(f.Label(), f.Label(), limit))
	}

	return &EditModel{
		dialog: dialog,
		form:   NewInputForm(fields...),
		seen:   make([]string, len(fields)),
	}
}

// Load fills the form from the counter the dialog is editing
func (m *EditModel) Load() tea.Cmd {
	m.ClearMessage()
	m.form.Reset()

	target, ok := m.dialog.Target()
	if !ok {
		return nil
	}

	for i, f := range application.TextFields {
		text := fieldText(target, f)
		m.form.SetValue(i, text)
		m.seen[i] = text
	}
	return m.form.Init()
}

func fieldText(c application.Counter, f application.Field) string {
	switch f {
	case application.FieldName:
		return c.Name
	case application.FieldValue:
		return strconv.FormatInt(c.Value, 10)
	case application.FieldResetValue:
		return strconv.FormatInt(c.ResetValue, 10)
	case application.FieldIncrementBy:
		return strconv.FormatInt(c.IncrementBy, 10)
	case application.FieldDecrementBy:
		return strconv.FormatInt(c.DecrementBy, 10)
	default:
		return ""
	}
}

// Init initializes the edit view
func (m *EditModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the edit view
func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			m.dialog.Cancel()
			return m, func() tea.Msg { return SwitchToCountersMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()

		case key.Matches(msg, EditKeys.NextColor):
			m.dialog.SetColor(m.dialog.Color().Next())
			return m, nil

		case key.Matches(msg, EditKeys.PrevColor):
			m.dialog.SetColor(prevColor(m.dialog.Color()))
			return m, nil
		}
	}

	_, cmd := m.form.Update(msg)
	m.syncFields()
	return m, cmd
}

// syncFields forwards edited text to the dialog. Fields the user has not
// changed stay untouched so they keep the counter's current value.
func (m *EditModel) syncFields() {
	for i, f := range application.TextFields {
		raw := m.form.Raw(i)
		if raw == m.seen[i] {
			continue
		}
		m.seen[i] = raw
		m.dialog.SetField(f, raw)
		m.form.SetError(i, "")
	}
}

func (m *EditModel) submit() tea.Cmd {
	target, _ := m.dialog.Target()
	committed, errs := m.dialog.Submit()
	if committed {
		return func() tea.Msg {
			return DoneMsg{Message: fmt.Sprintf("Saved %s", target.Name)}
		}
	}
	if !m.dialog.IsOpen() {
		return func() tea.Msg { return SwitchToCountersMsg{} }
	}

	for i, f := range application.TextFields {
		m.form.SetError(i, errs[f])
	}
	m.SetMessage("Fix the highlighted fields", true)
	return nil
}

func prevColor(c application.Color) application.Color {
	for i, known := range application.Colors {
		if known == c {
			return application.Colors[(i-1+len(application.Colors))%len(application.Colors)]
		}
	}
	return application.ColorPrimary
}

// View renders the edit view
func (m *EditModel) View() string {
	target, _ := m.dialog.Target()
	v := NewViewBuilder().Title("Edit " + target.Name)

	for i := range m.form.Fields {
		v.Line(m.form.RenderField(i))
	}

	v.Line(styles.InputLabel.Render(application.FieldColor.Label()))
	v.Line(RenderColorPicker(m.dialog.Color())).BlankLine()

	v.Message(m.Message, m.MessageErr)
	v.Raw(m.form.RenderHelp("save", EditKeys.NextColor))

	return v.String()
}
