package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tally/internal/adapters/tui/styles"
	"tally/internal/application"
	"tally/internal/domain"
)

// rowHeight is the number of terminal lines each counter occupies
const rowHeight = 2

// footerHeight covers the message, status and help lines plus padding
const footerHeight = 5

// CounterKeyMap defines key bindings for the counter list view
type CounterKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Increment key.Binding
	Decrement key.Binding
	New       key.Binding
	Edit      key.Binding
	Reset     key.Binding
	Delete    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Copy      key.Binding
	PrevList  key.Binding
	NextList  key.Binding
	NewList   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var CounterKeys = CounterKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Increment: key.NewBinding(
		key.WithKeys("+", "=", "l", "right"),
		key.WithHelp("+/l/→", "increment"),
	),
	Decrement: key.NewBinding(
		key.WithKeys("-", "h", "left"),
		key.WithHelp("-/h/←", "decrement"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new counter"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy value"),
	),
	PrevList: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "previous list"),
	),
	NextList: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next list"),
	),
	NewList: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "new list"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// CountersModel is the main view: the current list's counters
type CountersModel struct {
	ViewState
	ctrl  *application.Controller
	pager *Paginator
	drag  domain.DragTracker
}

// NewCountersModel creates a new counter list model
func NewCountersModel(ctrl *application.Controller) *CountersModel {
	m := &CountersModel{
		ctrl:  ctrl,
		pager: NewPaginator(10),
	}
	m.Refresh()
	return m
}

// Init initializes the view
func (m *CountersModel) Init() tea.Cmd {
	return nil
}

// Refresh resyncs the cursor with the controller after outside changes
func (m *CountersModel) Refresh() {
	m.pager.SetTotal(m.ctrl.Len())
}

type copiedMsg struct {
	name  string
	value string
}

type errMsg struct {
	err error
}

// Update handles messages for the counter list
func (m *CountersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case copiedMsg:
		m.SetMessage(fmt.Sprintf("Copied %s (%s) to clipboard", msg.value, msg.name), false)
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *CountersModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	cursor := m.pager.Cursor()

	switch {
	case key.Matches(msg, CounterKeys.Quit):
		return tea.Quit

	case key.Matches(msg, CounterKeys.Up):
		m.pager.CursorUp()

	case key.Matches(msg, CounterKeys.Down):
		m.pager.CursorDown()

	case key.Matches(msg, CounterKeys.Increment):
		m.report(m.ctrl.Increment(cursor))

	case key.Matches(msg, CounterKeys.Decrement):
		m.report(m.ctrl.Decrement(cursor))

	case key.Matches(msg, CounterKeys.New):
		added := m.ctrl.AddCounter()
		m.Refresh()
		m.pager.SetCursor(m.ctrl.Len() - 1)
		m.SetMessage(fmt.Sprintf("Added %s", added.Name), false)

	case key.Matches(msg, CounterKeys.Edit):
		if m.ctrl.EditDialog().OpenAt(cursor) {
			return func() tea.Msg { return SwitchToEditMsg{} }
		}

	case key.Matches(msg, CounterKeys.Reset):
		if m.ctrl.ResetDialog().OpenAt(cursor) {
			return func() tea.Msg { return SwitchToConfirmMsg{Kind: application.DialogReset} }
		}

	case key.Matches(msg, CounterKeys.Delete):
		if m.ctrl.DeleteDialog().OpenAt(cursor) {
			return func() tea.Msg { return SwitchToConfirmMsg{Kind: application.DialogDelete} }
		}

	case key.Matches(msg, CounterKeys.MoveUp):
		m.move(cursor, cursor-1)

	case key.Matches(msg, CounterKeys.MoveDown):
		m.move(cursor, cursor+1)

	case key.Matches(msg, CounterKeys.Copy):
		if c, ok := m.ctrl.Counter(cursor); ok {
			return copyValue(c)
		}

	case key.Matches(msg, CounterKeys.PrevList):
		m.switchList(-1)

	case key.Matches(msg, CounterKeys.NextList):
		m.switchList(1)

	case key.Matches(msg, CounterKeys.NewList):
		return func() tea.Msg { return SwitchToNewListMsg{} }

	case key.Matches(msg, CounterKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return nil
}

func copyValue(c application.Counter) tea.Cmd {
	value := strconv.FormatInt(c.Value, 10)
	return func() tea.Msg {
		if err := clipboard.WriteAll(value); err != nil {
			return errMsg{fmt.Errorf("failed to copy: %w", err)}
		}
		return copiedMsg{name: c.Name, value: value}
	}
}

func (m *CountersModel) report(err error) {
	if err != nil && m.ctrl.Len() > 0 {
		m.SetMessage(err.Error(), true)
	}
}

func (m *CountersModel) move(from, to int) {
	if to < 0 || to >= m.ctrl.Len() {
		return
	}
	if err := m.ctrl.Reorder(from, to); err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.pager.SetCursor(to)
}

func (m *CountersModel) switchList(step int) {
	n := len(m.ctrl.Lists())
	if n < 2 {
		return
	}
	next := (m.ctrl.CurrentListIndex() + step + n) % n
	if err := m.ctrl.SelectList(next); err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.pager.SetCursor(0)
	m.Refresh()
}

// handleMouse drives the drag tracker: press on a row picks it up, motion
// over other rows reorders once the pointer crosses their midpoint, and
// release drops it.
func (m *CountersModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		idx, ok := m.rowAt(msg.Y)
		if !ok {
			return
		}
		c, _ := m.ctrl.Counter(idx)
		m.drag.Begin(c.ID, idx)
		m.pager.SetCursor(idx)

	case tea.MouseActionMotion:
		if !m.drag.Active() {
			return
		}
		idx, ok := m.rowAt(msg.Y)
		if !ok {
			return
		}
		top := m.rowTop(idx)
		from, to, ok := m.drag.Hover(idx, msg.Y, top, top+rowHeight)
		if !ok {
			return
		}
		if err := m.ctrl.Reorder(from, to); err != nil {
			m.drag.Drop()
			m.SetMessage(err.Error(), true)
			return
		}
		m.pager.SetCursor(to)

	case tea.MouseActionRelease:
		if id := m.drag.Drop(); id != "" {
			if i := m.ctrl.IndexOf(id); i >= 0 {
				m.pager.SetCursor(i)
			}
		}
	}
}

// rowsTop is the screen line of the first visible counter row
func (m *CountersModel) rowsTop() int {
	return styles.App.GetPaddingTop() + lipgloss.Height(m.renderHeader()) + 1
}

func (m *CountersModel) rowAt(y int) (int, bool) {
	rel := y - m.rowsTop()
	if rel < 0 {
		return 0, false
	}
	return m.pager.IndexAt(rel / rowHeight)
}

func (m *CountersModel) rowTop(idx int) int {
	start, _ := m.pager.VisibleRange()
	return m.rowsTop() + (idx-start)*rowHeight
}

// SetSize updates the view dimensions and the number of visible rows
func (m *CountersModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	if height > 0 {
		m.pager.SetPageSize((height - m.rowsTop() - footerHeight) / rowHeight)
	}
}

// View renders the counter list
func (m *CountersModel) View() string {
	m.Refresh()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.ctrl.Len() == 0 {
		b.WriteString(RenderMuted("No counters yet. Press n to add one."))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	counters := m.ctrl.Counters()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(counters[i], i == m.pager.Cursor()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		CounterKeys.Increment, CounterKeys.Decrement, CounterKeys.New,
		CounterKeys.Edit, CounterKeys.Help, CounterKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *CountersModel) renderHeader() string {
	current := m.ctrl.CurrentListIndex()
	var tabs []string
	for i, l := range m.ctrl.Lists() {
		label := fmt.Sprintf("%s (%d)", l.Name, len(l.Counters))
		if i == current {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(label))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Tally"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

func (m *CountersModel) renderRow(c application.Counter, selected bool) string {
	marker := "  "
	if selected {
		marker = "▌ "
	}

	line1 := marker + RenderCounterName(c)
	if hint := RenderStepHint(c); hint != "" {
		line1 += " " + hint
	}
	line2 := "  " + RenderCounterValue(c) + "  " + RenderSteps(c)

	row := line1 + "\n" + line2
	switch {
	case m.drag.Active() && m.drag.DraggedID() == c.ID:
		return styles.RowDragged.Render(row)
	case selected:
		return styles.RowSelected.Render(row)
	default:
		return row
	}
}

func (m *CountersModel) renderStatus() string {
	n := m.ctrl.Len()
	if n == 0 {
		return RenderStatus("0 counters")
	}
	start, end := m.pager.VisibleRange()
	above, below := m.pager.HasMore()
	status := fmt.Sprintf("%d-%d of %d", start+1, end, n)
	if above {
		status = "↑ " + status
	}
	if below {
		status += " ↓"
	}
	return RenderStatus(status)
}
