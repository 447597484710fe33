package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/application"
)

func TestEditModel_InvalidFieldKeepsInput(t *testing.T) {
	ctrl := newTestController(t, "Laps")
	if !ctrl.EditDialog().OpenAt(0) {
		t.Fatal("failed to open edit dialog")
	}
	m := NewEditModel(ctrl.EditDialog())
	m.Load()

	if got := m.form.Raw(0); got != "Laps" {
		t.Fatalf("name field prefilled with %q, want Laps", got)
	}

	m.form.SetValue(1, "abc")
	m.syncFields()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if !ctrl.EditDialog().IsOpen() {
		t.Fatal("dialog should stay open on invalid input")
	}
	if m.form.Fields[1].Error != application.MsgNotInteger {
		t.Errorf("value error = %q, want %q", m.form.Fields[1].Error, application.MsgNotInteger)
	}
	if m.form.Raw(1) != "abc" {
		t.Errorf("entered text lost: %q", m.form.Raw(1))
	}
	if !strings.Contains(m.View(), application.MsgNotInteger) {
		t.Error("view should show the field error")
	}

	// fixing the field clears its error and allows the save
	m.form.SetValue(1, "12")
	m.syncFields()
	if m.form.Fields[1].Error != "" {
		t.Errorf("error should clear on change, got %q", m.form.Fields[1].Error)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a done command")
	}
	if _, ok := cmd().(DoneMsg); !ok {
		t.Error("expected DoneMsg after a valid save")
	}
	c, _ := ctrl.Counter(0)
	if c.Value != 12 || c.Name != "Laps" {
		t.Errorf("unexpected counter %+v", c)
	}
}

func TestEditModel_ColorCycle(t *testing.T) {
	ctrl := newTestController(t, "Laps")
	ctrl.EditDialog().OpenAt(0)
	m := NewEditModel(ctrl.EditDialog())
	m.Load()

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	if got := ctrl.EditDialog().Color(); got != application.ColorSecondary {
		t.Errorf("color = %s, want secondary", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	if got := ctrl.EditDialog().Color(); got != application.ColorInfo {
		t.Errorf("color = %s, want info", got)
	}
}

func TestEditModel_Cancel(t *testing.T) {
	ctrl := newTestController(t, "Laps")
	ctrl.EditDialog().OpenAt(0)
	m := NewEditModel(ctrl.EditDialog())
	m.Load()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if ctrl.EditDialog().IsOpen() {
		t.Error("esc should close the dialog")
	}
	if _, ok := cmd().(SwitchToCountersMsg); !ok {
		t.Error("expected switch back to the counter list")
	}
}
