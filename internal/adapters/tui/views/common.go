package views

import "tally/internal/application"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Messages for view switching
type SwitchToConfirmMsg struct {
	Kind application.DialogKind
}

type SwitchToEditMsg struct{}

type SwitchToNewListMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToCountersMsg struct{}

// DoneMsg returns to the counter list, reporting the outcome of a dialog
type DoneMsg struct {
	Message string
	Err     error
}
