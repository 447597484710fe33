package views

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"tally/internal/adapters/tui/styles"
	"tally/internal/application"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderMuted renders muted/secondary text
func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// RenderStatus renders the status bar under the counter rows
func RenderStatus(text string) string {
	return styles.StatusBar.Render(text)
}

// RenderCounterName renders a counter's name in its own color
func RenderCounterName(c application.Counter) string {
	return styles.CounterName.Foreground(styles.CounterColor(c.Color)).Render(c.Name)
}

// RenderCounterValue renders a counter's value right-aligned in its own color
func RenderCounterValue(c application.Counter) string {
	return styles.CounterValue.Foreground(styles.CounterColor(c.Color)).Render(strconv.FormatInt(c.Value, 10))
}

// RenderSteps renders the decrement and increment steps
func RenderSteps(c application.Counter) string {
	return RenderMuted(fmt.Sprintf("-%d / +%d", c.DecrementBy, c.IncrementBy))
}

// RenderStepHint flags counters whose steps do not move the value forward.
// It is empty for ordinary counters.
func RenderStepHint(c application.Counter) string {
	if c.Steps() {
		return ""
	}
	return RenderMuted("(step is zero or negative)")
}

// RenderColorPicker renders every counter color, highlighting selected
func RenderColorPicker(selected application.Color) string {
	var parts []string
	for _, c := range application.Colors {
		if c == selected {
			parts = append(parts, styles.Swatch(c))
			continue
		}
		parts = append(parts, styles.MutedText.Padding(0, 1).Render(c.String()))
	}
	return strings.Join(parts, " ")
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(RenderMuted(text))
	v.b.WriteString("\n")
	return v
}

// Counter adds a labelled summary of c: name, ID, value and steps
func (v *ViewBuilder) Counter(label string, c application.Counter) *ViewBuilder {
	v.Line(styles.InputLabel.Render(label + ":"))
	line := "  " + RenderCounterName(c) + " " +
		RenderMuted(fmt.Sprintf("(%s, value %d)", c.ID, c.Value)) + "  " + RenderSteps(c)
	if hint := RenderStepHint(c); hint != "" {
		line += " " + hint
	}
	return v.Line(line)
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Raw adds raw text without any formatting
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the built view string wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
