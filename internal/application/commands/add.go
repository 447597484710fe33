package commands

import (
	"context"
	"fmt"
	"strings"

	"tally/internal/application"
)

// AddResult contains the result of an add operation
type AddResult struct {
	Counter  application.Counter
	Position int
	Message  string
}

// AddCommand appends a counter to the current list
type AddCommand struct {
	ctrl Controller
	Name string
}

// NewAddCommand creates a new AddCommand. An empty name keeps the default.
func NewAddCommand(ctrl Controller, name string) *AddCommand {
	return &AddCommand{
		ctrl: ctrl,
		Name: name,
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context) (*AddResult, error) {
	counter := c.ctrl.AddCounter()
	index := c.ctrl.Len() - 1

	if name := strings.TrimSpace(c.Name); name != "" {
		counter.Name = name
		if err := c.ctrl.ReplaceCounter(index, counter); err != nil {
			return nil, fmt.Errorf("failed to name counter: %w", err)
		}
	}

	return &AddResult{
		Counter:  counter,
		Position: index + 1,
		Message:  fmt.Sprintf("Added %s (%s)", counter.Name, counter.ID),
	}, nil
}
