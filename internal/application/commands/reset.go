package commands

import (
	"context"
	"fmt"

	"tally/internal/application"
)

// ResetResult contains the result of a reset operation
type ResetResult struct {
	Counter  application.Counter
	Previous int64
	Message  string
}

// ResetCommand sets a counter back to its reset value
type ResetCommand struct {
	ctrl Controller
	Ref  string
}

// NewResetCommand creates a new ResetCommand
func NewResetCommand(ctrl Controller, ref string) *ResetCommand {
	return &ResetCommand{
		ctrl: ctrl,
		Ref:  ref,
	}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context) (*ResetResult, error) {
	index, before, err := ResolveCounter(c.ctrl, c.Ref)
	if err != nil {
		return nil, err
	}

	if err := c.ctrl.ResetCounter(index); err != nil {
		return nil, fmt.Errorf("failed to reset %s: %w", before.Name, err)
	}

	after, _ := c.ctrl.Counter(index)
	return &ResetResult{
		Counter:  after,
		Previous: before.Value,
		Message:  fmt.Sprintf("Reset %s to %d", after.Name, after.Value),
	}, nil
}
