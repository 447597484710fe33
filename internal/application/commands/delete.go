package commands

import (
	"context"
	"fmt"

	"tally/internal/application"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Deleted application.Counter
	Message string
}

// DeleteCommand removes a counter from the current list
type DeleteCommand struct {
	ctrl Controller
	Ref  string
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(ctrl Controller, ref string) *DeleteCommand {
	return &DeleteCommand{
		ctrl: ctrl,
		Ref:  ref,
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	index, counter, err := ResolveCounter(c.ctrl, c.Ref)
	if err != nil {
		return nil, err
	}

	if err := c.ctrl.RemoveCounter(index); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", counter.ID, err)
	}

	return &DeleteResult{
		Deleted: counter,
		Message: fmt.Sprintf("Deleted %s (%s)", counter.Name, counter.ID),
	}, nil
}
