package commands

import (
	"context"
	"fmt"

	"tally/internal/application"
)

// MoveResult contains the result of a move operation
type MoveResult struct {
	Counter application.Counter
	From    int
	To      int
	Message string
}

// MoveCommand moves a counter to a 1-based position in the current list
type MoveCommand struct {
	ctrl     Controller
	Ref      string
	Position int
}

// NewMoveCommand creates a new MoveCommand
func NewMoveCommand(ctrl Controller, ref string, position int) *MoveCommand {
	return &MoveCommand{
		ctrl:     ctrl,
		Ref:      ref,
		Position: position,
	}
}

// Validate checks if the move operation is valid
func (c *MoveCommand) Validate() error {
	if err := application.ValidateRequired("counterRef", c.Ref); err != nil {
		return err
	}

	if c.Position < 1 {
		return &application.ValidationError{
			Field:   "position",
			Message: "position must be 1 or greater",
		}
	}

	return nil
}

// Execute runs the move command
func (c *MoveCommand) Execute(ctx context.Context) (*MoveResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	from, counter, err := ResolveCounter(c.ctrl, c.Ref)
	if err != nil {
		return nil, err
	}

	to := c.Position - 1
	if err := c.ctrl.Reorder(from, to); err != nil {
		return nil, fmt.Errorf("failed to move %s: %w", counter.Name, err)
	}

	return &MoveResult{
		Counter: counter,
		From:    from + 1,
		To:      c.Position,
		Message: fmt.Sprintf("Moved %s from %d to %d", counter.Name, from+1, c.Position),
	}, nil
}
