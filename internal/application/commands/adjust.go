package commands

import (
	"context"
	"fmt"

	"tally/internal/application"
)

// AdjustResult contains the result of an increment or decrement
type AdjustResult struct {
	Counter  application.Counter
	Previous int64
	Message  string
}

// AdjustCommand increments or decrements a counter. Without an explicit
// amount the counter's own step is used.
type AdjustCommand struct {
	ctrl      Controller
	Ref       string
	Amount    *int64
	Decrement bool
}

// NewAdjustCommand creates a new AdjustCommand
func NewAdjustCommand(ctrl Controller, ref string, amount *int64, decrement bool) *AdjustCommand {
	return &AdjustCommand{
		ctrl:      ctrl,
		Ref:       ref,
		Amount:    amount,
		Decrement: decrement,
	}
}

// Validate checks if the adjust operation is valid
func (c *AdjustCommand) Validate() error {
	return application.ValidateRequired("counterRef", c.Ref)
}

// Execute runs the adjust command
func (c *AdjustCommand) Execute(ctx context.Context) (*AdjustResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	index, before, err := ResolveCounter(c.ctrl, c.Ref)
	if err != nil {
		return nil, err
	}

	switch {
	case c.Amount != nil && c.Decrement:
		err = c.ctrl.SubtractValue(index, *c.Amount)
	case c.Amount != nil:
		err = c.ctrl.AdjustValue(index, *c.Amount)
	case c.Decrement:
		err = c.ctrl.Decrement(index)
	default:
		err = c.ctrl.Increment(index)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to adjust %s: %w", before.Name, err)
	}

	after, _ := c.ctrl.Counter(index)
	return &AdjustResult{
		Counter:  after,
		Previous: before.Value,
		Message:  fmt.Sprintf("%s: %d -> %d", after.Name, before.Value, after.Value),
	}, nil
}
