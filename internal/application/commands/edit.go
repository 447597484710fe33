package commands

import (
	"context"
	"fmt"
	"strings"

	"tally/internal/application"
)

// EditResult contains the result of an edit operation
type EditResult struct {
	Before  application.Counter
	After   application.Counter
	Message string
}

// EditCommand changes any subset of a counter's fields. Fields left nil
// keep their current value. Text values go through the same validation as
// the interactive edit form.
type EditCommand struct {
	ctrl  Controller
	Ref   string
	Form  application.EditForm
	Color string
}

// NewEditCommand creates a new EditCommand
func NewEditCommand(ctrl Controller, ref string, form application.EditForm, color string) *EditCommand {
	return &EditCommand{
		ctrl:  ctrl,
		Ref:   ref,
		Form:  form,
		Color: color,
	}
}

// Validate checks if the edit operation is valid
func (c *EditCommand) Validate() error {
	if err := application.ValidateRequired("counterRef", c.Ref); err != nil {
		return err
	}

	if !c.Form.Touched() && strings.TrimSpace(c.Color) == "" {
		return &application.ValidationError{
			Field:   "fields",
			Message: "nothing to change",
		}
	}

	if c.Color != "" {
		if _, err := application.ParseColor(c.Color); err != nil {
			return &application.ValidationError{
				Field:   string(application.FieldColor),
				Message: err.Error(),
			}
		}
	}

	return nil
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context) (*EditResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	index, before, err := ResolveCounter(c.ctrl, c.Ref)
	if err != nil {
		return nil, err
	}

	dialog := c.ctrl.EditDialog()
	if !dialog.Open(before.ID) {
		return nil, &application.NotFoundError{Kind: "counter", Ref: c.Ref}
	}

	for _, field := range application.TextFields {
		if raw := c.Form.Get(field); raw != nil {
			dialog.SetField(field, *raw)
		}
	}
	if c.Form.Color != nil {
		dialog.SetColor(*c.Form.Color)
	}
	if c.Color != "" {
		color, _ := application.ParseColor(c.Color)
		dialog.SetColor(color)
	}

	committed, errs := dialog.Submit()
	if !committed {
		dialog.Cancel()
		if err := errs.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("failed to edit %s", before.ID)
	}

	after, _ := c.ctrl.Counter(index)
	return &EditResult{
		Before:  before,
		After:   after,
		Message: fmt.Sprintf("Updated %s (%s)", after.Name, after.ID),
	}, nil
}
