package commands

import (
	"context"
	"fmt"

	"tally/internal/application"
)

// ListResult contains the result of a list operation
type ListResult struct {
	List    application.CounterList
	Message string
}

// AddListCommand creates a counter list and makes it current
type AddListCommand struct {
	ctrl Controller
	Name string
}

// NewAddListCommand creates a new AddListCommand
func NewAddListCommand(ctrl Controller, name string) *AddListCommand {
	return &AddListCommand{
		ctrl: ctrl,
		Name: name,
	}
}

// Validate checks if the add list operation is valid
func (c *AddListCommand) Validate() error {
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the add list command
func (c *AddListCommand) Execute(ctx context.Context) (*ListResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	list, err := c.ctrl.AddList(c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to add list: %w", err)
	}

	return &ListResult{
		List:    list,
		Message: fmt.Sprintf("Created list %s (%s)", list.Name, list.ID),
	}, nil
}

// SelectListCommand makes a list current
type SelectListCommand struct {
	ctrl Controller
	Ref  string
}

// NewSelectListCommand creates a new SelectListCommand
func NewSelectListCommand(ctrl Controller, ref string) *SelectListCommand {
	return &SelectListCommand{
		ctrl: ctrl,
		Ref:  ref,
	}
}

// Execute runs the select list command
func (c *SelectListCommand) Execute(ctx context.Context) (*ListResult, error) {
	index, list, err := ResolveList(c.ctrl, c.Ref)
	if err != nil {
		return nil, err
	}

	if err := c.ctrl.SelectList(index); err != nil {
		return nil, fmt.Errorf("failed to select %s: %w", list.Name, err)
	}

	return &ListResult{
		List:    list,
		Message: fmt.Sprintf("Switched to %s", list.Name),
	}, nil
}

// RenameListCommand renames a list
type RenameListCommand struct {
	ctrl    Controller
	Ref     string
	NewName string
}

// NewRenameListCommand creates a new RenameListCommand
func NewRenameListCommand(ctrl Controller, ref, newName string) *RenameListCommand {
	return &RenameListCommand{
		ctrl:    ctrl,
		Ref:     ref,
		NewName: newName,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameListCommand) Validate() error {
	if err := application.ValidateRequired("listRef", c.Ref); err != nil {
		return err
	}
	return application.ValidateRequired("name", c.NewName)
}

// Execute runs the rename list command
func (c *RenameListCommand) Execute(ctx context.Context) (*ListResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	index, list, err := ResolveList(c.ctrl, c.Ref)
	if err != nil {
		return nil, err
	}

	if err := c.ctrl.RenameList(index, c.NewName); err != nil {
		return nil, fmt.Errorf("failed to rename %s: %w", list.Name, err)
	}

	renamed := c.ctrl.Lists()[index]
	return &ListResult{
		List:    renamed,
		Message: fmt.Sprintf("Renamed %s to %s", list.Name, renamed.Name),
	}, nil
}

// DeleteListCommand removes a list and all of its counters
type DeleteListCommand struct {
	ctrl Controller
	Ref  string
}

// NewDeleteListCommand creates a new DeleteListCommand
func NewDeleteListCommand(ctrl Controller, ref string) *DeleteListCommand {
	return &DeleteListCommand{
		ctrl: ctrl,
		Ref:  ref,
	}
}

// Execute runs the delete list command
func (c *DeleteListCommand) Execute(ctx context.Context) (*ListResult, error) {
	index, list, err := ResolveList(c.ctrl, c.Ref)
	if err != nil {
		return nil, err
	}

	if err := c.ctrl.RemoveList(index); err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", list.Name, err)
	}

	return &ListResult{
		List:    list,
		Message: fmt.Sprintf("Deleted list %s with %d counters", list.Name, len(list.Counters)),
	}, nil
}
