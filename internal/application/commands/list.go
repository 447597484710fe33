package commands

import (
	"context"

	"tally/internal/application"
)

// ListCountersResult is the current list and its counters
type ListCountersResult struct {
	List     application.CounterList
	Position int
}

// ListCountersCommand lists the counters of the current list
type ListCountersCommand struct {
	ctrl Controller
}

// NewListCountersCommand creates a new ListCountersCommand
func NewListCountersCommand(ctrl Controller) *ListCountersCommand {
	return &ListCountersCommand{ctrl: ctrl}
}

// Execute runs the list counters command
func (c *ListCountersCommand) Execute(ctx context.Context) (*ListCountersResult, error) {
	return &ListCountersResult{
		List:     c.ctrl.CurrentList(),
		Position: c.ctrl.CurrentListIndex() + 1,
	}, nil
}

// ListSummary describes one list without its counters
type ListSummary struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Counters int    `json:"counters"`
	Current  bool   `json:"current"`
}

// ListListsCommand lists every counter list
type ListListsCommand struct {
	ctrl Controller
}

// NewListListsCommand creates a new ListListsCommand
func NewListListsCommand(ctrl Controller) *ListListsCommand {
	return &ListListsCommand{ctrl: ctrl}
}

// Execute runs the list lists command
func (c *ListListsCommand) Execute(ctx context.Context) ([]ListSummary, error) {
	current := c.ctrl.CurrentListIndex()
	lists := c.ctrl.Lists()

	summaries := make([]ListSummary, 0, len(lists))
	for i, l := range lists {
		summaries = append(summaries, ListSummary{
			Position: i + 1,
			ID:       l.ID,
			Name:     l.Name,
			Counters: len(l.Counters),
			Current:  i == current,
		})
	}
	return summaries, nil
}
