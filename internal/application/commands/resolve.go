package commands

import (
	"fmt"
	"strconv"
	"strings"

	"tally/internal/application"
)

// Controller is the state the commands operate on
type Controller interface {
	Len() int
	Counters() []application.Counter
	Counter(index int) (application.Counter, bool)
	IndexOf(id string) int

	AddCounter() application.Counter
	AdjustValue(index int, delta int64) error
	SubtractValue(index int, amount int64) error
	Increment(index int) error
	Decrement(index int) error
	RemoveCounter(index int) error
	ReplaceCounter(index int, counter application.Counter) error
	Reorder(from, to int) error
	ResetCounter(index int) error

	Lists() []application.CounterList
	CurrentListIndex() int
	CurrentList() application.CounterList
	AddList(name string) (application.CounterList, error)
	SelectList(index int) error
	RenameList(index int, name string) error
	RemoveList(index int) error

	EditDialog() *application.EditDialog
}

// Ensure the application controller satisfies Controller
var _ Controller = (*application.Controller)(nil)

// ResolveCounter finds a counter in the current list by ID, 1-based
// position or exact name, in that order
func ResolveCounter(ctrl Controller, ref string) (int, application.Counter, error) {
	ref = strings.TrimSpace(ref)
	if err := application.ValidateRequired("counterRef", ref); err != nil {
		return -1, application.Counter{}, err
	}

	if i := ctrl.IndexOf(ref); i >= 0 {
		c, _ := ctrl.Counter(i)
		return i, c, nil
	}

	if pos, err := strconv.Atoi(ref); err == nil {
		if c, ok := ctrl.Counter(pos - 1); ok {
			return pos - 1, c, nil
		}
		return -1, application.Counter{}, fmt.Errorf("%w: position %d (list has %d counters)",
			application.ErrInvalidIndex, pos, ctrl.Len())
	}

	for i, c := range ctrl.Counters() {
		if c.Name == ref {
			return i, c, nil
		}
	}

	return -1, application.Counter{}, &application.NotFoundError{Kind: "counter", Ref: ref}
}

// ResolveList finds a list by ID, 1-based position or exact name
func ResolveList(ctrl Controller, ref string) (int, application.CounterList, error) {
	ref = strings.TrimSpace(ref)
	if err := application.ValidateRequired("listRef", ref); err != nil {
		return -1, application.CounterList{}, err
	}

	lists := ctrl.Lists()
	for i, l := range lists {
		if l.ID == ref {
			return i, l, nil
		}
	}

	if pos, err := strconv.Atoi(ref); err == nil {
		if pos < 1 || pos > len(lists) {
			return -1, application.CounterList{}, fmt.Errorf("%w: list %d (have %d lists)",
				application.ErrInvalidIndex, pos, len(lists))
		}
		return pos - 1, lists[pos-1], nil
	}

	for i, l := range lists {
		if l.Name == ref {
			return i, l, nil
		}
	}

	return -1, application.CounterList{}, &application.NotFoundError{Kind: "list", Ref: ref}
}
