package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tally/internal/domain"
	"tally/internal/ports"
)

// Controller owns the board and is the only place it is mutated.
// Every successful mutation is followed by a save of the whole board.
// A Controller is not safe for concurrent use.
type Controller struct {
	store  ports.StateStore
	logger *zap.Logger
	board  *domain.Board

	deleteDialog *ConfirmDialog
	resetDialog  *ConfirmDialog
	editDialog   *EditDialog
}

// NewController loads the board from store. When nothing is stored, or the
// stored state cannot be read, it starts from domain.DefaultBoard.
func NewController(ctx context.Context, store ports.StateStore, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		store:  store,
		logger: logger,
	}
	c.deleteDialog = &ConfirmDialog{kind: DialogDelete, ctrl: c}
	c.resetDialog = &ConfirmDialog{kind: DialogReset, ctrl: c}
	c.editDialog = &EditDialog{ctrl: c}

	board, err := store.Load(ctx)
	switch {
	case errors.Is(err, ports.ErrNoState):
		logger.Info("no saved state, starting with default list")
		board = domain.DefaultBoard()
	case err != nil:
		logger.Warn("failed to load saved state, starting with default list", zap.Error(err))
		board = domain.DefaultBoard()
	default:
		logger.Debug("loaded state",
			zap.Int("lists", len(board.Lists)),
			zap.Int("current", board.Current),
		)
	}
	c.board = board
	return c
}

// persist saves the board; failures are logged and otherwise ignored
func (c *Controller) persist(op string) {
	if err := c.store.Save(context.Background(), c.board); err != nil {
		c.logger.Error("failed to save state", zap.String("op", op), zap.Error(err))
		return
	}
	c.logger.Debug("saved state", zap.String("op", op))
}

// mutate applies fn to the board. fn must validate before changing
// anything, so a returned error leaves the board untouched.
func (c *Controller) mutate(op string, fn func(b *domain.Board) error) error {
	if err := fn(c.board); err != nil {
		c.logger.Debug("rejected operation", zap.String("op", op), zap.Error(err))
		return err
	}
	c.closeDanglingDialogs()
	c.persist(op)
	return nil
}

// closeDanglingDialogs closes any dialog whose target is no longer in the
// current list
func (c *Controller) closeDanglingDialogs() {
	c.deleteDialog.sync()
	c.resetDialog.sync()
	c.editDialog.sync()
}

func (c *Controller) list() *domain.CounterList {
	return c.board.CurrentList()
}

// Len returns the number of counters in the current list
func (c *Controller) Len() int {
	return c.list().Len()
}

// Counters returns a copy of the current list's counters
func (c *Controller) Counters() []Counter {
	return c.list().Clone().Counters
}

// Counter returns the counter at index in the current list
func (c *Controller) Counter(index int) (Counter, bool) {
	return c.list().Get(index)
}

// IndexOf returns the position of the counter with id in the current list, or -1
func (c *Controller) IndexOf(id string) int {
	return c.list().IndexOf(id)
}

// AddCounter appends a counter with default values to the current list
func (c *Controller) AddCounter() Counter {
	var added Counter
	_ = c.mutate("add", func(b *domain.Board) error {
		added = b.AddCounter()
		return nil
	})
	c.logger.Info("added counter", zap.String("id", added.ID), zap.String("name", added.Name))
	return added
}

// AdjustValue adds delta to the value of the counter at index. A result
// outside the int64 range returns ErrOverflow and leaves the value as is.
func (c *Controller) AdjustValue(index int, delta int64) error {
	return c.mutate("adjust", func(b *domain.Board) error {
		return b.CurrentList().Adjust(index, delta)
	})
}

// Increment adds the counter's IncrementBy to its value
func (c *Controller) Increment(index int) error {
	counter, ok := c.Counter(index)
	if !ok {
		return c.indexError(index)
	}
	return c.AdjustValue(index, counter.IncrementBy)
}

// SubtractValue subtracts amount from the value of the counter at index
func (c *Controller) SubtractValue(index int, amount int64) error {
	return c.mutate("subtract", func(b *domain.Board) error {
		return b.CurrentList().Subtract(index, amount)
	})
}

// Decrement subtracts the counter's DecrementBy from its value
func (c *Controller) Decrement(index int) error {
	counter, ok := c.Counter(index)
	if !ok {
		return c.indexError(index)
	}
	return c.SubtractValue(index, counter.DecrementBy)
}

// RemoveCounter deletes the counter at index. Dialogs targeting it close.
func (c *Controller) RemoveCounter(index int) error {
	var removed Counter
	err := c.mutate("remove", func(b *domain.Board) error {
		var err error
		removed, err = b.CurrentList().Remove(index)
		return err
	})
	if err == nil {
		c.logger.Info("removed counter", zap.String("id", removed.ID), zap.String("name", removed.Name))
	}
	return err
}

// ReplaceCounter overwrites the counter at index with counter. An empty ID
// keeps the slot's ID. The replacement must have a non-blank name, a known
// color, and an ID not used by another counter.
func (c *Controller) ReplaceCounter(index int, counter Counter) error {
	return c.mutate("replace", func(b *domain.Board) error {
		list := b.CurrentList()
		existing, ok := list.Get(index)
		if !ok {
			return c.indexError(index)
		}
		if counter.ID == "" {
			counter.ID = existing.ID
		}
		if strings.TrimSpace(counter.Name) == "" {
			return &ValidationError{Field: string(FieldName), Message: MsgBlankName}
		}
		if !counter.Color.Valid() {
			return &ValidationError{Field: string(FieldColor), Message: fmt.Sprintf("unknown color %q", counter.Color)}
		}
		if other := list.IndexOf(counter.ID); other >= 0 && other != index {
			return &ValidationError{Field: "id", Message: fmt.Sprintf("id %s is already used", counter.ID)}
		}
		return list.Replace(index, counter)
	})
}

// Reorder moves the counter at from to position to, shifting the counters
// in between by one
func (c *Controller) Reorder(from, to int) error {
	return c.mutate("reorder", func(b *domain.Board) error {
		return b.CurrentList().Move(from, to)
	})
}

// ResetCounter sets the value of the counter at index to its reset value
func (c *Controller) ResetCounter(index int) error {
	return c.mutate("reset", func(b *domain.Board) error {
		return b.CurrentList().Reset(index)
	})
}

// Lists returns a copy of every list
func (c *Controller) Lists() []CounterList {
	return c.board.Clone().Lists
}

// CurrentListIndex returns the position of the current list
func (c *Controller) CurrentListIndex() int {
	c.list()
	return c.board.Current
}

// CurrentList returns a copy of the current list
func (c *Controller) CurrentList() CounterList {
	return c.list().Clone()
}

// AddList creates an empty list and makes it current
func (c *Controller) AddList(name string) (CounterList, error) {
	var added CounterList
	err := c.mutate("add-list", func(b *domain.Board) error {
		var err error
		added, err = b.AddList(name)
		return err
	})
	return added, err
}

// SelectList makes the list at index current
func (c *Controller) SelectList(index int) error {
	return c.mutate("select-list", func(b *domain.Board) error {
		return b.SelectList(index)
	})
}

// RenameList renames the list at index
func (c *Controller) RenameList(index int, name string) error {
	return c.mutate("rename-list", func(b *domain.Board) error {
		return b.RenameList(index, name)
	})
}

// RemoveList deletes the list at index and its counters. The last
// remaining list cannot be removed.
func (c *Controller) RemoveList(index int) error {
	return c.mutate("remove-list", func(b *domain.Board) error {
		_, err := b.RemoveList(index)
		return err
	})
}

// DeleteDialog returns the delete confirmation dialog
func (c *Controller) DeleteDialog() *ConfirmDialog {
	return c.deleteDialog
}

// ResetDialog returns the reset confirmation dialog
func (c *Controller) ResetDialog() *ConfirmDialog {
	return c.resetDialog
}

// EditDialog returns the edit dialog
func (c *Controller) EditDialog() *EditDialog {
	return c.editDialog
}

func (c *Controller) indexError(index int) error {
	return fmt.Errorf("%w: %d (list has %d counters)", ErrInvalidIndex, index, c.Len())
}
