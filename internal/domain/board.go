package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultListName names the list a fresh board starts with
const DefaultListName = "Counters"

// Board holds every counter list, which one is current, and the monotonic
// generators for counter and list ids. Generators only ever grow, so an id
// freed by a deletion is never handed out again.
type Board struct {
	Lists         []CounterList
	Current       int
	NextCounterID int
	NextListID    int
}

// DefaultBoard returns the state used when nothing has been persisted yet:
// one list holding a single "Counter 0".
func DefaultBoard() *Board {
	return &Board{
		Lists: []CounterList{
			{
				ID:       ListID(0),
				Name:     DefaultListName,
				Counters: []Counter{NewCounter(CounterID(0), DefaultCounterName(0))},
			},
		},
		Current:       0,
		NextCounterID: 1,
		NextListID:    1,
	}
}

// CurrentList returns the list counters operations apply to
func (b *Board) CurrentList() *CounterList {
	if len(b.Lists) == 0 {
		b.Normalize()
	}
	if b.Current < 0 || b.Current >= len(b.Lists) {
		b.Current = 0
	}
	return &b.Lists[b.Current]
}

// MintCounterID returns a fresh counter id and advances the generator
func (b *Board) MintCounterID() string {
	id := CounterID(b.NextCounterID)
	b.NextCounterID++
	return id
}

// AddCounter appends a default counter to the current list
func (b *Board) AddCounter() Counter {
	list := b.CurrentList()
	c := NewCounter(b.MintCounterID(), DefaultCounterName(list.Len()))
	list.Append(c)
	return c
}

// AddList appends an empty list and makes it current
func (b *Board) AddList(name string) (CounterList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CounterList{}, ErrBlankName
	}
	l := CounterList{ID: ListID(b.NextListID), Name: name, Counters: []Counter{}}
	b.NextListID++
	b.Lists = append(b.Lists, l)
	b.Current = len(b.Lists) - 1
	return l, nil
}

// SelectList makes the list at i current
func (b *Board) SelectList(i int) error {
	if err := b.validList(i); err != nil {
		return err
	}
	b.Current = i
	return nil
}

// RenameList changes the name of the list at i
func (b *Board) RenameList(i int, name string) error {
	if err := b.validList(i); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	b.Lists[i].Name = name
	return nil
}

// RemoveList deletes the list at i. The current index follows the list it
// pointed at, or falls back to the previous one when that list was removed.
func (b *Board) RemoveList(i int) (CounterList, error) {
	if err := b.validList(i); err != nil {
		return CounterList{}, err
	}
	if len(b.Lists) == 1 {
		return CounterList{}, ErrLastList
	}
	removed := b.Lists[i]
	b.Lists = append(b.Lists[:i], b.Lists[i+1:]...)
	switch {
	case b.Current > i:
		b.Current--
	case b.Current == i && i > 0:
		b.Current = i - 1
	}
	return removed, nil
}

// ListIndex returns the position of the list with the given id, or -1
func (b *Board) ListIndex(id string) int {
	for i, l := range b.Lists {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func (b *Board) validList(i int) error {
	if i < 0 || i >= len(b.Lists) {
		return fmt.Errorf("%w: list %d (board has %d lists)", ErrIndexOutOfRange, i, len(b.Lists))
	}
	return nil
}

// Normalize repairs a board read from storage: it guarantees at least one
// list, clamps the current index, fills missing ids, and moves the id
// generators past every id already in use.
func (b *Board) Normalize() {
	if len(b.Lists) == 0 {
		def := DefaultBoard()
		b.Lists = def.Lists
	}
	if b.Current < 0 || b.Current >= len(b.Lists) {
		b.Current = 0
	}

	for i := range b.Lists {
		if n, ok := idSuffix(b.Lists[i].ID, "counter-list-"); ok && n >= b.NextListID {
			b.NextListID = n + 1
		}
		for _, c := range b.Lists[i].Counters {
			if n, ok := idSuffix(c.ID, "counter-"); ok && n >= b.NextCounterID {
				b.NextCounterID = n + 1
			}
		}
	}

	seen := make(map[string]bool)
	for i := range b.Lists {
		l := &b.Lists[i]
		if l.ID == "" {
			l.ID = ListID(b.NextListID)
			b.NextListID++
		}
		if strings.TrimSpace(l.Name) == "" {
			l.Name = DefaultListName
		}
		if l.Counters == nil {
			l.Counters = []Counter{}
		}
		for j := range l.Counters {
			c := &l.Counters[j]
			if c.ID == "" || seen[c.ID] {
				c.ID = b.MintCounterID()
			}
			seen[c.ID] = true
			if !c.Color.Valid() {
				c.Color = ColorPrimary
			}
		}
	}
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	out := *b
	out.Lists = make([]CounterList, len(b.Lists))
	for i, l := range b.Lists {
		out.Lists[i] = l.Clone()
	}
	return &out
}

func idSuffix(id, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
