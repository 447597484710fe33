package domain

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrIndexOutOfRange is returned when a position does not address an entry
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrLastList is returned when removing the only remaining list
	ErrLastList = errors.New("cannot remove the last list")
	// ErrBlankName is returned when a list or counter name is empty after trimming
	ErrBlankName = errors.New("name cannot be blank")
	// ErrOverflow is returned when a value change does not fit in an int64
	ErrOverflow = errors.New("value out of range")
)

// CounterList is an ordered, named collection of counters.
// Order is meaningful: it drives display and is persisted.
type CounterList struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Counters []Counter `json:"counters"`
}

// ListID formats the identifier for the n-th minted list
func ListID(n int) string {
	return fmt.Sprintf("counter-list-%d", n)
}

// Len returns the number of counters
func (l *CounterList) Len() int {
	return len(l.Counters)
}

func (l *CounterList) valid(i int) error {
	if i < 0 || i >= len(l.Counters) {
		return fmt.Errorf("%w: %d (list has %d counters)", ErrIndexOutOfRange, i, len(l.Counters))
	}
	return nil
}

// Get returns the counter at i
func (l *CounterList) Get(i int) (Counter, bool) {
	if l.valid(i) != nil {
		return Counter{}, false
	}
	return l.Counters[i], true
}

// IndexOf returns the position of the counter with the given id, or -1
func (l *CounterList) IndexOf(id string) int {
	return slices.IndexFunc(l.Counters, func(c Counter) bool { return c.ID == id })
}

// Append adds c to the end of the list
func (l *CounterList) Append(c Counter) {
	l.Counters = append(l.Counters, c)
}

// Adjust adds delta to the value of the counter at i
func (l *CounterList) Adjust(i int, delta int64) error {
	if err := l.valid(i); err != nil {
		return err
	}
	value, err := AddValue(l.Counters[i].Value, delta)
	if err != nil {
		return err
	}
	l.Counters[i].Value = value
	return nil
}

// Subtract removes amount from the value of the counter at i
func (l *CounterList) Subtract(i int, amount int64) error {
	if err := l.valid(i); err != nil {
		return err
	}
	value, err := SubtractValue(l.Counters[i].Value, amount)
	if err != nil {
		return err
	}
	l.Counters[i].Value = value
	return nil
}

// AddValue returns a+b, or ErrOverflow when the sum does not fit in an int64
func AddValue(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return a, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return sum, nil
}

// SubtractValue returns a-b, or ErrOverflow when the difference does not fit in an int64
func SubtractValue(a, b int64) (int64, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return a, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return diff, nil
}

// Reset sets the value of the counter at i back to its reset value
func (l *CounterList) Reset(i int) error {
	if err := l.valid(i); err != nil {
		return err
	}
	l.Counters[i].Value = l.Counters[i].ResetValue
	return nil
}

// Remove deletes the counter at i, shifting later entries down by one
func (l *CounterList) Remove(i int) (Counter, error) {
	if err := l.valid(i); err != nil {
		return Counter{}, err
	}
	removed := l.Counters[i]
	l.Counters = slices.Delete(l.Counters, i, i+1)
	return removed, nil
}

// Replace overwrites the counter at i with c
func (l *CounterList) Replace(i int, c Counter) error {
	if err := l.valid(i); err != nil {
		return err
	}
	l.Counters[i] = c
	return nil
}

// Move removes the counter at from and reinserts it at to. Entries between
// the two positions shift by one; everything else keeps its place.
func (l *CounterList) Move(from, to int) error {
	if err := l.valid(from); err != nil {
		return err
	}
	if err := l.valid(to); err != nil {
		return err
	}
	if from == to {
		return nil
	}
	moved := l.Counters[from]
	l.Counters = slices.Delete(l.Counters, from, from+1)
	l.Counters = slices.Insert(l.Counters, to, moved)
	return nil
}

// Clone returns a deep copy of the list
func (l CounterList) Clone() CounterList {
	l.Counters = slices.Clone(l.Counters)
	if l.Counters == nil {
		l.Counters = []Counter{}
	}
	return l
}
