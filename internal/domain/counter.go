package domain

import (
	"fmt"
	"strings"
)

// Color is the display category a user assigns to a counter
type Color string

const (
	ColorPrimary   Color = "primary"
	ColorSecondary Color = "secondary"
	ColorSuccess   Color = "success"
	ColorWarning   Color = "warning"
	ColorError     Color = "error"
	ColorInfo      Color = "info"
)

// Colors lists every color in display order
var Colors = []Color{
	ColorPrimary,
	ColorSecondary,
	ColorSuccess,
	ColorWarning,
	ColorError,
	ColorInfo,
}

// ParseColor returns the Color named by s (case-insensitive)
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("unknown color %q", s)
}

// Valid reports whether c is one of the known colors
func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

// Next returns the color after c, wrapping around
func (c Color) Next() Color {
	for i, known := range Colors {
		if c == known {
			return Colors[(i+1)%len(Colors)]
		}
	}
	return ColorPrimary
}

func (c Color) String() string {
	return string(c)
}

// Counter is one named numeric entry in a counter list
type Counter struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Value       int64  `json:"value"`
	ResetValue  int64  `json:"resetValue"`
	IncrementBy int64  `json:"incrementBy"`
	DecrementBy int64  `json:"decrementBy"` // magnitude, subtracted on decrement
	Color       Color  `json:"color"`
}

// CounterID formats the identifier for the n-th minted counter
func CounterID(n int) string {
	return fmt.Sprintf("counter-%d", n)
}

// NewCounter returns a counter with default field values
func NewCounter(id, name string) Counter {
	return Counter{
		ID:          id,
		Name:        name,
		Value:       0,
		ResetValue:  0,
		IncrementBy: 1,
		DecrementBy: 1,
		Color:       ColorPrimary,
	}
}

// DefaultCounterName is the display name given to a counter created when
// the list holds n counters
func DefaultCounterName(n int) string {
	return fmt.Sprintf("Counter %d", n)
}

// Steps reports whether the increment and decrement amounts move the value
// in their labelled directions
func (c Counter) Steps() bool {
	return c.IncrementBy > 0 && c.DecrementBy > 0
}
