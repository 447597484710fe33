package application

import "tally/internal/domain"

// Re-export domain types for use by adapters
type (
	Counter     = domain.Counter
	CounterList = domain.CounterList
	Color       = domain.Color
)

// Re-export colors for use by adapters
const (
	ColorPrimary   = domain.ColorPrimary
	ColorSecondary = domain.ColorSecondary
	ColorSuccess   = domain.ColorSuccess
	ColorWarning   = domain.ColorWarning
	ColorError     = domain.ColorError
	ColorInfo      = domain.ColorInfo
)

// Colors lists every color in display order
var Colors = domain.Colors

// ParseColor returns the Color named by s
func ParseColor(s string) (Color, error) {
	return domain.ParseColor(s)
}
