package application

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"tally/internal/domain"
)

// Messages attached to invalid edit-form fields
const (
	MsgBlankName  = "Name cannot be blank."
	MsgNotInteger = "Value must be an integer."
)

// Field names an editable counter attribute
type Field string

const (
	FieldName        Field = "name"
	FieldValue       Field = "value"
	FieldResetValue  Field = "resetValue"
	FieldIncrementBy Field = "incrementBy"
	FieldDecrementBy Field = "decrementBy"
	FieldColor       Field = "color"
)

// TextFields lists the free-text fields in form order
var TextFields = []Field{FieldName, FieldValue, FieldResetValue, FieldDecrementBy, FieldIncrementBy}

// Label returns the form label for f
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldValue:
		return "Value"
	case FieldResetValue:
		return "Reset Value"
	case FieldIncrementBy:
		return "Add By"
	case FieldDecrementBy:
		return "Subtract By"
	case FieldColor:
		return "Color"
	default:
		return string(f)
	}
}

// EditForm is a partial edit of a counter. A nil field is untouched and
// keeps the counter's current value.
type EditForm struct {
	Name        *string
	Value       *string
	ResetValue  *string
	IncrementBy *string
	DecrementBy *string
	Color       *domain.Color
}

// Set records raw text for a text field; unknown fields are ignored
func (f *EditForm) Set(field Field, raw string) {
	if p := f.text(field); p != nil {
		*p = &raw
	}
}

// Get returns the raw text entered for a field, or nil when untouched
func (f *EditForm) Get(field Field) *string {
	if p := f.text(field); p != nil {
		return *p
	}
	return nil
}

// SetColor records a color selection
func (f *EditForm) SetColor(c domain.Color) {
	f.Color = &c
}

// Touched reports whether any field was entered
func (f *EditForm) Touched() bool {
	for _, field := range TextFields {
		if f.Get(field) != nil {
			return true
		}
	}
	return f.Color != nil
}

func (f *EditForm) text(field Field) **string {
	switch field {
	case FieldName:
		return &f.Name
	case FieldValue:
		return &f.Value
	case FieldResetValue:
		return &f.ResetValue
	case FieldIncrementBy:
		return &f.IncrementBy
	case FieldDecrementBy:
		return &f.DecrementBy
	default:
		return nil
	}
}

// FieldErrors maps each invalid field to its message
type FieldErrors map[Field]string

// Err returns nil when there are no errors, otherwise one ValidationError
// per field in form order
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	var errs []error
	for _, field := range slices.Concat(TextFields, []Field{FieldColor}) {
		if msg, ok := e[field]; ok {
			errs = append(errs, &ValidationError{Field: string(field), Message: msg})
		}
	}
	return errors.Join(errs...)
}

// ValidateEdit applies form to current. It returns the complete replacement
// counter and the errors found; the replacement must only be committed when
// errs is empty. Each field is checked independently so every problem is
// reported in one pass.
func ValidateEdit(current domain.Counter, form EditForm) (domain.Counter, FieldErrors) {
	next := current
	errs := FieldErrors{}

	if form.Name != nil {
		name := strings.TrimSpace(*form.Name)
		if name == "" {
			errs[FieldName] = MsgBlankName
		} else {
			next.Name = name
		}
	}

	numeric := []struct {
		field Field
		raw   *string
		dst   *int64
	}{
		{FieldValue, form.Value, &next.Value},
		{FieldResetValue, form.ResetValue, &next.ResetValue},
		{FieldIncrementBy, form.IncrementBy, &next.IncrementBy},
		{FieldDecrementBy, form.DecrementBy, &next.DecrementBy},
	}
	for _, n := range numeric {
		if n.raw == nil {
			continue
		}
		v, err := ParseInteger(*n.raw)
		if err != nil {
			errs[n.field] = MsgNotInteger
			continue
		}
		*n.dst = v
	}

	if form.Color != nil {
		next.Color = *form.Color
	}

	return next, errs
}

// ParseInteger parses a base-10 integer, ignoring surrounding whitespace.
// The whole string must be the number.
func ParseInteger(raw string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
}

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "listRef" -> "list")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"counterRef":  "counter",
		"listRef":     "list",
		"name":        "name",
		"position":    "position",
		"resetValue":  "reset value",
		"incrementBy": "increment",
		"decrementBy": "decrement",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
