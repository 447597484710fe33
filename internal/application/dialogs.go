package application

import "maps"

// DialogKind identifies what a ConfirmDialog does when confirmed
type DialogKind int

const (
	DialogDelete DialogKind = iota
	DialogReset
)

func (k DialogKind) String() string {
	switch k {
	case DialogDelete:
		return "delete"
	case DialogReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ConfirmDialog asks for confirmation before deleting or resetting one
// counter. It targets the counter by ID, so reordering while it is open
// does not change which counter it acts on.
type ConfirmDialog struct {
	kind   DialogKind
	ctrl   *Controller
	open   bool
	target string
}

// Kind returns the action performed on confirm
func (d *ConfirmDialog) Kind() DialogKind {
	return d.kind
}

// Open targets the counter with id. It reports false and stays closed
// when no such counter is in the current list.
func (d *ConfirmDialog) Open(id string) bool {
	if d.ctrl.IndexOf(id) < 0 {
		return false
	}
	d.open = true
	d.target = id
	return true
}

// OpenAt targets the counter at index
func (d *ConfirmDialog) OpenAt(index int) bool {
	c, ok := d.ctrl.Counter(index)
	if !ok {
		return false
	}
	return d.Open(c.ID)
}

// IsOpen reports whether the dialog is showing
func (d *ConfirmDialog) IsOpen() bool {
	return d.open
}

// Target returns the live counter the dialog acts on
func (d *ConfirmDialog) Target() (Counter, bool) {
	if !d.open {
		return Counter{}, false
	}
	idx := d.ctrl.IndexOf(d.target)
	if idx < 0 {
		return Counter{}, false
	}
	return d.ctrl.Counter(idx)
}

// Confirm applies the dialog's action to its target and closes it.
// applied is false when the dialog was closed or the target is gone.
func (d *ConfirmDialog) Confirm() (applied bool, err error) {
	if !d.open {
		return false, nil
	}
	idx := d.ctrl.IndexOf(d.target)
	d.Cancel()
	if idx < 0 {
		return false, nil
	}

	switch d.kind {
	case DialogDelete:
		err = d.ctrl.RemoveCounter(idx)
	case DialogReset:
		err = d.ctrl.ResetCounter(idx)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Cancel closes the dialog without acting
func (d *ConfirmDialog) Cancel() {
	d.open = false
	d.target = ""
}

func (d *ConfirmDialog) sync() {
	if d.open && d.ctrl.IndexOf(d.target) < 0 {
		d.Cancel()
	}
}

// EditDialog collects a partial edit for one counter and commits it
// through ValidateEdit. Nothing is written until every field is valid.
type EditDialog struct {
	ctrl     *Controller
	open     bool
	target   string
	snapshot Counter
	form     EditForm
	errs     FieldErrors
}

// Open starts editing the counter with id. It reports false and stays
// closed when no such counter is in the current list.
func (d *EditDialog) Open(id string) bool {
	idx := d.ctrl.IndexOf(id)
	if idx < 0 {
		return false
	}
	c, _ := d.ctrl.Counter(idx)
	d.clear()
	d.open = true
	d.target = id
	d.snapshot = c
	return true
}

// OpenAt starts editing the counter at index
func (d *EditDialog) OpenAt(index int) bool {
	c, ok := d.ctrl.Counter(index)
	if !ok {
		return false
	}
	return d.Open(c.ID)
}

// IsOpen reports whether the dialog is showing
func (d *EditDialog) IsOpen() bool {
	return d.open
}

// Target returns the counter as it was when the dialog opened
func (d *EditDialog) Target() (Counter, bool) {
	return d.snapshot, d.open
}

// SetField records raw text for field and clears any error shown for it
func (d *EditDialog) SetField(field Field, raw string) {
	if !d.open {
		return
	}
	d.form.Set(field, raw)
	delete(d.errs, field)
}

// SetColor records a color selection
func (d *EditDialog) SetColor(c Color) {
	if !d.open {
		return
	}
	d.form.SetColor(c)
}

// Raw returns the text entered for field, or nil when it is untouched
func (d *EditDialog) Raw(field Field) *string {
	return d.form.Get(field)
}

// Color returns the selected color, falling back to the target's
func (d *EditDialog) Color() Color {
	if d.form.Color != nil {
		return *d.form.Color
	}
	return d.snapshot.Color
}

// Errors returns the errors from the last failed submit
func (d *EditDialog) Errors() FieldErrors {
	return maps.Clone(d.errs)
}

// Submit validates the form against the live counter. With no errors it
// replaces the counter, closes and clears the dialog. Otherwise it keeps
// the entered text and records the errors.
func (d *EditDialog) Submit() (committed bool, errs FieldErrors) {
	if !d.open {
		return false, nil
	}
	idx := d.ctrl.IndexOf(d.target)
	if idx < 0 {
		d.Cancel()
		return false, nil
	}
	current, _ := d.ctrl.Counter(idx)

	next, errs := ValidateEdit(current, d.form)
	if len(errs) > 0 {
		d.errs = errs
		return false, maps.Clone(errs)
	}

	if err := d.ctrl.ReplaceCounter(idx, next); err != nil {
		d.errs = FieldErrors{FieldName: err.Error()}
		return false, maps.Clone(d.errs)
	}
	d.Cancel()
	return true, nil
}

// Cancel closes the dialog and discards the form
func (d *EditDialog) Cancel() {
	d.clear()
}

func (d *EditDialog) clear() {
	d.open = false
	d.target = ""
	d.snapshot = Counter{}
	d.form = EditForm{}
	d.errs = nil
}

func (d *EditDialog) sync() {
	if d.open && d.ctrl.IndexOf(d.target) < 0 {
		d.Cancel()
	}
}
