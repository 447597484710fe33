package domain

// ShouldReorder decides whether hovering the pointer over the row at
// hoverIndex, while dragging the row at dragIndex, moves the dragged row.
// hoverTop and hoverBottom bound the hovered row on the same axis as pointerY.
//
// Dragging down only moves once the pointer reaches the lower half of the
// hovered row; dragging up only once it reaches the upper half.
func ShouldReorder(dragIndex, hoverIndex, pointerY, hoverTop, hoverBottom int) bool {
	if dragIndex == hoverIndex {
		return false
	}
	middle := (hoverBottom - hoverTop) / 2
	offset := pointerY - hoverTop

	if dragIndex < hoverIndex && offset < middle {
		return false
	}
	if dragIndex > hoverIndex && offset > middle {
		return false
	}
	return true
}

// DragTracker turns a stream of hover events into discrete reorders
type DragTracker struct {
	active bool
	id     string
	index  int
}

// Begin starts dragging the counter with the given id from index
func (d *DragTracker) Begin(id string, index int) {
	d.active = true
	d.id = id
	d.index = index
}

// Active reports whether a drag is in progress
func (d *DragTracker) Active() bool {
	return d.active
}

// DraggedID returns the id of the counter being dragged
func (d *DragTracker) DraggedID() string {
	return d.id
}

// Index returns the current position of the dragged counter
func (d *DragTracker) Index() int {
	return d.index
}

// Hover reports a pointer position over the row at hoverIndex. When the
// crossing rule fires it returns the move to apply and assumes the caller
// applies it: the tracked index follows the dragged row to hoverIndex.
func (d *DragTracker) Hover(hoverIndex, pointerY, hoverTop, hoverBottom int) (from, to int, ok bool) {
	if !d.active {
		return 0, 0, false
	}
	if !ShouldReorder(d.index, hoverIndex, pointerY, hoverTop, hoverBottom) {
		return 0, 0, false
	}
	from = d.index
	d.index = hoverIndex
	return from, hoverIndex, true
}

// Drop ends the drag and returns the id of the dragged counter
func (d *DragTracker) Drop() string {
	id := d.id
	*d = DragTracker{}
	return id
}
