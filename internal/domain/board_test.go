package domain

import (
	"errors"
	"testing"
)

func TestDefaultBoard(t *testing.T) {
	b := DefaultBoard()

	if len(b.Lists) != 1 {
		t.Fatalf("expected 1 list, got %d", len(b.Lists))
	}
	list := b.CurrentList()
	if list.Len() != 1 {
		t.Fatalf("expected 1 counter, got %d", list.Len())
	}
	c := list.Counters[0]
	if c.Name != "Counter 0" || c.ID != "counter-0" || c.Color != ColorPrimary {
		t.Errorf("unexpected default counter: %+v", c)
	}
}

func TestBoard_AddCounter(t *testing.T) {
	b := DefaultBoard()

	c := b.AddCounter()
	if c.Name != "Counter 1" {
		t.Errorf("expected Counter 1, got %s", c.Name)
	}
	if c.Value != 0 || c.IncrementBy != 1 || c.DecrementBy != 1 || c.Color != ColorPrimary {
		t.Errorf("expected defaults, got %+v", c)
	}
	if b.CurrentList().Len() != 2 {
		t.Errorf("expected 2 counters, got %d", b.CurrentList().Len())
	}
}

func TestBoard_IDsNeverReused(t *testing.T) {
	b := DefaultBoard()
	seen := map[string]bool{"counter-0": true}

	for range 5 {
		c := b.AddCounter()
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}

	list := b.CurrentList()
	last := list.Counters[list.Len()-1]
	if _, err := list.Remove(list.Len() - 1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	next := b.AddCounter()
	if next.ID == last.ID {
		t.Errorf("id %s reused after deletion", next.ID)
	}
}

func TestBoard_Lists(t *testing.T) {
	b := DefaultBoard()

	if _, err := b.AddList("   "); !errors.Is(err, ErrBlankName) {
		t.Errorf("expected ErrBlankName, got %v", err)
	}

	work, err := b.AddList(" Work ")
	if err != nil {
		t.Fatalf("AddList failed: %v", err)
	}
	if work.Name != "Work" || work.ID != "counter-list-1" {
		t.Errorf("unexpected list: %+v", work)
	}
	if b.Current != 1 {
		t.Errorf("expected new list to be current, got %d", b.Current)
	}

	c := b.AddCounter()
	if c.Name != "Counter 0" {
		t.Errorf("name should count counters in the current list, got %s", c.Name)
	}
	if c.ID != "counter-1" {
		t.Errorf("counter id generator is board-wide, got %s", c.ID)
	}

	if err := b.SelectList(0); err != nil {
		t.Fatalf("SelectList failed: %v", err)
	}
	if err := b.SelectList(9); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := b.RenameList(1, "Jobs"); err != nil {
		t.Fatalf("RenameList failed: %v", err)
	}
	if b.Lists[1].Name != "Jobs" {
		t.Errorf("expected Jobs, got %s", b.Lists[1].Name)
	}
}

func TestBoard_RemoveList(t *testing.T) {
	b := DefaultBoard()
	b.AddList("One")
	b.AddList("Two")

	// current is Two (index 2); removing index 0 shifts it down
	if _, err := b.RemoveList(0); err != nil {
		t.Fatalf("RemoveList failed: %v", err)
	}
	if b.Current != 1 || b.CurrentList().Name != "Two" {
		t.Errorf("expected current to follow Two, got %d (%s)", b.Current, b.CurrentList().Name)
	}

	if _, err := b.RemoveList(1); err != nil {
		t.Fatalf("RemoveList failed: %v", err)
	}
	if b.CurrentList().Name != "One" {
		t.Errorf("expected fallback to One, got %s", b.CurrentList().Name)
	}

	if _, err := b.RemoveList(0); !errors.Is(err, ErrLastList) {
		t.Errorf("expected ErrLastList, got %v", err)
	}
}

func TestBoard_Normalize(t *testing.T) {
	b := &Board{
		Lists: []CounterList{
			{
				ID:   "counter-list-4",
				Name: "",
				Counters: []Counter{
					{ID: "counter-7", Name: "a", Color: "mauve"},
					{ID: "counter-7", Name: "dup", Color: ColorInfo},
					{ID: "", Name: "blank"},
				},
			},
		},
		Current: 3,
	}

	b.Normalize()

	if b.Current != 0 {
		t.Errorf("expected current clamped to 0, got %d", b.Current)
	}
	if b.NextListID != 5 {
		t.Errorf("expected list generator past 4, got %d", b.NextListID)
	}
	l := b.Lists[0]
	if l.Name != DefaultListName {
		t.Errorf("expected default list name, got %q", l.Name)
	}
	if l.Counters[0].Color != ColorPrimary {
		t.Errorf("expected invalid color replaced, got %s", l.Counters[0].Color)
	}
	ids := map[string]bool{}
	for _, c := range l.Counters {
		if c.ID == "" || ids[c.ID] {
			t.Errorf("expected unique non-empty ids, got %q", c.ID)
		}
		ids[c.ID] = true
	}
	if b.NextCounterID <= 9 {
		t.Errorf("expected counter generator past minted ids, got %d", b.NextCounterID)
	}
}

func TestBoard_NormalizeEmpty(t *testing.T) {
	b := &Board{}
	b.Normalize()

	if len(b.Lists) != 1 || b.Lists[0].Len() != 1 {
		t.Fatalf("expected default list, got %+v", b.Lists)
	}
	if b.NextCounterID != 1 {
		t.Errorf("expected counter generator 1, got %d", b.NextCounterID)
	}
}

func TestBoard_Clone(t *testing.T) {
	b := DefaultBoard()
	c := b.Clone()
	c.Lists[0].Counters[0].Name = "changed"
	c.AddCounter()

	if b.Lists[0].Counters[0].Name != "Counter 0" {
		t.Error("clone shares counters with original")
	}
	if b.CurrentList().Len() != 1 {
		t.Error("clone shares list slice with original")
	}
}
