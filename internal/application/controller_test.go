package application

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"tally/internal/adapters/kvstate"
	"tally/internal/adapters/memory"
	"tally/internal/domain"
	"tally/internal/ports"
)

// stubStore is a StateStore whose behaviour each test controls
type stubStore struct {
	board   *domain.Board
	loadErr error
	saveErr error
	saves   int
}

func (s *stubStore) Load(context.Context) (*domain.Board, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.board == nil {
		return nil, ports.ErrNoState
	}
	return s.board.Clone(), nil
}

func (s *stubStore) Save(_ context.Context, b *domain.Board) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.board = b.Clone()
	return nil
}

func newTestController(t *testing.T) (*Controller, *stubStore) {
	t.Helper()
	store := &stubStore{}
	return NewController(context.Background(), store, zap.NewNop()), store
}

// withCounters returns a controller whose current list holds counters named names
func withCounters(t *testing.T, names ...string) *Controller {
	t.Helper()
	c, _ := newTestController(t)
	require.NoError(t, c.RemoveCounter(0))
	for i, name := range names {
		added := c.AddCounter()
		added.Name = name
		require.NoError(t, c.ReplaceCounter(i, added))
	}
	return c
}

func names(c *Controller) []string {
	var out []string
	for _, counter := range c.Counters() {
		out = append(out, counter.Name)
	}
	return out
}

func TestNewController_DefaultBoard(t *testing.T) {
	c, store := newTestController(t)

	require.Equal(t, 1, c.Len())
	first, ok := c.Counter(0)
	require.True(t, ok)
	require.Equal(t, domain.NewCounter("counter-0", "Counter 0"), first)
	require.Zero(t, store.saves, "loading must not write")
}

func TestNewController_LoadFailureFallsBack(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := &stubStore{loadErr: errors.New("disk on fire")}

	c := NewController(context.Background(), store, zap.New(core))

	require.Equal(t, 1, c.Len())
	require.Equal(t, 1, logs.FilterMessageSnippet("failed to load").Len())
}

func TestNewController_LoadsSavedBoard(t *testing.T) {
	ctx := context.Background()
	state := kvstate.NewStore(memory.NewStore())

	first := NewController(ctx, state, nil)
	first.AddCounter()
	require.NoError(t, first.AdjustValue(1, 7))

	second := NewController(ctx, state, nil)
	if diff := cmp.Diff(first.Counters(), second.Counters()); diff != "" {
		t.Errorf("reloaded counters mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCounter(t *testing.T) {
	c, store := newTestController(t)

	added := c.AddCounter()

	require.Equal(t, 2, c.Len())
	require.Equal(t, "Counter 1", added.Name)
	require.Equal(t, "counter-1", added.ID)
	require.Equal(t, int64(0), added.Value)
	require.Equal(t, int64(1), added.IncrementBy)
	require.Equal(t, int64(1), added.DecrementBy)
	require.Equal(t, domain.ColorPrimary, added.Color)
	require.Equal(t, 1, store.saves)
}

func TestAddCounter_UniqueIDs(t *testing.T) {
	c, _ := newTestController(t)

	for range 25 {
		c.AddCounter()
	}
	require.Equal(t, 26, c.Len())

	seen := map[string]bool{}
	for _, counter := range c.Counters() {
		require.False(t, seen[counter.ID], "duplicate id %s", counter.ID)
		seen[counter.ID] = true
	}
}

func TestAddCounter_IDsNotReusedAfterDelete(t *testing.T) {
	c, _ := newTestController(t)

	added := c.AddCounter()
	require.NoError(t, c.RemoveCounter(1))
	again := c.AddCounter()

	require.NotEqual(t, added.ID, again.ID)
}

func TestAdjustValue(t *testing.T) {
	c, _ := newTestController(t)

	for range 3 {
		require.NoError(t, c.AdjustValue(0, 1))
	}
	got, _ := c.Counter(0)
	require.Equal(t, int64(3), got.Value)

	require.NoError(t, c.AdjustValue(0, 42))
	require.NoError(t, c.AdjustValue(0, -42))
	got, _ = c.Counter(0)
	require.Equal(t, int64(3), got.Value)
}

func TestIncrementDecrement(t *testing.T) {
	c, _ := newTestController(t)
	counter, _ := c.Counter(0)
	counter.IncrementBy = 5
	counter.DecrementBy = 2
	require.NoError(t, c.ReplaceCounter(0, counter))

	require.NoError(t, c.Increment(0))
	require.NoError(t, c.Decrement(0))

	got, _ := c.Counter(0)
	require.Equal(t, int64(3), got.Value)
}

func TestAdjust_OverflowLeavesValue(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		step  int64
		op    func(c *Controller) error
	}{
		{
			name:  "increment past max",
			value: math.MaxInt64,
			step:  1,
			op:    func(c *Controller) error { return c.Increment(0) },
		},
		{
			name:  "decrement past min",
			value: math.MinInt64,
			step:  1,
			op:    func(c *Controller) error { return c.Decrement(0) },
		},
		{
			name:  "decrement by min step",
			value: 0,
			step:  math.MinInt64,
			op:    func(c *Controller) error { return c.Decrement(0) },
		},
		{
			name:  "adjust past max",
			value: math.MaxInt64 - 2,
			step:  1,
			op:    func(c *Controller) error { return c.AdjustValue(0, 3) },
		},
		{
			name:  "subtract min amount",
			value: 1,
			step:  1,
			op:    func(c *Controller) error { return c.SubtractValue(0, math.MinInt64) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, store := newTestController(t)
			counter, _ := c.Counter(0)
			counter.Value = tt.value
			counter.IncrementBy = tt.step
			counter.DecrementBy = tt.step
			require.NoError(t, c.ReplaceCounter(0, counter))
			saves := store.saves

			err := tt.op(c)

			require.ErrorIs(t, err, ErrOverflow)
			got, _ := c.Counter(0)
			require.Equal(t, tt.value, got.Value)
			require.Equal(t, saves, store.saves, "a rejected change must not be saved")
		})
	}
}

func TestEditToMaxThenIncrement(t *testing.T) {
	c, store := newTestController(t)
	edit := c.EditDialog()
	require.True(t, edit.OpenAt(0))
	edit.SetField(FieldValue, "9223372036854775807")
	committed, errs := edit.Submit()
	require.True(t, committed)
	require.Empty(t, errs)

	require.ErrorIs(t, c.Increment(0), ErrOverflow)

	got, _ := c.Counter(0)
	require.Equal(t, int64(math.MaxInt64), got.Value)
	require.Equal(t, int64(math.MaxInt64), store.board.CurrentList().Counters[0].Value)
}

func TestInvalidIndex(t *testing.T) {
	c, store := newTestController(t)

	tests := []struct {
		name string
		op   func() error
	}{
		{"adjust", func() error { return c.AdjustValue(3, 1) }},
		{"increment", func() error { return c.Increment(-1) }},
		{"decrement", func() error { return c.Decrement(1) }},
		{"remove", func() error { return c.RemoveCounter(1) }},
		{"replace", func() error { return c.ReplaceCounter(9, domain.NewCounter("x", "x")) }},
		{"reorder", func() error { return c.Reorder(0, 4) }},
		{"reset", func() error { return c.ResetCounter(2) }},
		{"select list", func() error { return c.SelectList(5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.op(), ErrInvalidIndex)
		})
	}
	require.Zero(t, store.saves, "rejected operations must not save")
	require.Equal(t, 1, c.Len())
}

func TestRemoveCounter_Shifts(t *testing.T) {
	c := withCounters(t, "A", "B")

	require.NoError(t, c.RemoveCounter(0))

	require.Equal(t, []string{"B"}, names(c))
}

func TestReplaceCounter_RoundTrip(t *testing.T) {
	c, _ := newTestController(t)

	want := domain.Counter{
		ID:          "counter-0",
		Name:        "Laps",
		Value:       12,
		ResetValue:  -3,
		IncrementBy: 4,
		DecrementBy: 0,
		Color:       domain.ColorInfo,
	}
	require.NoError(t, c.ReplaceCounter(0, want))

	got, ok := c.Counter(0)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestReplaceCounter_EmptyIDKeepsSlot(t *testing.T) {
	c, _ := newTestController(t)

	require.NoError(t, c.ReplaceCounter(0, domain.Counter{Name: "Laps", Color: domain.ColorInfo}))

	got, _ := c.Counter(0)
	require.Equal(t, "counter-0", got.ID)
}

func TestReplaceCounter_Rejects(t *testing.T) {
	c, store := newTestController(t)
	c.AddCounter()
	saves := store.saves

	var valErr *ValidationError

	err := c.ReplaceCounter(0, domain.Counter{ID: "counter-0", Name: "  ", Color: domain.ColorInfo})
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "name", valErr.Field)

	err = c.ReplaceCounter(0, domain.Counter{ID: "counter-0", Name: "x", Color: "mauve"})
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "color", valErr.Field)

	err = c.ReplaceCounter(0, domain.Counter{ID: "counter-1", Name: "x", Color: domain.ColorInfo})
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "id", valErr.Field)

	require.Equal(t, saves, store.saves)
}

func TestReorder_Move(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
	}{
		{"first to last", 0, 2, []string{"B", "C", "A"}},
		{"last to first", 2, 0, []string{"C", "A", "B"}},
		{"adjacent down", 0, 1, []string{"B", "A", "C"}},
		{"adjacent up", 2, 1, []string{"A", "C", "B"}},
		{"same index", 1, 1, []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := withCounters(t, "A", "B", "C")
			require.NoError(t, c.Reorder(tt.from, tt.to))
			require.Equal(t, tt.want, names(c))
		})
	}
}

func TestResetCounter(t *testing.T) {
	c, _ := newTestController(t)
	counter, _ := c.Counter(0)
	counter.Value = 17
	counter.ResetValue = 5
	require.NoError(t, c.ReplaceCounter(0, counter))

	require.NoError(t, c.ResetCounter(0))

	got, _ := c.Counter(0)
	require.Equal(t, got.ResetValue, got.Value)
	require.Equal(t, int64(5), got.Value)
}

func TestSaveFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	store := &stubStore{saveErr: errors.New("read-only")}
	c := NewController(context.Background(), store, zap.New(core))

	require.NoError(t, c.AdjustValue(0, 1))

	got, _ := c.Counter(0)
	require.Equal(t, int64(1), got.Value, "in-memory state must still change")
	require.Equal(t, 1, logs.FilterMessage("failed to save state").Len())
}

func TestCountersReturnsCopy(t *testing.T) {
	c, _ := newTestController(t)

	counters := c.Counters()
	counters[0].Value = 99

	got, _ := c.Counter(0)
	require.Zero(t, got.Value)
}

func TestLists(t *testing.T) {
	c, _ := newTestController(t)

	work, err := c.AddList("  Work ")
	require.NoError(t, err)
	require.Equal(t, "Work", work.Name)
	require.Equal(t, 1, c.CurrentListIndex())
	require.Zero(t, c.Len(), "new list starts empty")

	added := c.AddCounter()
	require.Equal(t, "Counter 0", added.Name)
	require.Equal(t, "counter-1", added.ID, "counter ids are global across lists")

	require.NoError(t, c.RenameList(1, "Gym"))
	require.Equal(t, "Gym", c.CurrentList().Name)

	require.NoError(t, c.SelectList(0))
	require.Equal(t, "Counters", c.CurrentList().Name)
	require.Equal(t, 1, c.Len())

	require.ErrorIs(t, c.RenameList(0, " "), ErrBlankName)
	_, err = c.AddList("")
	require.ErrorIs(t, err, ErrBlankName)

	require.NoError(t, c.RemoveList(1))
	require.Len(t, c.Lists(), 1)
	require.ErrorIs(t, c.RemoveList(0), ErrLastList)
}

func TestSelectListClosesDialogs(t *testing.T) {
	c, _ := newTestController(t)
	_, err := c.AddList("Work")
	require.NoError(t, err)
	c.AddCounter()

	require.True(t, c.DeleteDialog().OpenAt(0))
	require.True(t, c.EditDialog().OpenAt(0))

	require.NoError(t, c.SelectList(0))

	require.False(t, c.DeleteDialog().IsOpen())
	require.False(t, c.EditDialog().IsOpen())
}

func TestRemoveListClosesDialogs(t *testing.T) {
	c, _ := newTestController(t)
	_, err := c.AddList("Work")
	require.NoError(t, err)
	c.AddCounter()
	require.True(t, c.ResetDialog().OpenAt(0))

	require.NoError(t, c.RemoveList(1))

	require.False(t, c.ResetDialog().IsOpen())
}
