package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"tally/internal/adapters/kvstate"
	"tally/internal/adapters/memory"
	"tally/internal/application"
)

func newTestTools(t *testing.T) *Tools {
	t.Helper()
	return NewTools(kvstate.NewStore(memory.NewStore()), nil)
}

func call(t *testing.T, tools *Tools, name string, h handlerFunc, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	result, err := tools.handle(name, h)(context.Background(), req)
	if err != nil {
		t.Fatalf("%s returned protocol error: %v", name, err)
	}
	return result
}

func text(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return tc.Text
}

func currentCounters(t *testing.T, tools *Tools) []application.Counter {
	t.Helper()
	return application.NewController(context.Background(), tools.store, nil).Counters()
}

func TestListCounters(t *testing.T) {
	tools := newTestTools(t)

	got := text(t, call(t, tools, "list_counters", listCountersHandler, nil))

	if !strings.Contains(got, "1. Counter 0  [counter-0]  value=0") {
		t.Errorf("unexpected listing:\n%s", got)
	}
}

func TestAddAndAdjust_PersistAcrossCalls(t *testing.T) {
	tools := newTestTools(t)

	res := call(t, tools, "add_counter", addHandler, map[string]any{"name": "Laps"})
	if res.IsError {
		t.Fatalf("add failed: %s", text(t, res))
	}

	res = call(t, tools, "adjust_counter", adjustHandler, map[string]any{"counter": "Laps", "amount": float64(5)})
	if res.IsError {
		t.Fatalf("adjust failed: %s", text(t, res))
	}
	res = call(t, tools, "adjust_counter", adjustHandler, map[string]any{"counter": "2", "direction": "decrement"})
	if res.IsError {
		t.Fatalf("decrement failed: %s", text(t, res))
	}

	counters := currentCounters(t, tools)
	if len(counters) != 2 {
		t.Fatalf("expected 2 counters, got %d", len(counters))
	}
	if counters[1].Name != "Laps" || counters[1].Value != 4 {
		t.Errorf("unexpected counter %+v", counters[1])
	}
}

func TestAdjust_RejectsFractionalAmount(t *testing.T) {
	tools := newTestTools(t)

	res := call(t, tools, "adjust_counter", adjustHandler, map[string]any{"counter": "counter-0", "amount": 1.5})

	if !res.IsError {
		t.Fatal("expected tool error")
	}
	if currentCounters(t, tools)[0].Value != 0 {
		t.Error("value must not change")
	}
}

func TestEdit_AllOrNothing(t *testing.T) {
	tools := newTestTools(t)

	res := call(t, tools, "edit_counter", editHandler, map[string]any{
		"counter": "counter-0",
		"name":    "Push-ups",
		"value":   "ten",
	})
	if !res.IsError {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(text(t, res), application.MsgNotInteger) {
		t.Errorf("error should name the invalid field: %s", text(t, res))
	}
	if got := currentCounters(t, tools)[0].Name; got != "Counter 0" {
		t.Errorf("name changed to %q on a rejected edit", got)
	}

	res = call(t, tools, "edit_counter", editHandler, map[string]any{
		"counter":      "counter-0",
		"name":         "Push-ups",
		"increment_by": "10",
		"color":        "success",
	})
	if res.IsError {
		t.Fatalf("edit failed: %s", text(t, res))
	}
	c := currentCounters(t, tools)[0]
	if c.Name != "Push-ups" || c.IncrementBy != 10 || c.Color != application.ColorSuccess {
		t.Errorf("unexpected counter %+v", c)
	}
}

func TestMoveResetDelete(t *testing.T) {
	tools := newTestTools(t)
	call(t, tools, "add_counter", addHandler, map[string]any{"name": "A"})
	call(t, tools, "add_counter", addHandler, map[string]any{"name": "B"})

	res := call(t, tools, "move_counter", moveHandler, map[string]any{"counter": "B", "position": float64(1)})
	if res.IsError {
		t.Fatalf("move failed: %s", text(t, res))
	}
	if got := currentCounters(t, tools)[0].Name; got != "B" {
		t.Errorf("first counter = %q, want B", got)
	}

	call(t, tools, "adjust_counter", adjustHandler, map[string]any{"counter": "B"})
	call(t, tools, "reset_counter", resetHandler, map[string]any{"counter": "B"})
	if got := currentCounters(t, tools)[0].Value; got != 0 {
		t.Errorf("value after reset = %d, want 0", got)
	}

	call(t, tools, "delete_counter", deleteHandler, map[string]any{"counter": "B"})
	if n := len(currentCounters(t, tools)); n != 2 {
		t.Errorf("expected 2 counters after delete, got %d", n)
	}

	res = call(t, tools, "delete_counter", deleteHandler, map[string]any{"counter": "B"})
	if !res.IsError {
		t.Error("deleting a missing counter should fail")
	}
}

func TestLists(t *testing.T) {
	tools := newTestTools(t)

	res := call(t, tools, "add_list", addListHandler, map[string]any{"name": "Gym"})
	if res.IsError {
		t.Fatalf("add_list failed: %s", text(t, res))
	}

	got := text(t, call(t, tools, "list_lists", listListsHandler, nil))
	if !strings.Contains(got, "* 2. Gym") {
		t.Errorf("new list should be current:\n%s", got)
	}

	res = call(t, tools, "select_list", selectListHandler, map[string]any{"list": "1"})
	if res.IsError {
		t.Fatalf("select_list failed: %s", text(t, res))
	}
	got = text(t, call(t, tools, "list_lists", listListsHandler, nil))
	if !strings.Contains(got, "* 1.") {
		t.Errorf("first list should be current:\n%s", got)
	}
}
