package mcp

import (
	"context"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tally/internal/application"
	"tally/internal/application/commands"
)

const counterRefDescription = "Counter ID (e.g. counter-3), 1-based position, or exact name"

func (t *Tools) registerWrite(s *server.MCPServer) {
	s.AddTool(addTool(), t.handle("add_counter", addHandler))
	s.AddTool(adjustTool(), t.handle("adjust_counter", adjustHandler))
	s.AddTool(resetTool(), t.handle("reset_counter", resetHandler))
	s.AddTool(deleteTool(), t.handle("delete_counter", deleteHandler))
	s.AddTool(editTool(), t.handle("edit_counter", editHandler))
	s.AddTool(moveTool(), t.handle("move_counter", moveHandler))
	s.AddTool(selectListTool(), t.handle("select_list", selectListHandler))
	s.AddTool(addListTool(), t.handle("add_list", addListHandler))
}

// --- add_counter ---

func addTool() mcp.Tool {
	return mcp.NewTool("add_counter",
		mcp.WithDescription("Append a counter to the current list. It starts at 0, steps by 1, and is colored primary."),
		mcp.WithString("name",
			mcp.Description("Name for the counter. Omit for the default \"Counter N\"."),
		),
	)
}

func addHandler(ctx context.Context, ctrl commands.Controller, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewAddCommand(ctrl, req.GetString("name", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- adjust_counter ---

func adjustTool() mcp.Tool {
	return mcp.NewTool("adjust_counter",
		mcp.WithDescription("Increment or decrement a counter. Without an amount the counter's own step is used."),
		mcp.WithString("counter",
			mcp.Description(counterRefDescription),
			mcp.Required(),
		),
		mcp.WithString("direction",
			mcp.Description("Which way to move the value"),
			mcp.Enum("increment", "decrement"),
			mcp.DefaultString("increment"),
		),
		mcp.WithNumber("amount",
			mcp.Description("Whole number to add or subtract instead of the counter's step"),
		),
	)
}

func adjustHandler(ctx context.Context, ctrl commands.Controller, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var amount *int64
	if _, ok := req.GetArguments()["amount"]; ok {
		f := req.GetFloat("amount", 0)
		if f < math.MinInt64 || f >= math.MaxInt64 || f != math.Trunc(f) {
			return toolError(&application.ValidationError{Field: "amount", Message: "must be a whole number within the int64 range"})
		}
		n := int64(f)
		amount = &n
	}

	direction := req.GetString("direction", "increment")
	if direction != "increment" && direction != "decrement" {
		return toolError(fmt.Errorf("direction must be increment or decrement, got %q", direction))
	}

	cmd := commands.NewAdjustCommand(ctrl, req.GetString("counter", ""), amount, direction == "decrement")
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- reset_counter ---

func resetTool() mcp.Tool {
	return mcp.NewTool("reset_counter",
		mcp.WithDescription("Set a counter's value back to its reset value."),
		mcp.WithString("counter",
			mcp.Description(counterRefDescription),
			mcp.Required(),
		),
	)
}

func resetHandler(ctx context.Context, ctrl commands.Controller, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewResetCommand(ctrl, req.GetString("counter", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- delete_counter ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete_counter",
		mcp.WithDescription("Delete a counter from the current list. This cannot be undone."),
		mcp.WithString("counter",
			mcp.Description(counterRefDescription),
			mcp.Required(),
		),
	)
}

func deleteHandler(ctx context.Context, ctrl commands.Controller, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewDeleteCommand(ctrl, req.GetString("counter", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- edit_counter ---

func editTool() mcp.Tool {
	return mcp.NewTool("edit_counter",
		mcp.WithDescription("Change any of a counter's fields. Omitted fields keep their value. Nothing changes unless every given field is valid."),
		mcp.WithString("counter",
			mcp.Description(counterRefDescription),
			mcp.Required(),
		),
		mcp.WithString("name", mcp.Description("New name, must not be blank")),
		mcp.WithString("value", mcp.Description("New value, a whole number")),
		mcp.WithString("reset_value", mcp.Description("Value used by reset, a whole number")),
		mcp.WithString("increment_by", mcp.Description("Step added on increment, a whole number")),
		mcp.WithString("decrement_by", mcp.Description("Step subtracted on decrement, a whole number")),
		mcp.WithString("color",
			mcp.Description("Display color"),
			mcp.Enum("primary", "secondary", "success", "warning", "error", "info"),
		),
	)
}

var editArgs = map[string]application.Field{
	"name":         application.FieldName,
	"value":        application.FieldValue,
	"reset_value":  application.FieldResetValue,
	"increment_by": application.FieldIncrementBy,
	"decrement_by": application.FieldDecrementBy,
}

func editHandler(ctx context.Context, ctrl commands.Controller, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	var form application.EditForm
	for arg, field := range editArgs {
		if _, ok := args[arg]; ok {
			form.Set(field, req.GetString(arg, ""))
		}
	}

	cmd := commands.NewEditCommand(ctrl, req.GetString("counter", ""), form, req.GetString("color", ""))
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- move_counter ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move_counter",
		mcp.WithDescription("Move a counter to a new 1-based position. Counters in between shift by one."),
		mcp.WithString("counter",
			mcp.Description(counterRefDescription),
			mcp.Required(),
		),
		mcp.WithNumber("position",
			mcp.Description("Target position, 1 is the top"),
			mcp.Required(),
		),
	)
}

func moveHandler(ctx context.Context, ctrl commands.Controller, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cmd := commands.NewMoveCommand(ctrl, req.GetString("counter", ""), req.GetInt("position", 0))
	result, err := cmd.Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- select_list ---

func selectListTool() mcp.Tool {
	return mcp.NewTool("select_list",
		mcp.WithDescription("Make a counter list current. Counter tools act on the current list."),
		mcp.WithString("list",
			mcp.Description("List ID (e.g. counter-list-1), 1-based position, or exact name"),
			mcp.Required(),
		),
	)
}

func selectListHandler(ctx context.Context, ctrl commands.Controller, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewSelectListCommand(ctrl, req.GetString("list", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}

// --- add_list ---

func addListTool() mcp.Tool {
	return mcp.NewTool("add_list",
		mcp.WithDescription("Create an empty counter list and make it current."),
		mcp.WithString("name",
			mcp.Description("Name of the new list"),
			mcp.Required(),
		),
	)
}

func addListHandler(ctx context.Context, ctrl commands.Controller, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := commands.NewAddListCommand(ctrl, req.GetString("name", "")).Execute(ctx)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(result.Message), nil
}
