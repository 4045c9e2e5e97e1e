package core

import (
	"context"
	"fmt"
	"time"

	"github.com/dop251/goja"
	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/faredesk/faredesk/log"
	"github.com/faredesk/faredesk/tools"
)

// DateInput defines the input for the date tool
type DateInput struct {
	Expression string `json:"expression" description:"JavaScript expression to calculate a date. Variable 'now' is available as current timestamp in milliseconds."`
}

// DateTool computes concrete dates from small JavaScript expressions, for
// queries like "next Friday" that the model cannot resolve on its own.
type DateTool struct {
	Now func() time.Time
}

// NewDateTool creates a new DateTool and registers it
func NewDateTool(gk *genkit.Genkit, registry *tools.Registry) *DateTool {
	t := &DateTool{Now: time.Now}

	if gk == nil || registry == nil {
		return t
	}

	registry.Register(genkit.DefineTool[*DateInput, *time.Time](
		gk,
		t.Name(),
		t.Description(),
		func(ctx *ai.ToolContext, input *DateInput) (*time.Time, error) {
			return t.Execute(ctx, input)
		},
	), func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		expression, ok := args["expression"].(string)
		if !ok {
			return nil, fmt.Errorf("missing expression")
		}
		return t.Execute(ctx, &DateInput{Expression: expression})
	})

	return t
}

func (t *DateTool) Name() string {
	return "date_tool"
}

func (t *DateTool) Description() string {
	return `Executes a JavaScript expression to calculate dates. Variable 'now' holds the current timestamp (milliseconds).
Return a Date object or ISO string. The last expression is the return value.
Examples:
- Next Friday: "var d = new Date(now); d.setDate(d.getDate() + (12 - d.getDay()) % 7); if(d.getDay() !== 5 || d <= now) d.setDate(d.getDate() + 7); d"
- Tomorrow: "new Date(now + 86400000)"`
}

// Execute evaluates the expression and returns the resulting date.
func (t *DateTool) Execute(ctx context.Context, input *DateInput) (*time.Time, error) {
	if input == nil {
		return nil, fmt.Errorf("input is required")
	}
	log.Debugf(ctx, "DateTool executing expression: %s", input.Expression)

	vm := goja.New()
	if err := vm.Set("now", t.Now().UnixMilli()); err != nil {
		return nil, fmt.Errorf("failed to set 'now': %w", err)
	}

	val, err := vm.RunString(input.Expression)
	if err != nil {
		log.Errorf(ctx, "DateTool expression failed: %v", err)
		return nil, fmt.Errorf("js execution failed: %w", err)
	}

	exported := val.Export()
	if exported == nil {
		return nil, fmt.Errorf("result is null or undefined")
	}

	// Goja converts JS Date objects to time.Time.
	if date, ok := exported.(time.Time); ok {
		return &date, nil
	}

	if str, ok := exported.(string); ok {
		if parsed, err := time.Parse(time.RFC3339, str); err == nil {
			return &parsed, nil
		}
	}

	return nil, fmt.Errorf("result is not a valid Date object or ISO string")
}
