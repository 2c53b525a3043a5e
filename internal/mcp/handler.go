package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/api"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler parses tool input, calls the service and formats the MCP result.
type Handler struct {
	service userService
	nowFunc func() time.Time
}

func NewHandler(service userService) *Handler {
	return &Handler{
		service: service,
		nowFunc: time.Now,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetDashboardTool returns the handler for get_dashboard.
func (h *Handler) GetDashboardTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		d, err := h.service.GetDashboard(ctx)
		if err != nil {
			return errorResult("Error computing dashboard: " + err.Error()), nil, nil
		}
		return jsonResult(d), nil, nil
	}
}

// ProgressionInput is the input for get_exercise_progression.
type ProgressionInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"Exercise id, as listed by the workouts API"`
}

// GetExerciseProgressionTool returns the handler for get_exercise_progression.
func (h *Handler) GetExerciseProgressionTool() func(context.Context, *mcp.CallToolRequest, ProgressionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ProgressionInput) (*mcp.CallToolResult, any, error) {
		if in.ExerciseID <= 0 {
			return errorResult("Invalid exercise_id: must be a positive integer"), nil, nil
		}
		progression, err := h.service.GetProgression(ctx, in.ExerciseID)
		if err != nil {
			return errorResult("Error fetching progression: " + err.Error()), nil, nil
		}
		return jsonResult(progression), nil, nil
	}
}

// NutritionInput is the input for get_nutrition_summary.
type NutritionInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day to summarize (YYYY-MM-DD), defaults to today (UTC)"`
}

// GetNutritionSummaryTool returns the handler for get_nutrition_summary.
func (h *Handler) GetNutritionSummaryTool() func(context.Context, *mcp.CallToolRequest, NutritionInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NutritionInput) (*mcp.CallToolResult, any, error) {
		day := h.nowFunc().UTC()
		if in.Date != "" {
			parsed, err := time.Parse(api.DateLayout, in.Date)
			if err != nil {
				return errorResult("Invalid date: use YYYY-MM-DD"), nil, nil
			}
			day = parsed
		}
		summary, err := h.service.GetNutritionSummary(ctx, day)
		if err != nil {
			return errorResult("Error fetching nutrition summary: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}
