package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing read-only tools over one user's data.
func NewServer(service *UserService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "grindlog",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Returns today's compliance score (workouts, supplements, routines, nutrition), the current streaks, the nutrition balance and the latest body weight.",
	}, h.GetDashboardTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progression",
		Description: "Returns the per-day best set (max weight and its reps) for one exercise, plus the best weight and an estimated one rep max. Arg: exercise_id.",
	}, h.GetExerciseProgressionTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_nutrition_summary",
		Description: "Returns consumed calories and macros for a day, the user's target and what remains. Optional arg: date (YYYY-MM-DD).",
	}, h.GetNutritionSummaryTool())

	return s
}
