//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ggrinberger/grindlog-sub000/internal/dashboard"
	"github.com/ggrinberger/grindlog-sub000/internal/diet"
	"github.com/ggrinberger/grindlog-sub000/internal/routines"
	"github.com/ggrinberger/grindlog-sub000/internal/stats"
	"github.com/ggrinberger/grindlog-sub000/internal/supplements"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestDietSummary() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, user := s.registerUser(ctx)

	resp := s.do(ctx, http.MethodPut, "/api/diet/targets", user.Token, stats.Macros{Calories: 3000, ProteinG: 180, CarbsG: 320, FatG: 90})
	require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))

	for _, calories := range []float64{1200, 2000} {
		resp = s.do(ctx, http.MethodPost, "/api/diet/meals", user.Token, diet.Meal{
			Name:     gofakeit.Dessert(),
			MealType: "lunch",
			Calories: calories,
		})
		require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))
	}

	resp = s.do(ctx, http.MethodGet, "/api/diet/summary", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.Status)

	var summary diet.Summary
	require.NoError(t, resp.decode(&summary))
	assert.Equal(t, 3200.0, summary.Consumed.Calories)
	assert.Equal(t, 3000.0, summary.Target.Calories)
	assert.Equal(t, -200.0, summary.Remaining.Calories)
}

func (s *IntegrationTestSuite) TestSupplementsToday() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, user := s.registerUser(ctx)

	resp := s.do(ctx, http.MethodPost, "/api/supplements", user.Token, supplements.Supplement{
		Name:      "Creatine",
		Dosage:    "5g",
		Frequency: "twice daily",
	})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))
	var creatine supplements.Supplement
	require.NoError(t, resp.decode(&creatine))

	resp = s.do(ctx, http.MethodPost, fmt.Sprintf("/api/supplements/%d/track", creatine.ID), user.Token, nil)
	require.Equal(t, http.StatusNoContent, resp.Status, string(resp.Body))

	for i := 0; i < 2; i++ {
		resp = s.do(ctx, http.MethodPost, fmt.Sprintf("/api/supplements/%d/logs", creatine.ID), user.Token, nil)
		require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))
	}
	assert.Equal(t, 2, s.countRows("supplement_log", "user_id = $1", user.User.ID))

	resp = s.do(ctx, http.MethodGet, "/api/supplements/today", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.Status)
	var today supplements.Today
	require.NoError(t, resp.decode(&today))
	require.Len(t, today.Items, 1)
	assert.Equal(t, 2, today.Items[0].ExpectedDoses)
	assert.True(t, today.Items[0].Complete)
	assert.Equal(t, 1, today.Complete)
	assert.Equal(t, 1, today.Tracked)
}

func (s *IntegrationTestSuite) TestRoutinesAndDashboard() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, user := s.registerUser(ctx)

	resp := s.do(ctx, http.MethodPost, "/api/routines", user.Token, routines.CreateRequest{
		Name:  "Morning",
		Items: []string{"stretch", "cold shower"},
	})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))
	var morning routines.Routine
	require.NoError(t, resp.decode(&morning))
	require.Len(t, morning.Items, 2)

	resp = s.do(ctx, http.MethodPost, fmt.Sprintf("/api/routines/%d/complete", morning.ID), user.Token, nil)
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))
	var completion routines.Completion
	require.NoError(t, resp.decode(&completion))
	assert.ElementsMatch(t, []string{"stretch", "cold shower"}, completion.CompletedItems)

	resp = s.do(ctx, http.MethodGet, "/api/dashboard", user.Token, nil)
	require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))
	var d dashboard.Dashboard
	require.NoError(t, resp.decode(&d))
	assert.Equal(t, 1, d.RoutinesCompletedToday)
	assert.Equal(t, 1, d.Streaks.Routines)
	assert.Equal(t, 50.0, d.Compliance.Routine)
	assert.Equal(t, 2500.0, d.Nutrition.Target.Calories)
}
