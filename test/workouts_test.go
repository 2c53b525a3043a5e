//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ggrinberger/grindlog-sub000/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestWorkoutPlan_RollbackOnUnknownExercise() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, user := s.registerUser(ctx)
	benchID := s.globalExercise("Bench Press " + gofakeit.DigitN(4))

	plan := workouts.Plan{
		Name: "Push day",
		Exercises: []workouts.PlanExercise{
			{ExerciseID: benchID, TargetSets: 3, TargetReps: 8},
			{ExerciseID: 999999999, TargetSets: 3, TargetReps: 8},
		},
	}
	resp := s.do(ctx, http.MethodPost, "/api/workouts/plans", user.Token, plan)
	assert.Equal(t, http.StatusNotFound, resp.Status, string(resp.Body))
	assert.Equal(t, 0, s.countRows("workout_plan", "user_id = $1", user.User.ID))

	plan.Exercises = plan.Exercises[:1]
	resp = s.do(ctx, http.MethodPost, "/api/workouts/plans", user.Token, plan)
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))

	var created workouts.Plan
	require.NoError(t, resp.decode(&created))
	require.Len(t, created.Exercises, 1)
	assert.Equal(t, 1, s.countRows("workout_plan", "user_id = $1", user.User.ID))
	assert.Equal(t, 1, s.countRows("workout_plan_exercise", "plan_id = $1", created.ID))

	resp = s.do(ctx, http.MethodDelete, fmt.Sprintf("/api/workouts/plans/%d", created.ID), user.Token, nil)
	assert.Equal(t, http.StatusNoContent, resp.Status)
	assert.Equal(t, 0, s.countRows("workout_plan_exercise", "plan_id = $1", created.ID))
}

func (s *IntegrationTestSuite) TestWorkoutProgression() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, user := s.registerUser(ctx)
	squatID := s.globalExercise("Squat " + gofakeit.DigitN(4))

	for _, weight := range []float64{80, 85} {
		resp := s.do(ctx, http.MethodPost, fmt.Sprintf("/api/workouts/exercises/%d/logs", squatID), user.Token, workouts.ExerciseLog{
			Sets:     1,
			Reps:     5,
			WeightKg: weight,
		})
		require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))
	}

	resp := s.do(ctx, http.MethodGet, fmt.Sprintf("/api/workouts/exercises/%d/progression", squatID), user.Token, nil)
	require.Equal(t, http.StatusOK, resp.Status)

	var progression workouts.ProgressionResponse
	require.NoError(t, resp.decode(&progression))
	require.Len(t, progression.Points, 1)
	assert.Equal(t, 85.0, progression.Points[0].MaxWeight)
	assert.Equal(t, "85", progression.BestWeight)
}

func (s *IntegrationTestSuite) TestExerciseLog_ForeignSessionRejected() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	_, owner := s.registerUser(ctx)
	_, other := s.registerUser(ctx)
	rowID := s.globalExercise("Barbell Row " + gofakeit.DigitN(4))

	resp := s.do(ctx, http.MethodPost, "/api/workouts/sessions", owner.Token, workouts.Session{
		Name:            "Pull day",
		DurationMinutes: 45,
	})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))
	var session workouts.Session
	require.NoError(t, resp.decode(&session))

	logPath := fmt.Sprintf("/api/workouts/exercises/%d/logs", rowID)
	resp = s.do(ctx, http.MethodPost, logPath, other.Token, workouts.ExerciseLog{
		SessionID: &session.ID,
		Sets:      3,
		Reps:      10,
		WeightKg:  50,
	})
	assert.Equal(t, http.StatusNotFound, resp.Status, string(resp.Body))
	assert.Equal(t, 0, s.countRows("exercise_log", "session_id = $1", session.ID))

	resp = s.do(ctx, http.MethodPost, logPath, owner.Token, workouts.ExerciseLog{
		SessionID: &session.ID,
		Sets:      3,
		Reps:      10,
		WeightKg:  50,
	})
	require.Equal(t, http.StatusCreated, resp.Status, string(resp.Body))
	assert.Equal(t, 1, s.countRows("exercise_log", "session_id = $1", session.ID))
}
