package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/db"
	"github.com/ggrinberger/grindlog-sub000/internal/stats"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrPlanNotFound     = errors.New("workout plan not found")
	ErrSessionNotFound  = errors.New("workout session not found")
	ErrCardioNotFound   = errors.New("cardio session not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const exerciseColumns = `id, owner_user_id, name, category, muscle_group, description`

func (r *Repo) ListExercises(ctx context.Context, userID int64) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise
			WHERE owner_user_id IS NULL OR owner_user_id = $1
			ORDER BY name, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Exercise])
}

func (r *Repo) ListPublicExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listPublicExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT `+exerciseColumns+` FROM exercise WHERE owner_user_id IS NULL ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Exercise])
}

func (r *Repo) CreateExercise(ctx context.Context, userID int64, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO exercise (owner_user_id, name, category, muscle_group, description)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+exerciseColumns,
		userID, exercise.Name, exercise.Category, exercise.MuscleGroup, exercise.Description,
	)
	if err != nil {
		return nil, err
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Exercise])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// exerciseVisible reports whether userID may use the exercise (global or own).
func exerciseVisible(ctx context.Context, q pgx.Tx, userID, exerciseID int64) error {
	var ok bool
	err := q.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM exercise WHERE id = $1 AND (owner_user_id IS NULL OR owner_user_id = $2))`,
		exerciseID, userID,
	).Scan(&ok)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrExerciseNotFound, exerciseID)
	}
	return nil
}

func (r *Repo) ListPlans(ctx context.Context, userID int64, page api.Page) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listPlans")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, created_at FROM workout_plan
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT $2 OFFSET $3`,
		userID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Plan])
}

func (r *Repo) GetPlan(ctx context.Context, userID, planID int64) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("plan.id", planID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, description, created_at FROM workout_plan WHERE id = $1 AND user_id = $2`,
		planID, userID,
	)
	if err != nil {
		return nil, err
	}
	plan, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Plan])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err = r.db.Query(
		ctx,
		`SELECT pe.id, pe.exercise_id, e.name AS exercise_name, pe.position,
				pe.target_sets, pe.target_reps, pe.target_weight
			FROM workout_plan_exercise pe
			JOIN exercise e ON e.id = pe.exercise_id
			WHERE pe.plan_id = $1
			ORDER BY pe.position`,
		planID,
	)
	if err != nil {
		return nil, err
	}
	plan.Exercises, err = pgx.CollectRows(rows, pgx.RowToStructByName[PlanExercise])
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// CreatePlan inserts the plan and all of its exercises atomically.
func (r *Repo) CreatePlan(ctx context.Context, userID int64, plan Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createPlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workout_plan (user_id, name, description) VALUES ($1, $2, $3)
				RETURNING id, created_at`,
			userID, plan.Name, plan.Description,
		).Scan(&plan.ID, &plan.CreatedAt); err != nil {
			return fmt.Errorf("insert plan: %w", err)
		}

		for i := range plan.Exercises {
			pe := &plan.Exercises[i]
			if err := exerciseVisible(ctx, tx, userID, pe.ExerciseID); err != nil {
				return err
			}
			pe.Position = i + 1
			if err := tx.QueryRow(
				ctx,
				`INSERT INTO workout_plan_exercise
						(plan_id, exercise_id, position, target_sets, target_reps, target_weight)
					VALUES ($1, $2, $3, $4, $5, $6)
					RETURNING id, (SELECT name FROM exercise WHERE id = $2)`,
				plan.ID, pe.ExerciseID, pe.Position, pe.TargetSets, pe.TargetReps, pe.TargetWeight,
			).Scan(&pe.ID, &pe.ExerciseName); err != nil {
				return fmt.Errorf("insert plan exercise: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	plan.UserID = userID
	span.SetAttributes(attribute.Int64("plan.id", plan.ID))
	return &plan, nil
}

func (r *Repo) DeletePlan(ctx context.Context, userID, planID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deletePlan")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_plan WHERE id = $1 AND user_id = $2`, planID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

func (r *Repo) ListSessions(ctx context.Context, userID int64, page api.Page) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, plan_id, name, duration_minutes, notes, performed_at FROM workout_session
			WHERE user_id = $1
			ORDER BY performed_at DESC, id DESC
			LIMIT $2 OFFSET $3`,
		userID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Session])
}

func insertExerciseLog(ctx context.Context, tx pgx.Tx, userID int64, log *ExerciseLog) error {
	if err := exerciseVisible(ctx, tx, userID, log.ExerciseID); err != nil {
		return err
	}
	if log.LoggedAt.IsZero() {
		log.LoggedAt = time.Now()
	}
	log.UserID = userID
	return tx.QueryRow(
		ctx,
		`INSERT INTO exercise_log
				(user_id, exercise_id, session_id, weight_kg, sets, reps, duration_minutes, distance_km, logged_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`,
		userID, log.ExerciseID, log.SessionID, log.WeightKg, log.Sets, log.Reps,
		log.DurationMinutes, log.DistanceKm, log.LoggedAt,
	).Scan(&log.ID)
}

// CreateSession stores a performed workout together with its exercise logs.
func (r *Repo) CreateSession(ctx context.Context, userID int64, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.createSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if session.PerformedAt.IsZero() {
		session.PerformedAt = time.Now()
	}

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if session.PlanID != nil {
			var owned bool
			if err := tx.QueryRow(
				ctx,
				`SELECT EXISTS (SELECT 1 FROM workout_plan WHERE id = $1 AND user_id = $2)`,
				*session.PlanID, userID,
			).Scan(&owned); err != nil {
				return err
			}
			if !owned {
				return ErrPlanNotFound
			}
		}

		if err := tx.QueryRow(
			ctx,
			`INSERT INTO workout_session (user_id, plan_id, name, duration_minutes, notes, performed_at)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING id`,
			userID, session.PlanID, session.Name, session.DurationMinutes, session.Notes, session.PerformedAt,
		).Scan(&session.ID); err != nil {
			return fmt.Errorf("insert session: %w", err)
		}

		for i := range session.Logs {
			l := &session.Logs[i]
			l.SessionID = &session.ID
			if l.LoggedAt.IsZero() {
				l.LoggedAt = session.PerformedAt
			}
			if err := insertExerciseLog(ctx, tx, userID, l); err != nil {
				return fmt.Errorf("insert session log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	session.UserID = userID
	return &session, nil
}

func (r *Repo) DeleteSession(ctx context.Context, userID, sessionID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_session WHERE id = $1 AND user_id = $2`, sessionID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *Repo) AddExerciseLog(ctx context.Context, userID int64, log ExerciseLog) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addExerciseLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if log.SessionID != nil {
			var owned bool
			if err := tx.QueryRow(
				ctx,
				`SELECT EXISTS (SELECT 1 FROM workout_session WHERE id = $1 AND user_id = $2)`,
				*log.SessionID, userID,
			).Scan(&owned); err != nil {
				return err
			}
			if !owned {
				return ErrSessionNotFound
			}
		}
		return insertExerciseLog(ctx, tx, userID, &log)
	})
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *Repo) ListExerciseLogs(ctx context.Context, userID, exerciseID int64, page api.Page) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listExerciseLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise_id, session_id, weight_kg, sets, reps, duration_minutes, distance_km, logged_at
			FROM exercise_log
			WHERE user_id = $1 AND exercise_id = $2
			ORDER BY logged_at DESC, id DESC
			LIMIT $3 OFFSET $4`,
		userID, exerciseID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[ExerciseLog])
}

// ProgressionEntries returns every log of the exercise in time order.
func (r *Repo) ProgressionEntries(ctx context.Context, userID, exerciseID int64) (_ []stats.ProgressionEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.progression")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT logged_at, weight_kg, reps FROM exercise_log
			WHERE user_id = $1 AND exercise_id = $2
			ORDER BY logged_at, id`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (stats.ProgressionEntry, error) {
		var e stats.ProgressionEntry
		err := row.Scan(&e.LoggedAt, &e.WeightKg, &e.Reps)
		return e, err
	})
}

func (r *Repo) ListCardio(ctx context.Context, userID int64, page api.Page) (_ []CardioSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listCardio")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, activity, duration_minutes, distance_km, calories_burned, performed_at
			FROM cardio_session
			WHERE user_id = $1
			ORDER BY performed_at DESC, id DESC
			LIMIT $2 OFFSET $3`,
		userID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[CardioSession])
}

func (r *Repo) AddCardio(ctx context.Context, userID int64, cardio CardioSession) (_ *CardioSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addCardio")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if cardio.PerformedAt.IsZero() {
		cardio.PerformedAt = time.Now()
	}
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO cardio_session (user_id, activity, duration_minutes, distance_km, calories_burned, performed_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
		userID, cardio.Activity, cardio.DurationMinutes, cardio.DistanceKm, cardio.CaloriesBurned, cardio.PerformedAt,
	).Scan(&cardio.ID)
	if err != nil {
		return nil, err
	}
	cardio.UserID = userID
	return &cardio, nil
}

func (r *Repo) DeleteCardio(ctx context.Context, userID, cardioID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteCardio")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM cardio_session WHERE id = $1 AND user_id = $2`, cardioID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCardioNotFound
	}
	return nil
}
