package progress

import (
	"context"
	"errors"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrGoalNotFound        = errors.New("goal not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const (
	measurementColumns = `id, user_id, weight_kg, body_fat_pct, notes, measured_at`
	goalColumns        = `id, user_id, title, target_value, current_value, unit, achieved, deadline, created_at`
)

func (r *Repo) ListMeasurements(ctx context.Context, userID int64, page api.Page) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listMeasurements")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+measurementColumns+` FROM body_measurement
			WHERE user_id = $1
			ORDER BY measured_at DESC, id DESC
			LIMIT $2 OFFSET $3`,
		userID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Measurement])
}

func (r *Repo) LatestMeasurement(ctx context.Context, userID int64) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.latestMeasurement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+measurementColumns+` FROM body_measurement
			WHERE user_id = $1
			ORDER BY measured_at DESC, id DESC
			LIMIT 1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Measurement])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMeasurementNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) AddMeasurement(ctx context.Context, userID int64, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.addMeasurement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO body_measurement (user_id, weight_kg, body_fat_pct, notes, measured_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+measurementColumns,
		userID, m.WeightKg, m.BodyFatPct, m.Notes, m.MeasuredAt,
	)
	if err != nil {
		return nil, err
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Measurement])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repo) DeleteMeasurement(ctx context.Context, userID, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.deleteMeasurement")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM body_measurement WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMeasurementNotFound
	}
	return nil
}

func (r *Repo) ListGoals(ctx context.Context, userID int64) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+goalColumns+` FROM goal WHERE user_id = $1 ORDER BY achieved, deadline NULLS LAST, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Goal])
}

func (r *Repo) CreateGoal(ctx context.Context, userID int64, g Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.createGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO goal (user_id, title, target_value, current_value, unit, achieved, deadline)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+goalColumns,
		userID, g.Title, g.TargetValue, g.CurrentValue, g.Unit, g.Achieved, g.Deadline,
	)
	if err != nil {
		return nil, err
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Goal])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repo) UpdateGoal(ctx context.Context, userID, goalID int64, u GoalUpdate) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.updateGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`UPDATE goal SET
				title = COALESCE($3, title),
				target_value = COALESCE($4, target_value),
				current_value = COALESCE($5, current_value),
				unit = COALESCE($6, unit),
				achieved = COALESCE($7, achieved),
				deadline = CASE WHEN $9 THEN NULL ELSE COALESCE($8, deadline) END
			WHERE id = $1 AND user_id = $2
			RETURNING `+goalColumns,
		goalID, userID, u.Title, u.TargetValue, u.CurrentValue, u.Unit, u.Achieved, u.Deadline, u.ClearDeadline,
	)
	if err != nil {
		return nil, err
	}
	updated, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Goal])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *Repo) DeleteGoal(ctx context.Context, userID, goalID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.deleteGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM goal WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}
	return nil
}
