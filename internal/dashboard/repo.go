package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/diet"
	"github.com/ggrinberger/grindlog-sub000/internal/stats"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func collectTimes(dst *[]time.Time) func(pgx.Rows) error {
	return func(rows pgx.Rows) error {
		times, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
		if err != nil {
			return err
		}
		*dst = times
		return nil
	}
}

// Snapshot loads everything the dashboard needs in a single round trip.
func (r *Repo) Snapshot(ctx context.Context, userID int64, now time.Time) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.dashboard.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	since := WindowStart(now)
	dayStart, dayEnd := diet.DayBounds(now)

	var s Snapshot
	batch := &pgx.Batch{}

	batch.Queue(
		`SELECT performed_at FROM workout_session WHERE user_id = $1 AND performed_at >= $2 ORDER BY performed_at`,
		userID, since,
	).Query(collectTimes(&s.WorkoutTimes))

	batch.Queue(
		`SELECT taken_at FROM supplement_log WHERE user_id = $1 AND taken_at >= $2 ORDER BY taken_at`,
		userID, since,
	).Query(collectTimes(&s.DoseTimes))

	batch.Queue(
		`SELECT completed_at FROM routine_completion WHERE user_id = $1 AND completed_at >= $2 ORDER BY completed_at`,
		userID, since,
	).Query(collectTimes(&s.RoutineTimes))

	batch.Queue(
		`SELECT s.id, s.frequency,
				(SELECT COUNT(*) FROM supplement_log l
					WHERE l.user_id = us.user_id AND l.supplement_id = s.id
						AND l.taken_at >= $2 AND l.taken_at < $3)::INT
			FROM user_supplement us
			JOIN supplement s ON s.id = us.supplement_id
			WHERE us.user_id = $1`,
		userID, dayStart, dayEnd,
	).Query(func(rows pgx.Rows) error {
		doses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (stats.SupplementDoses, error) {
			var d stats.SupplementDoses
			err := row.Scan(&d.SupplementID, &d.Frequency, &d.TakenToday)
			return d, err
		})
		if err != nil {
			return err
		}
		s.Supplements = doses
		return nil
	})

	batch.Queue(
		`SELECT COALESCE(SUM(calories), 0), COALESCE(SUM(protein_g), 0),
				COALESCE(SUM(carbs_g), 0), COALESCE(SUM(fat_g), 0)
			FROM meal
			WHERE user_id = $1 AND eaten_at >= $2 AND eaten_at < $3`,
		userID, dayStart, dayEnd,
	).QueryRow(func(row pgx.Row) error {
		return row.Scan(&s.Consumed.Calories, &s.Consumed.ProteinG, &s.Consumed.CarbsG, &s.Consumed.FatG)
	})

	batch.Queue(
		`SELECT calories, protein_g, carbs_g, fat_g FROM nutrition_target WHERE user_id = $1`,
		userID,
	).QueryRow(func(row pgx.Row) error {
		var m stats.Macros
		err := row.Scan(&m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		s.Target = &m
		return nil
	})

	batch.Queue(
		`SELECT weight_kg FROM body_measurement WHERE user_id = $1 ORDER BY measured_at DESC, id DESC LIMIT 1`,
		userID,
	).QueryRow(func(row pgx.Row) error {
		var w float64
		err := row.Scan(&w)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		s.CurrentWeightKg = &w
		return nil
	})

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return nil, err
	}
	return &s, nil
}
