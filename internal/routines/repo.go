package routines

import (
	"context"
	"errors"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/db"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrRoutineNotFound = errors.New("routine not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID int64) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, created_at FROM routine WHERE user_id = $1 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	routines, err := pgx.CollectRows(rows, pgx.RowToStructByName[Routine])
	if err != nil {
		return nil, err
	}
	if len(routines) == 0 {
		return routines, nil
	}

	ids := make([]int64, 0, len(routines))
	byID := make(map[int64]int, len(routines))
	for i, rt := range routines {
		ids = append(ids, rt.ID)
		byID[rt.ID] = i
		routines[i].Items = []RoutineItem{}
	}

	rows, err = r.db.Query(
		ctx,
		`SELECT id, routine_id, position, name FROM routine_item
			WHERE routine_id = ANY($1)
			ORDER BY routine_id, position`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[RoutineItem])
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		i := byID[item.RoutineID]
		routines[i].Items = append(routines[i].Items, item)
	}

	return routines, nil
}

func (r *Repo) Create(ctx context.Context, userID int64, req CreateRequest) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.items", len(req.Items)))

	var created Routine
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, txErr := tx.Query(
			ctx,
			`INSERT INTO routine (user_id, name) VALUES ($1, $2) RETURNING id, user_id, name, created_at`,
			userID, req.Name,
		)
		if txErr != nil {
			return txErr
		}
		created, txErr = pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Routine])
		if txErr != nil {
			return txErr
		}

		created.Items = make([]RoutineItem, 0, len(req.Items))
		for i, name := range req.Items {
			item := RoutineItem{RoutineID: created.ID, Position: i + 1, Name: name}
			txErr = tx.QueryRow(
				ctx,
				`INSERT INTO routine_item (routine_id, position, name) VALUES ($1, $2, $3) RETURNING id`,
				item.RoutineID, item.Position, item.Name,
			).Scan(&item.ID)
			if txErr != nil {
				return txErr
			}
			created.Items = append(created.Items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repo) Delete(ctx context.Context, userID, routineID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM routine WHERE id = $1 AND user_id = $2`, routineID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoutineNotFound
	}
	return nil
}

// Complete records a completion of the caller's routine. A nil items slice
// records every item of the routine.
func (r *Repo) Complete(ctx context.Context, userID, routineID int64, items []string, at time.Time) (_ *Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`WITH rt AS (
			SELECT id, name FROM routine WHERE id = $2 AND user_id = $1
		)
		INSERT INTO routine_completion (user_id, routine_id, completed_items, completed_at)
			SELECT $1, rt.id,
				COALESCE($3::TEXT[], ARRAY(SELECT name FROM routine_item WHERE routine_id = rt.id ORDER BY position)),
				$4
			FROM rt
		RETURNING id, user_id, routine_id, (SELECT name FROM rt) AS routine_name, completed_items, completed_at`,
		userID, routineID, items, at,
	)
	if err != nil {
		return nil, err
	}
	completion, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Completion])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRoutineNotFound
	}
	if err != nil {
		return nil, err
	}
	return &completion, nil
}

func (r *Repo) Completions(ctx context.Context, userID int64, day time.Time) (_ []Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.completions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	y, m, d := day.UTC().Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	rows, err := r.db.Query(
		ctx,
		`SELECT c.id, c.user_id, c.routine_id, r.name AS routine_name, c.completed_items, c.completed_at
			FROM routine_completion c
			JOIN routine r ON r.id = c.routine_id
			WHERE c.user_id = $1 AND c.completed_at >= $2 AND c.completed_at < $3
			ORDER BY c.completed_at, c.id`,
		userID, from, from.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Completion])
}

func (r *Repo) CompletionTimes(ctx context.Context, userID int64, since time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.completionTimes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT completed_at FROM routine_completion WHERE user_id = $1 AND completed_at >= $2 ORDER BY completed_at`,
		userID, since,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[time.Time])
}
