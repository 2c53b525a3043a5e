package supplements

import (
	"context"
	"errors"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrSupplementNotFound = errors.New("supplement not found")
	ErrNotTracked         = errors.New("supplement is not tracked")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID int64) (_ []Supplement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.supplements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT s.id, s.owner_user_id, s.name, s.dosage, s.frequency,
				(us.user_id IS NOT NULL) AS tracked
			FROM supplement s
			LEFT JOIN user_supplement us ON us.supplement_id = s.id AND us.user_id = $1
			WHERE s.owner_user_id IS NULL OR s.owner_user_id = $1
			ORDER BY s.name, s.id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Supplement])
}

func (r *Repo) Create(ctx context.Context, userID int64, s Supplement) (_ *Supplement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.supplements.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO supplement (owner_user_id, name, dosage, frequency)
			VALUES ($1, $2, $3, $4)
			RETURNING id, owner_user_id, name, dosage, frequency, FALSE AS tracked`,
		userID, s.Name, s.Dosage, s.Frequency,
	)
	if err != nil {
		return nil, err
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Supplement])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Delete removes a supplement owned by userID. Global supplements cannot be deleted.
func (r *Repo) Delete(ctx context.Context, userID, supplementID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.supplements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM supplement WHERE id = $1 AND owner_user_id = $2`, supplementID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplementNotFound
	}
	return nil
}

func (r *Repo) visible(ctx context.Context, userID, supplementID int64) error {
	var ok bool
	err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM supplement WHERE id = $1 AND (owner_user_id IS NULL OR owner_user_id = $2))`,
		supplementID, userID,
	).Scan(&ok)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSupplementNotFound
	}
	return nil
}

// Track is idempotent: tracking an already tracked supplement is not an error.
func (r *Repo) Track(ctx context.Context, userID, supplementID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.supplements.track")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.visible(ctx, userID, supplementID); err != nil {
		return err
	}
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_supplement (user_id, supplement_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, supplementID,
	)
	return err
}

func (r *Repo) Untrack(ctx context.Context, userID, supplementID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.supplements.untrack")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM user_supplement WHERE user_id = $1 AND supplement_id = $2`,
		userID, supplementID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotTracked
	}
	return nil
}

func (r *Repo) LogDose(ctx context.Context, userID, supplementID int64, takenAt time.Time) (_ *DoseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.supplements.logDose")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.visible(ctx, userID, supplementID); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO supplement_log (user_id, supplement_id, taken_at)
			VALUES ($1, $2, $3)
			RETURNING id, user_id, supplement_id, taken_at`,
		userID, supplementID, takenAt,
	)
	if err != nil {
		return nil, err
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[DoseLog])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// TrackedWithDoses lists tracked supplements with the number of doses taken on day (UTC).
func (r *Repo) TrackedWithDoses(ctx context.Context, userID int64, day time.Time) (_ []TrackedSupplement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.supplements.trackedWithDoses")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	y, m, d := day.UTC().Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	rows, err := r.db.Query(
		ctx,
		`SELECT s.id, s.owner_user_id, s.name, s.dosage, s.frequency, TRUE AS tracked,
				(SELECT COUNT(*) FROM supplement_log l
					WHERE l.user_id = us.user_id AND l.supplement_id = s.id
						AND l.taken_at >= $2 AND l.taken_at < $3)::INT AS taken_today
			FROM user_supplement us
			JOIN supplement s ON s.id = us.supplement_id
			WHERE us.user_id = $1
			ORDER BY s.name, s.id`,
		userID, from, from.AddDate(0, 0, 1),
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (TrackedSupplement, error) {
		var ts TrackedSupplement
		err := row.Scan(&ts.ID, &ts.OwnerUserID, &ts.Name, &ts.Dosage, &ts.Frequency, &ts.Tracked, &ts.TakenToday)
		return ts, err
	})
}

func (r *Repo) TrackedCount(ctx context.Context, userID int64) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.supplements.trackedCount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_supplement WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

// DoseTimes returns the timestamps of every dose logged since the given time.
func (r *Repo) DoseTimes(ctx context.Context, userID int64, since time.Time) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.supplements.doseTimes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT taken_at FROM supplement_log WHERE user_id = $1 AND taken_at >= $2 ORDER BY taken_at`,
		userID, since,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[time.Time])
}
