package admin

import (
	"context"
	"errors"

	"github.com/ggrinberger/grindlog-sub000/internal/api"
	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUserNotFound = errors.New("user not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Stats(ctx context.Context) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var s Stats
	err = r.db.QueryRow(
		ctx,
		`SELECT
			(SELECT COUNT(*) FROM app_user),
			(SELECT COUNT(*) FROM app_user WHERE role = 'admin'),
			(SELECT COUNT(*) FROM app_user WHERE onboarded),
			(SELECT COUNT(*) FROM app_user WHERE created_at >= NOW() - INTERVAL '7 days'),
			(SELECT COUNT(DISTINCT user_id) FROM (
				SELECT user_id FROM workout_session WHERE performed_at >= NOW() - INTERVAL '7 days'
				UNION SELECT user_id FROM meal WHERE eaten_at >= NOW() - INTERVAL '7 days'
				UNION SELECT user_id FROM supplement_log WHERE taken_at >= NOW() - INTERVAL '7 days'
				UNION SELECT user_id FROM routine_completion WHERE completed_at >= NOW() - INTERVAL '7 days'
			) active),
			(SELECT COUNT(*) FROM workout_session),
			(SELECT COUNT(*) FROM exercise_log),
			(SELECT COUNT(*) FROM cardio_session),
			(SELECT COUNT(*) FROM meal),
			(SELECT COUNT(*) FROM supplement_log),
			(SELECT COUNT(*) FROM routine_completion),
			(SELECT COUNT(*) FROM fitness_group)`,
	).Scan(
		&s.Users, &s.Admins, &s.OnboardedUsers, &s.NewUsersLast7Days, &s.ActiveUsersLast7Days,
		&s.WorkoutSessions, &s.ExerciseLogs, &s.CardioSessions, &s.Meals,
		&s.SupplementDoses, &s.RoutineCompletions, &s.Groups,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) ListUsers(ctx context.Context, page api.Page) (_ []UserSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.listUsers")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT u.id, u.email, u.username, u.name, u.role, u.onboarded, u.created_at,
				(SELECT COUNT(*) FROM workout_session w WHERE w.user_id = u.id)::INT AS workout_count
			FROM app_user u
			ORDER BY u.created_at DESC, u.id DESC
			LIMIT $1 OFFSET $2`,
		page.Limit, page.Offset,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[UserSummary])
}

func (r *Repo) SetRole(ctx context.Context, userID int64, role auth.Role) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.admin.setRole")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `UPDATE app_user SET role = $2, updated_at = NOW() WHERE id = $1`, userID, role)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
