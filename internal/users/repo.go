package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/db"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")
)

const userColumns = `id, email, username, password_hash, name, role, height_cm, fitness_goal,
	experience_level, is_public, onboarded, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Name, &u.Role, &u.HeightCm,
		&u.FitnessGoal, &u.ExperienceLevel, &u.IsPublic, &u.Onboarded, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func mapUniqueViolation(err error) error {
	if !pkg.IsUniqueViolationError(err) {
		return err
	}
	if strings.Contains(pkg.UniqueViolationConstraint(err), "username") {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

func (r *Repo) Create(ctx context.Context, newUser NewUser) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO app_user (email, username, password_hash, name)
			VALUES ($1, $2, $3, $4)
			RETURNING `+userColumns,
		newUser.Email, newUser.Username, newUser.PasswordHash, newUser.Name,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, mapUniqueViolation(err)
	}

	span.SetAttributes(attribute.Int64("user.id", u.ID))
	return u, nil
}

func (r *Repo) GetByID(ctx context.Context, id int64) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM app_user WHERE id = $1`, id))
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByEmail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM app_user WHERE email = $1`, email))
}

func (r *Repo) GetPublicProfile(ctx context.Context, username string) (_ *PublicProfile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.publicProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p PublicProfile
	err = r.db.QueryRow(
		ctx,
		`SELECT u.username, u.name, u.fitness_goal, u.experience_level, u.created_at,
				(SELECT COUNT(*) FROM workout_session ws WHERE ws.user_id = u.id)
			FROM app_user u
			WHERE u.username = $1 AND u.is_public`,
		username,
	).Scan(&p.Username, &p.Name, &p.FitnessGoal, &p.ExperienceLevel, &p.MemberSince, &p.WorkoutCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &p, nil
}

func updateProfile(ctx context.Context, q pgx.Tx, id int64, update ProfileUpdate, onboarded bool) (*User, error) {
	return scanUser(q.QueryRow(
		ctx,
		`UPDATE app_user SET
				name = COALESCE($2, name),
				height_cm = COALESCE($3, height_cm),
				fitness_goal = COALESCE($4, fitness_goal),
				experience_level = COALESCE($5, experience_level),
				is_public = COALESCE($6, is_public),
				onboarded = onboarded OR $7,
				updated_at = NOW()
			WHERE id = $1
			RETURNING `+userColumns,
		id, update.Name, update.HeightCm, update.FitnessGoal, update.ExperienceLevel, update.IsPublic, onboarded,
	))
}

func (r *Repo) UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	var u *User
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var txErr error
		u, txErr = updateProfile(ctx, tx, id, update, false)
		return txErr
	})
	return u, err
}

// Onboard saves the profile and the first body measurement in one transaction.
func (r *Repo) Onboard(ctx context.Context, id int64, onboarding Onboarding) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.onboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	var u *User
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var txErr error
		u, txErr = updateProfile(ctx, tx, id, onboarding.ProfileUpdate, true)
		if txErr != nil {
			return txErr
		}
		if onboarding.InitialWeightKg == nil {
			return nil
		}
		if _, txErr = tx.Exec(
			ctx,
			`INSERT INTO body_measurement (user_id, weight_kg, notes) VALUES ($1, $2, 'onboarding')`,
			id, *onboarding.InitialWeightKg,
		); txErr != nil {
			return fmt.Errorf("insert initial measurement: %w", txErr)
		}
		return nil
	})
	return u, err
}

func (r *Repo) UpdatePasswordHash(ctx context.Context, id int64, hash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updatePassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `UPDATE app_user SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, hash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) SetRoleByEmail(ctx context.Context, email string, role auth.Role) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.setRole")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `UPDATE app_user SET role = $2, updated_at = NOW() WHERE email = $1`, email, role)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
