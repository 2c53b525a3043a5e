package diet

import (
	"context"
	"errors"
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/stats"
	"github.com/ggrinberger/grindlog-sub000/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrMealNotFound   = errors.New("meal not found")
	ErrTargetNotFound = errors.New("nutrition target not set")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const mealColumns = `id, user_id, name, meal_type, calories, protein_g, carbs_g, fat_g, eaten_at`

func (r *Repo) ListMeals(ctx context.Context, userID int64, day time.Time) (_ []Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.listMeals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from, to := DayBounds(day)
	rows, err := r.db.Query(
		ctx,
		`SELECT `+mealColumns+` FROM meal
			WHERE user_id = $1 AND eaten_at >= $2 AND eaten_at < $3
			ORDER BY eaten_at, id`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Meal])
}

func (r *Repo) CreateMeal(ctx context.Context, userID int64, meal Meal) (_ *Meal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.createMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO meal (user_id, name, meal_type, calories, protein_g, carbs_g, fat_g, eaten_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+mealColumns,
		userID, meal.Name, meal.MealType, meal.Calories, meal.ProteinG, meal.CarbsG, meal.FatG, meal.EatenAt,
	)
	if err != nil {
		return nil, err
	}
	created, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Meal])
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *Repo) DeleteMeal(ctx context.Context, userID, mealID int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.deleteMeal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM meal WHERE id = $1 AND user_id = $2`, mealID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealNotFound
	}
	return nil
}

// Consumed sums the macros of all meals eaten on the given UTC day.
func (r *Repo) Consumed(ctx context.Context, userID int64, day time.Time) (_ stats.Macros, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.consumed")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	from, to := DayBounds(day)
	var m stats.Macros
	err = r.db.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(calories), 0), COALESCE(SUM(protein_g), 0),
				COALESCE(SUM(carbs_g), 0), COALESCE(SUM(fat_g), 0)
			FROM meal
			WHERE user_id = $1 AND eaten_at >= $2 AND eaten_at < $3`,
		userID, from, to,
	).Scan(&m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG)
	if err != nil {
		return stats.Macros{}, err
	}
	return m, nil
}

func (r *Repo) GetTarget(ctx context.Context, userID int64) (_ *stats.Macros, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.getTarget")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var m stats.Macros
	err = r.db.QueryRow(
		ctx,
		`SELECT calories, protein_g, carbs_g, fat_g FROM nutrition_target WHERE user_id = $1`,
		userID,
	).Scan(&m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTargetNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) UpsertTarget(ctx context.Context, userID int64, target stats.Macros) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.diet.upsertTarget")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO nutrition_target (user_id, calories, protein_g, carbs_g, fat_g)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id) DO UPDATE
				SET calories = EXCLUDED.calories,
					protein_g = EXCLUDED.protein_g,
					carbs_g = EXCLUDED.carbs_g,
					fat_g = EXCLUDED.fat_g`,
		userID, target.Calories, target.ProteinG, target.CarbsG, target.FatG,
	)
	return err
}
