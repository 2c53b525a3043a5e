package progress

import (
	"time"
)

type Measurement struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	WeightKg   float64   `json:"weightKg" db:"weight_kg"`
	BodyFatPct *float64  `json:"bodyFatPct" db:"body_fat_pct"`
	Notes      string    `json:"notes" db:"notes"`
	MeasuredAt time.Time `json:"measuredAt" db:"measured_at"`
}

type Goal struct {
	ID           int64      `json:"id" db:"id"`
	UserID       int64      `json:"userId" db:"user_id"`
	Title        string     `json:"title" db:"title"`
	TargetValue  float64    `json:"targetValue" db:"target_value"`
	CurrentValue float64    `json:"currentValue" db:"current_value"`
	Unit         string     `json:"unit" db:"unit"`
	Achieved     bool       `json:"achieved" db:"achieved"`
	Deadline     *time.Time `json:"deadline" db:"deadline"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
}

// GoalInput is the body of goal create/update requests. Deadline is YYYY-MM-DD.
type GoalInput struct {
	Title        *string  `json:"title"`
	TargetValue  *float64 `json:"targetValue"`
	CurrentValue *float64 `json:"currentValue"`
	Unit         *string  `json:"unit"`
	Achieved     *bool    `json:"achieved"`
	Deadline     *string  `json:"deadline"`
}

// GoalUpdate carries parsed goal changes; nil fields are left untouched.
type GoalUpdate struct {
	Title         *string
	TargetValue   *float64
	CurrentValue  *float64
	Unit          *string
	Achieved      *bool
	Deadline      *time.Time
	ClearDeadline bool
}
