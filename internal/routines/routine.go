package routines

import "time"

type Routine struct {
	ID        int64         `json:"id" db:"id"`
	UserID    int64         `json:"userId" db:"user_id"`
	Name      string        `json:"name" db:"name"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
	Items     []RoutineItem `json:"items" db:"-"`
}

type RoutineItem struct {
	ID        int64  `json:"id" db:"id"`
	RoutineID int64  `json:"routineId" db:"routine_id"`
	Position  int    `json:"position" db:"position"`
	Name      string `json:"name" db:"name"`
}

type Completion struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	RoutineID      int64     `json:"routineId" db:"routine_id"`
	RoutineName    string    `json:"routineName" db:"routine_name"`
	CompletedItems []string  `json:"completedItems" db:"completed_items"`
	CompletedAt    time.Time `json:"completedAt" db:"completed_at"`
}

type CreateRequest struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

type CompleteRequest struct {
	// CompletedItems defaults to every item of the routine when omitted.
	CompletedItems []string `json:"completedItems"`
}

type Streak struct {
	Days int `json:"days"`
}
