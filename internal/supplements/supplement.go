package supplements

import (
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/stats"
)

type Supplement struct {
	ID          int64  `json:"id" db:"id"`
	OwnerUserID *int64 `json:"ownerUserId,omitempty" db:"owner_user_id"`
	Name        string `json:"name" db:"name"`
	Dosage      string `json:"dosage" db:"dosage"`
	Frequency   string `json:"frequency" db:"frequency"`
	Tracked     bool   `json:"tracked" db:"tracked"`
}

type DoseLog struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	SupplementID int64     `json:"supplementId" db:"supplement_id"`
	TakenAt      time.Time `json:"takenAt" db:"taken_at"`
}

// TrackedSupplement is a tracked supplement with the doses logged on one day.
type TrackedSupplement struct {
	Supplement
	TakenToday int `json:"takenToday" db:"taken_today"`
}

type TodayItem struct {
	TrackedSupplement
	ExpectedDoses int  `json:"expectedDoses"`
	Complete      bool `json:"complete"`
}

type Today struct {
	Date     string      `json:"date"`
	Items    []TodayItem `json:"items"`
	Complete int         `json:"complete"`
	Tracked  int         `json:"tracked"`
}

type Streak struct {
	Days int `json:"days"`
}

// BuildToday pairs every tracked supplement with its expected doses.
func BuildToday(day time.Time, tracked []TrackedSupplement) Today {
	today := Today{
		Date:    stats.DayKey(day),
		Items:   make([]TodayItem, 0, len(tracked)),
		Tracked: len(tracked),
	}
	doses := make([]stats.SupplementDoses, 0, len(tracked))
	for _, ts := range tracked {
		expected := stats.ExpectedDoses(ts.Frequency)
		today.Items = append(today.Items, TodayItem{
			TrackedSupplement: ts,
			ExpectedDoses:     expected,
			Complete:          ts.TakenToday >= expected,
		})
		doses = append(doses, stats.SupplementDoses{
			SupplementID: ts.ID,
			Frequency:    ts.Frequency,
			TakenToday:   ts.TakenToday,
		})
	}
	today.Complete = stats.CompleteToday(doses)
	return today
}
