// README: Export row model and the plan sink contract.
package export

import (
	"context"
	"time"
)

// Row is one day of a saved plan. The CSV form keeps only the legacy
// five columns; database sinks also store PlanID and CreatedAt.
type Row struct {
	PlanID       string    `json:"plan_id" bson:"plan_id"`
	Destination  string    `json:"destination" bson:"destination"`
	Origin       string    `json:"origin" bson:"origin"`
	DayLabel     string    `json:"day" bson:"day_label"`
	DayText      string    `json:"text" bson:"day_text"`
	CostEstimate int       `json:"cost_estimate" bson:"cost_estimate"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// PlanSink appends plan rows to durable storage. Implementations never
// rewrite or truncate earlier rows.
type PlanSink interface {
	Append(ctx context.Context, rows []Row) error
}

// BuildRows returns one row per day segment, labelled "Day 1", "Day 2", ...
func BuildRows(planID, destination, origin string, days []string, cost int, now time.Time) []Row {
	rows := make([]Row, 0, len(days))
	for i, d := range days {
		rows = append(rows, Row{
			PlanID:       planID,
			Destination:  destination,
			Origin:       origin,
			DayLabel:     dayLabel(i + 1),
			DayText:      d,
			CostEstimate: cost,
			CreatedAt:    now,
		})
	}
	return rows
}
