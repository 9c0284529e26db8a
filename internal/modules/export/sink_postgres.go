package export

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertPlanRow = `
	INSERT INTO plan_rows (plan_id, destination, origin, day_label, day_text, cost_estimate, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// PostgresSink writes rows to the plan_rows table in one transaction.
type PostgresSink struct {
	db *pgxpool.Pool
}

func NewPostgresSink(db *pgxpool.Pool) *PostgresSink {
	return &PostgresSink{db: db}
}

func (s *PostgresSink) Append(ctx context.Context, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, r := range rows {
			id, err := uuid.Parse(r.PlanID)
			if err != nil {
				return fmt.Errorf("postgres sink: plan id %q: %w", r.PlanID, err)
			}
			batch.Queue(insertPlanRow, id, r.Destination, r.Origin, r.DayLabel, r.DayText, r.CostEstimate, r.CreatedAt)
		}
		br := tx.SendBatch(ctx, batch)
		for range rows {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("postgres sink: insert: %w", err)
			}
		}
		return br.Close()
	})
}
