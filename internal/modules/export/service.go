// README: Export service turns a finished plan into sink rows.
package export

import (
	"context"
	"log/slog"
	"time"
)

// SaveRequest is a finished plan ready to be persisted.
type SaveRequest struct {
	PlanID      string
	Origin      string
	Destination string
	Days        []string
	Cost        int
}

// Service appends plans to the configured sink.
type Service struct {
	sink   PlanSink
	logger *slog.Logger
	now    func() time.Time
}

func NewService(sink PlanSink, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sink: sink, logger: logger, now: time.Now}
}

// Save appends one row per day and returns how many rows were written.
func (s *Service) Save(ctx context.Context, req SaveRequest) (int, error) {
	rows := BuildRows(req.PlanID, req.Destination, req.Origin, req.Days, req.Cost, s.now().UTC())
	if err := s.sink.Append(ctx, rows); err != nil {
		return 0, err
	}
	s.logger.InfoContext(ctx, "plan saved", "plan_id", req.PlanID, "destination", req.Destination, "rows", len(rows))
	return len(rows), nil
}
