package aiusage

import (
	"context"
	"time"
)

// Service enforces the daily generation allowance.
type Service struct {
	store *Store
	limit int64
	now   func() time.Time
}

// NewService creates a Service backed by the given Store. limit <= 0 uses DefaultTokens.
func NewService(store *Store, limit int) *Service {
	if limit <= 0 {
		limit = DefaultTokens
	}
	return &Service{store: store, limit: int64(limit), now: time.Now}
}

// UseToken consumes one generation for client.
// Counters roll over at UTC midnight.
// Returns ErrInsufficientTokens when today's quota is exhausted.
func (s *Service) UseToken(ctx context.Context, client string) error {
	day := s.now().UTC()
	n, err := s.store.Incr(ctx, client, day)
	if err != nil {
		return err
	}
	if n <= s.limit {
		return nil
	}
	// Keep the counter pinned at the limit so Remaining stays accurate.
	if err := s.store.Decr(ctx, client, day); err != nil {
		return err
	}
	return ErrInsufficientTokens
}

// Remaining reports how many generations client has left today.
func (s *Service) Remaining(ctx context.Context, client string) (int64, error) {
	used, err := s.store.Used(ctx, client, s.now().UTC())
	if err != nil {
		return 0, err
	}
	if used >= s.limit {
		return 0, nil
	}
	return s.limit - used, nil
}
