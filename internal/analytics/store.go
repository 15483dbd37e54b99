package analytics

import (
	"context"
	"time"

	"warung-pos/internal/domain"
	"warung-pos/internal/storage"

	"github.com/redis/go-redis/v9"
)

// Aggregates are kept long enough to cover the dashboard's look-back
// windows.
const (
	dailyTTL = 7 * 24 * time.Hour
	menuTTL  = 35 * 24 * time.Hour
)

// Store folds paid-order events into the Redis daily sales aggregates read
// by the dashboard.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) RecordPaidOrder(ctx context.Context, event domain.OrderEvent) error {
	day := event.Timestamp.Format("2006-01-02")

	dailyKey := storage.DailySalesKey(day)
	if err := s.rdb.HIncrBy(ctx, dailyKey, "revenue", int64(event.TotalAmount)).Err(); err != nil {
		return err
	}
	if err := s.rdb.HIncrBy(ctx, dailyKey, "orders", 1).Err(); err != nil {
		return err
	}
	s.rdb.Expire(ctx, dailyKey, dailyTTL)

	menuKey := storage.MenuSalesKey(day)
	for _, item := range event.Items {
		s.rdb.ZIncrBy(ctx, menuKey, float64(item.Quantity), item.MenuName)
	}
	s.rdb.Expire(ctx, menuKey, menuTTL)

	if event.PaymentMethod != "" {
		methodKey := storage.MethodSalesKey(day)
		s.rdb.HIncrBy(ctx, methodKey, event.PaymentMethod, int64(event.TotalAmount))
		s.rdb.Expire(ctx, methodKey, dailyTTL)
	}

	return nil
}
