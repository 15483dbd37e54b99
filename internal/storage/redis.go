package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"warung-pos/internal/domain"

	"github.com/redis/go-redis/v9"
)

const dashboardKey = "dashboard:stats"

// Key layout shared with the analytics consumer.
func DailySalesKey(day string) string  { return "sales:daily:" + day }
func MenuSalesKey(day string) string   { return "sales:menu:" + day }
func MethodSalesKey(day string) string { return "sales:method:" + day }

// ReportRedisCache fronts dashboard reads and exposes the daily aggregates
// maintained by the analytics consumer.
type ReportRedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewReportRedisCache(client *redis.Client, ttl time.Duration) *ReportRedisCache {
	return &ReportRedisCache{Client: client, TTL: ttl}
}

func (c *ReportRedisCache) GetDashboard(ctx context.Context) (*domain.DashboardStats, bool) {
	payload, err := c.Client.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		return nil, false
	}
	var stats domain.DashboardStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *ReportRedisCache) SetDashboard(ctx context.Context, stats *domain.DashboardStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, dashboardKey, payload, c.TTL).Err()
}

// DailySales reads the revenue/order counters for a day. ok is false when
// the consumer has not recorded anything yet.
func (c *ReportRedisCache) DailySales(ctx context.Context, day string) (int, int, bool) {
	fields, err := c.Client.HGetAll(ctx, DailySalesKey(day)).Result()
	if err != nil || len(fields) == 0 {
		return 0, 0, false
	}
	revenue, _ := strconv.Atoi(fields["revenue"])
	orders, _ := strconv.Atoi(fields["orders"])
	return revenue, orders, true
}

func (c *ReportRedisCache) TopMenusToday(ctx context.Context, day string, limit int) ([]domain.MenuSales, error) {
	members, err := c.Client.ZRevRangeWithScores(ctx, MenuSalesKey(day), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	sales := []domain.MenuSales{}
	for _, member := range members {
		name, _ := member.Member.(string)
		sales = append(sales, domain.MenuSales{
			Name:      name,
			TotalSold: int(member.Score),
		})
	}
	return sales, nil
}
