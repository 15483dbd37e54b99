package storage

import (
	"context"
	"testing"
	"time"

	"warung-pos/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*ReportRedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewReportRedisCache(client, time.Minute), mr
}

func TestReportRedisCache_DashboardRoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	_, ok := cache.GetDashboard(ctx)
	assert.False(t, ok)

	stats := &domain.DashboardStats{
		TodayRevenue: 320000,
		TodayCount:   12,
		ActiveOrders: 3,
		GeneratedAt:  time.Now().Truncate(time.Second),
	}
	require.NoError(t, cache.SetDashboard(ctx, stats))

	cached, ok := cache.GetDashboard(ctx)
	require.True(t, ok)
	assert.Equal(t, 320000, cached.TodayRevenue)
	assert.Equal(t, 12, cached.TodayCount)
}

func TestReportRedisCache_DashboardExpires(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetDashboard(ctx, &domain.DashboardStats{TodayRevenue: 1000}))
	mr.FastForward(2 * time.Minute)

	_, ok := cache.GetDashboard(ctx)
	assert.False(t, ok)
}

func TestReportRedisCache_DailySales(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	_, _, ok := cache.DailySales(ctx, "2025-03-10")
	assert.False(t, ok)

	mr.HSet(DailySalesKey("2025-03-10"), "revenue", "48000", "orders", "3")

	revenue, orders, ok := cache.DailySales(ctx, "2025-03-10")
	require.True(t, ok)
	assert.Equal(t, 48000, revenue)
	assert.Equal(t, 3, orders)
}

func TestReportRedisCache_TopMenusToday(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	key := MenuSalesKey("2025-03-10")
	mr.ZAdd(key, 12, "Bakmi Ayam")
	mr.ZAdd(key, 7, "Es Teh")
	mr.ZAdd(key, 3, "Bakmi Godog")

	top, err := cache.TopMenusToday(ctx, "2025-03-10", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, domain.MenuSales{Name: "Bakmi Ayam", TotalSold: 12}, top[0])
	assert.Equal(t, domain.MenuSales{Name: "Es Teh", TotalSold: 7}, top[1])
}
