package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type monthTotals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	ByName   map[string]decimal.Decimal
}

func newCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *summaryCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewSummaryCache(client, ttl).(*summaryCache)
}

func TestSummaryCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	_, c := newCache(t, time.Minute)
	userID := uuid.New()

	var miss monthTotals
	found, err := c.Get(ctx, userID, "transactions:2025-01", &miss)
	require.NoError(t, err)
	assert.False(t, found)

	in := monthTotals{
		Income:   decimal.RequireFromString("5000.00"),
		Expenses: decimal.RequireFromString("1234.56"),
		ByName:   map[string]decimal.Decimal{"Outros": decimal.RequireFromString("1234.56")},
	}
	require.NoError(t, c.Set(ctx, userID, "transactions:2025-01", in))

	var out monthTotals
	found, err = c.Get(ctx, userID, "transactions:2025-01", &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, in.Income.Equal(out.Income))
	assert.True(t, in.Expenses.Equal(out.Expenses))
	assert.True(t, in.ByName["Outros"].Equal(out.ByName["Outros"]))
}

func TestSummaryCache_Expires(t *testing.T) {
	ctx := context.Background()
	mr, c := newCache(t, time.Minute)
	userID := uuid.New()

	require.NoError(t, c.Set(ctx, userID, "debts:all", monthTotals{}))
	mr.FastForward(2 * time.Minute)

	var out monthTotals
	found, err := c.Get(ctx, userID, "debts:all", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSummaryCache_InvalidateUser(t *testing.T) {
	ctx := context.Background()
	mr, c := newCache(t, time.Minute)
	ana, bruno := uuid.New(), uuid.New()

	for _, key := range []string{"debts:all", "debts:2025-01", "transactions:2025-01:2025-01-20"} {
		require.NoError(t, c.Set(ctx, ana, key, monthTotals{}))
	}
	require.NoError(t, c.Set(ctx, bruno, "debts:all", monthTotals{}))

	require.NoError(t, c.InvalidateUser(ctx, ana))

	assert.False(t, mr.Exists(userKey(ana, "debts:all")))
	assert.False(t, mr.Exists(userKey(ana, "transactions:2025-01:2025-01-20")))
	assert.True(t, mr.Exists(userKey(bruno, "debts:all")))

	require.NoError(t, c.InvalidateUser(ctx, uuid.New()))
}

func TestSummaryCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	mr, c := newCache(t, time.Minute)
	userID := uuid.New()

	require.NoError(t, mr.Set(userKey(userID, "debts:all"), "{not json"))

	var out monthTotals
	found, err := c.Get(ctx, userID, "debts:all", &out)
	assert.Error(t, err)
	assert.False(t, found)
}
