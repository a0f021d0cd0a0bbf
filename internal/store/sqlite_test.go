package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paper-exchange/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleState() models.AccountState {
	now := time.Now().Truncate(time.Second)
	return models.AccountState{
		Cash: 998999,
		Positions: []models.Position{
			{Symbol: "ITC", Product: models.ProductCash, Quantity: 10, AverageCost: 100},
			{Symbol: "SBIN", Product: models.ProductMargin, Quantity: -5, AverageCost: 750},
		},
		Orders: []models.Order{
			{
				ID: "ord-1", Symbol: "ITC", Side: models.OrderSideBuy,
				Terms: models.MarketTerms{}, Product: models.ProductCash,
				Quantity: 10, Status: models.OrderStatusExecuted, CreatedAt: now,
			},
			{
				ID: "ord-2", Symbol: "INFY", Side: models.OrderSideBuy,
				Terms: models.LimitTerms{LimitPrice: 1450}, Product: models.ProductCash,
				Quantity: 2, Status: models.OrderStatusPending, CreatedAt: now,
			},
			{
				ID: "ord-3", Symbol: "SBIN", Side: models.OrderSideSell,
				Terms: models.StopLimitTerms{TriggerPrice: 700, LimitPrice: 690}, Product: models.ProductMargin,
				Quantity: 5, Status: models.OrderStatusTriggered, CreatedAt: now,
			},
		},
		Transactions: []models.Transaction{
			{
				ID: "tx-1", Timestamp: now, Symbol: "ITC", Side: models.OrderSideBuy,
				Product: models.ProductCash, Quantity: 10, Price: 100, GrossValue: 1000,
			},
		},
	}
}

func TestLoadMissingKeyReturnsNil(t *testing.T) {
	s := newTestStore(t)

	state, err := s.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	in := sampleState()

	require.NoError(t, s.Save(ctx, "user-1", in))

	out, err := s.Load(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, in.Cash, out.Cash)
	assert.Equal(t, in.Positions, out.Positions)

	require.Len(t, out.Orders, 3)
	for i, o := range out.Orders {
		assert.Equal(t, in.Orders[i].ID, o.ID, "order sequence must survive")
		assert.Equal(t, in.Orders[i].Status, o.Status)
		assert.Equal(t, in.Orders[i].Terms, o.Terms, "terms variant must rebuild from columns")
	}

	require.Len(t, out.Transactions, 1)
	assert.Equal(t, in.Transactions[0].ID, out.Transactions[0].ID)
	assert.Equal(t, in.Transactions[0].GrossValue, out.Transactions[0].GrossValue)
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "user-1", sampleState()))

	// A smaller later snapshot fully replaces the earlier one.
	require.NoError(t, s.Save(ctx, "user-1", models.AccountState{Cash: 1000000}))

	out, err := s.Load(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 1000000.0, out.Cash)
	assert.Empty(t, out.Positions)
	assert.Empty(t, out.Orders)
	assert.Empty(t, out.Transactions)
}

func TestSnapshotsAreIsolatedByKey(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "user-1", sampleState()))
	require.NoError(t, s.Save(ctx, "user-2", models.AccountState{Cash: 42}))

	one, err := s.Load(ctx, "user-1")
	require.NoError(t, err)
	two, err := s.Load(ctx, "user-2")
	require.NoError(t, err)

	assert.Equal(t, 998999.0, one.Cash)
	assert.Equal(t, 42.0, two.Cash)
	assert.Empty(t, two.Positions)
}
