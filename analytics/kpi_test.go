package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func TestComputeStoreKPIs(t *testing.T) {
	ctx := newTestContext(t)
	frame := BuildBrandDayFrame(ctx, 1, FrameOptions{})
	summary, err := SummarizeBrandWindow(frame, 30)
	require.NoError(t, err)

	kpis := ComputeStoreKPIs(ctx, 1, summary)

	// Latest day is 2024-01-02 with 30 in sales vs 60 the day before.
	assert.Equal(t, 30.0, kpis.DailySales)
	assert.Equal(t, -0.5, kpis.DailySalesDelta)

	// Brand 1's oos_rate_avg is 0.25, above the high threshold.
	assert.Equal(t, "high", kpis.StockoutRisk)

	// Brand 1 leads revenue (50 vs 40).
	require.NotNil(t, kpis.HotBrand)
	assert.Equal(t, "A", *kpis.HotBrand)
}

func TestComputeStoreKPIsNoTransactions(t *testing.T) {
	ctx := newTestContext(t)

	kpis := ComputeStoreKPIs(ctx, 999, nil)

	assert.Zero(t, kpis.DailySales)
	assert.Zero(t, kpis.DailySalesDelta)
	assert.Equal(t, "unknown", kpis.StockoutRisk)
	assert.Nil(t, kpis.HotBrand)
}

func TestComputeStoreKPIsSingleDay(t *testing.T) {
	ctx := &DataContext{
		Transactions: []models.Transaction{
			{TransactionID: "T1", StoreID: 1, TxTimestamp: ts(t, "2024-01-01T09:00:00Z"), TotalAmount: 50},
		},
	}

	kpis := ComputeStoreKPIs(ctx, 1, nil)

	// One observed day compares against itself.
	assert.Equal(t, 50.0, kpis.DailySales)
	assert.Equal(t, 0.0, kpis.DailySalesDelta)
	assert.Equal(t, "low", kpis.StockoutRisk)
}

func TestStockoutRiskBuckets(t *testing.T) {
	ctx := &DataContext{
		Transactions: []models.Transaction{
			{TransactionID: "T1", StoreID: 1, TxTimestamp: ts(t, "2024-01-01T09:00:00Z"), TotalAmount: 50},
		},
	}

	kpis := ComputeStoreKPIs(ctx, 1, []models.BrandWindowSummary{{OosRateAvg: 0.10}})
	assert.Equal(t, "medium", kpis.StockoutRisk)

	kpis = ComputeStoreKPIs(ctx, 1, []models.BrandWindowSummary{{OosRateAvg: 0.03}})
	assert.Equal(t, "low", kpis.StockoutRisk)
}
