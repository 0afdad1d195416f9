package analytics

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func ts(t *testing.T, value string) models.FlexTime {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return models.FlexTime{Time: parsed}
}

// newTestContext builds a two-day fixture for store 1 with three brands:
// brand 1 has sales, shelf and demand data, brand 2 has sales only, and
// brand 3 has shelf data only. Store 2 rows exist to prove filtering.
func newTestContext(t *testing.T) *DataContext {
	t.Helper()
	return &DataContext{
		Brands: []models.Brand{
			{BrandID: 1, BrandName: "A", Category: "Cat1"},
			{BrandID: 2, BrandName: "B", Category: "Cat1"},
			{BrandID: 3, BrandName: "C", Category: "Cat2"},
		},
		Transactions: []models.Transaction{
			{TransactionID: "T1", StoreID: 1, TxTimestamp: ts(t, "2024-01-01T09:30:00Z"), TotalAmount: 60},
			{TransactionID: "T2", StoreID: 1, TxTimestamp: ts(t, "2024-01-02T10:00:00Z"), TotalAmount: 30},
			{TransactionID: "T3", StoreID: 2, TxTimestamp: ts(t, "2024-01-01T11:00:00Z"), TotalAmount: 99},
		},
		TransactionLines: []models.TransactionLine{
			{TransactionID: "T1", LineNo: 1, ProductID: 11, BrandID: 1, Quantity: 2, UnitPrice: 10, Subtotal: 20},
			{TransactionID: "T1", LineNo: 2, ProductID: 21, BrandID: 2, Quantity: 1, UnitPrice: 40, Subtotal: 40},
			{TransactionID: "T2", LineNo: 1, ProductID: 11, BrandID: 1, Quantity: 3, UnitPrice: 10, Subtotal: 30},
			{TransactionID: "T3", LineNo: 1, ProductID: 11, BrandID: 1, Quantity: 5, UnitPrice: 10, Subtotal: 99},
		},
		ShelfVision: []models.ShelfVisionEvent{
			{ID: "sv1", StoreID: 1, EventTimestamp: ts(t, "2024-01-01T08:00:00Z"), BrandID: 1, Facings: 2, ShareOfShelf: 0.2, OosFlag: true, Confidence: 0.9},
			{ID: "sv2", StoreID: 1, EventTimestamp: ts(t, "2024-01-01T14:00:00Z"), BrandID: 1, Facings: 4, ShareOfShelf: 0.4, OosFlag: false, Confidence: 0.8},
			{ID: "sv3", StoreID: 1, EventTimestamp: ts(t, "2024-01-02T08:00:00Z"), BrandID: 3, Facings: 5, ShareOfShelf: 0.5, OosFlag: false, Confidence: 0.95},
			{ID: "sv4", StoreID: 2, EventTimestamp: ts(t, "2024-01-01T08:00:00Z"), BrandID: 1, Facings: 9, ShareOfShelf: 0.9, OosFlag: false, Confidence: 0.9},
		},
		SttEvents: []models.SttEvent{
			{ID: "stt1", StoreID: 1, EventTimestamp: ts(t, "2024-01-01T09:00:00Z"), BrandID: 1, RawText: "may A pa ba", IntentLabel: "ask_availability", SentimentScore: 0.5},
			{ID: "stt2", StoreID: 1, EventTimestamp: ts(t, "2024-01-01T16:00:00Z"), BrandID: 1, RawText: "ang mahal ng A", IntentLabel: "complaint", SentimentScore: -0.1},
		},
		Weather: []models.WeatherDaily{
			{StoreID: 1, Date: ts(t, "2024-01-01T00:00:00Z"), TempC: 30, RainfallMm: 5, Condition: "rain"},
			{StoreID: 1, Date: ts(t, "2024-01-02T00:00:00Z"), TempC: 31, RainfallMm: 0, Condition: "sun"},
			{StoreID: 2, Date: ts(t, "2024-01-01T00:00:00Z"), TempC: 20, RainfallMm: 1, Condition: "cloudy"},
		},
		FootTraffic: []models.FootTrafficDaily{
			{StoreID: 1, Date: ts(t, "2024-01-01T00:00:00Z"), TrafficIndex: 100},
			{StoreID: 1, Date: ts(t, "2024-01-02T00:00:00Z"), TrafficIndex: 120},
		},
	}
}

func TestBuildBrandDayFrame(t *testing.T) {
	ctx := newTestContext(t)
	rows := BuildBrandDayFrame(ctx, 1, FrameOptions{})

	require.Len(t, rows, 4)

	// Sorted by (date, brand_id) ascending.
	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.Equal(t, 1, rows[0].BrandID)
	assert.Equal(t, "2024-01-01", rows[1].Date)
	assert.Equal(t, 2, rows[1].BrandID)
	assert.Equal(t, "2024-01-02", rows[2].Date)
	assert.Equal(t, 1, rows[2].BrandID)
	assert.Equal(t, "2024-01-02", rows[3].Date)
	assert.Equal(t, 3, rows[3].BrandID)

	// Brand 1 on day one: every source contributes.
	day1 := rows[0]
	assert.Equal(t, 2.0, day1.QtySold)
	assert.Equal(t, 20.0, day1.Revenue)
	assert.Equal(t, 3.0, day1.FacingsAvg)
	assert.InDelta(t, 0.3, day1.ShareOfShelfAvg, 1e-9)
	assert.Equal(t, 0.5, day1.OosRate)
	assert.Equal(t, 2, day1.MentionCount)
	assert.InDelta(t, 0.2, day1.AvgSentiment, 1e-9)
	assert.Equal(t, map[string]int{"ask_availability": 1, "complaint": 1}, day1.IntentCounts)
	assert.Equal(t, 30.0, day1.TempC)
	assert.Equal(t, "rain", day1.Condition)
	assert.Equal(t, 100.0, day1.TrafficIndex)
	assert.Equal(t, "A", day1.BrandName)
	assert.Equal(t, "Cat1", day1.Category)

	// Brand 2 sold but was never observed on shelf or mentioned: the
	// remaining numeric fields stay at zero.
	day1B := rows[1]
	assert.Equal(t, 1.0, day1B.QtySold)
	assert.Equal(t, 40.0, day1B.Revenue)
	assert.Zero(t, day1B.FacingsAvg)
	assert.Zero(t, day1B.MentionCount)
	assert.Equal(t, 100.0, day1B.TrafficIndex)

	// Brand 3 never sold anything but still appears via shelf data.
	day2C := rows[3]
	assert.Zero(t, day2C.QtySold)
	assert.Equal(t, 5.0, day2C.FacingsAvg)
	assert.Equal(t, "C", day2C.BrandName)
	assert.Equal(t, "Cat2", day2C.Category)
}

func TestBuildBrandDayFrameConservesQuantity(t *testing.T) {
	ctx := newTestContext(t)
	rows := BuildBrandDayFrame(ctx, 1, FrameOptions{})

	frameQty := 0.0
	for _, row := range rows {
		frameQty += row.QtySold
	}

	storeTx := map[string]bool{}
	for _, tx := range ctx.Transactions {
		if tx.StoreID == 1 {
			storeTx[tx.TransactionID] = true
		}
	}
	lineQty := 0.0
	for _, line := range ctx.TransactionLines {
		if storeTx[line.TransactionID] {
			lineQty += line.Quantity
		}
	}

	assert.Equal(t, lineQty, frameQty)
}

func TestBuildBrandDayFrameIdempotent(t *testing.T) {
	ctx := newTestContext(t)

	first, err := json.Marshal(BuildBrandDayFrame(ctx, 1, FrameOptions{}))
	require.NoError(t, err)
	second, err := json.Marshal(BuildBrandDayFrame(ctx, 1, FrameOptions{}))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestBuildBrandDayFrameFilters(t *testing.T) {
	ctx := newTestContext(t)

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	rows := BuildBrandDayFrame(ctx, 1, FrameOptions{StartDate: &start})
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "2024-01-02", row.Date)
	}

	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows = BuildBrandDayFrame(ctx, 1, FrameOptions{EndDate: &end})
	require.Len(t, rows, 2)

	rows = BuildBrandDayFrame(ctx, 1, FrameOptions{FocusBrandIDs: []int{3}})
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].BrandID)
}

func TestBuildBrandDayFrameEmptyStore(t *testing.T) {
	ctx := newTestContext(t)
	rows := BuildBrandDayFrame(ctx, 999, FrameOptions{})
	assert.Empty(t, rows)
}
