package analytics

import (
	"math"

	"app/models"
)

// Stockout risk buckets derived from the worst oos_rate_avg in the window.
const (
	stockoutHighThreshold   = 0.2
	stockoutMediumThreshold = 0.05
)

// ComputeStoreKPIs derives headline dashboard numbers for a store: revenue
// on the latest transaction date, its delta vs the previous observed date,
// a stockout risk bucket from the scored brand summary, and the top revenue
// brand. A store with no transactions yields zeros and "unknown" risk.
func ComputeStoreKPIs(ctx *DataContext, storeID int, summary []models.BrandWindowSummary) models.StoreKPIs {
	revenueByDate := make(map[string]float64)
	txDates := make(map[string]string)
	for _, tx := range ctx.Transactions {
		if tx.StoreID != storeID {
			continue
		}
		date := tx.TxTimestamp.Format(dateLayout)
		revenueByDate[date] += tx.TotalAmount
		txDates[tx.TransactionID] = date
	}

	if len(revenueByDate) == 0 {
		return models.StoreKPIs{StockoutRisk: "unknown"}
	}

	today := ""
	for date := range revenueByDate {
		if date > today {
			today = date
		}
	}
	// Previous observed day, not calendar yesterday. With a single observed
	// day the delta compares the day to itself and comes out 0.
	yesterday := today
	for date := range revenueByDate {
		if date >= today {
			continue
		}
		if yesterday == today || date > yesterday {
			yesterday = date
		}
	}

	todaySales := revenueByDate[today]
	yesterdaySales := revenueByDate[yesterday]
	delta := 0.0
	if yesterdaySales > 0 {
		delta = (todaySales - yesterdaySales) / yesterdaySales
	}
	delta = math.Round(delta*1000) / 1000

	stockoutRisk := "low"
	maxOos := 0.0
	for _, row := range summary {
		if row.OosRateAvg > maxOos {
			maxOos = row.OosRateAvg
		}
	}
	if maxOos > stockoutHighThreshold {
		stockoutRisk = "high"
	} else if maxOos > stockoutMediumThreshold {
		stockoutRisk = "medium"
	}

	// Hot brand: top revenue across all of the store's transaction lines.
	revenueByBrand := make(map[int]float64)
	for _, line := range ctx.TransactionLines {
		if _, ok := txDates[line.TransactionID]; !ok {
			continue
		}
		revenueByBrand[line.BrandID] += line.Subtotal
	}
	var hotBrand *string
	if len(revenueByBrand) > 0 {
		topBrandID, topRevenue := 0, math.Inf(-1)
		for brandID, revenue := range revenueByBrand {
			if revenue > topRevenue || revenue == topRevenue && brandID < topBrandID {
				topBrandID, topRevenue = brandID, revenue
			}
		}
		for _, b := range ctx.Brands {
			if b.BrandID == topBrandID {
				name := b.BrandName
				hotBrand = &name
				break
			}
		}
	}

	return models.StoreKPIs{
		DailySales:      todaySales,
		DailySalesDelta: delta,
		StockoutRisk:    stockoutRisk,
		HotBrand:        hotBrand,
	}
}
