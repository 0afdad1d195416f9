package analytics

import (
	"fmt"
	"sort"

	"app/models"
)

type windowAcc struct {
	brandName    string
	category     string
	dates        map[string]struct{}
	rows         int
	qtySum       float64
	revenueSum   float64
	facingsSum   float64
	shareSum     float64
	oosSum       float64
	mentions     int
	sentimentSum float64
	trafficSum   float64
	tempSum      float64
	rainfallSum  float64
}

// SummarizeBrandWindow aggregates a daily feature frame into one row per
// brand, sorted by brand id. It aggregates whatever rows it is given;
// windowDays only labels the caller's intended horizon and does not truncate.
// Callers pre-filter the date range via the builder when a strict window is
// needed.
func SummarizeBrandWindow(rows []models.BrandDayRow, windowDays int) ([]models.BrandWindowSummary, error) {
	_ = windowDays

	accs := make(map[int]*windowAcc)
	for i, row := range rows {
		if row.Date == "" || row.BrandID == 0 {
			return nil, fmt.Errorf("feature frame row %d: %w", i, models.ErrMissingKey)
		}
		acc := accs[row.BrandID]
		if acc == nil {
			acc = &windowAcc{dates: make(map[string]struct{})}
			accs[row.BrandID] = acc
		}
		if acc.brandName == "" {
			acc.brandName = row.BrandName
		}
		if acc.category == "" {
			acc.category = row.Category
		}
		acc.dates[row.Date] = struct{}{}
		acc.rows++
		acc.qtySum += row.QtySold
		acc.revenueSum += row.Revenue
		acc.facingsSum += row.FacingsAvg
		acc.shareSum += row.ShareOfShelfAvg
		acc.oosSum += row.OosRate
		acc.mentions += row.MentionCount
		acc.sentimentSum += row.AvgSentiment
		acc.trafficSum += row.TrafficIndex
		acc.tempSum += row.TempC
		acc.rainfallSum += row.RainfallMm
	}

	brandIDs := make([]int, 0, len(accs))
	for id := range accs {
		brandIDs = append(brandIDs, id)
	}
	sort.Ints(brandIDs)

	out := make([]models.BrandWindowSummary, 0, len(brandIDs))
	for _, id := range brandIDs {
		acc := accs[id]
		n := float64(acc.rows)
		out = append(out, models.BrandWindowSummary{
			BrandID:         id,
			BrandName:       acc.brandName,
			Category:        acc.category,
			DaysObserved:    len(acc.dates),
			QtySoldTotal:    acc.qtySum,
			QtySoldAvg:      acc.qtySum / n,
			RevenueTotal:    acc.revenueSum,
			RevenueAvg:      acc.revenueSum / n,
			FacingsAvg:      acc.facingsSum / n,
			ShareOfShelfAvg: acc.shareSum / n,
			OosRateAvg:      acc.oosSum / n,
			MentionsTotal:   acc.mentions,
			AvgSentiment:    acc.sentimentSum / n,
			TrafficAvg:      acc.trafficSum / n,
			TempAvg:         acc.tempSum / n,
			RainfallAvg:     acc.rainfallSum / n,
		})
	}

	return out, nil
}
