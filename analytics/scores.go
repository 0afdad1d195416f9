package analytics

import (
	"sort"

	"app/models"
)

// Fixed scoring thresholds. These mirror the heuristics downstream consumers
// were calibrated against; do not make them configurable.
const (
	oosRateThreshold        = 0.05
	visibilityFloorFraction = 0.5
)

type categoryBenchmark struct {
	facingsAvg float64
	shareAvg   float64
}

// Benchmarks hold the category means and whole-table medians a row is
// scored against. They are computed from the summary table as given, i.e.
// after any brand/category filtering.
type Benchmarks struct {
	byCategory     map[string]categoryBenchmark
	mentionsMedian float64
	trafficMedian  float64
}

// ComputeBenchmarks derives per-category means of facings and share of
// shelf, plus table-wide medians of mentions and traffic.
func ComputeBenchmarks(rows []models.BrandWindowSummary) Benchmarks {
	type catAcc struct {
		facingsSum float64
		shareSum   float64
		n          int
	}
	cats := make(map[string]*catAcc)
	mentions := make([]float64, 0, len(rows))
	traffic := make([]float64, 0, len(rows))
	for _, row := range rows {
		acc := cats[row.Category]
		if acc == nil {
			acc = &catAcc{}
			cats[row.Category] = acc
		}
		acc.facingsSum += row.FacingsAvg
		acc.shareSum += row.ShareOfShelfAvg
		acc.n++
		mentions = append(mentions, float64(row.MentionsTotal))
		traffic = append(traffic, row.TrafficAvg)
	}

	byCategory := make(map[string]categoryBenchmark, len(cats))
	for cat, acc := range cats {
		byCategory[cat] = categoryBenchmark{
			facingsAvg: acc.facingsSum / float64(acc.n),
			shareAvg:   acc.shareSum / float64(acc.n),
		}
	}

	return Benchmarks{
		byCategory:     byCategory,
		mentionsMedian: median(mentions),
		trafficMedian:  median(traffic),
	}
}

// ScoreRow fills the three boolean score flags on a single summary row.
// Pure per-row logic; all table context comes in through the benchmarks.
func ScoreRow(row *models.BrandWindowSummary, b Benchmarks) {
	cat := b.byCategory[row.Category]

	// Risk: demand exists but shelf presence lags peers while stock-outs
	// are non-trivial.
	if row.OosRateAvg > oosRateThreshold && row.MentionsTotal > 0 && row.FacingsAvg < cat.facingsAvg {
		row.RiskStockoutScore = 1.0
	} else {
		row.RiskStockoutScore = 0.0
	}

	// Risk: below half the category's average share of shelf.
	if row.ShareOfShelfAvg < visibilityFloorFraction*cat.shareAvg {
		row.RiskVisibilityScore = 1.0
	} else {
		row.RiskVisibilityScore = 0.0
	}

	// Opportunity: above-median mentions and traffic with positive sentiment.
	if float64(row.MentionsTotal) > b.mentionsMedian && row.AvgSentiment > 0 && row.TrafficAvg > b.trafficMedian {
		row.OppHighDemandScore = 1.0
	} else {
		row.OppHighDemandScore = 0.0
	}
}

// ApplyHeuristicScores scores every row of a brand window summary in place
// and returns the slice for chaining.
func ApplyHeuristicScores(rows []models.BrandWindowSummary) []models.BrandWindowSummary {
	if len(rows) == 0 {
		return rows
	}
	benchmarks := ComputeBenchmarks(rows)
	for i := range rows {
		ScoreRow(&rows[i], benchmarks)
	}
	return rows
}

// median returns the middle value of values, averaging the two middle
// values for even lengths. Returns 0 for an empty slice.
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
