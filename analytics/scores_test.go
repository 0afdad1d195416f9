package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func TestApplyHeuristicScoresStockout(t *testing.T) {
	// Brand A has demand and stockouts but lags the category on facings;
	// brand B is healthy and has no mentions.
	rows := []models.BrandWindowSummary{
		{BrandID: 1, BrandName: "A", Category: "Cat1", OosRateAvg: 0.10, FacingsAvg: 2, MentionsTotal: 5, ShareOfShelfAvg: 0.3, AvgSentiment: 0.3, TrafficAvg: 120},
		{BrandID: 2, BrandName: "B", Category: "Cat1", OosRateAvg: 0.0, FacingsAvg: 10, MentionsTotal: 0, ShareOfShelfAvg: 0.4, AvgSentiment: 0.0, TrafficAvg: 100},
	}

	scored := ApplyHeuristicScores(rows)
	require.Len(t, scored, 2)

	// Category mean facings is 6: A is below it with oos > 0.05 and
	// mentions present; B has no mentions.
	assert.Equal(t, 1.0, scored[0].RiskStockoutScore)
	assert.Equal(t, 0.0, scored[1].RiskStockoutScore)

	// Neither brand is under half the category share mean (0.175).
	assert.Equal(t, 0.0, scored[0].RiskVisibilityScore)
	assert.Equal(t, 0.0, scored[1].RiskVisibilityScore)

	// Mentions median 2.5 and traffic median 110: only A clears both with
	// positive sentiment.
	assert.Equal(t, 1.0, scored[0].OppHighDemandScore)
	assert.Equal(t, 0.0, scored[1].OppHighDemandScore)
}

func TestApplyHeuristicScoresVisibility(t *testing.T) {
	rows := []models.BrandWindowSummary{
		{BrandID: 1, Category: "Cat1", ShareOfShelfAvg: 0.05},
		{BrandID: 2, Category: "Cat1", ShareOfShelfAvg: 0.50},
		{BrandID: 3, Category: "Cat1", ShareOfShelfAvg: 0.50},
	}

	scored := ApplyHeuristicScores(rows)

	// Category mean is 0.35, floor is 0.175: only brand 1 is below it.
	assert.Equal(t, 1.0, scored[0].RiskVisibilityScore)
	assert.Equal(t, 0.0, scored[1].RiskVisibilityScore)
	assert.Equal(t, 0.0, scored[2].RiskVisibilityScore)
}

func TestApplyHeuristicScoresSingleBrandCategory(t *testing.T) {
	// A brand alone in its category benchmarks against itself: its share
	// equals the category mean, so the strict comparison never fires.
	rows := []models.BrandWindowSummary{
		{BrandID: 1, Category: "Cat1", ShareOfShelfAvg: 0.01, FacingsAvg: 1, OosRateAvg: 0.5, MentionsTotal: 10},
	}

	scored := ApplyHeuristicScores(rows)
	assert.Equal(t, 0.0, scored[0].RiskVisibilityScore)
	// Stockout also needs facings strictly below the category mean, which
	// is the brand's own value here.
	assert.Equal(t, 0.0, scored[0].RiskStockoutScore)
}

func TestApplyHeuristicScoresEmpty(t *testing.T) {
	assert.Empty(t, ApplyHeuristicScores(nil))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 3.0, median([]float64{3}))
	assert.Equal(t, 2.5, median([]float64{5, 0}))
	assert.Equal(t, 2.0, median([]float64{3, 1, 2}))
}
