package agents

import (
	"app/analytics"
	"app/models"
)

// DataAnalyst runs the feature pipeline for one decision: build the daily
// frame, apply the decision's brand/category focus, summarize the window
// and score it.
type DataAnalyst struct {
	ctx *analytics.DataContext
}

func NewDataAnalyst(ctx *analytics.DataContext) *DataAnalyst {
	return &DataAnalyst{ctx: ctx}
}

// Analyze executes the pipeline for decision and returns both derived
// tables. Date range is left implicit (all available data); the brand and
// category filters narrow the frame after it is built.
func (a *DataAnalyst) Analyze(decision models.PlannerDecision) (models.AnalyticsResult, error) {
	frame := analytics.BuildBrandDayFrame(a.ctx, decision.StoreID, analytics.FrameOptions{})

	if decision.BrandID != nil {
		frame = filterRows(frame, func(r models.BrandDayRow) bool {
			return r.BrandID == *decision.BrandID
		})
	}
	if decision.Category != "" {
		frame = filterRows(frame, func(r models.BrandDayRow) bool {
			return r.Category == decision.Category
		})
	}

	summary, err := analytics.SummarizeBrandWindow(frame, decision.FocusDays)
	if err != nil {
		return models.AnalyticsResult{}, err
	}
	summary = analytics.ApplyHeuristicScores(summary)

	return models.AnalyticsResult{
		StoreID:      decision.StoreID,
		Decision:     decision,
		FeatureFrame: frame,
		BrandSummary: summary,
	}, nil
}

func filterRows(rows []models.BrandDayRow, keep func(models.BrandDayRow) bool) []models.BrandDayRow {
	out := rows[:0:0]
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}
