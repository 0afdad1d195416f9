package models

// BrandDayRow is one derived feature row per (date, brand) for a single
// store, combining sales, shelf vision, demand mentions, weather and foot
// traffic. Numeric fields are 0 when a source had no rows for that
// date/brand; absence of a signal is "no observation", not an error.
type BrandDayRow struct {
	Date            string         `json:"date"` // YYYY-MM-DD
	BrandID         int            `json:"brand_id"`
	QtySold         float64        `json:"qty_sold"`
	Revenue         float64        `json:"revenue"`
	FacingsAvg      float64        `json:"facings_avg"`
	ShareOfShelfAvg float64        `json:"share_of_shelf_avg"`
	OosRate         float64        `json:"oos_rate"`
	MentionCount    int            `json:"mention_count"`
	AvgSentiment    float64        `json:"avg_sentiment"`
	IntentCounts    map[string]int `json:"intent_counts,omitempty"`
	TempC           float64        `json:"temp_c"`
	RainfallMm      float64        `json:"rainfall_mm"`
	Condition       string         `json:"condition"`
	TrafficIndex    float64        `json:"traffic_index"`
	BrandName       string         `json:"brand_name"`
	Category        string         `json:"category"`
}

// BrandWindowSummary aggregates BrandDayRows over the observed window into
// one row per brand, plus the three heuristic score flags (0.0 or 1.0).
type BrandWindowSummary struct {
	BrandID         int     `json:"brand_id"`
	BrandName       string  `json:"brand_name"`
	Category        string  `json:"category"`
	DaysObserved    int     `json:"days_observed"`
	QtySoldTotal    float64 `json:"qty_sold_total"`
	QtySoldAvg      float64 `json:"qty_sold_avg"`
	RevenueTotal    float64 `json:"revenue_total"`
	RevenueAvg      float64 `json:"revenue_avg"`
	FacingsAvg      float64 `json:"facings_avg"`
	ShareOfShelfAvg float64 `json:"share_of_shelf_avg"`
	OosRateAvg      float64 `json:"oos_rate_avg"`
	MentionsTotal   int     `json:"mentions_total"`
	AvgSentiment    float64 `json:"avg_sentiment"`
	TrafficAvg      float64 `json:"traffic_avg"`
	TempAvg         float64 `json:"temp_avg"`
	RainfallAvg     float64 `json:"rainfall_avg"`

	RiskStockoutScore   float64 `json:"risk_stockout_score"`
	RiskVisibilityScore float64 `json:"risk_visibility_score"`
	OppHighDemandScore  float64 `json:"opp_high_demand_score"`
}
