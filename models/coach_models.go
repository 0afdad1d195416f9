package models

// Flow types understood by the planner. Anything else falls back to
// FlowAnalyzeStore.
const (
	FlowAnalyzeStore = "analyze_store"
	FlowExplainBrand = "explain_brand"
	FlowSevenDayPlan = "seven_day_plan"
)

// Personas for coach output. Informational only; they do not change which
// rules fire.
const (
	PersonaStoreOwner   = "store_owner"
	PersonaBrandManager = "brand_manager"
	PersonaDistributor  = "distributor"
)

// PlannerDecision is the validated execution plan for one request.
// Constructed once by the planner and consumed read-only downstream.
type PlannerDecision struct {
	Flow      string `json:"flow"`
	StoreID   int    `json:"store_id"`
	BrandID   *int   `json:"brand_id,omitempty"`
	Category  string `json:"category,omitempty"`
	FocusDays int    `json:"focus_days"`
}

// AnalyticsResult bundles the decision with both derived tables so callers
// can surface raw KPIs as well as narrative output.
type AnalyticsResult struct {
	StoreID      int                  `json:"store_id"`
	Decision     PlannerDecision      `json:"decision"`
	FeatureFrame []BrandDayRow        `json:"feature_frame"`
	BrandSummary []BrandWindowSummary `json:"brand_summary"`
}

// CoachOutput is the structured recommendation payload.
type CoachOutput struct {
	Actions       []string               `json:"actions"`
	Risks         []string               `json:"risks"`
	Opportunities []string               `json:"opportunities"`
	DebugNotes    map[string]interface{} `json:"debug_notes"`
}

// CoachRequest is the body of POST /api/coach/recommendations.
type CoachRequest struct {
	StoreID  int    `json:"store_id"`
	Type     string `json:"type"`
	BrandID  *int   `json:"brand_id,omitempty"`
	Category string `json:"category,omitempty"`
	Days     int    `json:"days"`
	Persona  string `json:"persona"`
}

// AskCoachRequest is the body of POST /api/coach/ask.
type AskCoachRequest struct {
	StoreID  int    `json:"store_id"`
	Question string `json:"question"`
}

// StoreKPIs are the headline numbers for the store dashboard.
type StoreKPIs struct {
	DailySales      float64 `json:"daily_sales"`
	DailySalesDelta float64 `json:"daily_sales_delta"`
	StockoutRisk    string  `json:"stockout_risk"`
	HotBrand        *string `json:"hot_brand"`
}

// StoreSummaryResponse is the body of GET /api/store/:storeId/summary.
type StoreSummaryResponse struct {
	StoreID int         `json:"store_id"`
	Date    string      `json:"date"`
	KPIs    StoreKPIs   `json:"kpis"`
	Coach   CoachOutput `json:"coach"`
}

// StoreBrandsResponse is the body of GET /api/store/:storeId/brands.
type StoreBrandsResponse struct {
	StoreID int                  `json:"store_id"`
	Brands  []BrandWindowSummary `json:"brands"`
}
