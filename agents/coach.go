package agents

import (
	"fmt"

	"app/models"
)

// Recommendation templates. Downstream consumers match on this exact text;
// keep byte-for-byte stable.
const (
	riskStockoutTemplate   = "%s (%s) is at risk of stockout: low facings and some days out-of-stock despite demand."
	actionStockoutTemplate = "Increase %s facings and ensure safety stock for the next 7 days, especially on peak days."

	riskVisibilityTemplate   = "%s (%s) has low share of shelf vs other brands in the same category."
	actionVisibilityTemplate = "Rearrange the shelf to give %s more eye-level space or move it closer to the counter."

	oppDemandTemplate    = "%s (%s) shows strong demand and positive sentiment when traffic is high."
	actionDemandTemplate = "Highlight %s with small in-store signage or bundles, especially on weekends and paydays."

	fallbackAction      = "Maintain current assortment and monitor daily sales; no urgent changes detected for the next 7 days."
	fallbackRisk        = "No critical risks detected based on the last observation window."
	fallbackOpportunity = "Look for opportunities to test small promos on top-selling brands during high-traffic days."
)

// Coach turns a scored brand summary into deduplicated, ordered lists of
// risks, opportunities and actions.
type Coach struct {
	ModelName string
}

func NewCoach(modelName string) *Coach {
	return &Coach{ModelName: modelName}
}

// Coach walks the summary rows in order and emits one sentence per fired
// signal. Each output list is deduplicated independently, preserving first
// occurrence, and falls back to a fixed sentence when empty. persona is
// informational only and does not change which rules fire.
func (c *Coach) Coach(result models.AnalyticsResult, persona string) models.CoachOutput {
	var actions, risks, opps []string

	for _, row := range result.BrandSummary {
		brand := row.BrandName
		cat := row.Category

		if row.RiskStockoutScore > 0 {
			risks = append(risks, fmt.Sprintf(riskStockoutTemplate, brand, cat))
			actions = append(actions, fmt.Sprintf(actionStockoutTemplate, brand))
		}
		if row.RiskVisibilityScore > 0 {
			risks = append(risks, fmt.Sprintf(riskVisibilityTemplate, brand, cat))
			actions = append(actions, fmt.Sprintf(actionVisibilityTemplate, brand))
		}
		if row.OppHighDemandScore > 0 {
			opps = append(opps, fmt.Sprintf(oppDemandTemplate, brand, cat))
			actions = append(actions, fmt.Sprintf(actionDemandTemplate, brand))
		}
	}

	actions = dedupeKeepOrder(actions)
	risks = dedupeKeepOrder(risks)
	opps = dedupeKeepOrder(opps)

	if len(actions) == 0 {
		actions = []string{fallbackAction}
	}
	if len(risks) == 0 {
		risks = []string{fallbackRisk}
	}
	if len(opps) == 0 {
		opps = []string{fallbackOpportunity}
	}

	return models.CoachOutput{
		Actions:       actions,
		Risks:         risks,
		Opportunities: opps,
		DebugNotes: map[string]interface{}{
			"num_brands": len(result.BrandSummary),
			"store_id":   result.StoreID,
			"flow":       result.Decision.Flow,
			"persona":    persona,
		},
	}
}

func dedupeKeepOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
