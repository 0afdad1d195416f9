package agents

import (
	"encoding/json"
	"fmt"
	"strconv"

	"app/models"
)

// Planner routes a loosely-typed request map into a validated execution
// plan. Pure; no side effects.
type Planner struct{}

// Plan builds a PlannerDecision from a request map, e.g.
//
//	{"type": "analyze_store", "store_id": 1, "days": 30}
//	{"type": "explain_brand", "store_id": 1, "brand_id": 10}
//	{"type": "seven_day_plan", "store_id": 1, "category": "Beverages"}
//
// store_id is required and coerced to an integer; an unrecognized type falls
// back to analyze_store without error. days defaults to 30 and is otherwise
// accepted as-is.
func (Planner) Plan(query map[string]interface{}) (models.PlannerDecision, error) {
	flow, _ := query["type"].(string)
	if flow != models.FlowAnalyzeStore && flow != models.FlowExplainBrand && flow != models.FlowSevenDayPlan {
		flow = models.FlowAnalyzeStore
	}

	storeID, err := coerceInt(query["store_id"])
	if err != nil {
		return models.PlannerDecision{}, fmt.Errorf("store_id: %w", models.ErrInvalidRequest)
	}

	days := 30
	if raw, ok := query["days"]; ok && raw != nil {
		days, err = coerceInt(raw)
		if err != nil {
			return models.PlannerDecision{}, fmt.Errorf("days: %w", models.ErrInvalidRequest)
		}
	}

	var brandID *int
	if raw, ok := query["brand_id"]; ok && raw != nil {
		id, err := coerceInt(raw)
		if err != nil {
			return models.PlannerDecision{}, fmt.Errorf("brand_id: %w", models.ErrInvalidRequest)
		}
		brandID = &id
	}

	category, _ := query["category"].(string)

	return models.PlannerDecision{
		Flow:      flow,
		StoreID:   storeID,
		BrandID:   brandID,
		Category:  category,
		FocusDays: days,
	}, nil
}

// coerceInt accepts the integer shapes a JSON body or caller map can carry.
func coerceInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		return int(n), err
	case string:
		return strconv.Atoi(v)
	default:
		return 0, fmt.Errorf("not numeric: %v", value)
	}
}
