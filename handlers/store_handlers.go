package handlers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"app/analytics"
	"app/models"
)

// HandleHealth reports service liveness.
// GET /api/health
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleGetStoreSummary returns headline KPIs plus coach output for one
// store, using the seven day plan flow. A store with no activity yields
// zero KPIs and the fallback coach sentences, not an error.
// GET /api/store/:storeId/summary
func HandleGetStoreSummary(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid store id"})
	}

	decision, err := deps.Planner.Plan(map[string]interface{}{
		"type":     models.FlowSevenDayPlan,
		"store_id": storeID,
		"days":     30,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	result, err := deps.Analyst.Analyze(decision)
	if err != nil {
		log.Printf("Error analyzing store %d: %v", storeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to analyze store"})
	}

	coachOutput := deps.Coach.Coach(result, models.PersonaStoreOwner)
	kpis := analytics.ComputeStoreKPIs(deps.Ctx, storeID, result.BrandSummary)

	return c.JSON(models.StoreSummaryResponse{
		StoreID: storeID,
		Date:    time.Now().Format("2006-01-02"),
		KPIs:    kpis,
		Coach:   coachOutput,
	})
}

// HandleGetStoreBrands returns the scored brand window summary rows for one
// store, for dashboards that want raw KPIs rather than narrative text.
// GET /api/store/:storeId/brands
func HandleGetStoreBrands(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid store id"})
	}

	decision, err := deps.Planner.Plan(map[string]interface{}{
		"type":     models.FlowAnalyzeStore,
		"store_id": storeID,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	result, err := deps.Analyst.Analyze(decision)
	if err != nil {
		log.Printf("Error analyzing store %d: %v", storeID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to analyze store"})
	}

	return c.JSON(models.StoreBrandsResponse{
		StoreID: storeID,
		Brands:  result.BrandSummary,
	})
}
