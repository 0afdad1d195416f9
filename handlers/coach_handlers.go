package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/analytics"
	"app/config"
	"app/models"
)

// HandleCoachRecommendations runs the full pipeline for a coach request and
// returns the structured recommendation lists. The body is handed to the
// planner as a loose map so its coercion rules apply (store_id required,
// unknown type falls back to analyze_store).
// POST /api/coach/recommendations
func HandleCoachRecommendations(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	decision, err := deps.Planner.Plan(body)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("Error planning request: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to plan request"})
	}

	result, err := deps.Analyst.Analyze(decision)
	if err != nil {
		log.Printf("Error analyzing store %d: %v", decision.StoreID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to analyze store"})
	}

	persona, _ := body["persona"].(string)
	if persona == "" {
		persona = models.PersonaStoreOwner
	}

	return c.JSON(deps.Coach.Coach(result, persona))
}

// HandleAskCoach answers a free-form question about a store using Gemini,
// grounded on the store's computed KPIs and coach insights.
// POST /api/coach/ask
func HandleAskCoach(c *fiber.Ctx) error {
	var body models.AskCoachRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if body.Question == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Question is required"})
	}

	decision, err := deps.Planner.Plan(map[string]interface{}{
		"type":     models.FlowSevenDayPlan,
		"store_id": body.StoreID,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid store id"})
	}

	result, err := deps.Analyst.Analyze(decision)
	if err != nil {
		log.Printf("Error analyzing store %d: %v", body.StoreID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to analyze store"})
	}

	coachOutput := deps.Coach.Coach(result, models.PersonaStoreOwner)
	kpis := analytics.ComputeStoreKPIs(deps.Ctx, body.StoreID, result.BrandSummary)

	systemInstruction := buildCoachContext(body.StoreID, kpis, coachOutput)

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Coach is currently offline"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro-latest")
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}

	resp, err := model.GenerateContent(ctx, genai.Text(body.Question))
	if err != nil {
		log.Printf("Error generating content: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Coach is currently offline"})
	}

	var answer strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				answer.WriteString(string(text))
			}
		}
	}

	return c.JSON(fiber.Map{"answer": answer.String()})
}

// buildCoachContext renders the computed numbers into the grounding text
// Gemini answers from.
func buildCoachContext(storeID int, kpis models.StoreKPIs, coach models.CoachOutput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert retail consultant for a small neighborhood store.\n\n")
	fmt.Fprintf(&sb, "CURRENT STATUS OF STORE %d:\n", storeID)
	fmt.Fprintf(&sb, "- Daily sales: %.2f (delta vs previous day: %+.3f)\n", kpis.DailySales, kpis.DailySalesDelta)
	fmt.Fprintf(&sb, "- Stockout risk: %s\n", kpis.StockoutRisk)
	if kpis.HotBrand != nil {
		fmt.Fprintf(&sb, "- Hot brand: %s\n", *kpis.HotBrand)
	}
	sb.WriteString("\nRECENT AUTOMATED ALERTS:\n")
	for _, risk := range coach.Risks {
		fmt.Fprintf(&sb, "- %s\n", risk)
	}
	for _, opp := range coach.Opportunities {
		fmt.Fprintf(&sb, "- %s\n", opp)
	}
	sb.WriteString("\nINSTRUCTIONS:\n")
	sb.WriteString("- Answer the user's question using the data above.\n")
	sb.WriteString("- Be specific. If they ask about sales, quote the exact numbers.\n")
	sb.WriteString("- Keep answers short, encouraging, and actionable.\n")
	sb.WriteString("- If a trend is bad, suggest a fix.\n")
	return sb.String()
}
