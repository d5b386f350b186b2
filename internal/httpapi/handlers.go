package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/talentlens/talentlens/core"
	"github.com/talentlens/talentlens/internal/contract"
	"github.com/talentlens/talentlens/schema"
)

type apiHandler struct {
	cfg      *contract.Config
	analyzer contract.FeedbackAnalyzer
	store    contract.HistoryStore
}

// notesRequest is the POST /notes payload.
type notesRequest struct {
	Notes     string                  `json:"notes"`
	Candidate schema.CandidateProfile `json:"candidate"`
}

func (h *apiHandler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

func (h *apiHandler) handleDimensions(c *fiber.Ctx) error {
	weights := schema.GetDefaultDimensionWeights()
	for k, v := range h.cfg.CustomWeights {
		weights[k] = v
	}
	return c.JSON(weights)
}

// handleAnalyze handles POST /analyze
func (h *apiHandler) handleAnalyze(c *fiber.Ctx) error {
	var env schema.FeedbackEnvelope

	if err := c.BodyParser(&env); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if env.Feedback.Rating == 0 && env.Feedback.Notes == "" &&
		env.Feedback.Strengths == "" && env.Feedback.Concerns == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "feedback must include a rating or text",
		})
	}

	result, err := h.analyzer.Analyze(c.Context(), &env)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Analysis failed",
		})
	}

	h.persist(result, &env)
	return c.JSON(result)
}

// handleNotes handles POST /notes
func (h *apiHandler) handleNotes(c *fiber.Ctx) error {
	var req notesRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Notes == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "notes is required",
		})
	}

	result, err := h.analyzer.ProcessNotes(c.Context(), req.Notes, req.Candidate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Analysis failed",
		})
	}

	h.persist(result, nil)
	return c.JSON(result)
}

// handleHistory handles GET /history
func (h *apiHandler) handleHistory(c *fiber.Ctx) error {
	if h.store == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "History is not enabled",
		})
	}

	limit := c.QueryInt("limit", contract.DefaultHistoryRows)
	if limit > contract.MaxResultLimit {
		limit = contract.MaxResultLimit
	}

	records, err := h.store.RecentAnalyses(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read history",
		})
	}
	return c.JSON(fiber.Map{
		"count":   len(records),
		"records": records,
	})
}

// handleCandidateHistory handles GET /history/:candidate_id
func (h *apiHandler) handleCandidateHistory(c *fiber.Ctx) error {
	if h.store == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "History is not enabled",
		})
	}

	candidateID := c.Params("candidate_id")
	records, err := h.store.CandidateAnalyses(candidateID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read history",
		})
	}
	return c.JSON(fiber.Map{
		"candidate_id": candidateID,
		"count":        len(records),
		"records":      records,
	})
}

// persist records the analysis in the history store when one is configured.
// Persistence failures never fail the request.
func (h *apiHandler) persist(result *schema.AnalysisResult, env *schema.FeedbackEnvelope) {
	if h.store == nil {
		return
	}
	if err := h.store.SaveAnalysis(core.BuildAnalysisRecord(result, env)); err != nil {
		contract.LogWarn("saving analysis to history", err)
	}
}
