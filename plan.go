package main

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lg/fitness-plan-go-api/internal/media"
	"lg/fitness-plan-go-api/internal/planner"
)

// openAIKeyHeader lets a user supply their own OpenAI key for one request.
const openAIKeyHeader = "X-OpenAI-Key"

const (
	msgMissingFields   = "Please fill in all required fields before generating the plan."
	msgEstimateFailed  = "An error occurred while calculating your plan. Please make sure all inputs are correct."
	msgGenerateFailed  = "An error occurred while generating your plan. Please try again later."
	msgInvalidJSONBody = "invalid request body"
)

/* ─── Catalog handlers ───────────────────────────────────────────────── */

// getOptions returns the goal, unit, activity and preference catalogs.
// GET /api/options.
func (h *Handler) getOptions(c *gin.Context) {
	resp := optionsResponse{
		ActivityLevels:     planner.ActivityLevels,
		DietaryPreferences: planner.DietaryPreferences,
		TrainingStyles:     planner.TrainingStyles,
		MaxTrainingStyles:  planner.MaxTrainingStyles,
	}
	for _, g := range planner.Goals {
		resp.Goals = append(resp.Goals, goalOption{Key: g, Label: g.Label()})
	}
	for _, u := range []planner.Units{planner.Imperial, planner.Metric} {
		heightHint, weightHint := u.InputHints()
		resp.Units = append(resp.Units, unitOption{Key: u, Label: u.Label(), HeightHint: heightHint, WeightHint: weightHint})
	}
	c.JSON(http.StatusOK, resp)
}

// getVideos returns the fixed instructional video list. GET /api/videos.
func (h *Handler) getVideos(c *gin.Context) {
	c.JSON(http.StatusOK, media.Videos())
}

/* ─── Estimate / plan handlers ───────────────────────────────────────── */

// postTDEE runs the Estimator only. POST /api/tdee.
// Body: { height, weight, age, units, activity_level }.
func (h *Handler) postTDEE(c *gin.Context) {
	var req planner.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, msgInvalidJSONBody)
		return
	}
	if err := req.ValidateBiometrics(); err != nil {
		h.writePlanError(c, err)
		return
	}
	est, err := planner.EstimateFor(req)
	if err != nil {
		h.writePlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// postPlan validates the form, computes TDEE, asks OpenAI for a plan and
// returns it with the video list. POST /api/plan.
// The X-OpenAI-Key header, when present, replaces the configured key.
// The outbound call is bounded by the configured plan timeout.
func (h *Handler) postPlan(c *gin.Context) {
	var req planner.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, msgInvalidJSONBody)
		return
	}

	apiKey := strings.TrimSpace(c.GetHeader(openAIKeyHeader))
	if apiKey == "" {
		apiKey = h.apiKey
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.planTimeout)
	defer cancel()

	res, err := h.requester.Generate(ctx, apiKey, &req)
	if err != nil {
		h.writePlanError(c, err)
		return
	}

	h.log.Info().
		Str("request_id", c.GetString(requestIDKey)).
		Str("goal", string(req.Goal)).
		Float64("tdee", res.Estimate.TDEE).
		Int("plan_chars", len(res.Plan)).
		Msg("plan generated")

	c.JSON(http.StatusOK, planResponse{
		TDEE:             res.Estimate.TDEE,
		Estimate:         res.Estimate,
		Plan:             res.Plan,
		Videos:           media.Videos(),
		DownloadFilename: media.PlanFilename,
	})
}

// downloadPlan returns a plan as a plain-text attachment.
// POST /api/plan/download. Body: { "plan": "..." }.
func (h *Handler) downloadPlan(c *gin.Context) {
	var body downloadPlanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, msgInvalidJSONBody)
		return
	}
	if strings.TrimSpace(body.Plan) == "" {
		apiError(c, http.StatusBadRequest, "plan is required")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+media.PlanFilename+`"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body.Plan))
}

// writePlanError maps planner errors to responses. Users only ever see the
// generic message for generation failures; the cause goes to the log.
func (h *Handler) writePlanError(c *gin.Context, err error) {
	var vErr *planner.ValidationError
	var estErr *planner.EstimationError
	var genErr *planner.PlanGenerationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, validationErrorResponse{Error: msgMissingFields, Fields: vErr.Fields})
	case errors.As(err, &estErr):
		h.log.Warn().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("estimate rejected")
		apiError(c, http.StatusUnprocessableEntity, msgEstimateFailed)
	case errors.As(err, &genErr):
		h.log.Warn().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("plan generation failed")
		apiError(c, http.StatusBadGateway, msgGenerateFailed)
	default:
		h.log.Error().Err(err).Str("request_id", c.GetString(requestIDKey)).Msg("unexpected plan error")
		apiError(c, http.StatusInternalServerError, msgGenerateFailed)
	}
}
