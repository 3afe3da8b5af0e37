package main

import (
	"lg/fitness-plan-go-api/internal/media"
	"lg/fitness-plan-go-api/internal/planner"
)

/* ─── Options catalog ────────────────────────────────────────────────── */

// goalOption is one entry of the goal picker.
type goalOption struct {
	Key   planner.Goal `json:"key"`
	Label string       `json:"label"`
}

// unitOption is one entry of the unit picker, with input hints for the
// height and weight fields.
type unitOption struct {
	Key        planner.Units `json:"key"`
	Label      string        `json:"label"`
	HeightHint string        `json:"height_hint"`
	WeightHint string        `json:"weight_hint"`
}

// optionsResponse is the response shape for GET /api/options: everything a
// form needs to render its pickers.
type optionsResponse struct {
	Goals              []goalOption            `json:"goals"`
	Units              []unitOption            `json:"units"`
	ActivityLevels     []planner.ActivityLevel `json:"activity_levels"`
	DietaryPreferences []string                `json:"dietary_preferences"`
	TrainingStyles     []string                `json:"training_styles"`
	MaxTrainingStyles  int                     `json:"max_training_styles"`
}

/* ─── Plan ───────────────────────────────────────────────────────────── */

// planResponse is the response shape for POST /api/plan. Plan is the model's
// text exactly as returned.
type planResponse struct {
	TDEE             float64          `json:"tdee"`
	Estimate         planner.Estimate `json:"estimate"`
	Plan             string           `json:"plan"`
	Videos           []media.Video    `json:"videos"`
	DownloadFilename string           `json:"download_filename"`
}

// downloadPlanRequest is the request body for POST /api/plan/download.
type downloadPlanRequest struct {
	Plan string `json:"plan"`
}

// validationErrorResponse adds per-field detail to the standard error shape.
type validationErrorResponse struct {
	Error  string               `json:"error"`
	Fields []planner.FieldError `json:"fields"`
}
