package planner

import (
	"context"
	"strings"
)

// CompletionParams are the fixed generation settings for every plan.
type CompletionParams struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// DefaultCompletionParams mirrors the settings the plans were tuned with.
var DefaultCompletionParams = CompletionParams{
	Model:       "gpt-3.5-turbo",
	Temperature: 0.7,
	MaxTokens:   2000,
}

// Completer is the narrow view of the text-generation service: send one
// system+user conversation, get back the first completion's text.
type Completer interface {
	Complete(ctx context.Context, apiKey string, prompt Prompt, params CompletionParams) (string, error)
}

// Requester turns a request and its estimate into plan text.
type Requester struct {
	completer Completer
	params    CompletionParams
}

// NewRequester returns a Requester. Model and MaxTokens fall back to
// DefaultCompletionParams when unset; Temperature is used as given.
func NewRequester(completer Completer, params CompletionParams) *Requester {
	if params.Model == "" {
		params.Model = DefaultCompletionParams.Model
	}
	if params.MaxTokens <= 0 {
		params.MaxTokens = DefaultCompletionParams.MaxTokens
	}
	return &Requester{completer: completer, params: params}
}

// Params returns the generation settings in use.
func (r *Requester) Params() CompletionParams { return r.params }

// RequestPlan makes exactly one completion call and returns its text
// verbatim. Every failure, including a missing key, comes back as a
// *PlanGenerationError; nothing is retried.
func (r *Requester) RequestPlan(ctx context.Context, apiKey string, req PlanRequest, tdee float64) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", &PlanGenerationError{Err: ErrMissingAPIKey}
	}
	prompt := BuildPrompt(req, tdee)
	text, err := r.completer.Complete(ctx, apiKey, prompt, r.params)
	if err != nil {
		return "", &PlanGenerationError{Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &PlanGenerationError{Err: ErrEmptyCompletion}
	}
	return text, nil
}

// Result is the outcome of one full interaction.
type Result struct {
	Estimate Estimate
	Plan     string
}

// Generate runs the whole flow: validate, estimate, request. Validation
// failures return before any outbound call is made.
func (r *Requester) Generate(ctx context.Context, apiKey string, req *PlanRequest) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	est, err := EstimateFor(*req)
	if err != nil {
		return Result{}, err
	}
	plan, err := r.RequestPlan(ctx, apiKey, *req, est.TDEE)
	if err != nil {
		return Result{}, err
	}
	return Result{Estimate: est, Plan: plan}, nil
}
