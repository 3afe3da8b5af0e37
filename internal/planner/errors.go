package planner

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingAPIKey means neither a user key nor a configured secret was supplied.
	ErrMissingAPIKey = errors.New("openai api key is not set")
	// ErrEmptyCompletion means the service answered without usable text.
	ErrEmptyCompletion = errors.New("completion has no content")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when required inputs are missing, zero or out
// of range. No estimate is computed and no outbound call is made.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid plan request: " + strings.Join(parts, "; ")
}

// EstimationError guards against an unusable energy expenditure value.
type EstimationError struct {
	Reason string
	TDEE   float64
}

func (e *EstimationError) Error() string {
	return "estimate energy expenditure: " + e.Reason
}

// PlanGenerationError wraps any failure of the text-generation call.
type PlanGenerationError struct {
	Err error
}

func (e *PlanGenerationError) Error() string {
	return fmt.Sprintf("generate plan: %v", e.Err)
}

func (e *PlanGenerationError) Unwrap() error { return e.Err }
