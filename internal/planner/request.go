package planner

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

const (
	maxHeight = 300
	maxWeight = 500
	maxAge    = 120
)

// PlanRequest is everything collected from the user for one plan. It lives
// for a single interaction and is never stored.
type PlanRequest struct {
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	Age           int     `json:"age"`
	Units         Units   `json:"units"`
	ActivityLevel string  `json:"activity_level"`
	Goal          Goal    `json:"goal"`

	// Optional preferences; empty values are left out of the prompt.
	DietaryPreferences []string `json:"dietary_preferences"`
	TrainingStyles     []string `json:"training_styles"`
	FridgeItems        string   `json:"fridge_items"`

	ageNotWhole bool
}

// UnmarshalJSON accepts age as any JSON number. Whole values such as 30.0
// decode normally; fractional ones are reported by Validate.
func (r *PlanRequest) UnmarshalJSON(data []byte) error {
	type plain PlanRequest
	aux := struct {
		*plain
		Age *float64 `json:"age"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	r.Age, r.ageNotWhole = 0, false
	if aux.Age == nil {
		return nil
	}
	age := *aux.Age
	r.ageNotWhole = age != math.Trunc(age)
	switch {
	case age > maxAge:
		r.Age = maxAge + 1
	case age > 0:
		r.Age = int(age)
	}
	return nil
}

// Validate checks required fields and ranges. On success the request is
// canonicalized in place: unit and goal aliases are resolved, the activity
// key is lower-cased, and blank or duplicate tags are dropped.
// All problems are reported together in a *ValidationError.
func (r *PlanRequest) Validate() error { return r.validate(true) }

// ValidateBiometrics checks only what the Estimator needs (height, weight,
// age, units, activity level) and canonicalizes those fields.
func (r *PlanRequest) ValidateBiometrics() error { return r.validate(false) }

func (r *PlanRequest) validate(withPreferences bool) error {
	var fields []FieldError
	reject := func(field, format string, args ...any) {
		fields = append(fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if r.Height <= 0 {
		reject("height", "is required")
	} else if r.Height > maxHeight {
		reject("height", "must be at most %d", maxHeight)
	}
	if r.Weight <= 0 {
		reject("weight", "is required")
	} else if r.Weight > maxWeight {
		reject("weight", "must be at most %d", maxWeight)
	}
	if r.ageNotWhole {
		reject("age", "must be a whole number")
	} else if r.Age <= 0 {
		reject("age", "is required")
	} else if r.Age > maxAge {
		reject("age", "must be at most %d", maxAge)
	}

	if strings.TrimSpace(r.ActivityLevel) == "" {
		reject("activity_level", "is required")
	} else if _, ok := ActivityFactor(r.ActivityLevel); !ok {
		reject("activity_level", "must be one of: sedentary, light, moderate, active, very_active")
	}

	units, unitsOK := ParseUnits(string(r.Units))
	if !unitsOK {
		reject("units", "must be imperial or metric")
	}

	var goal Goal
	var styles []string
	if withPreferences {
		var ok bool
		if goal, ok = ParseGoal(string(r.Goal)); !ok {
			reject("goal", "must be one of: weight_loss, muscle_gain, maintenance")
		}
		if styles = cleanTags(r.TrainingStyles); len(styles) > MaxTrainingStyles {
			reject("training_styles", "at most %d may be selected", MaxTrainingStyles)
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	r.Units = units
	r.ActivityLevel = strings.ToLower(strings.TrimSpace(r.ActivityLevel))
	if withPreferences {
		r.Goal = goal
		r.DietaryPreferences = cleanTags(r.DietaryPreferences)
		r.TrainingStyles = styles
		r.FridgeItems = strings.TrimSpace(r.FridgeItems)
	}
	return nil
}

// cleanTags trims tags and drops blanks and case-insensitive duplicates,
// keeping the first spelling seen.
func cleanTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
