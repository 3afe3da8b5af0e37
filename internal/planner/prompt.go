package planner

import (
	"fmt"
	"strings"
)

/* ─── Prompt constants ───────────────────────────────────────────────── */

const planSystemPrompt = `You are an extremely detailed AI, knowledgeable in bodybuilding, fitness, and dietetics, and an expert! You only respond ethically.`

const planClosing = `Do not give me any extra info and do not mention any details I have not provided. ` +
	`Give the workout plan on a daily basis along with some things to research if need be. ` +
	`Be extremely detailed and straight to the point, give the diet and exercise plans on a day to day basis.`

// Prompt is the two-message conversation sent to the text-generation service.
type Prompt struct {
	System string
	User   string
}

// BuildPrompt renders the plan prompt for a validated request. Optional
// fields that are empty contribute no sentence at all, so the model never
// sees "no preferences" or an empty fridge.
func BuildPrompt(req PlanRequest, tdee float64) Prompt {
	sb := &strings.Builder{}

	if len(req.DietaryPreferences) > 0 {
		fmt.Fprintf(sb, "My dietary preferences are %s. ", strings.Join(req.DietaryPreferences, ", "))
	}
	if len(req.TrainingStyles) > 0 {
		fmt.Fprintf(sb, "Create the perfect curated plan from %s. ", strings.Join(req.TrainingStyles, "; "))
	} else {
		sb.WriteString("Create the perfect curated plan for me. ")
	}
	if req.FridgeItems != "" {
		fmt.Fprintf(sb, "I have these items in my fridge: %s. Please include a meal plan that uses them. ", req.FridgeItems)
	}
	fmt.Fprintf(sb, "My TDEE is %.0f calories and I am %d years old. ", tdee, req.Age)
	fmt.Fprintf(sb, "My fitness goal is %s. ", req.Goal.Label())
	sb.WriteString("Please give me accurate responses based on my information. ")
	if len(req.TrainingStyles) > 0 {
		sb.WriteString("Respond as the trainers or mix of trainers, explain their philosophy and include quotes from them if there are any. ")
	}
	sb.WriteString(planClosing)

	return Prompt{System: planSystemPrompt, User: sb.String()}
}
