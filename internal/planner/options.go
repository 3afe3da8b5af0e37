package planner

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

/* ─── Units ──────────────────────────────────────────────────────────── */

// Units selects how height and weight are interpreted.
type Units string

const (
	Imperial Units = "imperial" // inches / pounds
	Metric   Units = "metric"   // centimeters / kilograms
)

// unitAliases also accepts the form labels shown next to the unit picker.
var unitAliases = map[string]Units{
	"imperial":   Imperial,
	"inches/lbs": Imperial,
	"in/lbs":     Imperial,
	"metric":     Metric,
	"cm/kg":      Metric,
}

// ParseUnits resolves a unit system name or form label. Matching ignores
// case and surrounding whitespace.
func ParseUnits(s string) (Units, bool) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]
	return u, ok
}

// Label returns the form label for the unit system.
func (u Units) Label() string {
	if u == Imperial {
		return "inches/lbs"
	}
	return "cm/kg"
}

// InputHints returns example prompts for the height and weight fields.
func (u Units) InputHints() (height, weight string) {
	if u == Imperial {
		return "Enter Your Height (e.g., 68 inches)", "Enter Your Weight (e.g., 160 lbs)"
	}
	return "Enter Your Height (e.g., 172 cm)", "Enter Your Weight (e.g., 73 kg)"
}

/* ─── Goals ──────────────────────────────────────────────────────────── */

// Goal is the user's fitness goal.
type Goal string

const (
	WeightLoss  Goal = "weight_loss"
	MuscleGain  Goal = "muscle_gain"
	Maintenance Goal = "maintenance"
)

// Goals lists every goal in display order.
var Goals = []Goal{WeightLoss, MuscleGain, Maintenance}

// ParseGoal accepts the canonical key ("weight_loss"), the display label
// ("Weight Loss") or the camel-case name ("WeightLoss").
func ParseGoal(s string) (Goal, bool) {
	key := goalKey(s)
	if key == "" {
		return "", false
	}
	for _, g := range Goals {
		if goalKey(string(g)) == key {
			return g, true
		}
	}
	return "", false
}

func goalKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", " ", "", "-", "").Replace(s)
}

// Label returns the human-readable goal, e.g. "Weight Loss".
func (g Goal) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(g), "_", " "))
}

/* ─── Activity levels ────────────────────────────────────────────────── */

// ActivityLevel is one of the five self-reported exercise frequencies.
type ActivityLevel struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Factor      float64 `json:"factor"`
}

// ActivityLevels is the single source of truth for valid activity levels and
// their TDEE multipliers, in display order.
var ActivityLevels = []ActivityLevel{
	{Key: "sedentary", Description: "little to no exercise", Factor: 1.2},
	{Key: "light", Description: "light exercise/sports 1-3 days/week", Factor: 1.375},
	{Key: "moderate", Description: "moderate exercise/sports 3-5 days/week", Factor: 1.55},
	{Key: "active", Description: "hard exercise/sports 6-7 days a week", Factor: 1.725},
	{Key: "very_active", Description: "very hard exercise/sports & physical job or training twice a day", Factor: 1.9},
}

var activityMultipliers = make(map[string]float64, len(ActivityLevels))

func init() {
	labels := map[string]string{
		"sedentary":   "sedentary",
		"light":       "lightly active",
		"moderate":    "moderately active",
		"active":      "very active",
		"very_active": "super active",
	}
	caser := cases.Title(language.English)
	for i := range ActivityLevels {
		lvl := &ActivityLevels[i]
		lvl.Label = caser.String(labels[lvl.Key]) + " (" + lvl.Description + ")"
		activityMultipliers[lvl.Key] = lvl.Factor
	}
}

// ActivityFactor returns the TDEE multiplier for an activity level key.
func ActivityFactor(key string) (float64, bool) {
	f, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(key))]
	return f, ok
}

/* ─── Preference catalogs ────────────────────────────────────────────── */

// MaxTrainingStyles caps how many trainers can be mixed into one plan.
const MaxTrainingStyles = 3

// DietaryPreferences are the suggested dietary tags.
var DietaryPreferences = []string{
	"Vegan",
	"Keto",
	"Low-Carb",
	"High-Carb",
	"Carb-Cycling",
	"Gluten-Free",
}

// TrainingStyles are the suggested trainers and disciplines.
var TrainingStyles = []string{
	"Arnold Schwarzenegger – Volume Training and Classic Physique",
	"Mike Mentzer – High-Intensity Training (HIT)",
	"Jay Cutler – Balanced Approach with Emphasis on Symmetry",
	"Dorian Yates – HIT with Blood and Guts Training",
	"Frank Zane – Focus on Proportion and Aesthetics",
	"Ronnie Coleman – High Volume and Heavy Lifting",
	"Lee Haney – Stimulate, Don't Annihilate; Emphasis on Recovery",
	"Calisthenics – Bodyweight Training for Strength and Flexibility",
	"Rich Gaspari – Pre-Exhaustion Training with Intensity",
	"Lou Ferrigno – Power Bodybuilding with Heavy Weights",
	"Sergio Oliva – Classic Mass Building with Frequent Training",
	"Larry Scott – Focus on Arms and Shoulders",
	"Tom Platz – High Volume Leg Specialization",
	"Flex Wheeler – Quality over Quantity; Focus on Form",
	"Phil Heath – Scientific Approach with Attention to Detail",
	"Chris Bumstead – Classic Physique with Modern Training",
	"Kai Greene – Mind-Muscle Connection and Artistic Expression",
	"CrossFit – Functional Fitness with Varied High-Intensity Workouts",
	"Powerlifting – Focus on Strength and Power",
	"Yoga – Focus on Flexibility and Mindfulness",
	"Pilates – Focus on Core Strength and Posture",
	"HIIT – High-Intensity Interval Training",
	"Fasted Cardio – Cardio on an Empty Stomach",
	"Kickboxing – Martial Arts and Cardio",
	"Boxing – Martial Arts and Cardio",
	"Muay Thai – Martial Arts and Cardio",
	"Karate – Martial Arts",
	"Taekwondo – Martial Arts",
	"Zumba – Dance Fitness",
}
