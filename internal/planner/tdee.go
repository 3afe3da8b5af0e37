package planner

import "math"

const (
	cmPerInch  = 2.54
	kgPerPound = 0.453592
)

// Estimate is the Estimator's output for one request. Intermediate values are
// kept so callers can show how the TDEE was derived.
type Estimate struct {
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
	BMR      float64 `json:"bmr"`
	TDEE     float64 `json:"tdee"`
}

// ComputeEnergyExpenditure returns total daily energy expenditure in kcal.
// Imperial inputs are inches/pounds, metric inputs centimeters/kilograms.
// Inputs are not validated; zero or negative values yield meaningless output.
func ComputeEnergyExpenditure(height, weight float64, age int, activityFactor float64, units Units) float64 {
	heightCM, weightKG := toMetric(height, weight, units)
	return basalMetabolicRate(heightCM, weightKG, age) * activityFactor
}

// toMetric converts imperial measurements; anything else is already cm/kg.
func toMetric(height, weight float64, units Units) (heightCM, weightKG float64) {
	if units == Imperial {
		return height * cmPerInch, weight * kgPerPound
	}
	return height, weight
}

// basalMetabolicRate is Mifflin-St Jeor with the male constant (+5) applied
// to everyone. The -161 female constant is not used: no sex is collected.
func basalMetabolicRate(heightCM, weightKG float64, age int) float64 {
	return 10*weightKG + 6.25*heightCM - 5*float64(age) + 5
}

// EstimateFor runs the Estimator on a validated request. It returns an
// *EstimationError when the activity level is unknown or the result is not a
// finite positive number.
func EstimateFor(req PlanRequest) (Estimate, error) {
	factor, ok := ActivityFactor(req.ActivityLevel)
	if !ok {
		return Estimate{}, &EstimationError{Reason: "unknown activity level " + req.ActivityLevel}
	}
	heightCM, weightKG := toMetric(req.Height, req.Weight, req.Units)
	bmr := basalMetabolicRate(heightCM, weightKG, req.Age)
	tdee := ComputeEnergyExpenditure(req.Height, req.Weight, req.Age, factor, req.Units)
	if math.IsNaN(tdee) || math.IsInf(tdee, 0) || tdee <= 0 {
		return Estimate{}, &EstimationError{Reason: "energy expenditure is not a positive number", TDEE: tdee}
	}
	return Estimate{HeightCM: heightCM, WeightKG: weightKG, BMR: bmr, TDEE: tdee}, nil
}
