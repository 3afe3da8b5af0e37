package planner

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func validRequest() PlanRequest {
	return PlanRequest{
		Height:        180,
		Weight:        80,
		Age:           25,
		Units:         Metric,
		ActivityLevel: "sedentary",
		Goal:          MuscleGain,
	}
}

// fieldNames collects the rejected field names from a *ValidationError.
func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	var names []string
	for _, f := range vErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestValidate_Valid(t *testing.T) {
	req := validRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestValidate_RejectsMissingRequired(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(r *PlanRequest)
		field string
	}{
		{"zero height", func(r *PlanRequest) { r.Height = 0 }, "height"},
		{"zero weight", func(r *PlanRequest) { r.Weight = 0 }, "weight"},
		{"zero age", func(r *PlanRequest) { r.Age = 0 }, "age"},
		{"negative weight", func(r *PlanRequest) { r.Weight = -3 }, "weight"},
		{"height too tall", func(r *PlanRequest) { r.Height = 301 }, "height"},
		{"weight too heavy", func(r *PlanRequest) { r.Weight = 501 }, "weight"},
		{"age too old", func(r *PlanRequest) { r.Age = 121 }, "age"},
		{"missing activity", func(r *PlanRequest) { r.ActivityLevel = "" }, "activity_level"},
		{"unknown activity", func(r *PlanRequest) { r.ActivityLevel = "extreme" }, "activity_level"},
		{"missing units", func(r *PlanRequest) { r.Units = "" }, "units"},
		{"missing goal", func(r *PlanRequest) { r.Goal = "" }, "goal"},
		{"unknown goal", func(r *PlanRequest) { r.Goal = "bulk_forever" }, "goal"},
		{"four trainers", func(r *PlanRequest) { r.TrainingStyles = []string{"Yoga", "HIIT", "Boxing", "Zumba"} }, "training_styles"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutFn(&req)
			names := fieldNames(t, req.Validate())
			if len(names) != 1 || names[0] != tc.field {
				t.Errorf("rejected fields = %v, want [%s]", names, tc.field)
			}
		})
	}
}

func TestValidate_ReportsAllFields(t *testing.T) {
	req := PlanRequest{}
	names := fieldNames(t, req.Validate())
	want := []string{"height", "weight", "age", "activity_level", "units", "goal"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("rejected fields = %v, want %v", names, want)
	}
}

func TestValidate_Canonicalizes(t *testing.T) {
	req := validRequest()
	req.Units = "inches/lbs"
	req.Goal = "Weight Loss"
	req.ActivityLevel = " Very_Active "
	req.DietaryPreferences = []string{" Vegan ", "", "vegan", "Keto"}
	req.TrainingStyles = []string{"Yoga", " ", "HIIT", "yoga", "Boxing"}
	req.FridgeItems = "  eggs, spinach \n"

	if err := req.Validate(); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if req.Units != Imperial {
		t.Errorf("Units = %q, want imperial", req.Units)
	}
	if req.Goal != WeightLoss {
		t.Errorf("Goal = %q, want weight_loss", req.Goal)
	}
	if req.ActivityLevel != "very_active" {
		t.Errorf("ActivityLevel = %q, want very_active", req.ActivityLevel)
	}
	if !reflect.DeepEqual(req.DietaryPreferences, []string{"Vegan", "Keto"}) {
		t.Errorf("DietaryPreferences = %v", req.DietaryPreferences)
	}
	if !reflect.DeepEqual(req.TrainingStyles, []string{"Yoga", "HIIT", "Boxing"}) {
		t.Errorf("TrainingStyles = %v", req.TrainingStyles)
	}
	if req.FridgeItems != "eggs, spinach" {
		t.Errorf("FridgeItems = %q", req.FridgeItems)
	}
}

func TestParseGoal(t *testing.T) {
	cases := map[string]Goal{
		"weight_loss": WeightLoss,
		"Weight Loss": WeightLoss,
		"WeightLoss":  WeightLoss,
		"muscle-gain": MuscleGain,
		"MAINTENANCE": Maintenance,
	}
	for in, want := range cases {
		got, ok := ParseGoal(in)
		if !ok || got != want {
			t.Errorf("ParseGoal(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := ParseGoal(""); ok {
		t.Error("expected empty goal to be rejected")
	}
}

func TestGoalLabel(t *testing.T) {
	if got := MuscleGain.Label(); got != "Muscle Gain" {
		t.Errorf("Label() = %q, want %q", got, "Muscle Gain")
	}
}

func TestActivityLevelLabels(t *testing.T) {
	if got := ActivityLevels[0].Label; got != "Sedentary (little to no exercise)" {
		t.Errorf("label = %q", got)
	}
	if got := ActivityLevels[4].Label; got != "Super Active (very hard exercise/sports & physical job or training twice a day)" {
		t.Errorf("label = %q", got)
	}
}

func TestValidateBiometrics_IgnoresPreferences(t *testing.T) {
	req := PlanRequest{Height: 70, Weight: 170, Age: 30, Units: "inches/lbs", ActivityLevel: "light"}
	if err := req.ValidateBiometrics(); err != nil {
		t.Fatalf("ValidateBiometrics returned error: %v", err)
	}
	if req.Units != Imperial {
		t.Errorf("Units = %q, want imperial", req.Units)
	}

	req.Age = 0
	names := fieldNames(t, req.ValidateBiometrics())
	if len(names) != 1 || names[0] != "age" {
		t.Errorf("rejected fields = %v, want [age]", names)
	}
}

func TestPlanRequest_DecodesAge(t *testing.T) {
	cases := []struct {
		name    string
		age     string
		want    int
		wantErr string // rejected message for age, empty when valid
	}{
		{"integer", "30", 30, ""},
		{"whole float", "30.0", 30, ""},
		{"fractional", "30.5", 30, "must be a whole number"},
		{"huge", "1e20", maxAge + 1, "must be at most 120"},
		{"negative", "-4", 0, "is required"},
		{"null", "null", 0, "is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := `{"height":180,"weight":80,"age":` + tc.age + `,"units":"metric","activity_level":"light"}`
			var req PlanRequest
			if err := json.Unmarshal([]byte(body), &req); err != nil {
				t.Fatalf("unmarshal returned error: %v", err)
			}
			if req.Age != tc.want {
				t.Errorf("Age = %d, want %d", req.Age, tc.want)
			}
			if req.Height != 180 || req.Units != Metric {
				t.Errorf("other fields not decoded: %+v", req)
			}

			err := req.ValidateBiometrics()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("ValidateBiometrics returned error: %v", err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || len(vErr.Fields) != 1 || vErr.Fields[0].Field != "age" {
				t.Fatalf("expected a single age error, got %v", err)
			}
			if vErr.Fields[0].Message != tc.wantErr {
				t.Errorf("message = %q, want %q", vErr.Fields[0].Message, tc.wantErr)
			}
		})
	}
}
