package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lg/fitness-plan-go-api/internal/planner"
)

// prompter asks questions on w and reads answers line by line from r.
// Invalid answers are re-asked; only read errors end the session.
type prompter struct {
	r *bufio.Reader
	w io.Writer
}

func newPrompter(r *bufio.Reader, w io.Writer) *prompter {
	return &prompter{r: r, w: w}
}

// collect walks through the form in the same order as the web form.
func (p *prompter) collect() (planner.PlanRequest, error) {
	var req planner.PlanRequest

	goalLabels := make([]string, len(planner.Goals))
	for i, g := range planner.Goals {
		goalLabels[i] = g.Label()
	}
	i, err := p.choose("Choose Your Fitness Goal", goalLabels)
	if err != nil {
		return req, err
	}
	req.Goal = planner.Goals[i]

	if req.DietaryPreferences, err = p.chooseMany("Select Dietary Preferences (Optional)", planner.DietaryPreferences, 0); err != nil {
		return req, err
	}

	if req.FridgeItems, err = p.ask("Items in Your Fridge (Optional, leave empty if you only want a workout regimen, e.g. eggs, chicken, broccoli)"); err != nil {
		return req, err
	}

	label := fmt.Sprintf("Select Your Preferred Training Style, up to %d (Optional)", planner.MaxTrainingStyles)
	if req.TrainingStyles, err = p.chooseMany(label, planner.TrainingStyles, planner.MaxTrainingStyles); err != nil {
		return req, err
	}

	units := []planner.Units{planner.Imperial, planner.Metric}
	if i, err = p.choose("Choose Your Units", []string{units[0].Label(), units[1].Label()}); err != nil {
		return req, err
	}
	req.Units = units[i]

	heightHint, weightHint := req.Units.InputHints()
	if req.Height, err = p.number(heightHint); err != nil {
		return req, err
	}
	if req.Weight, err = p.number(weightHint); err != nil {
		return req, err
	}
	if req.Age, err = p.integer("Enter Your Age"); err != nil {
		return req, err
	}

	levelLabels := make([]string, len(planner.ActivityLevels))
	for i, lvl := range planner.ActivityLevels {
		levelLabels[i] = lvl.Label
	}
	if i, err = p.choose("Choose Your Activity Level", levelLabels); err != nil {
		return req, err
	}
	req.ActivityLevel = planner.ActivityLevels[i].Key

	return req, nil
}

// ask prints label and returns the trimmed answer. A final line without a
// newline is still accepted.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprintf(p.w, "%s: ", label)
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// choose lists options and returns the index of the picked one.
func (p *prompter) choose(label string, options []string) (int, error) {
	p.list(label, options)
	for {
		answer, err := p.ask("Enter a number")
		if err != nil {
			return 0, err
		}
		picks, err := parseSelection(answer, len(options), 1)
		if err == nil && len(picks) == 1 {
			return picks[0], nil
		}
		fmt.Fprintf(p.w, "Please enter a number between 1 and %d.\n", len(options))
	}
}

// chooseMany lists options and returns the picked values. An empty answer
// picks nothing. max <= 0 means no limit.
func (p *prompter) chooseMany(label string, options []string, max int) ([]string, error) {
	p.list(label, options)
	for {
		answer, err := p.ask("Enter numbers separated by commas, or leave empty")
		if err != nil {
			return nil, err
		}
		picks, err := parseSelection(answer, len(options), max)
		if err != nil {
			fmt.Fprintf(p.w, "%v\n", err)
			continue
		}
		out := make([]string, 0, len(picks))
		for _, i := range picks {
			out = append(out, options[i])
		}
		return out, nil
	}
}

// number re-asks until the answer parses as a non-negative number.
func (p *prompter) number(label string) (float64, error) {
	for {
		answer, err := p.ask(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err == nil && v >= 0 {
			return v, nil
		}
		fmt.Fprintln(p.w, "Please enter a number.")
	}
}

// integer re-asks until the answer parses as a non-negative whole number.
func (p *prompter) integer(label string) (int, error) {
	for {
		answer, err := p.ask(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(answer)
		if err == nil && v >= 0 {
			return v, nil
		}
		fmt.Fprintln(p.w, "Please enter a whole number.")
	}
}

// apiKey returns flagKey when set. Otherwise it asks for a key and falls back
// to envKey on an empty answer.
func (p *prompter) apiKey(flagKey, envKey string) (string, error) {
	if key := strings.TrimSpace(flagKey); key != "" {
		return key, nil
	}
	key, err := p.ask("OpenAI API Key (leave empty to use OPENAI_API_KEY)")
	if err != nil {
		return "", err
	}
	if key == "" {
		return envKey, nil
	}
	return key, nil
}

func (p *prompter) list(label string, options []string) {
	fmt.Fprintf(p.w, "\n%s\n", label)
	for i, opt := range options {
		fmt.Fprintf(p.w, "  %2d. %s\n", i+1, opt)
	}
}

// parseSelection turns "1, 3" into zero-based indexes into n options.
// Duplicates collapse; max <= 0 means no limit.
func parseSelection(input string, n, max int) ([]int, error) {
	var picks []int
	seen := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 1 || num > n {
			return nil, fmt.Errorf("%q is not a number between 1 and %d", part, n)
		}
		if seen[num] {
			continue
		}
		seen[num] = true
		picks = append(picks, num-1)
	}
	if max > 0 && len(picks) > max {
		return nil, fmt.Errorf("pick at most %d", max)
	}
	return picks, nil
}
