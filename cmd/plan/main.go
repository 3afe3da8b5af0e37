// CLI that collects the plan form interactively, prints the TDEE estimate and
// the generated plan with the video list, and saves the plan to
// Personalized_Plan.txt.
// Usage: go run ./cmd/plan [-key sk-...] [-out dir]
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"lg/fitness-plan-go-api/internal/config"
	"lg/fitness-plan-go-api/internal/logging"
	"lg/fitness-plan-go-api/internal/media"
	"lg/fitness-plan-go-api/internal/openai"
	"lg/fitness-plan-go-api/internal/planner"
)

func main() {
	keyFlag := flag.String("key", "", "OpenAI API key (overrides OPENAI_API_KEY)")
	outDir := flag.String("out", ".", "directory to save "+media.PlanFilename+" in")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(cfg.AppEnv, os.Stderr)

	fmt.Println("Welcome to AI-based Personalized Diet and Fitness, your personal guide to achieving the body of your dreams!")
	fmt.Println()

	p := newPrompter(bufio.NewReader(os.Stdin), os.Stdout)
	req, err := p.collect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError reading input: %v\n", err)
		os.Exit(1)
	}

	apiKey, err := p.apiKey(*keyFlag, cfg.OpenAIAPIKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nError reading input: %v\n", err)
		os.Exit(1)
	}

	requester := planner.NewRequester(
		openai.NewClient(openai.Options{BaseURL: cfg.OpenAIBaseURL}),
		cfg.CompletionParams(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PlanTimeout)
	defer cancel()

	fmt.Println("\nGenerating...")
	res, err := requester.Generate(ctx, apiKey, &req)
	if err != nil {
		var vErr *planner.ValidationError
		var estErr *planner.EstimationError
		switch {
		case errors.As(err, &vErr):
			fmt.Fprintln(os.Stderr, "Please fill in all required fields before generating the plan.")
			for _, f := range vErr.Fields {
				fmt.Fprintf(os.Stderr, "  %s %s\n", f.Field, f.Message)
			}
		case errors.As(err, &estErr):
			fmt.Fprintln(os.Stderr, "An error occurred while calculating your plan. Please make sure all inputs are correct.")
		default:
			log.Warn().Err(err).Msg("plan generation failed")
			fmt.Fprintln(os.Stderr, "An error occurred while generating your plan. Please try again later.")
		}
		os.Exit(1)
	}

	fmt.Printf("\nEstimated TDEE: %.0f kcal/day\n\n", res.Estimate.TDEE)
	fmt.Println(res.Plan)

	fmt.Println("\nExercise videos:")
	for _, v := range media.Videos() {
		fmt.Printf("  %s\n", v.URL)
	}

	path := filepath.Join(*outDir, media.PlanFilename)
	if err := os.WriteFile(path, []byte(res.Plan), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving plan: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nPlan saved to %s\n", path)
}
