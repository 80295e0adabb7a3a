package mcp

import (
	"context"
	"fmt"
	"math"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpalmer/grit/internal/catalog"
	"github.com/rpalmer/grit/internal/domain/challenge"
	"github.com/rpalmer/grit/internal/domain/profile"
)

type emptyInput struct{}

type listActivitiesInput struct {
	Category string `json:"category,omitempty" jsonschema:"optional category filter"`
}

type listActivitiesOutput struct {
	Activities []catalog.ActivityDefinition `json:"activities"`
}

type submitRatingInput struct {
	Resistance int    `json:"resistance" jsonschema:"resistance score from 1 to 10"`
	Avoidance  string `json:"avoidance" jsonschema:"avoidance frequency: never, sometimes, often or always"`
}

type progressOutput struct {
	Rated     int  `json:"rated"`
	Total     int  `json:"total"`
	Completed bool `json:"completed"`
}

// categoryAverageDTO carries display-rounded averages; the engine keeps
// unrounded values internally for thresholding.
type categoryAverageDTO struct {
	Category   catalog.Category `json:"category"`
	Resistance float64          `json:"resistance"`
	Avoidance  float64          `json:"avoidance"`
	Combined   float64          `json:"combined"`
}

type profileOutput struct {
	Completed        bool                     `json:"completed"`
	RatedActivities  int                      `json:"rated_activities"`
	CategoryAverages []categoryAverageDTO     `json:"category_averages,omitempty"`
	HighResistance   []catalog.Category       `json:"high_resistance_categories,omitempty"`
	FalsePositives   []profile.ActivityRating `json:"false_positives,omitempty"`
}

type generateDailyInput struct {
	Date string `json:"date,omitempty" jsonschema:"calendar date YYYY-MM-DD, defaults to today"`
}

type challengesOutput struct {
	Date       string                `json:"date,omitempty"`
	Challenges []challenge.Challenge `json:"challenges"`
}

type contextualInput struct {
	Energy           string `json:"energy" jsonschema:"energy level: low, medium or high"`
	AvailableMinutes int    `json:"available_minutes" jsonschema:"time budget in minutes"`
	Location         string `json:"location,omitempty" jsonschema:"current location, e.g. home or office"`
}

type contextualOutput struct {
	Suggestions []challenge.Suggestion `json:"suggestions"`
}

type toggleInput struct {
	ID string `json:"id" jsonschema:"challenge id from today's list"`
}

type historyOutput struct {
	Today          []challenge.Challenge                     `json:"today"`
	CompletedCount int                                       `json:"completed_count"`
	AMCCStrength   int                                       `json:"amcc_strength"`
	Decay          map[catalog.Category]challenge.DecayEntry `json:"resistance_decay"`
}

type analyzePatternsInput struct {
	RoutineDates []string `json:"routine_dates,omitempty" jsonschema:"dates (YYYY-MM-DD) on which the morning routine was completed"`
}

// registerTools registers all engine tools on the server.
func registerTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_activities",
		Description: "List the assessment activity catalog, optionally filtered by category",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in listActivitiesInput) (*sdkmcp.CallToolResult, listActivitiesOutput, error) {
		if in.Category == "" {
			return nil, listActivitiesOutput{Activities: catalog.Activities()}, nil
		}
		cat := catalog.Category(in.Category)
		if !cat.Valid() {
			return nil, listActivitiesOutput{}, &APIError{Code: "INVALID_INPUT", Message: fmt.Sprintf("unknown category %q", in.Category)}
		}
		return nil, listActivitiesOutput{Activities: catalog.ByCategory(cat)}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_assessment_progress",
		Description: "Report how many catalog activities have been rated so far",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyInput) (*sdkmcp.CallToolResult, progressOutput, error) {
		prog, err := svcs.Profile.Progress(ctx)
		if err != nil {
			return nil, progressOutput{}, mapError(err)
		}
		return nil, progressOutput{Rated: prog.Rated, Total: prog.Total, Completed: prog.Completed}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "submit_rating",
		Description: "Rate the next unrated catalog activity on resistance (1-10) and avoidance frequency",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in submitRatingInput) (*sdkmcp.CallToolResult, progressOutput, error) {
		prog, err := svcs.Profile.SubmitRating(ctx, in.Resistance, profile.AvoidanceFrequency(in.Avoidance))
		if err != nil {
			return nil, progressOutput{}, mapError(err)
		}
		return nil, progressOutput{Rated: prog.Rated, Total: prog.Total, Completed: prog.Completed}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_resistance_profile",
		Description: "Get the resistance profile: per-category averages, high-resistance categories, and self-report inconsistencies",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyInput) (*sdkmcp.CallToolResult, profileOutput, error) {
		prof, err := svcs.Profile.Get(ctx)
		if err != nil {
			return nil, profileOutput{}, mapError(err)
		}
		out := profileOutput{
			Completed:       prof.Completed,
			RatedActivities: len(prof.Activities),
			HighResistance:  prof.HighResistance,
			FalsePositives:  prof.FalsePositives,
		}
		for _, cat := range catalog.Categories() {
			avg, ok := prof.CategoryAverages[cat]
			if !ok {
				continue
			}
			out.CategoryAverages = append(out.CategoryAverages, categoryAverageDTO{
				Category:   cat,
				Resistance: round1(avg.Resistance),
				Avoidance:  round1(avg.Avoidance),
				Combined:   round2(avg.Combined),
			})
		}
		return nil, out, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "generate_daily_challenges",
		Description: "Generate up to three category-diverse challenges from the high-resistance pool for a date, replacing any prior list for that date",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in generateDailyInput) (*sdkmcp.CallToolResult, challengesOutput, error) {
		date := time.Now()
		if in.Date != "" {
			parsed, err := time.Parse("2006-01-02", in.Date)
			if err != nil {
				return nil, challengesOutput{}, &APIError{Code: "INVALID_INPUT", Message: fmt.Sprintf("bad date %q, want YYYY-MM-DD", in.Date)}
			}
			date = parsed
		}
		challenges, err := svcs.Challenges.GenerateDaily(ctx, date)
		if err != nil {
			return nil, challengesOutput{}, mapError(err)
		}
		return nil, challengesOutput{Date: challenge.DateKey(date), Challenges: challenges}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "suggest_contextual_challenges",
		Description: "Suggest challenges that fit the current energy level, time budget, and location; an empty list means nothing fits",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in contextualInput) (*sdkmcp.CallToolResult, contextualOutput, error) {
		suggestions, err := svcs.Challenges.GenerateContextual(ctx, challenge.EnergyLevel(in.Energy), in.AvailableMinutes, in.Location)
		if err != nil {
			return nil, contextualOutput{}, mapError(err)
		}
		if suggestions == nil {
			suggestions = []challenge.Suggestion{}
		}
		return nil, contextualOutput{Suggestions: suggestions}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "adapt_difficulty",
		Description: "Escalate difficulty for categories whose resistance has decayed well below its original level; adapted challenges append to today's list",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyInput) (*sdkmcp.CallToolResult, challengesOutput, error) {
		adapted, err := svcs.Challenges.AdaptDifficulty(ctx)
		if err != nil {
			return nil, challengesOutput{}, mapError(err)
		}
		if adapted == nil {
			adapted = []challenge.Challenge{}
		}
		return nil, challengesOutput{Challenges: adapted}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_challenge_completion",
		Description: "Toggle completion of a challenge in today's list by id",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in toggleInput) (*sdkmcp.CallToolResult, challenge.Challenge, error) {
		ch, err := svcs.Challenges.ToggleCompletion(ctx, in.ID)
		if err != nil {
			return nil, challenge.Challenge{}, mapError(err)
		}
		return nil, *ch, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_challenge_history",
		Description: "Get today's challenge list, cumulative AMCC strength, and per-category resistance decay",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in emptyInput) (*sdkmcp.CallToolResult, historyOutput, error) {
		hist, err := svcs.Challenges.HistorySnapshot(ctx)
		if err != nil {
			return nil, historyOutput{}, mapError(err)
		}
		today, err := svcs.Challenges.Today(ctx)
		if err != nil {
			return nil, historyOutput{}, mapError(err)
		}
		if today == nil {
			today = []challenge.Challenge{}
		}
		return nil, historyOutput{
			Today:          today,
			CompletedCount: len(hist.Completed),
			AMCCStrength:   hist.AMCCStrength,
			Decay:          hist.Decay,
		}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "analyze_patterns",
		Description: "Mine completion history for weekday and category patterns, false-positive alerts, and routine correlation",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in analyzePatternsInput) (*sdkmcp.CallToolResult, challenge.PatternReport, error) {
		report, err := svcs.Challenges.AnalyzePatterns(ctx, in.RoutineDates)
		if err != nil {
			return nil, challenge.PatternReport{}, mapError(err)
		}
		return nil, *report, nil
	})
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
