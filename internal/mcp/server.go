package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpalmer/grit/internal/domain/challenge"
	"github.com/rpalmer/grit/internal/domain/profile"
)

// ProfileService defines assessment operations needed by MCP.
type ProfileService interface {
	SubmitRating(ctx context.Context, resistance int, avoidance profile.AvoidanceFrequency) (*profile.Progress, error)
	Progress(ctx context.Context) (*profile.Progress, error)
	Get(ctx context.Context) (*profile.ResistanceProfile, error)
}

// ChallengeService defines challenge operations needed by MCP.
type ChallengeService interface {
	GenerateDaily(ctx context.Context, date time.Time) ([]challenge.Challenge, error)
	GenerateContextual(ctx context.Context, energy challenge.EnergyLevel, availableMinutes int, location string) ([]challenge.Suggestion, error)
	AdaptDifficulty(ctx context.Context) ([]challenge.Challenge, error)
	ToggleCompletion(ctx context.Context, id string) (*challenge.Challenge, error)
	Today(ctx context.Context) ([]challenge.Challenge, error)
	HistorySnapshot(ctx context.Context) (*challenge.History, error)
	AnalyzePatterns(ctx context.Context, routineDates []string) (*challenge.PatternReport, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Profile    ProfileService
	Challenges ChallengeService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "grit",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}

const serverInstructions = `grit is a resistance-training engine: it profiles which everyday
activities you avoid, then issues small daily challenges from your
highest-resistance categories and tracks how your resistance decays as
you complete them.

Typical flow:
1. submit_rating for every catalog activity (get_assessment_progress
   shows how far along you are; list_activities shows the catalog).
2. Once the profile completes, generate_daily_challenges each morning.
3. toggle_challenge_completion as challenges get done.
4. suggest_contextual_challenges for ad-hoc "I have 20 minutes" moments,
   adapt_difficulty when categories have improved, analyze_patterns for
   behavioral insight.`
