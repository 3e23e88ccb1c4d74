package monitoring

import (
	"log/slog"
	"os"
	"time"
)

// Logger provides enhanced structured logging with context
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new enhanced logger
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Add timestamp in RFC3339 format
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// ScoringLogger logs one career-matching pass
func (l *Logger) ScoringLogger(runID string, catalogSize, interestCount, matchCount int, topMatch string, duration time.Duration) {
	l.Info("Scoring Completed",
		"run_id", runID,
		"catalog_size", catalogSize,
		"interest_count", interestCount,
		"match_count", matchCount,
		"top_match", topMatch,
		"duration_ms", duration.Milliseconds(),
	)
}

// RoadmapLogger logs roadmap generation details
func (l *Logger) RoadmapLogger(career, ageGroup, priorExperience string, fallback bool, phaseCount int) {
	l.Info("Roadmap Generated",
		"career", career,
		"age_group", ageGroup,
		"prior_experience", priorExperience,
		"fallback", fallback,
		"phase_count", phaseCount,
	)
}

// CatalogLogger logs catalog load details
func (l *Logger) CatalogLogger(source string, careers, interests int, duration time.Duration) {
	l.Info("Catalog Loaded",
		"source", source,
		"careers", careers,
		"interests", interests,
		"duration_ms", duration.Milliseconds(),
	)
}

// NormalizeLogger logs a normalization pass over a raw quiz payload
func (l *Logger) NormalizeLogger(runID string, sectors int, interestCount int, hasMiniGame bool) {
	l.Debug("Responses Normalized",
		"run_id", runID,
		"sectors", sectors,
		"interest_count", interestCount,
		"mini_game_metrics", hasMiniGame,
	)
}

// SystemLogger logs system-level events
func (l *Logger) SystemLogger(event, details string) {
	l.Info("System Event",
		"event", event,
		"details", details,
		"uptime", time.Since(startTime).String(),
	)
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level slog.Level) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	l.Logger = slog.New(handler)
}

var startTime = time.Now()
