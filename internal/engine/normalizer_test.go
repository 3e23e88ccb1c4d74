package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessQuizResponsesMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "nil input", raw: nil},
		{name: "string input", raw: "not a quiz"},
		{name: "number input", raw: 42.0},
		{name: "list input", raw: []any{"workStyle"}},
		{name: "object with wrong sector shapes", raw: map[string]any{
			"sector1": 7.0,
			"sector2": "knowledge",
			"sector5": map[string]any{"interest": "programming"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ProcessQuizResponses(tt.raw)
			require.NotNil(t, result)
			assert.Empty(t, result.WorkStyle)
			assert.Empty(t, result.CognitiveStrength)
			assert.Empty(t, result.SocialApproach)
			assert.Empty(t, result.Motivation)
			assert.Empty(t, result.Interests)
			assert.Nil(t, result.MiniGameMetrics)
		})
	}
}

func TestProcessQuizResponsesTallies(t *testing.T) {
	raw := map[string]any{
		"sector1": map[string]any{
			"q1": "hands-on",
			"q2": "practical",
			"q3": "HANDS_ON",
			"q4": "team",
			"q5": "unrecognized",
		},
		"sector2": []any{"knowledge", "learning", []any{"skills", "skills"}},
		"sector3": map[string]any{"q1": "risk_taker", "q2": " leader "},
		"sector4": []any{"challenge", "challenges", "mastery"},
	}

	result := ProcessQuizResponses(raw)

	assert.Equal(t, 3, result.WorkStyle["hands-on"], "aliases collapse into one bucket")
	assert.Equal(t, 1, result.WorkStyle["team"])
	assert.NotContains(t, result.WorkStyle, "unrecognized")

	assert.Equal(t, 1, result.CognitiveStrength["knowledge"])
	assert.Equal(t, 1, result.CognitiveStrength["learned"])
	assert.Equal(t, 2, result.CognitiveStrength["skills"])

	assert.Equal(t, 1, result.SocialApproach["risk-taker"])
	assert.Equal(t, 1, result.SocialApproach["leader"])

	assert.Equal(t, 2, result.Motivation["challenges"], "challenge and challenges share a bucket")
	assert.Equal(t, 1, result.Motivation["mastery"])
}

func TestProcessQuizResponsesSectorAliases(t *testing.T) {
	raw := map[string]any{
		"workStyle":  []any{"structured"},
		"cognitive":  []any{"experience"},
		"social":     []any{"introvert"},
		"motivation": []any{"solving"},
		"interests": []any{
			map[string]any{"interest": "Programming", "percentage": 80.0},
		},
	}

	result := ProcessQuizResponses(raw)

	assert.Equal(t, 1, result.WorkStyle["structured"])
	assert.Equal(t, 1, result.CognitiveStrength["experience"])
	assert.Equal(t, 1, result.SocialApproach["introvert"])
	assert.Equal(t, 1, result.Motivation["solving"])
	require.Len(t, result.Interests, 1)
	assert.Equal(t, "Programming", result.Interests[0].Interest)
	assert.Equal(t, 80, result.Interests[0].Percentage)
}

func TestParseInterestsClampsAndSkips(t *testing.T) {
	raw := map[string]any{
		"sector5": []any{
			map[string]any{"interest": "design", "percentage": 250.0},
			map[string]any{"interest": "music", "percentage": -30.0},
			map[string]any{"interest": "art"},
			map[string]any{"percentage": 50.0},
			map[string]any{"interest": "   "},
			"not a record",
		},
	}

	result := ProcessQuizResponses(raw)

	require.Len(t, result.Interests, 3)
	assert.Equal(t, 100, result.Interests[0].Percentage)
	assert.Equal(t, 0, result.Interests[1].Percentage)
	assert.Equal(t, 0, result.Interests[2].Percentage, "missing percentage defaults to zero")
}

func TestMiniGameMetricInjection(t *testing.T) {
	raw := map[string]any{
		"sector2": []any{"knowledge"},
		"miniGameMetrics": map[string]any{
			"patternRecognition": 90.0,
			"decisionSpeed":      50.0,
			"spatialAwareness":   140.0,
			"brainDominance":     " Left ",
			"stressResponse":     "LOW",
		},
	}

	result := ProcessQuizResponses(raw)

	require.NotNil(t, result.MiniGameMetrics)
	assert.Equal(t, 90.0, result.MiniGameMetrics.PatternRecognition)
	assert.Equal(t, 100.0, result.MiniGameMetrics.SpatialAwareness, "metrics clamp to 100")
	assert.Equal(t, "left", result.MiniGameMetrics.BrainDominance)
	assert.Equal(t, "low", result.MiniGameMetrics.StressResponse)

	// round(90*0.7)=63, round(90*0.6)=54, round(50*0.8)=40, round(100*0.75)=75, round(100*0.5)=50
	assert.Equal(t, 63, result.CognitiveStrength["analytical"])
	assert.Equal(t, 54, result.CognitiveStrength["logical"])
	assert.Equal(t, 40, result.CognitiveStrength["decisive"])
	assert.Equal(t, 75, result.CognitiveStrength["visual"])
	assert.Equal(t, 50, result.CognitiveStrength["creative"])
	assert.Equal(t, 1, result.CognitiveStrength["knowledge"], "answered tallies survive injection")
}

func TestMiniGameInjectionTakesMax(t *testing.T) {
	cognitive := map[string]int{"analytical": 99}
	injectMetricScores(cognitive, ProcessQuizResponses(map[string]any{
		"miniGameMetrics": map[string]any{"patternRecognition": 60.0},
	}).MiniGameMetrics)

	assert.Equal(t, 99, cognitive["analytical"], "an existing higher tally is never lowered")
	assert.Equal(t, 36, cognitive["logical"])
}
