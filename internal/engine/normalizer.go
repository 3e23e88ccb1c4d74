package engine

import (
	"math"
	"strings"

	"github.com/achilles921/lifetimegps/internal/types"
)

// Recognized answer vocabularies per sector. Raw answers outside these maps
// are silently ignored; the map value is the canonical trait bucket.
var (
	workStyleVocab = map[string]string{
		"structured":  "structured",
		"flexible":    "flexible",
		"team":        "team",
		"independent": "independent",
		"hands-on":    "hands-on",
		"hands_on":    "hands-on",
		"handson":     "hands-on",
		"practical":   "hands-on",
		"analytical":  "analytical",
		"creative":    "creative",
	}

	cognitiveVocab = map[string]string{
		"knowledge":  "knowledge",
		"skills":     "skills",
		"experience": "experience",
		"learned":    "learned",
		"learning":   "learned",
	}

	socialVocab = map[string]string{
		"extrovert":  "extrovert",
		"introvert":  "introvert",
		"leader":     "leader",
		"supporter":  "supporter",
		"risk-taker": "risk-taker",
		"risk_taker": "risk-taker",
		"risktaker":  "risk-taker",
		"cautious":   "cautious",
	}

	motivationVocab = map[string]string{
		"personal_goals": "personal_goals",
		"helping_others": "helping_others",
		"recognition":    "recognition",
		"challenges":     "challenges",
		"challenge":      "challenges",
		"learning":       "learning",
		"solving":        "solving",
		"helping":        "helping",
		"rewards":        "rewards",
		"accomplishment": "accomplishment",
		"growth":         "growth",
		"mastery":        "mastery",
		"autonomy":       "autonomy",
		"creating":       "creating",
	}
)

// Derived cognitive sub-scores injected from mini-game metrics. Injected
// values combine with existing tallies via max, never additively.
var metricInjections = []struct {
	bucket string
	metric func(*types.MiniGameMetrics) float64
	weight float64
}{
	{"analytical", func(m *types.MiniGameMetrics) float64 { return m.PatternRecognition }, 0.7},
	{"logical", func(m *types.MiniGameMetrics) float64 { return m.PatternRecognition }, 0.6},
	{"decisive", func(m *types.MiniGameMetrics) float64 { return m.DecisionSpeed }, 0.8},
	{"visual", func(m *types.MiniGameMetrics) float64 { return m.SpatialAwareness }, 0.75},
	{"creative", func(m *types.MiniGameMetrics) float64 { return m.SpatialAwareness }, 0.5},
}

// ProcessQuizResponses converts a raw quiz payload into a normalized result.
// Malformed or non-object input never fails: every unrecognized shape
// degrades to empty tallies so downstream scorers always receive a
// well-shaped result.
func ProcessQuizResponses(raw any) *types.QuizResult {
	result := &types.QuizResult{
		WorkStyle:         map[string]int{},
		CognitiveStrength: map[string]int{},
		SocialApproach:    map[string]int{},
		Motivation:        map[string]int{},
		Interests:         []types.InterestSelection{},
	}

	payload, ok := raw.(map[string]any)
	if !ok {
		return result
	}

	tallySector(result.WorkStyle, sectorValue(payload, "sector1", "workStyle"), workStyleVocab)
	tallySector(result.CognitiveStrength, sectorValue(payload, "sector2", "cognitive"), cognitiveVocab)
	tallySector(result.SocialApproach, sectorValue(payload, "sector3", "social"), socialVocab)
	tallySector(result.Motivation, sectorValue(payload, "sector4", "motivation"), motivationVocab)
	result.Interests = parseInterests(sectorValue(payload, "sector5", "interests"))

	if metrics := parseMiniGameMetrics(payload["miniGameMetrics"]); metrics != nil {
		result.MiniGameMetrics = metrics
		injectMetricScores(result.CognitiveStrength, metrics)
	}

	return result
}

func sectorValue(payload map[string]any, keys ...string) any {
	for _, key := range keys {
		if v, ok := payload[key]; ok {
			return v
		}
	}
	return nil
}

// tallySector counts recognized answer tokens into the given tally map. A
// sector may arrive as a question-keyed object or as a bare answer list.
func tallySector(tallies map[string]int, sector any, vocab map[string]string) {
	switch v := sector.(type) {
	case map[string]any:
		for _, answer := range v {
			tallyAnswer(tallies, answer, vocab)
		}
	case []any:
		for _, answer := range v {
			tallyAnswer(tallies, answer, vocab)
		}
	}
}

func tallyAnswer(tallies map[string]int, answer any, vocab map[string]string) {
	switch v := answer.(type) {
	case string:
		if bucket, ok := vocab[strings.ToLower(strings.TrimSpace(v))]; ok {
			tallies[bucket]++
		}
	case []any:
		for _, item := range v {
			tallyAnswer(tallies, item, vocab)
		}
	}
}

func parseInterests(sector any) []types.InterestSelection {
	items, ok := sector.([]any)
	if !ok {
		return []types.InterestSelection{}
	}

	interests := make([]types.InterestSelection, 0, len(items))
	for _, item := range items {
		record, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, ok := record["interest"].(string)
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		pct := int(math.Round(clamp(numberValue(record["percentage"]), 0, 100)))
		interests = append(interests, types.InterestSelection{
			Interest:   strings.TrimSpace(name),
			Percentage: pct,
		})
	}
	return interests
}

func parseMiniGameMetrics(raw any) *types.MiniGameMetrics {
	record, ok := raw.(map[string]any)
	if !ok {
		return nil
	}

	metrics := &types.MiniGameMetrics{
		PatternRecognition:  clamp(numberValue(record["patternRecognition"]), 0, 100),
		DecisionSpeed:       clamp(numberValue(record["decisionSpeed"]), 0, 100),
		SpatialAwareness:    clamp(numberValue(record["spatialAwareness"]), 0, 100),
		MotorControl:        clamp(numberValue(record["motorControl"]), 0, 100),
		AttentionControl:    clamp(numberValue(record["attentionControl"]), 0, 100),
		MultitaskingAbility: clamp(numberValue(record["multitaskingAbility"]), 0, 100),
		ProcessingSpeed:     clamp(numberValue(record["processingSpeed"]), 0, 100),
		VisualProcessing:    clamp(numberValue(record["visualProcessing"]), 0, 100),
		VerbalProcessing:    clamp(numberValue(record["verbalProcessing"]), 0, 100),
	}
	if s, ok := record["brainDominance"].(string); ok {
		metrics.BrainDominance = strings.ToLower(strings.TrimSpace(s))
	}
	if s, ok := record["stressResponse"].(string); ok {
		metrics.StressResponse = strings.ToLower(strings.TrimSpace(s))
	}
	return metrics
}

func injectMetricScores(cognitive map[string]int, metrics *types.MiniGameMetrics) {
	for _, inj := range metricInjections {
		value := inj.metric(metrics)
		if value <= 0 {
			continue
		}
		derived := int(math.Round(value * inj.weight))
		if derived > cognitive[inj.bucket] {
			cognitive[inj.bucket] = derived
		}
	}
}

func numberValue(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}
