package engine

import (
	"strings"

	"github.com/achilles921/lifetimegps/internal/catalog"
	"github.com/achilles921/lifetimegps/internal/types"
)

const cognitiveScoreMax = 15

type metricBoost struct {
	metric    func(*types.MiniGameMetrics) float64
	threshold float64
	ratio     float64
}

type cognitiveCategory struct {
	name          string
	strengths     []string
	skillKeywords []string
	descKeywords  []string
	points        float64
	boosts        []metricBoost
}

// The five fixed cognitive categories. Each category can be claimed at most
// once per career; the first satisfying strength wins.
var cognitiveCategories = []cognitiveCategory{
	{
		name:          "problem-solving",
		strengths:     []string{"skills", "experience", "analytical", "logical", "decisive"},
		skillKeywords: []string{"problem", "coding", "debug", "troubleshoot", "diagnos"},
		descKeywords:  []string{"solve", "problem", "challenge"},
		points:        4,
		boosts: []metricBoost{
			{func(m *types.MiniGameMetrics) float64 { return m.PatternRecognition }, 75, 0.2},
			{func(m *types.MiniGameMetrics) float64 { return m.DecisionSpeed }, 80, 0.15},
		},
	},
	{
		name:          "creativity",
		strengths:     []string{"learned", "creative", "visual"},
		skillKeywords: []string{"creativ", "design", "innovat", "artistic", "illustrat"},
		descKeywords:  []string{"creative", "design", "imagin", "artistic"},
		points:        4,
		boosts: []metricBoost{
			{func(m *types.MiniGameMetrics) float64 { return m.SpatialAwareness }, 75, 0.15},
		},
	},
	{
		name:          "attention-to-detail",
		strengths:     []string{"skills", "knowledge", "decisive"},
		skillKeywords: []string{"detail", "precision", "quality", "accura", "audit"},
		descKeywords:  []string{"precise", "careful", "detail", "precision"},
		points:        4,
		boosts: []metricBoost{
			{func(m *types.MiniGameMetrics) float64 { return m.AttentionControl }, 75, 0.25},
		},
	},
	{
		name:          "spatial-reasoning",
		strengths:     []string{"experience", "visual", "skills"},
		skillKeywords: []string{"spatial", "cad", "blueprint", "3d", "mapping", "drawing"},
		descKeywords:  []string{"spatial", "layout", "physical"},
		points:        4,
		boosts: []metricBoost{
			{func(m *types.MiniGameMetrics) float64 { return m.SpatialAwareness }, 70, 0.25},
			{func(m *types.MiniGameMetrics) float64 { return m.MotorControl }, 80, 0.15},
		},
	},
	{
		name:          "systems-thinking",
		strengths:     []string{"knowledge", "experience", "analytical", "logical"},
		skillKeywords: []string{"system", "process", "architect", "integrat", "analytical"},
		descKeywords:  []string{"system", "process", "organiz"},
		points:        4,
		boosts: []metricBoost{
			{func(m *types.MiniGameMetrics) float64 { return m.PatternRecognition }, 80, 0.2},
		},
	},
}

// scoreCognitive matches the user's ranked cognitive strengths against the
// five fixed categories via skill keywords first, description keywords
// second, then special-case inference rules. Mini-game metrics boost a
// matched category's contribution when thresholds are exceeded.
func scoreCognitive(career catalog.Career, ct careerText, tallies map[string]int, metrics *types.MiniGameMetrics) float64 {
	ranked := rankTallies(tallies)
	claimed := make(map[string]bool, len(cognitiveCategories))
	total := 0.0

	for rank, strength := range ranked {
		if rank >= 4 {
			break
		}
		rankWeight := 1 - 0.2*float64(rank)

		for _, cat := range cognitiveCategories {
			if claimed[cat.name] || !containsToken(cat.strengths, strength) {
				continue
			}
			quality := categoryMatchQuality(cat, strength, career, ct, metrics)
			if quality == 0 {
				continue
			}
			claimed[cat.name] = true

			contribution := cat.points * quality * rankWeight
			if metrics != nil {
				for _, b := range cat.boosts {
					if b.metric(metrics) > b.threshold {
						contribution *= 1 + b.ratio
					}
				}
			}
			total += contribution
		}
	}

	return clamp(total, 0, cognitiveScoreMax)
}

func categoryMatchQuality(cat cognitiveCategory, strength string, career catalog.Career, ct careerText, metrics *types.MiniGameMetrics) float64 {
	if containsAny(ct.skillsText, cat.skillKeywords) {
		return 1.0
	}
	if containsAny(ct.description, cat.descKeywords) {
		return 0.8
	}
	// Broad-knowledge inference: a knowledge-first profile fits careers
	// whose path runs through formal study.
	if strength == "knowledge" && cat.name == "systems-thinking" &&
		strings.Contains(strings.ToLower(career.EducationPath), "degree") {
		return 0.6
	}
	// High measured motor control implies spatial capability even without
	// an explicit keyword hit.
	if cat.name == "spatial-reasoning" && metrics != nil && metrics.MotorControl > 75 &&
		containsAny(ct.skillsText, []string{"manual", "repair", "craft"}) {
		return 0.7
	}
	return 0
}

func containsToken(tokens []string, token string) bool {
	for _, t := range tokens {
		if t == token {
			return true
		}
	}
	return false
}
