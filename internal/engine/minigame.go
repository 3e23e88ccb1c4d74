package engine

import "github.com/achilles921/lifetimegps/internal/types"

const miniGameScoreMax = 10

// bonusRule awards a proportional bonus when an objectively measured
// ability clears its threshold and the career's skill list contains
// role-relevant keywords. One generic runner evaluates the whole table.
type bonusRule struct {
	name      string
	metric    func(*types.MiniGameMetrics) float64
	threshold float64
	keywords  []string
	maxBonus  float64
}

var bonusRules = []bonusRule{
	{
		name:      "visual processing",
		metric:    func(m *types.MiniGameMetrics) float64 { return m.VisualProcessing },
		threshold: 70,
		keywords:  []string{"visual", "design", "graphic", "illustrat"},
		maxBonus:  3,
	},
	{
		name:      "spatial awareness",
		metric:    func(m *types.MiniGameMetrics) float64 { return m.SpatialAwareness },
		threshold: 70,
		keywords:  []string{"spatial", "cad", "blueprint", "architect", "3d"},
		maxBonus:  3,
	},
	{
		name:      "attention control",
		metric:    func(m *types.MiniGameMetrics) float64 { return m.AttentionControl },
		threshold: 75,
		keywords:  []string{"detail", "precision", "quality", "accura"},
		maxBonus:  2.5,
	},
	{
		name:      "verbal processing",
		metric:    func(m *types.MiniGameMetrics) float64 { return m.VerbalProcessing },
		threshold: 70,
		keywords:  []string{"communication", "writing", "teaching", "listening"},
		maxBonus:  2.5,
	},
	{
		name:      "motor control",
		metric:    func(m *types.MiniGameMetrics) float64 { return m.MotorControl },
		threshold: 70,
		keywords:  []string{"manual", "craft", "repair", "build", "dexterity"},
		maxBonus:  3,
	},
	{
		name:      "pattern recognition",
		metric:    func(m *types.MiniGameMetrics) float64 { return m.PatternRecognition },
		threshold: 75,
		keywords:  []string{"data", "analy", "pattern", "diagnos"},
		maxBonus:  2.5,
	},
	{
		name:      "multitasking",
		metric:    func(m *types.MiniGameMetrics) float64 { return m.MultitaskingAbility },
		threshold: 75,
		keywords:  []string{"coordinat", "manage", "organiz", "planning"},
		maxBonus:  2,
	},
	{
		name:      "processing speed",
		metric:    func(m *types.MiniGameMetrics) float64 { return m.ProcessingSpeed },
		threshold: 80,
		keywords:  []string{"fast", "quick", "time management", "efficien"},
		maxBonus:  2,
	},
	{
		name:      "decision speed",
		metric:    func(m *types.MiniGameMetrics) float64 { return m.DecisionSpeed },
		threshold: 75,
		keywords:  []string{"decision", "emergency", "incident", "response"},
		maxBonus:  2,
	},
}

// scoreMiniGame applies small additive bonuses where measured abilities
// align with a career's skill tags. Rules fire independently; the total is
// capped at 10.
func scoreMiniGame(ct careerText, metrics *types.MiniGameMetrics) float64 {
	if metrics == nil {
		return 0
	}

	total := 0.0
	for _, rule := range bonusRules {
		value := rule.metric(metrics)
		if value <= rule.threshold {
			continue
		}
		if !containsAny(ct.skillsText, rule.keywords) {
			continue
		}
		total += value / 100 * rule.maxBonus
	}

	return clamp(total, 0, miniGameScoreMax)
}
