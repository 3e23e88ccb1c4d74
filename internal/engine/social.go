package engine

import "github.com/achilles921/lifetimegps/internal/types"

const socialScoreMax = 10

// Tiered match quality by where the trait keyword is found.
const (
	socialQualityEnvironment = 1.0
	socialQualityDescription = 0.8
	socialQualityTitle       = 0.7
	socialQualitySkills      = 0.6
	socialQualityTradeInfer  = 0.5
)

type socialTrait struct {
	keywords       []string
	tradeRelevance float64
	points         float64
}

// Three dichotomous dimensions, keyed per trait pole.
var socialTraits = map[string]socialTrait{
	"extrovert": {
		keywords:       []string{"people", "customer", "client", "public", "guest", "social", "presentation"},
		tradeRelevance: 0.4,
		points:         4,
	},
	"introvert": {
		keywords:       []string{"independent", "quiet", "focus", "research", "remote", "solo"},
		tradeRelevance: 0.8,
		points:         4,
	},
	"leader": {
		keywords:       []string{"lead", "manage", "direct", "coordinat", "supervis"},
		tradeRelevance: 0.5,
		points:         4,
	},
	"supporter": {
		keywords:       []string{"support", "assist", "help", "care", "service"},
		tradeRelevance: 0.8,
		points:         4,
	},
	"risk-taker": {
		keywords:       []string{"risk", "venture", "startup", "emergency", "pressure", "unpredictable"},
		tradeRelevance: 0.5,
		points:         3.5,
	},
	"cautious": {
		keywords:       []string{"safety", "careful", "precis", "compliance", "procedure", "quality"},
		tradeRelevance: 0.9,
		points:         3.5,
	},
}

var leadershipTitleMarkers = []string{"manager", "director", "lead", "chief", "head"}

// scoreSocial matches the user's ranked social traits against career text
// with tiered quality, adds mini-game conditional bonuses, and applies
// title/trade special cases for traits not already matched.
func scoreSocial(ct careerText, class CareerClass, tallies map[string]int, metrics *types.MiniGameMetrics) float64 {
	ranked := rankTallies(tallies)
	matched := make(map[string]bool, len(ranked))
	total := 0.0

	for rank, trait := range ranked {
		if rank >= 3 {
			break
		}
		prof, ok := socialTraits[trait]
		if !ok {
			continue
		}
		quality := socialMatchQuality(prof, ct)
		if quality == 0 && class.IsTrade && prof.tradeRelevance > 0.7 {
			quality = socialQualityTradeInfer
		}
		if quality == 0 {
			continue
		}
		matched[trait] = true
		total += prof.points * quality * (1 - 0.25*float64(rank))
	}

	if metrics != nil {
		if metrics.MultitaskingAbility > 75 && containsAny(ct.combined, []string{"fast-paced", "dynamic", "coordinat"}) {
			total += 1.0
		}
		if metrics.DecisionSpeed > 80 && containsAny(ct.combined, []string{"emergency", "pressure", "quick"}) {
			total += 1.0
		}
		if metrics.PatternRecognition > 80 && containsAny(ct.combined, []string{"analy", "data", "research"}) {
			total += 0.8
		}
		if metrics.StressResponse == "low" && containsAny(ct.combined, []string{"pressure", "emergency", "demanding"}) {
			total += 1.0
		}
	}

	// Title-based leadership special case.
	if tallies["leader"] > 0 && !matched["leader"] && containsAny(ct.title, leadershipTitleMarkers) {
		total += 2.0
	}

	// Trade careers reward supportive and safety-conscious profiles even
	// when no keyword fired.
	if class.IsTrade {
		if tallies["supporter"] > 0 && !matched["supporter"] {
			total += 1.0
		}
		if tallies["cautious"] > 0 && !matched["cautious"] {
			total += 1.0
		}
	}

	return clamp(total, 0, socialScoreMax)
}

func socialMatchQuality(prof socialTrait, ct careerText) float64 {
	if containsAny(ct.environment, prof.keywords) {
		return socialQualityEnvironment
	}
	if containsAny(ct.description, prof.keywords) {
		return socialQualityDescription
	}
	if containsAny(ct.title, prof.keywords) {
		return socialQualityTitle
	}
	if containsAny(ct.skillsText, prof.keywords) {
		return socialQualitySkills
	}
	return 0
}
