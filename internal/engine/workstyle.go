package engine

const workStyleScoreMax = 15

// Match-quality tiers by specificity of the hit.
const (
	qualityExactStyle   = 1.0
	qualityExactKeyword = 0.9
	qualityKeywordText  = 0.7
	qualityDescription  = 0.5
)

type workStyleProfile struct {
	keywords       []string
	importance     float64
	tradeRelevance float64
	ventureRel     float64
	opposite       string
}

var workStyleProfiles = map[string]workStyleProfile{
	"structured": {
		keywords:       []string{"structured", "organized", "routine", "systematic", "precise", "schedule", "predictable"},
		importance:     1.0,
		tradeRelevance: 0.8,
		ventureRel:     0.3,
		opposite:       "flexible",
	},
	"flexible": {
		keywords:       []string{"flexible", "adaptable", "dynamic", "varied", "changing", "unpredictable"},
		importance:     0.9,
		tradeRelevance: 0.5,
		ventureRel:     1.0,
		opposite:       "structured",
	},
	"team": {
		keywords:       []string{"team", "collaborative", "group", "supportive", "cooperative"},
		importance:     0.9,
		tradeRelevance: 0.5,
		ventureRel:     0.6,
		opposite:       "independent",
	},
	"independent": {
		keywords:       []string{"independent", "autonomous", "self-directed", "solo", "self-employed"},
		importance:     1.0,
		tradeRelevance: 0.9,
		ventureRel:     1.0,
		opposite:       "team",
	},
	"hands-on": {
		keywords:       []string{"hands-on", "physical", "practical", "manual", "building", "craft", "field"},
		importance:     1.0,
		tradeRelevance: 1.0,
		ventureRel:     0.5,
	},
	"analytical": {
		keywords:       []string{"analytical", "analysis", "logical", "data", "research", "problem"},
		importance:     1.0,
		tradeRelevance: 0.6,
		ventureRel:     0.6,
	},
	"creative": {
		keywords:       []string{"creative", "design", "artistic", "imaginative", "innovative"},
		importance:     0.9,
		tradeRelevance: 0.4,
		ventureRel:     0.9,
	},
}

// Conflict penalty rates for the user's top two styles.
var conflictPenalties = []float64{0.15, 0.08}

// scoreWorkStyle matches the user's ranked work styles against a career,
// with tiered match quality and conflict penalties when the career requires
// the opposite of a dominant style.
func scoreWorkStyle(ct careerText, class CareerClass, tallies map[string]int) float64 {
	ranked := rankTallies(tallies)
	total := 0.0

	for rank, style := range ranked {
		if rank >= 4 {
			break
		}
		prof, ok := workStyleProfiles[style]
		if !ok {
			continue
		}
		quality := styleMatchQuality(style, prof, ct)
		if quality == 0 {
			continue
		}

		rankWeight := 1 - 0.25*float64(rank)
		contribution := 6.0 * prof.importance * quality * rankWeight
		if class.IsTrade {
			contribution *= 0.7 + 0.6*prof.tradeRelevance
		}
		if class.IsEntrepreneurial {
			contribution *= 0.7 + 0.6*prof.ventureRel
		}
		total += contribution
	}

	// Conflict detection: penalties computed against the pre-penalty total
	// so the two rates never compound.
	base := total
	for rank := 0; rank < len(conflictPenalties) && rank < len(ranked); rank++ {
		prof, ok := workStyleProfiles[ranked[rank]]
		if !ok || prof.opposite == "" {
			continue
		}
		if ct.hasStyle(prof.opposite) {
			total -= base * conflictPenalties[rank]
		}
	}

	return clamp(total, 0, workStyleScoreMax)
}

func styleMatchQuality(style string, prof workStyleProfile, ct careerText) float64 {
	if ct.hasStyle(style) {
		return qualityExactStyle
	}
	for _, kw := range prof.keywords {
		for _, skill := range ct.skills {
			if skill == kw {
				return qualityExactKeyword
			}
		}
		for _, s := range ct.styles {
			if s == kw {
				return qualityExactKeyword
			}
		}
	}
	if containsAny(ct.environment+" "+ct.skillsText, prof.keywords) {
		return qualityKeywordText
	}
	if containsAny(ct.description, prof.keywords) {
		return qualityDescription
	}
	return 0
}
