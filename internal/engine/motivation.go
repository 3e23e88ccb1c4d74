package engine

import (
	"math"

	"github.com/achilles921/lifetimegps/internal/catalog"
)

const motivationScoreMax = 20

type motivationProfile struct {
	intrinsic         bool
	importance        float64
	sustainability    float64
	careerFields      []string
	attributeKeywords []string
	tradeRelevance    float64
}

// Motivation knowledge table. Intrinsic drives carry higher sustainability:
// they predict long-term fit better than external rewards.
var motivationProfiles = map[string]motivationProfile{
	"learning": {
		intrinsic:         true,
		importance:        0.9,
		sustainability:    0.95,
		careerFields:      []string{"scientist", "teacher", "researcher"},
		attributeKeywords: []string{"research", "learn", "study", "knowledge", "discover"},
		tradeRelevance:    0.5,
	},
	"solving": {
		intrinsic:         true,
		importance:        1.0,
		sustainability:    0.9,
		careerFields:      []string{"developer", "engineer", "analyst"},
		attributeKeywords: []string{"problem", "solv", "troubleshoot", "diagnos", "analy"},
		tradeRelevance:    0.8,
	},
	"helping": {
		intrinsic:         true,
		importance:        0.9,
		sustainability:    0.95,
		careerFields:      []string{"nurse", "teacher", "counselor", "therapist"},
		attributeKeywords: []string{"help", "care", "support", "patient", "guide"},
		tradeRelevance:    0.5,
	},
	"helping_others": {
		intrinsic:         true,
		importance:        0.9,
		sustainability:    0.95,
		careerFields:      []string{"nurse", "teacher", "counselor", "therapist"},
		attributeKeywords: []string{"help", "care", "support", "patient", "guide"},
		tradeRelevance:    0.5,
	},
	"creating": {
		intrinsic:         true,
		importance:        0.9,
		sustainability:    0.9,
		careerFields:      []string{"designer", "developer", "carpenter", "chef", "writer"},
		attributeKeywords: []string{"create", "build", "design", "craft", "make"},
		tradeRelevance:    0.9,
	},
	"mastery": {
		intrinsic:         true,
		importance:        0.9,
		sustainability:    0.95,
		careerFields:      []string{"electrician", "welder", "engineer", "machinist"},
		attributeKeywords: []string{"skill", "craft", "technique", "precision", "expert"},
		tradeRelevance:    1.0,
	},
	"autonomy": {
		intrinsic:         true,
		importance:        0.8,
		sustainability:    0.9,
		careerFields:      []string{"entrepreneur", "photographer", "electrician"},
		attributeKeywords: []string{"independent", "own", "self", "freedom", "flexible"},
		tradeRelevance:    0.9,
	},
	"growth": {
		intrinsic:         true,
		importance:        0.8,
		sustainability:    0.85,
		attributeKeywords: []string{"grow", "advance", "develop", "opportunity"},
		tradeRelevance:    0.5,
	},
	"personal_goals": {
		intrinsic:         true,
		importance:        0.8,
		sustainability:    0.85,
		attributeKeywords: []string{"goal", "achieve", "ambition"},
		tradeRelevance:    0.5,
	},
	"accomplishment": {
		intrinsic:         true,
		importance:        0.8,
		sustainability:    0.85,
		attributeKeywords: []string{"deliver", "complete", "achieve", "results", "finish"},
		tradeRelevance:    0.8,
	},
	"challenges": {
		intrinsic:         true,
		importance:        0.85,
		sustainability:    0.8,
		attributeKeywords: []string{"challenge", "complex", "demanding", "difficult"},
		tradeRelevance:    0.6,
	},
	"challenge": {
		intrinsic:         true,
		importance:        0.85,
		sustainability:    0.8,
		attributeKeywords: []string{"challenge", "complex", "demanding", "difficult"},
		tradeRelevance:    0.6,
	},
	"recognition": {
		intrinsic:         false,
		importance:        0.7,
		sustainability:    0.6,
		attributeKeywords: []string{"award", "prestige", "recognized", "reputation"},
		tradeRelevance:    0.3,
	},
	"rewards": {
		intrinsic:         false,
		importance:        0.7,
		sustainability:    0.5,
		attributeKeywords: []string{"salary", "bonus", "earn", "compensation"},
		tradeRelevance:    0.4,
	},
}

var tradeMotivations = []string{"mastery", "autonomy", "creating", "accomplishment"}

var ventureMotivations = []string{
	"autonomy", "personal_goals", "accomplishment", "challenges", "challenge",
	"creating", "recognition",
}

// scoreMotivation is the highest-weighted single dimension. Awards stack:
// intrinsic-ratio bonus, salary bonus for reward-driven users, direct field
// matches, attribute keyword matches, growth-data bonus, and trade or
// entrepreneurial special cases, summed then clamped to [0,20].
func scoreMotivation(career catalog.Career, ct careerText, class CareerClass, tallies map[string]int) float64 {
	ranked := rankTallies(tallies)
	if len(ranked) == 0 {
		return 0
	}

	top := ranked
	if len(top) > 5 {
		top = top[:5]
	}

	intrinsicCount := 0
	for _, token := range top {
		if prof, ok := motivationProfiles[token]; ok && prof.intrinsic {
			intrinsicCount++
		}
	}
	total := 4.0 * float64(intrinsicCount) / float64(len(top))

	if tallies["rewards"] > 0 || tallies["recognition"] > 0 {
		if salary := maxSalary(career.Salary); salary > 80000 {
			total += math.Min(6, (salary-80000)/10000)
		}
	}

	for rank, token := range ranked {
		prof, ok := motivationProfiles[token]
		if !ok {
			continue
		}
		// Gentler decay than the other scorers: secondary motivations
		// still matter substantially.
		priority := 1 - 0.15*float64(rank)
		if priority <= 0 {
			break
		}

		if containsAny(ct.titleDesc, prof.careerFields) {
			total += 6 * prof.sustainability * priority
		}

		if matched := countMatches(ct.combined, prof.attributeKeywords); matched > 0 {
			matchFactor := math.Min(1, float64(matched)/2)
			total += 6 * prof.importance * prof.sustainability * priority * matchFactor
		}
	}

	if growth := parseGrowth(career.Growth); growth > 0 {
		if tallies["growth"] > 0 {
			total += math.Min(3, float64(growth)/10)
		} else if tallies["challenges"]+tallies["challenge"]+tallies["accomplishment"] > 0 {
			total += math.Min(2, float64(growth)/15)
		}
	}

	if class.IsTrade {
		aligned := 0.0
		for _, token := range tradeMotivations {
			if tallies[token] > 0 {
				aligned += 1.5
			}
		}
		total += math.Min(6, aligned)
	}

	if class.IsEntrepreneurial {
		aligned := 0.0
		for _, token := range ventureMotivations {
			if tallies[token] > 0 {
				aligned += 1.0
			}
		}
		total += math.Min(5, aligned)
	}

	return clamp(total, 0, motivationScoreMax)
}
