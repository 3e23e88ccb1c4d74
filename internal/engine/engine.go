package engine

import (
	"math"
	"sort"

	"github.com/achilles921/lifetimegps/internal/catalog"
	"github.com/achilles921/lifetimegps/internal/types"
)

const maxMatches = 5

// Per-dimension thresholds for the well-roundedness boost.
const (
	strongInterest   = 8.0
	strongWorkStyle  = 7.0
	strongCognitive  = 7.0
	strongSocial     = 5.0
	strongMotivation = 8.0
)

// Engine scores quiz results against a fixed career catalog. It holds no
// mutable state: every scoring pass is a pure function of its inputs, so
// concurrent passes need no locking.
type Engine struct {
	catalog *catalog.Catalog
}

// New creates an engine over a loaded catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

type scoredCareer struct {
	career    catalog.Career
	class     CareerClass
	breakdown types.ScoreBreakdown
	match     int
}

// GenerateCareerMatches scores every catalog career against the normalized
// quiz result and selects a diversified top five. Output is sorted by match
// descending and is deterministic for identical inputs.
func (e *Engine) GenerateCareerMatches(result *types.QuizResult) []types.CareerMatch {
	if result == nil {
		result = &types.QuizResult{}
	}

	scored := make([]scoredCareer, 0, len(e.catalog.Careers))
	for _, career := range e.catalog.Careers {
		scored = append(scored, e.scoreCareer(career, result))
	}

	selected := selectMatches(scored, result)

	matches := make([]types.CareerMatch, 0, len(selected))
	for _, sc := range selected {
		matches = append(matches, types.CareerMatch{
			ID:          sc.career.ID,
			Title:       sc.career.Title,
			Description: sc.career.Description,
			Match:       sc.match,
			Skills:      sc.career.Skills,
			ImagePath:   sc.career.ImagePath,
			Salary:      sc.career.Salary,
			Growth:      sc.career.Growth,
			Category:    sc.class.Category,
			Breakdown:   sc.breakdown,
		})
	}
	return matches
}

func (e *Engine) scoreCareer(career catalog.Career, result *types.QuizResult) scoredCareer {
	ct := newCareerText(career)
	class := Classify(career)

	interest, _ := e.scoreInterest(career, result.Interests)
	breakdown := types.ScoreBreakdown{
		Interest:   interest,
		WorkStyle:  scoreWorkStyle(ct, class, result.WorkStyle),
		Cognitive:  scoreCognitive(career, ct, result.CognitiveStrength, result.MiniGameMetrics),
		Social:     scoreSocial(ct, class, result.SocialApproach, result.MiniGameMetrics),
		Motivation: scoreMotivation(career, ct, class, result.Motivation),
		MiniGame:   scoreMiniGame(ct, result.MiniGameMetrics),
	}

	raw := breakdown.Interest + breakdown.WorkStyle + breakdown.Cognitive +
		breakdown.Social + breakdown.Motivation + breakdown.MiniGame

	// Interest amplification: strong interest alignment matters beyond its
	// linear weight.
	if breakdown.Interest > 15 {
		raw += math.Pow(breakdown.Interest/interestScoreMax, 1.2) * 15
	}

	// Well-roundedness boost when at least three dimensions are strong.
	strong := 0
	if breakdown.Interest > strongInterest {
		strong++
	}
	if breakdown.WorkStyle > strongWorkStyle {
		strong++
	}
	if breakdown.Cognitive > strongCognitive {
		strong++
	}
	if breakdown.Social > strongSocial {
		strong++
	}
	if breakdown.Motivation > strongMotivation {
		strong++
	}
	if strong >= 3 {
		raw += 2 * float64(strong)
	}

	return scoredCareer{
		career:    career,
		class:     class,
		breakdown: breakdown,
		match:     rescaleMatch(clamp(raw, 0, 100)),
	}
}

// rescaleMatch applies the three-tier graduated rescaling that spreads out
// otherwise-clustered low scores. Result is always within [5,100].
func rescaleMatch(score float64) int {
	switch {
	case score < 8:
		score = 5 + score*0.6
	case score < 20:
		score = 9 + score*0.7
	default:
		score = math.Max(22, score)
	}
	return int(math.Round(clamp(score, 0, 100)))
}

// handsOnAffinity is the hands-on share of the work-style tally, as a
// percentage. Tallies are counts, so dominance is measured relatively.
func handsOnAffinity(tallies map[string]int) float64 {
	total := 0
	for _, count := range tallies {
		total += count
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(tallies["hands-on"]) / float64(total)
}

// selectMatches picks a diversified top five: best overall, trade inclusion
// for hands-on users, exceptional matches, then best-per-category coverage,
// then highest remaining. Sorting is stable over catalog insertion order.
func selectMatches(scored []scoredCareer, result *types.QuizResult) []scoredCareer {
	if len(scored) == 0 {
		return nil
	}

	sorted := make([]scoredCareer, len(scored))
	copy(sorted, scored)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].match > sorted[j].match
	})

	selected := make([]scoredCareer, 0, maxMatches)
	used := make(map[int]bool, maxMatches)
	usedCategory := make(map[string]bool, maxMatches)
	add := func(sc scoredCareer) {
		selected = append(selected, sc)
		used[sc.career.ID] = true
		usedCategory[sc.class.Category] = true
	}

	// 1. The best overall match is always included.
	add(sorted[0])

	// 2. Hands-on users get the best trade career when it holds up. Only
	// the single best-scoring trade qualifies here; if it is already
	// selected, no runner-up trade takes its slot.
	if handsOnAffinity(result.WorkStyle) > 60 {
		for _, sc := range sorted {
			if !sc.class.IsTrade {
				continue
			}
			if !used[sc.career.ID] && sc.match > 45 {
				add(sc)
			}
			break
		}
	}

	// 3. Exceptional matches above 70%.
	for _, sc := range sorted {
		if len(selected) >= maxMatches {
			break
		}
		if used[sc.career.ID] || sc.match <= 70 {
			continue
		}
		add(sc)
	}

	// 4. Best match from each yet-unrepresented category.
	for _, sc := range sorted {
		if len(selected) >= maxMatches {
			break
		}
		if used[sc.career.ID] || usedCategory[sc.class.Category] {
			continue
		}
		add(sc)
	}

	// 5. Fill any remaining slots by score alone.
	for _, sc := range sorted {
		if len(selected) >= maxMatches {
			break
		}
		if used[sc.career.ID] {
			continue
		}
		add(sc)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].match > selected[j].match
	})
	return selected
}
