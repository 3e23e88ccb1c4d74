package engine

import (
	"math"

	"github.com/achilles921/lifetimegps/internal/catalog"
	"github.com/achilles921/lifetimegps/internal/types"
)

const interestScoreMax = 40

// relevanceBoost weights the career's first-listed interests higher: the
// primary tagged interest says the most about the career.
func relevanceBoost(position int) float64 {
	switch position {
	case 0:
		return 1.5
	case 1:
		return 1.3
	case 2:
		return 1.1
	}
	return 1.0
}

// scoreInterest scores alignment between the user's weighted interests and a
// career's tagged interest set. Direct matches accumulate boosted effective
// weight; when no direct match exists, interests in the same cluster grant
// 50%-weighted partial credit.
func (e *Engine) scoreInterest(career catalog.Career, interests []types.InterestSelection) (float64, []string) {
	userWeight := make(map[int]float64, len(interests))
	userName := make(map[int]string, len(interests))
	for _, sel := range interests {
		id, ok := e.catalog.InterestID(sel.Interest)
		if !ok {
			continue
		}
		weight := clamp(float64(sel.Percentage), 0, 100)
		if weight > userWeight[id] {
			userWeight[id] = weight
			userName[id] = sel.Interest
		}
	}
	if len(userWeight) == 0 {
		return 0, nil
	}

	matchCount := 0
	effectiveWeight := 0.0
	var matches []string

	for pos, id := range career.RelatedInterests {
		weight, ok := userWeight[id]
		if !ok {
			continue
		}
		matchCount++
		countFactor := math.Min(1.4, 1+0.2*float64(matchCount-1))
		effectiveWeight += weight * relevanceBoost(pos) * countFactor
		matches = append(matches, userName[id])
	}

	if matchCount == 0 {
		// Cluster fallback: partial credit for adjacent interests. Each user
		// interest earns credit once, at the best-placed tagged interest it
		// neighbors, so indirect credit can never outgrow a direct match.
		credited := make(map[int]bool)
		for pos, id := range career.RelatedInterests {
			for _, clusterID := range e.catalog.ClusterOf(id) {
				if clusterID == id {
					continue
				}
				weight, ok := userWeight[clusterID]
				if !ok || credited[clusterID] {
					continue
				}
				credited[clusterID] = true
				matchCount++
				effectiveWeight += 0.5 * weight * relevanceBoost(pos)
				matches = append(matches, userName[clusterID])
				break
			}
		}
	}

	if matchCount == 0 {
		return 0, nil
	}

	countFactor := math.Min(1, float64(matchCount)/2.5)
	weightFactor := math.Min(1, effectiveWeight/90)
	// Weight emphasis rises from 65% toward 80% as match count grows.
	emphasis := 0.65 + math.Min(0.15, 0.05*float64(matchCount))
	combined := emphasis*weightFactor + (1-emphasis)*countFactor

	// Exponent below 1 smooths progression at the low end.
	score := math.Round(math.Pow(combined, 0.85) * interestScoreMax)
	return clamp(score, 0, interestScoreMax), matches
}
