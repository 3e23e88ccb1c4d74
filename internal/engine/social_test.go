package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/achilles921/lifetimegps/internal/catalog"
	"github.com/achilles921/lifetimegps/internal/types"
)

func TestScoreSocialEmptyTallies(t *testing.T) {
	ct := newCareerText(catalog.Career{WorkEnvironment: "Busy public storefront"})
	assert.Equal(t, 0.0, scoreSocial(ct, CareerClass{}, map[string]int{}, nil))
}

func TestScoreSocialQualityTiers(t *testing.T) {
	tallies := map[string]int{"extrovert": 3}

	env := scoreSocial(newCareerText(catalog.Career{
		WorkEnvironment: "Customer-facing sales floor",
	}), CareerClass{}, tallies, nil)
	desc := scoreSocial(newCareerText(catalog.Career{
		Description: "Works with the public every day.",
	}), CareerClass{}, tallies, nil)
	skills := scoreSocial(newCareerText(catalog.Career{
		Skills: []string{"Presentation Skills"},
	}), CareerClass{}, tallies, nil)

	assert.Equal(t, 4.0, env)
	assert.InDelta(t, 3.2, desc, 0.001)
	assert.InDelta(t, 2.4, skills, 0.001)
}

func TestScoreSocialTopThreeCutoff(t *testing.T) {
	// Only cautious has a keyword hit, but it ranks fourth of four traits
	// and one trait per dichotomous dimension is already the ceiling.
	ct := newCareerText(catalog.Career{
		WorkEnvironment: "Strict safety compliance on every job",
	})
	tallies := map[string]int{"extrovert": 4, "leader": 3, "supporter": 2, "cautious": 1}

	assert.Equal(t, 0.0, scoreSocial(ct, CareerClass{}, tallies, nil))

	alone := scoreSocial(ct, CareerClass{}, map[string]int{"cautious": 1}, nil)
	assert.InDelta(t, 3.5, alone, 0.001, "the same trait pays out when it ranks in the top three")
}

func TestScoreSocialRankDecay(t *testing.T) {
	ct := newCareerText(catalog.Career{
		WorkEnvironment: "Public-facing service counter led by shift supervisors",
	})

	first := scoreSocial(ct, CareerClass{}, map[string]int{"extrovert": 2}, nil)
	both := scoreSocial(ct, CareerClass{}, map[string]int{"extrovert": 2, "leader": 1}, nil)

	// leader lands at rank 1 with the 0.75 rank weight.
	assert.InDelta(t, first+4.0*0.75, both, 0.001)
}

func TestScoreSocialTradeInference(t *testing.T) {
	ct := newCareerText(catalog.Career{
		Title:       "Tile Setter",
		Description: "Lays tile on residential jobs.",
	})
	tallies := map[string]int{"introvert": 2}

	plain := scoreSocial(ct, CareerClass{}, tallies, nil)
	trade := scoreSocial(ct, CareerClass{IsTrade: true}, tallies, nil)

	assert.Equal(t, 0.0, plain)
	assert.InDelta(t, 2.0, trade, 0.001, "trade-relevant traits earn inferred half credit")
}

func TestScoreSocialLeadershipTitleBonus(t *testing.T) {
	ct := newCareerText(catalog.Career{
		Title:       "Operations Director",
		Description: "Runs the regional office.",
	})

	score := scoreSocial(ct, CareerClass{}, map[string]int{"leader": 1}, nil)
	// "direct" in the title matches the leader keywords at title quality, so
	// the unmatched-title bonus must not stack on top.
	assert.InDelta(t, 4*socialQualityTitle, score, 0.001)
}

func TestScoreSocialMiniGameBonuses(t *testing.T) {
	ct := newCareerText(catalog.Career{
		Description:     "Handles emergency calls under pressure in a fast-paced dispatch room.",
		WorkEnvironment: "High-pressure coordination center",
	})
	tallies := map[string]int{"risk-taker": 2}
	metrics := &types.MiniGameMetrics{
		MultitaskingAbility: 80,
		DecisionSpeed:       90,
		StressResponse:      "low",
	}

	plain := scoreSocial(ct, CareerClass{}, tallies, nil)
	withMetrics := scoreSocial(ct, CareerClass{}, tallies, metrics)

	// fast-paced/coordination +1, emergency/pressure +1, low stress +1.
	assert.InDelta(t, plain+3.0, withMetrics, 0.001)
}

func TestScoreSocialTradeUnmatchedBonusesAndCap(t *testing.T) {
	ct := newCareerText(catalog.Career{Title: "Glazier"})
	tallies := map[string]int{"supporter": 3, "cautious": 2, "extrovert": 1}

	score := scoreSocial(ct, CareerClass{IsTrade: true}, tallies, nil)
	// supporter and cautious both match via trade inference, so the
	// unmatched-trait bonuses stay off; extrovert finds nothing.
	expected := 4*socialQualityTradeInfer + 3.5*socialQualityTradeInfer*0.75
	assert.InDelta(t, expected, score, 0.001)
	assert.LessOrEqual(t, score, float64(socialScoreMax))
}
