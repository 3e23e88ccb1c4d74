package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/achilles921/lifetimegps/internal/catalog"
)

func TestScoreWorkStyleEmptyTallies(t *testing.T) {
	ct := newCareerText(catalog.Career{Title: "Welder", WorkStyle: []string{"hands-on"}})
	assert.Equal(t, 0.0, scoreWorkStyle(ct, CareerClass{}, map[string]int{}))
}

func TestScoreWorkStyleConflictPenalty(t *testing.T) {
	aligned := newCareerText(catalog.Career{
		Title:     "Event Planner",
		WorkStyle: []string{"flexible"},
	})
	conflicted := newCareerText(catalog.Career{
		Title:     "Event Planner",
		WorkStyle: []string{"flexible", "structured"},
	})
	tallies := map[string]int{"flexible": 4}

	withConflict := scoreWorkStyle(conflicted, CareerClass{}, tallies)
	without := scoreWorkStyle(aligned, CareerClass{}, tallies)

	assert.Greater(t, without, 0.0)
	assert.Less(t, withConflict, without, "requiring the opposite of the dominant style must cost points")
	assert.InDelta(t, without*(1-conflictPenalties[0]), withConflict, 0.001)
}

func TestScoreWorkStyleQualityTiers(t *testing.T) {
	tallies := map[string]int{"analytical": 3}

	exact := scoreWorkStyle(newCareerText(catalog.Career{
		WorkStyle: []string{"analytical"},
	}), CareerClass{}, tallies)
	environment := scoreWorkStyle(newCareerText(catalog.Career{
		WorkEnvironment: "Lab work with heavy data analysis",
	}), CareerClass{}, tallies)
	description := scoreWorkStyle(newCareerText(catalog.Career{
		Description: "Reviews research output and data daily.",
	}), CareerClass{}, tallies)
	miss := scoreWorkStyle(newCareerText(catalog.Career{
		Description: "Greets guests at the front desk.",
	}), CareerClass{}, tallies)

	assert.Greater(t, exact, environment)
	assert.Greater(t, environment, description)
	assert.Greater(t, description, 0.0)
	assert.Equal(t, 0.0, miss)
}

func TestScoreWorkStyleTradeRelevance(t *testing.T) {
	ct := newCareerText(catalog.Career{WorkStyle: []string{"hands-on"}})
	tallies := map[string]int{"hands-on": 5}

	trade := scoreWorkStyle(ct, CareerClass{IsTrade: true}, tallies)
	plain := scoreWorkStyle(ct, CareerClass{}, tallies)

	// Full trade relevance multiplies the contribution by 1.3.
	assert.InDelta(t, plain*1.3, trade, 0.001)
}

func TestScoreWorkStyleRankDecayAndCap(t *testing.T) {
	ct := newCareerText(catalog.Career{
		WorkStyle: []string{"analytical", "independent", "structured", "hands-on", "creative"},
	})

	// Five styles tallied; only the top four ranked styles contribute.
	tallies := map[string]int{
		"analytical": 5, "independent": 4, "structured": 3, "hands-on": 2, "creative": 1,
	}
	score := scoreWorkStyle(ct, CareerClass{}, tallies)
	assert.Equal(t, float64(workStyleScoreMax), score, "four strong exact matches saturate the cap")

	// A second-ranked style contributes less than the same style ranked first.
	first := scoreWorkStyle(ct, CareerClass{}, map[string]int{"independent": 2})
	second := scoreWorkStyle(ct, CareerClass{}, map[string]int{"analytical": 3, "independent": 2})
	secondOnly := second - first
	assert.Less(t, secondOnly, first)
}
