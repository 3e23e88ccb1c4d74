package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/achilles921/lifetimegps/internal/catalog"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		career          catalog.Career
		trade           bool
		entrepreneurial bool
		category        string
	}{
		{
			name: "explicit category wins",
			career: catalog.Career{
				Title:    "Growth Hacker",
				Category: "Marketing",
			},
			category: "Marketing",
		},
		{
			name: "title keyword fallback",
			career: catalog.Career{
				Title: "Backend Software Architect",
			},
			category: "Technology",
		},
		{
			name: "trade markers in education path",
			career: catalog.Career{
				Title:         "Lineworker",
				EducationPath: "Apprenticeship through the local union",
			},
			trade:    true,
			category: "Other",
		},
		{
			name: "trade markers in description",
			career: catalog.Career{
				Title:       "Solar Installer",
				Description: "A skilled installer career fitting panels on rooftops.",
			},
			trade:    true,
			category: "Other",
		},
		{
			name: "entrepreneurial markers",
			career: catalog.Career{
				Title:       "Startup Founder",
				Description: "Builds a venture from nothing.",
			},
			entrepreneurial: true,
			category:        "Other",
		},
		{
			name: "no signal defaults to Other",
			career: catalog.Career{
				Title: "Beekeeper",
			},
			category: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := Classify(tt.career)
			assert.Equal(t, tt.trade, class.IsTrade)
			assert.Equal(t, tt.entrepreneurial, class.IsEntrepreneurial)
			assert.Equal(t, tt.category, class.Category)
		})
	}
}

func TestClassifyOrderedCategoryRules(t *testing.T) {
	// "Data Engineer" hits both Technology ("data") and Engineering
	// ("engineer"); the earlier rule wins.
	class := Classify(catalog.Career{Title: "Data Engineer"})
	assert.Equal(t, "Technology", class.Category)
}

func TestCareerTextViews(t *testing.T) {
	ct := newCareerText(catalog.Career{
		Title:           "Chef",
		Description:     "Runs the Kitchen",
		WorkEnvironment: "Hot Line",
		Skills:          []string{"Knife Skills", "Plating"},
		WorkStyle:       []string{"Hands-On"},
	})

	assert.Equal(t, "chef", ct.title)
	assert.Equal(t, "knife skills plating", ct.skillsText)
	assert.True(t, ct.hasStyle("hands-on"))
	assert.False(t, ct.hasStyle("analytical"))
	assert.Contains(t, ct.combined, "hot line")
}
