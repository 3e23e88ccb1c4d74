package engine

import (
	"strings"

	"github.com/achilles921/lifetimegps/internal/catalog"
)

// CareerClass is the single trade/entrepreneurial/category classification of
// one career, computed once per scoring pass and shared by every sub-scorer.
type CareerClass struct {
	IsTrade           bool
	IsEntrepreneurial bool
	Category          string
}

// careerText bundles the lowercased searchable text of one career so each
// sub-scorer matches against the same precomputed views.
type careerText struct {
	title       string
	description string
	environment string
	skills      []string
	skillsText  string
	styles      []string
	titleDesc   string
	combined    string
}

func newCareerText(c catalog.Career) careerText {
	ct := careerText{
		title:       strings.ToLower(c.Title),
		description: strings.ToLower(c.Description),
		environment: strings.ToLower(c.WorkEnvironment),
	}
	for _, s := range c.Skills {
		ct.skills = append(ct.skills, strings.ToLower(s))
	}
	for _, s := range c.WorkStyle {
		ct.styles = append(ct.styles, strings.ToLower(s))
	}
	ct.skillsText = strings.Join(ct.skills, " ")
	ct.titleDesc = ct.title + " " + ct.description
	ct.combined = ct.titleDesc + " " + ct.environment + " " + ct.skillsText
	return ct
}

func (ct careerText) hasStyle(style string) bool {
	for _, s := range ct.styles {
		if s == style {
			return true
		}
	}
	return false
}

var tradeMarkers = []string{
	"electrician", "plumber", "carpenter", "welder", "hvac", "technician",
	"mechanic", "machinist", "apprenticeship", "trade", "installer",
	"manual dexterity",
}

var ventureMarkers = []string{
	"entrepreneur", "founder", "startup", "business owner", "venture",
	"self-employed",
}

type categoryRule struct {
	category string
	keywords []string
}

// Ordered: the first rule whose keyword appears in the title wins.
var categoryRules = []categoryRule{
	{"Technology", []string{"software", "developer", "programmer", "data", "cyber", "web", "it "}},
	{"Creative", []string{"designer", "artist", "writer", "photographer", "musician", "creative"}},
	{"Engineering", []string{"engineer"}},
	{"Healthcare", []string{"nurse", "doctor", "therapist", "medical", "veterinary", "health"}},
	{"Education", []string{"teacher", "professor", "counselor", "instructor", "tutor"}},
	{"Management", []string{"manager", "director", "executive", "supervisor"}},
	{"Trades", []string{"electrician", "plumber", "carpenter", "welder", "hvac", "mechanic", "technician"}},
	{"Hospitality", []string{"chef", "cook", "hotel", "hospitality", "restaurant"}},
	{"Science", []string{"scientist", "researcher", "biologist", "chemist"}},
	{"Finance", []string{"financial", "accountant", "banker", "analyst"}},
	{"Marketing", []string{"marketing", "sales", "advertising", "brand"}},
}

// Classify derives the trade/entrepreneurial flags and category for a
// career. The catalog category takes precedence when present; title keywords
// decide otherwise.
func Classify(c catalog.Career) CareerClass {
	ct := newCareerText(c)

	class := CareerClass{
		IsTrade:           containsAny(ct.combined+" "+strings.ToLower(c.EducationPath), tradeMarkers),
		IsEntrepreneurial: containsAny(ct.combined, ventureMarkers),
		Category:          c.Category,
	}

	if class.Category == "" {
		class.Category = "Other"
		for _, rule := range categoryRules {
			if containsAny(ct.title, rule.keywords) {
				class.Category = rule.category
				break
			}
		}
	}

	return class
}
