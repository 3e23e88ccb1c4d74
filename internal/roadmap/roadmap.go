package roadmap

import (
	"strings"

	"github.com/achilles921/lifetimegps/internal/catalog"
	"github.com/achilles921/lifetimegps/internal/engine"
	"github.com/achilles921/lifetimegps/internal/types"
)

// Difficulty ordinals from easiest to hardest.
var difficultyScale = []string{"Easy", "Moderate", "Hard", "Very Hard"}

// Generator builds phased career roadmaps from the catalog.
type Generator struct {
	catalog *catalog.Catalog
}

// New creates a generator over a loaded catalog.
func New(cat *catalog.Catalog) *Generator {
	return &Generator{catalog: cat}
}

// Generate produces a phased roadmap for a career title. An unknown title is
// not an error: the user always gets an actionable generic plan. Optional
// quiz results feed mini-game step enrichment; ageGroup and priorExperience
// drive demographic customization.
func (g *Generator) Generate(careerTitle string, quiz *types.QuizResult, ageGroup, priorExperience string) types.Roadmap {
	if ageGroup == "" {
		ageGroup = "teen"
	}
	if priorExperience == "" {
		priorExperience = "none"
	}

	career, ok := g.catalog.CareerByTitle(careerTitle)
	if !ok {
		return genericRoadmap(careerTitle, ageGroup, priorExperience)
	}

	timeline, investment, difficulty := educationProfile(career.EducationPath)
	class := engine.Classify(career)

	phases := buildPhases(career, class)

	adj := demographicAdjustment(ageGroup, priorExperience)
	timeline = adj.adjustTimeline(timeline)
	difficulty = adj.adjustDifficulty(difficulty)
	applyAdjustmentSteps(phases, adj)

	if quiz != nil && quiz.MiniGameMetrics != nil {
		enrichPhases(phases, career, quiz.MiniGameMetrics)
	}

	return types.Roadmap{
		CareerPath:      career.Title,
		Timeline:        timeline,
		Investment:      investment,
		Difficulty:      difficulty,
		AgeGroup:        ageGroup,
		PriorExperience: priorExperience,
		Phases:          phases,
	}
}

// educationProfile maps education-path keywords onto the fixed
// timeline/investment/difficulty scales.
func educationProfile(educationPath string) (timeline, investment, difficulty string) {
	path := strings.ToLower(educationPath)
	switch {
	case strings.Contains(path, "doctoral") || strings.Contains(path, "doctorate") || strings.Contains(path, "phd"):
		return "8-12 Years", "$$$$$", "Very Hard"
	case strings.Contains(path, "master"):
		return "6-7 Years", "$$$$", "Hard"
	case strings.Contains(path, "bachelor"):
		return "4-5 Years", "$$$", "Moderate"
	case strings.Contains(path, "associate"):
		return "2-3 Years", "$$", "Moderate"
	case strings.Contains(path, "apprenticeship") || strings.Contains(path, "trade school"):
		return "2-4 Years", "$$", "Moderate"
	case strings.Contains(path, "bootcamp") || strings.Contains(path, "self-directed") || strings.Contains(path, "self-learning"):
		return "6-18 Months", "$", "Easy"
	}
	return "2-4 Years", "$$$", "Moderate"
}

// genericRoadmap is the fixed fallback for unknown career titles.
func genericRoadmap(careerTitle, ageGroup, priorExperience string) types.Roadmap {
	return types.Roadmap{
		CareerPath:      careerTitle,
		Timeline:        "2-4 Years",
		Investment:      "$$$",
		Difficulty:      "Moderate",
		AgeGroup:        ageGroup,
		PriorExperience: priorExperience,
		Phases: []types.RoadmapPhase{
			{
				Title:       "Foundation",
				Description: "Explore the field and build fundamental knowledge.",
				Steps: []types.RoadmapStep{
					{Title: "Research the Field", Description: "Read about day-to-day work, required skills and typical employers."},
					{Title: "Learn the Basics", Description: "Take introductory courses and build fundamental skills."},
					{Title: "Talk to Professionals", Description: "Reach out to people already working in the field for informational interviews."},
				},
			},
			{
				Title:       "Specialized Development",
				Description: "Develop focused skills and credentials.",
				Steps: []types.RoadmapStep{
					{Title: "Choose a Specialization", Description: "Pick a focus area that matches your strengths and interests."},
					{Title: "Earn Credentials", Description: "Complete relevant education, certification or training programs."},
					{Title: "Build a Portfolio", Description: "Create work samples that demonstrate your skills."},
				},
			},
			{
				Title:       "Launch",
				Description: "Enter the field and establish your career.",
				Steps: []types.RoadmapStep{
					{Title: "Gain Real-World Experience", Description: "Pursue internships, volunteering or entry-level positions."},
					{Title: "Build Your Network", Description: "Attend industry events and connect with professionals."},
					{Title: "Land Your First Role", Description: "Apply for positions and prepare thoroughly for interviews."},
				},
			},
		},
	}
}

func difficultyIndex(difficulty string) int {
	for i, d := range difficultyScale {
		if d == difficulty {
			return i
		}
	}
	return 1
}
