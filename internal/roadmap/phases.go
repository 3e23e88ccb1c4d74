package roadmap

import (
	"fmt"
	"strings"

	"github.com/achilles921/lifetimegps/internal/catalog"
	"github.com/achilles921/lifetimegps/internal/engine"
	"github.com/achilles921/lifetimegps/internal/types"
)

// buildPhases assembles the three-phase plan. Entrepreneurial careers get
// venture-specific steps; everything else follows the education/credential/
// portfolio track.
func buildPhases(career catalog.Career, class engine.CareerClass) []types.RoadmapPhase {
	if class.IsEntrepreneurial {
		return venturePhases(career)
	}
	return standardPhases(career)
}

func standardPhases(career catalog.Career) []types.RoadmapPhase {
	return []types.RoadmapPhase{
		{
			Title:       "Foundation",
			Description: fmt.Sprintf("Build the fundamentals a %s needs.", career.Title),
			Steps: []types.RoadmapStep{
				{Title: "Learn the Basics", Description: fmt.Sprintf("Start on the typical path: %s.", career.EducationPath)},
				{Title: "Build Foundational Skills", Description: fmt.Sprintf("Practice core skills like %s.", firstSkills(career, 2))},
				{Title: "Join Communities", Description: "Find groups, forums and local meetups where practitioners share advice."},
			},
		},
		{
			Title:       "Specialized Development",
			Description: "Deepen your skills and earn the credentials employers expect.",
			Steps: []types.RoadmapStep{
				{Title: "Choose a Specialization", Description: "Pick the niche within the field that best fits your strengths."},
				{Title: "Earn Credentials", Description: fmt.Sprintf("Complete the education or certification employers look for: %s.", career.EducationPath)},
				{Title: "Build a Portfolio", Description: "Assemble projects and work samples that prove your skills."},
			},
		},
		{
			Title:       "Launch",
			Description: "Enter the field and establish yourself.",
			Steps: []types.RoadmapStep{
				{Title: "Gain Real-World Experience", Description: "Pursue internships, apprenticeships or entry-level roles."},
				{Title: "Build Your Network", Description: "Connect with working professionals and potential employers."},
				{Title: "Land Your First Role", Description: fmt.Sprintf("Apply for %s positions and prepare for interviews.", career.Title)},
			},
		},
	}
}

func venturePhases(career catalog.Career) []types.RoadmapPhase {
	return []types.RoadmapPhase{
		{
			Title:       "Foundation",
			Description: "Validate the idea and build business fundamentals.",
			Steps: []types.RoadmapStep{
				{Title: "Validate Your Idea", Description: "Talk to potential customers and confirm the problem is worth solving."},
				{Title: "Write a Business Plan", Description: "Define the market, model and milestones for the venture."},
				{Title: "Learn Core Business Skills", Description: "Study sales, finance basics and marketing fundamentals."},
			},
		},
		{
			Title:       "Specialized Development",
			Description: "Turn the plan into a product and the resources to build it.",
			Steps: []types.RoadmapStep{
				{Title: "Build an MVP", Description: "Ship the smallest product that proves the idea with real users."},
				{Title: "Secure Funding", Description: "Bootstrap, pitch investors or apply for small-business programs."},
				{Title: "Recruit a Founding Team", Description: "Bring in people who cover the skills you lack."},
			},
		},
		{
			Title:       "Launch",
			Description: "Go to market and grow the business.",
			Steps: []types.RoadmapStep{
				{Title: "Launch to Customers", Description: "Release publicly and gather feedback fast."},
				{Title: "Grow and Iterate", Description: "Improve the product from real usage and expand your reach."},
				{Title: "Scale the Business", Description: "Invest in the channels and hires that compound growth."},
			},
		},
	}
}

func firstSkills(career catalog.Career, n int) string {
	if len(career.Skills) == 0 {
		return "the fundamentals of the field"
	}
	if len(career.Skills) < n {
		n = len(career.Skills)
	}
	return strings.Join(career.Skills[:n], " and ")
}

// enrichmentRule appends a step to a phase when a measured ability is
// relevant to the career's skill tags. Rules are ordered by priority; at
// most two steps are inserted per phase.
type enrichmentRule struct {
	applies  func(*types.MiniGameMetrics) bool
	keywords []string
	phase    int
	step     types.RoadmapStep
}

var enrichmentRules = []enrichmentRule{
	{
		applies:  func(m *types.MiniGameMetrics) bool { return m.BrainDominance == "right" },
		keywords: []string{"creativ", "design", "artistic"},
		phase:    0,
		step:     types.RoadmapStep{Title: "Lean Into Creative Strengths", Description: "Your assessments show strong creative instincts; front-load design-heavy projects."},
	},
	{
		applies:  func(m *types.MiniGameMetrics) bool { return m.BrainDominance == "left" },
		keywords: []string{"analy", "data", "problem"},
		phase:    0,
		step:     types.RoadmapStep{Title: "Sharpen Analytical Foundations", Description: "Your assessments show strong analytical instincts; prioritize logic and data coursework."},
	},
	{
		applies:  func(m *types.MiniGameMetrics) bool { return m.SpatialAwareness > 75 },
		keywords: []string{"spatial", "cad", "blueprint", "3d"},
		phase:    1,
		step:     types.RoadmapStep{Title: "Practice Spatial Design Work", Description: "Your spatial scores stand out; take on modeling, drafting or layout projects."},
	},
	{
		applies:  func(m *types.MiniGameMetrics) bool { return m.AttentionControl > 75 },
		keywords: []string{"detail", "precision", "quality"},
		phase:    1,
		step:     types.RoadmapStep{Title: "Take On Precision Projects", Description: "Your focus scores stand out; seek work where accuracy is rewarded."},
	},
	{
		applies:  func(m *types.MiniGameMetrics) bool { return m.PatternRecognition > 75 },
		keywords: []string{"data", "analy", "diagnos"},
		phase:    1,
		step:     types.RoadmapStep{Title: "Study Pattern-Heavy Problems", Description: "Your pattern-recognition scores stand out; practice diagnostic and data problems."},
	},
	{
		applies:  func(m *types.MiniGameMetrics) bool { return m.MotorControl > 75 },
		keywords: []string{"manual", "craft", "repair", "dexterity"},
		phase:    0,
		step:     types.RoadmapStep{Title: "Start Hands-On Practice Early", Description: "Your motor-control scores stand out; get tools in hand as soon as possible."},
	},
	{
		applies:  func(m *types.MiniGameMetrics) bool { return m.MultitaskingAbility > 75 },
		keywords: []string{"coordinat", "manage", "lead", "planning"},
		phase:    2,
		step:     types.RoadmapStep{Title: "Seek Coordination Responsibilities", Description: "Your multitasking scores stand out; volunteer to coordinate projects early."},
	},
	{
		applies:  func(m *types.MiniGameMetrics) bool { return m.ProcessingSpeed > 80 },
		keywords: []string{"fast", "quick", "efficien"},
		phase:    2,
		step:     types.RoadmapStep{Title: "Target Fast-Paced Teams", Description: "Your processing-speed scores stand out; fast-moving environments will suit you."},
	},
}

// enrichPhases appends ability-matched steps, at most two per phase.
func enrichPhases(phases []types.RoadmapPhase, career catalog.Career, metrics *types.MiniGameMetrics) {
	skillsText := strings.ToLower(strings.Join(career.Skills, " "))
	inserted := make(map[int]int, len(phases))

	for _, rule := range enrichmentRules {
		if rule.phase >= len(phases) || inserted[rule.phase] >= 2 {
			continue
		}
		if !rule.applies(metrics) {
			continue
		}
		if !keywordMatch(skillsText, rule.keywords) {
			continue
		}
		phases[rule.phase].Steps = append(phases[rule.phase].Steps, rule.step)
		inserted[rule.phase]++
	}
}

func keywordMatch(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
