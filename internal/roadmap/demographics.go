package roadmap

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/achilles921/lifetimegps/internal/types"
)

// adjustment holds the demographic customization derived from age group and
// prior experience. Flags drive step edits; the methods rewrite the summary
// fields.
type adjustment struct {
	addMentorship    bool
	startFaster      bool
	addRetraining    bool
	skipBasics       bool
	reduceDifficulty bool
	timelineFactor   float64
	addYears         int
}

func demographicAdjustment(ageGroup, priorExperience string) adjustment {
	adj := adjustment{timelineFactor: 1}

	switch ageGroup {
	case "teen":
		adj.addMentorship = true
		adj.addYears = 1
	case "youngAdult":
		adj.startFaster = true
	case "adult":
		adj.addRetraining = true
		adj.timelineFactor = 0.9
	case "midCareer":
		adj.addRetraining = true
		adj.timelineFactor = 0.8
	case "lateCareer":
		adj.addRetraining = true
		adj.startFaster = true
		adj.timelineFactor = 0.7
	}

	switch priorExperience {
	case "intermediate":
		adj.skipBasics = true
	case "advanced", "expert":
		adj.skipBasics = true
		adj.reduceDifficulty = true
	}
	if priorExperience != "" && priorExperience != "none" {
		adj.startFaster = true
	}

	return adj
}

var timelineRange = regexp.MustCompile(`^(\d+)-(\d+) (Years|Months)$`)

// adjustTimeline rewrites a "N-M Years" or "N-M Months" range: teens gain a
// year of runway, older groups compress it. Unparseable timelines pass
// through unchanged.
func (a adjustment) adjustTimeline(timeline string) string {
	m := timelineRange.FindStringSubmatch(timeline)
	if m == nil {
		return timeline
	}

	lo, _ := strconv.Atoi(m[1])
	hi, _ := strconv.Atoi(m[2])
	unit := m[3]

	if a.addYears > 0 && unit == "Years" {
		lo += a.addYears
		hi += a.addYears
	}
	if a.timelineFactor < 1 {
		lo = scaleSpan(lo, a.timelineFactor)
		hi = scaleSpan(hi, a.timelineFactor)
	}
	if hi < lo {
		hi = lo
	}
	return fmt.Sprintf("%d-%d %s", lo, hi, unit)
}

func scaleSpan(n int, factor float64) int {
	scaled := int(math.Round(float64(n) * factor))
	if scaled < 1 {
		return 1
	}
	return scaled
}

// adjustDifficulty drops the difficulty one notch for users who already
// carry substantial experience.
func (a adjustment) adjustDifficulty(difficulty string) string {
	if !a.reduceDifficulty {
		return difficulty
	}
	idx := difficultyIndex(difficulty)
	if idx > 0 {
		idx--
	}
	return difficultyScale[idx]
}

// applyAdjustmentSteps edits the phase steps in place according to the
// demographic flags.
func applyAdjustmentSteps(phases []types.RoadmapPhase, adj adjustment) {
	if len(phases) == 0 {
		return
	}

	if adj.skipBasics {
		replaceStep(phases, "Learn the Basics", types.RoadmapStep{
			Title:       "Refresh and Fill Gaps",
			Description: "Audit what you already know and close only the gaps that remain.",
		})
		replaceStep(phases, "Choose a Specialization", types.RoadmapStep{
			Title:       "Apply Existing Expertise",
			Description: "Map your current expertise onto the field and target the closest specialization.",
		})
	}

	if adj.addMentorship {
		phases[0].Steps = append(phases[0].Steps, types.RoadmapStep{
			Title:       "Find a Mentor",
			Description: "Connect with an experienced professional who can guide your early decisions.",
		})
	}

	if adj.addRetraining {
		phases[0].Steps = append(phases[0].Steps, types.RoadmapStep{
			Title:       "Leverage Transferable Skills",
			Description: "Inventory the skills from your current career that carry over and lead with them.",
		})
	}

	if adj.startFaster {
		last := len(phases) - 1
		phases[last].Steps = append(phases[last].Steps, types.RoadmapStep{
			Title:       "Fast-Track Your Entry",
			Description: "Target accelerated programs and roles that credit your existing experience.",
		})
	}
}

func replaceStep(phases []types.RoadmapPhase, title string, replacement types.RoadmapStep) {
	for i := range phases {
		for j := range phases[i].Steps {
			if strings.EqualFold(phases[i].Steps[j].Title, title) {
				phases[i].Steps[j] = replacement
				return
			}
		}
	}
}
