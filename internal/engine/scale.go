package engine

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// rankTallies orders trait names by tally descending. Ties break
// alphabetically so ranking is deterministic across map iterations.
func rankTallies(tallies map[string]int) []string {
	ranked := make([]string, 0, len(tallies))
	for name, count := range tallies {
		if count > 0 {
			ranked = append(ranked, name)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if tallies[ranked[i]] != tallies[ranked[j]] {
			return tallies[ranked[i]] > tallies[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func countMatches(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

var (
	salaryPattern = regexp.MustCompile(`\$([0-9][0-9,]*)`)
	growthPattern = regexp.MustCompile(`\+?(\d+)%`)
)

// maxSalary extracts the highest dollar figure from a salary range string.
// Returns 0 when no figure is present.
func maxSalary(salary string) float64 {
	best := 0.0
	for _, m := range salaryPattern.FindAllStringSubmatch(salary, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		best = math.Max(best, v)
	}
	return best
}

// parseGrowth extracts the +NN% growth figure from a career record.
func parseGrowth(growth string) int {
	m := growthPattern.FindStringSubmatch(growth)
	if m == nil {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return v
}
