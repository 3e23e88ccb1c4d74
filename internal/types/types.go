package types

// InterestSelection is one user-selected interest with its strength.
type InterestSelection struct {
	Interest   string `json:"interest"`
	Percentage int    `json:"percentage"`
}

// MiniGameMetrics holds objective 0-100 ability scores measured by the
// assessment mini-games, plus a few categorical traits.
type MiniGameMetrics struct {
	PatternRecognition  float64 `json:"patternRecognition"`
	DecisionSpeed       float64 `json:"decisionSpeed"`
	SpatialAwareness    float64 `json:"spatialAwareness"`
	MotorControl        float64 `json:"motorControl"`
	AttentionControl    float64 `json:"attentionControl"`
	MultitaskingAbility float64 `json:"multitaskingAbility"`
	ProcessingSpeed     float64 `json:"processingSpeed"`
	VisualProcessing    float64 `json:"visualProcessing"`
	VerbalProcessing    float64 `json:"verbalProcessing"`
	BrainDominance      string  `json:"brainDominance"` // left | right | balanced
	StressResponse      string  `json:"stressResponse"` // low | medium | high
}

// QuizResult is the normalized form of a quiz submission: per-sector trait
// tallies plus the ordered interest list. All tally values are non-negative;
// interest percentages are clamped to [0,100] by the normalizer.
type QuizResult struct {
	WorkStyle         map[string]int      `json:"workStyle"`
	CognitiveStrength map[string]int      `json:"cognitiveStrength"`
	SocialApproach    map[string]int      `json:"socialApproach"`
	Motivation        map[string]int      `json:"motivation"`
	Interests         []InterestSelection `json:"interests"`
	MiniGameMetrics   *MiniGameMetrics    `json:"miniGameMetrics,omitempty"`
}

// ScoreBreakdown carries the per-dimension sub-scores behind a match.
type ScoreBreakdown struct {
	Interest   float64 `json:"interest"`
	WorkStyle  float64 `json:"workStyle"`
	Cognitive  float64 `json:"cognitive"`
	Social     float64 `json:"social"`
	Motivation float64 `json:"motivation"`
	MiniGame   float64 `json:"miniGame"`
}

// CareerMatch is one scored catalog career. Match is recomputed on every
// scoring pass and never persisted as ground truth.
type CareerMatch struct {
	ID          int            `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Match       int            `json:"match"`
	Skills      []string       `json:"skills"`
	ImagePath   string         `json:"imagePath"`
	Salary      string         `json:"salary"`
	Growth      string         `json:"growth"`
	Category    string         `json:"category"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

// RoadmapStep is a single actionable step. Completed always initializes
// false: the roadmap is a template, not a tracked plan.
type RoadmapStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// RoadmapPhase groups ordered steps under one stage of the plan.
type RoadmapPhase struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Steps       []RoadmapStep `json:"steps"`
}

// Roadmap is a phased career plan customized for age group and prior
// experience.
type Roadmap struct {
	CareerPath      string         `json:"careerPath"`
	Timeline        string         `json:"timeline"`
	Investment      string         `json:"investment"`
	Difficulty      string         `json:"difficulty"`
	AgeGroup        string         `json:"ageGroup"`
	PriorExperience string         `json:"priorExperience"`
	Phases          []RoadmapPhase `json:"phases"`
}
