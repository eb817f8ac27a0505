package scoring

import "math"

// Wellness trend over the evaluated month, derived from the user's GAD-7
// history (earlier vs later average).
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendWorsening = "worsening"
)

// Monthly evaluation weights. These are presentation heuristics tuned by
// the product team; they carry no pedagogical validation and are kept as
// named constants so they read (and change) as policy.
const (
	EvalSkillPointsPer   = 10.0
	EvalSkillCap         = 30.0
	EvalLearningPerHour  = 1.5
	EvalLearningCap      = 25.0
	EvalJobPointsPer     = 3.0
	EvalJobCap           = 15.0
	EvalWellnessImproved = 15.0
	EvalWellnessStable   = 10.0
	EvalWellnessWorse    = 5.0
	EvalTargetWeight     = 15.0
)

// MonthlyActivity are the per-month counts the evaluation is computed from.
type MonthlyActivity struct {
	SkillsAdded     int     `json:"skillsAdded"`
	SkillsImproved  int     `json:"skillsImproved"`
	LearningHours   float64 `json:"learningHours"`
	JobsApplied     int     `json:"jobsApplied"`
	WellnessTrend   string  `json:"wellnessTrend"`
	TargetsSet      int     `json:"targetsSet"`
	TargetsAchieved int     `json:"targetsAchieved"`
}

// Evaluation is the 0-100 composite score with its per-area breakdown.
type Evaluation struct {
	SkillScore    float64 `json:"skillScore"`
	LearningScore float64 `json:"learningScore"`
	JobScore      float64 `json:"jobScore"`
	WellnessScore float64 `json:"wellnessScore"`
	TargetScore   float64 `json:"targetScore"`
	TotalScore    int     `json:"totalScore"`
	Grade         string  `json:"grade"`
}

// EvaluateMonth blends five weighted sub-scores into a single capped
// composite and letter grade.
func EvaluateMonth(a MonthlyActivity) Evaluation {
	e := Evaluation{
		SkillScore:    math.Min(float64(a.SkillsAdded+a.SkillsImproved)*EvalSkillPointsPer, EvalSkillCap),
		LearningScore: math.Min(a.LearningHours*EvalLearningPerHour, EvalLearningCap),
		JobScore:      math.Min(float64(a.JobsApplied)*EvalJobPointsPer, EvalJobCap),
		WellnessScore: wellnessScore(a.WellnessTrend),
	}

	// Guard: no targets set scores zero rather than dividing by zero.
	if a.TargetsSet > 0 {
		e.TargetScore = float64(a.TargetsAchieved) / float64(a.TargetsSet) * EvalTargetWeight
	}

	total := e.SkillScore + e.LearningScore + e.JobScore + e.WellnessScore + e.TargetScore
	e.TotalScore = int(math.Round(math.Min(total, 100)))
	e.Grade = gradeFor(e.TotalScore)
	return e
}

func wellnessScore(trend string) float64 {
	switch trend {
	case TrendImproving:
		return EvalWellnessImproved
	case TrendWorsening:
		return EvalWellnessWorse
	default:
		return EvalWellnessStable
	}
}

func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "S"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	default:
		return "D"
	}
}
