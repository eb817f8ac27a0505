package scoring

import (
	"errors"
	"fmt"
)

// GAD-7 severity labels. The thresholds below are the house screening
// policy used across the product, not a clinical diagnosis.
const (
	SeverityMinimal  = "minimal"
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)

const (
	// GAD7QuestionCount answers are required, each on a 0-3 Likert scale.
	GAD7QuestionCount = 7

	// GAD7FollowUpThreshold is the score at which the product must surface
	// crisis resources and suggest a counselor follow-up.
	GAD7FollowUpThreshold = 10
)

var (
	ErrIncompleteQuestionnaire = errors.New("all 7 questions must be answered")
	ErrAnswerOutOfRange        = errors.New("answers must be between 0 and 3")
)

// GAD7Result is a scored anxiety questionnaire.
type GAD7Result struct {
	Score         int    `json:"score"` // 0..21
	Severity      string `json:"severity"`
	NeedsFollowUp bool   `json:"needsFollowUp"`
}

// ScoreGAD7 sums exactly seven 0-3 answers into a 0-21 score and buckets
// it. A short or out-of-range answer vector blocks submission; it is never
// zero-filled or averaged.
func ScoreGAD7(answers []int) (GAD7Result, error) {
	if len(answers) != GAD7QuestionCount {
		return GAD7Result{}, fmt.Errorf("%w: got %d", ErrIncompleteQuestionnaire, len(answers))
	}

	total := 0
	for i, a := range answers {
		if a < 0 || a > 3 {
			return GAD7Result{}, fmt.Errorf("%w: question %d = %d", ErrAnswerOutOfRange, i+1, a)
		}
		total += a
	}

	return GAD7Result{
		Score:         total,
		Severity:      gad7Severity(total),
		NeedsFollowUp: total >= GAD7FollowUpThreshold,
	}, nil
}

func gad7Severity(score int) string {
	switch {
	case score <= 4:
		return SeverityMinimal
	case score <= 9:
		return SeverityMild
	case score <= 14:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}
