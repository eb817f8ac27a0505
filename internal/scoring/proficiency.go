package scoring

import (
	"errors"
	"fmt"
)

const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
	ProficiencyExpert       = "Expert"
)

var ErrInvalidProficiency = errors.New("invalid proficiency level")

// proficiencyXP is the fixed XP award per declared proficiency level.
var proficiencyXP = map[string]int{
	ProficiencyBeginner:     100,
	ProficiencyIntermediate: 300,
	ProficiencyAdvanced:     600,
	ProficiencyExpert:       1000,
}

// XPForProficiency returns the XP value for a proficiency label.
// Unknown labels are an error rather than a silent zero, so a typo can
// never under- or over-count a user's total.
func XPForProficiency(level string) (int, error) {
	xp, ok := proficiencyXP[level]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidProficiency, level)
	}
	return xp, nil
}

// ValidProficiency reports whether level is one of the four known labels.
func ValidProficiency(level string) bool {
	_, ok := proficiencyXP[level]
	return ok
}
