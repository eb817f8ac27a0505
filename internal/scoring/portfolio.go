package scoring

import "math"

// PortfolioCounts summarizes the three collections a portfolio is built
// from. Recomputed whenever any of them changes.
type PortfolioCounts struct {
	Projects           int  `json:"projects"`
	Certificates       int  `json:"certificates"`
	Skills             int  `json:"skills"`
	HasFeaturedProject bool `json:"hasFeaturedProject"`
}

// PortfolioScore combines the counts into a 0-10 strength score:
// projects up to 4 points, certificates up to 3, a skill-breadth bonus
// (2 above five skills, 1 otherwise) and 1 for a featured project.
func PortfolioScore(c PortfolioCounts) int {
	score := math.Min(float64(c.Projects)*1.5, 4)
	score += math.Min(float64(c.Certificates), 3)

	if c.Skills > 5 {
		score += 2
	} else {
		score += 1
	}
	if c.HasFeaturedProject {
		score += 1
	}

	rounded := int(math.Round(score))
	if rounded > 10 {
		return 10
	}
	return rounded
}
