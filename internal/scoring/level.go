package scoring

import (
	"fmt"
	"math"
)

// LevelTier is one rank in the progression ladder. MinXP is inclusive,
// MaxXP exclusive; the ranges are contiguous and cover [0, ∞).
type LevelTier struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	MinXP int    `json:"minXP"`
	MaxXP int    `json:"maxXP"` // math.MaxInt for the open-ended top tier
}

// tiers must stay ascending and contiguous; ResolveLevel depends on it.
var tiers = []LevelTier{
	{Level: 1, Name: "Newcomer", MinXP: 0, MaxXP: 500},
	{Level: 2, Name: "Explorer", MinXP: 500, MaxXP: 1500},
	{Level: 3, Name: "Achiever", MinXP: 1500, MaxXP: 3500},
	{Level: 4, Name: "Specialist", MinXP: 3500, MaxXP: 7000},
	{Level: 5, Name: "Professional", MinXP: 7000, MaxXP: 12000},
	{Level: 6, Name: "Master", MinXP: 12000, MaxXP: 20000},
	{Level: 7, Name: "Grandmaster", MinXP: 20000, MaxXP: 35000},
	{Level: 8, Name: "Legend", MinXP: 35000, MaxXP: math.MaxInt},
}

// LevelInfo is the resolved rank for a cumulative XP total.
type LevelInfo struct {
	Tier                LevelTier `json:"tier"`
	TotalXP             int       `json:"totalXP"`
	ProgressToNextLevel float64   `json:"progressToNextLevel"` // 0..100, 100 at the top tier
	NextLevelXP         int       `json:"nextLevelXP"`         // 0 when there is no next tier
}

// Tiers returns a copy of the rank ladder.
func Tiers() []LevelTier {
	out := make([]LevelTier, len(tiers))
	copy(out, tiers)
	return out
}

// ResolveLevel maps a non-negative XP total to its unique tier.
// Boundary XP belongs to the higher tier (half-open, lower-inclusive).
func ResolveLevel(totalXP int) (LevelInfo, error) {
	if totalXP < 0 {
		return LevelInfo{}, fmt.Errorf("negative XP total: %d", totalXP)
	}

	for i, t := range tiers {
		if totalXP < t.MinXP || totalXP >= t.MaxXP {
			continue
		}

		info := LevelInfo{Tier: t, TotalXP: totalXP}
		if i == len(tiers)-1 {
			info.ProgressToNextLevel = 100
			return info, nil
		}

		next := tiers[i+1]
		info.NextLevelXP = next.MinXP
		span := float64(next.MinXP - t.MinXP)
		info.ProgressToNextLevel = float64(totalXP-t.MinXP) / span * 100
		if info.ProgressToNextLevel > 100 {
			info.ProgressToNextLevel = 100
		}
		return info, nil
	}

	// Unreachable while tiers cover [0, ∞).
	return LevelInfo{}, fmt.Errorf("no tier matches XP total %d", totalXP)
}
