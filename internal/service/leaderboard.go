package service

import (
	"fmt"

	"github.com/careerpathid/careerpath/internal/model"
	"github.com/careerpathid/careerpath/internal/repository"
	"github.com/careerpathid/careerpath/internal/scoring"
)

type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
}

func NewLeaderboardService(leaderboardRepo repository.LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{leaderboardRepo: leaderboardRepo}
}

// Leaderboard is the ranked XP listing plus the caller's own standing,
// which may fall outside the listed top.
type Leaderboard struct {
	Entries []*model.LeaderboardEntry `json:"entries"`
	Me      *model.LeaderboardEntry   `json:"me,omitempty"`
}

func (s *LeaderboardService) Top(viewerID string, limit int) (*Leaderboard, error) {
	if limit <= 0 || limit > 100 {
		limit = 25
	}

	entries, err := s.leaderboardRepo.TopByXP(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	board := &Leaderboard{Entries: entries}

	for i, entry := range entries {
		entry.Rank = i + 1
		if err := decorateLevel(entry); err != nil {
			return nil, err
		}
		if entry.UserID == viewerID {
			board.Me = entry
		}
	}

	if board.Me == nil && viewerID != "" {
		me, err := s.leaderboardRepo.UserStanding(viewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load own standing: %w", err)
		}
		if err := decorateLevel(me); err != nil {
			return nil, err
		}
		board.Me = me
	}

	return board, nil
}

func decorateLevel(entry *model.LeaderboardEntry) error {
	info, err := scoring.ResolveLevel(entry.TotalXP)
	if err != nil {
		return err
	}
	entry.Level = info.Tier.Level
	entry.LevelName = info.Tier.Name
	return nil
}
