package repository

import (
	"github.com/careerpathid/careerpath/internal/model"
	"github.com/jmoiron/sqlx"
)

type LeaderboardRepository interface {
	TopByXP(limit int) ([]*model.LeaderboardEntry, error)
	UserStanding(userID string) (*model.LeaderboardEntry, error)
}

type leaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// TopByXP orders students by summed skill XP. Ties break on name so the
// ordering is stable between requests.
func (r *leaderboardRepository) TopByXP(limit int) ([]*model.LeaderboardEntry, error) {
	var entries []*model.LeaderboardEntry
	query := `SELECT u.id AS user_id, COALESCE(p.name, '') AS name,
	                 COALESCE(p.university, '') AS university,
	                 COALESCE(SUM(us.xp), 0) AS total_xp
	          FROM users u
	          LEFT JOIN profiles p ON p.user_id = u.id
	          LEFT JOIN user_skills us ON us.user_id = u.id
	          WHERE u.role = $1
	          GROUP BY u.id, p.name, p.university
	          ORDER BY total_xp DESC, name ASC
	          LIMIT $2`

	err := r.db.Select(&entries, query, model.RoleStudent, limit)
	return entries, err
}

func (r *leaderboardRepository) UserStanding(userID string) (*model.LeaderboardEntry, error) {
	entry := &model.LeaderboardEntry{}
	query := `SELECT u.id AS user_id, COALESCE(p.name, '') AS name,
	                 COALESCE(p.university, '') AS university,
	                 COALESCE(SUM(us.xp), 0) AS total_xp
	          FROM users u
	          LEFT JOIN profiles p ON p.user_id = u.id
	          LEFT JOIN user_skills us ON us.user_id = u.id
	          WHERE u.id = $1
	          GROUP BY u.id, p.name, p.university`

	err := r.db.Get(entry, query, userID)
	return entry, err
}
