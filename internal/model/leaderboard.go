package model

// LeaderboardEntry is a ranked row on the XP leaderboard. Rank is computed
// by the service after the ordered query returns.
type LeaderboardEntry struct {
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
	University string `db:"university"`
	TotalXP    int    `db:"total_xp"`
	Rank       int    `db:"-"`
	Level      int    `db:"-"`
	LevelName  string `db:"-"`
}
