package storage

import "time"

type Repository interface {
	// Generated wizard cache (lookup by canonical description key)
	// e.g. key = "larry_the_lobster"
	GetGeneratedWizardByKey(key string) (*GeneratedWizard, error)
	SaveGeneratedWizard(gw *GeneratedWizard) error

	CreateMatch(m *Match) error
	FindMatchByJoinCode(code string) (*Match, error)
	UpdateMatch(m *Match) error
	// GetActiveMatchesByEmail returns the player's in-progress matches,
	// newest first.
	GetActiveMatchesByEmail(email string) ([]Match, error)

	UpsertUser(email, uuid, name string) error
	GetStatsByEmail(email string) (*User, error)
	SaveUser(u *User) error
	// UpdateStatsOnMatchEnd credits the finished match to the player's
	// lifetime stats exactly once per match.
	UpdateStatsOnMatchEnd(m *Match, resigned bool) error
	// Leaderboard
	GetTopPlayers(limit int) ([]User, error)

	// FindTimedOutMatches returns matches that are in progress and whose
	// action deadline is at or before the provided time. The caller may
	// then decide how to resolve them (for example, forfeiting the match
	// due to inactivity).
	FindTimedOutMatches(now time.Time) ([]Match, error)
}
