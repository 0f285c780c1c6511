package storage

import "time"

// Match statuses.
const (
	MatchInProgress = "in_progress"
	MatchFinished   = "finished"
)

// Match end reasons.
const (
	EndReasonKnockout    = "knockout"
	EndReasonResignation = "resignation"
	EndReasonTimeout     = "timeout"
)

// User is a player profile plus lifetime stats, keyed by Google email.
type User struct {
	ID            uint   `gorm:"primaryKey" json:"-"`
	Email         string `gorm:"uniqueIndex" json:"email"`
	PlayerUUID    string `json:"player_uuid"`
	PlayerName    string `json:"player_name"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Resignations  int    `json:"resignations"`
}

// GeneratedWizard caches a chat-model wizard build keyed by the canonical
// description key, so repeat descriptions skip the generation calls. The
// wizard (stats plus spells) is stored as one JSON document.
type GeneratedWizard struct {
	ID             uint      `gorm:"primaryKey"`
	DescriptionKey string    `gorm:"uniqueIndex"`
	Description    string
	WizardJSON     string
	CreatedAt      time.Time
}

// Match is one player-vs-enemy match. The live combat state is snapshotted
// as JSON; Seed and ActionCount let the engine re-derive every past roll,
// so a restored match replays identically.
type Match struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	JoinCode       string    `gorm:"uniqueIndex" json:"join_code"`
	Status         string    `json:"status"`
	PlayerEmail    string    `json:"-"`
	PlayerUUID     string    `json:"player_uuid"`
	PlayerName     string    `json:"player_name"`
	EnemyName      string    `json:"enemy_name"`
	PlayerSeat     int       `json:"player_seat"`
	Seed           int64     `json:"-"`
	ActionCount    int       `json:"-"`
	RoundCount     int       `json:"round_count"`
	StateJSON      string    `json:"-"`
	Winner         string    `json:"winner,omitempty"`
	EndReason      string    `json:"end_reason,omitempty"`
	LastSummary    string    `json:"last_summary,omitempty"`
	StatsCounted   bool      `json:"-"`
	ActionDeadline time.Time `json:"action_deadline"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"-"`
}
