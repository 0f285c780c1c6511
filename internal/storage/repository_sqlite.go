package storage

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) GetGeneratedWizardByKey(key string) (*GeneratedWizard, error) {
	var gw GeneratedWizard
	if err := r.db.Where("description_key = ?", key).First(&gw).Error; err != nil {
		return nil, err
	}
	return &gw, nil
}

func (r *sqliteRepository) SaveGeneratedWizard(gw *GeneratedWizard) error {
	// Upsert keyed by description_key so a concurrent generation that lost
	// the singleflight race does not fail on the unique constraint.
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "description_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "wizard_json"}),
	}).Create(gw).Error
}

func (r *sqliteRepository) CreateMatch(m *Match) error {
	return r.db.Create(m).Error
}

func (r *sqliteRepository) FindMatchByJoinCode(code string) (*Match, error) {
	var m Match
	if err := r.db.Where("join_code = ?", code).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *sqliteRepository) UpdateMatch(m *Match) error {
	return r.db.Save(m).Error
}

func (r *sqliteRepository) GetActiveMatchesByEmail(email string) ([]Match, error) {
	var matches []Match
	err := r.db.Where("player_email = ? AND status = ?", email, MatchInProgress).
		Order("created_at desc").Find(&matches).Error
	return matches, err
}

func (r *sqliteRepository) UpsertUser(email, uuid, name string) error {
	var u User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			u = User{Email: email, PlayerUUID: uuid, PlayerName: name}
		} else {
			return err
		}
	}
	u.PlayerName = name
	u.PlayerUUID = uuid
	return r.db.Save(&u).Error
}

func (r *sqliteRepository) GetStatsByEmail(email string) (*User, error) {
	var u User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return &User{Email: email}, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *sqliteRepository) SaveUser(u *User) error {
	return r.db.Save(u).Error
}

func (r *sqliteRepository) UpdateStatsOnMatchEnd(m *Match, resigned bool) error {
	if m.PlayerEmail == "" {
		return nil
	}
	var u User
	if err := r.db.Where("email = ?", m.PlayerEmail).First(&u).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			u = User{Email: m.PlayerEmail, PlayerUUID: m.PlayerUUID, PlayerName: m.PlayerName}
		} else {
			return err
		}
	}
	u.MatchesPlayed++
	// Winner holds the winning wizard's name; anything other than the
	// roster enemy means the player's wizard won.
	if m.Winner != "" && m.Winner != m.EnemyName {
		u.Wins++
	}
	if resigned {
		u.Resignations++
	}
	return r.db.Save(&u).Error
}

// GetTopPlayers returns top N players ordered by Wins desc, then
// MatchesPlayed desc.
func (r *sqliteRepository) GetTopPlayers(limit int) ([]User, error) {
	if limit <= 0 {
		limit = 10
	}
	var users []User
	if err := r.db.Model(&User{}).
		Order("wins DESC").
		Order("matches_played DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *sqliteRepository) FindTimedOutMatches(now time.Time) ([]Match, error) {
	var matches []Match
	err := r.db.Where("status = ? AND action_deadline <= ?", MatchInProgress, now).
		Find(&matches).Error
	return matches, err
}
