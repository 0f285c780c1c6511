package service

import (
	"time"

	"github.com/lukeharte/wizard-arena/internal/constants"
	"github.com/lukeharte/wizard-arena/internal/logging"
	"github.com/lukeharte/wizard-arena/internal/storage"
)

// Resign concedes the match to the enemy wizard and counts the resignation
// against the player's stats.
func Resign(repo MatchRepo, matchCode, playerEmail string) (*storage.Match, error) {
	m, err := repo.FindMatchByJoinCode(matchCode)
	if err != nil || m == nil {
		return nil, ErrMatchNotFound
	}
	if m.PlayerEmail != playerEmail {
		return nil, ErrNotYourMatch
	}
	if m.Status != storage.MatchInProgress {
		return nil, ErrMatchNotInProgress
	}

	m.Status = storage.MatchFinished
	m.Winner = m.EnemyName
	m.EndReason = storage.EndReasonResignation
	m.ActionDeadline = time.Time{}
	if !m.StatsCounted {
		if err := repo.UpdateStatsOnMatchEnd(m, true); err != nil {
			logging.Error("failed to update stats on resignation", err, logging.Fields{constants.LogFieldMatchCode: m.JoinCode})
		}
		m.StatsCounted = true
	}
	if err := repo.UpdateMatch(m); err != nil {
		return nil, err
	}
	logging.Info("match resigned", logging.Fields{constants.LogFieldMatchCode: m.JoinCode, constants.LogFieldWinner: m.Winner})
	return m, nil
}
