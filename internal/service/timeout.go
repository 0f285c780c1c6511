package service

import (
	"time"

	"github.com/lukeharte/wizard-arena/internal/constants"
	"github.com/lukeharte/wizard-arena/internal/logging"
	"github.com/lukeharte/wizard-arena/internal/storage"
)

// HandleTimedOutMatch forfeits a match whose player missed the action
// deadline. The enemy takes the win but the forfeit is not counted as a
// resignation.
func HandleTimedOutMatch(repo MatchRepo, m *storage.Match) error {
	if m.Status != storage.MatchInProgress {
		return nil
	}

	m.Status = storage.MatchFinished
	m.Winner = m.EnemyName
	m.EndReason = storage.EndReasonTimeout
	m.ActionDeadline = time.Time{}
	if !m.StatsCounted {
		if err := repo.UpdateStatsOnMatchEnd(m, false); err != nil {
			logging.Error("failed to update stats on timeout", err, logging.Fields{constants.LogFieldMatchCode: m.JoinCode})
		}
		m.StatsCounted = true
	}
	logging.Info("match timed out; enemy wins", logging.Fields{constants.LogFieldMatchCode: m.JoinCode, constants.LogFieldWinner: m.Winner})
	return repo.UpdateMatch(m)
}

// ScanTimedOutMatches resolves every match whose deadline passed. Meant to
// run periodically from a background goroutine.
func ScanTimedOutMatches(repo storage.Repository, now time.Time) {
	matches, err := repo.FindTimedOutMatches(now)
	if err != nil {
		logging.Error("failed to scan for timed-out matches", err, nil)
		return
	}
	for i := range matches {
		if err := HandleTimedOutMatch(repo, &matches[i]); err != nil {
			logging.Error("failed to resolve timed-out match", err, logging.Fields{constants.LogFieldMatchCode: matches[i].JoinCode})
		}
	}
}
