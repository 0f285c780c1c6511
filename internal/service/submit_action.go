package service

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	"github.com/lukeharte/wizard-arena/internal/chooser"
	"github.com/lukeharte/wizard-arena/internal/constants"
	"github.com/lukeharte/wizard-arena/internal/engine"
	"github.com/lukeharte/wizard-arena/internal/game"
	"github.com/lukeharte/wizard-arena/internal/logging"
	"github.com/lukeharte/wizard-arena/internal/storage"
)

// LoadState decodes a match's combat state snapshot.
func LoadState(m *storage.Match) (*engine.GameState, error) {
	gs := engine.NewGameState()
	if err := json.Unmarshal([]byte(m.StateJSON), gs); err != nil {
		return nil, err
	}
	return gs, nil
}

// actionRNG derives the random source for the next roll from the match seed
// and how many rolls came before it. Replaying the same seed and action
// sequence reproduces the match exactly.
func actionRNG(m *storage.Match) *rand.Rand {
	return rand.New(rand.NewSource(m.Seed + int64(m.ActionCount)))
}

// SubmitAction resolves one full round: the player's chosen action and the
// enemy's reply, in seat order. actionIndex points into the player's full
// action catalog; the action must be affordable. Returns the updated match
// and decoded state.
func SubmitAction(repo MatchRepo, enemyChooser chooser.Chooser, matchCode, playerEmail string, actionIndex int, actionTimeout time.Duration) (*storage.Match, *engine.GameState, error) {
	m, err := repo.FindMatchByJoinCode(matchCode)
	if err != nil || m == nil {
		return nil, nil, ErrMatchNotFound
	}
	if m.PlayerEmail != playerEmail {
		return nil, nil, ErrNotYourMatch
	}
	if m.Status != storage.MatchInProgress {
		return nil, nil, ErrMatchNotInProgress
	}

	gs, err := LoadState(m)
	if err != nil {
		return nil, nil, err
	}

	playerSeat := m.PlayerSeat
	enemySeat := 1 - playerSeat
	player := gs.Players[playerSeat]

	playerActions := game.AvailableActions(player.Wizard)
	if actionIndex < 0 || actionIndex >= len(playerActions) {
		return nil, nil, ErrInvalidAction
	}
	playerAction := playerActions[actionIndex]
	if playerAction.ManaCost() > player.CurrentMana {
		return nil, nil, ErrActionNotAffordable
	}

	// Round upkeep: mana income lands at the start of every round after
	// the first, and effects that ran out last round are swept.
	if m.RoundCount > 1 {
		gs.IncrementMana()
	}
	gs.ClearExpiredEffects(0)
	gs.ClearExpiredEffects(1)

	var summary []string
	for seat := 0; seat < 2; seat++ {
		var act game.Action
		if seat == playerSeat {
			act = playerAction
		} else {
			act = chooseEnemyAction(gs, enemyChooser, enemySeat, playerSeat)
			if act == nil {
				continue
			}
		}
		msg, err := gs.PerformAction(seat, act, actionRNG(m))
		if err != nil {
			return nil, nil, err
		}
		m.ActionCount++
		summary = append(summary, msg)
		if gs.GetWinner() != nil {
			break
		}
	}

	if w := gs.GetWinner(); w != nil {
		m.Status = storage.MatchFinished
		m.Winner = w.Name
		m.EndReason = storage.EndReasonKnockout
		m.ActionDeadline = time.Time{}
		if !m.StatsCounted {
			if err := repo.UpdateStatsOnMatchEnd(m, false); err != nil {
				logging.Error("failed to update stats on match end", err, logging.Fields{constants.LogFieldMatchCode: m.JoinCode})
			}
			m.StatsCounted = true
		}
		logging.Info("match finished", logging.Fields{constants.LogFieldMatchCode: m.JoinCode, constants.LogFieldWinner: w.Name})
	} else {
		m.RoundCount++
		m.ActionDeadline = time.Now().Add(actionTimeout)
	}
	m.LastSummary = strings.Join(summary, " ")

	stateJSON, err := json.Marshal(gs)
	if err != nil {
		return nil, nil, err
	}
	m.StateJSON = string(stateJSON)

	if err := repo.UpdateMatch(m); err != nil {
		return nil, nil, err
	}
	return m, gs, nil
}

// chooseEnemyAction asks the configured chooser for the enemy's move,
// falling back to the heuristic when it fails. A nil return means the enemy
// cannot afford any action and forfeits the turn.
func chooseEnemyAction(gs *engine.GameState, c chooser.Chooser, enemySeat, playerSeat int) game.Action {
	enemy := gs.Players[enemySeat]
	player := gs.Players[playerSeat]

	affordable := game.AffordableActions(game.AvailableActions(enemy.Wizard), enemy.CurrentMana)
	if len(affordable) == 0 {
		return nil
	}
	playerAffordable := game.AffordableActions(game.AvailableActions(player.Wizard), player.CurrentMana)

	goingFirst := enemySeat == 0
	if c != nil {
		if idx, err := c.Choose(enemy, player, affordable, playerAffordable, goingFirst); err == nil {
			return affordable[idx]
		} else {
			logging.Error("enemy chooser failed; using heuristic", err, logging.Fields{constants.LogFieldName: enemy.Wizard.Name})
		}
	}
	idx, err := chooser.NewHeuristic().Choose(enemy, player, affordable, playerAffordable, goingFirst)
	if err != nil {
		return nil
	}
	return affordable[idx]
}
