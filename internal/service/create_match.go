package service

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/lukeharte/wizard-arena/internal/constants"
	"github.com/lukeharte/wizard-arena/internal/engine"
	"github.com/lukeharte/wizard-arena/internal/logging"
	"github.com/lukeharte/wizard-arena/internal/roster"
	"github.com/lukeharte/wizard-arena/internal/storage"
	"github.com/lukeharte/wizard-arena/internal/wizardgen"
)

type CreateMatchRequest struct {
	PlayerEmail string
	PlayerUUID  string
	PlayerName  string
	// Description is the freeform text the player's wizard is generated
	// from.
	Description string
	// EnemyName picks an opponent from the built-in roster.
	EnemyName string
}

// CreateMatch generates (or loads from cache) the player's wizard, seats
// both combatants and persists the new match. The match seed is recorded so
// every later roll can be re-derived.
func CreateMatch(repo storage.Repository, req CreateMatchRequest, actionTimeout time.Duration) (*storage.Match, *engine.GameState, error) {
	enemy, ok := roster.FindByName(req.EnemyName)
	if !ok {
		return nil, nil, ErrEnemyNotFound
	}

	wizard, source, err := wizardgen.GetOrCreateWizard(repo, req.Description)
	if err != nil {
		return nil, nil, fmt.Errorf("wizard generation failed: %w", err)
	}

	seed := time.Now().UnixNano()
	gs := engine.NewGameState()
	order := gs.Initialize(wizard, &enemy.Wizard, rand.New(rand.NewSource(seed)))

	playerSeat := 0
	if order[0] != wizard {
		playerSeat = 1
	}

	stateJSON, err := json.Marshal(gs)
	if err != nil {
		return nil, nil, err
	}

	m := &storage.Match{
		JoinCode:       NewJoinCode(),
		Status:         storage.MatchInProgress,
		PlayerEmail:    req.PlayerEmail,
		PlayerUUID:     req.PlayerUUID,
		PlayerName:     req.PlayerName,
		EnemyName:      enemy.Name,
		PlayerSeat:     playerSeat,
		Seed:           seed,
		RoundCount:     1,
		StateJSON:      string(stateJSON),
		ActionDeadline: time.Now().Add(actionTimeout),
	}
	if err := repo.CreateMatch(m); err != nil {
		return nil, nil, err
	}

	logging.Info("match created", logging.Fields{
		constants.LogFieldMatchCode: m.JoinCode,
		constants.LogFieldName:      wizard.Name,
		constants.LogFieldSource:    source,
		constants.LogFieldSeat:      playerSeat,
		"enemy":                     enemy.Name,
	})
	return m, gs, nil
}
