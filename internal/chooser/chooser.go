// Package chooser decides which action the enemy wizard takes each round.
// Two implementations exist: a deterministic heuristic and a chat-model
// chooser that plays in character.
package chooser

import (
	"github.com/lukeharte/wizard-arena/internal/engine"
	"github.com/lukeharte/wizard-arena/internal/game"
)

// Chooser picks one index from actions, which holds only affordable moves
// for this round. Implementations must return an index in [0, len(actions)).
type Chooser interface {
	Choose(self, enemy *engine.PlayerState, actions, enemyActions []game.Action, goingFirst bool) (int, error)
}
