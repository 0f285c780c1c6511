package chooser

import (
	"fmt"

	"github.com/lukeharte/wizard-arena/internal/engine"
	"github.com/lukeharte/wizard-arena/internal/game"
)

const (
	// Heal is considered once health drops below this fraction of max.
	lowHealthFraction = 0.35
	// Point value assigned per unit of buff/debuff magnitude so effect
	// spells compare against damage numbers.
	effectImpactScale = 240.0
	// Baseline score for raising a shield when none is up.
	defendBaseScore = 30.0
	// Scores within this margin count as tied; ties fall to mana cost,
	// then to the earliest index.
	tieMargin = 1.0
)

// Heuristic picks by expected impact: accuracy-weighted value, with setup
// spells scaled into damage points. It never repeats an effect that still
// has turns remaining and reaches for the heal when health runs low.
type Heuristic struct{}

func NewHeuristic() *Heuristic { return &Heuristic{} }

func (h *Heuristic) Choose(self, enemy *engine.PlayerState, actions, enemyActions []game.Action, goingFirst bool) (int, error) {
	if len(actions) == 0 {
		return 0, fmt.Errorf("no actions to choose from")
	}

	lowHealth := float64(self.CurrentHealth) < lowHealthFraction*float64(self.MaxHealth)
	if lowHealth {
		if i, ok := bestHeal(self, actions); ok {
			return i, nil
		}
	}

	best := -1
	var bestScore float64
	for i, a := range actions {
		score := h.score(self, enemy, a)
		if best < 0 {
			best, bestScore = i, score
			continue
		}
		switch {
		case score > bestScore+tieMargin:
			best, bestScore = i, score
		case score > bestScore-tieMargin && a.ManaCost() < actions[best].ManaCost():
			best, bestScore = i, score
		}
	}
	return best, nil
}

// bestHeal returns the index of the strongest worthwhile heal, if any.
func bestHeal(self *engine.PlayerState, actions []game.Action) (int, bool) {
	missing := self.MaxHealth - self.CurrentHealth
	best, bestValue := -1, 0.0
	for i, a := range actions {
		p := a.Preview()
		if p.Type != game.ActionHeal {
			continue
		}
		mean := (p.MinValue + p.MaxValue) / 2
		if mean > float64(missing) {
			mean = float64(missing)
		}
		value := mean * p.Accuracy
		if value > bestValue {
			best, bestValue = i, value
		}
	}
	return best, best >= 0
}

func (h *Heuristic) score(self, enemy *engine.PlayerState, a game.Action) float64 {
	p := a.Preview()
	mean := (p.MinValue + p.MaxValue) / 2

	switch p.Type {
	case game.ActionHeal:
		// Outside the low-health branch a heal only matters in
		// proportion to what it can actually restore.
		missing := float64(self.MaxHealth - self.CurrentHealth)
		if mean > missing {
			mean = missing
		}
		return 0.5 * mean * p.Accuracy
	case game.ActionDefend:
		if shieldActive(self) {
			return 0
		}
		return defendBaseScore * p.Accuracy
	default:
		switch p.Spell {
		case game.SpellBuff:
			if effectActive(self, a.Name()) {
				return 0
			}
			return mean * effectImpactScale * p.Accuracy
		case game.SpellDebuff:
			if effectActive(enemy, a.Name()) {
				return 0
			}
			return mean * effectImpactScale * p.Accuracy
		default:
			return mean * p.Accuracy
		}
	}
}

func shieldActive(self *engine.PlayerState) bool {
	for _, e := range self.Defenses() {
		if e.RemainingTurns > 1 {
			return true
		}
	}
	return false
}

func effectActive(ps *engine.PlayerState, name string) bool {
	for _, e := range ps.ActiveEffects {
		if e.Name == name && e.RemainingTurns > 1 {
			return true
		}
	}
	return false
}
