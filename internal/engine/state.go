package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/lukeharte/wizard-arena/internal/game"
)

// PlayerState is one combatant's mutable battle state. The wizard reference
// is read-only; health, mana and effects are mutated exclusively through
// GameState methods.
type PlayerState struct {
	Seat          int                 `json:"seat"`
	Wizard        *game.Wizard        `json:"wizard"`
	MaxHealth     int                 `json:"max_health"`
	CurrentHealth int                 `json:"current_health"`
	CurrentMana   int                 `json:"current_mana"`
	ActiveEffects []game.StatusEffect `json:"active_effects"`
}

// Buffs returns the currently active BUFF effects.
func (ps *PlayerState) Buffs() []game.StatusEffect { return ps.effectsOfKind(game.EffectBuff) }

// Debuffs returns the currently active DEBUFF effects.
func (ps *PlayerState) Debuffs() []game.StatusEffect { return ps.effectsOfKind(game.EffectDebuff) }

// Defenses returns the currently active DEFENSE effects (shields).
func (ps *PlayerState) Defenses() []game.StatusEffect { return ps.effectsOfKind(game.EffectDefense) }

func (ps *PlayerState) effectsOfKind(kind game.EffectKind) []game.StatusEffect {
	out := make([]game.StatusEffect, 0, len(ps.ActiveEffects))
	for _, e := range ps.ActiveEffects {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

func (ps *PlayerState) String() string {
	effects := "(none)"
	if len(ps.ActiveEffects) > 0 {
		parts := make([]string, len(ps.ActiveEffects))
		for i, e := range ps.ActiveEffects {
			parts[i] = e.String()
		}
		effects = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%s: HP %d/%d, Mana %d, Effects: %s",
		ps.Wizard.Name, ps.CurrentHealth, ps.MaxHealth, ps.CurrentMana, effects)
}

// ActionRecord is one immutable line in the match's action log.
type ActionRecord struct {
	ActorSeat int               `json:"actor_seat"`
	Type      game.ActionType   `json:"type"`
	Target    game.ActionTarget `json:"target"`
	Result    string            `json:"result"`
}

// GameState tracks the full state of one in-progress match: both seats and
// the append-only action log. It holds either zero seats (before Initialize)
// or exactly two. A GameState is a plain owned value; callers may run any
// number of independent matches, but a single match must be driven from one
// goroutine at a time.
//
// Fields are exported so a match can be snapshotted to and restored from
// JSON; all mutation goes through the methods below.
type GameState struct {
	Players []*PlayerState `json:"players"`
	Log     []ActionRecord `json:"log"`
}

// NewGameState returns an empty, uninitialized match state.
func NewGameState() *GameState {
	return &GameState{}
}

// Initialize resets the match with fresh state for both wizards. Seating is
// shuffled with the supplied random source so turn priority does not follow
// input order; the wizards are returned in their assigned seat order.
// Calling Initialize again discards all prior state.
func (gs *GameState) Initialize(wizard1, wizard2 *game.Wizard, rng *rand.Rand) []*game.Wizard {
	order := []*game.Wizard{wizard1, wizard2}
	rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	gs.Players = make([]*PlayerState, 0, 2)
	for seat, w := range order {
		maxHP := w.MaxHealth()
		gs.Players = append(gs.Players, &PlayerState{
			Seat:          seat,
			Wizard:        w,
			MaxHealth:     maxHP,
			CurrentHealth: maxHP,
			CurrentMana:   w.StartingMana(),
		})
	}
	gs.Log = nil
	return order
}

// Initialized reports whether both seats are populated.
func (gs *GameState) Initialized() bool { return len(gs.Players) == 2 }

// ChangeHealth adjusts a seat's health by delta, clamped into
// [0, max_health], and returns the new value.
func (gs *GameState) ChangeHealth(seat int, delta int) int {
	ps := gs.Players[seat]
	return gs.SetHealth(seat, ps.CurrentHealth+delta)
}

// SetHealth sets a seat's health, clamped into [0, max_health], and returns
// the new value.
func (gs *GameState) SetHealth(seat int, value int) int {
	ps := gs.Players[seat]
	ps.CurrentHealth = clamp(value, 0, ps.MaxHealth)
	return ps.CurrentHealth
}

// ChangeMana adjusts a seat's mana by delta, floored at 0, and returns the
// new value. Mana has no upper bound.
func (gs *GameState) ChangeMana(seat int, delta int) int {
	ps := gs.Players[seat]
	return gs.SetMana(seat, ps.CurrentMana+delta)
}

// SetMana sets a seat's mana, floored at 0, and returns the new value.
func (gs *GameState) SetMana(seat int, value int) int {
	ps := gs.Players[seat]
	ps.CurrentMana = max(0, value)
	return ps.CurrentMana
}

// AddStatusEffect attaches effect to a seat. If the seat already carries an
// effect with the same name, that effect's kind, value and remaining turns
// are overwritten in place; a duplicate is never appended.
func (gs *GameState) AddStatusEffect(seat int, effect game.StatusEffect) {
	ps := gs.Players[seat]
	for i := range ps.ActiveEffects {
		if ps.ActiveEffects[i].Name == effect.Name {
			ps.ActiveEffects[i].Kind = effect.Kind
			ps.ActiveEffects[i].Value = effect.Value
			ps.ActiveEffects[i].RemainingTurns = effect.RemainingTurns
			return
		}
	}
	ps.ActiveEffects = append(ps.ActiveEffects, effect)
}

// ClearExpiredEffects drops every effect on the seat whose remaining turns
// reached zero.
func (gs *GameState) ClearExpiredEffects(seat int) {
	ps := gs.Players[seat]
	kept := ps.ActiveEffects[:0]
	for _, e := range ps.ActiveEffects {
		if e.RemainingTurns > 0 {
			kept = append(kept, e)
		}
	}
	ps.ActiveEffects = kept
}

// TickEffects decrements the remaining turns of every effect on both seats,
// floored at zero. It is meant for whole-round ticking outside the per-action
// decay that PerformAction applies; expired effects are left in place for
// ClearExpiredEffects.
func (gs *GameState) TickEffects() {
	for _, ps := range gs.Players {
		for i := range ps.ActiveEffects {
			if ps.ActiveEffects[i].RemainingTurns > 0 {
				ps.ActiveEffects[i].RemainingTurns--
			}
		}
	}
}

// IncrementMana grants each seat its wizard's per-round mana income.
func (gs *GameState) IncrementMana() {
	for _, ps := range gs.Players {
		ps.CurrentMana += ps.Wizard.ManaPerRound()
	}
}

// LogAction appends a record to the match log.
func (gs *GameState) LogAction(record ActionRecord) {
	gs.Log = append(gs.Log, record)
}

// GetWinner returns the winning wizard, or nil while the match is undecided
// or uninitialized. Seat 0 is checked first: if both seats are at zero
// health, seat 1's wizard wins. That tie-break is deliberate and relied on
// by callers; do not reorder the checks.
func (gs *GameState) GetWinner() *game.Wizard {
	if !gs.Initialized() {
		return nil
	}
	if gs.Players[0].CurrentHealth <= 0 {
		return gs.Players[1].Wizard
	}
	if gs.Players[1].CurrentHealth <= 0 {
		return gs.Players[0].Wizard
	}
	return nil
}

// String renders both seats and the full action log for display.
func (gs *GameState) String() string {
	if !gs.Initialized() {
		return "GameState: <uninitialized>"
	}
	var b strings.Builder
	for i, ps := range gs.Players {
		fmt.Fprintf(&b, "Player %d: %s\n", i+1, ps)
	}
	b.WriteString("Actions:")
	if len(gs.Log) == 0 {
		b.WriteString("\n  (none)")
	}
	for i, rec := range gs.Log {
		fmt.Fprintf(&b, "\n  %d. Player %d -> %s (%s) | %s",
			i+1, rec.ActorSeat+1, rec.Type, rec.Target, rec.Result)
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
