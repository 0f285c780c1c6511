package engine

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/lukeharte/wizard-arena/internal/game"
)

const (
	defendShieldTurns = 3
	buffTurns         = 4
	debuffTurns       = 3

	// Shield modifiers: a present shield always changes damage. 1.05 when
	// the spell's element is strong against the shield, 0.5 when weak,
	// 0.9 otherwise.
	shieldStrongModifier  = 1.05
	shieldWeakModifier    = 0.5
	shieldNeutralModifier = 0.9
)

// Contract violations surfaced by PerformAction. These indicate caller bugs
// (a mis-filtered action list or an unknown action catalog entry), never a
// normal game outcome.
var (
	ErrNotEnoughMana   = errors.New("not enough mana to perform action")
	ErrUnknownCategory = errors.New("unrecognized action category")
)

// effectGroup selects which effects a decay pass touches.
type effectGroup int

const (
	buffsAndDebuffs effectGroup = iota
	defenses
)

func (g effectGroup) includes(e game.StatusEffect) bool {
	switch g {
	case buffsAndDebuffs:
		return e.IsBuff() || e.IsDebuff()
	case defenses:
		return e.IsDefense()
	}
	return false
}

// PerformAction resolves one action for the given seat and returns the
// announcement text for the caller to display.
//
// The offered action must already be affordable: the caller filters the
// action list before handing it to the chooser, so an unaffordable action
// here is a contract violation, not a game-state failure. A failed accuracy
// roll is a normal outcome: no mana is spent and nothing is applied, but
// end-of-action decay still runs.
func (gs *GameState) PerformAction(actorSeat int, action game.Action, rng *rand.Rand) (string, error) {
	if actorSeat != 0 && actorSeat != 1 {
		return "", fmt.Errorf("actor seat must be 0 or 1, got %d", actorSeat)
	}
	actor := gs.Players[actorSeat]
	defenderSeat := 1 - actorSeat

	if action.ManaCost() > actor.CurrentMana {
		return "", fmt.Errorf("%w: cost %d, have %d", ErrNotEnoughMana, action.ManaCost(), actor.CurrentMana)
	}

	outcome := action.Resolve(rng)

	if !outcome.Succeeded {
		gs.LogAction(ActionRecord{
			ActorSeat: actorSeat,
			Type:      action.ActionType(),
			Target:    action.Target(),
			Result:    "Failed",
		})
		gs.decayEffects(actorSeat)
		return action.FailureAnnouncement(actor.Wizard), nil
	}

	gs.ChangeMana(actorSeat, -action.ManaCost())

	finalValue := int(math.Round(outcome.Value))

	switch outcome.Action {
	case game.ActionHeal:
		healed := gs.applyHeal(actorSeat, finalValue)
		finalValue = healed
		gs.LogAction(ActionRecord{
			ActorSeat: actorSeat,
			Type:      game.ActionHeal,
			Target:    game.TargetSelf,
			Result:    fmt.Sprintf("Healed %d", healed),
		})
	case game.ActionDefend:
		gs.AddStatusEffect(actorSeat, game.StatusEffect{
			Name:           string(action.Element()),
			Kind:           game.EffectDefense,
			Value:          0,
			RemainingTurns: defendShieldTurns,
		})
		gs.LogAction(ActionRecord{
			ActorSeat: actorSeat,
			Type:      game.ActionDefend,
			Target:    game.TargetSelf,
			Result:    fmt.Sprintf("Raised %s shield", action.Element().DisplayName()),
		})
	case game.ActionCastSpell:
		switch outcome.Spell {
		case game.SpellDamage:
			damage := gs.calculateDamage(actorSeat, defenderSeat, action.Element(), outcome.Value)
			gs.ChangeHealth(defenderSeat, -damage)
			finalValue = damage
			gs.LogAction(ActionRecord{
				ActorSeat: actorSeat,
				Type:      game.ActionCastSpell,
				Target:    game.TargetEnemy,
				Result:    fmt.Sprintf("Dealt %d", damage),
			})
		case game.SpellBuff:
			gs.AddStatusEffect(actorSeat, game.StatusEffect{
				Name:           action.Name(),
				Kind:           game.EffectBuff,
				Value:          outcome.Value,
				RemainingTurns: buffTurns,
			})
			gs.LogAction(ActionRecord{
				ActorSeat: actorSeat,
				Type:      game.ActionCastSpell,
				Target:    game.TargetSelf,
				Result:    fmt.Sprintf("Buff %s", action.Name()),
			})
		case game.SpellDebuff:
			gs.AddStatusEffect(defenderSeat, game.StatusEffect{
				Name:           action.Name(),
				Kind:           game.EffectDebuff,
				Value:          outcome.Value,
				RemainingTurns: debuffTurns,
			})
			gs.LogAction(ActionRecord{
				ActorSeat: actorSeat,
				Type:      game.ActionCastSpell,
				Target:    game.TargetEnemy,
				Result:    fmt.Sprintf("Debuff %s", action.Name()),
			})
		default:
			return "", fmt.Errorf("%w: spell category %q", ErrUnknownCategory, outcome.Spell)
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, outcome.Action)
	}

	gs.decayEffects(actorSeat)

	return action.SuccessAnnouncement(actor.Wizard, finalValue), nil
}

// decayEffects runs the per-action decay: the acting seat's buffs and
// debuffs lose a turn, the opposing seat's shields lose a turn, expired
// effects are dropped. The asymmetry is load-bearing for balance: a shield
// erodes only while its owner is being targeted, while a buff or debuff
// erodes only as its owner acts.
func (gs *GameState) decayEffects(actorSeat int) {
	gs.decrementGroup(actorSeat, buffsAndDebuffs)
	gs.decrementGroup(1-actorSeat, defenses)
}

func (gs *GameState) decrementGroup(seat int, group effectGroup) {
	ps := gs.Players[seat]
	kept := ps.ActiveEffects[:0]
	for _, e := range ps.ActiveEffects {
		if group.includes(e) && e.RemainingTurns > 0 {
			e.RemainingTurns--
		}
		if e.RemainingTurns > 0 {
			kept = append(kept, e)
		}
	}
	ps.ActiveEffects = kept
}

// applyHeal heals the seat by at most the missing health and returns the
// amount actually applied.
func (gs *GameState) applyHeal(seat int, amount int) int {
	ps := gs.Players[seat]
	before := ps.CurrentHealth
	after := gs.ChangeHealth(seat, amount)
	return after - before
}

// calculateDamage runs the multiplicative damage chain:
//
//	base * actorMult * defenderMult * Π(shield modifier)
//
// actorMult is the actor wizard's damage multiplier scaled up by each of the
// actor's buffs (1+value) and down by each debuff (1-value, floored at 0).
// defenderMult applies the same chain on top of the defender wizard's damage
// reduction. Each of the defender's shields then contributes an elemental
// modifier against the spell's element. Rounded to nearest, floored at 0.
func (gs *GameState) calculateDamage(actorSeat, defenderSeat int, spellElement game.Element, base float64) int {
	actor := gs.Players[actorSeat]
	defender := gs.Players[defenderSeat]

	actorMult := effectAdjusted(actor.Wizard.DamageMultiplier(), actor.Buffs(), actor.Debuffs())
	defenderMult := effectAdjusted(defender.Wizard.DamageReduction(), defender.Buffs(), defender.Debuffs())

	return damageValue(base, actorMult, defenderMult, spellElement, defender.Defenses())
}

// effectAdjusted applies a seat's active buffs and debuffs to a base
// multiplier: each buff scales by (1+value), each debuff by (1-value)
// floored at zero.
func effectAdjusted(base float64, buffs, debuffs []game.StatusEffect) float64 {
	for _, buff := range buffs {
		base *= 1 + buff.Value
	}
	for _, debuff := range debuffs {
		base *= math.Max(0, 1-debuff.Value)
	}
	return base
}

// damageValue finishes the chain: multiply the base roll by both side
// multipliers, fold in one elemental modifier per active shield, round to
// nearest and floor at zero.
func damageValue(base, actorMult, defenderMult float64, spellElement game.Element, shields []game.StatusEffect) int {
	damage := base * actorMult * defenderMult
	for _, shield := range shields {
		damage *= shieldModifier(spellElement, game.Element(shield.Name))
	}
	return max(0, int(math.Round(damage)))
}

func shieldModifier(spellElement, shieldElement game.Element) float64 {
	switch {
	case spellElement.StrongAgainst(shieldElement):
		return shieldStrongModifier
	case spellElement.WeakAgainst(shieldElement):
		return shieldWeakModifier
	default:
		return shieldNeutralModifier
	}
}
