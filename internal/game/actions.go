package game

import (
	"fmt"
	"math/rand"
)

// ActionType is the top-level category of a selectable move.
type ActionType string

const (
	ActionCastSpell ActionType = "CAST_SPELL"
	ActionDefend    ActionType = "DEFEND"
	ActionHeal      ActionType = "HEAL"
)

// ActionTarget says which side an action lands on.
type ActionTarget string

const (
	TargetSelf  ActionTarget = "SELF"
	TargetEnemy ActionTarget = "ENEMY"
)

// Outcome is the result of rolling an action: whether it hit, how it should
// be applied, and the rolled value (damage or heal points for DAMAGE/HEAL,
// a multiplier magnitude for BUFF/DEBUFF).
type Outcome struct {
	Succeeded bool
	Action    ActionType
	Spell     SpellType // set only when Action == ActionCastSpell
	Value     float64
}

// ActionPreview summarizes an action before it is rolled: category, cost,
// accuracy and the value range a successful roll can land in. Choosers and
// prompt builders read previews instead of inspecting concrete action types.
type ActionPreview struct {
	Type     ActionType
	Spell    SpellType // zero unless Type == ActionCastSpell
	Target   ActionTarget
	Element  Element
	Accuracy float64
	ManaCost int
	MinValue float64
	MaxValue float64
}

// Action describes one selectable move for a round. Implementations carry
// their own cost, target and accuracy; Resolve draws from the supplied
// random source only, so a seeded source replays identically.
type Action interface {
	ActionType() ActionType
	Name() string
	ManaCost() int
	Target() ActionTarget
	Element() Element
	Preview() ActionPreview
	Resolve(rng *rand.Rand) Outcome
	SuccessAnnouncement(w *Wizard, value int) string
	FailureAnnouncement(w *Wizard) string
}

// SpellAction casts one of a wizard's spells. Cost and rolled values scale
// with the spell's 0-1 strength rating; accuracy comes from the element.
type SpellAction struct {
	Spell Spell
}

// damage rolls land in [0.85, 1.15] of strength*120, buff/debuff magnitudes
// in [0.35, 0.5] of strength.
const (
	spellDamageBase   = 120.0
	spellDamageSpread = 0.30
	spellDamageFloor  = 0.85
	spellEffectBase   = 0.35
	spellEffectSpread = 0.15
	healAccuracy      = 0.9
	healRollFloor     = 0.8
	healRollSpread    = 0.4
	defendManaCost    = 2
	healManaCost      = 3
)

func (a SpellAction) ActionType() ActionType { return ActionCastSpell }

func (a SpellAction) Name() string { return a.Spell.Name }

func (a SpellAction) ManaCost() int {
	return 1 + int(9*a.Spell.Strength+0.5)
}

func (a SpellAction) Target() ActionTarget {
	if a.Spell.Type == SpellBuff {
		return TargetSelf
	}
	return TargetEnemy
}

func (a SpellAction) Element() Element { return a.Spell.Element }

func (a SpellAction) Accuracy() float64 { return a.Spell.Element.Accuracy() }

func (a SpellAction) Preview() ActionPreview {
	p := ActionPreview{
		Type:     ActionCastSpell,
		Spell:    a.Spell.Type,
		Target:   a.Target(),
		Element:  a.Spell.Element,
		Accuracy: a.Accuracy(),
		ManaCost: a.ManaCost(),
	}
	if a.Spell.Type == SpellDamage {
		p.MinValue = float64(int(spellDamageBase*a.Spell.Strength*spellDamageFloor + 0.5))
		p.MaxValue = float64(int(spellDamageBase*a.Spell.Strength*(spellDamageFloor+spellDamageSpread) + 0.5))
	} else {
		p.MinValue = a.Spell.Strength * spellEffectBase
		p.MaxValue = a.Spell.Strength * (spellEffectBase + spellEffectSpread)
	}
	return p
}

func (a SpellAction) Resolve(rng *rand.Rand) Outcome {
	if rng.Float64() > a.Accuracy() {
		return Outcome{Succeeded: false, Action: ActionCastSpell, Spell: a.Spell.Type}
	}
	out := Outcome{Succeeded: true, Action: ActionCastSpell, Spell: a.Spell.Type}
	switch a.Spell.Type {
	case SpellDamage:
		roll := spellDamageFloor + spellDamageSpread*rng.Float64()
		out.Value = float64(int(spellDamageBase*a.Spell.Strength*roll + 0.5))
	default:
		out.Value = a.Spell.Strength * (spellEffectBase + spellEffectSpread*rng.Float64())
	}
	return out
}

func (a SpellAction) SuccessAnnouncement(w *Wizard, value int) string {
	switch a.Spell.Type {
	case SpellDamage:
		return fmt.Sprintf("%s unleashes %s, dealing %d damage!", w.Name, a.Spell.Name, value)
	case SpellBuff:
		return fmt.Sprintf("%s empowers themselves with %s!", w.Name, a.Spell.Name)
	default:
		return fmt.Sprintf("%s afflicts the enemy with %s!", w.Name, a.Spell.Name)
	}
}

func (a SpellAction) FailureAnnouncement(w *Wizard) string {
	return fmt.Sprintf("%s's %s fizzles out!", w.Name, a.Spell.Name)
}

// DefendAction raises an elemental shield on the actor.
type DefendAction struct {
	Elem Element
}

func (a DefendAction) ActionType() ActionType { return ActionDefend }

func (a DefendAction) Name() string { return a.Elem.DisplayName() + " Shield" }

func (a DefendAction) ManaCost() int { return defendManaCost }

func (a DefendAction) Target() ActionTarget { return TargetSelf }

func (a DefendAction) Element() Element { return a.Elem }

func (a DefendAction) Preview() ActionPreview {
	return ActionPreview{
		Type:     ActionDefend,
		Target:   TargetSelf,
		Element:  a.Elem,
		Accuracy: a.Elem.Accuracy(),
		ManaCost: defendManaCost,
	}
}

func (a DefendAction) Resolve(rng *rand.Rand) Outcome {
	succeeded := rng.Float64() <= a.Elem.Accuracy()
	return Outcome{Succeeded: succeeded, Action: ActionDefend}
}

func (a DefendAction) SuccessAnnouncement(w *Wizard, value int) string {
	return fmt.Sprintf("%s raises a %s shield!", w.Name, a.Elem.DisplayName())
}

func (a DefendAction) FailureAnnouncement(w *Wizard) string {
	return fmt.Sprintf("%s fumbles the shield sigil!", w.Name)
}

// HealAction restores health to the actor. Amount is fixed at construction
// from the wizard's healing rating.
type HealAction struct {
	Amount int
}

// NewHealAction builds a heal sized to the wizard's healing stat.
func NewHealAction(w *Wizard) HealAction {
	return HealAction{Amount: w.HealingAmount()}
}

func (a HealAction) ActionType() ActionType { return ActionHeal }

func (a HealAction) Name() string { return "Heal" }

func (a HealAction) ManaCost() int { return healManaCost }

func (a HealAction) Target() ActionTarget { return TargetSelf }

// Element on a heal only labels flavor text; heals carry the Life school.
func (a HealAction) Element() Element { return Life }

func (a HealAction) Preview() ActionPreview {
	return ActionPreview{
		Type:     ActionHeal,
		Target:   TargetSelf,
		Element:  Life,
		Accuracy: healAccuracy,
		ManaCost: healManaCost,
		MinValue: float64(int(float64(a.Amount)*healRollFloor + 0.5)),
		MaxValue: float64(int(float64(a.Amount)*(healRollFloor+healRollSpread) + 0.5)),
	}
}

func (a HealAction) Resolve(rng *rand.Rand) Outcome {
	if rng.Float64() > healAccuracy {
		return Outcome{Succeeded: false, Action: ActionHeal}
	}
	roll := healRollFloor + healRollSpread*rng.Float64()
	return Outcome{
		Succeeded: true,
		Action:    ActionHeal,
		Value:     float64(int(float64(a.Amount)*roll + 0.5)),
	}
}

func (a HealAction) SuccessAnnouncement(w *Wizard, value int) string {
	return fmt.Sprintf("%s mends their wounds, restoring %d health!", w.Name, value)
}

func (a HealAction) FailureAnnouncement(w *Wizard) string {
	return fmt.Sprintf("%s's healing ritual slips away!", w.Name)
}

// AvailableActions builds a wizard's full action catalog for a round: one
// cast per spell, a defend on the primary element, and a heal.
func AvailableActions(w *Wizard) []Action {
	actions := make([]Action, 0, len(w.Spells)+2)
	for _, s := range w.Spells {
		actions = append(actions, SpellAction{Spell: s})
	}
	actions = append(actions, DefendAction{Elem: w.PrimaryElement})
	actions = append(actions, NewHealAction(w))
	return actions
}

// AffordableActions filters actions down to those payable with the given
// mana. Callers must offer only affordable actions to the chooser; the
// engine treats an unaffordable action as a contract violation.
func AffordableActions(actions []Action, mana int) []Action {
	out := make([]Action, 0, len(actions))
	for _, a := range actions {
		if a.ManaCost() <= mana {
			out = append(out, a)
		}
	}
	return out
}
