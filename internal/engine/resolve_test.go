package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeharte/wizard-arena/internal/game"
)

// scriptedAction returns a fixed outcome, letting tests drive the resolution
// pipeline without accuracy rolls.
type scriptedAction struct {
	name    string
	cost    int
	target  game.ActionTarget
	element game.Element
	outcome game.Outcome
}

func (a scriptedAction) ActionType() game.ActionType { return a.outcome.Action }
func (a scriptedAction) Name() string                { return a.name }
func (a scriptedAction) ManaCost() int               { return a.cost }
func (a scriptedAction) Target() game.ActionTarget   { return a.target }
func (a scriptedAction) Element() game.Element       { return a.element }
func (a scriptedAction) Preview() game.ActionPreview {
	return game.ActionPreview{
		Type:     a.outcome.Action,
		Spell:    a.outcome.Spell,
		Target:   a.target,
		Element:  a.element,
		Accuracy: 1,
		ManaCost: a.cost,
	}
}
func (a scriptedAction) Resolve(_ *rand.Rand) game.Outcome {
	return a.outcome
}
func (a scriptedAction) SuccessAnnouncement(w *game.Wizard, value int) string {
	return w.Name + " succeeds"
}
func (a scriptedAction) FailureAnnouncement(w *game.Wizard) string {
	return w.Name + " fails"
}

func testRNG() *rand.Rand { return rand.New(rand.NewSource(1)) }

// neutralStats makes both wizard multipliers exactly 1.0 so damage tests use
// plain numbers: attack solves 0.75*(5/3)^(a^2)=1, defense solves
// 0.9*(14/9)^(d^2)=1.
func neutralStats(gs *GameState) {
	attack := math.Sqrt(math.Log(4.0/3.0) / math.Log(5.0/3.0))
	defense := math.Sqrt(math.Log(1.0/0.9) / math.Log(14.0/9.0))
	for _, ps := range gs.Players {
		ps.Wizard.Attack = attack
		ps.Wizard.Defense = defense
	}
}

func damageSpell(element game.Element, base float64) scriptedAction {
	return scriptedAction{
		name:    "Test Bolt",
		cost:    10,
		target:  game.TargetEnemy,
		element: element,
		outcome: game.Outcome{Succeeded: true, Action: game.ActionCastSpell, Spell: game.SpellDamage, Value: base},
	}
}

func TestPerformAction_InvalidSeat(t *testing.T) {
	gs := statePair(100, 20)

	for _, seat := range []int{-1, 2, 7} {
		_, err := gs.PerformAction(seat, damageSpell(game.Fire, 10), testRNG())
		require.Error(t, err)
	}
	assert.Empty(t, gs.Log, "no state mutated on contract violation")
}

func TestPerformAction_UnaffordableIsContractViolation(t *testing.T) {
	gs := statePair(100, 5)

	_, err := gs.PerformAction(0, damageSpell(game.Fire, 10), testRNG())

	require.ErrorIs(t, err, ErrNotEnoughMana)
	assert.Equal(t, 5, gs.Players[0].CurrentMana)
	assert.Equal(t, 100, gs.Players[1].CurrentHealth)
	assert.Empty(t, gs.Log)
}

func TestPerformAction_UnknownCategoryIsFatal(t *testing.T) {
	gs := statePair(100, 20)
	bogus := scriptedAction{
		name:    "Bogus",
		cost:    1,
		target:  game.TargetEnemy,
		element: game.Fire,
		outcome: game.Outcome{Succeeded: true, Action: game.ActionCastSpell, Spell: game.SpellType("SUMMON")},
	}

	_, err := gs.PerformAction(0, bogus, testRNG())

	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestPerformAction_FailureSpendsNothingButDecays(t *testing.T) {
	gs := statePair(100, 20)
	gs.AddStatusEffect(0, game.StatusEffect{Name: "edge", Kind: game.EffectBuff, Value: 0.2, RemainingTurns: 2})
	gs.AddStatusEffect(1, game.StatusEffect{Name: string(game.Ice), Kind: game.EffectDefense, Value: 0, RemainingTurns: 3})

	miss := damageSpell(game.Fire, 40)
	miss.outcome.Succeeded = false
	announcement, err := gs.PerformAction(0, miss, testRNG())

	require.NoError(t, err, "a missed action is a normal outcome")
	assert.Equal(t, "Alpha fails", announcement)
	assert.Equal(t, 20, gs.Players[0].CurrentMana)
	assert.Equal(t, 100, gs.Players[1].CurrentHealth)

	require.Len(t, gs.Log, 1)
	assert.Equal(t, "Failed", gs.Log[0].Result)
	assert.Equal(t, 0, gs.Log[0].ActorSeat)

	// Decay still ran: actor's buff and defender's shield each lost a turn.
	assert.Equal(t, 1, gs.Players[0].ActiveEffects[0].RemainingTurns)
	assert.Equal(t, 2, gs.Players[1].ActiveEffects[0].RemainingTurns)
}

func TestPerformAction_DamageSpell(t *testing.T) {
	gs := statePair(100, 20)
	neutralStats(gs)

	announcement, err := gs.PerformAction(0, damageSpell(game.Fire, 40), testRNG())

	require.NoError(t, err)
	assert.Equal(t, "Alpha succeeds", announcement)
	assert.Equal(t, 60, gs.Players[1].CurrentHealth)
	assert.Equal(t, 10, gs.Players[0].CurrentMana)

	require.Len(t, gs.Log, 1)
	rec := gs.Log[0]
	assert.Equal(t, 0, rec.ActorSeat)
	assert.Equal(t, game.ActionCastSpell, rec.Type)
	assert.Equal(t, game.TargetEnemy, rec.Target)
	assert.Equal(t, "Dealt 40", rec.Result)
}

func TestPerformAction_HealClampsToMissingHealth(t *testing.T) {
	gs := statePair(100, 20)
	gs.SetHealth(0, 90)
	heal := scriptedAction{
		name:    "Heal",
		cost:    3,
		target:  game.TargetSelf,
		element: game.Life,
		outcome: game.Outcome{Succeeded: true, Action: game.ActionHeal, Value: 50},
	}

	_, err := gs.PerformAction(0, heal, testRNG())

	require.NoError(t, err)
	assert.Equal(t, 100, gs.Players[0].CurrentHealth)
	require.Len(t, gs.Log, 1)
	assert.Equal(t, "Healed 10", gs.Log[0].Result, "log reflects the applied amount, not the roll")
}

func TestPerformAction_DefendRaisesElementShield(t *testing.T) {
	gs := statePair(100, 20)
	defend := scriptedAction{
		name:    "Ice Shield",
		cost:    2,
		target:  game.TargetSelf,
		element: game.Ice,
		outcome: game.Outcome{Succeeded: true, Action: game.ActionDefend},
	}

	_, err := gs.PerformAction(0, defend, testRNG())

	require.NoError(t, err)
	require.Len(t, gs.Players[0].ActiveEffects, 1)
	shield := gs.Players[0].ActiveEffects[0]
	assert.Equal(t, string(game.Ice), shield.Name)
	assert.Equal(t, game.EffectDefense, shield.Kind)
	assert.Equal(t, float64(0), shield.Value)
	// A fresh shield survives its own cast: the actor's defenses do not
	// decay on the actor's action.
	assert.Equal(t, 3, shield.RemainingTurns)
}

func TestPerformAction_BuffOnActorDebuffOnDefender(t *testing.T) {
	gs := statePair(100, 20)

	buff := scriptedAction{
		name:    "Cold Focus",
		cost:    4,
		target:  game.TargetSelf,
		element: game.Ice,
		outcome: game.Outcome{Succeeded: true, Action: game.ActionCastSpell, Spell: game.SpellBuff, Value: 0.25},
	}
	_, err := gs.PerformAction(0, buff, testRNG())
	require.NoError(t, err)

	require.Len(t, gs.Players[0].ActiveEffects, 1)
	applied := gs.Players[0].ActiveEffects[0]
	assert.Equal(t, "Cold Focus", applied.Name)
	assert.Equal(t, game.EffectBuff, applied.Kind)
	assert.Equal(t, 0.25, applied.Value)
	// Buffs start at 4 turns; the actor's own cast immediately decays one.
	assert.Equal(t, 3, applied.RemainingTurns)

	debuff := scriptedAction{
		name:    "False Tell",
		cost:    4,
		target:  game.TargetEnemy,
		element: game.Myth,
		outcome: game.Outcome{Succeeded: true, Action: game.ActionCastSpell, Spell: game.SpellDebuff, Value: 0.3},
	}
	_, err = gs.PerformAction(0, debuff, testRNG())
	require.NoError(t, err)

	require.Len(t, gs.Players[1].ActiveEffects, 1)
	applied = gs.Players[1].ActiveEffects[0]
	assert.Equal(t, game.EffectDebuff, applied.Kind)
	// Debuffs live on the defender, whose buffs/debuffs do not decay on
	// the actor's action: full 3 turns remain.
	assert.Equal(t, 3, applied.RemainingTurns)
}

func TestDecay_IsAsymmetric(t *testing.T) {
	gs := statePair(100, 20)
	gs.AddStatusEffect(0, game.StatusEffect{Name: "actor-buff", Kind: game.EffectBuff, Value: 0.1, RemainingTurns: 2})
	gs.AddStatusEffect(0, game.StatusEffect{Name: string(game.Fire), Kind: game.EffectDefense, Value: 0, RemainingTurns: 2})
	gs.AddStatusEffect(1, game.StatusEffect{Name: "defender-debuff", Kind: game.EffectDebuff, Value: 0.1, RemainingTurns: 2})
	gs.AddStatusEffect(1, game.StatusEffect{Name: string(game.Ice), Kind: game.EffectDefense, Value: 0, RemainingTurns: 2})

	_, err := gs.PerformAction(0, damageSpell(game.Storm, 1), testRNG())
	require.NoError(t, err)

	byName := map[string]int{}
	for _, e := range gs.Players[0].ActiveEffects {
		byName[e.Name] = e.RemainingTurns
	}
	for _, e := range gs.Players[1].ActiveEffects {
		byName[e.Name] = e.RemainingTurns
	}
	assert.Equal(t, 1, byName["actor-buff"], "actor's buff decays")
	assert.Equal(t, 2, byName[string(game.Fire)], "actor's own shield does not decay")
	assert.Equal(t, 2, byName["defender-debuff"], "defender's debuff does not decay")
	assert.Equal(t, 1, byName[string(game.Ice)], "defender's shield decays")
}

func TestDecay_DropsEffectsReachingZero(t *testing.T) {
	gs := statePair(100, 20)
	gs.AddStatusEffect(0, game.StatusEffect{Name: "last-gasp", Kind: game.EffectDebuff, Value: 0.1, RemainingTurns: 1})

	_, err := gs.PerformAction(0, damageSpell(game.Fire, 1), testRNG())
	require.NoError(t, err)

	assert.Empty(t, gs.Players[0].ActiveEffects)
}

func TestDamageValue_WorkedExamples(t *testing.T) {
	// No modifiers: the base roll passes through.
	assert.Equal(t, 50, damageValue(50, 1.0, 1.0, game.Fire, nil))

	// One 0.3 debuff on the actor scales the actor multiplier to 0.7.
	actorMult := effectAdjusted(1.0, nil, []game.StatusEffect{
		{Name: "sap", Kind: game.EffectDebuff, Value: 0.3, RemainingTurns: 2},
	})
	assert.InDelta(t, 0.7, actorMult, 1e-12)
	assert.Equal(t, 35, damageValue(50, actorMult, 1.0, game.Fire, nil))

	// A shield the spell is weak against halves the damage: Fire is weak
	// against Storm. round(35*0.5) = 18.
	shields := []game.StatusEffect{{Name: string(game.Storm), Kind: game.EffectDefense, RemainingTurns: 3}}
	assert.Equal(t, 18, damageValue(50, actorMult, 1.0, game.Fire, shields))
}

func TestDamageValue_ShieldModifiers(t *testing.T) {
	// Fire is strong against Ice, weak against Storm, neutral to Balance.
	ice := []game.StatusEffect{{Name: string(game.Ice), Kind: game.EffectDefense, RemainingTurns: 3}}
	storm := []game.StatusEffect{{Name: string(game.Storm), Kind: game.EffectDefense, RemainingTurns: 3}}
	balance := []game.StatusEffect{{Name: string(game.Balance), Kind: game.EffectDefense, RemainingTurns: 3}}

	assert.Equal(t, 105, damageValue(100, 1.0, 1.0, game.Fire, ice))
	assert.Equal(t, 50, damageValue(100, 1.0, 1.0, game.Fire, storm))
	assert.Equal(t, 90, damageValue(100, 1.0, 1.0, game.Fire, balance))

	// Multiple shields compound multiplicatively: 100 * 1.05 * 0.5 * 0.9.
	all := append(append(append([]game.StatusEffect{}, ice...), storm...), balance...)
	assert.Equal(t, 47, damageValue(100, 1.0, 1.0, game.Fire, all))
}

func TestDamageValue_FloorsAtZero(t *testing.T) {
	debuffed := effectAdjusted(1.0, nil, []game.StatusEffect{
		{Name: "crush", Kind: game.EffectDebuff, Value: 1.5, RemainingTurns: 2},
	})
	assert.Equal(t, 0.0, debuffed, "debuff multiplier floors at zero")
	assert.Equal(t, 0, damageValue(50, debuffed, 1.0, game.Fire, nil))
}

func TestEffectAdjusted_BuffsCompound(t *testing.T) {
	mult := effectAdjusted(1.0,
		[]game.StatusEffect{
			{Name: "a", Kind: game.EffectBuff, Value: 0.5, RemainingTurns: 2},
			{Name: "b", Kind: game.EffectBuff, Value: 0.2, RemainingTurns: 2},
		}, nil)
	assert.InDelta(t, 1.8, mult, 1e-12)
}

func TestPerformAction_EndToEndScenario(t *testing.T) {
	// Two wizards at 100 health and 20 mana; seat 0 casts a 10-mana damage
	// spell that rolls a 40 base with no modifiers in play.
	gs := statePair(100, 20)
	neutralStats(gs)

	announcement, err := gs.PerformAction(0, damageSpell(game.Fire, 40), testRNG())

	require.NoError(t, err)
	assert.NotEmpty(t, announcement)
	assert.Equal(t, 60, gs.Players[1].CurrentHealth)
	assert.Equal(t, 10, gs.Players[0].CurrentMana)
	require.Len(t, gs.Log, 1)
	assert.Equal(t, "Dealt 40", gs.Log[0].Result)
	assert.Nil(t, gs.GetWinner())

	// Health/mana invariants hold after the full pipeline.
	for _, ps := range gs.Players {
		assert.GreaterOrEqual(t, ps.CurrentHealth, 0)
		assert.LessOrEqual(t, ps.CurrentHealth, ps.MaxHealth)
		assert.GreaterOrEqual(t, ps.CurrentMana, 0)
	}
}

func TestPerformAction_LethalDamageEndsMatch(t *testing.T) {
	gs := statePair(100, 20)
	neutralStats(gs)
	gs.SetHealth(1, 30)

	_, err := gs.PerformAction(0, damageSpell(game.Fire, 40), testRNG())

	require.NoError(t, err)
	assert.Equal(t, 0, gs.Players[1].CurrentHealth, "health clamps at zero")
	winner := gs.GetWinner()
	require.NotNil(t, winner)
	assert.Equal(t, "Alpha", winner.Name)
}
