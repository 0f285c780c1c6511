package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSpell(spellType SpellType, strength float64) Spell {
	return Spell{
		Name:        "Test Spell",
		Description: "A spell for tests.",
		Type:        spellType,
		Element:     Fire,
		Strength:    strength,
	}
}

func TestSpellAction_ManaCostScalesWithStrength(t *testing.T) {
	assert.Equal(t, 1, SpellAction{Spell: sampleSpell(SpellDamage, 0)}.ManaCost())
	assert.Equal(t, 6, SpellAction{Spell: sampleSpell(SpellDamage, 0.5)}.ManaCost())
	assert.Equal(t, 10, SpellAction{Spell: sampleSpell(SpellDamage, 1)}.ManaCost())
}

func TestSpellAction_TargetByType(t *testing.T) {
	assert.Equal(t, TargetEnemy, SpellAction{Spell: sampleSpell(SpellDamage, 0.5)}.Target())
	assert.Equal(t, TargetEnemy, SpellAction{Spell: sampleSpell(SpellDebuff, 0.5)}.Target())
	assert.Equal(t, TargetSelf, SpellAction{Spell: sampleSpell(SpellBuff, 0.5)}.Target())
}

func TestSpellAction_ResolveDeterministicForSeed(t *testing.T) {
	action := SpellAction{Spell: sampleSpell(SpellDamage, 0.8)}

	a := action.Resolve(rand.New(rand.NewSource(7)))
	b := action.Resolve(rand.New(rand.NewSource(7)))

	assert.Equal(t, a, b, "same seed must replay the same outcome")
}

func TestSpellAction_DamageRollWithinRange(t *testing.T) {
	action := SpellAction{Spell: sampleSpell(SpellDamage, 0.8)}
	rng := rand.New(rand.NewSource(3))

	// strength 0.8: rolls land in [0.85, 1.15] * 96.
	lo, hi := 81.0, 111.0
	for i := 0; i < 200; i++ {
		out := action.Resolve(rng)
		if !out.Succeeded {
			continue
		}
		require.Equal(t, ActionCastSpell, out.Action)
		require.Equal(t, SpellDamage, out.Spell)
		assert.GreaterOrEqual(t, out.Value, lo)
		assert.LessOrEqual(t, out.Value, hi)
		assert.Equal(t, out.Value, float64(int(out.Value)), "damage rolls are whole numbers")
	}
}

func TestSpellAction_EffectMagnitudeWithinRange(t *testing.T) {
	action := SpellAction{Spell: sampleSpell(SpellBuff, 0.6)}
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 200; i++ {
		out := action.Resolve(rng)
		if !out.Succeeded {
			continue
		}
		require.Equal(t, SpellBuff, out.Spell)
		assert.GreaterOrEqual(t, out.Value, 0.6*0.35)
		assert.LessOrEqual(t, out.Value, 0.6*0.5)
	}
}

func TestSpellAction_AccuracyFromElement(t *testing.T) {
	action := SpellAction{Spell: sampleSpell(SpellDamage, 0.5)}
	rng := rand.New(rand.NewSource(11))

	misses := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		if !action.Resolve(rng).Succeeded {
			misses++
		}
	}
	// Fire accuracy is 0.75; expect roughly a quarter of casts to miss.
	rate := float64(misses) / trials
	assert.InDelta(t, 0.25, rate, 0.05)
}

func TestHealAction_RollScalesHealingAmount(t *testing.T) {
	w := &Wizard{Name: "Mender", Healing: 1}
	action := NewHealAction(w)
	require.Equal(t, 250, action.Amount)

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		out := action.Resolve(rng)
		if !out.Succeeded {
			continue
		}
		require.Equal(t, ActionHeal, out.Action)
		assert.GreaterOrEqual(t, out.Value, 200.0)
		assert.LessOrEqual(t, out.Value, 300.0)
	}
}

func TestDefendAction_Resolve(t *testing.T) {
	action := DefendAction{Elem: Ice}

	assert.Equal(t, ActionDefend, action.ActionType())
	assert.Equal(t, TargetSelf, action.Target())
	assert.Equal(t, Ice, action.Element())
	assert.Equal(t, 2, action.ManaCost())

	out := action.Resolve(rand.New(rand.NewSource(1)))
	assert.Equal(t, ActionDefend, out.Action)
}

func TestAvailableActions_FullCatalog(t *testing.T) {
	w := &Wizard{
		Name:           "Caster",
		PrimaryElement: Storm,
		Spells: []Spell{
			sampleSpell(SpellDamage, 0.9),
			sampleSpell(SpellBuff, 0.4),
		},
	}

	actions := AvailableActions(w)

	require.Len(t, actions, 4)
	assert.Equal(t, ActionCastSpell, actions[0].ActionType())
	assert.Equal(t, ActionCastSpell, actions[1].ActionType())
	assert.Equal(t, ActionDefend, actions[2].ActionType())
	assert.Equal(t, Storm, actions[2].Element())
	assert.Equal(t, ActionHeal, actions[3].ActionType())
}

func TestAffordableActions_FiltersByMana(t *testing.T) {
	w := &Wizard{
		Name:           "Caster",
		PrimaryElement: Storm,
		Spells: []Spell{
			sampleSpell(SpellDamage, 1),   // cost 10
			sampleSpell(SpellDamage, 0.1), // cost 2
		},
	}
	actions := AvailableActions(w)

	affordable := AffordableActions(actions, 3)

	// The 10-cost spell drops out; the cheap spell, defend (2) and heal (3) stay.
	require.Len(t, affordable, 3)
	for _, a := range affordable {
		assert.LessOrEqual(t, a.ManaCost(), 3)
	}

	assert.Empty(t, AffordableActions(actions, 0))
}
