package chooser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeharte/wizard-arena/internal/engine"
	"github.com/lukeharte/wizard-arena/internal/game"
)

func testState(name string, current, max int) *engine.PlayerState {
	return &engine.PlayerState{
		Wizard:        &game.Wizard{Name: name, PrimaryElement: game.Ice, SecondaryElement: game.Balance},
		MaxHealth:     max,
		CurrentHealth: current,
		CurrentMana:   20,
	}
}

func damageAction(strength float64) game.Action {
	return game.SpellAction{Spell: game.Spell{Name: "Bolt", Type: game.SpellDamage, Element: game.Ice, Strength: strength}}
}

func TestHeuristic_PrefersStrongerDamage(t *testing.T) {
	h := NewHeuristic()
	self := testState("Self", 800, 800)
	enemy := testState("Enemy", 800, 800)

	actions := []game.Action{damageAction(0.3), damageAction(0.9), damageAction(0.5)}
	idx, err := h.Choose(self, enemy, actions, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestHeuristic_HealsWhenLow(t *testing.T) {
	h := NewHeuristic()
	self := testState("Self", 100, 800)
	enemy := testState("Enemy", 800, 800)

	actions := []game.Action{
		damageAction(0.9),
		game.HealAction{Amount: 200},
	}
	idx, err := h.Choose(self, enemy, actions, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestHeuristic_IgnoresHealAtFullHealth(t *testing.T) {
	h := NewHeuristic()
	self := testState("Self", 800, 800)
	enemy := testState("Enemy", 800, 800)

	actions := []game.Action{
		game.HealAction{Amount: 200},
		damageAction(0.5),
	}
	idx, err := h.Choose(self, enemy, actions, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "a heal restores nothing at full health")
}

func TestHeuristic_SkipsActiveShield(t *testing.T) {
	h := NewHeuristic()
	self := testState("Self", 800, 800)
	self.ActiveEffects = []game.StatusEffect{
		{Name: "ICE", Kind: game.EffectDefense, Value: 1, RemainingTurns: 2},
	}
	enemy := testState("Enemy", 800, 800)

	actions := []game.Action{
		game.DefendAction{Elem: game.Ice},
		damageAction(0.2),
	}
	idx, err := h.Choose(self, enemy, actions, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "raising a second shield wastes the turn")
}

func TestHeuristic_SkipsRedundantDebuff(t *testing.T) {
	h := NewHeuristic()
	self := testState("Self", 800, 800)
	enemy := testState("Enemy", 800, 800)
	enemy.ActiveEffects = []game.StatusEffect{
		{Name: "Pollen Lull", Kind: game.EffectDebuff, Value: 0.3, RemainingTurns: 2},
	}

	actions := []game.Action{
		game.SpellAction{Spell: game.Spell{Name: "Pollen Lull", Type: game.SpellDebuff, Element: game.Life, Strength: 0.9}},
		damageAction(0.2),
	}
	idx, err := h.Choose(self, enemy, actions, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestHeuristic_TieBreaksOnManaCost(t *testing.T) {
	h := NewHeuristic()
	self := testState("Self", 800, 800)
	enemy := testState("Enemy", 800, 800)

	// Same strength, same element: identical scores, so the cheaper
	// (equal-cost) earlier index wins.
	actions := []game.Action{damageAction(0.6), damageAction(0.6)}
	idx, err := h.Choose(self, enemy, actions, nil, true)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestHeuristic_EmptyActions(t *testing.T) {
	h := NewHeuristic()
	_, err := h.Choose(testState("Self", 1, 1), testState("Enemy", 1, 1), nil, nil, true)
	assert.Error(t, err)
}

func TestActionIndexPattern(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"action": 2}`, "2"},
		{`{'action': 0}`, "0"},
		{"```json\n{\"action\":11}\n```", "11"},
	}
	for _, c := range cases {
		m := actionIndexPattern.FindStringSubmatch(c.in)
		require.NotNil(t, m, c.in)
		assert.Equal(t, c.want, m[1])
	}
}
