package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedStats_RangeEndpoints(t *testing.T) {
	floor := &Wizard{Name: "Floor"}
	cap := &Wizard{Name: "Cap", Attack: 1, Defense: 1, Health: 1, Healing: 1, Arcane: 1}

	assert.Equal(t, 500, floor.MaxHealth())
	assert.Equal(t, 1000, cap.MaxHealth())

	assert.InDelta(t, 0.75, floor.DamageMultiplier(), 1e-12)
	assert.InDelta(t, 1.25, cap.DamageMultiplier(), 1e-12)

	assert.InDelta(t, 0.9, floor.DamageReduction(), 1e-12)
	assert.InDelta(t, 1.4, cap.DamageReduction(), 1e-12)

	assert.Equal(t, 150, floor.HealingAmount())
	assert.Equal(t, 250, cap.HealingAmount())

	assert.Equal(t, 5, floor.StartingMana())
	assert.Equal(t, 10, cap.StartingMana())
}

func TestDerivedStats_MidpointFormulas(t *testing.T) {
	w := &Wizard{Attack: 0.5, Defense: 0.5, Health: 0.5, Healing: 0.5, Arcane: 0.5}

	assert.Equal(t, int(math.Round(500*math.Pow(2, 0.25))), w.MaxHealth())
	assert.InDelta(t, 0.75*math.Pow(5.0/3.0, 0.25), w.DamageMultiplier(), 1e-12)
	assert.InDelta(t, 0.9*math.Pow(14.0/9.0, 0.25), w.DamageReduction(), 1e-12)
	assert.Equal(t, int(math.Round(150*math.Pow(5.0/3.0, math.Pow(0.5, 1.8)))), w.HealingAmount())
	assert.Equal(t, int(math.Round(5*math.Pow(2, math.Pow(0.5, 1.3)))), w.StartingMana())
}

func TestManaPerRound_Tiers(t *testing.T) {
	cases := []struct {
		arcane float64
		want   int
	}{
		{0, 2},
		{0.6, 2},
		{0.61, 3},
		{0.85, 3},
		{0.86, 4},
		{1, 4},
	}
	for _, tc := range cases {
		w := &Wizard{Arcane: tc.arcane}
		assert.Equal(t, tc.want, w.ManaPerRound(), "arcane %g", tc.arcane)
	}
}
