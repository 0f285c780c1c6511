package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeharte/wizard-arena/internal/game"
)

func TestEnemies_AllEntriesWellFormed(t *testing.T) {
	enemies := Enemies()
	require.Len(t, enemies, 14)

	seen := map[string]bool{}
	for _, e := range enemies {
		assert.NotEmpty(t, e.Name)
		assert.False(t, seen[e.Name], "duplicate enemy name %q", e.Name)
		seen[e.Name] = true

		assert.True(t, e.PrimaryElement.Valid(), "%s primary element", e.Name)
		assert.True(t, e.SecondaryElement.Valid(), "%s secondary element", e.Name)
		assert.NotEqual(t, e.PrimaryElement, e.SecondaryElement, "%s elements must differ", e.Name)
		assert.NotEmpty(t, e.CombatStyle, "%s combat style", e.Name)
		assert.NotEmpty(t, e.Preview, "%s preview", e.Name)

		for _, stat := range []float64{e.Attack, e.Defense, e.Health, e.Healing, e.Arcane} {
			assert.GreaterOrEqual(t, stat, 0.0)
			assert.LessOrEqual(t, stat, 1.0)
		}

		require.Len(t, e.Spells, 4, "%s spell count", e.Name)
		damage := 0
		for _, s := range e.Spells {
			assert.NotEmpty(t, s.Name)
			assert.True(t, s.Type.Valid(), "%s spell %s type", e.Name, s.Name)
			assert.True(t, s.Element.Valid(), "%s spell %s element", e.Name, s.Name)
			assert.Greater(t, s.Strength, 0.0)
			assert.LessOrEqual(t, s.Strength, 1.0)
			if s.Type == game.SpellDamage {
				damage++
			}
		}
		assert.GreaterOrEqual(t, damage, 1, "%s needs a damage spell", e.Name)
	}
}

func TestEnemies_ReturnsCopies(t *testing.T) {
	a := Enemies()
	a[0].Name = "mutated"
	a[0].Spells[0].Strength = 9.9

	b := Enemies()
	assert.Equal(t, "Apex Drift Igniter", b[0].Name)
	assert.Equal(t, 0.86, b[0].Spells[0].Strength)
}

func TestFindByName(t *testing.T) {
	e, ok := FindByName("  apex drift igniter ")
	require.True(t, ok)
	assert.Equal(t, "Apex Drift Igniter", e.Name)
	assert.Equal(t, game.Fire, e.PrimaryElement)

	_, ok = FindByName("no such wizard")
	assert.False(t, ok)
}
