package wizardgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukeharte/wizard-arena/internal/game"
)

func validWizard() *game.Wizard {
	return &game.Wizard{
		Name:             "Tower of Shattered Sky",
		PrimaryElement:   game.Ice,
		SecondaryElement: game.Balance,
		Attack:           0.32,
		Defense:          0.78,
		Health:           0.70,
		Healing:          0.20,
		Arcane:           0.60,
	}
}

func validSpells() []game.Spell {
	return []game.Spell{
		{Name: "Pressure Drop Pulse", Type: game.SpellDamage, Element: game.Balance, Strength: 0.34},
		{Name: "Cold Focus", Type: game.SpellBuff, Element: game.Ice, Strength: 0.59},
		{Name: "Hiss Drown", Type: game.SpellDebuff, Element: game.Balance, Strength: 0.78},
		{Name: "Mute Strike", Type: game.SpellDamage, Element: game.Ice, Strength: 0.92},
	}
}

func TestValidateStats(t *testing.T) {
	require.NoError(t, ValidateStats(validWizard()))

	w := validWizard()
	w.Name = "  "
	assert.ErrorIs(t, ValidateStats(w), ErrInvalidGeneration)

	w = validWizard()
	w.SecondaryElement = "LAVA"
	assert.ErrorIs(t, ValidateStats(w), ErrInvalidGeneration)

	w = validWizard()
	w.SecondaryElement = w.PrimaryElement
	assert.ErrorIs(t, ValidateStats(w), ErrInvalidGeneration)

	w = validWizard()
	w.Arcane = 1.2
	assert.ErrorIs(t, ValidateStats(w), ErrInvalidGeneration)

	w = validWizard()
	w.Attack = -0.1
	assert.ErrorIs(t, ValidateStats(w), ErrInvalidGeneration)
}

func TestValidateSpells(t *testing.T) {
	require.NoError(t, ValidateSpells(validSpells()))

	assert.ErrorIs(t, ValidateSpells(validSpells()[:3]), ErrInvalidGeneration)

	spells := validSpells()
	spells[0].Type = game.SpellBuff
	spells[3].Type = game.SpellDebuff
	assert.ErrorIs(t, ValidateSpells(spells), ErrInvalidGeneration, "no damage spell")

	spells = validSpells()
	spells[1].Strength = 0
	assert.ErrorIs(t, ValidateSpells(spells), ErrInvalidGeneration)

	spells = validSpells()
	spells[2].Element = "VOID"
	assert.ErrorIs(t, ValidateSpells(spells), ErrInvalidGeneration)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n[1,2]\n```", "[1,2]"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, extractJSON(c.in))
	}
}
