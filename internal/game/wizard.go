package game

import "math"

// SpellType classifies what a spell does when it lands.
type SpellType string

const (
	SpellDamage SpellType = "DAMAGE"
	SpellBuff   SpellType = "BUFF"
	SpellDebuff SpellType = "DEBUFF"
)

func (s SpellType) Valid() bool {
	switch s {
	case SpellDamage, SpellBuff, SpellDebuff:
		return true
	}
	return false
}

// Spell is one castable spell in a wizard's loadout. Strength is a 0-1
// power rating produced by the spell generator; all numeric effects are
// derived from it.
type Spell struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        SpellType `json:"spell_type"`
	Element     Element   `json:"element"`
	Strength    float64   `json:"strength"`
}

// Wizard is a combatant's immutable base-stat record. The five 0-1 ratings
// come from the stats generator; everything the combat engine consumes is
// derived from them through the methods below. The engine never mutates a
// Wizard.
type Wizard struct {
	Name             string  `json:"name"`
	PrimaryElement   Element `json:"primary_element"`
	SecondaryElement Element `json:"secondary_element"`
	Attack           float64 `json:"attack"`
	Defense          float64 `json:"defense"`
	Health           float64 `json:"health"`
	Healing          float64 `json:"healing"`
	Arcane           float64 `json:"arcane"`
	CombatStyle      string  `json:"combat_style"`
	Spells           []Spell `json:"spells,omitempty"`
}

// MaxHealth is 500 * 2^(health^2), giving 500 at the floor and 1000 at the cap.
func (w *Wizard) MaxHealth() int {
	return int(math.Round(500 * math.Pow(2, w.Health*w.Health)))
}

// DamageMultiplier scales outgoing damage: 0.75 * (5/3)^(attack^2).
func (w *Wizard) DamageMultiplier() float64 {
	return 0.75 * math.Pow(5.0/3.0, w.Attack*w.Attack)
}

// DamageReduction scales incoming damage: 0.9 * (14/9)^(defense^2).
// Counter-intuitively this grows with defense; the defender multiplier is
// balanced against the attacker's in the damage formula.
func (w *Wizard) DamageReduction() float64 {
	return 0.9 * math.Pow(14.0/9.0, w.Defense*w.Defense)
}

// HealingAmount is the base heal value: 150 * (5/3)^(healing^1.8).
func (w *Wizard) HealingAmount() int {
	return int(math.Round(150 * math.Pow(5.0/3.0, math.Pow(w.Healing, 1.8))))
}

// StartingMana is 5 * 2^(arcane^1.3).
func (w *Wizard) StartingMana() int {
	return int(math.Round(5 * math.Pow(2, math.Pow(w.Arcane, 1.3))))
}

// ManaPerRound is tiered on arcane: 2 up to 0.6, 3 up to 0.85, 4 above.
func (w *Wizard) ManaPerRound() int {
	switch {
	case w.Arcane > 0.85:
		return 4
	case w.Arcane > 0.6:
		return 3
	default:
		return 2
	}
}
