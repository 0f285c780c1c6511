package game

import "fmt"

// EffectKind classifies an active status effect.
type EffectKind string

const (
	EffectBuff    EffectKind = "BUFF"
	EffectDebuff  EffectKind = "DEBUFF"
	EffectDefense EffectKind = "DEFENSE"
)

// StatusEffect is a named, timed modifier attached to one combatant. A seat
// never carries two effects with the same name: re-applying a name refreshes
// the existing effect in place.
type StatusEffect struct {
	Name           string     `json:"name"`
	Kind           EffectKind `json:"kind"`
	Value          float64    `json:"value"`
	RemainingTurns int        `json:"remaining_turns"`
}

func (e StatusEffect) IsBuff() bool    { return e.Kind == EffectBuff }
func (e StatusEffect) IsDebuff() bool  { return e.Kind == EffectDebuff }
func (e StatusEffect) IsDefense() bool { return e.Kind == EffectDefense }

func (e StatusEffect) String() string {
	return fmt.Sprintf("%s [%s] value=%g turns=%d", e.Name, e.Kind, e.Value, e.RemainingTurns)
}
