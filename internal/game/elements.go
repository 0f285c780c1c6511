package game

import (
	"fmt"
	"strings"
)

// Element identifies one of the seven spell schools. Every element is strong
// against exactly two others and weak against exactly two others; remaining
// matchups are neutral.
type Element string

const (
	Fire    Element = "FIRE"
	Ice     Element = "ICE"
	Storm   Element = "STORM"
	Life    Element = "LIFE"
	Death   Element = "DEATH"
	Myth    Element = "MYTH"
	Balance Element = "BALANCE"
)

type elementInfo struct {
	DisplayName string
	Description string
	Strengths   []Element
	Weaknesses  []Element
	Accuracy    float64
}

var elementTable = map[Element]elementInfo{
	Fire: {
		DisplayName: "Fire",
		Description: "Represents destruction, passion, and energy.",
		Strengths:   []Element{Ice, Death},
		Weaknesses:  []Element{Storm, Myth},
		Accuracy:    0.75,
	},
	Ice: {
		DisplayName: "Ice",
		Description: "Represents control, patience, and slow movements.",
		Strengths:   []Element{Storm, Myth},
		Weaknesses:  []Element{Fire, Life},
		Accuracy:    0.8,
	},
	Storm: {
		DisplayName: "Storm",
		Description: "Represents chaos, unpredictability, and raw power.",
		Strengths:   []Element{Fire, Life},
		Weaknesses:  []Element{Ice, Balance},
		Accuracy:    0.7,
	},
	Life: {
		DisplayName: "Life",
		Description: "Represents healing, vitality, and growth.",
		Strengths:   []Element{Death, Myth},
		Weaknesses:  []Element{Storm, Ice},
		Accuracy:    0.9,
	},
	Death: {
		DisplayName: "Death",
		Description: "Represents decay, sacrifice, and inevitability.",
		Strengths:   []Element{Life, Balance},
		Weaknesses:  []Element{Fire, Myth},
		Accuracy:    0.85,
	},
	Myth: {
		DisplayName: "Myth",
		Description: "Represents illusions, trickery, and ancient power.",
		Strengths:   []Element{Fire, Death},
		Weaknesses:  []Element{Ice, Life},
		Accuracy:    0.8,
	},
	Balance: {
		DisplayName: "Balance",
		Description: "Represents harmony, control, and versatility.",
		Strengths:   []Element{Storm, Myth},
		Weaknesses:  []Element{Death, Life},
		Accuracy:    0.85,
	},
}

// Elements lists every element in a stable order.
func Elements() []Element {
	return []Element{Fire, Ice, Storm, Life, Death, Myth, Balance}
}

func (e Element) Valid() bool {
	_, ok := elementTable[e]
	return ok
}

func (e Element) DisplayName() string { return elementTable[e].DisplayName }

func (e Element) Description() string { return elementTable[e].Description }

// Accuracy is the base hit chance of actions carried by this element.
func (e Element) Accuracy() float64 { return elementTable[e].Accuracy }

func (e Element) Strengths() []Element { return elementTable[e].Strengths }

func (e Element) Weaknesses() []Element { return elementTable[e].Weaknesses }

// StrongAgainst reports whether other is listed among e's strengths.
func (e Element) StrongAgainst(other Element) bool {
	for _, s := range elementTable[e].Strengths {
		if s == other {
			return true
		}
	}
	return false
}

// WeakAgainst reports whether other is listed among e's weaknesses.
func (e Element) WeakAgainst(other Element) bool {
	for _, w := range elementTable[e].Weaknesses {
		if w == other {
			return true
		}
	}
	return false
}

// ParseElement resolves a case-insensitive element name.
func ParseElement(s string) (Element, error) {
	e := Element(strings.ToUpper(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", fmt.Errorf("unknown element %q", s)
	}
	return e, nil
}
