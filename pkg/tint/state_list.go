package tint

import (
	"slices"
	"strings"

	"github.com/BrandonKowalski/tintkit/pkg/tint/color"
)

// State is a set of interaction and display states.
type State uint16

const (
	StateEnabled State = 1 << iota
	StateFocused
	StateActivated
	StatePressed
	StateChecked
	StateSelected
)

var stateNames = []struct {
	state State
	name  string
}{
	{StateEnabled, "enabled"},
	{StateFocused, "focused"},
	{StateActivated, "activated"},
	{StatePressed, "pressed"},
	{StateChecked, "checked"},
	{StateSelected, "selected"},
}

func (s State) String() string {
	var names []string
	for _, n := range stateNames {
		if s&n.state != 0 {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// StateSpec matches a State that has every Required bit and no Forbidden bit.
// The zero StateSpec matches anything.
type StateSpec struct {
	Required  State
	Forbidden State
}

func (s StateSpec) Matches(state State) bool {
	return state&s.Required == s.Required && state&s.Forbidden == 0
}

// IsCatchAll reports whether the spec matches every state.
func (s StateSpec) IsCatchAll() bool {
	return s == StateSpec{}
}

type StateColor struct {
	Spec  StateSpec
	Color color.Color
}

// ColorStateList picks a color for a State. Entries are checked in order and
// the first match wins.
type ColorStateList struct {
	entries []StateColor
}

func NewColorStateList(entries ...StateColor) *ColorStateList {
	return &ColorStateList{entries: slices.Clone(entries)}
}

func (l *ColorStateList) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entries in match order.
func (l *ColorStateList) Entries() []StateColor {
	return slices.Clone(l.entries)
}

// ColorFor returns the first entry matching state, or DefaultColor if none match.
func (l *ColorStateList) ColorFor(state State) color.Color {
	for _, e := range l.entries {
		if e.Spec.Matches(state) {
			return e.Color
		}
	}
	return l.DefaultColor()
}

// DefaultColor is the color of the last entry, or Transparent for an empty list.
func (l *ColorStateList) DefaultColor() color.Color {
	if len(l.entries) == 0 {
		return color.Transparent
	}
	return l.entries[len(l.entries)-1].Color
}

// BuildDefaultStateList builds the control state list. Order matters: the
// disabled entry must come first and the catch-all normal entry last.
func BuildDefaultStateList(normal, activated, disabledNormal color.Color) *ColorStateList {
	return NewColorStateList(
		StateColor{Spec: StateSpec{Forbidden: StateEnabled}, Color: disabledNormal},
		StateColor{Spec: StateSpec{Required: StateFocused}, Color: activated},
		StateColor{Spec: StateSpec{Required: StateActivated}, Color: activated},
		StateColor{Spec: StateSpec{Required: StatePressed}, Color: activated},
		StateColor{Spec: StateSpec{Required: StateChecked}, Color: activated},
		StateColor{Spec: StateSpec{Required: StateSelected}, Color: activated},
		StateColor{Spec: StateSpec{}, Color: normal},
	)
}

