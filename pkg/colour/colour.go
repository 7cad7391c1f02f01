package colour

import (
	"fmt"
	"strings"
)

// Colour is the label stored against each slot of a Store. Colours are only
// ever compared by rank; see Outranks.
type Colour uint8

const (
	// The zero value. Every slot starts out Grey, and any other colour will
	// replace it.
	Grey Colour = iota

	Blue
	Green
	Red
	Yellow
)

// ranks is the priority of each colour. Lower wins. This is deliberately not
// derived from the constant values above.
var ranks = [...]int{
	Yellow: 0,
	Red:    1,
	Green:  2,
	Blue:   3,
	Grey:   4,
}

var names = [...]string{
	Grey:   "GREY",
	Blue:   "BLUE",
	Green:  "GREEN",
	Red:    "RED",
	Yellow: "YELLOW",
}

// ByPriority returns every valid colour, highest priority first.
func ByPriority() []Colour {
	return []Colour{Yellow, Red, Green, Blue, Grey}
}

func (c Colour) Valid() bool {
	return int(c) < len(ranks)
}

// Rank returns the priority of the colour, where zero is the highest. The bool
// is false if the colour is not one of the defined values.
func (c Colour) Rank() (int, bool) {
	if !c.Valid() {
		return 0, false
	}
	return ranks[c], true
}

// Outranks returns true if c has strictly higher priority than other. Equal
// colours never outrank each other, and an invalid colour neither outranks nor
// is outranked by anything.
func (c Colour) Outranks(other Colour) bool {
	a, ok := c.Rank()
	if !ok {
		return false
	}
	b, ok := other.Rank()
	if !ok {
		return false
	}
	return a < b
}

func (c Colour) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Colour(%d)", c)
	}
	return names[c]
}

// Parse returns the colour with the given name, ignoring case.
func Parse(s string) (Colour, error) {
	for i, n := range names {
		if strings.EqualFold(s, n) {
			return Colour(i), nil
		}
	}
	return Grey, fmt.Errorf("unknown colour: %q", s)
}
