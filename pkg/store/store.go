package store

import (
	"github.com/adammck/colourstore/pkg/colour"
)

const (
	// Capacity is the number of slots in every Store.
	Capacity = 100

	// MaxIndex is the highest valid index.
	MaxIndex = Capacity - 1
)

// Store holds one colour per index. The zero value has every slot Grey, same
// as New.
type Store struct {
	slots [Capacity]colour.Colour
}

func New() *Store {
	s := &Store{}
	for i := range s.slots {
		s.slots[i] = colour.Grey
	}
	return s
}

// Store assigns the given colour to every index in the range (e.g. "34-78"),
// except those which already hold a colour of equal or higher priority. So
// writes never downgrade a slot, and repeating a write changes nothing.
//
// Nothing is written unless the range and colour are both valid.
func (s *Store) Store(rangeText string, c colour.Colour) error {
	r, err := ParseRange(rangeText)
	if err != nil {
		return err
	}

	if !c.Valid() {
		return invalid("unknown colour")
	}

	// This is a linear scan over at most Capacity slots. Since that's small
	// and fixed, there's no need for anything cleverer.
	for i := r.Start; i <= r.End; i++ {
		if c.Outranks(s.slots[i]) {
			s.slots[i] = c
		}
	}

	return nil
}

// Get returns the colour at the given index (e.g. "07"). Indices which have
// never been written are Grey.
func (s *Store) Get(indexText string) (colour.Colour, error) {
	if indexText == "" {
		return colour.Grey, invalid("index must not be empty")
	}

	i, err := parseIndex(indexText)
	if err != nil {
		return colour.Grey, err
	}

	if i < 0 || i >= Capacity {
		return colour.Grey, &OutOfRangeError{Index: i, Max: MaxIndex}
	}

	return s.slots[i], nil
}
