package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive span of indices. Ranges returned by ParseRange always
// satisfy 0 <= Start <= End <= MaxIndex.
type Range struct {
	Start int
	End   int
}

func (r Range) String() string {
	return fmt.Sprintf("[%02d, %02d]", r.Start, r.End)
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

// ParseRange parses text like "00-05" into a Range. Zero-padding is accepted
// but not required. Negative indices are not supported: a leading dash is
// rejected along with any other text which doesn't split into exactly two
// fields.
func ParseRange(text string) (Range, error) {
	if text == "" {
		return Range{}, invalid("range must not be empty")
	}

	fields := strings.Split(text, "-")
	if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
		return Range{}, invalid("range must contain exactly a start and end separated by one dash")
	}

	start, err := parseIndex(fields[0])
	if err != nil {
		return Range{}, err
	}

	end, err := parseIndex(fields[1])
	if err != nil {
		return Range{}, err
	}

	if start > end {
		return Range{}, invalid("start index exceeds end index")
	}

	// No need to check end < 0; it's at least start.
	if start < 0 || start >= Capacity {
		return Range{}, &OutOfRangeError{Index: start, Max: MaxIndex}
	}
	if end >= Capacity {
		return Range{}, &OutOfRangeError{Index: end, Max: MaxIndex}
	}

	return Range{Start: start, End: end}, nil
}

func parseIndex(text string) (int, error) {
	i, err := strconv.ParseInt(text, 10, 0)
	if err != nil {
		return 0, &ParseError{Text: text, Err: err}
	}
	return int(i), nil
}
