package dice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Notation bounds
const (
	MinCount = 1
	MaxCount = 100
	MinSides = 2
	MaxSides = 100
)

var (
	// NdS with an optional signed modifier, e.g. "3d6", "1d20+5", "2d8-1"
	notationRegex = regexp.MustCompile(`^(\d+)[dD](\d+)([+-]\d+)?$`)

	// ErrInvalidNotation matches (via errors.Is) malformed notation errors
	ErrInvalidNotation = errors.InvalidArgument("invalid dice notation")

	// ErrOutOfRange matches (via errors.Is) well-formed notation with bad bounds
	ErrOutOfRange = errors.OutOfRange("dice notation out of range")
)

// Notation is a parsed and validated dice expression
type Notation struct {
	Count    int
	Sides    int
	Modifier int
}

// ParseNotation parses "NdS[+M|-M]". Whitespace anywhere in the input is
// ignored. Malformed input returns an INVALID_ARGUMENT error, well-formed
// input with a count outside [1,100] or sides outside [2,100] returns
// OUT_OF_RANGE.
func ParseNotation(notation string) (*Notation, error) {
	compact := strings.Join(strings.Fields(notation), "")

	matches := notationRegex.FindStringSubmatch(compact)
	if matches == nil {
		return nil, errors.InvalidArgumentf("invalid dice notation: %q (expected format: NdS, NdS+M or NdS-M)", notation)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil || count < MinCount || count > MaxCount {
		return nil, errors.OutOfRangef("dice count must be between %d and %d", MinCount, MaxCount).
			WithMeta("notation", notation)
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil || sides < MinSides || sides > MaxSides {
		return nil, errors.OutOfRangef("die size must be between %d and %d", MinSides, MaxSides).
			WithMeta("notation", notation)
	}

	modifier := 0
	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return nil, errors.OutOfRangef("modifier %s is too large", matches[3]).
				WithMeta("notation", notation)
		}
	}

	return &Notation{
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
	}, nil
}

// Min returns the lowest possible total
func (n *Notation) Min() int {
	return n.Count + n.Modifier
}

// Max returns the highest possible total
func (n *Notation) Max() int {
	return n.Count*n.Sides + n.Modifier
}
