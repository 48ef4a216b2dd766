package dice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/dice"
)

func TestParseNotation(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected dice.Notation
	}{
		{"single die", "1d20", dice.Notation{Count: 1, Sides: 20}},
		{"no modifier", "3d6", dice.Notation{Count: 3, Sides: 6}},
		{"positive modifier", "1d20+5", dice.Notation{Count: 1, Sides: 20, Modifier: 5}},
		{"negative modifier", "2d8-1", dice.Notation{Count: 2, Sides: 8, Modifier: -1}},
		{"whitespace stripped", " 2 d 6 + 3 ", dice.Notation{Count: 2, Sides: 6, Modifier: 3}},
		{"upper case d", "4D6", dice.Notation{Count: 4, Sides: 6}},
		{"bounds inclusive", "100d100", dice.Notation{Count: 100, Sides: 100}},
		{"explicit zero modifier", "1d4+0", dice.Notation{Count: 1, Sides: 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := dice.ParseNotation(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, *n)
		})
	}
}

func TestParseNotation_InvalidNotation(t *testing.T) {
	inputs := []string{"invalid", "", "   ", "d20", "3d", "2x6", "1d20+", "1d20+5abc", "abc1d20", "-1d6", "1d6*2", "1.5d6"}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := dice.ParseNotation(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, dice.ErrInvalidNotation)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestParseNotation_OutOfRange(t *testing.T) {
	testCases := []struct {
		input   string
		message string
	}{
		{"0d6", "dice count must be between 1 and 100"},
		{"101d6", "dice count must be between 1 and 100"},
		{"99999999999999999999d6", "dice count must be between 1 and 100"},
		{"1d1", "die size must be between 2 and 100"},
		{"1d0", "die size must be between 2 and 100"},
		{"1d101", "die size must be between 2 and 100"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			_, err := dice.ParseNotation(tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, dice.ErrOutOfRange)
			assert.NotErrorIs(t, err, dice.ErrInvalidNotation)
			assert.Equal(t, tc.message, errors.GetMessage(err))
		})
	}
}

func TestParseNotation_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(dice.MinCount, dice.MaxCount).Draw(rt, "count")
		sides := rapid.IntRange(dice.MinSides, dice.MaxSides).Draw(rt, "sides")
		modifier := rapid.IntRange(-50, 50).Draw(rt, "modifier")

		input := fmt.Sprintf("%dd%d", count, sides)
		if modifier != 0 {
			input += fmt.Sprintf("%+d", modifier)
		}

		n, err := dice.ParseNotation(input)
		require.NoError(rt, err)
		assert.Equal(rt, dice.Notation{Count: count, Sides: sides, Modifier: modifier}, *n)
		assert.Equal(rt, count+modifier, n.Min())
		assert.Equal(rt, count*sides+modifier, n.Max())
	})
}
