// Package dice implements dice notation parsing and rolling
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-chargen/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// Service defines the interface for dice operations
type Service interface {
	// RollDice parses the notation and rolls it.
	// Returns errors.InvalidArgument for malformed notation
	// Returns errors.OutOfRange for counts or sides outside the allowed bounds
	// Returns errors.Internal when the roller fails
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	Roller toolkitdice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

type orchestrator struct {
	roller toolkitdice.Roller
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller: cfg.Roller,
	}, nil
}

// RollDice rolls the dice described by input.Notation
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	notation, err := ParseNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	rolls, err := o.roller.RollN(notation.Count, notation.Sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", input.Notation)
	}
	if len(rolls) != notation.Count {
		return nil, errors.Internalf("roller returned %d dice, expected %d", len(rolls), notation.Count)
	}

	total := notation.Modifier
	for _, r := range rolls {
		total += r
	}

	slog.InfoContext(ctx, "Dice rolled",
		"notation", input.Notation,
		"rolls", rolls,
		"modifier", notation.Modifier,
		"total", total,
	)

	return &RollDiceOutput{
		Roll: &entities.DiceRoll{
			Notation: input.Notation,
			Result:   total,
			Rolls:    rolls,
			Modifier: notation.Modifier,
		},
	}, nil
}
