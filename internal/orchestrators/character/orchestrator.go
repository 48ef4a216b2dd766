// Package character implements random character generation and the
// validation rules for storing characters.
package character

import (
	"context"
	"log/slog"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
	charactersvc "github.com/KirkDiggler/rpg-chargen/internal/services/character"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Roller        toolkitdice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// Orchestrator implements charactersvc.Service
type Orchestrator struct {
	charRepo  characterrepo.Repository
	generator *Generator
}

// NewOrchestrator creates a new character orchestrator
func NewOrchestrator(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen, err := NewGenerator(cfg.Roller)
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		charRepo:  cfg.CharacterRepo,
		generator: gen,
	}, nil
}

var _ charactersvc.Service = (*Orchestrator)(nil)

// GenerateRandomCharacter builds a new character. Nothing is stored.
func (o *Orchestrator) GenerateRandomCharacter(
	ctx context.Context,
	_ *charactersvc.GenerateRandomCharacterInput,
) (*charactersvc.GenerateRandomCharacterOutput, error) {
	c, err := o.generator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate character")
	}

	slog.InfoContext(ctx, "Character generated",
		"name", c.Name,
		"race", c.Race,
		"class", c.Class,
		"hit_points", c.HitPoints)

	return &charactersvc.GenerateRandomCharacterOutput{Character: c}, nil
}

// SaveCharacter validates and stores a character. Any ID on the input is
// ignored and a zero level is treated as level 1.
func (o *Orchestrator) SaveCharacter(
	ctx context.Context,
	input *charactersvc.SaveCharacterInput,
) (*charactersvc.SaveCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	c := *input.Character
	c.ID = nil
	if c.Level == 0 {
		c.Level = entities.DefaultLevel
	}

	if err := validateCharacter(&c); err != nil {
		return nil, err
	}

	out, err := o.charRepo.Create(ctx, characterrepo.CreateInput{Character: &c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}

	slog.InfoContext(ctx, "Character saved",
		"character_id", *out.Character.ID,
		"name", out.Character.Name)

	return &charactersvc.SaveCharacterOutput{Character: out.Character}, nil
}

// GetCharacter loads a stored character
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *charactersvc.GetCharacterInput,
) (*charactersvc.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID(input.CharacterID); err != nil {
		return nil, err
	}

	out, err := o.charRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to get character %d", input.CharacterID)
	}

	return &charactersvc.GetCharacterOutput{Character: out.Character}, nil
}

// ListCharacters returns stored characters ordered by ID
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *charactersvc.ListCharactersInput,
) (*charactersvc.ListCharactersOutput, error) {
	if input == nil {
		input = &charactersvc.ListCharactersInput{}
	}

	vb := errors.NewValidationBuilder()
	if input.Limit < 0 {
		vb.Field("limit", "must not be negative")
	}
	if input.Race != "" {
		errors.ValidateEnum("raca", string(input.Race), entities.RaceNames(), vb)
	}
	if input.Class != "" {
		errors.ValidateEnum("classe", string(input.Class), entities.ClassNames(), vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.charRepo.List(ctx, characterrepo.ListInput{
		Limit: input.Limit,
		Race:  input.Race,
		Class: input.Class,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &charactersvc.ListCharactersOutput{Characters: out.Characters}, nil
}

// DeleteCharacter removes a stored character
func (o *Orchestrator) DeleteCharacter(
	ctx context.Context,
	input *charactersvc.DeleteCharacterInput,
) (*charactersvc.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateID(input.CharacterID); err != nil {
		return nil, err
	}

	if _, err := o.charRepo.Delete(ctx, characterrepo.DeleteInput{ID: input.CharacterID}); err != nil {
		if errors.IsNotFound(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to delete character %d", input.CharacterID)
	}

	slog.InfoContext(ctx, "Character deleted", "character_id", input.CharacterID)

	return &charactersvc.DeleteCharacterOutput{}, nil
}

// ClearCharacters removes every stored character
func (o *Orchestrator) ClearCharacters(
	ctx context.Context,
	_ *charactersvc.ClearCharactersInput,
) (*charactersvc.ClearCharactersOutput, error) {
	out, err := o.charRepo.DeleteAll(ctx, characterrepo.DeleteAllInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear characters")
	}

	slog.InfoContext(ctx, "Characters cleared", "deleted", out.Deleted)

	return &charactersvc.ClearCharactersOutput{Deleted: out.Deleted}, nil
}

func validateID(id int64) error {
	if id <= 0 {
		return errors.InvalidArgumentf("character ID must be positive, got %d", id)
	}
	return nil
}

func validateCharacter(c *entities.Character) error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("nome", c.Name, vb)
	errors.ValidateEnum("raca", string(c.Race), entities.RaceNames(), vb)
	errors.ValidateEnum("classe", string(c.Class), entities.ClassNames(), vb)
	if c.Level < 1 {
		vb.Field("nivel", "must be at least 1")
	}
	if c.Class.IsValid() {
		errors.ValidateSubset("pericias", c.Skills, SkillPool(c.Class), skillsPerCharacter, vb)
	}

	return vb.Build()
}
