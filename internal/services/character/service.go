// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-chargen/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
)

// Service defines the interface for character operations
type Service interface {
	// Generation
	GenerateRandomCharacter(ctx context.Context, input *GenerateRandomCharacterInput) (*GenerateRandomCharacterOutput, error)

	// Stored character operations
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)
	ClearCharacters(ctx context.Context, input *ClearCharactersInput) (*ClearCharactersOutput, error)
}

// GenerateRandomCharacterInput defines the request for generating a character
type GenerateRandomCharacterInput struct{}

// GenerateRandomCharacterOutput defines the response for generating a character
type GenerateRandomCharacterOutput struct {
	Character *entities.Character
}

// SaveCharacterInput defines the request for persisting a character
type SaveCharacterInput struct {
	Character *entities.Character
}

// SaveCharacterOutput defines the response for persisting a character
type SaveCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID int64
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the request for listing characters.
// Zero values mean no limit and no filter.
type ListCharactersInput struct {
	Limit int
	Race  entities.Race
	Class entities.Class
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID int64
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct{}

// ClearCharactersInput defines the request for deleting every character
type ClearCharactersInput struct{}

// ClearCharactersOutput defines the response for deleting every character
type ClearCharactersOutput struct {
	Deleted int64
}
