// Package character provides persistence for generated characters
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-chargen/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
)

// Repository stores characters as an opaque JSON document keyed by an
// auto-assigned integer ID, next to denormalized name/race/class/level
// columns used for filtering. IDs are never reused.
type Repository interface {
	// Create stores a character and assigns its ID
	// Returns errors.InvalidArgument for a nil character
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns characters ordered by ID
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a character by ID
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// DeleteAll removes every character and reports how many were removed
	// Returns errors.Internal for storage failures
	DeleteAll(ctx context.Context, input DeleteAllInput) (*DeleteAllOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput holds a copy of the stored character with its ID set
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// ListInput filters and limits a listing. Zero values disable a filter.
type ListInput struct {
	Limit int
	Race  entities.Race
	Class entities.Class
}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// DeleteAllInput defines the input for deleting every character
type DeleteAllInput struct{}

// DeleteAllOutput defines the output for deleting every character
type DeleteAllOutput struct {
	Deleted int64
}
