package character_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
)

func TestNewSQLite_RequiresPath(t *testing.T) {
	_, err := character.NewSQLite(context.Background(), &character.SQLiteConfig{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSQLiteRepository_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "characters.db")

	first, err := character.NewSQLite(ctx, &character.SQLiteConfig{Path: path})
	require.NoError(t, err)

	created, err := first.Create(ctx, character.CreateInput{
		Character: newCharacter("Halimath", entities.RaceHalfElf, entities.ClassRanger),
	})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := character.NewSQLite(ctx, &character.SQLiteConfig{Path: path})
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	out, err := second.Get(ctx, character.GetInput{ID: *created.Character.ID})
	require.NoError(t, err)
	assert.Equal(t, created.Character, out.Character)
}
