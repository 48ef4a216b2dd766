package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-chargen/internal/config"
	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
)

func TestOpenRepository(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	testCases := []struct {
		name string
		cfg  config.StorageConfig
	}{
		{"sqlite", config.StorageConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "characters.db"),
		}},
		{"redis", config.StorageConfig{
			Driver:    config.DriverRedis,
			RedisAddr: mr.Addr(),
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, closer, err := openRepository(ctx, tc.cfg)
			require.NoError(t, err)
			defer func() { assert.NoError(t, closer.Close()) }()

			out, err := repo.Create(ctx, characterrepo.CreateInput{Character: &entities.Character{
				Name:  "Immeral",
				Race:  entities.RaceElf,
				Class: entities.ClassRanger,
				Level: 1,
			}})
			require.NoError(t, err)
			assert.Equal(t, int64(1), *out.Character.ID)
		})
	}
}

func TestOpenRepository_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, _, err := openRepository(context.Background(), config.StorageConfig{
		Driver:    config.DriverRedis,
		RedisAddr: addr,
	})
	assert.Error(t, err)
}
