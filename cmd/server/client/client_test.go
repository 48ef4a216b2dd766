package client_test

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/cmd/server/client"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	v1 "github.com/KirkDiggler/rpg-chargen/internal/handlers/api/v1"
	characterorch "github.com/KirkDiggler/rpg-chargen/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/dice"
	characterrepo "github.com/KirkDiggler/rpg-chargen/internal/repositories/character"
)

// ClientTestSuite runs the client against a real in-process server backed
// by a temporary SQLite database.
type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
	repo   *characterrepo.SQLite
	api    *client.APIClient
	ctx    context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()

	repo, err := characterrepo.NewSQLite(s.ctx, &characterrepo.SQLiteConfig{
		Path: filepath.Join(s.T().TempDir(), "characters.db"),
	})
	s.Require().NoError(err)
	s.repo = repo

	characterService, err := characterorch.NewOrchestrator(&characterorch.Config{
		CharacterRepo: repo,
		Roller:        toolkitdice.DefaultRoller,
	})
	s.Require().NoError(err)

	diceService, err := dice.NewOrchestrator(&dice.Config{Roller: toolkitdice.DefaultRoller})
	s.Require().NoError(err)

	handler, err := v1.NewHandler(&v1.HandlerConfig{
		CharacterService: characterService,
		DiceService:      diceService,
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(handler.Routes())
	s.api = client.NewAPIClient(s.server.URL, 5*time.Second)
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
	s.Require().NoError(s.repo.Close())
}

func (s *ClientTestSuite) TestCharacterLifecycle() {
	generated, err := s.api.RandomCharacter(s.ctx)
	s.Require().NoError(err)
	s.Nil(generated.ID)

	saved, err := s.api.SaveCharacter(s.ctx, generated)
	s.Require().NoError(err)
	s.Require().NotNil(saved.ID)

	generated.ID = saved.ID
	s.Equal(generated, saved)

	loaded, err := s.api.GetCharacter(s.ctx, *saved.ID)
	s.Require().NoError(err)
	s.Equal(saved, loaded)

	listed, err := s.api.ListCharacters(s.ctx, client.ListOptions{Race: string(saved.Race)})
	s.Require().NoError(err)
	s.Len(listed, 1)

	deleted, err := s.api.DeleteCharacter(s.ctx, *saved.ID)
	s.Require().NoError(err)
	s.NotEmpty(deleted.Message)

	_, err = s.api.GetCharacter(s.ctx, *saved.ID)
	s.True(errors.IsNotFound(err))
}

func (s *ClientTestSuite) TestClearNeverReusesIDs() {
	var lastID int64
	for i := 0; i < 3; i++ {
		c, err := s.api.RandomCharacter(s.ctx)
		s.Require().NoError(err)
		saved, err := s.api.SaveCharacter(s.ctx, c)
		s.Require().NoError(err)
		lastID = *saved.ID
	}

	res, err := s.api.ClearCharacters(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), res.Deleted)

	listed, err := s.api.ListCharacters(s.ctx, client.ListOptions{})
	s.Require().NoError(err)
	s.Empty(listed)

	c, err := s.api.RandomCharacter(s.ctx)
	s.Require().NoError(err)
	saved, err := s.api.SaveCharacter(s.ctx, c)
	s.Require().NoError(err)
	s.Greater(*saved.ID, lastID)
}

func (s *ClientTestSuite) TestSaveValidationError() {
	c, err := s.api.RandomCharacter(s.ctx)
	s.Require().NoError(err)
	c.Name = ""
	c.Class = "Bardo"

	_, err = s.api.SaveCharacter(s.ctx, c)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Contains(fields, "nome")
	s.Contains(fields, "classe")
}

func (s *ClientTestSuite) TestRollDice() {
	roll, err := s.api.RollDice(s.ctx, "3d6+2")
	s.Require().NoError(err)
	s.Equal("3d6+2", roll.Notation)
	s.Len(roll.Rolls, 3)
	s.Equal(2, roll.Modifier)
	s.GreaterOrEqual(roll.Result, 5)
	s.LessOrEqual(roll.Result, 20)

	_, err = s.api.RollDice(s.ctx, "0d6")
	s.True(errors.IsOutOfRange(err))

	_, err = s.api.RollDice(s.ctx, "banana")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ClientTestSuite) TestUnreachableServer() {
	api := client.NewAPIClient("http://127.0.0.1:1", time.Second)
	_, err := api.RandomCharacter(s.ctx)
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *ClientTestSuite) TestCommands() {
	run := func(args ...string) string {
		var out bytes.Buffer
		client.ClientCmd.SetOut(&out)
		client.ClientCmd.SetErr(&out)
		client.ClientCmd.SetArgs(append(args, "--server", s.server.URL))
		s.Require().NoError(client.ClientCmd.Execute())
		return out.String()
	}

	s.Contains(run("roll", "1d20"), "Dice Roll Results")
	s.Contains(run("random", "--save"), "(ID: 1)")
	s.Contains(run("get", "1"), "(ID: 1)")
	s.Contains(run("list", "--limit", "5"), "Found 1 characters")
	s.Contains(run("delete", "1"), "Personagem removido com sucesso")
	s.Contains(run("clear"), "0 personagens removidos")
}
