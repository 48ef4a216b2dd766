package dice_test

import (
	"context"
	"sync"
	"testing"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-chargen/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) newOrchestrator(roller toolkitdice.Roller) dice.Service {
	svc, err := dice.NewOrchestrator(&dice.Config{Roller: roller})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresRoller() {
	_, err := dice.NewOrchestrator(&dice.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = dice.NewOrchestrator(nil)
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestRollDice_Scripted() {
	testCases := []struct {
		name     string
		notation string
		script   []int
		result   int
		modifier int
	}{
		{"single d20", "1d20", []int{14}, 14, 0},
		{"three d6", "3d6", []int{2, 5, 6}, 13, 0},
		{"positive modifier", "1d20+5", []int{1}, 6, 5},
		{"negative modifier", "2d8-1", []int{1, 1}, 1, -1},
		{"max with negative modifier", "2d8-1", []int{8, 8}, 15, -1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			roller := testutils.NewScriptedRoller(tc.script...)
			out, err := s.newOrchestrator(roller).RollDice(s.ctx, &dice.RollDiceInput{Notation: tc.notation})
			s.Require().NoError(err)
			s.Equal(tc.notation, out.Roll.Notation)
			s.Equal(tc.script, out.Roll.Rolls)
			s.Equal(tc.result, out.Roll.Result)
			s.Equal(tc.modifier, out.Roll.Modifier)
			s.Zero(roller.Remaining())
		})
	}
}

func (s *OrchestratorTestSuite) TestRollDice_KeepsOriginalNotation() {
	roller := testutils.NewScriptedRoller(3, 4)
	out, err := s.newOrchestrator(roller).RollDice(s.ctx, &dice.RollDiceInput{Notation: "2d6 + 1"})
	s.Require().NoError(err)
	s.Equal("2d6 + 1", out.Roll.Notation)
	s.Equal(8, out.Roll.Result)
}

func (s *OrchestratorTestSuite) TestRollDice_Errors() {
	svc := s.newOrchestrator(testutils.NewScriptedRoller())

	_, err := svc.RollDice(s.ctx, &dice.RollDiceInput{Notation: "invalid"})
	s.ErrorIs(err, dice.ErrInvalidNotation)

	for _, notation := range []string{"0d6", "1d1", "101d6", "1d101"} {
		_, err = svc.RollDice(s.ctx, &dice.RollDiceInput{Notation: notation})
		s.ErrorIs(err, dice.ErrOutOfRange, notation)
	}

	_, err = svc.RollDice(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollDice_RollerFailureIsInternal() {
	_, err := s.newOrchestrator(testutils.NewScriptedRoller(4)).RollDice(s.ctx, &dice.RollDiceInput{Notation: "2d6"})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestRollDice_DefaultRollerBounds() {
	svc := s.newOrchestrator(toolkitdice.DefaultRoller)

	testCases := []struct {
		notation string
		count    int
		sides    int
		min, max int
	}{
		{"1d20", 1, 20, 1, 20},
		{"3d6", 3, 6, 3, 18},
		{"1d20+5", 1, 20, 6, 25},
		{"2d8-1", 2, 8, 1, 15},
	}

	for _, tc := range testCases {
		s.Run(tc.notation, func() {
			for i := 0; i < 200; i++ {
				out, err := svc.RollDice(s.ctx, &dice.RollDiceInput{Notation: tc.notation})
				s.Require().NoError(err)
				s.Len(out.Roll.Rolls, tc.count)
				for _, r := range out.Roll.Rolls {
					s.GreaterOrEqual(r, 1)
					s.LessOrEqual(r, tc.sides)
				}
				s.GreaterOrEqual(out.Roll.Result, tc.min)
				s.LessOrEqual(out.Roll.Result, tc.max)
			}
		})
	}
}

func (s *OrchestratorTestSuite) TestRollDice_Concurrent() {
	svc := s.newOrchestrator(toolkitdice.DefaultRoller)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.RollDice(s.ctx, &dice.RollDiceInput{Notation: "4d6+2"}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
}
