package character

import (
	"sort"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

const (
	abilityDiceRolled = 4
	abilityDiceKept   = 3
	abilityDieSides   = 6
)

// Generator builds random characters from the fixed race and class tables.
// It holds no state besides the roller, so it is safe for concurrent use
// whenever the roller is.
type Generator struct {
	roller toolkitdice.Roller
}

// NewGenerator creates a generator drawing from roller
func NewGenerator(roller toolkitdice.Roller) (*Generator, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}
	return &Generator{roller: roller}, nil
}

// Generate returns a new level 1 character with no ID.
// Draw order: race, class, six ability scores, money, skills, name.
func (g *Generator) Generate() (*entities.Character, error) {
	race, err := g.pickRace()
	if err != nil {
		return nil, err
	}

	class, err := g.pickClass()
	if err != nil {
		return nil, err
	}

	raw, err := g.RollAttributes()
	if err != nil {
		return nil, err
	}
	attributes := raw.Add(RacialBonus(race))

	money, err := g.pick(maxStartingMoney - minStartingMoney + 1)
	if err != nil {
		return nil, err
	}

	skills, err := g.sample(skillPools[class], skillsPerCharacter)
	if err != nil {
		return nil, err
	}

	nameIdx, err := g.pick(len(names))
	if err != nil {
		return nil, err
	}

	return &entities.Character{
		Name:       names[nameIdx],
		Race:       race,
		Class:      class,
		Level:      entities.DefaultLevel,
		Attributes: attributes,
		HitPoints:  HitPoints(class, attributes.Constitution, entities.DefaultLevel),
		Equipment:  StartingEquipment(class, minStartingMoney+money),
		Skills:     skills,
	}, nil
}

// RollAttributes rolls six raw scores, each the highest three of 4d6
func (g *Generator) RollAttributes() (entities.Attributes, error) {
	var scores [6]int
	for i := range scores {
		score, err := g.rollAbilityScore()
		if err != nil {
			return entities.Attributes{}, err
		}
		scores[i] = score
	}

	return entities.Attributes{
		Strength:     scores[0],
		Dexterity:    scores[1],
		Constitution: scores[2],
		Intelligence: scores[3],
		Wisdom:       scores[4],
		Charisma:     scores[5],
	}, nil
}

// HitPoints returns hit die + CON modifier at level 1, plus
// hit die / 2 + 1 + CON modifier for every level above 1.
// The modifier is added again on every level, on top of the level 1 base.
// With the current tables the result is never negative.
func HitPoints(class entities.Class, constitution, level int) int {
	hd := HitDie(class)
	mod := entities.AbilityModifier(constitution)
	return hd + mod + (level-1)*(hd/2+1+mod)
}

func (g *Generator) rollAbilityScore() (int, error) {
	rolls, err := g.roller.RollN(abilityDiceRolled, abilityDieSides)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll ability score")
	}
	if len(rolls) != abilityDiceRolled {
		return 0, errors.Internalf("roller returned %d dice, expected %d", len(rolls), abilityDiceRolled)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(rolls)))
	total := 0
	for _, r := range rolls[:abilityDiceKept] {
		total += r
	}
	return total, nil
}

func (g *Generator) pickRace() (entities.Race, error) {
	idx, err := g.pick(len(entities.Races))
	if err != nil {
		return "", err
	}
	return entities.Races[idx], nil
}

func (g *Generator) pickClass() (entities.Class, error) {
	idx, err := g.pick(len(entities.Classes))
	if err != nil {
		return "", err
	}
	return entities.Classes[idx], nil
}

// pick returns a uniform index in [0, n)
func (g *Generator) pick(n int) (int, error) {
	v, err := g.roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to draw random value")
	}
	if v < 1 || v > n {
		return 0, errors.Internalf("roller returned %d for a d%d", v, n)
	}
	return v - 1, nil
}

// sample draws k distinct entries from pool with a partial Fisher-Yates shuffle
func (g *Generator) sample(pool []string, k int) ([]string, error) {
	shuffled := append([]string(nil), pool...)
	if k > len(shuffled) {
		k = len(shuffled)
	}

	for i := 0; i < k; i++ {
		j, err := g.pick(len(shuffled) - i)
		if err != nil {
			return nil, err
		}
		shuffled[i], shuffled[i+j] = shuffled[i+j], shuffled[i]
	}
	return shuffled[:k], nil
}
