package dice

import "github.com/KirkDiggler/rpg-chargen/internal/entities"

// RollDiceInput defines the request for rolling dice
type RollDiceInput struct {
	Notation string
}

// RollDiceOutput defines the response for rolling dice
type RollDiceOutput struct {
	Roll *entities.DiceRoll
}
