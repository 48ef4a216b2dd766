package v1

import (
	"net/http"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/httpx"
)

// RollDice rolls the notation in the path, e.g. /api/v1/roll/2d6+3
func (h *Handler) RollDice(w http.ResponseWriter, r *http.Request) {
	out, err := h.diceService.RollDice(r.Context(), &dice.RollDiceInput{
		Notation: r.PathValue("dice"),
	})
	if err != nil {
		errors.WriteHTTP(w, r, err)
		return
	}

	_ = httpx.WriteJSON(w, http.StatusOK, out.Roll)
}
