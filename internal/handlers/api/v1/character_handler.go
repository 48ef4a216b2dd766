package v1

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/httpx"
	"github.com/KirkDiggler/rpg-chargen/internal/services/character"
)

const (
	maxBodyBytes = 1 << 20

	msgCharacterNotFound = "Personagem não encontrado"
	msgCharacterDeleted  = "Personagem removido com sucesso"
)

// MessageResponse is returned by delete operations
type MessageResponse struct {
	Message string `json:"message"`
	Deleted *int64 `json:"deleted,omitempty"`
}

// GenerateRandomCharacter returns a new character without storing it
func (h *Handler) GenerateRandomCharacter(w http.ResponseWriter, r *http.Request) {
	out, err := h.characterService.GenerateRandomCharacter(r.Context(), &character.GenerateRandomCharacterInput{})
	if err != nil {
		errors.WriteHTTP(w, r, err)
		return
	}

	_ = httpx.WriteJSON(w, http.StatusOK, out.Character)
}

// SaveCharacter stores the character in the request body
func (h *Handler) SaveCharacter(w http.ResponseWriter, r *http.Request) {
	var c entities.Character
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&c); err != nil {
		errors.WriteHTTP(w, r, errors.InvalidArgumentf("invalid character body: %v", err))
		return
	}

	out, err := h.characterService.SaveCharacter(r.Context(), &character.SaveCharacterInput{Character: &c})
	if err != nil {
		errors.WriteHTTP(w, r, err)
		return
	}

	_ = httpx.WriteJSON(w, http.StatusOK, out.Character)
}

// GetCharacter returns a stored character
func (h *Handler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := characterID(r)
	if err != nil {
		errors.WriteHTTP(w, r, err)
		return
	}

	out, err := h.characterService.GetCharacter(r.Context(), &character.GetCharacterInput{CharacterID: id})
	if err != nil {
		errors.WriteHTTP(w, r, notFoundMessage(err))
		return
	}

	_ = httpx.WriteJSON(w, http.StatusOK, out.Character)
}

// DeleteCharacter removes a stored character
func (h *Handler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := characterID(r)
	if err != nil {
		errors.WriteHTTP(w, r, err)
		return
	}

	if _, err := h.characterService.DeleteCharacter(r.Context(), &character.DeleteCharacterInput{CharacterID: id}); err != nil {
		errors.WriteHTTP(w, r, notFoundMessage(err))
		return
	}

	_ = httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: msgCharacterDeleted})
}

// ListCharacters returns stored characters ordered by ID.
// Query parameters: limit, raca, classe.
func (h *Handler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	input := &character.ListCharactersInput{
		Race:  entities.Race(query.Get("raca")),
		Class: entities.Class(query.Get("classe")),
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			errors.WriteHTTP(w, r, errors.InvalidArgumentf("limit must be an integer, got %q", raw))
			return
		}
		input.Limit = limit
	}

	out, err := h.characterService.ListCharacters(r.Context(), input)
	if err != nil {
		errors.WriteHTTP(w, r, err)
		return
	}

	characters := out.Characters
	if characters == nil {
		characters = []*entities.Character{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, characters)
}

// ClearCharacters removes every stored character
func (h *Handler) ClearCharacters(w http.ResponseWriter, r *http.Request) {
	out, err := h.characterService.ClearCharacters(r.Context(), &character.ClearCharactersInput{})
	if err != nil {
		errors.WriteHTTP(w, r, err)
		return
	}

	deleted := out.Deleted
	_ = httpx.WriteJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Banco de dados limpo com sucesso. %d personagens removidos.", deleted),
		Deleted: &deleted,
	})
}

func characterID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.InvalidArgumentf("character ID must be an integer, got %q", raw)
	}
	return id, nil
}

func notFoundMessage(err error) error {
	if errors.IsNotFound(err) {
		return errors.NotFound(msgCharacterNotFound)
	}
	return err
}
