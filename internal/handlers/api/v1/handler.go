// Package v1 serves the character and dice HTTP API under /api/v1
package v1

import (
	"net/http"

	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/httpx"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-chargen/internal/services/character"
)

const (
	serviceName    = "RPG Character Generator API"
	serviceVersion = "1.0.0"
)

// HandlerConfig holds dependencies for the API handler
type HandlerConfig struct {
	CharacterService character.Service
	DiceService      dice.Service
	// RequestIDs generates X-Request-ID values. Defaults to UUIDs.
	RequestIDs idgen.Generator
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	return vb.Build()
}

// Handler implements the HTTP API
type Handler struct {
	characterService character.Service
	diceService      dice.Service
	requestIDs       idgen.Generator
}

// NewHandler creates a new API handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ids := cfg.RequestIDs
	if ids == nil {
		ids = idgen.NewUUID("")
	}

	return &Handler{
		characterService: cfg.CharacterService,
		diceService:      cfg.DiceService,
		requestIDs:       ids,
	}, nil
}

// Routes returns the full API wrapped in CORS, request ID, access log and
// panic recovery middleware.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /health", h.Health)

	mux.HandleFunc("GET /api/v1/character/random", h.GenerateRandomCharacter)
	mux.HandleFunc("POST /api/v1/character", h.SaveCharacter)
	mux.HandleFunc("GET /api/v1/character/{id}", h.GetCharacter)
	mux.HandleFunc("DELETE /api/v1/character/{id}", h.DeleteCharacter)
	mux.HandleFunc("GET /api/v1/characters", h.ListCharacters)
	mux.HandleFunc("DELETE /api/v1/characters/clear", h.ClearCharacters)

	mux.HandleFunc("GET /api/v1/roll/{dice}", h.RollDice)

	return httpx.Chain(mux,
		httpx.CORS(),
		httpx.RequestID(h.requestIDs),
		httpx.AccessLog(),
		httpx.Recover(),
	)
}

// Root describes the service and its endpoints
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message": serviceName,
		"version": serviceVersion,
		"endpoints": map[string]string{
			"generate_random_character": "/api/v1/character/random",
			"save_character":            "/api/v1/character",
			"get_character":             "/api/v1/character/{id}",
			"delete_character":          "/api/v1/character/{id}",
			"list_characters":           "/api/v1/characters",
			"clear_characters":          "/api/v1/characters/clear",
			"roll_dice":                 "/api/v1/roll/{dice}",
		},
	})
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
