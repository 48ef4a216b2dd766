package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

// APIClient calls the /api/v1 endpoints of a server
type APIClient struct {
	baseURL string
	http    *http.Client
}

// NewAPIClient creates a client for the server at baseURL
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// DeleteResult is the body returned by delete and clear
type DeleteResult struct {
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

// ListOptions filters a character listing. Zero values are omitted.
type ListOptions struct {
	Limit int
	Race  string
	Class string
}

// RandomCharacter generates a character without storing it
func (c *APIClient) RandomCharacter(ctx context.Context) (*entities.Character, error) {
	var out entities.Character
	if err := c.do(ctx, http.MethodGet, "/api/v1/character/random", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveCharacter stores a character and returns it with its ID
func (c *APIClient) SaveCharacter(ctx context.Context, character *entities.Character) (*entities.Character, error) {
	var out entities.Character
	if err := c.do(ctx, http.MethodPost, "/api/v1/character", character, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCharacter loads a stored character
func (c *APIClient) GetCharacter(ctx context.Context, id int64) (*entities.Character, error) {
	var out entities.Character
	if err := c.do(ctx, http.MethodGet, "/api/v1/character/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCharacters lists stored characters
func (c *APIClient) ListCharacters(ctx context.Context, opts ListOptions) ([]*entities.Character, error) {
	query := url.Values{}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Race != "" {
		query.Set("raca", opts.Race)
	}
	if opts.Class != "" {
		query.Set("classe", opts.Class)
	}

	path := "/api/v1/characters"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var out []*entities.Character
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteCharacter removes a stored character
func (c *APIClient) DeleteCharacter(ctx context.Context, id int64) (*DeleteResult, error) {
	var out DeleteResult
	if err := c.do(ctx, http.MethodDelete, "/api/v1/character/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClearCharacters removes every stored character
func (c *APIClient) ClearCharacters(ctx context.Context) (*DeleteResult, error) {
	var out DeleteResult
	if err := c.do(ctx, http.MethodDelete, "/api/v1/characters/clear", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RollDice rolls a notation such as 2d6+3
func (c *APIClient) RollDice(ctx context.Context, notation string) (*entities.DiceRoll, error) {
	var out entities.DiceRoll
	if err := c.do(ctx, http.MethodGet, "/api/v1/roll/"+url.PathEscape(notation), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends the request and decodes a 2xx body into out. Error bodies are
// turned back into *errors.Error with the server's code.
func (c *APIClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "server unreachable")
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr errors.HTTPBody
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Code == "" {
			return errors.Internalf("%s %s: HTTP %d", method, path, resp.StatusCode)
		}
		e := errors.New(apiErr.Code, apiErr.Detail)
		if len(apiErr.Fields) > 0 {
			e = e.WithMeta("validation_errors", apiErr.Fields)
		}
		return e
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
