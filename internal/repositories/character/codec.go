package character

import (
	"encoding/json"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
)

const (
	errCharacterNil = "character cannot be nil"
)

// encodeCharacter returns the stored document. The ID lives in its own
// column or key and is left out of the blob.
func encodeCharacter(c *entities.Character) ([]byte, error) {
	doc := *c
	doc.ID = nil

	data, err := json.Marshal(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character data")
	}
	return data, nil
}

// decodeCharacter rebuilds a character from its document and ID
func decodeCharacter(id int64, data []byte) (*entities.Character, error) {
	var c entities.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character %d", id)
	}
	c.ID = &id
	return &c, nil
}

// withID returns a copy of c carrying id
func withID(c *entities.Character, id int64) *entities.Character {
	out := *c
	out.ID = &id
	return &out
}
