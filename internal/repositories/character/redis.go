package character

import (
	"context"
	"log/slog"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	"github.com/KirkDiggler/rpg-chargen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-chargen/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	nextIDKey          = "character:next_id"
	indexKey           = "character:index"

	// Hash fields. name, race, class and level mirror the document for filtering.
	fieldName      = "nome"
	fieldRace      = "raca"
	fieldClass     = "classe"
	fieldLevel     = "nivel"
	fieldData      = "data_json"
	fieldCreatedAt = "created_at"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository.
// Each character is a hash at character:<id>; character:index is a sorted
// set of IDs and character:next_id the ID counter.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func characterKey(id int64) string {
	return characterKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	data, err := encodeCharacter(input.Character)
	if err != nil {
		return nil, err
	}

	id, err := r.client.Incr(ctx, nextIDKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate character ID")
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, characterKey(id), map[string]interface{}{
		fieldName:      input.Character.Name,
		fieldRace:      string(input.Character.Race),
		fieldClass:     string(input.Character.Class),
		fieldLevel:     input.Character.Level,
		fieldData:      data,
		fieldCreatedAt: r.clock.Now().Unix(),
	})
	pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(id), Member: id})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character %d", id)
	}

	return &CreateOutput{Character: withID(input.Character, id)}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	fields, err := r.client.HGetAll(ctx, characterKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %d", input.ID)
	}
	if len(fields) == 0 {
		return nil, errors.NotFoundf("character with ID %d not found", input.ID)
	}

	c, err := decodeCharacter(input.ID, []byte(fields[fieldData]))
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: c}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	filtered := input.Race != "" || input.Class != ""

	stop := int64(-1)
	if !filtered && input.Limit > 0 {
		stop = int64(input.Limit - 1)
	}

	members, err := r.client.ZRange(ctx, indexKey, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read character index")
	}

	characters := make([]*entities.Character, 0, len(members))
	for _, member := range members {
		if input.Limit > 0 && len(characters) >= input.Limit {
			break
		}

		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ID %q in character index", member)
		}

		fields, err := r.client.HGetAll(ctx, characterKey(id)).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get character %d", id)
		}
		if len(fields) == 0 {
			slog.WarnContext(ctx, "character missing, cleaning up index",
				"character_id", id,
				"index_key", indexKey)
			r.client.ZRem(ctx, indexKey, member)
			continue
		}

		if input.Race != "" && fields[fieldRace] != string(input.Race) {
			continue
		}
		if input.Class != "" && fields[fieldClass] != string(input.Class) {
			continue
		}

		c, err := decodeCharacter(id, []byte(fields[fieldData]))
		if err != nil {
			return nil, err
		}
		characters = append(characters, c)
	}

	slog.DebugContext(ctx, "listed characters",
		"count", len(characters),
		"limit", input.Limit,
		"race", input.Race,
		"class", input.Class)

	return &ListOutput{Characters: characters}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	key := characterKey(input.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check character %d", input.ID)
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %d not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.ZRem(ctx, indexKey, strconv.FormatInt(input.ID, 10))

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %d", input.ID)
	}

	return &DeleteOutput{}, nil
}

// DeleteAll keeps the ID counter so cleared IDs are never handed out again
func (r *redisRepository) DeleteAll(ctx context.Context, _ DeleteAllInput) (*DeleteAllOutput, error) {
	members, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read character index")
	}
	if len(members) == 0 {
		return &DeleteAllOutput{}, nil
	}

	pipe := r.client.TxPipeline()
	for _, member := range members {
		pipe.Del(ctx, characterKeyPrefix+member)
	}
	pipe.Del(ctx, indexKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to delete characters")
	}

	return &DeleteAllOutput{Deleted: int64(len(members))}, nil
}
