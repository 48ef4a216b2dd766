package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-chargen/internal/entities"
	"github.com/KirkDiggler/rpg-chargen/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-chargen/internal/redis"
)

// IntegrityReport lists what CheckRedis found. Keys and IDs are sorted.
type IntegrityReport struct {
	Checked int
	// Corrupted are character keys whose data_json does not decode
	Corrupted []string
	// Orphaned are index entries without a character hash
	Orphaned []int64
	// Unindexed are character hashes missing from the index
	Unindexed []int64
	// Repaired is true when fixes were applied
	Repaired bool
}

// Clean reports whether nothing needs repair
func (r *IntegrityReport) Clean() bool {
	return len(r.Corrupted) == 0 && len(r.Orphaned) == 0 && len(r.Unindexed) == 0
}

// CheckRedis scans every character hash and the ID index. With repair set,
// corrupted characters are deleted, orphaned index entries removed and
// unindexed characters added back to the index.
func CheckRedis(ctx context.Context, client redisclient.Client, repair bool) (*IntegrityReport, error) {
	if client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	report := &IntegrityReport{}
	present := make(map[int64]bool)

	iter := client.Scan(ctx, 0, characterKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id, err := strconv.ParseInt(strings.TrimPrefix(key, characterKeyPrefix), 10, 64)
		if err != nil {
			// next_id and index share the prefix
			continue
		}
		report.Checked++

		data, err := client.HGet(ctx, key, fieldData).Result()
		if err != nil && err != redis.Nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		var c entities.Character
		if err == redis.Nil || json.Unmarshal([]byte(data), &c) != nil {
			report.Corrupted = append(report.Corrupted, key)
			continue
		}
		present[id] = true
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan character keys")
	}

	members, err := client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read character index")
	}
	indexed := make(map[int64]bool, len(members))
	for _, member := range members {
		id, err := strconv.ParseInt(member, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ID %q in character index", member)
		}
		indexed[id] = true
		if !present[id] && !contains(report.Corrupted, characterKey(id)) {
			report.Orphaned = append(report.Orphaned, id)
		}
	}
	for id := range present {
		if !indexed[id] {
			report.Unindexed = append(report.Unindexed, id)
		}
	}

	sort.Strings(report.Corrupted)
	sort.Slice(report.Orphaned, func(i, j int) bool { return report.Orphaned[i] < report.Orphaned[j] })
	sort.Slice(report.Unindexed, func(i, j int) bool { return report.Unindexed[i] < report.Unindexed[j] })

	if !repair || report.Clean() {
		return report, nil
	}

	pipe := client.TxPipeline()
	for _, key := range report.Corrupted {
		pipe.Del(ctx, key)
		pipe.ZRem(ctx, indexKey, strings.TrimPrefix(key, characterKeyPrefix))
	}
	for _, id := range report.Orphaned {
		pipe.ZRem(ctx, indexKey, strconv.FormatInt(id, 10))
	}
	for _, id := range report.Unindexed {
		pipe.ZAdd(ctx, indexKey, redis.Z{Score: float64(id), Member: id})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to repair character data")
	}
	report.Repaired = true

	slog.InfoContext(ctx, "Character store repaired",
		"corrupted", len(report.Corrupted),
		"orphaned", len(report.Orphaned),
		"unindexed", len(report.Unindexed))

	return report, nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
