package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/callsight/callsight/pkg/config"
	"github.com/redis/go-redis/v9"
)

// buffer is the Redis write buffer between event consumption and the flush
// into PostgreSQL. Layout under the configured prefix:
//
//	<prefix>:seen:<eventId>   dedup marker with the dedup TTL
//	<prefix>:obs:<agent>:<hour>  list of observation JSON blobs
//	<prefix>:dirty            set of "<agent>|<hour>" bucket names
type buffer struct {
	rdb *redis.Client
	cfg *config.AggregatorConfig
}

func newBuffer(rdb *redis.Client, cfg *config.AggregatorConfig) *buffer {
	return &buffer{rdb: rdb, cfg: cfg}
}

func (b *buffer) seenKey(eventID string) string {
	return b.cfg.KeyPrefix + ":seen:" + eventID
}

func (b *buffer) obsKey(agentID, hourKey string) string {
	return b.cfg.KeyPrefix + ":obs:" + agentID + ":" + hourKey
}

func (b *buffer) dirtyKey() string {
	return b.cfg.KeyPrefix + ":dirty"
}

// markSeen records the event id and reports whether it was new. Duplicate
// suppression window is the dedup TTL; a replay after the window would
// double-count, which at-least-once redelivery never takes that long.
func (b *buffer) markSeen(ctx context.Context, eventID string) (bool, error) {
	fresh, err := b.rdb.SetNX(ctx, b.seenKey(eventID), 1, b.cfg.DedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark event %s seen: %w", eventID, err)
	}
	return fresh, nil
}

// push appends an observation to its bucket and marks the bucket dirty.
func (b *buffer) push(ctx context.Context, obs Observation) error {
	data, err := json.Marshal(obs)
	if err != nil {
		return fmt.Errorf("failed to marshal observation: %w", err)
	}

	pipe := b.rdb.TxPipeline()
	pipe.RPush(ctx, b.obsKey(obs.AgentID, obs.HourKey), data)
	pipe.SAdd(ctx, b.dirtyKey(), obs.AgentID+"|"+obs.HourKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to buffer observation for agent %s: %w", obs.AgentID, err)
	}
	return nil
}

// dirtyBuckets removes and returns every bucket awaiting a flush. Buckets
// that fail to flush are re-marked by the caller.
func (b *buffer) dirtyBuckets(ctx context.Context) ([]string, error) {
	n, err := b.rdb.SCard(ctx, b.dirtyKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count dirty buckets: %w", err)
	}
	if n == 0 {
		return nil, nil
	}
	buckets, err := b.rdb.SPopN(ctx, b.dirtyKey(), n).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to pop dirty buckets: %w", err)
	}
	return buckets, nil
}

// remark puts a bucket back on the dirty set after a failed flush.
func (b *buffer) remark(ctx context.Context, bucket string) error {
	return b.rdb.SAdd(ctx, b.dirtyKey(), bucket).Err()
}

// drain pops and decodes every observation buffered for one bucket. Popping
// (rather than reading and deleting) means observations pushed during the
// flush survive for the next one.
func (b *buffer) drain(ctx context.Context, bucket string) ([]Observation, error) {
	agentID, hourKey, err := splitBucket(bucket)
	if err != nil {
		return nil, err
	}
	key := b.obsKey(agentID, hourKey)

	var out []Observation
	for {
		blobs, err := b.rdb.LPopCount(ctx, key, 100).Result()
		if errors.Is(err, redis.Nil) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("failed to drain bucket %s: %w", bucket, err)
		}
		for _, blob := range blobs {
			var obs Observation
			if err := json.Unmarshal([]byte(blob), &obs); err != nil {
				return out, fmt.Errorf("failed to decode observation in bucket %s: %w", bucket, err)
			}
			out = append(out, obs)
		}
		if len(blobs) < 100 {
			return out, nil
		}
	}
}

func splitBucket(bucket string) (agentID, hourKey string, err error) {
	i := strings.LastIndex(bucket, "|")
	if i <= 0 || i == len(bucket)-1 {
		return "", "", fmt.Errorf("malformed bucket name %q", bucket)
	}
	return bucket[:i], bucket[i+1:], nil
}
