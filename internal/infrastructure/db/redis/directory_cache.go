package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hackfest/submission-portal/internal/core/domain"
	"github.com/hackfest/submission-portal/internal/core/ports"
)

const directoryTTL = 5 * time.Minute

// DirectoryCache is a read-through cache in front of the team directory.
// Directory lookups hit a spreadsheet-backed upstream; the cache bounds
// per-request latency while the short TTL keeps status changes visible.
// Key format: directory:leader:<leader_id>
type DirectoryCache struct {
	client *redis.Client
	next   ports.TeamDirectory
	ttl    time.Duration
	log    zerolog.Logger
}

// NewDirectoryCache wraps next with a Redis-backed cache.
func NewDirectoryCache(client *redis.Client, next ports.TeamDirectory, log zerolog.Logger) *DirectoryCache {
	return &DirectoryCache{client: client, next: next, ttl: directoryTTL, log: log}
}

// FindByLeaderID serves from cache when possible, falling back to the
// upstream directory. Cache failures degrade to an upstream query rather
// than failing the request. Misses are never cached: a registration
// confirmed a moment ago must be visible on the next login attempt.
func (c *DirectoryCache) FindByLeaderID(ctx context.Context, leaderID string) (*domain.Team, error) {
	key := c.key(leaderID)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var t domain.Team
		if unmarshalErr := json.Unmarshal(raw, &t); unmarshalErr == nil {
			return &t, nil
		}
		_ = c.client.Del(ctx, key).Err()
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("leader_id", leaderID).Msg("directory cache read failed, querying upstream")
	}

	team, err := c.next.FindByLeaderID(ctx, leaderID)
	if err != nil {
		return nil, err
	}

	if encoded, marshalErr := json.Marshal(team); marshalErr == nil {
		if setErr := c.client.Set(ctx, key, encoded, c.ttl).Err(); setErr != nil {
			c.log.Warn().Err(setErr).Str("leader_id", leaderID).Msg("directory cache write failed")
		}
	}
	return team, nil
}

func (c *DirectoryCache) key(leaderID string) string {
	return "directory:leader:" + leaderID
}
