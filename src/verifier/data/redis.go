package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/courtcheck/courtcheck/src/verifier/engine"
	"github.com/redis/go-redis/v9"
)

const resultPrefix = "verify:result:"

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// ResultCache stores completed verification runs in redis so repeated
// claims skip the pipeline.
type ResultCache struct {
	rdb *redis.Client
}

func NewResultCache(rdb *redis.Client) *ResultCache {
	return &ResultCache{rdb: rdb}
}

// claimKey hashes the normalized claim so equivalent phrasings of the same
// text share a cache slot and raw claims never appear in key listings.
func claimKey(claim string) string {
	norm := strings.Join(strings.Fields(strings.ToLower(claim)), " ")
	sum := sha256.Sum256([]byte(norm))
	return resultPrefix + hex.EncodeToString(sum[:])
}

// Store caches a completed run under the normalized claim key.
func (c *ResultCache) Store(ctx context.Context, out *engine.Outcome, ttl time.Duration) error {
	raw, err := json.Marshal(out)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, claimKey(out.Claim), raw, ttl).Err()
}

// Cached returns the cached run for a claim, or nil on miss.
func (c *ResultCache) Cached(ctx context.Context, claim string) (*engine.Outcome, error) {
	raw, err := c.rdb.Get(ctx, claimKey(claim)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out engine.Outcome
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
