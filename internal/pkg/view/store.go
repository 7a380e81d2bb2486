package view

import (
    "context"
    "fmt"
    "sync"
    "time"

    "github.com/redis/go-redis/v9"
    "go.uber.org/zap"

    "moderation/internal/pkg/config"
    "moderation/internal/pkg/logger"
)

// Defines the atomic conditional insert behind view deduplication.
// Record returns true when the (fingerprint, contentID) pair was not
// seen before; concurrent calls for the same pair yield exactly one
// true result.
type Store interface {
    Record(ctx context.Context, fingerprint, contentID string) bool
}

// Implements Store with Redis as the backing store. Each content item
// gets its own SET of fingerprints; SADD's reply is the novelty signal.
type redisStore struct {
    client    *redis.Client
    keyPrefix string
}

// Creates a new Redis-backed store and verifies the connection.
func NewRedisStore(config *config.Config) (Store, error) {
    rdb := redis.NewClient(&redis.Options{
        Addr:     fmt.Sprintf("%s:%s", config.RedisHost, config.RedisPort),
        Password: config.RedisPassword, // "" if no auth
        DB:       config.RedisDB,
    })

    // Test connection
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := rdb.Ping(ctx).Err(); err != nil {
        logger.Log.Error("Failed to connect to Redis", zap.Error(err))
        return nil, err
    }

    logger.Log.Info("Connected to Redis successfully",
        zap.String("host", config.RedisHost),
        zap.String("port", config.RedisPort),
    )

    return &redisStore{
        client:    rdb,
        keyPrefix: "view_fingerprints", // could be configurable
    }, nil
}

// SADD returns how many members were added: 1 means this fingerprint is
// novel for the content, 0 means duplicate. On Redis failure the view is
// treated as a duplicate so a flaky store can only undercount, never
// double-count.
func (store *redisStore) Record(ctx context.Context, fingerprint, contentID string) bool {
    ctx, cancel := context.WithTimeout(ctx, time.Second)
    defer cancel()

    added, err := store.client.SAdd(ctx, store.keyPrefix+":"+contentID, fingerprint).Result()
    if err != nil {
        logger.Log.Error("Redis view record failed",
            zap.String("content_id", contentID),
            zap.Error(err))
        return false
    }
    return added == 1
}

// A naive in-memory implementation of Store for tests and single-node
// deployments.
type memoryStore struct {
    mu   sync.Mutex
    seen map[string]struct{}
}

// Creates a new Store backed by an in-memory map.
func NewMemoryStore() Store {
    return &memoryStore{
        seen: make(map[string]struct{}),
    }
}

func (store *memoryStore) Record(ctx context.Context, fingerprint, contentID string) bool {
    key := contentID + "/" + fingerprint
    store.mu.Lock()
    defer store.mu.Unlock()
    if _, found := store.seen[key]; found {
        return false
    }
    store.seen[key] = struct{}{}
    return true
}
