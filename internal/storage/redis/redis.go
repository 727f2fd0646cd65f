package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// ErrNotFound key is absent in redis
var ErrNotFound = errors.New("redis: key not found")

// NewRedis connects a redis client shared by all namespaced wrappers
func NewRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Client common wrapper above a redis namespace, with async saver
type Client[V any] struct {
	rdb       *redis.Client
	prefix    string
	ttl       time.Duration
	marshal   func(V) (string, error)
	unmarshal func(string) (V, error)
	saveChan  chan redisEntity[V]
}

type redisEntity[V any] struct {
	key   string
	value V
}

// New builds a wrapper storing values under prefix, async saves expire after ttl
func New[V any](ctx context.Context,
	rdb *redis.Client,
	prefix string,
	ttl time.Duration,
	marshal func(V) (string, error),
	unmarshal func(string) (V, error),
	chanSize int) *Client[V] {

	client := &Client[V]{
		rdb:       rdb,
		prefix:    prefix,
		ttl:       ttl,
		marshal:   marshal,
		unmarshal: unmarshal,
		saveChan:  make(chan redisEntity[V], chanSize),
	}

	go client.runUpdater(ctx)

	return client
}

func (c *Client[V]) key(key string) string {
	return c.prefix + key
}

func (c *Client[V]) Set(ctx context.Context, key string, value V, expiration time.Duration) error {
	strValue, err := c.marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(key), strValue, expiration).Err()
}

func (c *Client[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V
	strValue, err := c.rdb.Get(ctx, c.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return zero, ErrNotFound
	}
	if err != nil {
		return zero, err
	}
	return c.unmarshal(strValue)
}

func (c *Client[V]) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, c.key(key)).Err()
}

// Append pushes value to the list stored at key and refreshes its expiration
func (c *Client[V]) Append(ctx context.Context, key string, value V, expiration time.Duration) error {
	strValue, err := c.marshal(value)
	if err != nil {
		return err
	}
	if err := c.rdb.RPush(ctx, c.key(key), strValue).Err(); err != nil {
		return err
	}
	return c.rdb.Expire(ctx, c.key(key), expiration).Err()
}

// Drain returns every value of the list stored at key and removes the list.
// Read and delete run in one MULTI/EXEC so a concurrent Append is never lost
func (c *Client[V]) Drain(ctx context.Context, key string) ([]V, error) {
	var lrange *redis.StringSliceCmd
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, c.key(key), 0, -1)
		pipe.Del(ctx, c.key(key))
		return nil
	})
	if err != nil {
		return nil, err
	}
	items := lrange.Val()
	if len(items) == 0 {
		return nil, nil
	}

	result := make([]V, 0, len(items))
	for _, item := range items {
		val, err := c.unmarshal(item)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("skip malformed list item")
			continue
		}
		result = append(result, val)
	}
	return result, nil
}

// Update saves values asynchronously
func (c *Client[V]) Update(keys []string, values []V) {
	for i := range values {
		entity := redisEntity[V]{
			key:   keys[i],
			value: values[i],
		}
		select {
		case c.saveChan <- entity:
		default:
			// channel is full, hand off to a goroutine instead of blocking the caller
			go func(e redisEntity[V]) {
				c.saveChan <- e
			}(entity)
		}
	}
}

func (c *Client[V]) BatchGet(ctx context.Context, keys []string) ([]V, []string, error) {
	if len(keys) == 0 {
		return nil, nil, nil
	}
	prefixed := make([]string, 0, len(keys))
	for _, k := range keys {
		prefixed = append(prefixed, c.key(k))
	}

	results, err := c.rdb.MGet(ctx, prefixed...).Result()
	if err != nil {
		return nil, nil, err
	}

	var res []V
	notFound := make([]string, 0)
	for i, r := range results {
		str, ok := r.(string)
		if !ok {
			notFound = append(notFound, keys[i])
			continue
		}
		val, err := c.unmarshal(str)
		if err != nil {
			notFound = append(notFound, keys[i])
			continue
		}
		res = append(res, val)
	}
	log.Debug().Str("prefix", c.prefix).Int("hit", len(res)).Int("miss", len(notFound)).Msg("redis cache lookup")
	return res, notFound, nil
}

func (c *Client[V]) runUpdater(ctx context.Context) {
	for {
		select {
		case entity := <-c.saveChan:
			if err := c.Set(ctx, entity.key, entity.value, c.ttl); err != nil {
				log.Error().Err(err).Str("key", entity.key).Msg("couldn't save to redis")
			}
		case <-ctx.Done():
			return
		}
	}
}
