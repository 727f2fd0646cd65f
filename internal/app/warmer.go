package app

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"esgweb/internal/schema"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const warmUpKey = "warmup:registry"

// warmKey registration number kept across restarts together with its cache priority
type warmKey struct {
	RegistrationNumber string `json:"registrationNumber"`
	Priority           int    `json:"priority"`
}

// warmer exports the keys of the local registry cache to redis and preloads them on start
type warmer struct {
	rdb     *redis.Client
	cache   lruCache[string, schema.RegistryRecord]
	storage storage
	period  time.Duration
}

func startWarmUpper(ctx context.Context,
	rdb *redis.Client,
	period time.Duration,
	cache lruCache[string, schema.RegistryRecord],
	storage storage,
) {
	w := &warmer{
		rdb:     rdb,
		cache:   cache,
		storage: storage,
		period:  period,
	}

	go w.exportPeriodically(ctx)

	go w.warmup(ctx)
}

func (w *warmer) warmup(ctx context.Context) {
	data, err := w.rdb.Get(ctx, warmUpKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			log.Info().Msg("no warm up keys saved, starting cold")
			return
		}
		log.Error().Err(err).Msg("couldn't warm up")
		return
	}

	var keys []warmKey
	if err := json.Unmarshal(data, &keys); err != nil {
		log.Error().Err(err).Msg("couldn't unmarshal warm up keys")
		return
	}
	if len(keys) == 0 {
		return
	}

	records, err := w.storage.Get(ctx, toMap(keys))
	if err != nil {
		log.Error().Err(err).Msg("couldn't warm up registry cache")
		return
	}
	log.Info().Int("keys", len(keys)).Int("records", len(records)).Msg("registry cache warmed up")
}

func toMap(keys []warmKey) map[string]schema.RegistryRecord {
	result := make(map[string]schema.RegistryRecord, len(keys))

	for _, key := range keys {
		result[key.RegistrationNumber] = schema.RegistryRecord{
			RegistrationNumber: key.RegistrationNumber,
			Priority:           key.Priority,
		}
	}
	return result
}

func (w *warmer) exportPeriodically(ctx context.Context) {
	ticker := time.NewTicker(w.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("warm up export stopped")
			return
		case <-ticker.C:
			if err := w.export(ctx); err != nil {
				log.Error().Err(err).Msg("couldn't export warm up keys")
			}
		}
	}
}

func (w *warmer) export(ctx context.Context) error {
	values := w.cache.GetValues()

	keys := make([]warmKey, 0, len(values))
	for _, val := range values {
		keys = append(keys, warmKey{RegistrationNumber: val.RegistrationNumber, Priority: val.Priority})
	}
	data, err := json.Marshal(keys)
	if err != nil {
		return err
	}

	// TODO guard with a shared lock once several instances export to the same redis
	return w.rdb.Set(ctx, warmUpKey, data, 0).Err()
}
