package storage

import (
	"context"
	"time"

	"esgweb/internal/schema"
	lru "esgweb/internal/storage/lru_cache"

	"github.com/rs/zerolog/log"
)

// Storage tiered registry lookup: local lru, then redis, then the backend
type Storage struct {
	lruLocalCache  lruLocalCache[string, schema.RegistryRecord]
	redisCache     redisCache[schema.RegistryRecord]
	registryClient registryClient
}

type redisRes struct {
	found    []schema.RegistryRecord
	notFound []schema.RegistryRecord
}

// New return storage of registry records
func New(ctx context.Context,
	lruLocalCache lruLocalCache[string, schema.RegistryRecord],
	redisCache redisCache[schema.RegistryRecord],
	registryClient registryClient,
	updatePeriod time.Duration) *Storage {
	storage := &Storage{
		lruLocalCache:  lruLocalCache,
		redisCache:     redisCache,
		registryClient: registryClient,
	}

	if updatePeriod > 0 {
		go storage.runUpdater(ctx, updatePeriod)
	}

	return storage
}

// Get returns registry records by registration number.
// Records not resolved before ctx is done are left out and fetched in the background.
func (s *Storage) Get(ctx context.Context, records map[string]schema.RegistryRecord) ([]schema.RegistryRecord, error) {
	keys := extractKeys(records)

	result := make([]schema.RegistryRecord, 0, len(records))

	foundInLru, notFoundInLru := s.lruLocalCache.BatchGet(keys)
	result = append(result, foundInLru...)
	if len(notFoundInLru) == 0 {
		return result, nil
	}

	redisCh := make(chan redisRes, 1)
	registryCh := make(chan []schema.RegistryRecord, 1)
	go s.fetchFromRedis(ctx, getRecords(notFoundInLru, records), redisCh, records)

	var rRes redisRes
	select {
	case rRes = <-redisCh:
		result = append(result, rRes.found...)
	case <-ctx.Done():
		go s.asyncUpdateCache(getRecords(notFoundInLru, records), records)
		return result, nil
	}

	if len(rRes.notFound) == 0 {
		return result, nil
	}

	go s.fetchFromRegistry(ctx, rRes.notFound, registryCh)
	select {
	case fetched := <-registryCh:
		if fetched == nil {
			go s.asyncUpdateCache(rRes.notFound, records)
			return result, nil
		}
		fetched = withPriority(fetched, records)
		s.save(fetched)
		result = append(result, fetched...)
	case <-ctx.Done():
		go s.asyncUpdateCache(rRes.notFound, records)
		return result, nil
	}
	return result, nil
}

func extractKeys(records map[string]schema.RegistryRecord) []string {
	result := make([]string, 0, len(records))
	for k := range records {
		result = append(result, k)
	}
	return result
}

func (s *Storage) asyncUpdateCache(notFound []schema.RegistryRecord, records map[string]schema.RegistryRecord) {
	found, err := s.registryClient.GetCompanies(context.Background(), notFound)
	if err != nil {
		log.Error().Err(err).Int("records", len(notFound)).Msg("background registry refresh failed")
		return
	}
	s.save(withPriority(found, records))
}

// save stores records in both caches, unresolved registry answers are not cached
func (s *Storage) save(records []schema.RegistryRecord) {
	found := make([]schema.RegistryRecord, 0, len(records))
	for _, r := range records {
		if r.Found() {
			found = append(found, r)
		}
	}
	if len(found) == 0 {
		return
	}
	s.redisCache.Update(extractKeysFromSlice(found), found)
	s.lruLocalCache.Update(toCacheEntities(found))
}

func withPriority(found []schema.RegistryRecord, records map[string]schema.RegistryRecord) []schema.RegistryRecord {
	for i, v := range found {
		if r, ok := records[v.RegistrationNumber]; ok {
			found[i].Priority = r.Priority
		}
	}
	return found
}

func toCacheEntities(found []schema.RegistryRecord) []lru.CacheItem[string, schema.RegistryRecord] {
	result := make([]lru.CacheItem[string, schema.RegistryRecord], 0, len(found))

	for _, val := range found {
		result = append(result, lru.CacheItem[string, schema.RegistryRecord]{
			Key:      val.RegistrationNumber,
			Value:    val,
			Priority: val.Priority,
		})
	}
	return result
}

func extractKeysFromSlice(found []schema.RegistryRecord) []string {
	result := make([]string, 0, len(found))

	for _, val := range found {
		result = append(result, val.RegistrationNumber)
	}

	return result
}

// gets from redis and send to chan
func (s *Storage) fetchFromRedis(ctx context.Context, pending []schema.RegistryRecord, out chan<- redisRes, records map[string]schema.RegistryRecord) {
	var res redisRes
	select {
	case <-ctx.Done():
		res = redisRes{found: nil, notFound: pending}
	default:
		found, notFound, err := s.redisCache.BatchGet(ctx, extractKeysFromSlice(pending))
		if err != nil {
			log.Error().Err(err).Msg("redis registry lookup failed")
			res = redisRes{found: nil, notFound: pending}
		} else {
			res = redisRes{found: withPriority(found, records), notFound: getRecords(notFound, records)}
		}
	}
	out <- res
	if len(res.found) != 0 {
		s.lruLocalCache.Update(toCacheEntities(res.found))
	}
}

func getRecords(notFound []string, records map[string]schema.RegistryRecord) []schema.RegistryRecord {
	result := make([]schema.RegistryRecord, 0, len(notFound))

	for _, v := range notFound {
		result = append(result, records[v])
	}

	return result
}

// gets from the backend and send to chan
func (s *Storage) fetchFromRegistry(ctx context.Context, pending []schema.RegistryRecord, out chan<- []schema.RegistryRecord) {
	var res []schema.RegistryRecord
	select {
	case <-ctx.Done():
		res = nil
	default:
		found, err := s.registryClient.GetCompanies(ctx, pending)
		if err != nil {
			log.Error().Err(err).Msg("registry lookup failed")
			res = nil
		} else {
			res = found
		}
	}
	out <- res
}

// runUpdater refreshes cached records periodically
func (s *Storage) runUpdater(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cached := s.lruLocalCache.GetValues()
			if len(cached) == 0 {
				continue
			}
			refreshed, err := s.registryClient.GetCompanies(ctx, cached)
			if err != nil {
				log.Error().Err(err).Msg("periodic registry refresh failed")
				continue
			}
			priorities := make(map[string]schema.RegistryRecord, len(cached))
			for _, c := range cached {
				priorities[c.RegistrationNumber] = c
			}
			s.save(withPriority(refreshed, priorities))
		case <-ctx.Done():
			return
		}
	}
}
