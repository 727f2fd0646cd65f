package service

import (
	"context"
	"strings"

	"esgweb/internal/schema"
)

// Service resolves partner registration numbers in the DART registry
type Service struct {
	storage storage
}

func New(storage storage) *Service {
	return &Service{
		storage: storage,
	}
}

// Get looks up registration numbers; duplicates after normalization are looked up once
func (s *Service) Get(ctx context.Context, records []schema.RegistryRecord) ([]schema.RegistryRecord, error) {
	if len(records) == 0 {
		return []schema.RegistryRecord{}, nil
	}

	records = removeDuplicates(normalize(records))
	if len(records) == 0 {
		return []schema.RegistryRecord{}, nil
	}

	return s.storage.Get(ctx, collectToMap(records))
}

// NormalizeRegistrationNumber strips separators, "124-81-00998" becomes "1248100998"
func NormalizeRegistrationNumber(number string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
}

func normalize(records []schema.RegistryRecord) []schema.RegistryRecord {
	result := make([]schema.RegistryRecord, 0, len(records))
	for _, r := range records {
		r.RegistrationNumber = NormalizeRegistrationNumber(r.RegistrationNumber)
		if r.RegistrationNumber == "" {
			continue
		}
		result = append(result, r)
	}
	return result
}

func collectToMap(records []schema.RegistryRecord) map[string]schema.RegistryRecord {
	result := make(map[string]schema.RegistryRecord, len(records))

	for _, val := range records {
		result[val.RegistrationNumber] = val
	}

	return result
}

// removeDuplicates keeps the first position of every number with the lowest
// priority requested for it, so the entry stays cached the longest
func removeDuplicates(records []schema.RegistryRecord) []schema.RegistryRecord {
	index := make(map[string]int)
	var list []schema.RegistryRecord
	for _, item := range records {
		i, ok := index[item.RegistrationNumber]
		if !ok {
			index[item.RegistrationNumber] = len(list)
			list = append(list, item)
			continue
		}
		if item.Priority < list[i].Priority {
			list[i].Priority = item.Priority
		}
	}
	return list
}
