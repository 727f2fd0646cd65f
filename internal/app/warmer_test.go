package app

import (
	"context"
	"errors"
	"testing"

	"esgweb/internal/schema"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lruCacheMock struct {
	values []schema.RegistryRecord
}

func (m *lruCacheMock) GetValues() []schema.RegistryRecord {
	return m.values
}

type storageMock struct {
	getFunc func(ctx context.Context, records map[string]schema.RegistryRecord) ([]schema.RegistryRecord, error)
}

func (m *storageMock) Get(ctx context.Context, records map[string]schema.RegistryRecord) ([]schema.RegistryRecord, error) {
	return m.getFunc(ctx, records)
}

func TestWarmer_Export(t *testing.T) {
	db, mock := redismock.NewClientMock()
	w := &warmer{
		rdb: db,
		cache: &lruCacheMock{values: []schema.RegistryRecord{
			{RegistrationNumber: "1248100998", Priority: 3},
		}},
	}

	mock.ExpectSet(warmUpKey, []byte(`[{"registrationNumber":"1248100998","priority":3}]`), 0).SetVal("OK")

	require.NoError(t, w.export(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWarmer_Warmup(t *testing.T) {
	db, mock := redismock.NewClientMock()
	var requested map[string]schema.RegistryRecord
	w := &warmer{
		rdb: db,
		storage: &storageMock{getFunc: func(ctx context.Context, records map[string]schema.RegistryRecord) ([]schema.RegistryRecord, error) {
			requested = records
			return nil, nil
		}},
	}

	mock.ExpectGet(warmUpKey).SetVal(`[{"registrationNumber":"1248100998","priority":3},{"registrationNumber":"1234567890","priority":0}]`)

	w.warmup(context.Background())

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, map[string]schema.RegistryRecord{
		"1248100998": {RegistrationNumber: "1248100998", Priority: 3},
		"1234567890": {RegistrationNumber: "1234567890"},
	}, requested)
}

func TestWarmer_WarmupWithoutKeys(t *testing.T) {
	testCases := []struct {
		name  string
		setup func(mock redismock.ClientMock)
	}{
		{
			name:  "nothing saved",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet(warmUpKey).RedisNil() },
		},
		{
			name:  "redis down",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet(warmUpKey).SetErr(errors.New("connection refused")) },
		},
		{
			name:  "corrupt value",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet(warmUpKey).SetVal("not json") },
		},
		{
			name:  "empty list",
			setup: func(mock redismock.ClientMock) { mock.ExpectGet(warmUpKey).SetVal("[]") },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tc.setup(mock)
			w := &warmer{
				rdb: db,
				storage: &storageMock{getFunc: func(ctx context.Context, records map[string]schema.RegistryRecord) ([]schema.RegistryRecord, error) {
					t.Error("storage must not be called")
					return nil, nil
				}},
			}

			w.warmup(context.Background())
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
