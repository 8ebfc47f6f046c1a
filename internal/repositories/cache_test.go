package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/svnhec/qoda-sub003/internal/common"
)

func cacheTestHelper(t *testing.T) (redismock.ClientMock, CacheRepository) {
	t.Helper()
	t.Parallel()

	db, mock := redismock.NewClientMock()
	cacheRepo := NewCacheRepository(db)

	return mock, cacheRepo
}

func TestCacheRepository_Get(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	tests := []struct {
		name    string
		key     string
		doMock  func(key string)
		want    string
		wantErr error
	}{
		{
			name: "balance hit",
			key:  "qoda:organization-balance:org_1",
			doMock: func(key string) {
				mock.ExpectGet(key).SetVal("75000")
			},
			want: "75000",
		},
		{
			name: "hit with stray whitespace",
			key:  "qoda:organization-balance:org_2",
			doMock: func(key string) {
				mock.ExpectGet(key).SetVal(" 42000\n")
			},
			want: "42000",
		},
		{
			name: "miss maps to data not found",
			key:  "qoda:organization-balance:org_3",
			doMock: func(key string) {
				mock.ExpectGet(key).RedisNil()
			},
			wantErr: common.ErrDataNotFound,
		},
		{
			name: "connection failure passes through",
			key:  "qoda:organization-balance:org_4",
			doMock: func(key string) {
				mock.ExpectGet(key).SetErr(redis.ErrClosed)
			},
			wantErr: redis.ErrClosed,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.doMock(tt.key)

			got, err := rc.Get(context.TODO(), tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
			mock.ClearExpect()
		})
	}
}

func TestCacheRepository_Set(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	t.Run("writes balance with ttl", func(t *testing.T) {
		mock.ExpectSet("qoda:organization-balance:org_1", int64(75000), time.Minute).SetVal("OK")

		err := rc.Set(context.TODO(), "qoda:organization-balance:org_1", int64(75000), time.Minute)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.ClearExpect()
	})

	t.Run("surfaces write failure", func(t *testing.T) {
		mock.ExpectSet("qoda:organization-balance:org_1", int64(75000), time.Minute).SetErr(redis.ErrClosed)

		err := rc.Set(context.TODO(), "qoda:organization-balance:org_1", int64(75000), time.Minute)
		assert.ErrorIs(t, err, redis.ErrClosed)
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.ClearExpect()
	})
}

func TestCacheRepository_SetIfNotExists(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	t.Run("acquires when absent", func(t *testing.T) {
		mock.ExpectSetNX("qoda:billing-run:2026-08-01", "1", time.Hour).SetVal(true)

		ok, err := rc.SetIfNotExists(context.TODO(), "qoda:billing-run:2026-08-01", "1", time.Hour)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.ClearExpect()
	})

	t.Run("declines when present", func(t *testing.T) {
		mock.ExpectSetNX("qoda:billing-run:2026-08-01", "1", time.Hour).SetVal(false)

		ok, err := rc.SetIfNotExists(context.TODO(), "qoda:billing-run:2026-08-01", "1", time.Hour)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.ClearExpect()
	})
}

func TestCacheRepository_Del(t *testing.T) {
	mock, rc := cacheTestHelper(t)

	t.Run("invalidates multiple keys", func(t *testing.T) {
		mock.ExpectDel("qoda:organization-balance:org_1", "qoda:card-resolution:card_1").SetVal(2)

		err := rc.Del(context.TODO(), "qoda:organization-balance:org_1", "qoda:card-resolution:card_1")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.ClearExpect()
	})

	t.Run("surfaces failure", func(t *testing.T) {
		mock.ExpectDel("qoda:organization-balance:org_1").SetErr(redis.ErrClosed)

		err := rc.Del(context.TODO(), "qoda:organization-balance:org_1")
		assert.ErrorIs(t, err, redis.ErrClosed)
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.ClearExpect()
	})
}
