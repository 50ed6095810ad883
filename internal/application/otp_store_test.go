package application_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"neb-hris/internal/application"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func pendingFixture() application.PendingApplication {
	return application.PendingApplication{
		Code:      "042137",
		JobID:     "7b5a2f1e-9c4d-4a2b-8f3e-1d2c3b4a5e6f",
		FirstName: "Ravi",
		LastName:  "Menon",
		Email:     "ravi.menon@example.com",
		Phone:     "9876543210",
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestMemoryOtpStore(t *testing.T) {
	ctx := context.Background()
	store := application.NewMemoryOtpStore()
	pending := pendingFixture()

	t.Run("absent email", func(t *testing.T) {
		got, err := store.Get(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("put then get", func(t *testing.T) {
		assert.NoError(t, store.Put(ctx, pending.Email, pending))

		got, err := store.Get(ctx, pending.Email)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, pending.Code, got.Code)
		assert.Equal(t, pending.JobID, got.JobID)
	})

	t.Run("put replaces previous entry", func(t *testing.T) {
		replaced := pending
		replaced.Code = "913550"
		assert.NoError(t, store.Put(ctx, pending.Email, replaced))

		got, err := store.Get(ctx, pending.Email)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "913550", got.Code)
	})

	t.Run("delete", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, pending.Email))

		got, err := store.Get(ctx, pending.Email)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRedisOtpStore(t *testing.T) {
	ctx := context.Background()
	pending := pendingFixture()
	key := "careers:otp:" + pending.Email

	payload, err := json.Marshal(pending)
	assert.NoError(t, err)

	t.Run("put sets the ttl", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := application.NewRedisOtpStore(rdb)

		mock.ExpectSet(key, payload, application.OtpTTL).SetVal("OK")

		assert.NoError(t, store.Put(ctx, pending.Email, pending))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get round trips", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := application.NewRedisOtpStore(rdb)

		mock.ExpectGet(key).SetVal(string(payload))

		got, err := store.Get(ctx, pending.Email)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, pending.Code, got.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing key reads as nil", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := application.NewRedisOtpStore(rdb)

		mock.ExpectGet(key).RedisNil()

		got, err := store.Get(ctx, pending.Email)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete removes the key", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		store := application.NewRedisOtpStore(rdb)

		mock.ExpectDel(key).SetVal(1)

		assert.NoError(t, store.Delete(ctx, pending.Email))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
