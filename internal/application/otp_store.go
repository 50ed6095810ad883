package application

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// OtpTTL bounds how long an issued code stays valid.
const OtpTTL = 5 * time.Minute

// PendingApplication holds everything needed to persist the
// application once the email is verified. A later Put for the same
// email replaces the previous entry.
type PendingApplication struct {
	Code       string    `json:"code"`
	JobID      string    `json:"job_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	ResumePath string    `json:"resume_path"`
	CreatedAt  time.Time `json:"created_at"`
}

// OtpStore keeps pending challenges keyed by applicant email.
// Implementations must be safe for concurrent apply/verify calls on
// the same email.
//
//go:generate mockgen -source=otp_store.go -destination=mock/otp_store_mock.go -package=mock
type OtpStore interface {
	Put(ctx context.Context, email string, pending PendingApplication) error
	// Get returns nil when no unexpired challenge exists.
	Get(ctx context.Context, email string) (*PendingApplication, error)
	Delete(ctx context.Context, email string) error
}

const otpKeyPrefix = "careers:otp:"

type redisOtpStore struct {
	rdb *redis.Client
}

func NewRedisOtpStore(rdb *redis.Client) OtpStore {
	return &redisOtpStore{rdb: rdb}
}

func (s *redisOtpStore) Put(ctx context.Context, email string, pending PendingApplication) error {
	data, err := json.Marshal(pending)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, otpKeyPrefix+email, data, OtpTTL).Err()
}

func (s *redisOtpStore) Get(ctx context.Context, email string) (*PendingApplication, error) {
	data, err := s.rdb.Get(ctx, otpKeyPrefix+email).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var pending PendingApplication
	if err := json.Unmarshal(data, &pending); err != nil {
		return nil, err
	}
	return &pending, nil
}

func (s *redisOtpStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, otpKeyPrefix+email).Err()
}

type memoryEntry struct {
	pending   PendingApplication
	expiresAt time.Time
}

// memoryOtpStore is the process-local fallback used when Redis is not
// configured, and in tests.
type memoryOtpStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryOtpStore() OtpStore {
	return &memoryOtpStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryOtpStore) Put(_ context.Context, email string, pending PendingApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = memoryEntry{pending: pending, expiresAt: time.Now().Add(OtpTTL)}
	return nil
}

func (s *memoryOtpStore) Get(_ context.Context, email string) (*PendingApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.entries, email)
		return nil, nil
	}

	pending := entry.pending
	return &pending, nil
}

func (s *memoryOtpStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}
