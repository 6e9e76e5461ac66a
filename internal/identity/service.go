// Package identity owns the registered-user table and the active session.
// It is the local stand-in for an auth backend: accounts and sessions live
// in durable local storage, and every identity change is announced through
// a Broadcaster so dependent stores can resynchronize.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/biteai-labs/biteai-core/internal/common"
	"github.com/biteai-labs/biteai-core/internal/logging"
	"github.com/biteai-labs/biteai-core/internal/models"
	"github.com/biteai-labs/biteai-core/internal/storage"
	"github.com/google/uuid"
)

const (
	usersKey   = "auth:users"
	sessionKey = "auth:session"
)

// Options configures a Service. Zero values fall back to defaults matching
// the original client: a 7-day session and sub-second simulated latency.
type Options struct {
	TokenSecret []byte
	SessionTTL  time.Duration

	// Simulated network latency per operation. The delays only exist so a
	// UI can exercise loading states; they have no correctness meaning and
	// are zero in tests.
	RegisterDelay time.Duration
	LoginDelay    time.Duration
	LogoutDelay   time.Duration

	// Now is the clock; defaults to time.Now.
	Now func() time.Time
}

// Service implements signup, signin, signout, and current-user lookup over
// durable storage.
type Service struct {
	store  storage.Store
	hasher *PasswordHasher
	bus    *Broadcaster
	log    logging.Logger
	opts   Options
}

func NewService(store storage.Store, hasher *PasswordHasher, bus *Broadcaster, log logging.Logger, opts Options) *Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 7 * 24 * time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{store: store, hasher: hasher, bus: bus, log: log, opts: opts}
}

// Register creates an account and immediately signs it in, so a successful
// signup always yields an active session. The registered-user table is
// updated inside a transaction; a duplicate email leaves it untouched and
// returns common.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, email, password, name, age string) (*models.User, error) {
	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", common.ErrValidation)
	}

	simulateLatency(s.opts.RegisterDelay)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	record := models.UserRecord{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Salt:         "bcrypt",
		Name:         name,
		Age:          age,
		CreatedAt:    s.opts.Now().UTC().Format(time.RFC3339),
	}

	err = s.store.Update(ctx, usersKey, func(current []byte) ([]byte, error) {
		users := s.decodeUsers(ctx, current)
		if _, exists := users[email]; exists {
			return nil, common.ErrAlreadyExists
		}
		users[email] = record
		return json.Marshal(users)
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		s.log.Error(ctx, "failed to save user record", "email", email, "error", err)
		return nil, common.ErrStorageUnavailable
	}

	s.log.Info(ctx, "user registered", "email", email, "id", record.ID)

	return s.Authenticate(ctx, email, password)
}

// Authenticate checks the credentials against the registered-user table and,
// on success, issues a fresh session and broadcasts identity-changed.
// Unknown emails and wrong passwords both yield common.ErrInvalidCredentials
// and issue no session.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	simulateLatency(s.opts.LoginDelay)

	raw, err := s.store.Get(ctx, usersKey)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		s.log.Error(ctx, "failed to read user table", "error", err)
		return nil, common.ErrStorageUnavailable
	}

	users := s.decodeUsers(ctx, raw)
	record, ok := users[email]
	if !ok || !s.hasher.Verify(record.PasswordHash, password) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := GenerateToken(record.ID, s.opts.TokenSecret, s.opts.SessionTTL)
	if err != nil {
		s.log.Error(ctx, "failed to generate session token", "error", err)
		return nil, common.ErrStorageUnavailable
	}

	session := models.Session{
		User:      record.Public(),
		Token:     token,
		ExpiresAt: s.opts.Now().Add(s.opts.SessionTTL).UnixMilli(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, common.ErrStorageUnavailable
	}
	if err := s.store.Set(ctx, sessionKey, data); err != nil {
		s.log.Error(ctx, "failed to save session", "error", err)
		return nil, common.ErrStorageUnavailable
	}

	s.log.Info(ctx, "session issued", "email", email)
	s.bus.Broadcast()

	user := session.User
	return &user, nil
}

// Deauthenticate erases the active session and broadcasts identity-changed.
// Safe to call with no session.
func (s *Service) Deauthenticate(ctx context.Context) error {
	simulateLatency(s.opts.LogoutDelay)

	if err := s.store.Delete(ctx, sessionKey); err != nil {
		s.log.Error(ctx, "failed to delete session", "error", err)
		return common.ErrStorageUnavailable
	}

	s.log.Info(ctx, "session cleared")
	s.bus.Broadcast()
	return nil
}

// CurrentIdentity returns the signed-in user, or nil when there is no
// session. An expired or unreadable session record is purged and reported
// as absent; the method never fails.
func (s *Service) CurrentIdentity() *models.User {
	ctx := context.Background()

	raw, err := s.store.Get(ctx, sessionKey)
	if err != nil {
		return nil
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		s.log.Warn(ctx, "discarding corrupt session record", "error", err)
		_ = s.store.Delete(ctx, sessionKey)
		return nil
	}

	if s.opts.Now().UnixMilli() > session.ExpiresAt {
		_ = s.store.Delete(ctx, sessionKey)
		return nil
	}

	user := session.User
	return &user
}

// decodeUsers parses the registered-user table, treating absence and
// corruption alike as an empty table.
func (s *Service) decodeUsers(ctx context.Context, raw []byte) map[string]models.UserRecord {
	users := make(map[string]models.UserRecord)
	if len(raw) == 0 {
		return users
	}
	if err := json.Unmarshal(raw, &users); err != nil {
		s.log.Warn(ctx, "discarding corrupt user table", "error", err)
		return make(map[string]models.UserRecord)
	}
	return users
}

// simulateLatency blocks for d. Cancellation is deliberately not supported:
// once invoked, an operation runs to completion, like the original client.
func simulateLatency(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
