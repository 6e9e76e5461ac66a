// Package tracking owns the per-identity application state: profile,
// completed meals, the water counter, and the splash flag. One state
// instance exists per identity, partitioned by a storage key derived from
// the identity's email; an anonymous slot backs the signed-out state.
package tracking

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/biteai-labs/biteai-core/internal/identity"
	"github.com/biteai-labs/biteai-core/internal/logging"
	"github.com/biteai-labs/biteai-core/internal/models"
	"github.com/biteai-labs/biteai-core/internal/storage"
)

const anonymousKey = "state:anonymous"

// IdentitySource yields the active identity; *identity.Service satisfies it.
type IdentitySource interface {
	CurrentIdentity() *models.User
}

// Store holds the in-memory tracking state for the active identity and
// persists every mutation back to durable storage.
//
// It subscribes to the identity Broadcaster: each identity change reloads
// the state slice scoped to the new identity, discarding the previous
// identity's in-memory values, so switching accounts never leaks tracking
// data across users.
type Store struct {
	storage storage.Store
	ids     IdentitySource
	log     logging.Logger
	unsubFn func()

	mu     sync.Mutex
	key    string
	state  models.AppState
	loaded bool
}

// NewStore builds the store, performs the initial load for the current
// identity, and subscribes to bus (when non-nil) for reloads.
func NewStore(st storage.Store, ids IdentitySource, bus *identity.Broadcaster, log logging.Logger) *Store {
	s := &Store{
		storage: st,
		ids:     ids,
		log:     log,
		key:     anonymousKey,
		state:   models.DefaultState(),
	}
	s.Reload(context.Background())
	if bus != nil {
		s.unsubFn = bus.Subscribe(func() {
			s.Reload(context.Background())
		})
	}
	return s
}

// Close detaches the store from the identity Broadcaster.
func (s *Store) Close() {
	if s.unsubFn != nil {
		s.unsubFn()
		s.unsubFn = nil
	}
}

// Reload re-derives the active identity, recomputes the storage key, and
// loads the state stored there, merged over defaults. A missing or corrupt
// record yields pure defaults.
func (s *Store) Reload(ctx context.Context) {
	key := anonymousKey
	if user := s.ids.CurrentIdentity(); user != nil {
		key = "state:" + user.Email
	}

	state := models.DefaultState()
	raw, err := s.storage.Get(ctx, key)
	if err == nil {
		// Unmarshalling over a defaults-prefilled value merges the stored
		// document field by field: fields absent from an older record keep
		// their defaults, including inside the profile sub-object.
		if err := json.Unmarshal(raw, &state); err != nil {
			s.log.Warn(ctx, "discarding corrupt tracking state", "key", key, "error", err)
			state = models.DefaultState()
		}
	}

	s.mu.Lock()
	s.key = key
	s.state = state
	s.loaded = true
	s.mu.Unlock()
}

// Loaded reports whether the initial load has completed.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// State returns a copy of the current state. Mutating the copy does not
// affect the store.
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// UpdateProfile shallow-merges the set fields of update into the profile.
func (s *Store) UpdateProfile(ctx context.Context, update models.ProfileUpdate) {
	s.mu.Lock()
	update.Apply(&s.state.Profile)
	s.mu.Unlock()
	s.persist(ctx)
}

// ToggleMealCompletion marks mealID done if it is not, and not done if it is.
func (s *Store) ToggleMealCompletion(ctx context.Context, mealID string) {
	s.mu.Lock()
	found := false
	meals := make([]string, 0, len(s.state.CompletedMeals))
	for _, id := range s.state.CompletedMeals {
		if id == mealID {
			found = true
			continue
		}
		meals = append(meals, id)
	}
	if !found {
		meals = append(meals, mealID)
	}
	s.state.CompletedMeals = meals
	s.mu.Unlock()
	s.persist(ctx)
}

// SetWaterGlasses sets the water counter, clamped to [0, MaxWaterGlasses].
func (s *Store) SetWaterGlasses(ctx context.Context, n int) {
	s.mu.Lock()
	s.state.WaterGlasses = clampWater(n)
	s.mu.Unlock()
	s.persist(ctx)
}

// AddWater increments the water counter, clamped to MaxWaterGlasses.
func (s *Store) AddWater(ctx context.Context) {
	s.mu.Lock()
	s.state.WaterGlasses = clampWater(s.state.WaterGlasses + 1)
	s.mu.Unlock()
	s.persist(ctx)
}

// RemoveWater decrements the water counter, floored at zero.
func (s *Store) RemoveWater(ctx context.Context) {
	s.mu.Lock()
	s.state.WaterGlasses = clampWater(s.state.WaterGlasses - 1)
	s.mu.Unlock()
	s.persist(ctx)
}

// MarkSplashSeen records that the splash screen has been shown.
func (s *Store) MarkSplashSeen(ctx context.Context) {
	s.mu.Lock()
	s.state.HasSeenSplash = true
	s.mu.Unlock()
	s.persist(ctx)
}

// Reset restores in-memory defaults and erases the durable record for the
// current identity.
func (s *Store) Reset(ctx context.Context) {
	s.mu.Lock()
	s.state = models.DefaultState()
	key := s.key
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, key); err != nil {
		s.log.Warn(ctx, "failed to erase tracking state", "key", key, "error", err)
	}
}

// persist writes the full state to the current key. Write failures are
// logged and swallowed. Nothing is written before the initial load has
// completed, so defaults cannot clobber durable state.
func (s *Store) persist(ctx context.Context) {
	s.mu.Lock()
	if !s.loaded {
		s.mu.Unlock()
		return
	}
	key := s.key
	data, err := json.Marshal(s.state)
	s.mu.Unlock()

	if err != nil {
		s.log.Warn(ctx, "failed to encode tracking state", "key", key, "error", err)
		return
	}
	if err := s.storage.Set(ctx, key, data); err != nil {
		s.log.Warn(ctx, "failed to save tracking state", "key", key, "error", err)
	}
}

func clampWater(n int) int {
	if n < 0 {
		return 0
	}
	if n > models.MaxWaterGlasses {
		return models.MaxWaterGlasses
	}
	return n
}

func cloneState(s models.AppState) models.AppState {
	out := s
	out.CompletedMeals = append([]string(nil), s.CompletedMeals...)
	out.Profile.DietaryPreferences = append([]string(nil), s.Profile.DietaryPreferences...)
	out.Profile.Allergies = append([]string(nil), s.Profile.Allergies...)
	out.Profile.Cravings = append([]string(nil), s.Profile.Cravings...)
	if s.Profile.Goal != nil {
		goal := *s.Profile.Goal
		out.Profile.Goal = &goal
	}
	return out
}
