package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()

	assert.Equal(t, 0, s.WaterGlasses)
	assert.False(t, s.HasSeenSplash)
	assert.Empty(t, s.CompletedMeals)
	assert.NotNil(t, s.CompletedMeals)

	p := s.Profile
	assert.Equal(t, "", p.Name)
	assert.Nil(t, p.Goal)
	assert.Equal(t, "moderate", p.ActivityLevel)
	assert.Equal(t, VibeBalanced, p.Vibe)
	assert.Equal(t, 0, p.Streak)
	assert.False(t, p.CompletedOnboarding)
	assert.NotNil(t, p.DietaryPreferences)
	assert.NotNil(t, p.Allergies)
	assert.NotNil(t, p.Cravings)
}

func TestVibe_Valid(t *testing.T) {
	for _, v := range []Vibe{VibeChill, VibeEnergetic, VibeFocused, VibeBalanced} {
		assert.True(t, v.Valid(), string(v))
		_, ok := VibeConfigs[v]
		assert.True(t, ok, string(v))
	}
	assert.False(t, Vibe("sleepy").Valid())
}

func TestUserRecord_Public(t *testing.T) {
	r := UserRecord{
		ID:           "u1",
		Email:        "a@x.io",
		PasswordHash: "$2a$10$secret",
		Salt:         "salt",
		Name:         "Alice",
		Age:          "30",
		CreatedAt:    "2026-01-02T15:04:05Z",
	}

	u := r.Public()
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "a@x.io", u.Email)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "30", u.Age)
	assert.Equal(t, "2026-01-02T15:04:05Z", u.CreatedAt)

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "passwordHash")
}

func TestProfileUpdate_Apply(t *testing.T) {
	p := DefaultProfile()

	name := "Bob"
	goal := "lose-weight"
	goalPtr := &goal
	vibe := VibeFocused
	streak := 4
	prefs := []string{"vegan"}

	u := ProfileUpdate{
		Name:               &name,
		Goal:               &goalPtr,
		Vibe:               &vibe,
		Streak:             &streak,
		DietaryPreferences: &prefs,
	}
	u.Apply(&p)

	assert.Equal(t, "Bob", p.Name)
	require.NotNil(t, p.Goal)
	assert.Equal(t, "lose-weight", *p.Goal)
	assert.Equal(t, VibeFocused, p.Vibe)
	assert.Equal(t, 4, p.Streak)
	assert.Equal(t, []string{"vegan"}, p.DietaryPreferences)

	// untouched fields keep their values
	assert.Equal(t, "moderate", p.ActivityLevel)
	assert.Equal(t, "", p.Height)
}

func TestProfileUpdate_ClearGoal(t *testing.T) {
	p := DefaultProfile()
	goal := "bulk"
	p.Goal = &goal

	var cleared *string
	u := ProfileUpdate{Goal: &cleared}
	u.Apply(&p)

	assert.Nil(t, p.Goal)
}
