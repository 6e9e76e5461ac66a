package models

// Vibe is the profile's mood/theming tag.
type Vibe string

const (
	VibeChill     Vibe = "chill"
	VibeEnergetic Vibe = "energetic"
	VibeFocused   Vibe = "focused"
	VibeBalanced  Vibe = "balanced"
)

// Valid reports whether v is one of the known vibes.
func (v Vibe) Valid() bool {
	switch v {
	case VibeChill, VibeEnergetic, VibeFocused, VibeBalanced:
		return true
	}
	return false
}

// VibeConfig describes how the UI presents a vibe.
type VibeConfig struct {
	Label       string
	Description string
	Emoji       string
	AccentHue   int
	Greeting    string
}

// VibeConfigs maps each vibe to its presentation.
var VibeConfigs = map[Vibe]VibeConfig{
	VibeChill: {
		Label:       "Chill",
		Description: "Relaxed vibes, easy pace",
		Emoji:       "🌊",
		AccentHue:   200,
		Greeting:    "Take it easy today",
	},
	VibeEnergetic: {
		Label:       "Energetic",
		Description: "High energy, crush goals",
		Emoji:       "⚡",
		AccentHue:   45,
		Greeting:    "Let's crush it!",
	},
	VibeFocused: {
		Label:       "Focused",
		Description: "Dialed in, no distractions",
		Emoji:       "🎯",
		AccentHue:   280,
		Greeting:    "Stay locked in",
	},
	VibeBalanced: {
		Label:       "Balanced",
		Description: "Steady and sustainable",
		Emoji:       "☯️",
		AccentHue:   145,
		Greeting:    "Balance is key",
	},
}

// UserProfile holds the onboarding and preference fields of one identity.
// Numeric-looking fields stay strings because they are stored as entered.
type UserProfile struct {
	Name                string   `json:"name"`
	Age                 string   `json:"age"`
	Height              string   `json:"height"`
	Weight              string   `json:"weight"`
	TargetWeight        string   `json:"targetWeight"`
	Goal                *string  `json:"goal"`
	DietaryPreferences  []string `json:"dietaryPreferences"`
	ActivityLevel       string   `json:"activityLevel"`
	Allergies           []string `json:"allergies"`
	Cravings            []string `json:"cravings"`
	Vibe                Vibe     `json:"vibe"`
	Streak              int      `json:"streak"`
	JoinedDate          string   `json:"joinedDate"`
	CompletedOnboarding bool     `json:"completedOnboarding"`
}

// AppState is the full tracking state of one identity.
type AppState struct {
	Profile        UserProfile `json:"profile"`
	CompletedMeals []string    `json:"completedMeals"`
	WaterGlasses   int         `json:"waterGlasses"`
	HasSeenSplash  bool        `json:"hasSeenSplash"`
}

// MaxWaterGlasses caps the water tracker.
const MaxWaterGlasses = 12

// DefaultProfile returns a profile with all documented defaults.
func DefaultProfile() UserProfile {
	return UserProfile{
		Goal:               nil,
		DietaryPreferences: []string{},
		ActivityLevel:      "moderate",
		Allergies:          []string{},
		Cravings:           []string{},
		Vibe:               VibeBalanced,
	}
}

// DefaultState returns the all-default tracking state used for any identity
// that has never been observed before.
func DefaultState() AppState {
	return AppState{
		Profile:        DefaultProfile(),
		CompletedMeals: []string{},
	}
}

// ProfileUpdate is a partial profile: only non-nil fields are applied.
type ProfileUpdate struct {
	Name                *string
	Age                 *string
	Height              *string
	Weight              *string
	TargetWeight        *string
	Goal                **string
	DietaryPreferences  *[]string
	ActivityLevel       *string
	Allergies           *[]string
	Cravings            *[]string
	Vibe                *Vibe
	Streak              *int
	JoinedDate          *string
	CompletedOnboarding *bool
}

// Apply merges the set fields of u into p.
func (u ProfileUpdate) Apply(p *UserProfile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.TargetWeight != nil {
		p.TargetWeight = *u.TargetWeight
	}
	if u.Goal != nil {
		p.Goal = *u.Goal
	}
	if u.DietaryPreferences != nil {
		p.DietaryPreferences = *u.DietaryPreferences
	}
	if u.ActivityLevel != nil {
		p.ActivityLevel = *u.ActivityLevel
	}
	if u.Allergies != nil {
		p.Allergies = *u.Allergies
	}
	if u.Cravings != nil {
		p.Cravings = *u.Cravings
	}
	if u.Vibe != nil {
		p.Vibe = *u.Vibe
	}
	if u.Streak != nil {
		p.Streak = *u.Streak
	}
	if u.JoinedDate != nil {
		p.JoinedDate = *u.JoinedDate
	}
	if u.CompletedOnboarding != nil {
		p.CompletedOnboarding = *u.CompletedOnboarding
	}
}
