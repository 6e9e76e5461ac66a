package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/biteai-labs/biteai-core/internal/models"
)

// ShowProfile prints the current profile.
func (a *App) ShowProfile() {
	p := a.tracker.State().Profile

	vibe := models.VibeConfigs[p.Vibe]
	fmt.Printf("%s %s — %s\n", vibe.Emoji, valueOr(p.Name, "(no name)"), vibe.Greeting)

	goal := "none"
	if p.Goal != nil {
		goal = *p.Goal
	}
	fmt.Println("  goal:          ", goal)
	fmt.Println("  activity:      ", p.ActivityLevel)
	fmt.Println("  vibe:          ", string(p.Vibe))
	fmt.Println("  streak:        ", p.Streak)
	if p.Age != "" {
		fmt.Println("  age:           ", p.Age)
	}
	if p.Height != "" || p.Weight != "" {
		fmt.Printf("  body:           %s cm, %s kg (target %s kg)\n", p.Height, p.Weight, p.TargetWeight)
	}
	if len(p.DietaryPreferences) > 0 {
		fmt.Println("  preferences:   ", strings.Join(p.DietaryPreferences, ", "))
	}
	if len(p.Allergies) > 0 {
		fmt.Println("  allergies:     ", strings.Join(p.Allergies, ", "))
	}
	if len(p.Cravings) > 0 {
		fmt.Println("  cravings:      ", strings.Join(p.Cravings, ", "))
	}
	if !p.CompletedOnboarding {
		fmt.Println("  (onboarding not completed — run 'onboard')")
	}
}

// SetVibe handles "vibe <chill|energetic|focused|balanced>".
func (a *App) SetVibe(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: vibe <chill|energetic|focused|balanced>")
		return
	}
	vibe := models.Vibe(args[0])
	if !vibe.Valid() {
		fmt.Println("Unknown vibe:", args[0])
		return
	}
	a.tracker.UpdateProfile(ctx, models.ProfileUpdate{Vibe: &vibe})
	fmt.Printf("%s %s\n", models.VibeConfigs[vibe].Emoji, models.VibeConfigs[vibe].Greeting)
}

// Onboard walks through the guided profile setup and marks onboarding done.
func (a *App) Onboard(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Your name", os.Stdout)
	if err != nil {
		return err
	}
	age, err := getSimpleText(a.reader, "Age", os.Stdout)
	if err != nil {
		return err
	}
	height, err := getSimpleText(a.reader, "Height (cm)", os.Stdout)
	if err != nil {
		return err
	}
	weight, err := getSimpleText(a.reader, "Weight (kg)", os.Stdout)
	if err != nil {
		return err
	}
	target, err := getSimpleText(a.reader, "Target weight (kg)", os.Stdout)
	if err != nil {
		return err
	}
	goalAnswer, err := getSimpleText(a.reader, "Goal (e.g. lose-weight, build-muscle; empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	activity, err := getSimpleText(a.reader, "Activity level (sedentary/light/moderate/active)", os.Stdout)
	if err != nil {
		return err
	}
	vibeAnswer, err := getSimpleText(a.reader, "Vibe (chill/energetic/focused/balanced)", os.Stdout)
	if err != nil {
		return err
	}

	update := models.ProfileUpdate{
		Name:         &name,
		Age:          &age,
		Height:       &height,
		Weight:       &weight,
		TargetWeight: &target,
	}

	var goal *string
	if goalAnswer != "" {
		goal = &goalAnswer
	}
	update.Goal = &goal

	if activity != "" {
		update.ActivityLevel = &activity
	}
	if vibe := models.Vibe(vibeAnswer); vibe.Valid() {
		update.Vibe = &vibe
	}

	joined := time.Now().Format("2006-01-02")
	done := true
	update.JoinedDate = &joined
	update.CompletedOnboarding = &done

	a.tracker.UpdateProfile(ctx, update)
	fmt.Println("You're all set! Run 'profile' to see your profile.")
	return nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
