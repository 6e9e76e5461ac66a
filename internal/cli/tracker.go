package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/biteai-labs/biteai-core/internal/models"
)

// Water handles "water", "water add", "water remove" and "water set N".
func (a *App) Water(ctx context.Context, args []string) {
	if len(args) == 0 {
		a.printWater()
		return
	}

	switch args[0] {
	case "add":
		a.tracker.AddWater(ctx)
	case "remove":
		a.tracker.RemoveWater(ctx)
	case "set":
		if len(args) < 2 {
			fmt.Println("Usage: water set <0-12>")
			return
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("Usage: water set <0-12>")
			return
		}
		a.tracker.SetWaterGlasses(ctx, n)
	default:
		fmt.Println("Usage: water [add|remove|set <n>]")
		return
	}
	a.printWater()
}

func (a *App) printWater() {
	n := a.tracker.State().WaterGlasses
	fmt.Printf("Water: %s%s %d/%d\n",
		strings.Repeat("●", n),
		strings.Repeat("○", models.MaxWaterGlasses-n),
		n, models.MaxWaterGlasses)
}

// Meal toggles the completion of one meal, e.g. "meal breakfast-1".
func (a *App) Meal(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: meal <id>")
		return
	}
	a.tracker.ToggleMealCompletion(ctx, args[0])
	a.Meals()
}

// Meals lists the completed meals.
func (a *App) Meals() {
	meals := a.tracker.State().CompletedMeals
	if len(meals) == 0 {
		fmt.Println("No meals completed today.")
		return
	}
	fmt.Println("Completed meals:")
	for _, id := range meals {
		fmt.Println("  ✓", id)
	}
}

// Splash marks the splash screen as seen.
func (a *App) Splash(ctx context.Context) {
	a.tracker.MarkSplashSeen(ctx)
	fmt.Println("Splash marked as seen.")
}

// Reset wipes the tracking state for the current identity after confirmation.
func (a *App) Reset(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Reset all tracking data? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled.")
		return nil
	}
	a.tracker.Reset(ctx)
	fmt.Println("Tracking data reset.")
	return nil
}
