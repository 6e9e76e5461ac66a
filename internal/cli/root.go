package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if user := a.ids.CurrentIdentity(); user != nil {
		return fmt.Sprintf("(%s)", user.Email)
	}
	return ""
}

// Run starts the interactive loop. It returns when the user exits or
// stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to BiteAI (type 'help' for commands)")

	if !a.tracker.State().HasSeenSplash {
		a.tracker.MarkSplashSeen(ctx)
	}

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("biteai %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "signup":
			_ = a.Signup(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			a.Whoami()

		case "water":
			if !a.requireLogin() {
				continue
			}
			a.Water(ctx, args)
		case "meal":
			if !a.requireLogin() {
				continue
			}
			a.Meal(ctx, args)
		case "meals":
			if !a.requireLogin() {
				continue
			}
			a.Meals()
		case "profile":
			if !a.requireLogin() {
				continue
			}
			a.ShowProfile()
		case "vibe":
			if !a.requireLogin() {
				continue
			}
			a.SetVibe(ctx, args)
		case "onboard":
			if !a.requireLogin() {
				continue
			}
			_ = a.Onboard(ctx)
		case "splash":
			if !a.requireLogin() {
				continue
			}
			a.Splash(ctx)
		case "reset":
			if !a.requireLogin() {
				continue
			}
			_ = a.Reset(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

// requireLogin is the CLI's route guard: private commands are rejected
// until a session exists.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Println("Please log in first ('login' or 'signup').")
	return false
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Println("Available commands: whoami, water [add|remove|set <n>], meal <id>, meals, profile, vibe <v>, onboard, splash, reset, logout, exit")
	} else {
		fmt.Println("Available commands: signup, login, exit")
	}
}
