package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for account details and registers. A successful signup
// is immediately signed in (the service auto-authenticates).
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	age, err := getSimpleText(a.reader, "Enter your age (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.ids.Register(ctx, email, password, name, age)
	if err != nil {
		fmt.Println("Signup failed:", err)
		return err
	}

	fmt.Printf("Welcome to BiteAI, %s!\n", user.Name)
	return nil
}

// Login prompts for credentials and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.ids.Authenticate(ctx, email, password)
	if err != nil {
		fmt.Println("Login failed:", err)
		return err
	}

	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Logout ends the active session. Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.ids.Deauthenticate(ctx); err != nil {
		fmt.Println("Logout failed:", err)
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the signed-in user.
func (a *App) Whoami() {
	user := a.ids.CurrentIdentity()
	if user == nil {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("%s <%s> (member since %s)\n", user.Name, user.Email, user.CreatedAt)
}
