package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/biteai-labs/biteai-core/internal/models"
)

func stubInputs(t *testing.T, lines []string, password string) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeIdentity struct {
	user *models.User

	regEmail, regPassword, regName, regAge string
	regErr                                 error

	authEmail, authPassword string
	authErr                 error

	deauthCalled bool
	deauthErr    error
}

func (f *fakeIdentity) Register(_ context.Context, email, password, name, age string) (*models.User, error) {
	f.regEmail, f.regPassword, f.regName, f.regAge = email, password, name, age
	if f.regErr != nil {
		return nil, f.regErr
	}
	f.user = &models.User{ID: "u1", Email: email, Name: name, Age: age}
	return f.user, nil
}

func (f *fakeIdentity) Authenticate(_ context.Context, email, password string) (*models.User, error) {
	f.authEmail, f.authPassword = email, password
	if f.authErr != nil {
		return nil, f.authErr
	}
	f.user = &models.User{ID: "u1", Email: email, Name: "Alice"}
	return f.user, nil
}

func (f *fakeIdentity) Deauthenticate(context.Context) error {
	f.deauthCalled = true
	if f.deauthErr != nil {
		return f.deauthErr
	}
	f.user = nil
	return nil
}

func (f *fakeIdentity) CurrentIdentity() *models.User { return f.user }

type fakeTracker struct {
	state       models.AppState
	resetCalled bool
	updates     []models.ProfileUpdate
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{state: models.DefaultState()}
}

func (f *fakeTracker) State() models.AppState { return f.state }
func (f *fakeTracker) UpdateProfile(_ context.Context, u models.ProfileUpdate) {
	f.updates = append(f.updates, u)
	u.Apply(&f.state.Profile)
}
func (f *fakeTracker) ToggleMealCompletion(_ context.Context, id string) {
	for i, m := range f.state.CompletedMeals {
		if m == id {
			f.state.CompletedMeals = append(f.state.CompletedMeals[:i], f.state.CompletedMeals[i+1:]...)
			return
		}
	}
	f.state.CompletedMeals = append(f.state.CompletedMeals, id)
}
func (f *fakeTracker) SetWaterGlasses(_ context.Context, n int) { f.state.WaterGlasses = n }
func (f *fakeTracker) AddWater(context.Context)                 { f.state.WaterGlasses++ }
func (f *fakeTracker) RemoveWater(context.Context)              { f.state.WaterGlasses-- }
func (f *fakeTracker) MarkSplashSeen(context.Context)           { f.state.HasSeenSplash = true }
func (f *fakeTracker) Reset(context.Context) {
	f.resetCalled = true
	f.state = models.DefaultState()
}

func TestSignup_Success(t *testing.T) {
	f := &fakeIdentity{}
	a := &App{ids: f, tracker: newFakeTracker()}

	restore := stubInputs(t, []string{"alice@example.org", "Alice", "30"}, "secret")
	defer restore()

	if err := a.Signup(context.Background()); err != nil {
		t.Fatalf("Signup err: %v", err)
	}
	if f.regEmail != "alice@example.org" {
		t.Fatalf("Signup email mismatch: %q", f.regEmail)
	}
	if f.regName != "Alice" || f.regAge != "30" {
		t.Fatalf("Signup profile mismatch: %q %q", f.regName, f.regAge)
	}
	if f.regPassword != "secret" {
		t.Fatalf("Signup password mismatch: %q", f.regPassword)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected session after signup")
	}
}

func TestSignup_ErrorPropagates(t *testing.T) {
	f := &fakeIdentity{regErr: errors.New("already exists")}
	a := &App{ids: f, tracker: newFakeTracker()}

	restore := stubInputs(t, []string{"alice@example.org", "Alice", ""}, "secret")
	defer restore()

	if err := a.Signup(context.Background()); err == nil {
		t.Fatalf("want error from Register")
	}
	if a.isLoggedIn() {
		t.Fatalf("must not be logged in after failed signup")
	}
}

func TestLogin_Success(t *testing.T) {
	f := &fakeIdentity{}
	a := &App{ids: f, tracker: newFakeTracker()}

	restore := stubInputs(t, []string{"alice@example.org"}, "secret")
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.authEmail != "alice@example.org" || f.authPassword != "secret" {
		t.Fatalf("Login credential mismatch: %q %q", f.authEmail, f.authPassword)
	}
}

func TestLogout(t *testing.T) {
	f := &fakeIdentity{user: &models.User{ID: "u1", Email: "a@x.io"}}
	a := &App{ids: f, tracker: newFakeTracker()}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.deauthCalled {
		t.Fatalf("Deauthenticate not called")
	}
	if a.isLoggedIn() {
		t.Fatalf("still logged in after logout")
	}
}

func TestLogout_ErrorPropagates(t *testing.T) {
	f := &fakeIdentity{deauthErr: errors.New("storage down")}
	a := &App{ids: f, tracker: newFakeTracker()}

	if err := a.Logout(context.Background()); err == nil {
		t.Fatalf("want error from Deauthenticate")
	}
}
