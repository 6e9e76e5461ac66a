// Package cli implements the interactive BiteAI shell: the thin UI layer
// over the identity and tracking stores. Commands that read or mutate
// tracking data are gated on an active session.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/biteai-labs/biteai-core/internal/config"
	"github.com/biteai-labs/biteai-core/internal/identity"
	"github.com/biteai-labs/biteai-core/internal/logging"
	"github.com/biteai-labs/biteai-core/internal/models"
	"github.com/biteai-labs/biteai-core/internal/storage"
	"github.com/biteai-labs/biteai-core/internal/tracking"

	_ "modernc.org/sqlite"
)

// identityService is the slice of the Identity Store the CLI drives.
type identityService interface {
	Register(ctx context.Context, email, password, name, age string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Deauthenticate(ctx context.Context) error
	CurrentIdentity() *models.User
}

// trackingStore is the slice of the Profile/Tracking Store the CLI drives.
type trackingStore interface {
	State() models.AppState
	UpdateProfile(ctx context.Context, update models.ProfileUpdate)
	ToggleMealCompletion(ctx context.Context, mealID string)
	SetWaterGlasses(ctx context.Context, n int)
	AddWater(ctx context.Context)
	RemoveWater(ctx context.Context)
	MarkSplashSeen(ctx context.Context)
	Reset(ctx context.Context)
}

type App struct {
	config  *config.Config
	ids     identityService
	tracker trackingStore
	log     logging.Logger
	reader  *bufio.Reader
	db      *sql.DB
	closeFn func()
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to initialize database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	store := storage.NewSQLiteStore(db)
	bus := identity.NewBroadcaster()

	ids := identity.NewService(store, identity.NewPasswordHasher(cfg.BcryptCost), bus, log, identity.Options{
		TokenSecret:   []byte(cfg.TokenSecret),
		SessionTTL:    cfg.SessionTTL,
		RegisterDelay: cfg.RegisterDelay,
		LoginDelay:    cfg.LoginDelay,
		LogoutDelay:   cfg.LogoutDelay,
	})

	tracker := tracking.NewStore(store, ids, bus, log)

	return &App{
		config:  cfg,
		ids:     ids,
		tracker: tracker,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
		closeFn: tracker.Close,
	}, nil
}

func (a *App) Close() error {
	if a.closeFn != nil {
		a.closeFn()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.ids.CurrentIdentity() != nil
}
