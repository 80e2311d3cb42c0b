package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/jdisla/medioambiente-cli/internal/api"
	"github.com/jdisla/medioambiente-cli/internal/config"
	"github.com/jdisla/medioambiente-cli/internal/logging"
	"github.com/jdisla/medioambiente-cli/internal/services"
	"github.com/jdisla/medioambiente-cli/internal/session"
	"github.com/jdisla/medioambiente-cli/internal/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Session
	store   *store.Store
	auth    services.AuthService
	reports services.ReportService
	catalog services.CatalogService
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	st, err := store.Open(ctx, cfg.DatabasePath, cfg.KeyPath)
	if err != nil {
		log.Error(ctx, "error opening credential store", "err", err)
		return nil, err
	}

	sess := session.New()
	client := api.New(cfg.APIBaseURL, sess, api.WithTimeout(cfg.RequestTimeout))

	return &App{
		config:  cfg,
		log:     log,
		session: sess,
		store:   st,
		auth:    services.NewAuthService(client, st, sess, log),
		reports: services.NewReportService(client),
		catalog: services.NewCatalogService(client),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session and starts the REPL. It blocks until
// the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	// The REPL never runs against an initializing session.
	if err := a.auth.Rehydrate(ctx); err != nil {
		a.log.Error(ctx, "session rehydration failed", "err", err)
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}
