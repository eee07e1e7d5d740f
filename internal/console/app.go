// Package console wires the SDK pieces into the running console shell:
// configuration, credential storage, the gateway client, the session store
// and the navigation guard.
package console

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/cordalabs/adminsdk/pkg/adminsdk"
	"github.com/cordalabs/adminsdk/pkg/credstore"
	"github.com/cordalabs/adminsdk/pkg/routing"
	"github.com/cordalabs/adminsdk/pkg/slogx"
)

const BuildVersion = "v0.1.0"

// App owns the wired subsystem for one console process.
type App struct {
	cfg    Config
	logger *slog.Logger
	closer io.Closer

	Client  *adminsdk.Client
	Session *adminsdk.Session
	Guard   *routing.Guard
}

// New builds the app from config. Extra options (notifier, navigator,
// progress hosts) come from the shell embedding this package.
func New(cfg Config, extra ...adminsdk.Option) (*App, error) {
	logger := slogx.New(slogx.Options{
		App:    "console",
		Env:    cfg.Env,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	var store credstore.Store
	var closer io.Closer
	if cfg.CredentialFile != "" {
		s, err := credstore.NewSQLite(cfg.CredentialFile, []byte(cfg.CredentialSecret))
		if err != nil {
			return nil, err
		}
		store = s
		closer = s
	} else {
		store = credstore.NewMemory()
	}

	opts := []adminsdk.Option{
		adminsdk.WithCredentials(store),
		adminsdk.WithLogger(logger),
		adminsdk.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	}
	if cfg.RateRPS > 0 {
		opts = append(opts, adminsdk.WithRateLimit(cfg.RateRPS, cfg.RateBurst))
	}
	if cfg.RefetchAfterLogin {
		opts = append(opts, adminsdk.WithRefetchAfterLogin())
	}
	opts = append(opts, extra...)

	client := adminsdk.New(cfg.BaseURL, opts...)
	session := adminsdk.NewSession(client)

	guard := routing.NewGuard(routing.GuardConfig{
		Roles:          session,
		Routes:         AppRoutes(),
		Whitelist:      WhiteList(),
		NotFound:       RouteNotFound,
		MenuFromServer: cfg.MenuFromServer,
		Menus:          client,
	})

	// Forced logout and explicit logout both drop the cached server menu.
	session.OnTeardown(guard.ClearServerMenu)

	return &App{
		cfg:     cfg,
		logger:  logger,
		closer:  closer,
		Client:  client,
		Session: session,
		Guard:   guard,
	}, nil
}

func (a *App) Logger() *slog.Logger { return a.logger }

func (a *App) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
