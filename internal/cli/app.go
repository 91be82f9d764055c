package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dkuleshov/emgtrack/internal/auth"
	"github.com/dkuleshov/emgtrack/internal/config"
	"github.com/dkuleshov/emgtrack/internal/digest"
	"github.com/dkuleshov/emgtrack/internal/filex"
	"github.com/dkuleshov/emgtrack/internal/logging"
	"github.com/dkuleshov/emgtrack/internal/sensor"
	"github.com/dkuleshov/emgtrack/internal/service"
	"github.com/dkuleshov/emgtrack/internal/session"
	"github.com/dkuleshov/emgtrack/internal/storage"

	_ "modernc.org/sqlite"
)

const dbFileName = "emg.db"

type App struct {
	config *config.Config
	auth   *auth.Manager
	svc    *service.Service
	source sensor.Source
	log    logging.Logger
	db     *sql.DB
	reader *bufio.Reader
}

// NewApp wires the tracker from its configuration. The "file" backend keeps
// records in JSON files under the data directory; the "kv" backend keeps them
// in the local SQLite database. Sessions live in SQLite either way: the file
// backend gets the signed slot, the kv backend the plain one.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewDefault()

	if err := filex.EnsureDir(c.DataDir); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := storage.Open(ctx, filepath.Join(c.DataDir, dbFileName))
	if err != nil {
		return nil, err
	}

	var (
		store    storage.Store
		sessions session.Store
	)
	switch c.Backend {
	case config.BackendKV:
		store = storage.NewKVStore(db, storage.WithLogger(logger))
		sessions = session.NewKVStore(db)
	case config.BackendFile:
		store = storage.NewFileStore(c.DataDir, storage.WithLogger(logger))
		sessions = session.NewSecureStore(db, []byte(c.SessionSecret), c.SessionTTL, logger)
	default:
		_ = db.Close()
		return nil, fmt.Errorf("unknown backend %q", c.Backend)
	}

	svc := service.New(store, sessions, digest.New(c.Digest), logger)

	return &App{
		config: c,
		auth:   auth.NewManager(svc, logger),
		svc:    svc,
		source: sensor.NewSimulator(time.Now().UnixNano()),
		log:    logger,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.auth.Restore(ctx)
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isSignedIn() bool {
	return a.auth.IsSignedIn()
}
