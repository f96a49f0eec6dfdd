package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/todoflow/todoflow/internal/application"
	"github.com/todoflow/todoflow/internal/config"
	"github.com/todoflow/todoflow/internal/domain"
	"github.com/todoflow/todoflow/internal/infrastructure/db"
	"github.com/todoflow/todoflow/internal/infrastructure/providers"
	"github.com/todoflow/todoflow/internal/infrastructure/repositories"
	"github.com/todoflow/todoflow/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file (default: user config dir)")
	dbPath := flag.String("db-path", "", "path to SQLite database (overrides config)")
	backend := flag.String("backend", "", "storage backend: sqlite, redis, or memory (overrides config)")
	provider := flag.String("provider", string(domain.ProviderGoogle), "social login provider: google, github, or facebook")
	logout := flag.Bool("logout", false, "clear the current session and its tasks, then exit")
	migrateOnly := flag.Bool("migrate", false, "run migrations and exit")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *backend != "" {
		cfg.Store.Backend = *backend
	}

	ctx := context.Background()

	collections, sessions, cleanup, err := openBackend(ctx, cfg, *migrateOnly)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}
	if *migrateOnly {
		fmt.Println("migrations completed")
		return nil
	}

	store := application.NewStoreService(collections)
	sessionService := application.NewSessionService(sessions, store)

	if *logout {
		if err := sessionService.Logout(ctx); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil
	}

	user, err := sessionService.Current(ctx)
	if errors.Is(err, domain.ErrSessionNotFound) {
		user, err = login(ctx, sessionService, *provider)
	}
	if err != nil {
		return err
	}

	lifecycle := application.NewLifecycleService()
	engine := application.NewQueryEngine()

	model := ui.NewModel(store, lifecycle, engine, user, cfg.Share.BaseURL)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// openBackend wires the configured storage backend behind the two
// repository ports. SQLite is the default and the only backend that
// needs migrations.
func openBackend(ctx context.Context, cfg *config.Config, migrate bool) (domain.CollectionRepository, domain.SessionRepository, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		store := repositories.NewMemoryStore()
		return store, store, nil, nil
	case config.BackendRedis:
		store := repositories.NewRedisStore(cfg.Redis.Addr)
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, nil, nil, fmt.Errorf("redis at %s: %w", cfg.Redis.Addr, err)
		}
		return store, store, func() { store.Close() }, nil
	case config.BackendSQLite, "":
		path := cfg.Database.Path
		if path == "" {
			defaultPath, err := db.DefaultDBPath(db.DefaultAppName)
			if err != nil {
				return nil, nil, nil, err
			}
			path = defaultPath
		}
		adapter, err := db.NewSQLiteAdapter(path)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.RunMigrations(ctx, adapter.Raw()); err != nil {
			adapter.Close()
			return nil, nil, nil, err
		}
		if migrate {
			adapter.Close()
			return nil, nil, nil, nil
		}
		return repositories.NewCollectionRepository(adapter),
			repositories.NewSessionRepository(adapter),
			func() { adapter.Close() },
			nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown backend %q", cfg.Store.Backend)
	}
}

func login(ctx context.Context, sessions *application.SessionService, providerName string) (domain.User, error) {
	identity, err := providers.NewMockProvider(domain.AuthProvider(providerName))
	if err != nil {
		return domain.User{}, err
	}
	user, err := identity.Authenticate(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if err := sessions.Login(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}
