// Package app composes the application with fx: providers for every
// subsystem plus the lifecycle hook that runs the TUI.
package app

import (
	"context"

	"github.com/inovira/inovira/internal/ai"
	"github.com/inovira/inovira/internal/assistant"
	"github.com/inovira/inovira/internal/bus"
	"github.com/inovira/inovira/internal/call"
	"github.com/inovira/inovira/internal/chat"
	"github.com/inovira/inovira/internal/config"
	"github.com/inovira/inovira/internal/contacts"
	"github.com/inovira/inovira/internal/feed"
	"github.com/inovira/inovira/internal/lock"
	"github.com/inovira/inovira/internal/logging"
	"github.com/inovira/inovira/internal/media"
	"github.com/inovira/inovira/internal/prefs"
	"github.com/inovira/inovira/internal/profile"
	"github.com/inovira/inovira/internal/store"
	"github.com/inovira/inovira/internal/tui"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Params holds the resolved profile configuration passed to the fx module.
type Params struct {
	ProfileName string
}

// Module returns the fx module for the TUI app, composing all providers
// and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("app",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideLock,
			provideStore,
			providePrefs,
			provideAIClient,
			provideDevice,
			provideTimeline,
			provideComposer,
			provideContacts,
			provideChatManager,
			provideAssistant,
			provideCallManager,
			provideApp,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig() *config.Config {
	return config.LoadOrDefault(profile.ConfigPath())
}

func provideLogger(p Params) (*zap.Logger, error) {
	return logging.New(profile.LogPath(p.ProfileName), p.ProfileName, false)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := profile.EnsureDir(p.ProfileName); err != nil {
		return nil, err
	}
	logger.Info("acquiring profile lock", zap.String("profile", p.ProfileName))
	l, err := lock.Acquire(profile.Dir(p.ProfileName))
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired")
	return l, nil
}

func provideStore(p Params, logger *zap.Logger) (*store.DB, error) {
	dbPath := profile.DBPath(p.ProfileName)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func providePrefs(db *store.DB, b *bus.Bus, logger *zap.Logger) (*prefs.Store, error) {
	return prefs.New(db, b, logger)
}

func provideAIClient(cfg *config.Config, logger *zap.Logger) ai.Client {
	return ai.NewOllamaClient(cfg.AI.BaseURL, cfg.AI.Model, logger)
}

func provideDevice() media.Device {
	return media.NewLocalDevice()
}

func provideTimeline() *feed.Timeline {
	return feed.NewTimeline()
}

func provideComposer(tl *feed.Timeline, client ai.Client, b *bus.Bus, logger *zap.Logger) *feed.Composer {
	return feed.NewComposer(tl, client, b, logger, selfUser())
}

func provideContacts() *contacts.Directory {
	return contacts.NewDirectory()
}

func provideChatManager(p Params, device media.Device, b *bus.Bus, logger *zap.Logger) *chat.Manager {
	return chat.NewManager(device, b, logger, profile.RecordingsDir(p.ProfileName))
}

func provideAssistant(client ai.Client, b *bus.Bus, logger *zap.Logger, store *prefs.Store) *assistant.Session {
	return assistant.NewSession(client, b, logger, store.Translate)
}

func provideCallManager(device media.Device, b *bus.Bus, logger *zap.Logger) *call.Manager {
	return call.NewManager(device, b, logger)
}

func provideApp(p Params, store *prefs.Store, b *bus.Bus, logger *zap.Logger,
	tl *feed.Timeline, composer *feed.Composer, dir *contacts.Directory,
	chats *chat.Manager, assist *assistant.Session, calls *call.Manager) *tui.App {
	return tui.NewApp(tui.Deps{
		Profile:   p.ProfileName,
		Prefs:     store,
		Bus:       b,
		Log:       logger,
		Timeline:  tl,
		Composer:  composer,
		Contacts:  dir,
		Chats:     chats,
		Assistant: assist,
		Calls:     calls,
		Self:      selfUser(),
	})
}

func selfUser() feed.User {
	return feed.User{Name: "Ben Carter", Handle: "@bencarter"}
}

func registerLifecycle(lc fx.Lifecycle, shutdowner fx.Shutdowner, app *tui.App, lk *lock.Lock, calls *call.Manager, chats *chat.Manager, db *store.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := app.Run(); err != nil {
					logger.Error("tui error", zap.Error(err))
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			calls.End()
			chats.Close()
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("app stopped")
			return nil
		},
	})
}
