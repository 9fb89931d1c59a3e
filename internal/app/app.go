// Package app wires config, logging, storage, the session manager and the
// notification center, and runs the terminal program.
package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"campaigndash/internal/config"
	"campaigndash/internal/eventbus"
	"campaigndash/internal/logging"
	"campaigndash/internal/notifications"
	"campaigndash/internal/routes"
	"campaigndash/internal/session"
	"campaigndash/internal/storage"
	"campaigndash/internal/ui"
)

// Options are the command line settings
type Options struct {
	ConfigPath  string
	InitialPath string
	Debug       bool
}

// App holds the long-lived services
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Bus     eventbus.EventBus
	Store   storage.Store
	Routes  *routes.Table
	Session *session.Manager
	Center  *notifications.Center

	opts        Options
	unsubscribe func()
}

// New loads the config and builds every service. The session is not
// restored yet; the UI does that on start.
func New(opts Options) (*App, error) {
	configSvc := config.NewConfigService(opts.ConfigPath)
	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogFile, opts.Debug)
	if err != nil {
		return nil, err
	}
	logger.Info("config loaded", zap.String("path", configSvc.Path()))

	bus := eventbus.New(logger)
	store := OpenStore(cfg.StorageDir, logger)
	table := routes.NewTable()

	a := &App{
		Config: cfg,
		Logger: logger,
		Bus:    bus,
		Store:  store,
		Routes: table,
		Session: session.NewManager(store, table,
			session.WithBus(bus),
			session.WithLogger(logger)),
		Center: notifications.New(
			notifications.WithMax(cfg.Notifications.Max),
			notifications.WithBus(bus),
			notifications.WithLogger(logger)),
		opts: opts,
	}
	a.unsubscribe = a.Center.Subscribe(bus)
	return a, nil
}

// OpenStore opens the disk store, or an unavailable store when the
// directory cannot be used. Callers then see a signed-out session.
func OpenStore(dir string, logger *zap.Logger) storage.Store {
	store, err := storage.NewDiskStore(dir)
	if err != nil {
		logger.Warn("session storage unavailable", zap.String("dir", dir), zap.Error(err))
		return storage.Unavailable{}
	}
	return store
}

// Context returns ctx carrying the session manager
func (a *App) Context(ctx context.Context) context.Context {
	return session.NewContext(ctx, a.Session)
}

// Run starts the terminal program and blocks until it exits
func (a *App) Run(ctx context.Context) error {
	sess := session.MustFromContext(a.Context(ctx))

	model := ui.NewModel(a.Config, sess, a.Center,
		ui.WithBus(a.Bus),
		ui.WithLogger(a.Logger),
		ui.WithInitialPath(a.opts.InitialPath))

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.Config.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	done := make(chan struct{})
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		case <-done:
		default:
			a.Logger.Warn("event channel full, dropping event", zap.String("type", string(e.Type())))
		}
	}
	unsubs := []func(){
		a.Bus.Subscribe(eventbus.EventNotificationAdded, forward),
		a.Bus.Subscribe(eventbus.EventError, forward),
	}
	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-done:
				return
			}
		}
	}()

	a.Logger.Info("starting UI", zap.String("path", a.opts.InitialPath))
	_, err := p.Run()

	for _, u := range unsubs {
		u()
	}
	close(done)

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		a.Logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	a.Logger.Info("UI exited normally")
	return nil
}

// Close stops the bus and flushes the log
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.Bus.Close()
	_ = a.Logger.Sync()
}
