package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"pokedex/internal/config"
	"pokedex/internal/controllers"
	"pokedex/internal/logger"
	"pokedex/internal/models"
	"pokedex/internal/radar"
	"pokedex/internal/storage"
	"pokedex/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
)

const (
	AppName    = "Pokédex Mejorada"
	AppID      = "com.pokedex.desktop"
	AppVersion = "1.0.0"
)

// Application wires the MVC components around one window
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	controller *controllers.SearchController
	view       *views.MainView

	store *storage.Store
	state *models.ResultState
}

func main() {
	cfg := loadConfiguration()
	appLogger := newLogger(cfg)

	application := NewApplication(cfg, appLogger)

	store, err := storage.New(cfg.DatabasePath, appLogger)
	if err != nil {
		application.RunFatalError(
			fmt.Errorf("No se encontró la base de datos '%s'.", cfg.DatabasePath),
			err,
		)
		os.Exit(1)
	}

	application.wire(store)
	application.Run()
}

// loadConfiguration resolves settings from flags, environment and the
// optional YAML file. Flags win over environment, environment over file.
func loadConfiguration() *config.Config {
	configPath := flag.String("config", config.DefaultFile, "path of the YAML configuration file")
	dbPath := flag.String("db", "", "path of the SQLite database (overrides config)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error (overrides config)")
	logJSON := flag.Bool("log-json", false, "emit JSON log lines instead of console output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("configuration failed: %v", err)
	}
	cfg.ApplyEnv()

	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logJSON {
		cfg.LogJSON = true
	}

	return cfg
}

// newLogger builds the structured logger selected by the configuration
func newLogger(cfg *config.Config) logger.Logger {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.LogJSON {
		return logger.NewJSONLogger(level)
	}
	return logger.NewConsoleLogger(level)
}

// NewApplication creates the Fyne application and its main window
func NewApplication(cfg *config.Config, appLogger logger.Logger) *Application {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	window.CenterOnScreen()

	appLogger.Info("app", "application starting", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%dx%d", cfg.WindowWidth, cfg.WindowHeight),
		"go_version":  runtime.Version(),
		"database":    cfg.DatabasePath,
	})

	return &Application{
		fyneApp: fyneApp,
		window:  window,
		logger:  appLogger,
		state:   models.NewResultState(),
	}
}

// wire connects store, controller and view
func (a *Application) wire(store *storage.Store) {
	a.store = store

	a.controller = controllers.NewSearchController(store, radar.NewChart(), a.state, a.logger)
	a.view = views.NewMainView(a.window)

	a.controller.SetView(a.view)
	a.view.SetSearchHandler(a.controller.OnSearch)
	a.view.SetStoreInfo(store.Path())
}

// Run shows the window and blocks until the application exits
func (a *Application) Run() {
	a.setupWindowEvents()
	a.setupSignalHandling()

	a.view.Show()
	a.fyneApp.Run()

	a.logger.Info("app", "application terminated", nil)
}

// RunFatalError presents a startup failure on a bare window and returns
// once the user dismisses it. The caller decides the exit code.
func (a *Application) RunFatalError(userErr error, cause error) {
	a.logger.Error("app", cause, map[string]interface{}{
		"message": userErr.Error(),
	})

	a.window.Resize(fyne.NewSize(420, 160))

	errorDialog := dialog.NewError(userErr, a.window)
	errorDialog.SetOnClosed(func() {
		a.fyneApp.Quit()
	})
	errorDialog.Show()

	a.window.Show()
	a.fyneApp.Run()
}

// setupWindowEvents configures window lifecycle events
func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("app", "window closed", nil)
	})
}

// setupSignalHandling quits the UI loop on SIGINT/SIGTERM
func (a *Application) setupSignalHandling() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		a.logger.Info("app", "system signal received", map[string]interface{}{
			"signal": sig.String(),
		})
		fyne.Do(func() {
			a.fyneApp.Quit()
		})
	}()
}
