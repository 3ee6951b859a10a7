package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/gostaff/internal/pkg/clock"
	"github.com/shandysiswandi/gostaff/internal/pkg/config"
	"github.com/shandysiswandi/gostaff/internal/pkg/instrument"
	"github.com/shandysiswandi/gostaff/internal/pkg/router"
	"github.com/shandysiswandi/gostaff/internal/pkg/uid"
	"github.com/shandysiswandi/gostaff/internal/pkg/validator"
	"go.uber.org/atomic"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID

	// server
	router     *router.Router
	httpServer *http.Server

	//
	stopped *atomic.Bool
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New loads the configuration file and initializes the application.
//
// The file is read from CONFIG_PATH, or /config/config.yaml
// (./config/config.yaml when LOCAL=true).
func New() *App {
	return NewWithConfig(loadConfig())
}

// NewWithConfig initializes the application around an already loaded config.
func NewWithConfig(cfg config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:     ctx,
		cancel:  cancel,
		config:  cfg,
		stopped: atomic.NewBool(false),
	}

	app.initTimezone()
	app.initInstrument()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
