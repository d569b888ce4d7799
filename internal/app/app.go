// Package app wires dependencies and manages the service lifecycle.
package app

import (
	"context"
	"net/http"

	"github.com/verimail/verimail/internal/pkg/clock"
	"github.com/verimail/verimail/internal/pkg/config"
	"github.com/verimail/verimail/internal/pkg/goroutine"
	"github.com/verimail/verimail/internal/pkg/instrument"
	"github.com/verimail/verimail/internal/pkg/mail"
	"github.com/verimail/verimail/internal/pkg/messaging"
	"github.com/verimail/verimail/internal/pkg/otp"
	"github.com/verimail/verimail/internal/pkg/router"
	"github.com/verimail/verimail/internal/pkg/uid"
	"github.com/verimail/verimail/internal/pkg/validator"
	"github.com/verimail/verimail/internal/verification/outbound/store"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uid       uid.NumberID
	uuid      uid.StringID
	codeGen   otp.Generator

	// resources
	store     store.Store
	mail      mail.Mail
	messaging messaging.Publisher

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initCache()
	app.initMail()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
