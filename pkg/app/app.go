// Package app wires configuration, persistence, providers and services
// into one dependency container consumed by the web layer and the CLI.
package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra"
	"github.com/briskfarm/backend/infra/provider/dummypayment"
	"github.com/briskfarm/backend/infra/provider/logmailer"
	"github.com/briskfarm/backend/infra/repository"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/provider/payment"
	authsvc "github.com/briskfarm/backend/pkg/service/auth"
	donationsvc "github.com/briskfarm/backend/pkg/service/donation"
	"github.com/briskfarm/backend/pkg/service/notification"
	usersvc "github.com/briskfarm/backend/pkg/service/user"
)

// Deps holds the infrastructure dependencies behind the services.
type Deps struct {
	Uow             *repository.UoW
	PaymentProvider payment.Provider
	Mailer          notification.Mailer
	Logger          *slog.Logger
}

// App is the assembled application.
type App struct {
	Deps   *Deps
	Config *config.App

	AuthService         *authsvc.Service
	UserService         *usersvc.Service
	DonationService     *donationsvc.Service
	NotificationService *notification.Service
}

// New assembles the application from pre-built dependencies.
func New(deps *Deps, cfg *config.App) *App {
	a := &App{Deps: deps, Config: cfg}

	a.AuthService = authsvc.New(deps.Uow, cfg.Jwt, deps.Logger)
	a.UserService = usersvc.New(deps.Uow, deps.Logger)
	a.NotificationService = notification.New(deps.Mailer, cfg.Email, deps.Logger)
	a.DonationService = donationsvc.New(
		deps.Uow,
		deps.PaymentProvider,
		a.NotificationService,
		deps.Logger,
	)
	return a
}

// NewFromConfig connects the database, runs migrations and assembles the
// application with the default provider implementations.
func NewFromConfig(cfg *config.App, logger *slog.Logger) (*App, error) {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, err
	}
	if err := infra.Migrate(db); err != nil {
		return nil, err
	}
	return NewWithDB(db, cfg, logger), nil
}

// NewWithDB assembles the application over an existing database handle.
// Tests use it to run the full stack against an in-memory database.
func NewWithDB(db *gorm.DB, cfg *config.App, logger *slog.Logger) *App {
	deps := &Deps{
		Uow:             repository.NewUoW(db),
		PaymentProvider: dummypayment.New(cfg.Payment, logger),
		Mailer:          logmailer.New(logger),
		Logger:          logger,
	}
	return New(deps, cfg)
}
