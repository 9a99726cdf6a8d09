package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/briskfarm/backend/infra/initializer"
	"github.com/briskfarm/backend/pkg/app"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := initializer.SetupLogger(cfg.Log)

	a, err := app.NewFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return fiberApp.Listen(addr)
}
