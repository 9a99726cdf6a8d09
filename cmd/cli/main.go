// Command cli is the back-office bootstrap tool. It provisions the first
// admin account directly against the database, since the HTTP endpoint
// for creating users itself requires an admin token.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"
	"gorm.io/gorm"

	"github.com/briskfarm/backend/infra"
	"github.com/briskfarm/backend/infra/model"
	"github.com/briskfarm/backend/infra/initializer"
	userrepo "github.com/briskfarm/backend/infra/repository/user"
	"github.com/briskfarm/backend/pkg/config"
	"github.com/briskfarm/backend/pkg/domain"
	"github.com/briskfarm/backend/pkg/utils"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands:")
		fmt.Println("  create-admin <email> [full name]   provision an admin account")
		return
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}
}

func run(cmd string, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := initializer.SetupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	switch cmd {
	case "create-admin":
		if len(args) < 1 {
			return errors.New("usage: create-admin <email> [full name]")
		}
		email := args[0]
		fullName := strings.Join(args[1:], " ")
		return createAdmin(db, email, fullName)
	default:
		logger.Error("unknown command", "command", cmd)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// createAdmin provisions an admin account, prompting for the password
// without echo. An existing account keeps its password; only its flags
// are synced.
func createAdmin(db *gorm.DB, email, fullName string) error {
	if !utils.IsEmail(email) {
		return fmt.Errorf("invalid email %q", email)
	}

	ctx := context.Background()
	repo := userrepo.New(db)

	if existing, err := repo.GetByEmail(ctx, email); err == nil {
		_, err := repo.Update(ctx, existing.ID, map[string]any{
			"role":         domain.RoleAdmin,
			"is_superuser": true,
			"is_active":    true,
		})
		if err != nil {
			return err
		}
		color.Green("existing user kept: %s (now admin)", email)
		return nil
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	hashed, err := utils.HashPassword(string(password))
	if err != nil {
		return err
	}

	u := &model.User{
		Email:          email,
		HashedPassword: hashed,
		Role:           domain.RoleAdmin,
		IsActive:       true,
		IsSuperuser:    true,
	}
	if fullName != "" {
		u.FullName = &fullName
	}
	if err := repo.Create(ctx, u); err != nil {
		return err
	}

	color.Green("created admin user: %s", email)
	return nil
}
