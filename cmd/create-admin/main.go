// Command create-admin provisions a staff account or resets its password.
//
//	go run ./cmd/create-admin -email alice@example.com -name Alice -role CASHIER -password s3cret
//	go run ./cmd/create-admin -email admin@example.com -password newpass -reset
package main

import (
	"flag"
	"log/slog"
	"os"

	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/service"
	"go-pos-ledger/pkg/config"
	"go-pos-ledger/pkg/database"
)

func main() {
	// 1. Load Env
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	email := flag.String("email", cfg.AdminEmail, "staff email")
	name := flag.String("name", "Master Administrator", "full name for a new account")
	role := flag.String("role", model.RoleMasterAdmin, "role code for a new account (MASTER_ADMIN or CASHIER)")
	password := flag.String("password", cfg.AdminPassword, "password to set")
	reset := flag.Bool("reset", false, "reset the password when the account already exists")
	flag.Parse()

	if *email == "" || *password == "" {
		slog.Error("email and password are required")
		os.Exit(2)
	}

	// 2. Setup Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("auto migrate failed", "error", err)
		os.Exit(1)
	}

	seedService := service.NewSeedService(repository.NewPrivilegeRepo(db), repository.NewRoleRepo(db), repository.NewUserRepo(db))
	if err := seedService.SeedAccessControl(); err != nil {
		slog.Error("failed to seed access control", "error", err)
		os.Exit(1)
	}

	// 3. Create or reset
	user, created, err := seedService.EnsureStaffUser(*email, *name, *role, *password, *reset)
	if err != nil {
		slog.Error("failed to provision staff user", "email", *email, "error", err)
		os.Exit(1)
	}

	switch {
	case created:
		slog.Info("staff user created", "email", user.Email, "role", *role)
	case *reset:
		slog.Info("password reset", "email", user.Email)
	default:
		slog.Info("staff user already exists, nothing changed (use -reset to set a new password)", "email", user.Email)
	}
}
