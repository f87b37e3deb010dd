package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/luxestate/luxestate-api/internal/config"
	"github.com/luxestate/luxestate-api/internal/domain"
	"github.com/luxestate/luxestate-api/internal/repository/postgres"
	"github.com/luxestate/luxestate-api/internal/util"
)

// seedadmin creates the initial superuser account from SEED_ADMIN_* env vars.
// It refuses to touch an email that already has an account.
func main() {
	cfg := config.Load()

	name := strings.TrimSpace(os.Getenv("SEED_ADMIN_NAME"))
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if name == "" || email == "" || password == "" {
		log.Fatal("SEED_ADMIN_NAME, SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}
	if err := util.ValidatePassword(password); err != nil {
		log.Fatalf("seed password rejected: %v", err)
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	admins := postgres.NewAdminRepo(db)
	if _, err := admins.FindByEmail(ctx, email); err == nil {
		log.Fatalf("account %s already exists, refusing to overwrite", email)
	} else if !errors.Is(err, sql.ErrNoRows) {
		log.Fatalf("check existing account: %v", err)
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	admin, err := admins.Create(ctx, name, email, hash, domain.RoleSuperuser)
	if err != nil {
		log.Fatalf("create superuser: %v", err)
	}
	log.Printf("created superuser %s (%s)", admin.Email, admin.ID)
}
