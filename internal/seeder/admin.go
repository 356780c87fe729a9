package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobportal/internal/domain/admin"
)

// EnsureDefaultAdmin is the startup reconciliation for the bootstrap
// account: make sure one admin with the configured email exists. Running
// it again is a no-op, and a concurrent replica creating the same admin
// is treated as success.
func EnsureDefaultAdmin(ctx context.Context, admins admin.Repository, email, password string, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return fmt.Errorf("seed admin: email and password are required")
	}

	exists, err := admins.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if exists {
		logger.Printf("[Seed] admin %s already exists", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	a := admin.Admin{Email: email, PasswordHash: string(hash)}
	if err := admins.Create(ctx, &a); err != nil {
		if errors.Is(err, admin.ErrEmailTaken) {
			logger.Printf("[Seed] admin %s created concurrently", email)
			return nil
		}
		return fmt.Errorf("seed admin: %w", err)
	}

	logger.Printf("[Seed] created initial admin %s", email)
	return nil
}
