package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"coursedesk/internal/domain/account"

	"github.com/google/uuid"
)

// AccountStoreForSeed defines the store interface needed by SeedAdmin.
type AccountStoreForSeed interface {
	Save(ctx context.Context, a account.Account) error
	Count(ctx context.Context) (int, error)
}

// SeedAdminDeps holds dependencies for SeedAdmin.
type SeedAdminDeps struct {
	AccountStore AccountStoreForSeed
}

// ExecuteSeedAdmin creates the initial admin account if none exists yet.
// Idempotent: a populated account table is left untouched.
// PRE: email and password come from configuration
// POST: At least one admin account exists
func ExecuteSeedAdmin(ctx context.Context, deps SeedAdminDeps, email, password string) error {
	n, err := deps.AccountStore.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	a := account.Account{
		ID:        uuid.New().String(),
		Email:     email,
		Role:      account.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := a.SetPassword(password); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if err := deps.AccountStore.Save(ctx, a); err != nil {
		return err
	}

	slog.Info("admin_seeded", "email", email)
	return nil
}
