package model

import (
	"comepouco/internal/auth"
	"comepouco/internal/config"
	"comepouco/internal/entity"
	"comepouco/internal/entity/db"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedAdmin ensures the administrator configured through ADMIN_EMAIL and
// ADMIN_PASSWORD exists. It reports whether a new account was created.
// An existing account with the same email is left untouched.
func SeedAdmin(ctx context.Context, repo Repository, hasher *auth.Hasher, cfg config.Config) (bool, error) {
	if repo == nil || hasher == nil {
		return false, nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	password := cfg.AdminPassword
	if email == "" || password == "" {
		return false, nil
	}
	if len(password) < 6 {
		return false, errors.New("admin password must be at least 6 characters")
	}
	if len(password) > 72 {
		return false, errors.New("admin password must be at most 72 bytes")
	}

	existing, err := repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != entity.RoleAdmin {
			logrus.WithField("email", email).Warn("seed admin email belongs to a non-admin user, skipping")
		}
		return false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return false, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := hasher.Hash(ctx, password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	fullName := strings.TrimSpace(cfg.AdminFullName)
	if fullName == "" {
		fullName = "Administrator"
	}

	user := &db.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}
	if err := repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("create admin: %w", err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": email}).Info("admin account created")
	return true, nil
}
