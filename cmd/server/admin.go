package main

import (
	"comepouco/internal/auth"
	"comepouco/internal/model"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE:  migrateCommand,
	}
}

func migrateCommand(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	factory := model.NewRepositoryFactory()
	repo, err := factory.CreateRepository(&cfg)
	if err != nil {
		return err
	}
	logrus.WithField("db_type", cfg.DBType).Info("schema migrated")
	return repo.Close()
}

// create-admin flags
const (
	emailFlag    = "email"
	passwordFlag = "password"
	nameFlag     = "name"
)

var createAdminFlags = map[string]cobraflags.Flag{
	emailFlag: &cobraflags.StringFlag{
		Name:  emailFlag,
		Value: "",
		Usage: "Administrator e-mail (defaults to ADMIN_EMAIL)",
	},
	passwordFlag: &cobraflags.StringFlag{
		Name:  passwordFlag,
		Value: "",
		Usage: "Administrator password, at least 6 characters (defaults to ADMIN_PASSWORD)",
	},
	nameFlag: &cobraflags.StringFlag{
		Name:  nameFlag,
		Value: "",
		Usage: "Administrator full name (defaults to ADMIN_FULL_NAME)",
	},
}

func newCreateAdminCommand() *cobra.Command {
	createAdminCmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		Long: `Create an ADMIN user. Flags override the ADMIN_EMAIL, ADMIN_PASSWORD and
ADMIN_FULL_NAME environment variables. An existing account with the same
e-mail is left untouched.`,
		RunE: createAdminCommand,
	}

	cobraflags.RegisterMap(createAdminCmd, createAdminFlags)
	return createAdminCmd
}

func createAdminCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if v := strings.TrimSpace(createAdminFlags[emailFlag].GetString()); v != "" {
		cfg.AdminEmail = v
	}
	if v := createAdminFlags[passwordFlag].GetString(); v != "" {
		cfg.AdminPassword = v
	}
	if v := strings.TrimSpace(createAdminFlags[nameFlag].GetString()); v != "" {
		cfg.AdminFullName = v
	}
	if strings.TrimSpace(cfg.AdminEmail) == "" || cfg.AdminPassword == "" {
		return errors.New("--email and --password are required")
	}

	repo, err := model.InitRepository(&cfg)
	if err != nil {
		return fmt.Errorf("initialise repository: %w", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	created, err := model.SeedAdmin(ctx, repo, auth.NewHasher(cfg.BcryptCost, 1), cfg)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(cmd.OutOrStdout(), "user %s already exists\n", strings.ToLower(strings.TrimSpace(cfg.AdminEmail)))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "administrator %s created\n", strings.ToLower(strings.TrimSpace(cfg.AdminEmail)))
	return nil
}
