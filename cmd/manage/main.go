package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dangerclosesec/traininghub/internal/auth"
	"github.com/dangerclosesec/traininghub/internal/config"
	"github.com/dangerclosesec/traininghub/internal/database"
	"github.com/dangerclosesec/traininghub/internal/logging"
	"github.com/dangerclosesec/traininghub/internal/repository"
	"github.com/dangerclosesec/traininghub/internal/seed"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	configPath string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (environment variables still apply)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:           "manage",
	Short:         "Administrative tasks for the TrainingHub API",
	Long:          `manage migrates the schema, seeds the demo accounts and issues tokens for local testing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(cfg *config.Config, db *gorm.DB) error {
			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Println("Schema migrated successfully")
			return nil
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the admin, manager and employee demo accounts",
	Long:  `Create the fixed demo accounts. Accounts whose email already exists are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(cfg *config.Config, db *gorm.DB) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			created, err := seed.Users(ctx, repository.NewUserRepository(db), auth.NewPasswordHasher(), seed.DefaultAccounts)
			if err != nil {
				return fmt.Errorf("seeding users: %w", err)
			}

			if len(created) == 0 {
				fmt.Println("All demo accounts already exist")
				return nil
			}
			fmt.Printf("Seeded %d account(s):\n", len(created))
			for _, acct := range seed.DefaultAccounts {
				for _, email := range created {
					if email == acct.Email {
						fmt.Printf("  - %s (%s) password: %s\n", acct.Email, acct.Role, acct.Password)
					}
				}
			}
			return nil
		})
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token [email]",
	Short: "Issue a bearer token for an existing user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDatabase(func(cfg *config.Config, db *gorm.DB) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			user, err := repository.NewUserRepository(db).FindByEmail(ctx, strings.ToLower(args[0]))
			if err != nil {
				return fmt.Errorf("finding %s: %w", args[0], err)
			}

			token, err := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod).Generate(user.ID, user.Role)
			if err != nil {
				return fmt.Errorf("generating token: %w", err)
			}

			if verbose {
				fmt.Fprintf(os.Stderr, "user %s role %s expires in %s\n", user.ID, user.Role, cfg.JWT.ExpiryPeriod)
			}
			fmt.Println(token)
			return nil
		})
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func withDatabase(fn func(cfg *config.Config, db *gorm.DB) error) error {
	cfg := config.Load()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadFile(configPath); err != nil {
			return err
		}
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	slog.SetDefault(logging.New(os.Stderr, level))

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	return fn(cfg, db)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
