package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"avconsole/internal/config"
	"avconsole/internal/registry"
	"avconsole/pkg/domain"
	"avconsole/pkg/logger"
)

// seedCommand constructs the 'seed' subcommand that creates a demo admin
// account plus a batch of synthetic threats, so a fresh deployment has data
// to look at.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seeds a demo admin user and sample threats",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			email, _ := cmd.Flags().GetString("email")
			threats, _ := cmd.Flags().GetInt("threats")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			existing, err := strg.UserByEmail(ctx, email)
			if err != nil {
				logger.Fatal(ctx, "could not look up user", zap.Error(err))
			}

			admin := domain.User{
				ID:          domain.NewUserID(),
				Email:       email,
				DisplayName: "Administrator",
				IsAdmin:     true,
				CreatedAt:   time.Now().UTC(),
			}
			if existing != nil {
				admin = *existing
				logger.Info(ctx, "admin user already exists", zap.String("email", email))
			} else {
				if _, err := strg.StoreUser(ctx, admin); err != nil {
					logger.Fatal(ctx, "could not store admin user", zap.Error(err))
				}
				logger.Info(ctx, "admin user created",
					zap.String("email", email),
					zap.String("userId", admin.ID.String()))
			}

			reg := registry.New(strg)
			created, err := reg.CreateRandomThreats(ctx, threats, admin.ID)
			if err != nil {
				logger.Fatal(ctx, "could not seed threats", zap.Error(err))
			}

			logger.Info(ctx, "threats seeded", zap.Int("count", len(created)))
		},
	}

	cmd.Flags().String("email", "admin@example.com", "Email of the demo admin user")
	cmd.Flags().Int("threats", 10, "Number of synthetic threats to seed")

	return cmd
}
