package main

import (
	"context"
	"fmt"
	"matchup/internal/config"
	"matchup/pkg/domain"
	"matchup/pkg/logger"
	"matchup/pkg/token"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that prints an access token for
// a user ID, signed with the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			userID, _ := cmd.Flags().GetInt64("user-id")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			if userID <= 0 {
				logger.Fatal(ctx, "user ID must be positive", zap.Int64("user_id", userID))
			}

			tokens, err := token.NewManager(token.Options{
				PrivateKeyPEM: cfg.JWT.PrivateKey,
				TTL:           cfg.JWT.TTL,
				Issuer:        cfg.JWT.Issuer,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create token manager", zap.Error(err))
			}

			signed, _, err := tokens.Issue(domain.UserID(userID), TTL)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().Int64("user-id", 0, "User ID written to the token subject")
	cmd.Flags().Duration("ttl", 0, "Token TTL (e.g., 30s, 15m, 1h), defaults to the configured TTL")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
