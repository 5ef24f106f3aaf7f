package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/artem13815/recruit/pkg/security/jwt"
)

// Sessions come from the external login service; this mints a compatible
// token for local work and smoke tests.
var tokenCmd = &cobra.Command{
	Use:   "issue-token <userId>",
	Short: "Print a recruiter JWT signed with JWT_SECRET",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || userID <= 0 {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		cfg, logger := setup()
		defer func() { _ = logger.Sync() }()
		if cfg.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required")
		}

		token, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL).Generate(userID)
		if err != nil {
			return fmt.Errorf("sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
