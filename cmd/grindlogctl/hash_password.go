package main

import (
	"fmt"

	"github.com/ggrinberger/grindlog-sub000/internal/users"
	"github.com/ggrinberger/grindlog-sub000/pkg"

	"github.com/spf13/cobra"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash of a password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args[0]) < users.MinPasswordLength {
				return fmt.Errorf("password must be at least %d characters", users.MinPasswordLength)
			}
			hash, err := pkg.HashPassword(args[0])
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
