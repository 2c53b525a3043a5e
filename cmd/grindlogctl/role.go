package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ggrinberger/grindlog-sub000/internal/auth"
	"github.com/ggrinberger/grindlog-sub000/internal/users"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// roleForCommand maps the command name to the role it assigns.
func roleForCommand(name string) auth.Role {
	if name == "promote" {
		return auth.RoleAdmin
	}
	return auth.RoleUser
}

func newRoleCmd(a *app, name string) *cobra.Command {
	role := roleForCommand(name)
	return &cobra.Command{
		Use:   name + " <email>",
		Short: fmt.Sprintf("Set the role of a user to %q", role),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.ToLower(strings.TrimSpace(args[0]))
			if email == "" {
				return errors.New("email must not be empty")
			}

			pool, err := a.dbPool(cmd.Context())
			if err != nil {
				return err
			}

			err = users.NewRepo(pool).SetRoleByEmail(cmd.Context(), email, role)
			if errors.Is(err, users.ErrUserNotFound) {
				return fmt.Errorf("no user with email %s", email)
			}
			if err != nil {
				return err
			}

			color.Green("✓ %s is now %s", email, role)
			return nil
		},
	}
}
