package main

import (
	"fmt"
	"io"

	"github.com/ggrinberger/grindlog-sub000/internal/admin"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print aggregate usage statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := a.dbPool(cmd.Context())
			if err != nil {
				return err
			}
			s, err := admin.NewRepo(pool).Stats(cmd.Context())
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func printStats(w io.Writer, s *admin.Stats) {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintln(w, "USERS")
	row(w, "total", s.Users)
	row(w, "admins", s.Admins)
	row(w, "onboarded", s.OnboardedUsers)
	row(w, "new (7d)", s.NewUsersLast7Days)
	row(w, "active (7d)", s.ActiveUsersLast7Days)

	header.Fprintln(w, "ACTIVITY")
	row(w, "workout sessions", s.WorkoutSessions)
	row(w, "exercise logs", s.ExerciseLogs)
	row(w, "cardio sessions", s.CardioSessions)
	row(w, "meals", s.Meals)
	row(w, "supplement doses", s.SupplementDoses)
	row(w, "routine completions", s.RoutineCompletions)
	row(w, "groups", s.Groups)
}

func row(w io.Writer, label string, n int) {
	fmt.Fprintf(w, "  %-20s %d\n", label, n)
}
