package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/actas-backend/internal/app"
	"github.com/heartmarshall/actas-backend/internal/domain"
	"github.com/heartmarshall/actas-backend/internal/service/moderation"
)

func moderatorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moderator",
		Short: "Override contributor moderation state",
	}
	cmd.AddCommand(setStateCommand(), lockCommand(true), lockCommand(false), historyCommand())
	return cmd
}

func setStateCommand() *cobra.Command {
	var (
		state  string
		locked bool
		reason string
	)

	cmd := &cobra.Command{
		Use:   "set-state <contributor-id>",
		Short: "Move a contributor to a state (BANNED runs the ban cascade)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("contributor id: %w", err)
			}
			return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				entry, err := c.Moderation.SetState(ctx, moderation.SetStateInput{
					ContributorID: id,
					State:         domain.ModerationState(state),
					Locked:        locked,
					Reason:        reason,
				})
				if err != nil {
					return err
				}
				printTransition(cmd.OutOrStdout(), entry)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "ACTIVE, WARNED, RESTRICTED or BANNED")
	cmd.Flags().BoolVar(&locked, "lock", false, "freeze the state against automatic changes")
	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded in the history")
	_ = cmd.MarkFlagRequired("state")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

// lockCommand keeps the contributor's current state and only flips the lock.
func lockCommand(lock bool) *cobra.Command {
	var reason string

	use, short := "unlock", "Let automatic moderation change the state again"
	if lock {
		use, short = "lock", "Freeze the current state against automatic changes"
	}

	cmd := &cobra.Command{
		Use:   use + " <contributor-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("contributor id: %w", err)
			}
			return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				banner, err := c.Moderation.Banner(ctx, id)
				if err != nil {
					return err
				}
				entry, err := c.Moderation.SetState(ctx, moderation.SetStateInput{
					ContributorID: id,
					State:         banner.State,
					Locked:        lock,
					Reason:        reason,
				})
				if err != nil {
					return err
				}
				printTransition(cmd.OutOrStdout(), entry)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "reason recorded in the history")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <contributor-id>",
		Short: "Show the moderation history of a contributor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("contributor id: %w", err)
			}
			return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				entries, err := c.Moderation.History(ctx, id, limit)
				if err != nil {
					return err
				}
				for i := range entries {
					printTransition(cmd.OutOrStdout(), &entries[i])
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of entries")
	return cmd
}

func printTransition(w io.Writer, e *domain.StateTransition) {
	kind := "manual"
	if e.Automatic {
		kind = "auto"
	}
	fmt.Fprintf(w, "%s  %-10s -> %-10s  %-6s  %s\n",
		e.CreatedAt.Format("2006-01-02 15:04:05"), e.PreviousState, e.NewState, kind, e.Reason)
}
