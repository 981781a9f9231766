package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/actas-backend/internal/app"
)

func leaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lease",
		Short: "Inspect or clear acta leases",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "release <acta-id>",
			Short: "Drop the lease on an acta whoever holds it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("acta id: %w", err)
				}
				return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
					return c.Leases.Release(ctx, id, nil)
				})
			},
		},
		&cobra.Command{
			Use:   "release-expired",
			Short: "Clear lease columns whose expiry has passed",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
					n, err := c.Leases.ReleaseExpired(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "released %d expired leases\n", n)
					return nil
				})
			},
		},
	)

	return cmd
}
