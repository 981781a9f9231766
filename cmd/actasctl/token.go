package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/actas-backend/internal/auth"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

// tokenCommand mints an access token signed with the configured secret.
// Production tokens come from the identity provider; this is for local
// development and smoke tests.
func tokenCommand() *cobra.Command {
	var (
		contributor string
		role        string
		ttl         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := uuid.New()
			if contributor != "" {
				parsed, err := uuid.Parse(contributor)
				if err != nil {
					return fmt.Errorf("contributor id: %w", err)
				}
				id = parsed
			}

			r := domain.ContributorRole(role)
			if !r.IsValid() {
				return fmt.Errorf("unknown role %q", role)
			}

			v := auth.NewVerifier(env.cfg.Auth.JWTSecret, env.cfg.Auth.JWTIssuer)
			tok, err := v.Issue(id, r, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "contributor %s (%s), expires in %s\n", id, r, ttl)
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}

	cmd.Flags().StringVar(&contributor, "contributor", "", "contributor id (random when empty)")
	cmd.Flags().StringVar(&role, "role", string(domain.ContributorRoleContributor), "contributor or moderator")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
