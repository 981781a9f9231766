package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/actas-backend/internal/app"
	"github.com/heartmarshall/actas-backend/internal/domain"
)

func actaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "acta",
		Short: "Maintain tally sheets",
	}
	cmd.AddCommand(reopenCommand(), importCommand())
	return cmd
}

func reopenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <acta-id>",
		Short: "Discard validations and reports and return the acta to the pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("acta id: %w", err)
			}
			return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				err := c.Tx.RunInTx(ctx, func(ctx context.Context) error {
					return c.Actas.Reopen(ctx, id, timeNow())
				})
				if err != nil {
					return err
				}
				env.logger.InfoContext(ctx, "acta reopened", "acta_id", id.String())
				return nil
			})
		},
	}
}

// importRecord is one line item of an import file.
type importRecord struct {
	ExternalID       string        `json:"external_id"`
	DepartmentCode   string        `json:"department_code"`
	MunicipalityCode string        `json:"municipality_code"`
	PrecinctCode     string        `json:"precinct_code"`
	HasImage         bool          `json:"has_image"`
	Official         *domain.Tally `json:"official,omitempty"`
}

func importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Load actas from a JSON array; existing external ids are skipped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			var records []importRecord
			if err := json.Unmarshal(raw, &records); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			actas := make([]domain.Acta, 0, len(records))
			for i, r := range records {
				if r.ExternalID == "" {
					return fmt.Errorf("record %d: external_id is required", i)
				}
				actas = append(actas, domain.Acta{
					ExternalID:       r.ExternalID,
					DepartmentCode:   r.DepartmentCode,
					MunicipalityCode: r.MunicipalityCode,
					PrecinctCode:     r.PrecinctCode,
					HasImage:         r.HasImage,
					HasOfficialData:  r.Official != nil,
					Official:         r.Official,
				})
			}

			return withContainer(cmd.Context(), func(ctx context.Context, c *app.Container) error {
				n, err := c.Actas.Import(ctx, actas)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d actas\n", n, len(actas))
				return nil
			})
		},
	}
}
