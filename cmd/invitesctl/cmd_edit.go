package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/invite-cards/internal/tui"
	"github.com/MKhiriev/invite-cards/models"
	"github.com/spf13/cobra"
)

var (
	editFrom   string
	editOrigin string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Compose an invitation interactively and share it",
	Long: `Opens a terminal editor on the server's default template, or on an
existing invitation with --from. Locked fields cannot be hidden.`,
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editFrom, "from", "", "Start from the invitation with this id")
	editCmd.Flags().StringVar(&editOrigin, "origin", "", "Public origin of the share link")
}

func runEdit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := newServerAdapter()
	if err != nil {
		return err
	}

	var fields []models.Field
	if editFrom != "" {
		inv, err := a.Invitation(ctx, editFrom)
		if err != nil {
			return err
		}
		fields = inv.Fields
	} else {
		defaults, err := a.Defaults(ctx)
		if err != nil {
			return err
		}
		if defaults.Fallback {
			log.Warn().Msg("server settings are unavailable, editing the built-in template")
		}
		fields = defaults.Fields
	}

	share := func(ctx context.Context, fields []models.Field) (models.ShareResult, error) {
		return a.Share(ctx, models.ShareRequest{Fields: fields, Origin: editOrigin})
	}

	result, err := tui.RunEditor(ctx, fields, share)
	if err != nil {
		return err
	}
	if result != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Shared: %s\n", result.URL)
	}
	return nil
}
