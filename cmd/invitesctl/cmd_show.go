package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/invite-cards/internal/adapter"
	"github.com/MKhiriev/invite-cards/internal/tui"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render a shared invitation in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Print the reconciled fields as JSON")
}

func runShow(cmd *cobra.Command, args []string) error {
	id := args[0]

	a, err := newServerAdapter()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	inv, err := a.Invitation(cmd.Context(), id)
	if errors.Is(err, adapter.ErrNotFound) {
		fmt.Fprintln(out, tui.RenderNotFound(id))
		return err
	}
	if err != nil {
		return err
	}

	if showJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(inv)
	}

	fmt.Fprintln(out, tui.RenderCard(inv.Fields))
	return nil
}
