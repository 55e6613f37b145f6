package main

import (
	"fmt"

	"github.com/MKhiriev/invite-cards/models"
	"github.com/spf13/cobra"
)

var (
	updateKind string
	updateFile string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer the server's settings",
	Long: `Admin commands send the --as e-mail in the configured auth header.

Available subcommands:
  check  - Show whether the identity is an administrator
  update - Replace one settings document`,
}

var adminCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Show whether the identity is an administrator",
	RunE:  runAdminCheck,
}

var adminUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace one settings document",
	Long: `Replaces defaultTemplate, protectedFields or fieldDefinitions with the
content of a YAML or JSON file.`,
	RunE: runAdminUpdate,
}

func init() {
	adminUpdateCmd.Flags().StringVarP(&updateKind, "kind", "k", "", "Setting to replace (defaultTemplate, protectedFields, fieldDefinitions)")
	adminUpdateCmd.Flags().StringVarP(&updateFile, "file", "f", "", "YAML or JSON file with the new value")
	_ = adminUpdateCmd.MarkFlagRequired("kind")
	_ = adminUpdateCmd.MarkFlagRequired("file")

	adminCmd.AddCommand(adminCheckCmd)
	adminCmd.AddCommand(adminUpdateCmd)
}

func runAdminCheck(cmd *cobra.Command, _ []string) error {
	a, err := newServerAdapter()
	if err != nil {
		return err
	}

	status, err := a.AdminCheck(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if status.IsAdmin {
		fmt.Fprintf(out, "%s is an administrator\n", status.User)
	} else {
		fmt.Fprintf(out, "%s is not an administrator\n", status.User)
	}
	if status.Message != "" {
		fmt.Fprintln(out, status.Message)
	}
	return nil
}

func runAdminUpdate(cmd *cobra.Command, _ []string) error {
	kind := models.SettingKind(updateKind)
	if !kind.Valid() {
		return fmt.Errorf("unknown setting %q", updateKind)
	}

	data, err := readSettingData(updateFile)
	if err != nil {
		return err
	}

	a, err := newServerAdapter()
	if err != nil {
		return err
	}

	result, err := a.UpdateSetting(cmd.Context(), models.SettingUpdate{UpdateType: kind, TemplateData: data})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (by %s)\n", result.Message, result.UpdatedBy)
	return nil
}
