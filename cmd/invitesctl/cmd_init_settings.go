package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/invite-cards/internal/service"
	"github.com/MKhiriev/invite-cards/internal/store"
	"github.com/spf13/cobra"
)

var (
	seedFile  string
	seedForce bool
)

var initSettingsCmd = &cobra.Command{
	Use:   "init-settings",
	Short: "Seed the settings documents of the store",
	Long: `Writes the default template, the protected field list and (for JSON
files) the field definitions straight into the configured document store.

Existing settings are never overwritten unless --force is given.`,
	RunE: runInitSettings,
}

func init() {
	initSettingsCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML or JSON file with the settings to write")
	initSettingsCmd.Flags().BoolVar(&seedForce, "force", false, "Overwrite existing settings")
	_ = initSettingsCmd.MarkFlagRequired("file")
}

func runInitSettings(cmd *cobra.Command, _ []string) error {
	settings, err := readSettingsFile(seedFile)
	if err != nil {
		return err
	}

	if err = cfg.ValidateStorage(); err != nil {
		return err
	}

	ctx := cmd.Context()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer storages.Close()

	svc := service.NewSettingsService(storages.Settings, cfg.App.SettingsTTL, log)

	err = svc.Seed(ctx, settings, seedForce)
	if errors.Is(err, service.ErrSettingsAlreadySeeded) {
		return fmt.Errorf("%w; rerun with --force to overwrite", err)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Settings initialised: %d template fields, %d protected fields\n",
		len(settings.DefaultTemplate.Fields), len(settings.ProtectedFields))
	return nil
}
