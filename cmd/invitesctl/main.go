// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/invite-cards/internal/adapter"
	"github.com/MKhiriev/invite-cards/internal/config"
	"github.com/MKhiriev/invite-cards/internal/logger"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// global flags
var (
	configPath string
	serverAddr string
	identity   string
	verbose    bool
)

var (
	cfg *config.StructuredConfig
	log = logger.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "invitesctl",
	Short: "Create, share and administer invitation cards",
	Long: `invitesctl talks to a running invite-cards server, or to its document
store directly for seeding.

Configuration is read from the environment (ADAPTER_ADDRESS, APP_AUTH_HEADER,
STORAGE_*), an optional JSON file given with --config, and built-in defaults.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().StringVarP(&serverAddr, "address", "a", "", "Server address (overrides ADAPTER_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&identity, "as", "", "E-mail sent as the authenticated user on admin requests")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initSettingsCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(adminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(_ *cobra.Command, _ []string) error {
	log = logger.NewCLILogger("invitesctl")
	if verbose {
		logger.SetLevel("debug")
	} else {
		logger.SetLevel("warn")
	}

	c, err := config.GetCLIConfig(configPath)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if serverAddr != "" {
		c.Adapter.HTTPAddress = serverAddr
	}

	cfg = c
	return nil
}

func newServerAdapter() (adapter.ServerAdapter, error) {
	a, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App.AuthHeader, log)
	if err != nil {
		return nil, err
	}
	a.SetIdentity(identity)
	return a, nil
}

func buildInfo() string {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
}
