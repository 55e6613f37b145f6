package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI build info and the server version",
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, buildInfo())

	a, err := newServerAdapter()
	if err != nil {
		return err
	}

	v, err := a.Version(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Server version: %s\n", v)
	return nil
}
