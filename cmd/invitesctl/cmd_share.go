package main

import (
	"fmt"

	"github.com/MKhiriev/invite-cards/internal/validators"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var (
	shareFile   string
	shareOrigin string
	shareCopy   bool

	copyToClipboard = clipboard.WriteAll
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Share an invitation described in a file",
	Long: `Reads the invitation fields from a YAML or JSON file, validates them and
posts them to the server. Sharing identical content again returns the same
link.`,
	RunE: runShare,
}

func init() {
	shareCmd.Flags().StringVarP(&shareFile, "file", "f", "", "YAML or JSON file with the invitation fields")
	shareCmd.Flags().StringVar(&shareOrigin, "origin", "", "Public origin of the share link")
	shareCmd.Flags().BoolVar(&shareCopy, "copy", false, "Copy the link to the clipboard")
	_ = shareCmd.MarkFlagRequired("file")
}

func runShare(cmd *cobra.Command, _ []string) error {
	req, err := readInviteFile(shareFile)
	if err != nil {
		return err
	}
	if shareOrigin != "" {
		req.Origin = shareOrigin
	}

	ctx := cmd.Context()
	if err = validators.NewInvitationValidator().Validate(ctx, req); err != nil {
		return err
	}

	a, err := newServerAdapter()
	if err != nil {
		return err
	}

	result, err := a.Share(ctx, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Created {
		fmt.Fprintf(out, "Shared: %s\n", result.URL)
	} else {
		fmt.Fprintf(out, "Already shared: %s\n", result.URL)
	}

	if shareCopy {
		if err = copyToClipboard(result.URL); err != nil {
			log.Warn().Err(err).Msg("could not copy link to clipboard")
			return nil
		}
		fmt.Fprintln(out, "Link copied to clipboard")
	}
	return nil
}
