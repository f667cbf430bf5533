package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EmbarkStudios/spdx"
	"github.com/EmbarkStudios/spdx/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and license list information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, _ []string) error {
	useColor(cmd, os.Stdout)
	fmt.Fprintln(os.Stdout, version.Banner(spdx.LicenseListVersion()))
	return nil
}
