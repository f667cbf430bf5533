package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EmbarkStudios/spdx"
)

var canonicalizeCmd = &cobra.Command{
	Use:   "canonicalize [flags] EXPRESSION",
	Short: "Rewrite a license expression into strict SPDX form",
	Long: `Canonicalize accepts common deviations (lowercase operators, slashes,
imprecise and deprecated license names) and prints the equivalent
strict SPDX expression`,
	Args: cobra.ExactArgs(1),
	RunE: runCanonicalize,
}

func init() {
	canonicalizeCmd.Flags().Bool("check", false, "exit with status 1 if the input was not already canonical")
}

func runCanonicalize(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}

	canonical, changed, err := spdx.Canonicalize(args[0])
	if err != nil {
		printParseError(os.Stderr, err, useColor(cmd, os.Stderr))
		return fmt.Errorf("canonicalization failed")
	}

	fmt.Fprintln(os.Stdout, canonical)
	if check && changed {
		return fmt.Errorf("expression is not canonical")
	}
	return nil
}
