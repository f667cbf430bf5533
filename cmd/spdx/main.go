package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/EmbarkStudios/spdx"
)

var rootCmd = &cobra.Command{
	Use:   "spdx",
	Short: "SPDX license expression toolkit",
	Long:  `Tokenize, parse, canonicalize and policy-check SPDX license expressions`,

	// Subcommands render their own diagnostics; cobra only carries
	// the exit status.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(canonicalizeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("lax", false, "allow common deviations from strict SPDX syntax")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the output stream and
// syncs the global color state so forced-on survives piping.
func useColor(cmd *cobra.Command, f *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	on := flag == "on" || (flag == "auto" && isTerminal(f))
	color.NoColor = !on
	return on
}

// parseMode resolves the --lax flag into a parse mode.
func parseMode(cmd *cobra.Command) spdx.ParseMode {
	lax, _ := cmd.Root().PersistentFlags().GetBool("lax")
	if lax {
		return spdx.Lax
	}
	return spdx.Strict
}
