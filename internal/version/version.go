package version

import "github.com/fatih/color"

// Version information for the spdx CLI.
// These variables can be overridden at build time via -ldflags.

var (
	nameColor = color.New(color.FgCyan, color.Bold)
	listColor = color.New(color.FgGreen)

	// Version is the semantic version of the CLI.
	Version = "0.2.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Banner returns the full version line, including the SPDX license
// list version the binary was generated against.
func Banner(licenseList string) string {
	s := nameColor.Sprint("spdx") + " " + Version
	if GitCommit != "" {
		s += " (" + GitCommit
		if BuildDate != "" {
			s += ", " + BuildDate
		}
		s += ")"
	}
	return s + " with license list " + listColor.Sprint(licenseList)
}
