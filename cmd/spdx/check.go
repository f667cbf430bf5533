package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/EmbarkStudios/spdx"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] EXPRESSION...",
	Short: "Check license expressions against an acceptance policy",
	Long: `Check parses each expression and evaluates it against the licensees
accepted by the policy file, reporting which requirements are unmet`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("policy", "policy.toml", "path to the acceptance policy")
	checkCmd.Flags().Bool("minimize", false, "also print a minimal accepted licensee set per expression")
	checkCmd.Flags().StringArray("file", nil, "file with one expression per line, checked in addition to the arguments")
}

// expandInputs appends the non-empty, non-comment lines of every
// --file argument to the expressions given directly.
func expandInputs(args, files []string) ([]string, error) {
	inputs := append([]string(nil), args...)
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read expressions from %s: %w", path, err)
		}
		for line := range strings.Lines(string(data)) {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			inputs = append(inputs, line)
		}
	}
	return inputs, nil
}

type checkResult struct {
	text      string
	err       error
	ok        bool
	failed    []spdx.ExpressionReq
	minimized []spdx.LicenseReq
}

func runCheck(cmd *cobra.Command, args []string) error {
	policyPath, err := cmd.Flags().GetString("policy")
	if err != nil {
		return fmt.Errorf("failed to get policy flag: %w", err)
	}
	minimize, err := cmd.Flags().GetBool("minimize")
	if err != nil {
		return fmt.Errorf("failed to get minimize flag: %w", err)
	}

	files, err := cmd.Flags().GetStringArray("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}

	mode := parseMode(cmd)
	pol, err := loadPolicy(policyPath, mode)
	if err != nil {
		return err
	}

	args, err = expandInputs(args, files)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("no expressions to check")
	}

	// Expressions are independent, so check them in parallel and
	// render in input order afterwards.
	results := make([]checkResult, len(args))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range args {
		g.Go(func() error {
			res := checkResult{text: text}
			expr, err := spdx.ParseWithMode(text, mode)
			if err != nil {
				res.err = err
				results[i] = res
				return nil
			}
			res.failed, res.ok = expr.EvaluateWithFailures(pol.allows)
			if res.ok && minimize {
				res.minimized, res.err = expr.MinimizedRequirements(pol.accepted)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	colored := useColor(cmd, os.Stdout)
	failures := 0
	for _, res := range results {
		if res.err != nil && res.failed == nil && !res.ok {
			fmt.Fprintf(os.Stdout, "%s %s\n", verdict(false, colored), res.text)
			printParseError(os.Stdout, res.err, colored)
			failures++
			continue
		}
		fmt.Fprintf(os.Stdout, "%s %s\n", verdict(res.ok, colored), res.text)
		if !res.ok {
			failures++
			for _, f := range res.failed {
				fmt.Fprintf(os.Stdout, "  unmet: %s\n", f.Req)
			}
			continue
		}
		if minimize {
			if res.err != nil {
				fmt.Fprintf(os.Stdout, "  minimize: %v\n", res.err)
				continue
			}
			for _, req := range res.minimized {
				fmt.Fprintf(os.Stdout, "  needs: %s\n", req)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d expressions failed the policy", failures, len(args))
	}
	return nil
}
