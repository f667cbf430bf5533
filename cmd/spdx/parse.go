package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EmbarkStudios/spdx"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] EXPRESSION",
	Short: "Parse a license expression",
	Long:  `Parse validates a license expression and prints the requirements it contains`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|postfix|json)")
}

type reqJSON struct {
	License  string `json:"license"`
	Addition string `json:"addition,omitempty"`
	Start    uint32 `json:"start"`
	End      uint32 `json:"end"`
}

func runParse(cmd *cobra.Command, args []string) error {
	text := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	expr, err := spdx.ParseWithMode(text, parseMode(cmd))
	if err != nil {
		printParseError(os.Stderr, err, useColor(cmd, os.Stderr))
		return fmt.Errorf("parse failed")
	}

	switch format {
	case "pretty":
		colored := useColor(cmd, os.Stdout)
		for req := range expr.Requirements() {
			span := fmt.Sprintf("%-10s", req.Span)
			if colored {
				span = spanColor.Sprint(span)
			}
			fmt.Fprintf(os.Stdout, "%s %s\n", span, req.Req)
		}
		return nil
	case "postfix":
		fmt.Fprintln(os.Stdout, expr.PostfixString())
		return nil
	case "json":
		var out []reqJSON
		for req := range expr.Requirements() {
			j := reqJSON{
				License: req.Req.License.String(),
				Start:   req.Span.Start,
				End:     req.Span.End,
			}
			if req.Req.Addition.Kind != spdx.AdditionNone {
				j.Addition = req.Req.Addition.String()
			}
			out = append(out, j)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
