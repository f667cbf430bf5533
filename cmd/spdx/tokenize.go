package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/EmbarkStudios/spdx"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] EXPRESSION",
	Short: "Tokenize a license expression",
	Long:  `Tokenize breaks a license expression into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type tokenJSON struct {
	Kind  string `json:"kind"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Text  string `json:"text"`
}

func runTokenize(cmd *cobra.Command, args []string) error {
	text := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	lx := spdx.NewLexerWithMode(text, parseMode(cmd))
	var tokens []spdx.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			printParseError(os.Stderr, err, useColor(cmd, os.Stderr))
			return fmt.Errorf("tokenization failed")
		}
		if tok.Kind == spdx.TokEOF {
			break
		}
		tokens = append(tokens, tok)
	}

	switch format {
	case "pretty":
		colored := useColor(cmd, os.Stdout)
		for _, tok := range tokens {
			// Pad before coloring so escape codes don't skew columns.
			span := fmt.Sprintf("%-10s", tok.Span)
			if colored {
				span = spanColor.Sprint(span)
			}
			fmt.Fprintf(os.Stdout, "%s %-15s %s\n",
				span, tok.Kind, text[tok.Span.Start:tok.Span.End])
		}
		return nil
	case "json":
		out := make([]tokenJSON, 0, len(tokens))
		for _, tok := range tokens {
			out = append(out, tokenJSON{
				Kind:  tok.Kind.String(),
				Start: tok.Span.Start,
				End:   tok.Span.End,
				Text:  text[tok.Span.Start:tok.Span.End],
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
