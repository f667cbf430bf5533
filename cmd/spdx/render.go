package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/EmbarkStudios/spdx"
)

var (
	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("2")).
			Padding(0, 1).
			Bold(true)
	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("1")).
			Padding(0, 1).
			Bold(true)

	errColor   = color.New(color.FgRed, color.Bold)
	caretColor = color.New(color.FgRed)
	spanColor  = color.New(color.FgHiBlack)
)

// verdict renders the PASS/FAIL badge for the check command.
func verdict(ok, colored bool) string {
	if colored {
		if ok {
			return passStyle.Render("PASS")
		}
		return failStyle.Render("FAIL")
	}
	if ok {
		return "PASS"
	}
	return "FAIL"
}

// printParseError writes a caret diagnostic for a failed parse:
//
//	error: unknown term
//	  MIT OR NOPE
//	         ^^^^
func printParseError(w io.Writer, err error, colored bool) {
	var perr *spdx.ParseError
	if !errors.As(err, &perr) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	head := "error:"
	if colored {
		head = errColor.Sprint("error:")
	}
	fmt.Fprintf(w, "%s %s\n", head, perr.Reason)

	// ParseError.Error renders "original\n<padding + carets> reason";
	// reuse its caret geometry and restyle the pieces.
	rendered := perr.Error()
	nl := strings.IndexByte(rendered, '\n')
	original := rendered[:nl]
	carets := strings.TrimSuffix(rendered[nl+1:], " "+perr.Reason.String())
	if colored {
		carets = caretColor.Sprint(carets)
	}
	fmt.Fprintf(w, "  %s\n  %s\n", original, carets)
}
