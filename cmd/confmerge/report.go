package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/signadot/confmerge/merge"
)

func report(w io.Writer, res *merge.Result, colored bool) error {
	warn, fail := fmt.Sprint, fmt.Sprint
	if colored {
		warn = color.New(color.FgYellow, color.Bold).Sprint
		fail = color.New(color.FgRed, color.Bold).Sprint
	}
	if err := section(w, warn("WARNINGS:"), res.Warnings); err != nil {
		return err
	}
	return section(w, fail("ERRORS:"), res.Errors)
}

func section(w io.Writer, head string, issues []merge.Issue) error {
	if len(issues) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, head); err != nil {
		return err
	}
	for _, is := range issues {
		if _, err := fmt.Fprintf(w, "  %s\n", is); err != nil {
			return err
		}
	}
	return nil
}
