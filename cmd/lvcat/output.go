// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/katalvlaran/lvcat/internal/scenario"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	nameColor = color.New(color.FgCyan)
)

// useColor resolves auto|on|off; auto colors only a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
}

// printer writes status lines, colored or plain.
type printer struct {
	w     io.Writer
	color bool
}

func (p printer) paint(c *color.Color, s string) string {
	if !p.color {
		return s
	}
	c.EnableColor()

	return c.Sprint(s)
}

// outcome prints one PASS/FAIL line and, on failure, the violations.
func (p printer) outcome(s scenario.Scenario, out scenario.Outcome) {
	status := p.paint(passColor, "PASS")
	if !out.OK() {
		status = p.paint(failColor, "FAIL")
	}
	fmt.Fprintf(p.w, "%s %-14s homs=%d identity=%d associativity=%d violations=%d\n",
		status, p.paint(nameColor, s.Name), out.Homs, out.Identity, out.Associativity, out.Violations)
	if out.Err != nil {
		fmt.Fprintf(p.w, "     %v\n", out.Err)
	}
}
