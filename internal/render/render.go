// Package render provides terminal output formatting for contract metadata
// carriers and violations. It uses colors when available and falls back to
// plain text otherwise.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariel-frischer/gocontract/contract"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Color functions with auto-detection for terminal support.
	nameLabel    = color.New(color.FgCyan, color.Bold).SprintFunc()
	fieldLabel   = color.New(color.FgWhite, color.Bold).SprintFunc()
	fieldText    = color.New(color.FgWhite).SprintFunc()
	countText    = color.New(color.FgYellow).SprintFunc()
	violationTag = color.New(color.FgRed, color.Bold).SprintFunc()
	violationMsg = color.New(color.FgRed).SprintFunc()
	stubTag      = color.New(color.FgYellow, color.Bold).SprintFunc()
	okTag        = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// Mode selects output coloring.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode parses a color mode string, defaulting unknown values to auto.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeAlways, ModeNever:
		return Mode(s)
	default:
		return ModeAuto
	}
}

// useColors resolves a mode against the terminal: auto colors only when
// stdout is a TTY and NO_COLOR is unset.
func (m Mode) useColors() bool {
	switch m {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd())) && os.Getenv("NO_COLOR") == ""
	}
}

// Carrier renders a contract's metadata descriptor for display.
func Carrier(w io.Writer, desc contract.Descriptor, mode Mode) {
	useColor := mode.useColors()
	var sb strings.Builder

	writeHeader(&sb, desc.Name, useColor)
	writeField(&sb, "Specification", desc.Specification, useColor)
	writeField(&sb, "Preconditions", desc.PreDescription, useColor)
	writeField(&sb, "Postconditions", desc.PostDescription, useColor)
	writeField(&sb, "Invariants", desc.InvariantDescription, useColor)

	if len(desc.Raises) > 0 {
		writeField(&sb, "Raises", strings.Join(desc.Raises, ", "), useColor)
	}

	counts := fmt.Sprintf("%d pre / %d post / %d invariant",
		desc.Preconditions, desc.Postconditions, desc.Invariants)
	if useColor {
		sb.WriteString(fmt.Sprintf("  %s %s\n", fieldLabel("Checks:"), countText(counts)))
	} else {
		sb.WriteString(fmt.Sprintf("  Checks: %s\n", counts))
	}

	fmt.Fprint(w, sb.String())
}

// writeHeader writes the contract name line.
func writeHeader(sb *strings.Builder, name string, useColor bool) {
	if useColor {
		sb.WriteString(nameLabel(name))
	} else {
		sb.WriteString(name)
	}
	sb.WriteString("\n")
}

// writeField writes one labeled metadata line, skipping empty slots.
func writeField(sb *strings.Builder, label, value string, useColor bool) {
	if value == "" {
		return
	}
	if useColor {
		sb.WriteString(fmt.Sprintf("  %s %s\n", fieldLabel(label+":"), fieldText(value)))
	} else {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", label, value))
	}
}

// Error renders a contract-related error with a kind label. Violations get
// their kind as the tag, stub markers are labeled distinctly, and any other
// error renders as a plain error line.
func Error(w io.Writer, err error, mode Mode) {
	if err == nil {
		return
	}
	useColor := mode.useColors()

	tag := "Error"
	if v := contract.AsViolation(err); v != nil {
		tag = v.Kind.String()
	} else if contract.IsImplementThis(err) {
		tag = "Implementation Needed"
	} else if contract.IsDontImplementThis(err) {
		tag = "Intentionally Unimplemented"
	}

	if !useColor {
		fmt.Fprintf(w, "%s: %s\n", tag, err.Error())
		return
	}

	sprint := violationTag
	if !contract.IsViolation(err) {
		sprint = stubTag
	}
	fmt.Fprintf(w, "%s %s\n", sprint(tag+":"), violationMsg(err.Error()))
}

// Success renders a green checkmark line for a passing call.
func Success(w io.Writer, message string, mode Mode) {
	if mode.useColors() {
		fmt.Fprintf(w, "%s %s\n", okTag("✓"), message)
		return
	}
	fmt.Fprintf(w, "[OK] %s\n", message)
}
