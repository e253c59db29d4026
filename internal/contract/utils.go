package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/guildtools/raidscope/schema"
)

// Resolution status label constants.
const (
	ConfirmedValue  = "Confirmed"  // every parameter came from an operator override
	InferredValue   = "Inferred"   // evidence-backed resolution
	EscalatedValue  = "Escalated"  // feasibility forced the battle value upward
	UnresolvedValue = "Unresolved" // neutral fallback, no usable evidence
)

// Color variables for console output.
var (
	ConfirmedColor  = color.New(color.FgGreen, color.Bold) // operator-vouched data
	InferredColor   = color.New(color.FgCyan)              // normal inference result
	EscalatedColor  = color.New(color.FgYellow)            // needs operator review
	UnresolvedColor = color.New(color.FgRed, color.Bold)   // no evidence at all
)

// GetPlainLabel returns a plain text label for a player's resolution status.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(res schema.PlayerResult) string {
	switch {
	case res.Escalated:
		return EscalatedValue
	case !res.Estimable:
		return UnresolvedValue
	case res.Confirmed.Battle && res.Confirmed.Bonus:
		return ConfirmedValue
	default:
		return InferredValue
	}
}

// GetColorLabel returns a colored status label for console output (table).
// It uses GetPlainLabel to determine the string, then applies the color.
func GetColorLabel(res schema.PlayerResult) string {
	text := GetPlainLabel(res)

	switch text {
	case ConfirmedValue:
		return ConfirmedColor.Sprint(text)
	case EscalatedValue:
		return EscalatedColor.Sprint(text)
	case UnresolvedValue:
		return UnresolvedColor.Sprint(text)
	default: // "Inferred"
		return InferredColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".raidscope_snapshots.db"
	}
	return filepath.Join(homeDir, ".raidscope_snapshots.db")
}

// TruncateName truncates a player name to a maximum width with an ellipsis
// suffix. Requires maxWidth > 3 so both the ellipsis and at least one
// character of content fit.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
