// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"os"

	"github.com/guildtools/raidscope/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for player names in
// table output based on terminal width and the fixed numeric columns.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the numeric columns plus borders and padding
	baseWidth := 62
	if cfg.ShowCandidates {
		baseWidth += 30
	}

	available := termWidth - baseWidth
	if available < 10 {
		return 10
	}
	if available > 40 {
		return 40
	}
	return available
}

// LogHeader prints an informational header line, with an emoji prefix when
// emojis are enabled.
func LogHeader(cfg *contract.Config, emoji, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if cfg.UseEmojis {
		msg = emoji + " " + msg
	}
	_, _ = fmt.Fprintln(os.Stderr, msg)
}
