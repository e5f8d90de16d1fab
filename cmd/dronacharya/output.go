package main

import (
	"fmt"
	"os"
)

// Feedback for the human running the CLI goes to stderr so stdout stays
// reserved for answer text and remains pipeable.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiBold   = "\033[1m"
)

func colorize(color, text string) string {
	if noColor {
		return text
	}
	return color + text + ansiReset
}

func printMark(color, mark, format string, args ...any) {
	fmt.Fprintln(os.Stderr, colorize(color, mark+" "+fmt.Sprintf(format, args...)))
}

func printSuccess(format string, args ...any) { printMark(ansiGreen, "✓", format, args...) }

func printError(format string, args ...any) { printMark(ansiRed, "✗", format, args...) }

func printWarning(format string, args ...any) { printMark(ansiYellow, "⚠", format, args...) }

// printStatus renders one aligned "Label: value" line for the status command.
func printStatus(label, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "  %s %s\n", colorize(ansiBold, label+":"), fmt.Sprintf(format, args...))
}
