// Package stringx provides the small string helpers shared by semshell
// packages: blank checks, first-non-blank defaults and rune-aware truncation
// and padding for terminal output.
package stringx
