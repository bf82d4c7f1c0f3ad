// Package mctext cleans Minecraft display strings for human-facing output.
package mctext

import (
	"regexp"
	"strings"
)

var (
	formatCode = regexp.MustCompile(`§[0-9a-fklmnor]`)
	bracketTag = regexp.MustCompile(`\[.*?\]`)
)

// StripFormatting removes §-prefixed formatting codes.
func StripFormatting(text string) string {
	return formatCode.ReplaceAllString(text, "")
}

// CleanDisplayName strips formatting codes and bracketed tags and trims
// the surrounding whitespace.
func CleanDisplayName(text string) string {
	cleaned := StripFormatting(text)
	cleaned = bracketTag.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
