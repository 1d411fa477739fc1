package utils

import "strings"

// SplitTokens - Splits s on every rune found in delimiters. Runs of delimiters count as one and empty tokens are
// never returned, so leading and trailing delimiters are ignored.
func SplitTokens(s, delimiters string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
}

// TrimLineEnding - Removes any trailing "\n" and "\r" from a line
func TrimLineEnding(line string) string {
	return strings.TrimRight(line, "\n\r")
}
