package match

import (
	"regexp"
	"strings"
)

// Whitespace variants that differ between transcripts and authored notes:
// ASCII whitespace, ideographic space, no-break space
var whitespacePattern = regexp.MustCompile(`[\s\x{3000}\x{00a0}]+`)

// Normalize removes whitespace variants and case-folds text for the fallback
// comparison pass. It never mutates the underlying documents — callers compare
// normalized copies only.
func Normalize(text string) string {
	return strings.ToLower(whitespacePattern.ReplaceAllString(text, ""))
}
