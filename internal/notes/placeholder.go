package notes

import "regexp"

// Template leftovers that indicate a field was never filled in
var placeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\[.*?\]`),
	regexp.MustCompile(`YYYY-MM-DD`),
	regexp.MustCompile(`HH:MM`),
}

var bracketOnlyPattern = regexp.MustCompile(`^\[.*\]$`)

// HasPlaceholder reports whether text still contains template placeholder
// content such as "[會議名稱]" or "YYYY-MM-DD"
func HasPlaceholder(text string) bool {
	for _, p := range placeholderPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// IsPlaceholderOnly reports whether text is nothing but a bracketed placeholder
func IsPlaceholderOnly(text string) bool {
	return bracketOnlyPattern.MatchString(text)
}
