package notes

import (
	"os"
	"regexp"
	"strings"
)

var participantHeaderPattern = regexp.MustCompile(`(?i)(出席人員|Present|Attend|與會人員|請假人員|On Leave|缺席人員|Absent)`)

// Action-item checkbox lines with optional owner and due-date fields
var (
	actionItemPatternEn = regexp.MustCompile(`(?m)- \[[ x]\]\s+(.+?)(?:\s*-\s*Owner:\s*(.+?))?\s*(?:-\s*Due:\s*(\S+))?\s*$`)
	actionItemPatternZh = regexp.MustCompile(`(?m)- \[[ x]\]\s+(.+?)(?:\s*-\s*負責人:\s*(.+?))?\s*(?:-\s*期限:\s*(\S+))?\s*$`)
)

var nameSeparatorPattern = regexp.MustCompile(`[,、，]`)

// ExtractParticipants collects attendee names from the participant sections.
// A section starts at a header line mentioning attendance and ends at the
// next "## " heading; bullet entries that are pure placeholders are skipped.
func ExtractParticipants(content string) []string {
	var names []string
	inSection := false

	for _, line := range strings.Split(content, "\n") {
		if participantHeaderPattern.MatchString(line) {
			inSection = true
			continue
		}
		if inSection && strings.HasPrefix(line, "## ") {
			inSection = false
			continue
		}
		if !inSection {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "- ") {
			continue
		}
		name := strings.TrimSpace(strings.SplitN(strings.TrimLeft(trimmed, "- "), "-", 2)[0])
		if name != "" && !IsPlaceholderOnly(name) {
			names = append(names, name)
		}
	}

	return names
}

// ExtractActionOwners collects responsible-person names from action items
func ExtractActionOwners(content string) []string {
	var owners []string
	for _, pattern := range []*regexp.Regexp{actionItemPatternEn, actionItemPatternZh} {
		for _, match := range pattern.FindAllStringSubmatch(content, -1) {
			owner := strings.TrimSpace(match[2])
			if owner != "" && !IsPlaceholderOnly(owner) {
				owners = append(owners, owner)
			}
		}
	}
	return owners
}

// LoadProvidedParticipants parses a user-provided participant list: either a
// file path (one name per line, "#" comments) or an inline comma-separated
// string (ASCII comma, 、 or ，).
func LoadProvidedParticipants(arg string) []string {
	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		data, err := os.ReadFile(arg)
		if err == nil {
			var names []string
			for _, line := range strings.Split(string(data), "\n") {
				line = strings.TrimSpace(line)
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if name := strings.TrimSpace(strings.TrimLeft(line, "- ")); name != "" {
					names = append(names, name)
				}
			}
			return names
		}
	}

	var names []string
	for _, part := range nameSeparatorPattern.Split(arg, -1) {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
