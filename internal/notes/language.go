package notes

import (
	"strings"

	"github.com/ppiankov/minutecheck/internal/model"
)

var zhMarkers = []string{"會議", "議程", "出席", "決議", "待辦", "負責人", "期限", "主持人"}

// DetectLanguage decides whether a notes document is primarily zh_TW or
// English by counting Chinese meeting vocabulary occurrences.
func DetectLanguage(content string) string {
	count := 0
	for _, marker := range zhMarkers {
		if strings.Contains(content, marker) {
			count++
		}
	}
	if count >= 3 {
		return model.LangZhTW
	}
	return model.LangEn
}
