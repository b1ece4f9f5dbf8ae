package pipeline

import (
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/minutecheck/internal/model"
)

// Renderer turns an assembled report into its output formats.
// The core engine never formats text; all localization happens here.
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderText renders the report as localized markdown-flavored text,
// grouped by category with a severity summary at the end
func (r *Renderer) RenderText(report *model.Report, lang string) string {
	var b strings.Builder

	if lang == model.LangZhTW {
		b.WriteString("## 📋 會議紀錄驗證報告\n\n")
		fmt.Fprintf(&b, "**檔案**: `%s`\n", report.File)
	} else {
		b.WriteString("## 📋 Meeting Notes Validation Report\n\n")
		fmt.Fprintf(&b, "**File**: `%s`\n", report.File)
	}
	b.WriteString("\n")

	for _, category := range model.Categories {
		findings := report.ByCategory(category)
		if len(findings) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", category.Label(lang))
		for _, f := range findings {
			fmt.Fprintf(&b, "- %s\n", f.Display(lang))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n")
	if lang == model.LangZhTW {
		fmt.Fprintf(&b, "**總計**: %d 項通過, %d 項警告, %d 項錯誤",
			report.PassCount(), report.WarningCount(), report.ErrorCount())
	} else {
		fmt.Fprintf(&b, "**Total**: %d passed, %d warnings, %d errors",
			report.PassCount(), report.WarningCount(), report.ErrorCount())
	}

	if report.LLM != nil && report.LLM.Enabled && report.LLM.SummaryMD != "" {
		b.WriteString("\n\n---\n")
		if lang == model.LangZhTW {
			fmt.Fprintf(&b, "### 🤖 LLM 摘要 (%s/%s)\n\n", report.LLM.Provider, report.LLM.Model)
		} else {
			fmt.Fprintf(&b, "### 🤖 LLM Summary (%s/%s)\n\n", report.LLM.Provider, report.LLM.Model)
		}
		b.WriteString(report.LLM.SummaryMD)
	}

	return b.String()
}

// WriteJSON writes the JSON report to path, or stdout when path is "-"
func (r *Renderer) WriteJSON(report *model.Report, path string) error {
	data, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if path == "-" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
