package model

// Severity is the outcome tier of a single validation finding
type Severity string

const (
	SeverityPass    Severity = "pass"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Icon returns the display icon for the severity
func (s Severity) Icon() string {
	switch s {
	case SeverityPass:
		return "✅"
	case SeverityWarning:
		return "⚠️"
	case SeverityError:
		return "❌"
	}
	return "•"
}

// Label returns the localized severity label
func (s Severity) Label(lang string) string {
	if lang == LangZhTW {
		switch s {
		case SeverityPass:
			return "通過"
		case SeverityWarning:
			return "警告"
		case SeverityError:
			return "錯誤"
		}
	}
	switch s {
	case SeverityPass:
		return "PASS"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	}
	return string(s)
}

// Category groups findings by the validation area that produced them
type Category string

const (
	CategoryMetadata           Category = "metadata"
	CategoryParticipants       Category = "participants"
	CategoryAgenda             Category = "agenda"
	CategoryDiscussion         Category = "discussion"
	CategoryActionItems        Category = "action_items"
	CategoryStructure          Category = "structure"
	CategoryCrossReference     Category = "cross_reference"
	CategoryTranscriptCoverage Category = "transcript_coverage"
)

// Categories lists all categories in report display order
var Categories = []Category{
	CategoryMetadata,
	CategoryParticipants,
	CategoryAgenda,
	CategoryDiscussion,
	CategoryActionItems,
	CategoryStructure,
	CategoryCrossReference,
	CategoryTranscriptCoverage,
}

var categoryLabelsZh = map[Category]string{
	CategoryMetadata:           "會議基本資訊",
	CategoryParticipants:       "與會人員",
	CategoryAgenda:             "會議議程",
	CategoryDiscussion:         "討論內容",
	CategoryActionItems:        "待辦事項",
	CategoryStructure:          "模板結構",
	CategoryCrossReference:     "交叉驗證",
	CategoryTranscriptCoverage: "逐字稿覆蓋率",
}

var categoryLabelsEn = map[Category]string{
	CategoryMetadata:           "Meeting Metadata",
	CategoryParticipants:       "Participants",
	CategoryAgenda:             "Agenda",
	CategoryDiscussion:         "Discussion",
	CategoryActionItems:        "Action Items",
	CategoryStructure:          "Template Structure",
	CategoryCrossReference:     "Cross-Reference",
	CategoryTranscriptCoverage: "Transcript Coverage",
}

// Label returns the localized category heading
func (c Category) Label(lang string) string {
	if lang == LangZhTW {
		if l, ok := categoryLabelsZh[c]; ok {
			return l
		}
	} else if l, ok := categoryLabelsEn[c]; ok {
		return l
	}
	return string(c)
}

// Output languages
const (
	LangZhTW = "zh_TW"
	LangEn   = "en"
)

// Finding is a single validation outcome with bilingual messages
type Finding struct {
	Severity  Severity `json:"severity"`
	Category  Category `json:"category"`
	MessageZh string   `json:"message_zh"`
	MessageEn string   `json:"message_en"`
}

// Display renders the finding as a single localized line
func (f Finding) Display(lang string) string {
	msg := f.MessageEn
	if lang == LangZhTW {
		msg = f.MessageZh
	}
	return f.Severity.Icon() + " " + f.Severity.Label(lang) + ": " + msg
}
