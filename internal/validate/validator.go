// Package validate runs structural, content and provenance checks over a
// meeting-notes document and records bilingual findings.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ppiankov/minutecheck/internal/model"
	"github.com/ppiankov/minutecheck/internal/notes"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// metadataField is one required metadata entry with its bilingual messages
type metadataField struct {
	patterns []*regexp.Regexp
	passZh   string
	passEn   string
	failZh   string
	failEn   string
}

var metadataFields = []metadataField{
	{
		patterns: compileAll(`\*\*Meeting Title\*\*:\s*(.+)`, `\*\*會議名稱\*\*:\s*(.+)`),
		passZh:   "會議名稱已填寫", passEn: "Meeting title is filled in",
		failZh: "會議名稱為空或為佔位符", failEn: "Meeting title is empty or placeholder",
	},
	{
		patterns: compileAll(`\*\*(Date|會議日期)\*\*:\s*(.+)`),
		passZh:   "會議日期已填寫", passEn: "Meeting date is filled in",
		failZh: "會議日期為空或為佔位符", failEn: "Meeting date is empty or placeholder",
	},
	{
		patterns: compileAll(`\*\*(Time|會議時間)\*\*:\s*(.+)`),
		passZh:   "會議時間已填寫", passEn: "Meeting time is filled in",
		failZh: "會議時間為空或為佔位符", failEn: "Meeting time is empty or placeholder",
	},
	{
		patterns: compileAll(`\*\*(Location|會議地點)\*\*:\s*(.+)`),
		passZh:   "會議地點已填寫", passEn: "Meeting location is filled in",
		failZh: "會議地點為空或為佔位符", failEn: "Meeting location is empty or placeholder",
	},
	{
		patterns: compileAll(`\*\*(Chairperson|主持人)\*\*:\s*(.+)`),
		passZh:   "主持人已填寫", passEn: "Chairperson is filled in",
		failZh: "主持人為空或為佔位符", failEn: "Chairperson is empty or placeholder",
	},
	{
		patterns: compileAll(`\*\*(Recorder|記錄人)\*\*:\s*(.+)`),
		passZh:   "記錄人已填寫", passEn: "Recorder is filled in",
		failZh: "記錄人為空或為佔位符", failEn: "Recorder is empty or placeholder",
	},
}

var dateFieldPattern = regexp.MustCompile(`\*\*(Date|會議日期)\*\*:\s*(.+)`)

// requiredSection is one required template section (bilingual header patterns)
type requiredSection struct {
	patterns []*regexp.Regexp
	labelZh  string
	labelEn  string
}

var requiredSections = []requiredSection{
	{compileAll(`(?i)Meeting\s+(Title|Information)`, `(?i)會議(名稱|基本資訊)`), "會議基本資訊區塊", "Meeting information section"},
	{compileAll(`(?i)Attend|Present`, `(?i)出席人員|與會人員`), "與會人員區塊", "Participants section"},
	{compileAll(`(?i)Agenda`, `(?i)會議議程|議程`), "議程區塊", "Agenda section"},
	{compileAll(`(?i)Meeting\s+Summary|Discussion`, `(?i)會議內容摘要|會議內容`), "討論內容區塊", "Discussion section"},
	{compileAll(`(?i)Next\s+Meeting`, `(?i)下次會議`), "下次會議區塊", "Next meeting section"},
}

var (
	agendaHeaderPattern = regexp.MustCompile(`(?i)##\s*(Agenda|會議議程)`)
	agendaItemPattern   = regexp.MustCompile(`^\d+\.\s+`)
	topicHeaderPattern  = regexp.MustCompile(`^###\s+(.+)`)
	checkboxPattern     = regexp.MustCompile(`- \[[ x]\]\s+(.+)`)
	ownerFieldPattern   = regexp.MustCompile(`(負責人|Owner)\s*:\s*\S+`)
	dueFieldPattern     = regexp.MustCompile(`(期限|Due)\s*:\s*\S+`)
)

// Headers that introduce non-discussion blocks (attendance lists, glossary
// sections) and must not count as discussion topics
var excludedTopicPatterns = compileAll(
	`出席人員`, `請假人員`, `缺席人員`,
	`Present`, `On Leave`, `Absent`,
	`技術術語`, `商業術語`, `部門名稱`,
	`中文姓名`, `英文姓名`, `會議相關`, `動詞`,
)

var discussionContentPattern = regexp.MustCompile(`(?i)(討論重點|Key Discussion|決議|Decision|待辦|Action)`)
var decisionContentPattern = regexp.MustCompile(`(?i)(決議事項|Decision)`)

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// Validator runs the structural checks over one notes document
type Validator struct {
	provided []string // user-supplied authoritative participant list, may be nil
}

// NewValidator creates a validator. providedParticipants may be nil when the
// caller has no authoritative attendee list.
func NewValidator(providedParticipants []string) *Validator {
	return &Validator{provided: providedParticipants}
}

// Validate runs every structural check, appending findings to the report
func (v *Validator) Validate(content string, report *model.Report) {
	v.checkMetadata(content, report)
	v.checkParticipants(content, report)
	v.checkAgenda(content, report)
	v.checkDiscussion(content, report)
	v.checkActionItems(content, report)
	v.checkStructure(content, report)
	v.checkCrossReferences(content, report)
}

func (v *Validator) checkMetadata(content string, report *model.Report) {
	for _, field := range metadataFields {
		found := false
		isPlaceholder := false
		for _, pattern := range field.patterns {
			if sub := pattern.FindStringSubmatch(content); sub != nil {
				found = true
				if notes.HasPlaceholder(sub[len(sub)-1]) {
					isPlaceholder = true
				}
				break
			}
		}

		if found && !isPlaceholder {
			report.Add(model.Finding{Severity: model.SeverityPass, Category: model.CategoryMetadata,
				MessageZh: field.passZh, MessageEn: field.passEn})
		} else {
			report.Add(model.Finding{Severity: model.SeverityError, Category: model.CategoryMetadata,
				MessageZh: field.failZh, MessageEn: field.failEn})
		}
	}

	// Date format is checked separately: a filled-in date in the wrong shape
	// is a warning, not an error
	if sub := dateFieldPattern.FindStringSubmatch(content); sub != nil {
		value := strings.TrimSpace(sub[2])
		if isoDatePattern.MatchString(value) {
			report.Add(model.Finding{Severity: model.SeverityPass, Category: model.CategoryMetadata,
				MessageZh: "日期格式正確 (YYYY-MM-DD)", MessageEn: "Date format is correct (YYYY-MM-DD)"})
		} else if !notes.HasPlaceholder(value) {
			report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryMetadata,
				MessageZh: fmt.Sprintf("日期格式建議使用 YYYY-MM-DD，目前為: %s", value),
				MessageEn: fmt.Sprintf("Date format should be YYYY-MM-DD, got: %s", value)})
		}
	}
}

func (v *Validator) checkParticipants(content string, report *model.Report) {
	participants := notes.ExtractParticipants(content)

	if len(participants) > 0 {
		report.Add(model.Finding{Severity: model.SeverityPass, Category: model.CategoryParticipants,
			MessageZh: fmt.Sprintf("已列出 %d 位與會人員", len(participants)),
			MessageEn: fmt.Sprintf("Found %d participant(s) listed", len(participants))})
	} else {
		report.Add(model.Finding{Severity: model.SeverityError, Category: model.CategoryParticipants,
			MessageZh: "未找到任何與會人員（出席人員清單為空或皆為佔位符）",
			MessageEn: "No participants found (attendee list is empty or all placeholders)"})
	}

	if len(v.provided) == 0 {
		return
	}

	listed := make(map[string]bool, len(participants))
	for _, p := range participants {
		listed[strings.TrimSpace(p)] = true
	}

	for _, name := range v.provided {
		switch {
		case listed[name]:
			report.Add(model.Finding{Severity: model.SeverityPass, Category: model.CategoryParticipants,
				MessageZh: fmt.Sprintf("指定出席者「%s」已記錄在會議紀錄中", name),
				MessageEn: fmt.Sprintf("Specified attendee %q is recorded in meeting notes", name)})
		case strings.Contains(content, name):
			report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryParticipants,
				MessageZh: fmt.Sprintf("指定出席者「%s」出現在內文但未列入出席人員名單", name),
				MessageEn: fmt.Sprintf("Specified attendee %q appears in content but NOT in participant list", name)})
		default:
			report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryParticipants,
				MessageZh: fmt.Sprintf("指定出席者「%s」未出現在會議紀錄中", name),
				MessageEn: fmt.Sprintf("Specified attendee %q is NOT found in meeting notes", name)})
		}
	}

	providedSet := make(map[string]bool, len(v.provided))
	for _, name := range v.provided {
		providedSet[name] = true
	}
	for _, p := range participants {
		if !providedSet[p] {
			report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryParticipants,
				MessageZh: fmt.Sprintf("會議紀錄中的「%s」不在指定出席名單中，請確認是否正確", p),
				MessageEn: fmt.Sprintf("%q in meeting notes is NOT in the provided attendee list — please verify", p)})
		}
	}
}

func (v *Validator) checkAgenda(content string, report *model.Report) {
	inSection := false
	var items []string

	for _, line := range strings.Split(content, "\n") {
		if agendaHeaderPattern.MatchString(line) {
			inSection = true
			continue
		}
		if inSection && strings.HasPrefix(line, "## ") {
			break
		}
		trimmed := strings.TrimSpace(line)
		if inSection && agendaItemPattern.MatchString(trimmed) {
			item := agendaItemPattern.ReplaceAllString(trimmed, "")
			if !notes.IsPlaceholderOnly(item) {
				items = append(items, item)
			}
		}
	}

	if len(items) > 0 {
		report.Add(model.Finding{Severity: model.SeverityPass, Category: model.CategoryAgenda,
			MessageZh: fmt.Sprintf("已列出 %d 項議程", len(items)),
			MessageEn: fmt.Sprintf("Found %d agenda item(s)", len(items))})
	} else {
		report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryAgenda,
			MessageZh: "未找到實際議程項目（可能皆為佔位符）",
			MessageEn: "No actual agenda items found (may all be placeholders)"})
	}
}

func (v *Validator) checkDiscussion(content string, report *model.Report) {
	type topic struct {
		name string
		body string
	}

	var topics []topic
	var current *topic
	var bodyLines []string

	flush := func() {
		if current != nil {
			current.body = strings.Join(bodyLines, "\n")
			topics = append(topics, *current)
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if sub := topicHeaderPattern.FindStringSubmatch(line); sub != nil {
			flush()
			current = &topic{name: strings.TrimSpace(sub[1])}
			bodyLines = nil
		} else if current != nil {
			bodyLines = append(bodyLines, line)
		}
	}
	flush()

	var discussionTopics []topic
	for _, t := range topics {
		if isExcludedTopic(t.name) {
			continue
		}
		if discussionContentPattern.MatchString(t.body) {
			discussionTopics = append(discussionTopics, t)
		}
	}

	if len(discussionTopics) == 0 {
		report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryDiscussion,
			MessageZh: "未找到包含完整討論內容的議題區塊",
			MessageEn: "No discussion topic blocks with complete content found"})
		return
	}

	report.Add(model.Finding{Severity: model.SeverityPass, Category: model.CategoryDiscussion,
		MessageZh: fmt.Sprintf("找到 %d 個討論議題", len(discussionTopics)),
		MessageEn: fmt.Sprintf("Found %d discussion topic(s)", len(discussionTopics))})

	for _, t := range discussionTopics {
		if !decisionContentPattern.MatchString(t.body) {
			report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryDiscussion,
				MessageZh: fmt.Sprintf("議題「%s」缺少決議事項", t.name),
				MessageEn: fmt.Sprintf("Topic %q is missing decisions", t.name)})
		}
	}
}

func isExcludedTopic(name string) bool {
	for _, p := range excludedTopicPatterns {
		if p.MatchString(name) {
			return true
		}
	}
	return false
}

func (v *Validator) checkActionItems(content string, report *model.Report) {
	var checkboxLines []string
	for _, match := range checkboxPattern.FindAllStringSubmatch(content, -1) {
		checkboxLines = append(checkboxLines, match[1])
	}

	if len(checkboxLines) == 0 {
		report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryActionItems,
			MessageZh: "未找到任何待辦事項", MessageEn: "No action items found"})
		return
	}

	var realItems []string
	for _, line := range checkboxLines {
		if !notes.HasPlaceholder(line) {
			realItems = append(realItems, line)
		}
	}

	if len(realItems) == 0 {
		report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryActionItems,
			MessageZh: "所有待辦事項皆為佔位符", MessageEn: "All action items are placeholders"})
		return
	}

	report.Add(model.Finding{Severity: model.SeverityPass, Category: model.CategoryActionItems,
		MessageZh: fmt.Sprintf("找到 %d 項待辦事項", len(realItems)),
		MessageEn: fmt.Sprintf("Found %d action item(s)", len(realItems))})

	for _, item := range realItems {
		short := truncate(item, 40)
		if !ownerFieldPattern.MatchString(item) {
			report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryActionItems,
				MessageZh: fmt.Sprintf("待辦事項缺少負責人: 「%s」", short),
				MessageEn: fmt.Sprintf("Action item missing owner: %q", short)})
		}
		if !dueFieldPattern.MatchString(item) {
			report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryActionItems,
				MessageZh: fmt.Sprintf("待辦事項缺少期限: 「%s」", short),
				MessageEn: fmt.Sprintf("Action item missing due date: %q", short)})
		}
	}
}

func (v *Validator) checkStructure(content string, report *model.Report) {
	for _, section := range requiredSections {
		found := false
		for _, pattern := range section.patterns {
			if pattern.MatchString(content) {
				found = true
				break
			}
		}
		if found {
			report.Add(model.Finding{Severity: model.SeverityPass, Category: model.CategoryStructure,
				MessageZh: section.labelZh + "存在",
				MessageEn: section.labelEn + " exists"})
		} else {
			report.Add(model.Finding{Severity: model.SeverityError, Category: model.CategoryStructure,
				MessageZh: "缺少" + section.labelZh,
				MessageEn: "Missing " + section.labelEn})
		}
	}
}

func (v *Validator) checkCrossReferences(content string, report *model.Report) {
	owners := notes.ExtractActionOwners(content)
	if len(owners) == 0 {
		return
	}

	// Provided list is authoritative when present; otherwise fall back to the
	// participants extracted from the notes themselves
	participantSet := make(map[string]bool)
	if len(v.provided) > 0 {
		for _, name := range v.provided {
			participantSet[name] = true
		}
	} else {
		participants := notes.ExtractParticipants(content)
		if len(participants) == 0 {
			return
		}
		for _, p := range participants {
			participantSet[strings.TrimSpace(p)] = true
		}
	}

	for _, owner := range owners {
		owner = strings.TrimSpace(owner)
		if participantSet[owner] {
			report.Add(model.Finding{Severity: model.SeverityPass, Category: model.CategoryCrossReference,
				MessageZh: fmt.Sprintf("待辦負責人「%s」已在與會人員名單中", owner),
				MessageEn: fmt.Sprintf("Action item owner %q is in participant list", owner)})
		} else {
			report.Add(model.Finding{Severity: model.SeverityWarning, Category: model.CategoryCrossReference,
				MessageZh: fmt.Sprintf("待辦負責人「%s」未出現在與會人員名單中", owner),
				MessageEn: fmt.Sprintf("Action item owner %q is NOT in participant list", owner)})
		}
	}
}

// truncate shortens a string to max runes, appending "..." when cut
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
