package validate

import (
	"strings"
	"testing"

	"github.com/ppiankov/minutecheck/internal/model"
)

const completeNotes = `# 會議紀錄

**會議名稱**: 第二季產品規劃會議
**會議日期**: 2026-03-15
**會議時間**: 14:00-15:30
**會議地點**: 會議室A
**主持人**: 王小明
**記錄人**: 李小華

## 出席人員
- 王小明 - 工程部
- 李小華 - 產品部
- 陳大同 - 設計部

## 會議議程
1. 預算審查
2. 時程規劃

## 會議內容摘要

### 預算審查
討論重點: 預算增加15%
決議事項: 通過預算案

### 時程規劃
討論重點: 上線時程
決議事項: 延後兩週上線

## 待辦事項
- [ ] 更新預算表 - 負責人: 王小明 - 期限: 2026-03-20
- [x] 通知相關部門 - 負責人: 李小華 - 期限: 2026-03-18

## 下次會議
2026-03-29
`

func findingsIn(report *model.Report, category model.Category) []model.Finding {
	var out []model.Finding
	for _, f := range report.Findings {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

func hasMessage(findings []model.Finding, severity model.Severity, substr string) bool {
	for _, f := range findings {
		if f.Severity == severity && strings.Contains(f.MessageZh, substr) {
			return true
		}
	}
	return false
}

func TestValidator_CompleteNotesHaveNoErrors(t *testing.T) {
	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate(completeNotes, report)

	if n := report.ErrorCount(); n != 0 {
		for _, f := range report.Findings {
			if f.Severity == model.SeverityError {
				t.Logf("error finding: %s", f.MessageZh)
			}
		}
		t.Fatalf("Expected no error findings for complete notes, got %d", n)
	}
	if report.PassCount() == 0 {
		t.Error("Expected pass findings for complete notes")
	}
}

func TestValidator_MissingMetadataIsError(t *testing.T) {
	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate("# 會議紀錄\n\n沒有任何欄位\n", report)

	metadata := findingsIn(report, model.CategoryMetadata)
	errors := 0
	for _, f := range metadata {
		if f.Severity == model.SeverityError {
			errors++
		}
	}
	if errors != 6 {
		t.Errorf("Expected 6 metadata errors, got %d", errors)
	}
}

func TestValidator_PlaceholderMetadataIsError(t *testing.T) {
	content := "**會議名稱**: [會議名稱]\n**會議日期**: YYYY-MM-DD\n"

	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate(content, report)

	metadata := findingsIn(report, model.CategoryMetadata)
	if !hasMessage(metadata, model.SeverityError, "會議名稱為空或為佔位符") {
		t.Error("Expected placeholder title to be an error")
	}
	if !hasMessage(metadata, model.SeverityError, "會議日期為空或為佔位符") {
		t.Error("Expected placeholder date to be an error")
	}
}

func TestValidator_NonISODateIsWarning(t *testing.T) {
	content := "**會議日期**: 2026年3月15日\n"

	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate(content, report)

	metadata := findingsIn(report, model.CategoryMetadata)
	if !hasMessage(metadata, model.SeverityWarning, "日期格式建議使用 YYYY-MM-DD") {
		t.Error("Expected non-ISO date format warning")
	}
	// Filled-in date still passes the presence check
	if !hasMessage(metadata, model.SeverityPass, "會議日期已填寫") {
		t.Error("Expected date presence to pass")
	}
}

func TestValidator_ProvidedParticipantCrossCheck(t *testing.T) {
	content := `## 出席人員
- 王小明
- 李小華

## 會議內容摘要
陳大同在討論中發言。
`

	report := &model.Report{File: "meeting.md"}
	NewValidator([]string{"王小明", "陳大同", "林不在"}).Validate(content, report)

	participants := findingsIn(report, model.CategoryParticipants)

	if !hasMessage(participants, model.SeverityPass, "「王小明」已記錄") {
		t.Error("Expected listed attendee to pass")
	}
	if !hasMessage(participants, model.SeverityWarning, "「陳大同」出現在內文但未列入") {
		t.Error("Expected in-content attendee warning")
	}
	if !hasMessage(participants, model.SeverityWarning, "「林不在」未出現在會議紀錄中") {
		t.Error("Expected absent attendee warning")
	}
	if !hasMessage(participants, model.SeverityWarning, "「李小華」不在指定出席名單中") {
		t.Error("Expected extra listed participant warning")
	}
}

func TestValidator_EmptyParticipantSectionIsError(t *testing.T) {
	content := `## 出席人員
- [姓名]
`

	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate(content, report)

	participants := findingsIn(report, model.CategoryParticipants)
	if !hasMessage(participants, model.SeverityError, "未找到任何與會人員") {
		t.Error("Expected error when all attendees are placeholders")
	}
}

func TestValidator_AgendaPlaceholdersOnly(t *testing.T) {
	content := `## 會議議程
1. [議程項目一]
2. [議程項目二]
`

	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate(content, report)

	agenda := findingsIn(report, model.CategoryAgenda)
	if !hasMessage(agenda, model.SeverityWarning, "未找到實際議程項目") {
		t.Error("Expected warning when agenda items are placeholders")
	}
}

func TestValidator_TopicMissingDecision(t *testing.T) {
	content := `## 會議內容摘要

### 預算審查
討論重點: 預算增加
決議事項: 通過

### 時程規劃
討論重點: 上線時間還在討論
`

	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate(content, report)

	discussion := findingsIn(report, model.CategoryDiscussion)
	if !hasMessage(discussion, model.SeverityPass, "找到 2 個討論議題") {
		t.Errorf("Expected 2 discussion topics, findings: %v", discussion)
	}
	if !hasMessage(discussion, model.SeverityWarning, "議題「時程規劃」缺少決議事項") {
		t.Error("Expected missing-decision warning for 時程規劃")
	}
	if hasMessage(discussion, model.SeverityWarning, "議題「預算審查」缺少決議事項") {
		t.Error("Did not expect missing-decision warning for 預算審查")
	}
}

func TestValidator_ExcludedTopicsNotCounted(t *testing.T) {
	content := `### 出席人員
討論重點: 這不是討論議題

### 真議題
討論重點: 內容
決議事項: 結論
`

	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate(content, report)

	discussion := findingsIn(report, model.CategoryDiscussion)
	if !hasMessage(discussion, model.SeverityPass, "找到 1 個討論議題") {
		t.Errorf("Expected attendance header excluded from topics, findings: %v", discussion)
	}
}

func TestValidator_ActionItemMissingOwnerAndDue(t *testing.T) {
	content := `## 待辦事項
- [ ] 完成設計稿
- [ ] 更新文件 - 負責人: 王小明 - 期限: 2026-03-20
`

	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate(content, report)

	actions := findingsIn(report, model.CategoryActionItems)
	if !hasMessage(actions, model.SeverityPass, "找到 2 項待辦事項") {
		t.Errorf("Expected 2 action items, findings: %v", actions)
	}
	if !hasMessage(actions, model.SeverityWarning, "待辦事項缺少負責人: 「完成設計稿」") {
		t.Error("Expected missing-owner warning")
	}
	if !hasMessage(actions, model.SeverityWarning, "待辦事項缺少期限: 「完成設計稿」") {
		t.Error("Expected missing-due warning")
	}
}

func TestValidator_AllActionItemsPlaceholders(t *testing.T) {
	content := `## 待辦事項
- [ ] [待辦事項描述] - 負責人: [姓名]
`

	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate(content, report)

	actions := findingsIn(report, model.CategoryActionItems)
	if !hasMessage(actions, model.SeverityWarning, "所有待辦事項皆為佔位符") {
		t.Error("Expected all-placeholder warning")
	}
}

func TestValidator_MissingSectionsAreErrors(t *testing.T) {
	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate("只有一行內文", report)

	structure := findingsIn(report, model.CategoryStructure)
	errors := 0
	for _, f := range structure {
		if f.Severity == model.SeverityError {
			errors++
		}
	}
	if errors != 5 {
		t.Errorf("Expected 5 missing-section errors, got %d", errors)
	}
}

func TestValidator_OwnerNotInParticipants(t *testing.T) {
	content := `## 出席人員
- 王小明

## 待辦事項
- [ ] 更新文件 - 負責人: 李小華 - 期限: 2026-03-20
- [ ] 準備簡報 - 負責人: 王小明 - 期限: 2026-03-21
`

	report := &model.Report{File: "meeting.md"}
	NewValidator(nil).Validate(content, report)

	crossRef := findingsIn(report, model.CategoryCrossReference)
	if !hasMessage(crossRef, model.SeverityWarning, "待辦負責人「李小華」未出現在與會人員名單中") {
		t.Error("Expected warning for owner not in participant list")
	}
	if !hasMessage(crossRef, model.SeverityPass, "待辦負責人「王小明」已在與會人員名單中") {
		t.Error("Expected pass for owner in participant list")
	}
}

func TestValidator_ProvidedListAuthoritativeForOwners(t *testing.T) {
	content := `## 出席人員
- 王小明

## 待辦事項
- [ ] 更新文件 - 負責人: 李小華 - 期限: 2026-03-20
`

	report := &model.Report{File: "meeting.md"}
	NewValidator([]string{"李小華"}).Validate(content, report)

	crossRef := findingsIn(report, model.CategoryCrossReference)
	if !hasMessage(crossRef, model.SeverityPass, "待辦負責人「李小華」已在與會人員名單中") {
		t.Error("Expected provided list to vouch for the owner")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("短字串", 40); got != "短字串" {
		t.Errorf("Expected short string unchanged, got %q", got)
	}
	long := strings.Repeat("字", 50)
	got := truncate(long, 40)
	if []rune(got)[0] != '字' || len([]rune(got)) != 43 {
		t.Errorf("Expected 40 runes plus ellipsis, got %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got %q", got)
	}
}
