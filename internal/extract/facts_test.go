package extract

import (
	"strings"
	"testing"

	"github.com/ppiankov/minutecheck/internal/glossary"
	"github.com/ppiankov/minutecheck/internal/model"
)

func factsByCategory(facts []model.KeyFact, category model.FactCategory) []model.KeyFact {
	var out []model.KeyFact
	for _, f := range facts {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

func hasValue(facts []model.KeyFact, value string) bool {
	for _, f := range facts {
		if f.Value == value {
			return true
		}
	}
	return false
}

func TestExtractor_PersonFromCorrectedTranscript(t *testing.T) {
	m := glossary.Parse(`- 王小明 - 常見錯誤: 王小名`)
	extractor := New(m)

	corrected := m.Correct("會議由王小名主持，討論下一季的規劃")
	facts := extractor.Extract(corrected)

	persons := factsByCategory(facts, model.FactPerson)
	if len(persons) != 1 {
		t.Fatalf("Expected 1 person fact, got %d", len(persons))
	}
	if persons[0].Value != "王小明" {
		t.Errorf("Expected corrected name 王小明, got %q", persons[0].Value)
	}
	if !strings.Contains(persons[0].Context, "王小明") {
		t.Errorf("Expected context to contain the name, got %q", persons[0].Context)
	}
}

func TestExtractor_NumberDateDecisionScenario(t *testing.T) {
	extractor := New(glossary.NewCorrectionMap())

	facts := extractor.Extract("預算增加了15%，我們決定下週三開會")

	numbers := factsByCategory(facts, model.FactNumber)
	if !hasValue(numbers, "15%") {
		t.Errorf("Expected number fact 15%%, got %v", numbers)
	}

	dates := factsByCategory(facts, model.FactDate)
	if !hasValue(dates, "下週三") {
		t.Errorf("Expected date fact 下週三, got %v", dates)
	}

	decisions := factsByCategory(facts, model.FactDecision)
	if len(decisions) != 1 {
		t.Fatalf("Expected 1 decision fact, got %d", len(decisions))
	}
	if decisions[0].Value != "預算增加了15%，我們決定下週三開會" {
		t.Errorf("Expected full sentence as decision value, got %q", decisions[0].Value)
	}
}

func TestExtractor_NumberPatterns(t *testing.T) {
	extractor := New(glossary.NewCorrectionMap())

	cases := []struct {
		transcript string
		value      string
	}{
		{"成本是百分之八十左右", "百分之八十"},
		{"預算大約NT$300而已", "NT$300"},
		{"追加了500萬元的預算", "500萬元"},
		{"營收達到1,250,000元", "1,250,000元"},
		{"需要3個月的開發時間", "3個月"},
		{"序號是1234567", "1234567"},
	}

	for _, c := range cases {
		facts := extractor.Extract(c.transcript)
		numbers := factsByCategory(facts, model.FactNumber)
		if !hasValue(numbers, c.value) {
			t.Errorf("Transcript %q: expected number %q, got %v", c.transcript, c.value, numbers)
		}
	}
}

func TestExtractor_SkipsSingleCharacterNumbers(t *testing.T) {
	extractor := New(glossary.NewCorrectionMap())

	facts := extractor.Extract("只要1天就好")
	for _, f := range factsByCategory(facts, model.FactNumber) {
		if f.Value == "1天" {
			// 1天 is two runes, should be kept; this case documents the boundary
			return
		}
	}
	t.Error("Expected 1天 (two runes) to be extracted")
}

func TestExtractor_DatePatterns(t *testing.T) {
	extractor := New(glossary.NewCorrectionMap())

	cases := []struct {
		transcript string
		value      string
	}{
		{"上線日期定在2026-03-15那天", "2026-03-15"},
		{"3月15日要交付", "3月15日"},
		{"明天先給初稿", "明天"},
		{"下個月再檢討", "下個月"},
		{"Q2的目標不變", "Q2"},
		{"第三季開始推廣", "第三季"},
	}

	for _, c := range cases {
		facts := extractor.Extract(c.transcript)
		dates := factsByCategory(facts, model.FactDate)
		if !hasValue(dates, c.value) {
			t.Errorf("Transcript %q: expected date %q, got %v", c.transcript, c.value, dates)
		}
	}
}

func TestExtractor_ActionSentences(t *testing.T) {
	extractor := New(glossary.NewCorrectionMap())

	facts := extractor.Extract("這個功能由李小華負責開發\n請陳大同準備簡報資料")

	actions := factsByCategory(facts, model.FactAction)
	if len(actions) != 2 {
		t.Fatalf("Expected 2 action facts, got %d: %v", len(actions), actions)
	}
	if !hasValue(actions, "這個功能由李小華負責開發") {
		t.Errorf("Expected 負責 sentence, got %v", actions)
	}
	if !hasValue(actions, "請陳大同準備簡報資料") {
		t.Errorf("Expected 請...準備 sentence, got %v", actions)
	}
}

func TestExtractor_SkipsLabelOnlyLines(t *testing.T) {
	extractor := New(glossary.NewCorrectionMap())

	facts := extractor.Extract("決定事項：\n我們決定採用新的部署流程")

	decisions := factsByCategory(facts, model.FactDecision)
	if len(decisions) != 1 {
		t.Fatalf("Expected 1 decision fact, got %d: %v", len(decisions), decisions)
	}
	if decisions[0].Value != "我們決定採用新的部署流程" {
		t.Errorf("Expected content line only, got %q", decisions[0].Value)
	}
}

func TestExtractor_StripsListPrefix(t *testing.T) {
	extractor := New(glossary.NewCorrectionMap())

	facts := extractor.Extract("1. 大家同意把上線時間延後兩週")

	decisions := factsByCategory(facts, model.FactDecision)
	if len(decisions) != 1 {
		t.Fatalf("Expected 1 decision fact, got %d", len(decisions))
	}
	if strings.HasPrefix(decisions[0].Value, "1.") {
		t.Errorf("Expected list prefix stripped, got %q", decisions[0].Value)
	}
}

func TestExtractor_LongSentenceGetsFragmentSearchTerm(t *testing.T) {
	extractor := New(glossary.NewCorrectionMap())

	sentence := "我們決定在下一個年度把整個後端系統遷移到新的雲端平台並逐步淘汰舊有架構"
	facts := extractor.Extract(sentence)

	decisions := factsByCategory(facts, model.FactDecision)
	if len(decisions) != 1 {
		t.Fatalf("Expected 1 decision fact, got %d", len(decisions))
	}

	terms := decisions[0].SearchTerms
	if len(terms) != 2 {
		t.Fatalf("Expected full sentence plus 20-rune fragment, got %d terms: %v", len(terms), terms)
	}
	if terms[0] != sentence {
		t.Errorf("Expected first term to be the full sentence")
	}
	if got := []rune(terms[1]); len(got) != 20 {
		t.Errorf("Expected 20-rune fragment, got %d runes: %q", len(got), terms[1])
	}
	if !strings.HasPrefix(sentence, terms[1]) {
		t.Errorf("Expected fragment to be a prefix of the sentence, got %q", terms[1])
	}
}

func TestExtractor_DedupAcrossPasses(t *testing.T) {
	// 王小明 appears both as a glossary name and inside a decision sentence.
	// The person pass runs first and owns the name; the decision pass still
	// owns its full sentence, and repeated marker hits never duplicate it.
	m := glossary.Parse(`- 王小明 - 常見錯誤: 王小名`)
	extractor := New(m)

	facts := extractor.Extract("王小明決定通過這個提案")

	count := 0
	for _, f := range facts {
		if f.Value == "王小明決定通過這個提案" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected decision sentence exactly once, got %d", count)
	}

	persons := factsByCategory(facts, model.FactPerson)
	if len(persons) != 1 || persons[0].Value != "王小明" {
		t.Errorf("Expected person fact for 王小明, got %v", persons)
	}
}

func TestExtractor_TermPass(t *testing.T) {
	m := glossary.Parse(`- Kubernetes - Common errors: 庫柏
- 王小明 - 常見錯誤: 王小名`)
	extractor := New(m)

	facts := extractor.Extract("我們的服務跑在Kubernetes上面")

	terms := factsByCategory(facts, model.FactTerm)
	if len(terms) != 1 || terms[0].Value != "Kubernetes" {
		t.Fatalf("Expected term fact Kubernetes, got %v", terms)
	}
	if len(factsByCategory(facts, model.FactPerson)) != 0 {
		t.Error("Expected no person facts when the name is absent from the transcript")
	}
}

func TestExtractor_EmptyTranscript(t *testing.T) {
	extractor := New(glossary.NewCorrectionMap())

	if facts := extractor.Extract(""); len(facts) != 0 {
		t.Errorf("Expected no facts from empty transcript, got %d", len(facts))
	}
}

func TestExtractor_CategoryOrder(t *testing.T) {
	m := glossary.Parse(`- 王小明 - 常見錯誤: 王小名`)
	extractor := New(m)

	facts := extractor.Extract("王小明說預算是500萬，下週三前決定方案")

	lastRank := -1
	rank := map[model.FactCategory]int{
		model.FactPerson:   0,
		model.FactNumber:   1,
		model.FactDate:     2,
		model.FactDecision: 3,
		model.FactAction:   4,
		model.FactTerm:     5,
	}
	for _, f := range facts {
		r, ok := rank[f.Category]
		if !ok {
			t.Fatalf("Unknown category %v", f.Category)
		}
		if r < lastRank {
			t.Fatalf("Facts out of pass order: %v", facts)
		}
		lastRank = r
	}
}

func TestContextWindow_PadsAndClamps(t *testing.T) {
	text := "前面的文字王小明後面的文字"
	idx := strings.Index(text, "王小明")
	window := contextWindow(text, idx, idx+len("王小明"))

	if !strings.HasPrefix(window, "...") || !strings.HasSuffix(window, "...") {
		t.Errorf("Expected ellipsis wrapping, got %q", window)
	}
	if !strings.Contains(window, "前面的文字王小明後面的文字") {
		t.Errorf("Expected short text fully included, got %q", window)
	}
}

func TestContextWindow_LimitsToPaddingRunes(t *testing.T) {
	long := strings.Repeat("甲", 50) + "X" + strings.Repeat("乙", 50)
	idx := strings.Index(long, "X")
	window := contextWindow(long, idx, idx+1)

	inner := strings.TrimSuffix(strings.TrimPrefix(window, "..."), "...")
	if got := len([]rune(inner)); got != 1+2*contextPadding {
		t.Errorf("Expected %d runes in window, got %d", 1+2*contextPadding, got)
	}
}

func TestClassifyTerm(t *testing.T) {
	cases := []struct {
		term string
		want termKind
	}{
		{"王小明", kindName},
		{"李華", kindName},
		{"歐陽大前輩", kindTerm}, // 5 runes, too long for a name
		{"John Smith", kindName},
		{"Kubernetes", kindTerm},
		{"微服務架構", kindTerm},
		{"K8s", kindTerm},
	}

	for _, c := range cases {
		if got := classifyTerm(c.term); got != c.want {
			t.Errorf("classifyTerm(%q) = %v, want %v", c.term, got, c.want)
		}
	}
}
