package extract

import "regexp"

// The rule tables below drive extraction; adding a recognition rule is a data
// change, not a control-flow change. Order within each table is part of the
// contract: earlier rules claim values first.

// numberPatterns match percentages, monetary amounts, large integers and
// CJK countable-unit quantities
var numberPatterns = []*regexp.Regexp{
	// Percentages: 80%, 百分之八十
	regexp.MustCompile(`\d+\.?\d*\s*%`),
	regexp.MustCompile(`百分之[零一二三四五六七八九十百]+`),
	// Monetary: $5M, NT$300, 300萬, 5,000元
	regexp.MustCompile(`(?:NT\$|USD?|\$)\s*[\d,.]+[KMBkmb]?`),
	regexp.MustCompile(`\d+(?:\.\d+)?\s*[萬億千百](?:元|塊)?`),
	regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?\s*元?`),
	// Large standalone numbers, likely significant
	regexp.MustCompile(`\d{5,}`),
	// Countable quantities: 3個月, 5人, 10天, 2週
	regexp.MustCompile(`\d+\s*(?:個月|個人|人|天|週|周|年|季|次|件|台|組|批|份|項)`),
}

// datePatterns match absolute and relative date references
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`),
	regexp.MustCompile(`\d{1,2}月\d{1,2}[日號]`),
	regexp.MustCompile(`(?:下|上|這)(?:週|周|禮拜)[一二三四五六日天]`),
	regexp.MustCompile(`(?:明|後|前|昨)天`),
	regexp.MustCompile(`(?:下|上|這)個月`),
	regexp.MustCompile(`Q[1-4]`),
	regexp.MustCompile(`第[一二三四]季`),
}

// decisionMarkers trigger sentence extraction for decisions and conclusions
var decisionMarkers = compileMarkers(
	`決定`, `決議`, `同意`, `通過`, `否決`, `拍板`, `確認`,
	`結論是`, `最終方案`, `我們決定`, `大家同意`,
	`decided`, `agreed`, `approved`, `conclusion`,
)

// actionMarkers trigger sentence extraction for assignments and deadlines
var actionMarkers = compileMarkers(
	`負責`, `請.{1,6}(?:處理|完成|負責|準備|跟進|追蹤)`,
	`要在.{0,10}之前`, `截止日期`, `deadline`,
	`assigned to`, `responsible for`, `action item`,
)

var (
	listPrefixPattern = regexp.MustCompile(`^\d+\.\s*`)
	// Bare short labels like "決定事項：" carry no content of their own
	labelLinePattern = regexp.MustCompile(`^.{0,6}[：:]\s*$`)
)

func compileMarkers(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(`(?i)` + p)
	}
	return compiled
}
