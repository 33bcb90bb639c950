package vocab

import "strings"

// Stance lexicons. Perspective extraction counts hits from these tables in a
// viewpoint sentence to classify it as positive, negative, mixed, or neutral.

var positiveWords = []string{
	"good", "great", "excellent", "beneficial", "effective", "successful",
	"improve", "improved", "improvement", "advance", "advantage", "promising",
	"important", "significant", "valuable", "positive", "support", "supports",
	"better", "best", "useful", "helpful", "progress", "breakthrough",
	"好", "优秀", "有效", "成功", "改善", "进步", "优势", "重要", "积极", "支持", "突破", "有益",
}

var negativeWords = []string{
	"bad", "poor", "harmful", "ineffective", "failed", "failure", "problem",
	"problems", "risk", "risks", "danger", "dangerous", "negative", "decline",
	"worse", "worst", "concern", "concerns", "criticism", "criticize", "threat",
	"limitation", "weakness", "drawback", "flaw", "controversial",
	"坏", "差", "有害", "失败", "问题", "风险", "危险", "消极", "下降", "担忧", "批评", "威胁", "缺陷",
}

// CountPositive returns the number of positive-lexicon hits in text
// (case-insensitive substring matching, the same scheme the stance
// classifier has always used).
func CountPositive(text string) int {
	return countHits(text, positiveWords)
}

// CountNegative returns the number of negative-lexicon hits in text.
func CountNegative(text string) int {
	return countHits(text, negativeWords)
}

func countHits(text string, words []string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, w := range words {
		if strings.Contains(lower, w) {
			n++
		}
	}
	return n
}

// significanceWords marks events worth boosting on the merged timeline.
var significanceWords = []string{
	"first", "breakthrough", "revolutionary", "landmark", "pioneering",
	"major", "significant", "historic", "milestone", "fundamental",
	"首次", "突破", "革命性", "里程碑", "开创", "重大", "重要", "历史性",
}

// SignificanceHits counts significance-lexicon hits in text.
func SignificanceHits(text string) int {
	return countHits(text, significanceWords)
}

// limitationWords flags sentences that discuss shortcomings; the academic
// summary tier collects these.
var limitationWords = []string{
	"limitation", "limitations", "limited", "constraint", "shortcoming",
	"weakness", "caveat", "drawback", "future work", "remains unclear",
	"not address", "cannot", "unable to",
	"局限", "局限性", "限制", "不足", "缺陷", "有待", "未能", "无法",
}

// HasLimitation reports whether text contains limitation-indicating
// vocabulary.
func HasLimitation(text string) bool {
	return countHits(text, limitationWords) > 0
}

// ConflictPair is a pair of opposite-polarity terms. Two sources hitting
// opposite sides of a pair on the same comparison are flagged as a conflict.
type ConflictPair struct {
	A string
	B string
}

// ConflictPairs lists the opposite-polarity vocabulary used for pairwise
// conflict detection.
var ConflictPairs = []ConflictPair{
	{"increase", "decrease"},
	{"increased", "decreased"},
	{"rise", "fall"},
	{"growth", "decline"},
	{"positive", "negative"},
	{"support", "oppose"},
	{"effective", "ineffective"},
	{"success", "failure"},
	{"safe", "dangerous"},
	{"proven", "unproven"},
	{"增加", "减少"},
	{"上升", "下降"},
	{"支持", "反对"},
	{"有效", "无效"},
	{"成功", "失败"},
}
