// Package vocab holds the process-wide constant vocabularies the analytic
// stages match against: stopwords, heading words, stance lexicons, and
// relationship patterns, in English and Chinese. All tables are immutable;
// callers needing different tables build their own components via config.
package vocab

// stopwordsEN is the English stopword table shared by keyword extraction,
// topic detection, and entity filtering.
var stopwordsEN = []string{
	"the", "and", "for", "are", "but", "not", "you", "all", "can", "had",
	"her", "was", "one", "our", "out", "day", "get", "has", "him", "his",
	"how", "man", "new", "now", "old", "see", "two", "way", "who", "boy",
	"did", "its", "let", "put", "say", "she", "too", "use", "that", "with",
	"have", "this", "will", "your", "from", "they", "know", "want", "been",
	"good", "much", "some", "time", "very", "when", "come", "here", "just",
	"like", "long", "make", "many", "over", "such", "take", "than", "them",
	"well", "were", "what", "which", "their", "would", "there", "could",
	"other", "after", "first", "never", "these", "think", "where", "being",
	"every", "great", "might", "shall", "still", "those", "under", "while",
	"about", "between", "into", "through", "during", "before", "because",
	"also", "more", "most", "only", "same", "each", "both", "does", "then",
	"than", "may", "should", "must", "upon", "said", "any", "however",
}

// stopwordsZH is the Chinese stopword table.
var stopwordsZH = []string{
	"的", "了", "在", "是", "我", "有", "和", "就", "不", "人",
	"都", "一", "一个", "上", "也", "很", "到", "说", "要", "去",
	"你", "会", "着", "没有", "看", "好", "自己", "这", "那", "他",
	"她", "它", "们", "这个", "那个", "什么", "可以", "这样", "那样",
	"因为", "所以", "但是", "如果", "虽然", "以及", "或者", "并且",
	"对于", "关于", "通过", "进行", "可能", "一些", "没有", "其中",
}

var stopwordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(stopwordsEN)+len(stopwordsZH))
	for _, w := range stopwordsEN {
		set[w] = struct{}{}
	}
	for _, w := range stopwordsZH {
		set[w] = struct{}{}
	}
	return set
}()

// IsStop reports whether a case-folded token is in the bilingual stopword
// table.
func IsStop(token string) bool {
	_, ok := stopwordSet[token]
	return ok
}

// Stopwords returns a copy of the full bilingual stopword table.
func Stopwords() []string {
	out := make([]string, 0, len(stopwordsEN)+len(stopwordsZH))
	out = append(out, stopwordsEN...)
	out = append(out, stopwordsZH...)
	return out
}
