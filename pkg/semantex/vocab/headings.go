package vocab

// SectionKind is the recognized role of a document section. The set is
// closed: heading classification only ever produces one of these values.
type SectionKind string

const (
	SectionIntroduction SectionKind = "introduction"
	SectionMethodology  SectionKind = "methodology"
	SectionResults      SectionKind = "results"
	SectionDiscussion   SectionKind = "discussion"
	SectionConclusion   SectionKind = "conclusion"
	SectionReference    SectionKind = "reference"
	SectionOther        SectionKind = "other"
)

// headingWords maps lowercase heading vocabulary to the section kind it
// signals, in English and Chinese.
var headingWords = map[string]SectionKind{
	"abstract":     SectionIntroduction,
	"introduction": SectionIntroduction,
	"background":   SectionIntroduction,
	"overview":     SectionIntroduction,
	"intro":        SectionIntroduction,
	"摘要":           SectionIntroduction,
	"引言":           SectionIntroduction,
	"简介":           SectionIntroduction,
	"背景":           SectionIntroduction,
	"概述":           SectionIntroduction,

	"methodology": SectionMethodology,
	"methods":     SectionMethodology,
	"method":      SectionMethodology,
	"approach":    SectionMethodology,
	"方法":          SectionMethodology,
	"方法论":         SectionMethodology,
	"研究方法":        SectionMethodology,

	"results":  SectionResults,
	"result":   SectionResults,
	"findings": SectionResults,
	"结果":       SectionResults,
	"实验结果":     SectionResults,
	"发现":       SectionResults,

	"discussion": SectionDiscussion,
	"analysis":   SectionDiscussion,
	"讨论":         SectionDiscussion,
	"分析":         SectionDiscussion,

	"conclusion":  SectionConclusion,
	"conclusions": SectionConclusion,
	"summary":     SectionConclusion,
	"结论":          SectionConclusion,
	"总结":          SectionConclusion,

	"references":   SectionReference,
	"bibliography": SectionReference,
	"参考文献":         SectionReference,
	"参考资料":         SectionReference,
}

// HeadingKind classifies a lowercase candidate heading word. The second
// return is false when the word is not in the heading vocabulary.
func HeadingKind(word string) (SectionKind, bool) {
	kind, ok := headingWords[word]
	return kind, ok
}
