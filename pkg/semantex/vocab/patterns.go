package vocab

// RelationKind is a closed set of concept-to-concept relationship labels.
type RelationKind string

const (
	RelCauses      RelationKind = "causes"
	RelEnables     RelationKind = "enables"
	RelContradicts RelationKind = "contradicts"
	RelSupports    RelationKind = "supports"
	RelInfluences  RelationKind = "influences"
	RelRelated     RelationKind = "related"
)

// RelationVerbs groups the connective phrases that signal a directional
// relationship between two concept mentions in a sentence. Checked in table
// order; the first matching group wins.
type RelationVerbs struct {
	Kind     RelationKind
	Strength float64
	Verbs    []string // lowercase, English and Chinese
}

// RelationPatterns holds the directional relationship groups with their
// calibrated strengths. The constants mirror long-standing tuning; treat
// them as heuristics, not measurements.
var RelationPatterns = []RelationVerbs{
	{
		Kind:     RelCauses,
		Strength: 0.8,
		Verbs: []string{
			"causes", "caused by", "leads to", "results in", "gives rise to",
			"导致", "引起", "造成",
		},
	},
	{
		Kind:     RelInfluences,
		Strength: 0.7,
		Verbs: []string{
			"influences", "affects", "impacts", "shapes", "drives",
			"影响", "推动", "促进",
		},
	},
	{
		Kind:     RelSupports,
		Strength: 0.6,
		Verbs: []string{
			"supports", "enables", "facilitates", "underpins", "reinforces",
			"支持", "支撑", "有助于",
		},
	},
	{
		Kind:     RelRelated,
		Strength: 0.5,
		Verbs: []string{
			"relates to", "is related to", "is associated with", "correlates with",
			"相关", "有关",
		},
	},
}

// DefinitionMarkers are the connective phrases between a term and its
// definition ("X is ...", "X refers to ...", "X的定义是...").
var DefinitionMarkers = []string{
	"is defined as", "refers to", "is a", "is an", "is the", "means",
	"的定义是", "是指", "指的是", "是一种", "是一个",
}

// EventKind categorizes a timeline event.
type EventKind string

const (
	EventDiscovery   EventKind = "discovery"
	EventInvention   EventKind = "invention"
	EventPublication EventKind = "publication"
	EventMilestone   EventKind = "milestone"
	EventControversy EventKind = "controversy"
	EventApplication EventKind = "application"
)

// eventVocab maps event categories to the vocabulary that signals them.
// Checked in declaration order; milestone is the fallback.
var eventVocab = []struct {
	kind  EventKind
	words []string
}{
	{EventDiscovery, []string{"discover", "discovery", "discovered", "found", "identified", "发现", "发觉"}},
	{EventInvention, []string{"invent", "invention", "invented", "created", "developed", "designed", "发明", "创造", "研制"}},
	{EventPublication, []string{"publish", "published", "publication", "paper", "article", "journal", "发表", "出版", "论文"}},
	{EventControversy, []string{"controversy", "controversial", "dispute", "debate", "criticized", "争议", "争论", "批评"}},
	{EventApplication, []string{"applied", "application", "deployed", "adopted", "commercial", "应用", "部署", "采用"}},
}

// ClassifyEvent picks the event category whose vocabulary first matches the
// description, defaulting to EventMilestone.
func ClassifyEvent(description string) EventKind {
	for _, group := range eventVocab {
		if countHits(description, group.words) > 0 {
			return group.kind
		}
	}
	return EventMilestone
}
