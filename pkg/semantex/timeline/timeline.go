// Package timeline extracts date-bearing events from each source and merges
// near-duplicate events into one chronology sorted by resolved year.
package timeline

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/semantex/semantex/pkg/semantex/ingest"
	"github.com/semantex/semantex/pkg/semantex/source"
	"github.com/semantex/semantex/pkg/semantex/vocab"
)

// Event is one dated occurrence on the merged timeline. Year is negative
// for BC dates.
type Event struct {
	ID              string
	Title           string
	Year            int
	Date            string
	DateConfidence  float64
	Description     string
	Sources         []string
	Importance      float64
	Kind            vocab.EventKind
	RelatedEntities []string
}

const (
	maxEventsPerSource = 10
	dateConfidence     = 0.7
	baseImportance     = 5.0
	importancePerHit   = 1.5
	maxImportance      = 10.0
	mergeYearSlack     = 2
	mergeTitleOverlap  = 0.6
	maxTitleLen        = 80
	maxRelatedEntities = 3
)

var yearPatterns = []struct {
	re   *regexp.Regexp
	bc   bool
	year int // submatch index of the year digits
}{
	{re: regexp.MustCompile(`(\d{3,4})年`), year: 1},
	{re: regexp.MustCompile(`(?i)\bin (\d{4})\b`), year: 1},
	{re: regexp.MustCompile(`\b(\d{1,4})\s*(?:BC|BCE)\b`), bc: true, year: 1},
	{re: regexp.MustCompile(`\b(\d{1,4})\s*(?:AD|CE)\b`), year: 1},
}

var capitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+)?\b`)

// Integrator builds merged timelines.
type Integrator struct{}

// NewIntegrator creates a timeline integrator.
func NewIntegrator() *Integrator {
	return &Integrator{}
}

// Integrate extracts up to ten events per source, merges near-duplicates
// transitively, and returns the result sorted ascending by year.
func (ti *Integrator) Integrate(docs []source.Doc) []Event {
	var events []Event
	for _, doc := range docs {
		events = append(events, extractEvents(doc)...)
	}

	merged := mergeSimilar(events)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Year != merged[j].Year {
			return merged[i].Year < merged[j].Year
		}
		return merged[i].Title < merged[j].Title
	})
	for i := range merged {
		merged[i].ID = fmt.Sprintf("evt_%d", i+1)
	}
	return merged
}

func extractEvents(doc source.Doc) []Event {
	var events []Event
	seen := make(map[int]struct{}) // dedupe by offset within this source

	for _, pattern := range yearPatterns {
		for _, loc := range pattern.re.FindAllStringSubmatchIndex(doc.Text, -1) {
			if len(events) >= maxEventsPerSource {
				return events
			}
			if _, dup := seen[loc[0]]; dup {
				continue
			}
			seen[loc[0]] = struct{}{}

			yearText := doc.Text[loc[2*pattern.year]:loc[2*pattern.year+1]]
			year, err := strconv.Atoi(yearText)
			if err != nil {
				continue
			}
			if pattern.bc {
				year = -year
			}

			sentence := sentenceAround(doc.Text, loc[0])
			description := window(doc.Text, loc[0], loc[1])
			events = append(events, Event{
				Title:           clip(sentence, maxTitleLen),
				Year:            year,
				Date:            strings.TrimSpace(doc.Text[loc[0]:loc[1]]),
				DateConfidence:  dateConfidence,
				Description:     description,
				Sources:         []string{doc.Name},
				Importance:      importance(description),
				Kind:            vocab.ClassifyEvent(description),
				RelatedEntities: relatedEntities(description),
			})
		}
	}
	return events
}

func importance(description string) float64 {
	score := baseImportance + importancePerHit*float64(vocab.SignificanceHits(description))
	if score > maxImportance {
		score = maxImportance
	}
	return score
}

func relatedEntities(description string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, name := range capitalizedWord.FindAllString(description, -1) {
		if len(out) >= maxRelatedEntities {
			break
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// mergeSimilar unions events whose years are within mergeYearSlack and whose
// titles overlap strongly. Merging is transitive across the whole batch.
func mergeSimilar(events []Event) []Event {
	n := len(events)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(i, j int) {
		parent[find(i)] = find(j)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if similar(events[i], events[j]) {
				union(i, j)
			}
		}
	}

	groups := make(map[int][]int)
	var roots []int
	for i := 0; i < n; i++ {
		root := find(i)
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], i)
	}

	var merged []Event
	for _, root := range roots {
		members := groups[root]
		merged = append(merged, mergeGroup(events, members))
	}
	return merged
}

func similar(a, b Event) bool {
	diff := a.Year - b.Year
	if diff < 0 {
		diff = -diff
	}
	if diff > mergeYearSlack {
		return false
	}
	return titleOverlap(a.Title, b.Title) > mergeTitleOverlap
}

// titleOverlap is the token overlap coefficient |A∩B| / min(|A|,|B|).
func titleOverlap(a, b string) float64 {
	ta := tokenSet(a)
	tb := tokenSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}
	common := 0
	for tok := range ta {
		if _, ok := tb[tok]; ok {
			common++
		}
	}
	min := len(ta)
	if len(tb) < min {
		min = len(tb)
	}
	return float64(common) / float64(min)
}

var overlapTokenizer = ingest.NewTokenizer(nil, 2)

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range overlapTokenizer.Tokenize(s) {
		set[tok] = struct{}{}
	}
	return set
}

// mergeGroup collapses one transitive group: earliest year wins, sources
// union, importance averages, descriptions concatenate.
func mergeGroup(events []Event, members []int) Event {
	base := events[members[0]]
	if len(members) == 1 {
		return base
	}

	sourceSet := make(map[string]struct{})
	var descriptions []string
	var importanceSum float64
	bestImportance := -1.0

	for _, i := range members {
		e := events[i]
		for _, s := range e.Sources {
			sourceSet[s] = struct{}{}
		}
		descriptions = append(descriptions, e.Description)
		importanceSum += e.Importance
		if e.Year < base.Year {
			base.Year = e.Year
			base.Date = e.Date
		}
		if e.Importance > bestImportance {
			bestImportance = e.Importance
			base.Title = e.Title
			base.Kind = e.Kind
		}
	}

	sources := make([]string, 0, len(sourceSet))
	for s := range sourceSet {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	base.Sources = sources
	base.Description = strings.Join(descriptions, " | ")
	base.Importance = importanceSum / float64(len(members))
	return base
}

func sentenceAround(text string, at int) string {
	if s := ingest.SentenceAt(text, at); s != "" {
		return s
	}
	return window(text, at, at)
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func window(text string, start, end int) string {
	lo := start - 80
	if lo < 0 {
		lo = 0
	}
	for lo > 0 && text[lo]&0xC0 == 0x80 {
		lo--
	}
	hi := end + 80
	if hi > len(text) {
		hi = len(text)
	}
	for hi < len(text) && text[hi]&0xC0 == 0x80 {
		hi++
	}
	return strings.TrimSpace(text[lo:hi])
}
