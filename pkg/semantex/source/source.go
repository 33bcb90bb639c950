package source

// Doc is one already-extracted plain-text document handed to the engine.
// Retrieval and format conversion happen upstream; the pipeline only sees
// the text, a source label, and optional free-form metadata.
type Doc struct {
	Name     string
	Text     string
	Metadata map[string]string
}

// Kind describes the declared class of a knowledge source. It drives the
// per-source reliability bonus in the credibility assessment.
type Kind string

const (
	KindAcademic  Kind = "academic"  // peer-reviewed / scholarly
	KindCurated   Kind = "curated"   // curated knowledge network
	KindReference Kind = "reference" // general reference work
	KindUnknown   Kind = "unknown"
)

// KindOf reads the declared kind from a doc's metadata, defaulting to
// KindUnknown when absent or unrecognized.
func KindOf(d Doc) Kind {
	switch Kind(d.Metadata["kind"]) {
	case KindAcademic:
		return KindAcademic
	case KindCurated:
		return KindCurated
	case KindReference:
		return KindReference
	default:
		return KindUnknown
	}
}
