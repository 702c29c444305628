package classify

import "strings"

// ScanState is the active region of the paragraph scan. Exactly one
// state is active at a time; transitions fire on pattern-matched
// heading markers.
type ScanState int

const (
	// StateCover: cover pages up to the front-matter boundary.
	StateCover ScanState = iota
	// StateFrontMatter: preface, approval pages, acknowledgements.
	StateFrontMatter
	// StateTOC: inside the table of contents block.
	StateTOC
	// StateListOfTables: inside the tables/figures list block.
	StateListOfTables
	// StateAbstract: inside the Turkish abstract.
	StateAbstract
	// StateBody: main text from GİRİŞ onward.
	StateBody
	// StateReferences: inside the bibliography.
	StateReferences
)

// String returns the state name.
func (s ScanState) String() string {
	switch s {
	case StateCover:
		return "cover"
	case StateFrontMatter:
		return "front_matter"
	case StateTOC:
		return "toc"
	case StateListOfTables:
		return "list_of_tables"
	case StateAbstract:
		return "abstract"
	case StateBody:
		return "body"
	case StateReferences:
		return "references"
	default:
		return "unknown"
	}
}

// stateTransition describes a marker-driven transition.
type stateTransition struct {
	from    ScanState
	marker  string // substring of the Turkish-uppercased text
	maxLen  int    // only fire on short heading-like lines
	to      ScanState
	anyFrom bool // fire regardless of current state
}

// transitions is the table the scanner walks in order; the first match
// wins. BODY re-enters heading-driven sub-states without leaving BODY,
// so chapter and numbered headings are roles, not states.
var transitions = []stateTransition{
	{marker: "İÇİNDEKİLER", maxLen: 30, to: StateTOC, anyFrom: true},
	{from: StateTOC, marker: "TABLOLAR LİSTESİ", maxLen: 30, to: StateListOfTables},
	{from: StateTOC, marker: "ŞEKİLLER LİSTESİ", maxLen: 30, to: StateListOfTables},
	{from: StateFrontMatter, marker: "TABLOLAR LİSTESİ", maxLen: 30, to: StateListOfTables},
	{from: StateFrontMatter, marker: "ŞEKİLLER LİSTESİ", maxLen: 30, to: StateListOfTables},
	{marker: "ÖZET", maxLen: 20, to: StateAbstract, anyFrom: true},
	{from: StateAbstract, marker: "ABSTRACT", maxLen: 20, to: StateFrontMatter},
	{marker: "GİRİŞ", maxLen: 20, to: StateBody, anyFrom: true},
	{marker: "KAYNAKÇA", maxLen: 20, to: StateReferences, anyFrom: true},
	{from: StateListOfTables, marker: "BÖLÜM", maxLen: 40, to: StateBody},
	{from: StateReferences, marker: "EKLER", maxLen: 20, to: StateBody},
}

// advance returns the state after seeing the given paragraph text.
func advance(state ScanState, text string) ScanState {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return state
	}
	upper := UpperTR(trimmed)
	n := len([]rune(trimmed))
	for _, t := range transitions {
		if !t.anyFrom && t.from != state {
			continue
		}
		if n < t.maxLen && strings.Contains(upper, t.marker) {
			// ÖZET must not fire on the English abstract heading.
			if t.marker == "ÖZET" && strings.Contains(upper, "ABSTRACT") {
				continue
			}
			return t.to
		}
	}
	return state
}
