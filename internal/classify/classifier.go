// Package classify assigns each paragraph of the document stream to
// exactly one structural role. The scan runs in two passes: a registry
// pass that collects the table of contents, the abstract and the
// section inventory, and a classification pass that walks the stream
// with an explicit state machine and a strict role precedence.
package classify

import (
	"fmt"
	"strings"

	"github.com/tezlab/tezdenetim/internal/config"
	"github.com/tezlab/tezdenetim/internal/docmodel"
	"github.com/tezlab/tezdenetim/internal/stylecascade"
)

// coverScanLimit bounds the cover-end search; coverFallbackEnd is used
// when no front-matter marker appears within the limit.
const (
	coverScanLimit   = 50
	coverFallbackEnd = 20
)

// Role is the structural role of a paragraph. Classification is total
// and disjoint: each paragraph gets exactly one role.
type Role int

const (
	RoleBlank Role = iota
	RoleSkip
	RoleTableCaption
	RoleFigureCaption
	RoleChapterHeading
	RoleNumberedHeading
	RoleBlockQuote
	RoleEpigraph
	RoleReference
	RoleBody
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleBlank:
		return "blank"
	case RoleSkip:
		return "skip"
	case RoleTableCaption:
		return "table_caption"
	case RoleFigureCaption:
		return "figure_caption"
	case RoleChapterHeading:
		return "chapter_heading"
	case RoleNumberedHeading:
		return "numbered_heading"
	case RoleBlockQuote:
		return "block_quote"
	case RoleEpigraph:
		return "epigraph"
	case RoleReference:
		return "reference"
	case RoleBody:
		return "body"
	default:
		return "unknown"
	}
}

// CaptionKind distinguishes table captions from figure captions.
type CaptionKind int

const (
	CaptionTable CaptionKind = iota
	CaptionFigure
)

// CaptionRef is a parsed caption number in encounter order.
type CaptionRef struct {
	Chapter  int
	Item     int
	Location string
}

// Classified is the pass-2 output for one paragraph.
type Classified struct {
	Index int
	Text  string
	Role  Role
	// Level is the nesting level for numbered headings.
	Level int
	State ScanState
	// SkipFormat marks paragraphs that bypass paragraph-body rules
	// (cover, list blocks, short front-matter lines). The font and
	// size checks still apply to them.
	SkipFormat bool
	// Caption parse result, for caption roles.
	CaptionChapter int
	CaptionItem    int
	CaptionOK      bool
	Para           *docmodel.Paragraph
}

// Location renders the canonical issue location for this paragraph.
func (c Classified) Location() string {
	return fmt.Sprintf("Paragraf %d", c.Index+1)
}

// Registries holds the cross-reference data built over both passes.
type Registries struct {
	CoverEnd      int
	TOC           map[string]int // normalized title -> nesting level
	TOCOrder      []string       // TOC keys in document order
	AbstractText  string
	SectionsFound map[string]bool
	Headings      []string // uppercased in-body headings (pass 2)
	Tables        []CaptionRef
	Figures       []CaptionRef
}

// requiredSectionMarkers maps heading markers to section display
// names, in report order.
var requiredSectionMarkers = []struct {
	Marker string
	Name   string
}{
	{"ÖZET", "Özet"},
	{"ABSTRACT", "Abstract"},
	{"GİRİŞ", "Giriş"},
	{"SONUÇ", "Sonuç"},
	{"KAYNAKÇA", "Kaynakça"},
	{"İÇİNDEKİLER", "İçindekiler"},
}

// Classifier performs the two-pass structural scan. All state lives in
// the per-call Registries; a Classifier can be reused across runs.
type Classifier struct {
	cfg config.Rules
	res *stylecascade.Resolver
}

// New creates a classifier using the given rulebook and resolver.
func New(cfg config.Rules, res *stylecascade.Resolver) *Classifier {
	return &Classifier{cfg: cfg, res: res}
}

// BuildRegistries runs pass 1: locate the cover boundary, parse the
// table of contents, extract the abstract and inventory the sections.
func (c *Classifier) BuildRegistries(doc *docmodel.Document) *Registries {
	reg := &Registries{
		TOC:           make(map[string]int),
		SectionsFound: make(map[string]bool),
	}
	c.findCoverEnd(doc, reg)
	c.parseTOC(doc, reg)
	c.findSections(doc, reg)
	return reg
}

// findCoverEnd locates the first front-matter marker; the cover is
// everything before it.
func (c *Classifier) findCoverEnd(doc *docmodel.Document, reg *Registries) {
	for i, para := range doc.Paragraphs {
		upper := UpperTR(strings.TrimSpace(para.Text()))
		for _, marker := range []string{"BİLİMSEL ETİĞE", "ÖNSÖZ", "ÖN SÖZ", "ÖZET"} {
			if strings.Contains(upper, marker) {
				reg.CoverEnd = i
				return
			}
		}
		if i > coverScanLimit {
			reg.CoverEnd = coverFallbackEnd
			return
		}
	}
}

// parseTOC extracts `numbered title -> nesting level` entries from the
// table of contents block. The level is the count of hierarchical
// separators in the leading numeral ("2.3." -> 2).
func (c *Classifier) parseTOC(doc *docmodel.Document, reg *Registries) {
	inTOC := false
	for _, para := range doc.Paragraphs {
		text := strings.TrimSpace(para.Text())
		upper := UpperTR(text)
		n := len([]rune(text))

		if strings.Contains(upper, "İÇİNDEKİLER") && n < 30 {
			inTOC = true
			continue
		}
		if !inTOC {
			continue
		}
		// A bare GİRİŞ heading ends the contents block; the TOC's own
		// "GİRİŞ .... 1" entry carries digits and must not.
		if n < 30 && (strings.Contains(upper, "TABLOLAR LİSTESİ") ||
			strings.Contains(upper, "ŞEKİLLER LİSTESİ") ||
			(strings.Contains(upper, "GİRİŞ") && !strings.ContainsAny(text, "0123456789"))) {
			break
		}

		m := tocEntryRe.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		num := m[1]
		title := UpperTR(strings.TrimSpace(m[2]))
		level := strings.Count(num, ".")
		if _, seen := reg.TOC[title]; !seen {
			reg.TOCOrder = append(reg.TOCOrder, title)
		}
		reg.TOC[title] = level
	}
}

// findSections inventories the required sections and collects the
// Turkish abstract's concatenated text.
func (c *Classifier) findSections(doc *docmodel.Document, reg *Registries) {
	inAbstract := false
	ozetFound := false
	var abstractParts []string

	for _, para := range doc.Paragraphs {
		text := strings.TrimSpace(para.Text())
		upper := UpperTR(text)
		n := len([]rune(text))

		isSectionHeading := false
		for _, rs := range requiredSectionMarkers {
			if strings.Contains(upper, rs.Marker) && n < 50 {
				reg.SectionsFound[rs.Name] = true
				isSectionHeading = true
				if rs.Marker == "ÖZET" && !strings.Contains(upper, "ABSTRACT") {
					inAbstract = true
					ozetFound = true
				} else if ozetFound && rs.Marker != "ÖZET" {
					inAbstract = false
				}
			}
		}
		if isSectionHeading {
			continue
		}

		if inAbstract && text != "" {
			switch {
			case strings.HasPrefix(upper, "ANAHTAR") || strings.Contains(upper, "ABSTRACT"):
				inAbstract = false
			case n > 50 && IsUppercaseText(text):
				// Likely the thesis title repeated in caps.
				inAbstract = false
			default:
				abstractParts = append(abstractParts, text)
			}
		}
	}
	reg.AbstractText = strings.Join(abstractParts, " ")
}

// Classify runs pass 2: re-walks the stream, advances the scan state
// on heading markers and assigns one role per paragraph using the
// strict precedence caption -> heading -> quote -> epigraph -> body.
// It also fills the caption registries and the heading inventory.
func (c *Classifier) Classify(doc *docmodel.Document, reg *Registries) []Classified {
	out := make([]Classified, 0, len(doc.Paragraphs))
	state := StateCover
	lastChapterTitleIdx := -1

	for i, para := range doc.Paragraphs {
		text := strings.TrimSpace(para.Text())
		cl := Classified{Index: i, Text: text, Para: para}

		if text == "" {
			cl.Role = RoleBlank
			cl.State = state
			out = append(out, cl)
			continue
		}

		if state == StateCover && i >= reg.CoverEnd {
			state = StateFrontMatter
		}
		prev := state
		state = advance(state, text)
		transitioned := state != prev
		cl.State = state

		upper := UpperTR(text)
		n := len([]rune(text))

		switch {
		case transitioned && state == StateReferences:
			// The KAYNAKÇA marker itself is not a reference entry.
			cl.Role = RoleSkip
		case state == StateCover || i < reg.CoverEnd || IsCoverLine(text):
			cl.Role = RoleSkip
			cl.SkipFormat = true
		case state == StateTOC || state == StateListOfTables || state == StateAbstract:
			cl.Role = RoleSkip
			cl.SkipFormat = true
		case state == StateFrontMatter:
			// Short or centered front-matter lines bypass body rules.
			align := c.res.Alignment(para).Value
			if align == docmodel.AlignCenter || align == docmodel.AlignRight || n < c.cfg.FrontMatterBodyMinLen {
				cl.Role = RoleSkip
				cl.SkipFormat = true
			} else {
				cl.Role = RoleBody
			}
		case strings.HasPrefix(upper, "EK ") && n < 100:
			cl.Role = RoleSkip
		default:
			c.classifyBody(&cl, para, text, i, state, &lastChapterTitleIdx, reg)
		}

		out = append(out, cl)
	}
	return out
}

// classifyBody applies the precedence order for body and reference
// paragraphs.
func (c *Classifier) classifyBody(cl *Classified, para *docmodel.Paragraph, text string, idx int, state ScanState, lastChapterTitleIdx *int, reg *Registries) {
	switch {
	case IsTableCaption(text):
		cl.Role = RoleTableCaption
		cl.CaptionChapter, cl.CaptionItem, cl.CaptionOK = ParseCaptionNumber(text, CaptionTable)
		if cl.CaptionOK {
			reg.Tables = append(reg.Tables, CaptionRef{
				Chapter:  cl.CaptionChapter,
				Item:     cl.CaptionItem,
				Location: cl.Location(),
			})
		}
	case IsFigureCaption(text):
		cl.Role = RoleFigureCaption
		cl.CaptionChapter, cl.CaptionItem, cl.CaptionOK = ParseCaptionNumber(text, CaptionFigure)
		if cl.CaptionOK {
			reg.Figures = append(reg.Figures, CaptionRef{
				Chapter:  cl.CaptionChapter,
				Item:     cl.CaptionItem,
				Location: cl.Location(),
			})
		}
	case IsChapterHeading(text) || (*lastChapterTitleIdx != -1 && idx == *lastChapterTitleIdx+1):
		cl.Role = RoleChapterHeading
		reg.Headings = append(reg.Headings, UpperTR(text))
		if IsChapterTitleOnly(text) {
			// The real chapter title follows on the next paragraph.
			*lastChapterTitleIdx = idx
		}
	case NumberedHeadingLevel(text) > 0:
		cl.Role = RoleNumberedHeading
		cl.Level = NumberedHeadingLevel(text)
		reg.Headings = append(reg.Headings, UpperTR(text))
	case c.isBlockQuote(para):
		cl.Role = RoleBlockQuote
	case c.res.Alignment(para).Value == docmodel.AlignRight:
		cl.Role = RoleEpigraph
	case state == StateReferences:
		if IsReferenceNoise(text, c.cfg.ReferenceNoiseMaxLen) {
			cl.Role = RoleSkip
		} else {
			cl.Role = RoleReference
		}
	default:
		cl.Role = RoleBody
	}
}

// isBlockQuote detects block quotes by their resolved indents: both
// sides above the configured threshold.
func (c *Classifier) isBlockQuote(para *docmodel.Paragraph) bool {
	left := c.res.LeftIndent(para).Value.Cm()
	right := c.res.RightIndent(para).Value.Cm()
	return left > c.cfg.BlockQuoteDetectMinCm && right > c.cfg.BlockQuoteDetectMinCm
}
