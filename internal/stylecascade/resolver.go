// Package stylecascade resolves effective formatting attributes by
// walking the override chain: direct formatting, style chain, base
// styles, document defaults, and finally a documented fallback.
package stylecascade

import (
	"strings"
	"unicode"

	"github.com/tezlab/tezdenetim/internal/docmodel"
)

// maxChainDepth bounds base-style traversal so that a malformed or
// cyclic style graph can never loop. Exceeding the cap resolves to the
// fallback value.
const maxChainDepth = 8

// Fallback values used when no level of the cascade defines an
// attribute. Word substitutes its theme default (Calibri, 11pt) for
// undefined fonts, so an unresolvable font is reported as Calibri
// rather than silently passing.
const (
	FallbackFontName   = "Calibri"
	FallbackFontSizePt = 11.0
)

// Origin tells rules where a resolved value came from, so they can
// decide whether an inherited default counts as compliant.
type Origin int

const (
	// OriginExplicit: the target itself carries the value.
	OriginExplicit Origin = iota
	// OriginInherited: the value came from a style chain or the
	// document defaults.
	OriginInherited
	// OriginFallback: no level of the cascade defined the attribute.
	OriginFallback
)

// String returns a short label for the origin.
func (o Origin) String() string {
	switch o {
	case OriginExplicit:
		return "explicit"
	case OriginInherited:
		return "inherited"
	default:
		return "fallback"
	}
}

// Resolved is a tagged resolution outcome.
type Resolved[T any] struct {
	Value  T
	Origin Origin
}

// Resolver resolves effective attributes against one document's style
// registry. It holds no mutable state and is safe to share within a
// single analysis run.
type Resolver struct {
	doc *docmodel.Document
}

// New creates a resolver for the given document.
func New(doc *docmodel.Document) *Resolver {
	return &Resolver{doc: doc}
}

// resolveRun resolves a run-scoped attribute: direct run format, then
// the run's character-style chain, then the paragraph's style chain
// (run defaults at each level), then document defaults, then fallback.
func resolveRun[T any](r *Resolver, run docmodel.Run, para *docmodel.Paragraph, get func(docmodel.RunFormat) *T, fallback T) Resolved[T] {
	if v := get(run.Format); v != nil {
		return Resolved[T]{Value: *v, Origin: OriginExplicit}
	}
	if v := walkRunChain(r, run.CharStyleID, get); v != nil {
		return Resolved[T]{Value: *v, Origin: OriginInherited}
	}
	if para != nil {
		if v := walkRunChain(r, para.StyleID, get); v != nil {
			return Resolved[T]{Value: *v, Origin: OriginInherited}
		}
	}
	if v := get(r.doc.Defaults.Run); v != nil {
		return Resolved[T]{Value: *v, Origin: OriginInherited}
	}
	return Resolved[T]{Value: fallback, Origin: OriginFallback}
}

// resolvePara resolves a paragraph-scoped attribute: direct paragraph
// format, then the paragraph style chain, then document defaults, then
// fallback.
func resolvePara[T any](r *Resolver, para *docmodel.Paragraph, get func(docmodel.ParagraphFormat) *T, fallback T) Resolved[T] {
	if v := get(para.Format); v != nil {
		return Resolved[T]{Value: *v, Origin: OriginExplicit}
	}
	if v := walkParaChain(r, para.StyleID, get); v != nil {
		return Resolved[T]{Value: *v, Origin: OriginInherited}
	}
	if v := get(r.doc.Defaults.Para); v != nil {
		return Resolved[T]{Value: *v, Origin: OriginInherited}
	}
	return Resolved[T]{Value: fallback, Origin: OriginFallback}
}

func walkRunChain[T any](r *Resolver, styleID string, get func(docmodel.RunFormat) *T) *T {
	s := r.doc.StyleByID(styleID)
	for depth := 0; s != nil && depth < maxChainDepth; depth++ {
		if v := get(s.Run); v != nil {
			return v
		}
		s = r.doc.StyleByID(s.BasedOn)
	}
	return nil
}

func walkParaChain[T any](r *Resolver, styleID string, get func(docmodel.ParagraphFormat) *T) *T {
	s := r.doc.StyleByID(styleID)
	for depth := 0; s != nil && depth < maxChainDepth; depth++ {
		if v := get(s.Para); v != nil {
			return v
		}
		s = r.doc.StyleByID(s.BasedOn)
	}
	return nil
}

// FontName resolves the effective font of a run.
func (r *Resolver) FontName(para *docmodel.Paragraph, run docmodel.Run) Resolved[string] {
	return resolveRun(r, run, para, func(f docmodel.RunFormat) *string { return f.Font }, FallbackFontName)
}

// FontSize resolves the effective font size of a run, in points.
func (r *Resolver) FontSize(para *docmodel.Paragraph, run docmodel.Run) Resolved[float64] {
	return resolveRun(r, run, para, func(f docmodel.RunFormat) *float64 { return f.SizePt }, FallbackFontSizePt)
}

// RunBold resolves the effective bold flag of a run.
func (r *Resolver) RunBold(para *docmodel.Paragraph, run docmodel.Run) Resolved[bool] {
	return resolveRun(r, run, para, func(f docmodel.RunFormat) *bool { return f.Bold }, false)
}

// RunItalic resolves the effective italic flag of a run.
func (r *Resolver) RunItalic(para *docmodel.Paragraph, run docmodel.Run) Resolved[bool] {
	return resolveRun(r, run, para, func(f docmodel.RunFormat) *bool { return f.Italic }, false)
}

// Alignment resolves the effective paragraph alignment.
func (r *Resolver) Alignment(para *docmodel.Paragraph) Resolved[docmodel.Alignment] {
	return resolvePara(r, para, func(f docmodel.ParagraphFormat) *docmodel.Alignment { return f.Alignment }, docmodel.AlignLeft)
}

// LeftIndent resolves the effective left indent.
func (r *Resolver) LeftIndent(para *docmodel.Paragraph) Resolved[docmodel.Twips] {
	return resolvePara(r, para, func(f docmodel.ParagraphFormat) *docmodel.Twips { return f.LeftIndent }, 0)
}

// RightIndent resolves the effective right indent.
func (r *Resolver) RightIndent(para *docmodel.Paragraph) Resolved[docmodel.Twips] {
	return resolvePara(r, para, func(f docmodel.ParagraphFormat) *docmodel.Twips { return f.RightIndent }, 0)
}

// FirstLineIndent resolves the effective first-line indent; a negative
// value is a hanging indent.
func (r *Resolver) FirstLineIndent(para *docmodel.Paragraph) Resolved[docmodel.Twips] {
	return resolvePara(r, para, func(f docmodel.ParagraphFormat) *docmodel.Twips { return f.FirstLineIndent }, 0)
}

// SpacingBefore resolves the effective space before the paragraph, in
// points.
func (r *Resolver) SpacingBefore(para *docmodel.Paragraph) Resolved[float64] {
	return resolvePara(r, para, func(f docmodel.ParagraphFormat) *float64 { return f.SpacingBefore }, 0)
}

// SpacingAfter resolves the effective space after the paragraph, in
// points.
func (r *Resolver) SpacingAfter(para *docmodel.Paragraph) Resolved[float64] {
	return resolvePara(r, para, func(f docmodel.ParagraphFormat) *float64 { return f.SpacingAfter }, 0)
}

// LineSpacing resolves the raw line-spacing rule and value.
func (r *Resolver) LineSpacing(para *docmodel.Paragraph) Resolved[docmodel.LineSpacing] {
	return resolvePara(r, para, func(f docmodel.ParagraphFormat) *docmodel.LineSpacing { return f.LineSpacing }, docmodel.LineSpacing{Rule: docmodel.LineSpacingMultiple, Value: 1.0})
}

// LineSpacingMultiplier normalizes the effective line spacing to a
// canonical multiplier. Exact and at-least point values are converted
// using the resolved base font size of the paragraph as the reference
// unit.
func (r *Resolver) LineSpacingMultiplier(para *docmodel.Paragraph) Resolved[float64] {
	ls := r.LineSpacing(para)
	switch ls.Value.Rule {
	case docmodel.LineSpacingExact, docmodel.LineSpacingAtLeast:
		base := FallbackFontSizePt
		if run, ok := firstTextRun(para); ok {
			base = r.FontSize(para, run).Value
		}
		if base <= 0 {
			base = FallbackFontSizePt
		}
		return Resolved[float64]{Value: ls.Value.Value / base, Origin: ls.Origin}
	default:
		return Resolved[float64]{Value: ls.Value.Value, Origin: ls.Origin}
	}
}

// ParagraphBold reports whether the paragraph reads as bold: the
// fraction of non-whitespace run characters carrying bold must meet
// the threshold. Isolated non-bold artifacts such as footnote markers
// do not flip the verdict.
func (r *Resolver) ParagraphBold(para *docmodel.Paragraph, threshold float64) bool {
	var boldChars, totalChars int
	for _, run := range para.Runs {
		n := countInk(run.Text)
		if n == 0 {
			continue
		}
		totalChars += n
		if r.RunBold(para, run).Value {
			boldChars += n
		}
	}
	if totalChars == 0 {
		return false
	}
	return float64(boldChars)/float64(totalChars) > threshold
}

// ParagraphItalic reports whether every non-empty run of the paragraph
// resolves italic.
func (r *Resolver) ParagraphItalic(para *docmodel.Paragraph) bool {
	hasText := false
	for _, run := range para.Runs {
		if strings.TrimSpace(run.Text) == "" {
			continue
		}
		hasText = true
		if !r.RunItalic(para, run).Value {
			return false
		}
	}
	return hasText
}

// HasItalicRun reports whether at least one non-empty run resolves
// italic.
func (r *Resolver) HasItalicRun(para *docmodel.Paragraph) bool {
	for _, run := range para.Runs {
		if strings.TrimSpace(run.Text) == "" {
			continue
		}
		if r.RunItalic(para, run).Value {
			return true
		}
	}
	return false
}

// firstTextRun returns the first run with non-whitespace content.
func firstTextRun(para *docmodel.Paragraph) (docmodel.Run, bool) {
	for _, run := range para.Runs {
		if strings.TrimSpace(run.Text) != "" {
			return run, true
		}
	}
	return docmodel.Run{}, false
}

// countInk counts non-whitespace characters.
func countInk(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
