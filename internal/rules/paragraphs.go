package rules

import (
	"fmt"

	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/docmodel"
	"github.com/tezlab/tezdenetim/internal/report"
	"github.com/tezlab/tezdenetim/internal/stylecascade"
)

// CheckBodyParagraph validates geometry of a normal body paragraph:
// justified alignment, first-line indent, spacing before/after and
// 1.5 line spacing. Alignment, indent and line spacing that resolve to
// the cascade fallback were never defined in the document and pass;
// unset spacing resolves to 0 and is judged like any other value.
func (e *Engine) CheckBodyParagraph(cl classify.Classified) {
	loc := cl.Location()
	snip := snippetOf(cl)

	align := e.res.Alignment(cl.Para)
	e.check(align.Origin == stylecascade.OriginFallback || align.Value == docmodel.AlignJustify, report.Issue{
		Category: report.CategoryParagraph,
		Message:  "Paragraf iki yana yaslanmalı",
		Location: loc,
		Expected: "iki yana yaslı",
		Found:    string(align.Value),
		Snippet:  snip,
	})

	indent := e.res.FirstLineIndent(cl.Para)
	indentCm := indent.Value.Cm()
	e.check(indent.Origin == stylecascade.OriginFallback || within(indentCm, e.cfg.FirstLineIndentCm, e.cfg.FirstLineIndentTolCm), report.Issue{
		Category: report.CategoryParagraph,
		Message:  fmt.Sprintf("İlk satır girintisi %s olmalı (%s bulundu)", fmtCm(e.cfg.FirstLineIndentCm), fmtCm(indentCm)),
		Location: loc,
		Expected: fmtCm(e.cfg.FirstLineIndentCm),
		Found:    fmtCm(indentCm),
		Snippet:  snip,
	})

	e.checkSpacing(cl, e.cfg.SpacingBeforePt, e.cfg.SpacingAfterPt)

	spacing := e.res.LineSpacingMultiplier(cl.Para)
	e.check(spacing.Origin == stylecascade.OriginFallback || within(spacing.Value, e.cfg.LineSpacingBody, e.cfg.LineSpacingTolerance), report.Issue{
		Category: report.CategoryLineSpacing,
		Message:  fmt.Sprintf("Satır aralığı %s olmalı (%s bulundu)", fmtNum(e.cfg.LineSpacingBody), fmtNum(spacing.Value)),
		Location: loc,
		Expected: fmtNum(e.cfg.LineSpacingBody),
		Found:    fmtNum(spacing.Value),
		Snippet:  snip,
	})
}

// checkSpacing validates the paragraph's space before and after.
func (e *Engine) checkSpacing(cl classify.Classified, beforePt, afterPt float64) {
	loc := cl.Location()
	snip := snippetOf(cl)

	before := e.res.SpacingBefore(cl.Para).Value
	e.check(within(before, beforePt, e.cfg.SpacingTolerancePt), report.Issue{
		Category: report.CategoryParagraph,
		Message:  fmt.Sprintf("Paragraf öncesi boşluk %s olmalı (%s bulundu)", fmtPt(beforePt), fmtPt(before)),
		Location: loc,
		Expected: fmtPt(beforePt),
		Found:    fmtPt(before),
		Snippet:  snip,
	})

	after := e.res.SpacingAfter(cl.Para).Value
	e.check(within(after, afterPt, e.cfg.SpacingTolerancePt), report.Issue{
		Category: report.CategoryParagraph,
		Message:  fmt.Sprintf("Paragraf sonrası boşluk %s olmalı (%s bulundu)", fmtPt(afterPt), fmtPt(after)),
		Location: loc,
		Expected: fmtPt(afterPt),
		Found:    fmtPt(after),
		Snippet:  snip,
	})
}

// CheckBlockQuote validates a long-quotation block: 1.25 cm indents on
// both sides, single line spacing and no first-line indent.
func (e *Engine) CheckBlockQuote(cl classify.Classified) {
	loc := cl.Location()
	snip := snippetOf(cl)

	left := e.res.LeftIndent(cl.Para).Value.Cm()
	e.check(within(left, e.cfg.BlockQuoteIndentCm, e.cfg.FirstLineIndentTolCm), report.Issue{
		Category: report.CategoryParagraph,
		Message:  fmt.Sprintf("Blok alıntı sol girintisi %s olmalı (%s bulundu)", fmtCm(e.cfg.BlockQuoteIndentCm), fmtCm(left)),
		Location: loc,
		Expected: fmtCm(e.cfg.BlockQuoteIndentCm),
		Found:    fmtCm(left),
		Snippet:  snip,
	})

	right := e.res.RightIndent(cl.Para).Value.Cm()
	e.check(within(right, e.cfg.BlockQuoteIndentCm, e.cfg.FirstLineIndentTolCm), report.Issue{
		Category: report.CategoryParagraph,
		Message:  fmt.Sprintf("Blok alıntı sağ girintisi %s olmalı (%s bulundu)", fmtCm(e.cfg.BlockQuoteIndentCm), fmtCm(right)),
		Location: loc,
		Expected: fmtCm(e.cfg.BlockQuoteIndentCm),
		Found:    fmtCm(right),
		Snippet:  snip,
	})

	spacing := e.res.LineSpacingMultiplier(cl.Para)
	e.check(spacing.Origin == stylecascade.OriginFallback || within(spacing.Value, e.cfg.LineSpacingBlockQuote, e.cfg.LineSpacingTolerance), report.Issue{
		Category: report.CategoryLineSpacing,
		Message:  fmt.Sprintf("Blok alıntı satır aralığı %s olmalı (%s bulundu)", fmtNum(e.cfg.LineSpacingBlockQuote), fmtNum(spacing.Value)),
		Location: loc,
		Expected: fmtNum(e.cfg.LineSpacingBlockQuote),
		Found:    fmtNum(spacing.Value),
		Snippet:  snip,
	})
}

// CheckEpigraph validates an epigraph: right-aligned italic text.
func (e *Engine) CheckEpigraph(cl classify.Classified) {
	e.check(e.res.ParagraphItalic(cl.Para), report.Issue{
		Category: report.CategoryParagraph,
		Message:  "Epigraf italik yazılmalı",
		Location: cl.Location(),
		Expected: "italik",
		Found:    "düz",
		Snippet:  snippetOf(cl),
	})
}
