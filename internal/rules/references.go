package rules

import (
	"fmt"

	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/report"
	"github.com/tezlab/tezdenetim/internal/stylecascade"
)

// CheckReference validates one bibliography entry: hanging indent,
// entry spacing, an italicized title, a publication year and an
// author-surname lead.
func (e *Engine) CheckReference(cl classify.Classified) {
	loc := cl.Location()
	snip := snippetOf(cl)

	// python-docx era convention carried over: a hanging indent is a
	// negative first-line indent. An indent that resolves to the
	// cascade fallback was never defined and passes.
	indent := e.res.FirstLineIndent(cl.Para)
	indentCm := indent.Value.Cm()
	hanging := indent.Origin == stylecascade.OriginFallback ||
		(indentCm < 0 && within(-indentCm, e.cfg.ReferenceHangingIndentCm, e.cfg.ReferenceIndentToleranceCm))
	e.check(hanging, report.Issue{
		Category: report.CategoryReference,
		Message:  fmt.Sprintf("Kaynak girişinde %s asılı girinti olmalı", fmtCm(e.cfg.ReferenceHangingIndentCm)),
		Location: loc,
		Expected: fmtCm(e.cfg.ReferenceHangingIndentCm),
		Found:    fmtCm(indentCm),
		Snippet:  snip,
	})

	before := e.res.SpacingBefore(cl.Para).Value
	e.check(within(before, e.cfg.ReferenceSpacingBeforePt, e.cfg.SpacingTolerancePt), report.Issue{
		Category: report.CategoryReference,
		Message:  fmt.Sprintf("Kaynak girişi öncesi boşluk %s olmalı (%s bulundu)", fmtPt(e.cfg.ReferenceSpacingBeforePt), fmtPt(before)),
		Location: loc,
		Expected: fmtPt(e.cfg.ReferenceSpacingBeforePt),
		Found:    fmtPt(before),
		Snippet:  snip,
	})

	after := e.res.SpacingAfter(cl.Para).Value
	e.check(within(after, e.cfg.ReferenceSpacingAfterPt, e.cfg.SpacingTolerancePt), report.Issue{
		Category: report.CategoryReference,
		Message:  fmt.Sprintf("Kaynak girişi sonrası boşluk %s olmalı (%s bulundu)", fmtPt(e.cfg.ReferenceSpacingAfterPt), fmtPt(after)),
		Location: loc,
		Expected: fmtPt(e.cfg.ReferenceSpacingAfterPt),
		Found:    fmtPt(after),
		Snippet:  snip,
	})

	e.check(e.res.HasItalicRun(cl.Para), report.Issue{
		Category: report.CategoryReference,
		Message:  "Kaynak girişinde eser adı italik olmalı",
		Location: loc,
		Expected: "italik eser adı",
		Snippet:  snip,
	})

	e.check(classify.HasYearToken(cl.Text), report.Issue{
		Category: report.CategoryReference,
		Message:  "Kaynak girişinde yayın yılı (YYYY) bulunmalı",
		Location: loc,
		Expected: "(YYYY)",
		Snippet:  snip,
	})

	e.check(classify.HasAuthorLead(cl.Text), report.Issue{
		Category: report.CategoryReference,
		Message:  "Kaynak girişi 'Soyad, A.' biçiminde başlamalı",
		Location: loc,
		Expected: "Soyad, A.",
		Snippet:  snip,
	})
}
