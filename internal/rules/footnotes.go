package rules

import (
	"fmt"
	"strings"

	"github.com/tezlab/tezdenetim/internal/docmodel"
	"github.com/tezlab/tezdenetim/internal/report"
	"github.com/tezlab/tezdenetim/internal/stylecascade"
)

// CheckFootnotes validates footnote paragraphs: body typeface at the
// footnote size, justified, no first-line indent. Each footnote counts
// one font and one size check regardless of run count; an alignment
// that resolves to the cascade fallback was never defined and passes.
func (e *Engine) CheckFootnotes(doc *docmodel.Document) {
	for i, para := range doc.Footnotes {
		text := strings.TrimSpace(para.Text())
		if text == "" {
			continue
		}
		loc := fmt.Sprintf("Dipnot %d", i+1)
		snip := report.Snippet(text, 80)

		fontOK := true
		var badFont string
		sizeOK := true
		var badSize float64
		for _, run := range para.Runs {
			if strings.TrimSpace(run.Text) == "" {
				continue
			}
			if font := e.res.FontName(para, run).Value; fontOK && font != e.cfg.FontName {
				fontOK = false
				badFont = font
			}
			if size := e.res.FontSize(para, run).Value; sizeOK && !within(size, e.cfg.FontSizeFootnotePt, e.cfg.FontSizeTolerancePt) {
				sizeOK = false
				badSize = size
			}
		}
		e.check(fontOK, report.Issue{
			Category: report.CategoryFootnote,
			Message:  fmt.Sprintf("Dipnot yazı tipi %s olmalı ('%s' bulundu)", e.cfg.FontName, badFont),
			Location: loc,
			Expected: e.cfg.FontName,
			Found:    badFont,
			Snippet:  snip,
		})
		e.check(sizeOK, report.Issue{
			Category: report.CategoryFootnote,
			Message:  fmt.Sprintf("Dipnot %s punto olmalı (%s bulundu)", fmtNum(e.cfg.FontSizeFootnotePt), fmtNum(badSize)),
			Location: loc,
			Expected: fmtNum(e.cfg.FontSizeFootnotePt),
			Found:    fmtNum(badSize),
			Snippet:  snip,
		})

		align := e.res.Alignment(para)
		e.check(align.Origin == stylecascade.OriginFallback || align.Value == docmodel.AlignJustify, report.Issue{
			Category: report.CategoryFootnote,
			Message:  "Dipnot iki yana yaslanmalı",
			Location: loc,
			Expected: "iki yana yaslı",
			Found:    string(align.Value),
			Snippet:  snip,
		})

		indent := e.res.FirstLineIndent(para).Value.Cm()
		e.check(within(indent, 0, e.cfg.FirstLineIndentTolCm), report.Issue{
			Category: report.CategoryFootnote,
			Message:  fmt.Sprintf("Dipnotta ilk satır girintisi olmamalı (%s bulundu)", fmtCm(indent)),
			Location: loc,
			Expected: "0 cm",
			Found:    fmtCm(indent),
			Snippet:  snip,
		})
	}
}
