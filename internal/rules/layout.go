package rules

import (
	"fmt"

	"github.com/tezlab/tezdenetim/internal/docmodel"
	"github.com/tezlab/tezdenetim/internal/report"
	"github.com/tezlab/tezdenetim/internal/stylecascade"
)

// CheckMargins validates page margins per section. Margins absent from
// the source inherit the application default and are not checked.
func (e *Engine) CheckMargins(doc *docmodel.Document) {
	for i, sec := range doc.Sections {
		loc := fmt.Sprintf("Bölüm %d", i+1)
		e.checkMargin(sec.Margins.Top, e.cfg.MarginTopCm, "Üst", loc)
		e.checkMargin(sec.Margins.Bottom, e.cfg.MarginBottomCm, "Alt", loc)
		e.checkMargin(sec.Margins.Left, e.cfg.MarginLeftCm, "Sol", loc)
		e.checkMargin(sec.Margins.Right, e.cfg.MarginRightCm, "Sağ", loc)
	}
}

func (e *Engine) checkMargin(got *docmodel.Twips, wantCm float64, edge, loc string) {
	if got == nil {
		return
	}
	gotCm := got.Cm()
	e.check(within(gotCm, wantCm, e.cfg.MarginToleranceCm), report.Issue{
		Category: report.CategoryMargin,
		Message:  fmt.Sprintf("%s kenar boşluğu %s olmalı (%s bulundu)", edge, fmtCm(wantCm), fmtCm(gotCm)),
		Location: loc,
		Expected: fmtCm(wantCm),
		Found:    fmtCm(gotCm),
	})
}

// CheckFooters validates footer distance, alignment and page number
// size per section.
func (e *Engine) CheckFooters(doc *docmodel.Document) {
	for i, sec := range doc.Sections {
		loc := fmt.Sprintf("Altbilgi (Bölüm %d)", i+1)

		if sec.FooterDistance != nil {
			gotCm := sec.FooterDistance.Cm()
			e.check(within(gotCm, e.cfg.FooterDistanceCm, e.cfg.FooterDistanceTolCm), report.Issue{
				Category: report.CategoryMargin,
				Message:  fmt.Sprintf("Altbilgi mesafesi %s olmalı (%s bulundu)", fmtCm(e.cfg.FooterDistanceCm), fmtCm(gotCm)),
				Location: loc,
				Expected: fmtCm(e.cfg.FooterDistanceCm),
				Found:    fmtCm(gotCm),
			})
		}

		for _, para := range sec.Footer {
			if para.IsEmpty() {
				continue
			}
			align := e.res.Alignment(para)
			e.check(align.Origin == stylecascade.OriginFallback || align.Value == docmodel.AlignCenter, report.Issue{
				Category: report.CategoryParagraph,
				Message:  "Sayfa numarası ortalanmalı",
				Location: loc,
				Expected: "ortalı",
				Found:    string(align.Value),
			})
			sizeOK := true
			var badSize float64
			for _, run := range para.Runs {
				if run.Text == "" {
					continue
				}
				if size := e.res.FontSize(para, run).Value; !within(size, e.cfg.FontSizePageNumberPt, e.cfg.FontSizeTolerancePt) {
					sizeOK = false
					badSize = size
					break
				}
			}
			e.check(sizeOK, report.Issue{
				Category: report.CategoryFontSize,
				Message:  fmt.Sprintf("Sayfa numarası %s punto olmalı (%s bulundu)", fmtNum(e.cfg.FontSizePageNumberPt), fmtNum(badSize)),
				Location: loc,
				Expected: fmtNum(e.cfg.FontSizePageNumberPt),
				Found:    fmtNum(badSize),
			})
		}
	}
}
