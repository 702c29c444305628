package rules

import (
	"fmt"

	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/report"
	"github.com/tezlab/tezdenetim/internal/stylecascade"
)

// minFontCheckLen: lines at or below this length (page numbers, single
// markers) are exempt from the font checks.
const minFontCheckLen = 3

// symbolFonts are exempt from the typeface rule: equations and special
// characters legitimately use them.
var symbolFonts = map[string]bool{
	"Symbol":          true,
	"Wingdings":       true,
	"Webdings":        true,
	"Cambria Math":    true,
	"MT Extra":        true,
	"Segoe UI Symbol": true,
}

// CheckFont validates the paragraph's typeface: every non-empty run
// must resolve to the expected font. A value resolved from the cascade
// fallback means the document never defined the font, which fails the
// same as a wrong explicit font. The paragraph counts as one check
// regardless of run count.
func (e *Engine) CheckFont(cl classify.Classified) {
	if len([]rune(cl.Text)) <= minFontCheckLen {
		return
	}
	ok := true
	var bad string
	for _, run := range cl.Para.Runs {
		if run.Text == "" {
			continue
		}
		font := e.res.FontName(cl.Para, run)
		if symbolFonts[font.Value] {
			continue
		}
		if font.Value != e.cfg.FontName || font.Origin == stylecascade.OriginFallback {
			ok = false
			bad = font.Value
			break
		}
	}
	e.check(ok, report.Issue{
		Category: report.CategoryFont,
		Message:  fmt.Sprintf("Yazı tipi %s olmalı ('%s' bulundu)", e.cfg.FontName, bad),
		Location: cl.Location(),
		Expected: e.cfg.FontName,
		Found:    bad,
		Snippet:  snippetOf(cl),
	})
}

// CheckFontSize validates every non-empty run against the expected
// point size for the paragraph's role. One check per paragraph.
func (e *Engine) CheckFontSize(cl classify.Classified, wantPt float64) {
	if len([]rune(cl.Text)) <= minFontCheckLen {
		return
	}
	ok := true
	var bad float64
	for _, run := range cl.Para.Runs {
		if run.Text == "" {
			continue
		}
		size := e.res.FontSize(cl.Para, run).Value
		if !within(size, wantPt, e.cfg.FontSizeTolerancePt) {
			ok = false
			bad = size
			break
		}
	}
	e.check(ok, report.Issue{
		Category: report.CategoryFontSize,
		Message:  fmt.Sprintf("Yazı boyutu %s punto olmalı (%s bulundu)", fmtNum(wantPt), fmtNum(bad)),
		Location: cl.Location(),
		Expected: fmtNum(wantPt),
		Found:    fmtNum(bad),
		Snippet:  snippetOf(cl),
	})
}

// RoleFontSize returns the expected point size for a classified role.
func (e *Engine) RoleFontSize(role classify.Role) float64 {
	switch role {
	case classify.RoleChapterHeading:
		return e.cfg.FontSizeChapterPt
	case classify.RoleNumberedHeading:
		return e.cfg.FontSizeSubheadingPt
	case classify.RoleTableCaption:
		return e.cfg.FontSizeTableCaptionPt
	case classify.RoleFigureCaption:
		return e.cfg.FontSizeFigCaptionPt
	case classify.RoleBlockQuote:
		return e.cfg.FontSizeBlockQuotePt
	case classify.RoleEpigraph:
		return e.cfg.FontSizeEpigraphPt
	default:
		return e.cfg.FontSizeBodyPt
	}
}
