package rules

import (
	"fmt"
	"strings"

	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/docmodel"
	"github.com/tezlab/tezdenetim/internal/report"
	"github.com/tezlab/tezdenetim/internal/stylecascade"
)

// CheckChapterHeading validates a chapter-level heading: centered,
// bold, all uppercase.
func (e *Engine) CheckChapterHeading(cl classify.Classified) {
	loc := cl.Location()
	snip := snippetOf(cl)

	align := e.res.Alignment(cl.Para)
	e.check(align.Origin == stylecascade.OriginFallback || align.Value == docmodel.AlignCenter, report.Issue{
		Category: report.CategoryHeading,
		Message:  "Bölüm başlığı ortalanmalı",
		Location: loc,
		Expected: "ortalı",
		Found:    string(align.Value),
		Snippet:  snip,
	})

	e.check(e.res.ParagraphBold(cl.Para, e.cfg.BoldRatioThreshold), report.Issue{
		Category: report.CategoryHeading,
		Message:  "Bölüm başlığı kalın (bold) yazılmalı",
		Location: loc,
		Expected: "kalın",
		Found:    "normal",
		Snippet:  snip,
	})

	e.check(classify.IsUppercaseText(cl.Text), report.Issue{
		Category: report.CategoryHeading,
		Message:  "Bölüm başlığı tamamı büyük harf olmalı",
		Location: loc,
		Expected: "BÜYÜK HARF",
		Found:    cl.Text,
		Snippet:  snip,
	})
}

// CheckChapterStart validates the clear space above a chapter opening:
// either a large space-before on the heading or a run of blank
// paragraphs above it.
func (e *Engine) CheckChapterStart(cl classify.Classified, all []classify.Classified) {
	blanks := 0
	for i := cl.Index - 1; i >= 0 && all[i].Role == classify.RoleBlank; i-- {
		blanks++
	}
	before := e.res.SpacingBefore(cl.Para).Value
	ok := before >= e.cfg.ChapterSpaceBeforeMinPt || blanks >= e.cfg.ChapterBlankLinesMin
	e.check(ok, report.Issue{
		Category: report.CategoryHeading,
		Message:  fmt.Sprintf("Bölüm başlığı sayfanın %s aşağısından başlamalı", fmtCm(e.cfg.ChapterStartMarginCm)),
		Location: cl.Location(),
		Expected: fmtCm(e.cfg.ChapterStartMarginCm),
		Found:    fmt.Sprintf("%s boşluk, %d boş satır", fmtPt(before), blanks),
		Snippet:  snippetOf(cl),
	})
}

// CheckNumberedHeading validates a numbered subheading by level:
// level 1 is uppercase, deeper levels are title case; all levels are
// bold and left-aligned.
func (e *Engine) CheckNumberedHeading(cl classify.Classified) {
	loc := cl.Location()
	snip := snippetOf(cl)

	e.check(e.res.ParagraphBold(cl.Para, e.cfg.BoldRatioThreshold), report.Issue{
		Category: report.CategoryHeading,
		Message:  "Alt başlık kalın (bold) yazılmalı",
		Location: loc,
		Expected: "kalın",
		Found:    "normal",
		Snippet:  snip,
	})

	// Case rules apply to the title text after the numeral.
	title := headingTitle(cl.Text)
	if cl.Level == 1 {
		e.check(classify.IsUppercaseText(title), report.Issue{
			Category: report.CategoryHeading,
			Message:  "Birinci düzey başlık tamamı büyük harf olmalı",
			Location: loc,
			Expected: "BÜYÜK HARF",
			Found:    title,
			Snippet:  snip,
		})
	} else {
		e.check(classify.IsTitleCase(title), report.Issue{
			Category: report.CategoryHeading,
			Message:  "Alt başlıkta her kelimenin ilk harfi büyük olmalı",
			Location: loc,
			Expected: "Her Kelime Büyük Harfle",
			Found:    title,
			Snippet:  snip,
		})
	}

	align := e.res.Alignment(cl.Para)
	e.check(align.Origin == stylecascade.OriginFallback || align.Value == docmodel.AlignLeft || align.Value == docmodel.AlignJustify, report.Issue{
		Category: report.CategoryHeading,
		Message:  "Alt başlık sola dayalı olmalı",
		Location: loc,
		Expected: "sola dayalı",
		Found:    string(align.Value),
		Snippet:  snip,
	})
}

// headingTitle strips the leading numeral of a numbered heading.
func headingTitle(text string) string {
	i := 0
	for i < len(text) && (text[i] >= '0' && text[i] <= '9' || text[i] == '.') {
		i++
	}
	return strings.TrimSpace(text[i:])
}
