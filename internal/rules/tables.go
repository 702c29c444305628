package rules

import (
	"fmt"
	"strings"

	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/docmodel"
	"github.com/tezlab/tezdenetim/internal/report"
)

// longTextStop: a preceding paragraph longer than this ends the
// caption search, it is body text rather than a stray line.
const longTextStop = 20

// CheckTablePlacement verifies every body table has a "Tablo X.Y:"
// caption within the configured window of preceding paragraphs. Blank
// paragraphs do not consume the window; a long non-caption paragraph
// ends the search early.
func (e *Engine) CheckTablePlacement(doc *docmodel.Document) {
	tableNo := 0
	for i, block := range doc.Blocks {
		if block.Type != docmodel.BlockTable {
			continue
		}
		tableNo++

		found := false
		remaining := e.cfg.CaptionSearchWindow
		for j := i - 1; j >= 0 && remaining > 0; j-- {
			if doc.Blocks[j].Type != docmodel.BlockParagraph {
				break
			}
			text := strings.TrimSpace(doc.Blocks[j].Paragraph.Text())
			if text == "" {
				continue
			}
			if classify.IsTableCaption(text) {
				found = true
				break
			}
			if len([]rune(text)) > longTextStop {
				break
			}
			remaining--
		}

		e.check(found, report.Issue{
			Category: report.CategoryTable,
			Message:  "Tablo başlığı tablonun hemen üzerinde bulunamadı",
			Location: fmt.Sprintf("Tablo %d", tableNo),
			Expected: "Tablo B.S: başlığı tablonun üzerinde",
		})
	}
}

// CheckTableContent validates the font size inside table cells. Each
// table counts one check regardless of cell count.
func (e *Engine) CheckTableContent(doc *docmodel.Document) {
	for ti, table := range doc.Tables {
		loc := fmt.Sprintf("Tablo %d", ti+1)
		ok := true
		var bad float64
	cells:
		for _, row := range table.Rows {
			for _, cell := range row {
				for _, para := range cell.Paragraphs {
					for _, run := range para.Runs {
						if strings.TrimSpace(run.Text) == "" {
							continue
						}
						size := e.res.FontSize(para, run).Value
						if !within(size, e.cfg.FontSizeTableContentPt, e.cfg.FontSizeTolerancePt) {
							ok = false
							bad = size
							break cells
						}
					}
				}
			}
		}
		e.check(ok, report.Issue{
			Category: report.CategoryTable,
			Message:  fmt.Sprintf("Tablo içeriği %s punto olmalı (%s bulundu)", fmtNum(e.cfg.FontSizeTableContentPt), fmtNum(bad)),
			Location: loc,
			Expected: fmtNum(e.cfg.FontSizeTableContentPt),
			Found:    fmtNum(bad),
		})
	}
}
