package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/report"
)

// CheckRequiredSections verifies the section inventory and returns the
// missing section names in rulebook order.
func (e *Engine) CheckRequiredSections(reg *classify.Registries) []string {
	var missing []string
	for _, name := range e.cfg.RequiredSections {
		found := reg.SectionsFound[name]
		e.check(found, report.Issue{
			Category: report.CategorySection,
			Message:  fmt.Sprintf("Gerekli bölüm eksik: %s", name),
			Location: "Belge",
			Expected: name,
		})
		if !found {
			missing = append(missing, name)
		}
	}
	return missing
}

// CheckTOCConsistency cross-checks the table of contents against the
// in-body heading inventory in both directions. Matching is done on
// normalized text (uppercased, dots and whitespace stripped) with
// substring containment, so dot leaders and numbering variants do not
// produce false mismatches.
func (e *Engine) CheckTOCConsistency(reg *classify.Registries) {
	if len(reg.TOC) == 0 {
		return
	}

	normHeadings := make([]string, 0, len(reg.Headings))
	for _, h := range reg.Headings {
		normHeadings = append(normHeadings, classify.NormalizeHeading(h))
	}

	for _, title := range reg.TOCOrder {
		norm := classify.NormalizeHeading(title)
		if norm == "" {
			continue
		}
		found := false
		for _, h := range normHeadings {
			if strings.Contains(h, norm) || strings.Contains(norm, h) {
				found = true
				break
			}
		}
		e.check(found, report.Issue{
			Category: report.CategorySection,
			Message:  fmt.Sprintf("İçindekiler'de listelenen başlık metinde bulunamadı: %s", title),
			Location: "İçindekiler",
			Expected: title,
		})
	}

	normTOC := make([]string, 0, len(reg.TOCOrder))
	for _, title := range reg.TOCOrder {
		normTOC = append(normTOC, classify.NormalizeHeading(title))
	}
	for _, h := range reg.Headings {
		norm := classify.NormalizeHeading(h)
		if norm == "" || !startsWithDigit(h) {
			// Only numbered headings are expected in the contents.
			continue
		}
		found := false
		for _, t := range normTOC {
			if strings.Contains(norm, t) || strings.Contains(t, norm) {
				found = true
				break
			}
		}
		e.check(found, report.Issue{
			Category: report.CategorySection,
			Message:  fmt.Sprintf("Başlık İçindekiler'de listelenmemiş: %s", h),
			Location: "İçindekiler",
			Found:    h,
		})
	}
}

func startsWithDigit(s string) bool {
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// CheckCaptionContinuity verifies per-chapter caption numbering forms
// the contiguous sequence 1..N without gaps or duplicates.
func (e *Engine) CheckCaptionContinuity(refs []classify.CaptionRef, kind classify.CaptionKind) {
	byChapter := make(map[int][]int)
	var chapters []int
	for _, ref := range refs {
		if _, ok := byChapter[ref.Chapter]; !ok {
			chapters = append(chapters, ref.Chapter)
		}
		byChapter[ref.Chapter] = append(byChapter[ref.Chapter], ref.Item)
	}
	sort.Ints(chapters)

	label := "Tablo"
	cat := report.CategoryNumbering
	if kind == classify.CaptionFigure {
		label = "Şekil"
	}

	for _, ch := range chapters {
		items := append([]int(nil), byChapter[ch]...)
		sort.Ints(items)

		seen := make(map[int]bool)
		contiguous := true
		for i, item := range items {
			if seen[item] {
				contiguous = false
				break
			}
			seen[item] = true
			if item != i+1 {
				contiguous = false
				break
			}
		}

		e.check(contiguous, report.Issue{
			Category: cat,
			Message:  fmt.Sprintf("%s numaralandırması bölüm %d içinde ardışık değil", label, ch),
			Location: fmt.Sprintf("%s %d.x", label, ch),
			Expected: expectedSequence(len(items)),
			Found:    joinInts(items),
		})
	}
}

func expectedSequence(n int) string {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return joinInts(items)
}

func joinInts(items []int) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

// CheckCaption validates the caption's numbering format.
func (e *Engine) CheckCaption(cl classify.Classified, kind classify.CaptionKind) {
	label := "Tablo"
	cat := report.CategoryTable
	if kind == classify.CaptionFigure {
		label = "Şekil"
		cat = report.CategoryFigure
	}

	e.check(cl.CaptionOK, report.Issue{
		Category: cat,
		Message:  fmt.Sprintf("%s başlığı '%s B.S:' biçiminde numaralanmalı", label, label),
		Location: cl.Location(),
		Expected: fmt.Sprintf("%s 1.1: ...", label),
		Found:    cl.Text,
		Snippet:  snippetOf(cl),
	})
}
