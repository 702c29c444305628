package rules

import (
	"fmt"

	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/report"
)

// CheckAbstract validates the Turkish abstract's word count against
// the guideline bounds. Returns the counted words for the report.
func (e *Engine) CheckAbstract(reg *classify.Registries) int {
	words := classify.CountWords(reg.AbstractText)
	if reg.AbstractText == "" {
		// A missing abstract is already a missing-section failure.
		return 0
	}

	e.check(words >= e.cfg.AbstractMinWords, report.Issue{
		Category: report.CategoryAbstract,
		Message:  fmt.Sprintf("Özet en az %d kelime olmalı (%d kelime bulundu)", e.cfg.AbstractMinWords, words),
		Location: "Özet",
		Expected: fmt.Sprintf(">= %d kelime", e.cfg.AbstractMinWords),
		Found:    fmt.Sprintf("%d kelime", words),
	})

	e.check(words <= e.cfg.AbstractMaxWords, report.Issue{
		Category: report.CategoryAbstract,
		Message:  fmt.Sprintf("Özet en fazla %d kelime olmalı (%d kelime bulundu)", e.cfg.AbstractMaxWords, words),
		Location: "Özet",
		Expected: fmt.Sprintf("<= %d kelime", e.cfg.AbstractMaxWords),
		Found:    fmt.Sprintf("%d kelime", words),
	})

	return words
}
