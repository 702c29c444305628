// Package checker orchestrates one analysis run: resolve styles,
// classify the paragraph stream, run the rule catalog and aggregate
// the result into a compliance report.
package checker

import (
	"github.com/rs/zerolog"
	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/config"
	"github.com/tezlab/tezdenetim/internal/docmodel"
	"github.com/tezlab/tezdenetim/internal/report"
	"github.com/tezlab/tezdenetim/internal/rules"
	"github.com/tezlab/tezdenetim/internal/stylecascade"
)

// Checker runs the full compliance analysis against one rulebook.
type Checker struct {
	cfg config.Rules
	log zerolog.Logger
}

// New creates a checker for the given rulebook.
func New(cfg config.Rules, log zerolog.Logger) *Checker {
	return &Checker{cfg: cfg, log: log}
}

// Analyze runs both classification passes and the rule catalog over
// the document and builds the report. The same document always yields
// the same report.
func (c *Checker) Analyze(doc *docmodel.Document) *report.Report {
	res := stylecascade.New(doc)
	cls := classify.New(c.cfg, res)

	reg := cls.BuildRegistries(doc)
	classified := cls.Classify(doc, reg)

	c.log.Debug().
		Int("paragraphs", len(doc.Paragraphs)).
		Int("cover_end", reg.CoverEnd).
		Int("toc_entries", len(reg.TOC)).
		Int("tables", len(reg.Tables)).
		Int("figures", len(reg.Figures)).
		Msg("classification complete")

	agg := report.NewAggregator()
	eng := rules.New(c.cfg, res, agg)

	for _, cl := range classified {
		c.checkParagraph(eng, cl, classified)
	}

	eng.CheckMargins(doc)
	eng.CheckFooters(doc)
	eng.CheckTablePlacement(doc)
	eng.CheckTableContent(doc)
	eng.CheckFootnotes(doc)
	eng.CheckTOCConsistency(reg)
	eng.CheckCaptionContinuity(reg.Tables, classify.CaptionTable)
	eng.CheckCaptionContinuity(reg.Figures, classify.CaptionFigure)
	missing := eng.CheckRequiredSections(reg)
	abstractWords := eng.CheckAbstract(reg)

	total, passed := eng.Tally()
	rep := agg.Build(report.Totals{
		TotalChecks:      total,
		PassedChecks:     passed,
		MissingSections:  missing,
		SectionsFound:    len(reg.SectionsFound),
		SectionsRequired: len(c.cfg.RequiredSections),
		AbstractWords:    abstractWords,
		TableCount:       len(doc.Tables),
		FigureCount:      len(reg.Figures),
		TOCHeadingCount:  len(reg.TOC),
	})

	c.log.Info().
		Float64("score", rep.Score).
		Int("total_checks", rep.TotalChecks).
		Int("issues", rep.TotalIssues).
		Msg("analysis complete")

	return rep
}

// checkParagraph dispatches the per-paragraph rules by role.
func (c *Checker) checkParagraph(eng *rules.Engine, cl classify.Classified, all []classify.Classified) {
	switch cl.Role {
	case classify.RoleBlank:
		return
	case classify.RoleSkip:
		// Cover and list blocks keep the font discipline even though
		// their geometry is free-form.
		if cl.SkipFormat {
			eng.CheckFont(cl)
		}
		return
	}

	eng.CheckFont(cl)
	eng.CheckFontSize(cl, eng.RoleFontSize(cl.Role))

	switch cl.Role {
	case classify.RoleBody:
		eng.CheckBodyParagraph(cl)
	case classify.RoleChapterHeading:
		eng.CheckChapterHeading(cl)
		if isChapterOpener(cl.Text) {
			eng.CheckChapterStart(cl, all)
		}
	case classify.RoleNumberedHeading:
		eng.CheckNumberedHeading(cl)
	case classify.RoleTableCaption:
		eng.CheckCaption(cl, classify.CaptionTable)
	case classify.RoleFigureCaption:
		eng.CheckCaption(cl, classify.CaptionFigure)
	case classify.RoleBlockQuote:
		eng.CheckBlockQuote(cl)
	case classify.RoleEpigraph:
		eng.CheckEpigraph(cl)
	case classify.RoleReference:
		eng.CheckReference(cl)
	}
}

// isChapterOpener reports whether the heading opens a new chapter and
// therefore must start low on a fresh page.
func isChapterOpener(text string) bool {
	if classify.IsChapterTitleOnly(text) {
		return true
	}
	switch classify.UpperTR(text) {
	case "GİRİŞ", "SONUÇ", "SONUÇ VE ÖNERİLER", "KAYNAKÇA":
		return true
	}
	return false
}
