// Package rules implements the compliance rule catalog. Every rule
// invocation counts exactly one check toward the score denominator,
// whether it passes or fails; failures are recorded as issues in the
// shared aggregator.
package rules

import (
	"math"
	"strconv"
	"strings"

	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/config"
	"github.com/tezlab/tezdenetim/internal/report"
	"github.com/tezlab/tezdenetim/internal/stylecascade"
)

// Engine runs the rule catalog for one analysis. It owns the check
// tally; issue storage is delegated to the aggregator.
type Engine struct {
	cfg config.Rules
	res *stylecascade.Resolver
	agg *report.Aggregator

	total  int
	passed int
}

// New creates an engine bound to one analysis run.
func New(cfg config.Rules, res *stylecascade.Resolver, agg *report.Aggregator) *Engine {
	return &Engine{cfg: cfg, res: res, agg: agg}
}

// Tally returns the (total, passed) check counters.
func (e *Engine) Tally() (total, passed int) {
	return e.total, e.passed
}

// check records one rule invocation. The issue is stored only on
// failure.
func (e *Engine) check(ok bool, issue report.Issue) bool {
	e.total++
	if ok {
		e.passed++
		return true
	}
	e.agg.Add(issue)
	return false
}

// within reports |got-want| <= tol.
func within(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol
}

// fmtNum renders a float compactly ("3", "1.25", "12.5").
func fmtNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func fmtCm(v float64) string { return fmtNum(v) + " cm" }
func fmtPt(v float64) string { return fmtNum(v) + " nk" }

// snippetOf shortens classified text for issue context.
func snippetOf(cl classify.Classified) string {
	return report.Snippet(cl.Text, 80)
}
