package report

import "math"

const (
	// missingSectionPenalty is subtracted from the score for each
	// missing required section.
	missingSectionPenalty = 5.0

	// maxIssuesPerCategory caps accumulated issues per category so
	// pathological inputs cannot grow the report without bound.
	maxIssuesPerCategory = 200

	// maxSnippetLen caps stored snippet lengths.
	maxSnippetLen = 120
)

// LocationIssues groups deduplicated messages at one location.
type LocationIssues struct {
	Location string   `json:"location"`
	Issues   []string `json:"issues"`
	Snippet  string   `json:"snippet,omitempty"`
}

// CategoryGroup lists a category's locations in first-seen order.
type CategoryGroup struct {
	Category Category         `json:"category"`
	Display  string           `json:"display"`
	Items    []LocationIssues `json:"items"`
}

// Report is the final compliance report.
type Report struct {
	Score            float64         `json:"compliance_score"`
	TotalChecks      int             `json:"total_checks"`
	PassedChecks     int             `json:"passed_checks"`
	TotalIssues      int             `json:"total_issues"`
	MissingSections  []string        `json:"missing_sections"`
	SectionsFound    int             `json:"sections_found"`
	SectionsRequired int             `json:"sections_required"`
	AbstractIssues   []string        `json:"abstract_issues,omitempty"`
	AbstractWords    int             `json:"abstract_word_count"`
	TableCount       int             `json:"tables_count"`
	FigureCount      int             `json:"figures_count"`
	TOCHeadingCount  int             `json:"toc_headings_count"`
	Groups           []CategoryGroup `json:"grouped_issues"`
}

// Aggregator collects issues, deduplicates them by (category,
// location), and produces the report. All state is per analysis run.
type Aggregator struct {
	issues    []Issue
	seen      map[string]*LocationIssues
	order     []Category
	groups    map[Category][]*LocationIssues
	perCat    map[Category]int
	truncated map[Category]bool
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		seen:      make(map[string]*LocationIssues),
		groups:    make(map[Category][]*LocationIssues),
		perCat:    make(map[Category]int),
		truncated: make(map[Category]bool),
	}
}

// Add records an issue. Messages repeated at the same (category,
// location) are dropped; first-seen order is preserved throughout.
func (a *Aggregator) Add(issue Issue) {
	if a.perCat[issue.Category] >= maxIssuesPerCategory {
		a.truncated[issue.Category] = true
		return
	}
	issue.Snippet = Snippet(issue.Snippet, maxSnippetLen)

	key := string(issue.Category) + "\x00" + issue.Location
	if li, ok := a.seen[key]; ok {
		for _, m := range li.Issues {
			if m == issue.Message {
				// Exact repeat: keep counters aligned with stored issues.
				return
			}
		}
		li.Issues = append(li.Issues, issue.Message)
		a.perCat[issue.Category]++
		a.issues = append(a.issues, issue)
		return
	}

	a.perCat[issue.Category]++
	a.issues = append(a.issues, issue)
	li := &LocationIssues{
		Location: issue.Location,
		Issues:   []string{issue.Message},
		Snippet:  issue.Snippet,
	}
	a.seen[key] = li
	if _, ok := a.groups[issue.Category]; !ok {
		a.order = append(a.order, issue.Category)
	}
	a.groups[issue.Category] = append(a.groups[issue.Category], li)
}

// AddAll records a batch of issues.
func (a *Aggregator) AddAll(issues []Issue) {
	for _, issue := range issues {
		a.Add(issue)
	}
}

// Issues returns every recorded issue in insertion order.
func (a *Aggregator) Issues() []Issue {
	return a.issues
}

// Totals holds the inventory counters carried into the report.
type Totals struct {
	TotalChecks      int
	PassedChecks     int
	MissingSections  []string
	SectionsFound    int
	SectionsRequired int
	AbstractWords    int
	TableCount       int
	FigureCount      int
	TOCHeadingCount  int
}

// Build computes the score and assembles the final report.
func (a *Aggregator) Build(t Totals) *Report {
	score := 100.0
	if t.TotalChecks > 0 {
		score = float64(t.PassedChecks) / float64(t.TotalChecks) * 100
	}
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	score = math.Round(score*10) / 10
	score -= float64(len(t.MissingSections)) * missingSectionPenalty
	if score < 0 {
		score = 0
	}

	groups := make([]CategoryGroup, 0, len(a.order))
	for _, cat := range a.order {
		items := make([]LocationIssues, 0, len(a.groups[cat]))
		for _, li := range a.groups[cat] {
			items = append(items, *li)
		}
		groups = append(groups, CategoryGroup{
			Category: cat,
			Display:  cat.Display(),
			Items:    items,
		})
	}

	var abstractIssues []string
	for _, issue := range a.issues {
		if issue.Category == CategoryAbstract {
			abstractIssues = append(abstractIssues, issue.Message)
		}
	}

	missing := t.MissingSections
	if missing == nil {
		missing = []string{}
	}

	return &Report{
		Score:            score,
		TotalChecks:      t.TotalChecks,
		PassedChecks:     t.PassedChecks,
		TotalIssues:      len(a.issues),
		MissingSections:  missing,
		SectionsFound:    t.SectionsFound,
		SectionsRequired: t.SectionsRequired,
		AbstractIssues:   abstractIssues,
		AbstractWords:    t.AbstractWords,
		TableCount:       t.TableCount,
		FigureCount:      t.FigureCount,
		TOCHeadingCount:  t.TOCHeadingCount,
		Groups:           groups,
	}
}

// FatalReport builds the minimal score-0 report used when the parser
// could not produce a document.
func FatalReport(msg string) *Report {
	return &Report{
		Score:            0,
		TotalIssues:      1,
		MissingSections:  []string{},
		SectionsRequired: 6,
		Groups: []CategoryGroup{{
			Category: CategorySection,
			Display:  "Dosya Hatası",
			Items: []LocationIssues{{
				Location: "Dosya",
				Issues:   []string{msg},
			}},
		}},
	}
}
