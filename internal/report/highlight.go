package report

// Severity buckets issue categories into the four highlight colors the
// document annotator uses. Persisting the highlights into a document
// file is the writer collaborator's job; this only decides what gets
// which color.
type Severity string

const (
	SeverityLayout    Severity = "layout"
	SeverityStyle     Severity = "style"
	SeverityReference Severity = "reference"
	SeverityContent   Severity = "content"
)

// severityColors are the fixed highlight colors per severity.
var severityColors = map[Severity]string{
	SeverityLayout:    "yellow",
	SeverityStyle:     "cyan",
	SeverityReference: "green",
	SeverityContent:   "magenta",
}

// Color returns the highlight color for the severity.
func (s Severity) Color() string {
	return severityColors[s]
}

// CategorySeverity maps an issue category to its highlight severity.
func CategorySeverity(c Category) Severity {
	switch c {
	case CategoryMargin, CategoryParagraph, CategoryLineSpacing, CategoryTable, CategoryFigure:
		return SeverityLayout
	case CategoryFont, CategoryFontSize, CategoryHeading, CategoryFootnote:
		return SeverityStyle
	case CategoryReference, CategoryNumbering:
		return SeverityReference
	default:
		return SeverityContent
	}
}

// Highlight is one planned annotation.
type Highlight struct {
	Location string   `json:"location"`
	Category Category `json:"category"`
	Severity Severity `json:"severity"`
	Color    string   `json:"color"`
}

// PlanHighlights derives the annotation plan from already-computed
// issues, one highlight per deduplicated (category, location) pair in
// report order.
func PlanHighlights(r *Report) []Highlight {
	var plan []Highlight
	for _, group := range r.Groups {
		sev := CategorySeverity(group.Category)
		for _, item := range group.Items {
			plan = append(plan, Highlight{
				Location: item.Location,
				Category: group.Category,
				Severity: sev,
				Color:    sev.Color(),
			})
		}
	}
	return plan
}
