package docmodel

import "strings"

// Alignment is a paragraph justification value.
type Alignment string

const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// LineSpacingRule describes how a line-spacing value is interpreted.
type LineSpacingRule string

const (
	// LineSpacingMultiple means Value is a multiplier (1.0, 1.5, 2.0).
	LineSpacingMultiple LineSpacingRule = "multiple"
	// LineSpacingExact means Value is an exact height in points.
	LineSpacingExact LineSpacingRule = "exact"
	// LineSpacingAtLeast means Value is a minimum height in points.
	LineSpacingAtLeast LineSpacingRule = "atLeast"
)

// LineSpacing is a line-spacing rule with its value.
type LineSpacing struct {
	Rule  LineSpacingRule `json:"rule"`
	Value float64         `json:"value"`
}

// RunFormat holds character-level formatting. Nil fields are unset and
// fall through the style cascade.
type RunFormat struct {
	Font   *string  `json:"font,omitempty"`
	SizePt *float64 `json:"size_pt,omitempty"`
	Bold   *bool    `json:"bold,omitempty"`
	Italic *bool    `json:"italic,omitempty"`
}

// ParagraphFormat holds paragraph-level formatting. Nil fields are
// unset and fall through the style cascade.
type ParagraphFormat struct {
	Alignment       *Alignment   `json:"alignment,omitempty"`
	LeftIndent      *Twips       `json:"left_indent,omitempty"`
	RightIndent     *Twips       `json:"right_indent,omitempty"`
	FirstLineIndent *Twips       `json:"first_line_indent,omitempty"` // negative = hanging indent
	SpacingBefore   *float64     `json:"spacing_before,omitempty"`    // points
	SpacingAfter    *float64     `json:"spacing_after,omitempty"`     // points
	LineSpacing     *LineSpacing `json:"line_spacing,omitempty"`
}

// Run is a text fragment with direct character formatting.
type Run struct {
	Text   string    `json:"text"`
	Format RunFormat `json:"format,omitempty"`
	// CharStyleID references a character style, if any.
	CharStyleID string `json:"char_style_id,omitempty"`
}

// Paragraph is an ordered sequence of runs with an optional style
// reference and direct paragraph formatting.
type Paragraph struct {
	Runs    []Run           `json:"runs,omitempty"`
	StyleID string          `json:"style_id,omitempty"`
	Format  ParagraphFormat `json:"format,omitempty"`
}

// NewParagraph creates a paragraph containing a single unformatted run.
// Useful in tests and for synthetic content.
func NewParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.Runs = append(p.Runs, Run{Text: text})
	}
	return p
}

// AddRun appends a formatted run to the paragraph.
func (p *Paragraph) AddRun(text string, format RunFormat) {
	p.Runs = append(p.Runs, Run{Text: text, Format: format})
}

// Text returns the order-preserving concatenation of run texts.
func (p *Paragraph) Text() string {
	if len(p.Runs) == 1 {
		return p.Runs[0].Text
	}
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsEmpty reports whether the paragraph has no non-whitespace text.
func (p *Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text()) == ""
}

// Helper constructors for optional fields.

// String returns a pointer to s.
func String(s string) *string { return &s }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Align returns a pointer to a.
func Align(a Alignment) *Alignment { return &a }

// TwipsPtr returns a pointer to t.
func TwipsPtr(t Twips) *Twips { return &t }
