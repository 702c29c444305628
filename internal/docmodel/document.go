// Package docmodel defines the in-memory document object model the
// analyzer operates on. It is produced by a document parser (see
// internal/docparse) and consumed read-only by one analysis run.
package docmodel

// BlockType identifies the kind of a body block.
type BlockType string

const (
	BlockParagraph BlockType = "paragraph"
	BlockTable     BlockType = "table"
)

// Block is a body element in document order. Exactly one of Paragraph
// or Table is set. Body order matters for placement checks (a table
// must be preceded by its caption paragraph).
type Block struct {
	Type      BlockType  `json:"type"`
	Paragraph *Paragraph `json:"paragraph,omitempty"`
	Table     *Table     `json:"table,omitempty"`
}

// Document is the root of the object model. Paragraphs holds body
// paragraphs in document order; the index into this slice is the
// positional source of truth for all stateful analysis.
type Document struct {
	Blocks     []Block           `json:"blocks,omitempty"`
	Paragraphs []*Paragraph      `json:"paragraphs,omitempty"`
	Tables     []*Table          `json:"tables,omitempty"`
	Sections   []Section         `json:"sections,omitempty"`
	Footnotes  []*Paragraph      `json:"footnotes,omitempty"`
	Styles     map[string]*Style `json:"styles,omitempty"`
	Defaults   Defaults          `json:"defaults,omitempty"`
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{Styles: make(map[string]*Style)}
}

// AddParagraph appends a body paragraph.
func (d *Document) AddParagraph(p *Paragraph) {
	d.Blocks = append(d.Blocks, Block{Type: BlockParagraph, Paragraph: p})
	d.Paragraphs = append(d.Paragraphs, p)
}

// AddTable appends a body table.
func (d *Document) AddTable(t *Table) {
	d.Blocks = append(d.Blocks, Block{Type: BlockTable, Table: t})
	d.Tables = append(d.Tables, t)
}

// AddStyle registers a style by its ID.
func (d *Document) AddStyle(s *Style) {
	if d.Styles == nil {
		d.Styles = make(map[string]*Style)
	}
	d.Styles[s.ID] = s
}

// StyleByID looks up a style; returns nil when absent.
func (d *Document) StyleByID(id string) *Style {
	if id == "" || d.Styles == nil {
		return nil
	}
	return d.Styles[id]
}
