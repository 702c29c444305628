package docmodel

// Cell owns its own paragraph sequence; cell paragraphs are the same
// entity as body paragraphs but live in a nested scope.
type Cell struct {
	Paragraphs []*Paragraph `json:"paragraphs,omitempty"`
}

// Table is a grid of cells.
type Table struct {
	Rows [][]*Cell `json:"rows,omitempty"`
}

// NewTable creates a table with the given dimensions.
func NewTable(rows, cols int) *Table {
	t := &Table{Rows: make([][]*Cell, rows)}
	for i := range t.Rows {
		t.Rows[i] = make([]*Cell, cols)
		for j := range t.Rows[i] {
			t.Rows[i][j] = &Cell{}
		}
	}
	return t
}

// SetCellText replaces the cell content with a single paragraph.
func (t *Table) SetCellText(row, col int, text string) {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return
	}
	t.Rows[row][col].Paragraphs = []*Paragraph{NewParagraph(text)}
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.Rows) }

// ColCount returns the column count of the first row.
func (t *Table) ColCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}
