// Package report defines format issues, their aggregation into a
// compliance report, and the highlight plan derived from it.
package report

// Category is the closed set of issue categories.
type Category string

const (
	CategoryMargin      Category = "margin"
	CategoryFont        Category = "font"
	CategoryFontSize    Category = "font_size"
	CategoryLineSpacing Category = "line_spacing"
	CategoryParagraph   Category = "paragraph"
	CategoryHeading     Category = "heading"
	CategoryTable       Category = "table"
	CategoryFigure      Category = "figure"
	CategoryAbstract    Category = "abstract"
	CategoryReference   Category = "reference"
	CategorySection     Category = "section"
	CategoryNumbering   Category = "numbering"
	CategoryFootnote    Category = "footnote"
)

// displayNames maps categories to their Turkish report headings.
var displayNames = map[Category]string{
	CategoryMargin:      "Kenar Boşluğu Hataları",
	CategoryFont:        "Yazı Tipi Hataları",
	CategoryFontSize:    "Yazı Boyutu Hataları",
	CategoryLineSpacing: "Satır Aralığı Hataları",
	CategoryParagraph:   "Paragraf Hataları",
	CategoryHeading:     "Başlık Hataları",
	CategoryTable:       "Tablo Hataları",
	CategoryFigure:      "Şekil Hataları",
	CategoryAbstract:    "Özet Hataları",
	CategoryReference:   "Kaynakça Hataları",
	CategorySection:     "Bölüm Hataları",
	CategoryNumbering:   "Numaralandırma Hataları",
	CategoryFootnote:    "Dipnot Hataları",
}

// Display returns the Turkish heading for the category.
func (c Category) Display() string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}

// Issue is a single soft rule violation.
type Issue struct {
	Category Category `json:"category"`
	Message  string   `json:"message"`
	Location string   `json:"location"`
	Expected string   `json:"expected,omitempty"`
	Found    string   `json:"found,omitempty"`
	Snippet  string   `json:"snippet,omitempty"`
}

// Snippet shortens text for inclusion in an issue.
func Snippet(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "..."
}
