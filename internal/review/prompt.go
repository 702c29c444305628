package review

import (
	"fmt"
	"strings"

	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/docmodel"
)

// maxSectionChars bounds how much section text goes into one prompt.
const maxSectionChars = 12000

// Estimation constants for the abstract page check: a single-spaced
// A4 page holds roughly this many lines of this width.
const (
	linesPerPage = 28
	charsPerLine = 80
)

// BuildPrompt renders the review prompt for one section.
func BuildPrompt(req Request) string {
	text := req.Text
	if len([]rune(text)) > maxSectionChars {
		text = string([]rune(text)[:maxSectionChars])
	}
	return fmt.Sprintf(`Sen bir akademik tez danışmanısın. Aşağıda bir yüksek lisans/doktora tezinin "%s" bölümü verilmiştir.

Bölümü şu açılardan değerlendir:
1. Akademik dil ve üslup: resmi olmayan ifadeler, birinci tekil şahıs kullanımı, konuşma dili
2. Anlatım netliği: belirsiz, muğlak veya çok uzun cümleler
3. Bölümün amacına uygunluk: bu bölümde bulunması gereken öğelerin eksikliği
4. Yazım ve dil bilgisi: göze çarpan hatalar

Her sorun için kısa bir açıklama ve somut bir düzeltme önerisi ver.
Yanıtını Türkçe, madde işaretli liste olarak yaz. Sorun yoksa "Önemli bir sorun bulunamadı." yaz.

--- BÖLÜM METNİ ---
%s`, req.SectionTitle, text)
}

// Section is a reviewable slice of the document.
type Section struct {
	Title string
	Text  string
}

// reviewableMarkers are the section headings worth a content review,
// in review order.
var reviewableMarkers = []string{"ÖZET", "GİRİŞ", "SONUÇ"}

// ExtractSections pulls the reviewable sections out of the document:
// each runs from its heading to the next chapter-level heading.
func ExtractSections(doc *docmodel.Document) []Section {
	var sections []Section
	var current *Section
	var parts []string

	flush := func() {
		if current != nil {
			current.Text = strings.TrimSpace(strings.Join(parts, "\n"))
			if current.Text != "" {
				sections = append(sections, *current)
			}
		}
		current = nil
		parts = nil
	}

	for _, para := range doc.Paragraphs {
		text := strings.TrimSpace(para.Text())
		if text == "" {
			continue
		}
		upper := classify.UpperTR(text)

		if len([]rune(text)) < 40 {
			matched := ""
			for _, marker := range reviewableMarkers {
				if strings.Contains(upper, marker) && !strings.Contains(upper, "ABSTRACT") {
					matched = marker
					break
				}
			}
			if matched != "" {
				flush()
				current = &Section{Title: titleFor(matched)}
				continue
			}
			if classify.IsChapterHeading(text) {
				flush()
				continue
			}
		}

		if current != nil {
			parts = append(parts, text)
		}
	}
	flush()
	return sections
}

func titleFor(marker string) string {
	switch marker {
	case "ÖZET":
		return "Özet"
	case "GİRİŞ":
		return "Giriş"
	case "SONUÇ":
		return "Sonuç"
	default:
		return marker
	}
}

// EstimatePages roughly estimates how many pages a block of text fills
// when rendered single-spaced.
func EstimatePages(text string) float64 {
	chars := len([]rune(text))
	if chars == 0 {
		return 0
	}
	lines := float64(chars) / charsPerLine
	return lines / linesPerPage
}
