package review

import (
	"strings"
	"testing"

	"github.com/tezlab/tezdenetim/internal/docmodel"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(DefaultRequest("Özet", "Bu çalışmada biçim denetimi incelenmiştir."))

	if !strings.Contains(prompt, `"Özet"`) {
		t.Error("expected section title in prompt")
	}
	if !strings.Contains(prompt, "biçim denetimi incelenmiştir") {
		t.Error("expected section text in prompt")
	}
	if !strings.Contains(prompt, "madde işaretli liste") {
		t.Error("expected answer-format instruction in prompt")
	}
}

func TestBuildPromptTruncates(t *testing.T) {
	long := strings.Repeat("ç", maxSectionChars+500)
	prompt := BuildPrompt(DefaultRequest("Giriş", long))
	if count := strings.Count(prompt, "ç"); count > maxSectionChars {
		t.Errorf("expected text capped at %d runes, got %d", maxSectionChars, count)
	}
}

func TestExtractSections(t *testing.T) {
	doc := docmodel.NewDocument()
	add := func(text string) {
		doc.AddParagraph(docmodel.NewParagraph(text))
	}

	add("ÖZET")
	add("Bu çalışmada biçim denetimi ele alınmıştır.")
	add("İkinci özet cümlesi.")
	add("ABSTRACT")
	add("This study examines format compliance.")
	add("GİRİŞ")
	add("Araştırmanın amacı açıklanmaktadır.")
	add("BİRİNCİ BÖLÜM")
	add("Bölüm içeriği review dışında kalır.")
	add("SONUÇ")
	add("Bulgular özetlenmektedir.")

	sections := ExtractSections(doc)
	if len(sections) != 3 {
		t.Fatalf("expected Özet, Giriş and Sonuç, got %d sections", len(sections))
	}

	if sections[0].Title != "Özet" || !strings.Contains(sections[0].Text, "İkinci özet cümlesi") {
		t.Errorf("unexpected first section: %+v", sections[0])
	}
	if strings.Contains(sections[0].Text, "format compliance") {
		t.Error("expected English abstract excluded from Özet")
	}
	if sections[1].Title != "Giriş" || strings.Contains(sections[1].Text, "Bölüm içeriği") {
		t.Errorf("expected Giriş to end at the chapter heading, got %+v", sections[1])
	}
	if sections[2].Title != "Sonuç" || sections[2].Text != "Bulgular özetlenmektedir." {
		t.Errorf("unexpected last section: %+v", sections[2])
	}
}

func TestExtractSectionsEmptyDocument(t *testing.T) {
	if got := ExtractSections(docmodel.NewDocument()); len(got) != 0 {
		t.Errorf("expected no sections, got %v", got)
	}
}

func TestEstimatePages(t *testing.T) {
	if got := EstimatePages(""); got != 0 {
		t.Errorf("expected 0 pages for empty text, got %v", got)
	}

	onePage := strings.Repeat("a", linesPerPage*charsPerLine)
	if got := EstimatePages(onePage); got != 1.0 {
		t.Errorf("expected exactly 1 page, got %v", got)
	}
	if got := EstimatePages(onePage + onePage); got != 2.0 {
		t.Errorf("expected 2 pages, got %v", got)
	}
}

func TestProviderValidate(t *testing.T) {
	if err := NewAnthropicProvider("", "model").Validate(); err == nil {
		t.Error("expected missing API key to fail validation")
	}
	if err := NewOpenAIProvider("key", "model").Validate(); err != nil {
		t.Errorf("expected configured provider to validate, got %v", err)
	}
}
