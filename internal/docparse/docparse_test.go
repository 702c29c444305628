package docparse

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tezlab/tezdenetim/internal/docmodel"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:pPr>
        <w:pStyle w:val="Normal"/>
        <w:jc w:val="both"/>
        <w:ind w:firstLine="709"/>
        <w:spacing w:before="120" w:after="120" w:line="360" w:lineRule="auto"/>
      </w:pPr>
      <w:r>
        <w:rPr><w:rFonts w:ascii="Times New Roman" w:hAnsi="Times New Roman"/><w:sz w:val="24"/></w:rPr>
        <w:t>Birinci </w:t>
      </w:r>
      <w:r><w:t>paragraf.</w:t></w:r>
    </w:p>
    <w:p>
      <w:pPr><w:ind w:hanging="567"/></w:pPr>
      <w:r><w:rPr><w:b/><w:i w:val="false"/></w:rPr><w:t>Asılı girintili.</w:t></w:r>
    </w:p>
    <w:tbl>
      <w:tr>
        <w:tc><w:p><w:r><w:t>hücre 1</w:t></w:r></w:p></w:tc>
        <w:tc><w:p><w:r><w:t>hücre 2</w:t></w:r></w:p></w:tc>
      </w:tr>
    </w:tbl>
    <w:p><w:r><w:t>Tablodan sonra.</w:t></w:r></w:p>
    <w:sectPr>
      <w:pgMar w:top="1701" w:bottom="1701" w:left="1701" w:right="1701" w:footer="709"/>
    </w:sectPr>
  </w:body>
</w:document>`

const testStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr><w:rFonts w:ascii="Calibri"/><w:sz w:val="22"/></w:rPr>
    </w:rPrDefault>
  </w:docDefaults>
  <w:style w:type="paragraph" w:styleId="Normal">
    <w:name w:val="Normal"/>
    <w:rPr><w:rFonts w:ascii="Times New Roman"/><w:sz w:val="24"/></w:rPr>
    <w:pPr><w:jc w:val="both"/></w:pPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
    <w:basedOn w:val="Normal"/>
    <w:rPr><w:b/><w:sz w:val="28"/></w:rPr>
  </w:style>
</w:styles>`

const testFootnotesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:footnotes xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:footnote w:type="separator" w:id="-1"><w:p><w:r><w:t></w:t></w:r></w:p></w:footnote>
  <w:footnote w:id="1"><w:p><w:r><w:t>Gerçek dipnot metni.</w:t></w:r></w:p></w:footnote>
</w:footnotes>`

const testFooterXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:ftr xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:t>3</w:t></w:r></w:p>
</w:ftr>`

// writeDocx assembles a minimal DOCX archive in dir.
func writeDocx(t *testing.T, dir string, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, "test.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseDocx(t *testing.T) {
	path := writeDocx(t, t.TempDir(), map[string]string{
		"word/document.xml":  testDocumentXML,
		"word/styles.xml":    testStylesXML,
		"word/footnotes.xml": testFootnotesXML,
		"word/footer1.xml":   testFooterXML,
	})

	doc, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Paragraphs) != 3 {
		t.Fatalf("expected 3 body paragraphs (table cell paragraphs excluded), got %d", len(doc.Paragraphs))
	}
	if got := doc.Paragraphs[0].Text(); got != "Birinci paragraf." {
		t.Errorf("expected run concatenation, got %q", got)
	}

	p0 := doc.Paragraphs[0]
	if p0.StyleID != "Normal" {
		t.Errorf("expected style reference, got %q", p0.StyleID)
	}
	if p0.Format.Alignment == nil || *p0.Format.Alignment != docmodel.AlignJustify {
		t.Errorf("expected 'both' to map to justify, got %v", p0.Format.Alignment)
	}
	if p0.Format.FirstLineIndent == nil || *p0.Format.FirstLineIndent != 709 {
		t.Errorf("expected 709 twips first-line indent, got %v", p0.Format.FirstLineIndent)
	}
	if p0.Format.SpacingBefore == nil || *p0.Format.SpacingBefore != 6 {
		t.Errorf("expected 120 twips before to convert to 6 pt, got %v", p0.Format.SpacingBefore)
	}
	if p0.Format.LineSpacing == nil ||
		p0.Format.LineSpacing.Rule != docmodel.LineSpacingMultiple ||
		p0.Format.LineSpacing.Value != 1.5 {
		t.Errorf("expected 360/auto to convert to 1.5x, got %+v", p0.Format.LineSpacing)
	}
	run0 := p0.Runs[0]
	if run0.Format.Font == nil || *run0.Format.Font != "Times New Roman" {
		t.Errorf("expected run font, got %v", run0.Format.Font)
	}
	if run0.Format.SizePt == nil || *run0.Format.SizePt != 12 {
		t.Errorf("expected 24 half-points to convert to 12 pt, got %v", run0.Format.SizePt)
	}

	p1 := doc.Paragraphs[1]
	if p1.Format.FirstLineIndent == nil || *p1.Format.FirstLineIndent != -567 {
		t.Errorf("expected hanging indent stored negative, got %v", p1.Format.FirstLineIndent)
	}
	r1 := p1.Runs[0]
	if r1.Format.Bold == nil || !*r1.Format.Bold {
		t.Error("expected bare <w:b/> toggle to mean bold")
	}
	if r1.Format.Italic == nil || *r1.Format.Italic {
		t.Error("expected w:val=\"false\" to mean not italic")
	}

	// Body order: paragraph, paragraph, table, paragraph.
	if len(doc.Blocks) != 4 || doc.Blocks[2].Type != docmodel.BlockTable {
		t.Fatalf("unexpected block stream: %d blocks", len(doc.Blocks))
	}
	if len(doc.Tables) != 1 || doc.Tables[0].RowCount() != 1 || doc.Tables[0].ColCount() != 2 {
		t.Fatalf("unexpected table shape")
	}
	if got := doc.Tables[0].Rows[0][1].Paragraphs[0].Text(); got != "hücre 2" {
		t.Errorf("unexpected cell text %q", got)
	}

	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	sec := doc.Sections[0]
	if sec.Margins.Top == nil || *sec.Margins.Top != 1701 {
		t.Errorf("expected 1701 twips top margin, got %v", sec.Margins.Top)
	}
	if sec.FooterDistance == nil || *sec.FooterDistance != 709 {
		t.Errorf("expected footer distance, got %v", sec.FooterDistance)
	}
	if len(sec.Footer) != 1 || sec.Footer[0].Text() != "3" {
		t.Errorf("expected footer paragraph with page number, got %+v", sec.Footer)
	}

	if len(doc.Footnotes) != 1 || doc.Footnotes[0].Text() != "Gerçek dipnot metni." {
		t.Errorf("expected separator footnotes skipped, got %d footnotes", len(doc.Footnotes))
	}

	// Styles.
	if doc.Defaults.Run.Font == nil || *doc.Defaults.Run.Font != "Calibri" {
		t.Errorf("expected document default font, got %v", doc.Defaults.Run.Font)
	}
	h1 := doc.StyleByID("Heading1")
	if h1 == nil || h1.BasedOn != "Normal" {
		t.Fatalf("expected Heading1 based on Normal, got %+v", h1)
	}
	if h1.Run.SizePt == nil || *h1.Run.SizePt != 14 {
		t.Errorf("expected 28 half-points to convert to 14 pt, got %v", h1.Run.SizePt)
	}
}

func TestParseDocxWithoutStyles(t *testing.T) {
	path := writeDocx(t, t.TempDir(), map[string]string{
		"word/document.xml": testDocumentXML,
	})
	doc, err := Parse(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Paragraphs) != 3 {
		t.Errorf("expected body to parse without styles.xml, got %d paragraphs", len(doc.Paragraphs))
	}
}

func TestParseDocxMissingDocument(t *testing.T) {
	path := writeDocx(t, t.TempDir(), map[string]string{
		"word/styles.xml": testStylesXML,
	})
	if _, err := Parse(path); err == nil {
		t.Fatal("expected error for archive without document.xml")
	}
}

func TestParseUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-a-doc.txt")
	if err := os.WriteFile(path, []byte("sadece düz metin içeriği"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Parse(path)
	if err == nil || !strings.Contains(err.Error(), ".docx bekleniyor") {
		t.Fatalf("expected unsupported-format error, got %v", err)
	}
}

func TestDetectFormatFromReader(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   Format
	}{
		{"zip", []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x00, 0x00}, FormatDocx},
		{"ole2", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, FormatDoc},
		{"text", []byte("merhaba dünya"), FormatUnknown},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DetectFormatFromReader(bytes.NewReader(tc.header))
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestConvAlignment(t *testing.T) {
	tests := []struct {
		in   string
		want docmodel.Alignment
	}{
		{"both", docmodel.AlignJustify},
		{"justify", docmodel.AlignJustify},
		{"distribute", docmodel.AlignJustify},
		{"center", docmodel.AlignCenter},
		{"right", docmodel.AlignRight},
		{"end", docmodel.AlignRight},
		{"left", docmodel.AlignLeft},
		{"", docmodel.AlignLeft},
	}
	for _, tc := range tests {
		if got := convAlignment(tc.in); got != tc.want {
			t.Errorf("convAlignment(%q): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestParseTwips(t *testing.T) {
	if got := parseTwips("1701"); got == nil || *got != 1701 {
		t.Errorf("expected 1701, got %v", got)
	}
	if got := parseTwips(""); got != nil {
		t.Errorf("expected nil for empty, got %v", got)
	}
	if got := parseTwips("bozuk"); got != nil {
		t.Errorf("expected nil for non-numeric, got %v", got)
	}
}

func TestOnOff(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", true},
		{"1", true},
		{"true", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"off", false},
	}
	for _, tc := range tests {
		if got := onOff(&xmlOnOff{Val: tc.val}); got != tc.want {
			t.Errorf("onOff(%q): expected %v, got %v", tc.val, tc.want, got)
		}
	}
}
