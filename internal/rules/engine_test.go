package rules

import (
	"strings"
	"testing"

	"github.com/tezlab/tezdenetim/internal/classify"
	"github.com/tezlab/tezdenetim/internal/config"
	"github.com/tezlab/tezdenetim/internal/docmodel"
	"github.com/tezlab/tezdenetim/internal/report"
	"github.com/tezlab/tezdenetim/internal/stylecascade"
)

func newEngine(doc *docmodel.Document) (*Engine, *report.Aggregator) {
	agg := report.NewAggregator()
	eng := New(config.DefaultRules(), stylecascade.New(doc), agg)
	return eng, agg
}

func issueMessages(agg *report.Aggregator) []string {
	var msgs []string
	for _, issue := range agg.Issues() {
		msgs = append(msgs, issue.Message)
	}
	return msgs
}

func hasIssueContaining(agg *report.Aggregator, substr string) bool {
	for _, msg := range issueMessages(agg) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func classifiedPara(p *docmodel.Paragraph, role classify.Role) classify.Classified {
	return classify.Classified{Index: 0, Text: p.Text(), Role: role, Para: p}
}

func TestCheckMarginsTolerance(t *testing.T) {
	tests := []struct {
		name   string
		topCm  float64
		wantOK bool
	}{
		{"exact", 3.0, true},
		{"inside tolerance", 3.05, true},
		{"edge of tolerance", 3.1, true},
		{"outside tolerance", 3.3, false},
		{"too small", 2.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := docmodel.NewDocument()
			tw := docmodel.CmToTwips(tc.topCm)
			doc.Sections = append(doc.Sections, docmodel.Section{
				Margins: docmodel.Margins{Top: docmodel.TwipsPtr(tw)},
			})

			eng, agg := newEngine(doc)
			eng.CheckMargins(doc)

			total, passed := eng.Tally()
			if total != 1 {
				t.Fatalf("expected 1 check, got %d", total)
			}
			if (passed == 1) != tc.wantOK {
				t.Errorf("top margin %v cm: expected ok=%v, issues=%v", tc.topCm, tc.wantOK, issueMessages(agg))
			}
		})
	}
}

func TestCheckMarginsNilSkipped(t *testing.T) {
	doc := docmodel.NewDocument()
	doc.Sections = append(doc.Sections, docmodel.Section{})

	eng, _ := newEngine(doc)
	eng.CheckMargins(doc)
	if total, _ := eng.Tally(); total != 0 {
		t.Errorf("expected unset margins to be skipped, got %d checks", total)
	}
}

func TestCheckFontFallbackFlagged(t *testing.T) {
	// No style information anywhere: font resolves to the Calibri
	// fallback, which must fail even though the name check alone would
	// not be meaningful.
	doc := docmodel.NewDocument()
	p := docmodel.NewParagraph("Bu paragrafın yazı tipi hiçbir düzeyde tanımlanmamıştır.")
	doc.AddParagraph(p)

	eng, agg := newEngine(doc)
	eng.CheckFont(classifiedPara(p, classify.RoleBody))

	if !hasIssueContaining(agg, "Calibri") {
		t.Errorf("expected fallback font issue, got %v", issueMessages(agg))
	}
}

func TestCheckFontCorrect(t *testing.T) {
	doc := docmodel.NewDocument()
	p := &docmodel.Paragraph{}
	p.AddRun("Times ile yazılmış metin.", docmodel.RunFormat{Font: docmodel.String("Times New Roman")})
	doc.AddParagraph(p)

	eng, agg := newEngine(doc)
	eng.CheckFont(classifiedPara(p, classify.RoleBody))

	total, passed := eng.Tally()
	if total != 1 || passed != 1 {
		t.Errorf("expected 1 passing check, got %d/%d (%v)", passed, total, issueMessages(agg))
	}
}

func TestCheckFontSymbolExempt(t *testing.T) {
	doc := docmodel.NewDocument()
	p := &docmodel.Paragraph{}
	p.AddRun("x ∈ A ∪ B denklemi üzerinden gösterilmiştir.", docmodel.RunFormat{Font: docmodel.String("Cambria Math")})
	doc.AddParagraph(p)

	eng, agg := newEngine(doc)
	eng.CheckFont(classifiedPara(p, classify.RoleBody))
	if len(agg.Issues()) != 0 {
		t.Errorf("expected symbol font exempt, got %v", issueMessages(agg))
	}
}

func TestCheckFontMultiRunSingleTally(t *testing.T) {
	doc := docmodel.NewDocument()
	p := &docmodel.Paragraph{}
	for i := 0; i < 3; i++ {
		p.AddRun("Arial ile yazılmış bir metin parçası. ", docmodel.RunFormat{Font: docmodel.String("Arial")})
	}
	doc.AddParagraph(p)

	eng, agg := newEngine(doc)
	eng.CheckFont(classifiedPara(p, classify.RoleBody))
	eng.CheckFontSize(classifiedPara(p, classify.RoleBody), 12)

	total, passed := eng.Tally()
	if total != 2 {
		t.Errorf("expected one font and one size check per paragraph, got %d", total)
	}
	if passed != 0 {
		t.Errorf("expected both checks to fail, got %d passed (%v)", passed, issueMessages(agg))
	}
}

func TestCheckFontShortTextExempt(t *testing.T) {
	doc := docmodel.NewDocument()
	p := docmodel.NewParagraph("12")
	doc.AddParagraph(p)

	eng, _ := newEngine(doc)
	eng.CheckFont(classifiedPara(p, classify.RoleBody))
	if total, _ := eng.Tally(); total != 0 {
		t.Errorf("expected short text to be exempt, got %d checks", total)
	}
}

func TestCheckAbstractWordBounds(t *testing.T) {
	tests := []struct {
		name       string
		words      int
		wantIssues bool
	}{
		{"below minimum", 199, true},
		{"at minimum", 200, false},
		{"at maximum", 250, false},
		{"above maximum", 251, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := docmodel.NewDocument()
			eng, agg := newEngine(doc)

			reg := &classify.Registries{
				AbstractText: strings.TrimSpace(strings.Repeat("kelime ", tc.words)),
			}
			words := eng.CheckAbstract(reg)
			if words != tc.words {
				t.Fatalf("expected %d words counted, got %d", tc.words, words)
			}

			gotIssues := len(agg.Issues()) > 0
			if gotIssues != tc.wantIssues {
				t.Errorf("%d words: expected issues=%v, got %v", tc.words, tc.wantIssues, issueMessages(agg))
			}
		})
	}
}

func TestCheckCaptionContinuity(t *testing.T) {
	doc := docmodel.NewDocument()
	eng, agg := newEngine(doc)

	refs := []classify.CaptionRef{
		{Chapter: 1, Item: 1, Location: "Paragraf 3"},
		{Chapter: 1, Item: 3, Location: "Paragraf 9"},
		{Chapter: 2, Item: 1, Location: "Paragraf 20"},
	}
	eng.CheckCaptionContinuity(refs, classify.CaptionTable)

	total, passed := eng.Tally()
	if total != 2 {
		t.Fatalf("expected one check per chapter, got %d", total)
	}
	if passed != 1 {
		t.Errorf("expected chapter 2 to pass and chapter 1 to fail, got %d passed", passed)
	}

	issues := agg.Issues()
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(issues))
	}
	if issues[0].Expected != "1, 2" || issues[0].Found != "1, 3" {
		t.Errorf("expected gap report '1, 2' vs '1, 3', got %q vs %q", issues[0].Expected, issues[0].Found)
	}
}

func TestCheckCaptionContinuityDuplicates(t *testing.T) {
	doc := docmodel.NewDocument()
	eng, agg := newEngine(doc)

	refs := []classify.CaptionRef{
		{Chapter: 1, Item: 1},
		{Chapter: 1, Item: 1},
	}
	eng.CheckCaptionContinuity(refs, classify.CaptionFigure)

	if len(agg.Issues()) != 1 {
		t.Errorf("expected duplicate numbering to be flagged, got %v", issueMessages(agg))
	}
	if !hasIssueContaining(agg, "Şekil") {
		t.Errorf("expected figure label in message, got %v", issueMessages(agg))
	}
}

func TestCheckTOCConsistency(t *testing.T) {
	doc := docmodel.NewDocument()
	eng, agg := newEngine(doc)

	reg := &classify.Registries{
		TOC: map[string]int{
			classify.UpperTR("1. GENEL BİLGİLER"): 1,
			classify.UpperTR("9. HAYALET BAŞLIK"): 1,
		},
		TOCOrder: []string{
			classify.UpperTR("1. GENEL BİLGİLER"),
			classify.UpperTR("9. HAYALET BAŞLIK"),
		},
		Headings: []string{
			classify.UpperTR("1. GENEL BİLGİLER"),
			classify.UpperTR("2. LİSTELENMEMİŞ BAŞLIK"),
		},
	}
	eng.CheckTOCConsistency(reg)

	if !hasIssueContaining(agg, "HAYALET") {
		t.Errorf("expected missing-in-body TOC entry to be flagged, got %v", issueMessages(agg))
	}
	if !hasIssueContaining(agg, "LİSTELENMEMİŞ") {
		t.Errorf("expected unlisted body heading to be flagged, got %v", issueMessages(agg))
	}
	for _, issue := range agg.Issues() {
		if issue.Category != report.CategorySection {
			t.Errorf("expected contents mismatches under the section category, got %q for %q", issue.Category, issue.Message)
		}
	}
}

func TestCheckRequiredSections(t *testing.T) {
	doc := docmodel.NewDocument()
	eng, agg := newEngine(doc)

	reg := &classify.Registries{
		SectionsFound: map[string]bool{
			"Özet": true, "Abstract": true, "İçindekiler": true,
			"Giriş": true, "Kaynakça": true,
		},
	}
	missing := eng.CheckRequiredSections(reg)

	if len(missing) != 1 || missing[0] != "Sonuç" {
		t.Errorf("expected only Sonuç missing, got %v", missing)
	}
	if !hasIssueContaining(agg, "Sonuç") {
		t.Errorf("expected missing section issue, got %v", issueMessages(agg))
	}

	total, passed := eng.Tally()
	if total != 6 || passed != 5 {
		t.Errorf("expected 6 checks with 5 passing, got %d/%d", passed, total)
	}
}

func TestCheckReference(t *testing.T) {
	doc := docmodel.NewDocument()
	p := &docmodel.Paragraph{}
	p.AddRun("Yılmaz, A. (2019). ", docmodel.RunFormat{Font: docmodel.String("Times New Roman")})
	p.AddRun("Eğitimde Ölçme ve Değerlendirme", docmodel.RunFormat{Italic: docmodel.Bool(true)})
	p.AddRun(". Ankara: Pegem.", docmodel.RunFormat{})
	p.Format.FirstLineIndent = docmodel.TwipsPtr(-docmodel.CmToTwips(1.0))
	p.Format.SpacingBefore = docmodel.Float(3)
	p.Format.SpacingAfter = docmodel.Float(3)
	doc.AddParagraph(p)

	eng, agg := newEngine(doc)
	eng.CheckReference(classifiedPara(p, classify.RoleReference))

	total, passed := eng.Tally()
	if total != passed {
		t.Errorf("expected well-formed reference to pass all checks, issues: %v", issueMessages(agg))
	}
}

func TestCheckReferenceMissingHangingIndent(t *testing.T) {
	doc := docmodel.NewDocument()
	p := docmodel.NewParagraph("Yılmaz, A. (2019). Eğitimde Ölçme. Ankara: Pegem.")
	p.Format.FirstLineIndent = docmodel.TwipsPtr(0)
	doc.AddParagraph(p)

	eng, agg := newEngine(doc)
	eng.CheckReference(classifiedPara(p, classify.RoleReference))

	if !hasIssueContaining(agg, "asılı girinti") {
		t.Errorf("expected hanging indent issue, got %v", issueMessages(agg))
	}
}

func TestCheckReferenceSpacingCategory(t *testing.T) {
	doc := docmodel.NewDocument()
	p := &docmodel.Paragraph{}
	p.AddRun("Yılmaz, A. (2019). ", docmodel.RunFormat{})
	p.AddRun("Eğitimde Ölçme", docmodel.RunFormat{Italic: docmodel.Bool(true)})
	p.Format.FirstLineIndent = docmodel.TwipsPtr(-docmodel.CmToTwips(1.0))
	p.Format.SpacingBefore = docmodel.Float(0)
	p.Format.SpacingAfter = docmodel.Float(0)
	doc.AddParagraph(p)

	eng, agg := newEngine(doc)
	eng.CheckReference(classifiedPara(p, classify.RoleReference))

	if !hasIssueContaining(agg, "Kaynak girişi öncesi boşluk") {
		t.Fatalf("expected entry spacing issue, got %v", issueMessages(agg))
	}
	for _, issue := range agg.Issues() {
		if issue.Category != report.CategoryReference {
			t.Errorf("expected all reference issues under the reference category, got %q for %q", issue.Category, issue.Message)
		}
	}
}

func TestCheckTablePlacement(t *testing.T) {
	withCaption := docmodel.NewDocument()
	withCaption.AddParagraph(docmodel.NewParagraph("Tablo 1.1: Katılımcılar"))
	withCaption.AddTable(docmodel.NewTable(2, 2))

	eng, agg := newEngine(withCaption)
	eng.CheckTablePlacement(withCaption)
	if len(agg.Issues()) != 0 {
		t.Errorf("expected captioned table to pass, got %v", issueMessages(agg))
	}

	noCaption := docmodel.NewDocument()
	noCaption.AddParagraph(docmodel.NewParagraph("Bu uzun bir gövde paragrafıdır ve tablo başlığı değildir."))
	noCaption.AddTable(docmodel.NewTable(2, 2))

	eng2, agg2 := newEngine(noCaption)
	eng2.CheckTablePlacement(noCaption)
	if len(agg2.Issues()) != 1 {
		t.Errorf("expected uncaptioned table to be flagged, got %v", issueMessages(agg2))
	}
}

func TestCheckTablePlacementSkipsBlanks(t *testing.T) {
	doc := docmodel.NewDocument()
	doc.AddParagraph(docmodel.NewParagraph("Tablo 2.1: Bulgular"))
	doc.AddParagraph(docmodel.NewParagraph(""))
	doc.AddParagraph(docmodel.NewParagraph(""))
	doc.AddTable(docmodel.NewTable(1, 1))

	eng, agg := newEngine(doc)
	eng.CheckTablePlacement(doc)
	if len(agg.Issues()) != 0 {
		t.Errorf("expected blanks not to consume the search window, got %v", issueMessages(agg))
	}
}

func TestCheckChapterStart(t *testing.T) {
	doc := docmodel.NewDocument()
	for i := 0; i < 4; i++ {
		doc.AddParagraph(docmodel.NewParagraph(""))
	}
	heading := docmodel.NewParagraph("GİRİŞ")
	doc.AddParagraph(heading)

	eng, agg := newEngine(doc)
	all := []classify.Classified{
		{Index: 0, Role: classify.RoleBlank},
		{Index: 1, Role: classify.RoleBlank},
		{Index: 2, Role: classify.RoleBlank},
		{Index: 3, Role: classify.RoleBlank},
		{Index: 4, Text: "GİRİŞ", Role: classify.RoleChapterHeading, Para: heading},
	}
	eng.CheckChapterStart(all[4], all)

	if _, passed := eng.Tally(); passed != 1 {
		t.Errorf("expected blank-line run to satisfy chapter start, got %v", issueMessages(agg))
	}

	// Without clear space the check fails.
	doc2 := docmodel.NewDocument()
	h2 := docmodel.NewParagraph("SONUÇ")
	doc2.AddParagraph(docmodel.NewParagraph("önceki metin"))
	doc2.AddParagraph(h2)
	eng2, agg2 := newEngine(doc2)
	all2 := []classify.Classified{
		{Index: 0, Text: "önceki metin", Role: classify.RoleBody},
		{Index: 1, Text: "SONUÇ", Role: classify.RoleChapterHeading, Para: h2},
	}
	eng2.CheckChapterStart(all2[1], all2)
	if len(agg2.Issues()) != 1 {
		t.Errorf("expected chapter start issue, got %v", issueMessages(agg2))
	}
}

func TestCheckBodyParagraph(t *testing.T) {
	doc := docmodel.NewDocument()
	p := &docmodel.Paragraph{}
	p.AddRun("Araştırmanın bu bölümünde yöntem ayrıntılı olarak açıklanmaktadır.", docmodel.RunFormat{})
	p.Format.Alignment = docmodel.Align(docmodel.AlignJustify)
	p.Format.FirstLineIndent = docmodel.TwipsPtr(docmodel.CmToTwips(1.25))
	p.Format.SpacingBefore = docmodel.Float(6)
	p.Format.SpacingAfter = docmodel.Float(6)
	p.Format.LineSpacing = &docmodel.LineSpacing{Rule: docmodel.LineSpacingMultiple, Value: 1.5}
	doc.AddParagraph(p)

	eng, agg := newEngine(doc)
	eng.CheckBodyParagraph(classifiedPara(p, classify.RoleBody))

	total, passed := eng.Tally()
	if total != passed {
		t.Errorf("expected compliant paragraph to pass, issues: %v", issueMessages(agg))
	}

	// An explicitly left-aligned paragraph with a zero indent fails
	// alignment and indent but still counts every check.
	doc2 := docmodel.NewDocument()
	p2 := docmodel.NewParagraph("Hatalı biçimlenmiş bir paragraf örneği.")
	p2.Format.Alignment = docmodel.Align(docmodel.AlignLeft)
	p2.Format.FirstLineIndent = docmodel.TwipsPtr(0)
	doc2.AddParagraph(p2)
	eng2, agg2 := newEngine(doc2)
	eng2.CheckBodyParagraph(classifiedPara(p2, classify.RoleBody))
	total2, passed2 := eng2.Tally()
	if total2 != total {
		t.Errorf("expected same check count regardless of outcome: %d vs %d", total2, total)
	}
	if passed2 == total2 {
		t.Errorf("expected failures, got none: %v", issueMessages(agg2))
	}
	if !hasIssueContaining(agg2, "yaslanmalı") || !hasIssueContaining(agg2, "girintisi") {
		t.Errorf("expected alignment and indent issues, got %v", issueMessages(agg2))
	}
}

func TestCheckBodyParagraphUnsetGeometryPasses(t *testing.T) {
	// Nothing defined at any cascade level: alignment, indent and line
	// spacing resolve to the fallback and must pass; only the spacing
	// values, which resolve to 0, are judged.
	doc := docmodel.NewDocument()
	p := docmodel.NewParagraph("Hiçbir biçimlendirme taşımayan sıradan bir gövde paragrafı.")
	doc.AddParagraph(p)

	eng, agg := newEngine(doc)
	eng.CheckBodyParagraph(classifiedPara(p, classify.RoleBody))

	for _, bad := range []string{"yaslanmalı", "İlk satır girintisi", "Satır aralığı"} {
		if hasIssueContaining(agg, bad) {
			t.Errorf("expected undefined geometry to pass, got %v", issueMessages(agg))
		}
	}
	if !hasIssueContaining(agg, "öncesi boşluk") {
		t.Errorf("expected zero spacing to be judged, got %v", issueMessages(agg))
	}

	total, passed := eng.Tally()
	if total != 5 || passed != 3 {
		t.Errorf("expected 5 checks with 3 passing, got %d/%d", passed, total)
	}
}

func TestCheckChapterHeadingUnsetAlignmentPasses(t *testing.T) {
	doc := docmodel.NewDocument()
	p := &docmodel.Paragraph{}
	p.AddRun("GİRİŞ", docmodel.RunFormat{Bold: docmodel.Bool(true)})
	doc.AddParagraph(p)

	eng, agg := newEngine(doc)
	eng.CheckChapterHeading(classifiedPara(p, classify.RoleChapterHeading))

	if hasIssueContaining(agg, "ortalanmalı") {
		t.Errorf("expected undefined alignment to pass, got %v", issueMessages(agg))
	}
}
