package docparse

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/tezlab/tezdenetim/internal/docmodel"
)

// ParseDocx reads a DOCX archive into the document model: styles with
// their inheritance chain, body paragraphs and tables in document
// order, section geometry, footnotes and footers.
func ParseDocx(path string) (*docmodel.Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX archive: %w", err)
	}
	defer zr.Close()

	doc := docmodel.NewDocument()

	// styles.xml is optional; documents without it rely on fallbacks.
	if err := parseStyles(&zr.Reader, doc); err != nil {
		return nil, err
	}
	if err := parseBody(&zr.Reader, doc); err != nil {
		return nil, err
	}
	if err := parseFootnotes(&zr.Reader, doc); err != nil {
		return nil, err
	}
	if err := parseFooters(&zr.Reader, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func findZipFile(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

// parseStyles reads word/styles.xml: document defaults plus the named
// paragraph and character styles with their basedOn chain.
func parseStyles(zr *zip.Reader, doc *docmodel.Document) error {
	f := findZipFile(zr, "word/styles.xml")
	if f == nil {
		return nil
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open styles.xml: %w", err)
	}
	defer rc.Close()

	var styles xmlStyles
	if err := xml.NewDecoder(rc).Decode(&styles); err != nil {
		return fmt.Errorf("failed to parse styles.xml: %w", err)
	}

	if styles.DocDefaults != nil {
		if styles.DocDefaults.RPrDefault != nil && styles.DocDefaults.RPrDefault.RPr != nil {
			doc.Defaults.Run = convRunFormat(styles.DocDefaults.RPrDefault.RPr)
		}
		if styles.DocDefaults.PPrDefault != nil && styles.DocDefaults.PPrDefault.PPr != nil {
			doc.Defaults.Para = convParaFormat(styles.DocDefaults.PPrDefault.PPr)
		}
	}

	for _, xs := range styles.Styles {
		if xs.StyleID == "" {
			continue
		}
		st := &docmodel.Style{
			ID:   xs.StyleID,
			Type: docmodel.StyleParagraph,
		}
		if xs.Type == "character" {
			st.Type = docmodel.StyleCharacter
		}
		if xs.Name != nil {
			st.Name = xs.Name.Val
		}
		if xs.BasedOn != nil {
			st.BasedOn = xs.BasedOn.Val
		}
		if xs.RPr != nil {
			st.Run = convRunFormat(xs.RPr)
		}
		if xs.PPr != nil {
			st.Para = convParaFormat(xs.PPr)
		}
		doc.AddStyle(st)
	}
	return nil
}

// parseBody streams word/document.xml, decoding paragraphs, tables and
// section properties as they appear. Table-nested paragraphs are
// consumed by the table decode and never reach the body stream.
func parseBody(zr *zip.Reader, doc *docmodel.Document) error {
	f := findZipFile(zr, "word/document.xml")
	if f == nil {
		return fmt.Errorf("document.xml not found; not a Word archive")
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("XML parse error in document.xml: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "p":
			var xp xmlPara
			if err := decoder.DecodeElement(&xp, &start); err != nil {
				return fmt.Errorf("failed to decode paragraph: %w", err)
			}
			doc.AddParagraph(convParagraph(&xp))
		case "tbl":
			var xt xmlTbl
			if err := decoder.DecodeElement(&xt, &start); err != nil {
				return fmt.Errorf("failed to decode table: %w", err)
			}
			doc.AddTable(convTable(&xt))
		case "sectPr":
			var xs xmlSectPr
			if err := decoder.DecodeElement(&xs, &start); err != nil {
				return fmt.Errorf("failed to decode section properties: %w", err)
			}
			doc.Sections = append(doc.Sections, convSection(&xs))
		}
	}
	return nil
}

// parseFootnotes reads word/footnotes.xml when present, skipping the
// separator pseudo-footnotes.
func parseFootnotes(zr *zip.Reader, doc *docmodel.Document) error {
	f := findZipFile(zr, "word/footnotes.xml")
	if f == nil {
		return nil
	}
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open footnotes.xml: %w", err)
	}
	defer rc.Close()

	var notes xmlFootnotes
	if err := xml.NewDecoder(rc).Decode(&notes); err != nil {
		return fmt.Errorf("failed to parse footnotes.xml: %w", err)
	}
	for _, note := range notes.Footnotes {
		if note.Type == "separator" || note.Type == "continuationSeparator" {
			continue
		}
		for i := range note.Paras {
			doc.Footnotes = append(doc.Footnotes, convParagraph(&note.Paras[i]))
		}
	}
	return nil
}

// parseFooters reads every word/footer*.xml part in name order and
// attaches the paragraphs to the first section.
func parseFooters(zr *zip.Reader, doc *docmodel.Document) error {
	var names []string
	for _, f := range zr.File {
		lower := strings.ToLower(f.Name)
		if strings.HasPrefix(lower, "word/footer") && strings.HasSuffix(lower, ".xml") {
			names = append(names, f.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	var paras []*docmodel.Paragraph
	for _, name := range names {
		f := findZipFile(zr, name)
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", name, err)
		}
		var ftr xmlFooter
		err = xml.NewDecoder(rc).Decode(&ftr)
		rc.Close()
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", name, err)
		}
		for i := range ftr.Paras {
			paras = append(paras, convParagraph(&ftr.Paras[i]))
		}
	}

	if len(doc.Sections) == 0 {
		doc.Sections = append(doc.Sections, docmodel.Section{})
	}
	doc.Sections[0].Footer = append(doc.Sections[0].Footer, paras...)
	return nil
}

// Conversions from the OOXML shapes to the document model. OOXML
// stores lengths in twips, font sizes in half-points and line spacing
// in 240ths of a line.

func convParagraph(xp *xmlPara) *docmodel.Paragraph {
	p := &docmodel.Paragraph{}
	if xp.PPr != nil {
		p.Format = convParaFormat(xp.PPr)
		if xp.PPr.PStyle != nil {
			p.StyleID = xp.PPr.PStyle.Val
		}
	}
	for _, xr := range xp.Runs {
		run := docmodel.Run{Text: strings.Join(xr.Texts, "")}
		if len(xr.Tabs) > 0 && run.Text == "" {
			run.Text = "\t"
		}
		if xr.RPr != nil {
			run.Format = convRunFormat(xr.RPr)
			if xr.RPr.RStyle != nil {
				run.CharStyleID = xr.RPr.RStyle.Val
			}
		}
		p.Runs = append(p.Runs, run)
	}
	return p
}

func convTable(xt *xmlTbl) *docmodel.Table {
	t := &docmodel.Table{}
	for _, xr := range xt.Rows {
		row := make([]*docmodel.Cell, 0, len(xr.Cells))
		for _, xc := range xr.Cells {
			cell := &docmodel.Cell{}
			for i := range xc.Paras {
				cell.Paragraphs = append(cell.Paragraphs, convParagraph(&xc.Paras[i]))
			}
			row = append(row, cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func convSection(xs *xmlSectPr) docmodel.Section {
	sec := docmodel.Section{}
	if xs.PgMar != nil {
		sec.Margins = docmodel.Margins{
			Top:    parseTwips(xs.PgMar.Top),
			Bottom: parseTwips(xs.PgMar.Bottom),
			Left:   parseTwips(xs.PgMar.Left),
			Right:  parseTwips(xs.PgMar.Right),
		}
		sec.FooterDistance = parseTwips(xs.PgMar.Footer)
	}
	return sec
}

func convRunFormat(rpr *xmlRPr) docmodel.RunFormat {
	f := docmodel.RunFormat{}
	if rpr.Fonts != nil {
		name := rpr.Fonts.Ascii
		if name == "" {
			name = rpr.Fonts.HAnsi
		}
		if name != "" {
			f.Font = docmodel.String(name)
		}
	}
	if rpr.Sz != nil {
		if half, err := strconv.ParseFloat(rpr.Sz.Val, 64); err == nil {
			f.SizePt = docmodel.Float(half / 2)
		}
	}
	if rpr.B != nil {
		f.Bold = docmodel.Bool(onOff(rpr.B))
	}
	if rpr.I != nil {
		f.Italic = docmodel.Bool(onOff(rpr.I))
	}
	return f
}

func convParaFormat(ppr *xmlPPr) docmodel.ParagraphFormat {
	f := docmodel.ParagraphFormat{}
	if ppr.Jc != nil {
		f.Alignment = docmodel.Align(convAlignment(ppr.Jc.Val))
	}
	if ppr.Ind != nil {
		f.LeftIndent = parseTwips(firstNonEmpty(ppr.Ind.Start, ppr.Ind.Left))
		f.RightIndent = parseTwips(firstNonEmpty(ppr.Ind.End, ppr.Ind.Right))
		if ppr.Ind.Hanging != "" {
			if v := parseTwips(ppr.Ind.Hanging); v != nil {
				f.FirstLineIndent = docmodel.TwipsPtr(-*v)
			}
		} else {
			f.FirstLineIndent = parseTwips(ppr.Ind.FirstLine)
		}
	}
	if ppr.Spacing != nil {
		if v := parseTwips(ppr.Spacing.Before); v != nil {
			f.SpacingBefore = docmodel.Float(v.Pt())
		}
		if v := parseTwips(ppr.Spacing.After); v != nil {
			f.SpacingAfter = docmodel.Float(v.Pt())
		}
		if ppr.Spacing.Line != "" {
			if line, err := strconv.ParseFloat(ppr.Spacing.Line, 64); err == nil {
				ls := docmodel.LineSpacing{}
				switch ppr.Spacing.LineRule {
				case "exact":
					ls.Rule = docmodel.LineSpacingExact
					ls.Value = line / docmodel.TwipsPerPt
				case "atLeast":
					ls.Rule = docmodel.LineSpacingAtLeast
					ls.Value = line / docmodel.TwipsPerPt
				default:
					// "auto" or absent: 240ths of a single line.
					ls.Rule = docmodel.LineSpacingMultiple
					ls.Value = line / 240
				}
				f.LineSpacing = &ls
			}
		}
	}
	return f
}

func convAlignment(val string) docmodel.Alignment {
	switch val {
	case "center":
		return docmodel.AlignCenter
	case "right", "end":
		return docmodel.AlignRight
	case "both", "justify", "distribute":
		return docmodel.AlignJustify
	default:
		return docmodel.AlignLeft
	}
}

// onOff interprets an OOXML toggle: present without a value means on.
func onOff(t *xmlOnOff) bool {
	switch t.Val {
	case "", "1", "true", "on":
		return true
	default:
		return false
	}
}

func parseTwips(s string) *docmodel.Twips {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return docmodel.TwipsPtr(docmodel.Twips(v))
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
