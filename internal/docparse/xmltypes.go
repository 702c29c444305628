package docparse

// XML shapes of the OOXML parts the parser reads. Tags match on local
// names, so the w: namespace prefix never appears here.

type xmlVal struct {
	Val string `xml:"val,attr"`
}

// xmlOnOff is an OOXML toggle property (w:b, w:i).
type xmlOnOff struct {
	Val string `xml:"val,attr"`
}

type xmlFonts struct {
	Ascii string `xml:"ascii,attr"`
	HAnsi string `xml:"hAnsi,attr"`
}

type xmlRPr struct {
	RStyle *xmlVal   `xml:"rStyle"`
	Fonts  *xmlFonts `xml:"rFonts"`
	Sz     *xmlVal   `xml:"sz"`
	B      *xmlOnOff `xml:"b"`
	I      *xmlOnOff `xml:"i"`
}

type xmlInd struct {
	Left      string `xml:"left,attr"`
	Start     string `xml:"start,attr"`
	Right     string `xml:"right,attr"`
	End       string `xml:"end,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

type xmlSpacing struct {
	Before   string `xml:"before,attr"`
	After    string `xml:"after,attr"`
	Line     string `xml:"line,attr"`
	LineRule string `xml:"lineRule,attr"`
}

type xmlPPr struct {
	PStyle  *xmlVal     `xml:"pStyle"`
	Jc      *xmlVal     `xml:"jc"`
	Ind     *xmlInd     `xml:"ind"`
	Spacing *xmlSpacing `xml:"spacing"`
	RPr     *xmlRPr     `xml:"rPr"`
}

type xmlRun struct {
	RPr   *xmlRPr    `xml:"rPr"`
	Texts []string   `xml:"t"`
	Tabs  []struct{} `xml:"tab"`
}

type xmlPara struct {
	PPr  *xmlPPr  `xml:"pPr"`
	Runs []xmlRun `xml:"r"`
}

type xmlTc struct {
	Paras []xmlPara `xml:"p"`
}

type xmlTr struct {
	Cells []xmlTc `xml:"tc"`
}

type xmlTbl struct {
	Rows []xmlTr `xml:"tr"`
}

type xmlPgMar struct {
	Top    string `xml:"top,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Right  string `xml:"right,attr"`
	Footer string `xml:"footer,attr"`
}

type xmlSectPr struct {
	PgMar *xmlPgMar `xml:"pgMar"`
}

// styles.xml

type xmlStyles struct {
	DocDefaults *xmlDocDefaults `xml:"docDefaults"`
	Styles      []xmlStyle      `xml:"style"`
}

type xmlDocDefaults struct {
	RPrDefault *struct {
		RPr *xmlRPr `xml:"rPr"`
	} `xml:"rPrDefault"`
	PPrDefault *struct {
		PPr *xmlPPr `xml:"pPr"`
	} `xml:"pPrDefault"`
}

type xmlStyle struct {
	Type    string  `xml:"type,attr"`
	StyleID string  `xml:"styleId,attr"`
	Name    *xmlVal `xml:"name"`
	BasedOn *xmlVal `xml:"basedOn"`
	RPr     *xmlRPr `xml:"rPr"`
	PPr     *xmlPPr `xml:"pPr"`
}

// footnotes.xml

type xmlFootnotes struct {
	Footnotes []xmlFootnote `xml:"footnote"`
}

type xmlFootnote struct {
	Type  string    `xml:"type,attr"`
	Paras []xmlPara `xml:"p"`
}

// footer*.xml

type xmlFooter struct {
	Paras []xmlPara `xml:"p"`
}
