package docmodel

// Margins are the page margins of a section. Nil means the value was
// not present in the source document.
type Margins struct {
	Top    *Twips `json:"top,omitempty"`
	Bottom *Twips `json:"bottom,omitempty"`
	Left   *Twips `json:"left,omitempty"`
	Right  *Twips `json:"right,omitempty"`
}

// Section is a page-layout section carrying margins and footer data.
type Section struct {
	Margins        Margins      `json:"margins,omitempty"`
	FooterDistance *Twips       `json:"footer_distance,omitempty"`
	Footer         []*Paragraph `json:"footer,omitempty"`
}
