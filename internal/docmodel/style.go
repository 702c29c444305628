package docmodel

// StyleType distinguishes paragraph styles from character styles.
type StyleType string

const (
	StyleParagraph StyleType = "paragraph"
	StyleCharacter StyleType = "character"
)

// Style is a named formatting definition with an optional base style.
// The base chain is expected to be acyclic but is never trusted:
// consumers must bound their traversal depth.
type Style struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    StyleType       `json:"type"`
	BasedOn string          `json:"based_on,omitempty"`
	Run     RunFormat       `json:"run,omitempty"`
	Para    ParagraphFormat `json:"para,omitempty"`
}

// Defaults holds the document-wide default formatting (docDefaults in
// OOXML terms).
type Defaults struct {
	Run  RunFormat       `json:"run,omitempty"`
	Para ParagraphFormat `json:"para,omitempty"`
}
