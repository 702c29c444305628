// Package docparse reads Word documents into the analyzer's object
// model. DOCX is the supported input; legacy OLE2 .doc files are
// detected and rejected with a conversion hint.
package docparse

import (
	"fmt"

	"github.com/tezlab/tezdenetim/internal/docmodel"
)

// Parse reads the file at path into a document model.
func Parse(path string) (*docmodel.Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatDocx:
		return ParseDocx(path)
	case FormatDoc:
		return nil, inspectLegacyDoc(path)
	default:
		return nil, fmt.Errorf("desteklenmeyen dosya biçimi; .docx bekleniyor")
	}
}
