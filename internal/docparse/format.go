package docparse

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/richardlehane/mscfb"
)

// Format identifies the container format of an input file.
type Format string

const (
	FormatDocx    Format = "docx"
	FormatDoc     Format = "doc"
	FormatUnknown Format = "unknown"
)

// Magic bytes of the two containers Word files come in.
var (
	zipMagic  = []byte{0x50, 0x4B, 0x03, 0x04}
	ole2Magic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFormat sniffs the container format from the file header.
func DetectFormat(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return DetectFormatFromReader(f)
}

// DetectFormatFromReader sniffs the container format from the first
// bytes of the reader.
func DetectFormatFromReader(r io.Reader) (Format, error) {
	header := make([]byte, 8)
	n, err := io.ReadFull(r, header)
	if err != nil && n < 4 {
		return FormatUnknown, fmt.Errorf("failed to read file header: %w", err)
	}
	switch {
	case bytes.HasPrefix(header, zipMagic):
		return FormatDocx, nil
	case n >= 8 && bytes.Equal(header, ole2Magic):
		return FormatDoc, nil
	default:
		return FormatUnknown, nil
	}
}

// inspectLegacyDoc opens the OLE2 compound file and confirms it is a
// legacy Word binary, so the rejection message can name the format.
func inspectLegacyDoc(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	cfb, err := mscfb.New(f)
	if err != nil {
		return fmt.Errorf("geçersiz OLE2 dosyası: %w", err)
	}
	for entry, err := cfb.Next(); err == nil; entry, err = cfb.Next() {
		if entry.Name == "WordDocument" {
			return fmt.Errorf("eski .doc biçimi desteklenmiyor; dosyayı Word ile .docx olarak kaydedin")
		}
	}
	return fmt.Errorf("desteklenmeyen OLE2 belgesi; dosyayı .docx olarak kaydedin")
}
