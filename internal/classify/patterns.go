package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// UpperTR uppercases with Turkish casing rules (i → İ, ı → I).
func UpperTR(s string) string {
	return strings.ToUpperSpecial(unicode.TurkishCase, s)
}

// coverPatterns match cover-page lines (university, institute, degree
// markers). They are applied to the Turkish-uppercased text.
var coverPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^T\.?C\.?$`),
	regexp.MustCompile(`ERZİNCAN.*ÜNİVERSİTESİ`),
	regexp.MustCompile(`SOSYAL BİLİMLER ENSTİTÜSÜ`),
	regexp.MustCompile(`ANA\s*BİLİM\s*DALI`),
	regexp.MustCompile(`BİLİM\s*DALI`),
	regexp.MustCompile(`YÜKSEK LİSANS`),
	regexp.MustCompile(`DOKTORA`),
	regexp.MustCompile(`TEZİ?$`),
	regexp.MustCompile(`HAZIRLAYAN`),
	regexp.MustCompile(`DANIŞMAN`),
	regexp.MustCompile(`^\d{4},?\s*ERZİNCAN$`),
	regexp.MustCompile(`^(OCAK|ŞUBAT|MART|NİSAN|MAYIS|HAZİRAN|TEMMUZ|AĞUSTOS|EYLÜL|EKİM|KASIM|ARALIK)\s+\d{4}`),
}

// chapterHeadingPatterns match unnumbered chapter-level headings.
var chapterHeadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(BİRİNCİ|İKİNCİ|ÜÇÜNCÜ|DÖRDÜNCÜ|BEŞİNCİ|ALTINCI|YEDİNCİ|SEKİZİNCİ|DOKUZUNCU|ONUNCU)\s+BÖLÜM$`),
	regexp.MustCompile(`^GİRİŞ$`),
	regexp.MustCompile(`^SONUÇ(\s+VE\s+ÖNERİLER)?$`),
	regexp.MustCompile(`^KAYNAKÇA$`),
	regexp.MustCompile(`^ÖZET$`),
	regexp.MustCompile(`^ABSTRACT$`),
	regexp.MustCompile(`^ÖN\s*SÖZ$`),
	regexp.MustCompile(`^İÇİNDEKİLER$`),
	regexp.MustCompile(`^TABLOLAR\s+LİSTESİ$`),
	regexp.MustCompile(`^ŞEKİLLER\s+LİSTESİ$`),
	regexp.MustCompile(`^SİMGELER\s+VE\s+KISALTMALAR\s+LİSTESİ$`),
	regexp.MustCompile(`^EKLER$`),
	regexp.MustCompile(`^ETİK\s+KURUL\s+ONAYI$`),
	regexp.MustCompile(`^BİLİMSEL\s+ETİĞE\s+UYGUNLUK$`),
	regexp.MustCompile(`^TEZ\s+ÖZGÜNLÜK\s+SAYFASI$`),
	regexp.MustCompile(`^KILAVUZA\s+UYGUNLUK$`),
	regexp.MustCompile(`^KABUL\s+VE\s+ONAY\s+TUTANAĞI$`),
}

var (
	chapterTitleOnlyRe = regexp.MustCompile(`^(BİRİNCİ|İKİNCİ|ÜÇÜNCÜ|DÖRDÜNCÜ|BEŞİNCİ|ALTINCI|YEDİNCİ|SEKİZİNCİ|DOKUZUNCU|ONUNCU)\s+BÖLÜM$`)

	// Numbered headings must be followed by an uppercase letter so
	// that sentences like "3. sınıf öğrencileri..." do not match.
	numberedHeading3Re = regexp.MustCompile(`^\d+\.\d+\.\d+\.\s+[A-ZÇĞİÖŞÜ]`)
	numberedHeading2Re = regexp.MustCompile(`^\d+\.\d+\.\s+[A-ZÇĞİÖŞÜ]`)
	numberedHeading1Re = regexp.MustCompile(`^\d+\.\s+[A-ZÇĞİÖŞÜ]`)

	tableCaptionRe  = regexp.MustCompile(`(?i)^Tablo\s+(\d+)\.\s*(\d+)\s*:`)
	figureCaptionRe = regexp.MustCompile(`(?i)^Şekil\s+(\d+)\.\s*(\d+)\s*:`)

	// tocEntryRe captures the leading numeral and title of a table of
	// contents line, tolerating trailing dot leaders and page numbers.
	tocEntryRe = regexp.MustCompile(`^(\d+(?:\.\d+)*\.?)\s+(.+?)(?:\s+\.+\s*\d+)?$`)

	yearTokenRe = regexp.MustCompile(`\(\d{4}\)`)

	// authorLeadRe matches a "Soyad, A." style bibliography opening,
	// including Turkish letters, hyphens and apostrophes.
	authorLeadRe = regexp.MustCompile(`^[A-ZÇĞİÖŞÜa-zçğıöşü][a-zçğıöşüA-ZÇĞİÖŞÜ\-']+,\s*[A-ZÇĞİÖŞÜ]\.[A-ZÇĞİÖŞÜ]?\.?`)

	numericOnlyRe  = regexp.MustCompile(`^[\d\s.\-–]+$`)
	glossaryLineRe = regexp.MustCompile(`^[A-ZÇĞİÖŞÜ][A-ZÇĞİÖŞÜ\s.]{0,24}:\s`)

	cleanHeadingRe = regexp.MustCompile(`[.\s]`)
)

// IsCoverLine reports whether the text matches a cover-page pattern.
func IsCoverLine(text string) bool {
	upper := UpperTR(strings.TrimSpace(text))
	for _, re := range coverPatterns {
		if re.MatchString(upper) {
			return true
		}
	}
	return false
}

// IsChapterHeading reports whether the text is an unnumbered
// chapter-level heading (BİRİNCİ BÖLÜM, GİRİŞ, SONUÇ, ...).
func IsChapterHeading(text string) bool {
	upper := UpperTR(strings.TrimSpace(text))
	for _, re := range chapterHeadingPatterns {
		if re.MatchString(upper) {
			return true
		}
	}
	return false
}

// IsChapterTitleOnly reports whether the text is a bare chapter label
// like "BİRİNCİ BÖLÜM" whose real title follows on the next paragraph.
func IsChapterTitleOnly(text string) bool {
	return chapterTitleOnlyRe.MatchString(UpperTR(strings.TrimSpace(text)))
}

// NumberedHeadingLevel returns the nesting level (1-3) of a numbered
// heading, or 0 when the text is not one.
func NumberedHeadingLevel(text string) int {
	text = strings.TrimSpace(text)
	switch {
	case numberedHeading3Re.MatchString(text):
		return 3
	case numberedHeading2Re.MatchString(text):
		return 2
	case numberedHeading1Re.MatchString(text):
		return 1
	default:
		return 0
	}
}

// IsTableCaption reports whether the text is a "Tablo X.Y:" caption.
func IsTableCaption(text string) bool {
	return tableCaptionRe.MatchString(strings.TrimSpace(text))
}

// IsFigureCaption reports whether the text is a "Şekil X.Y:" caption.
func IsFigureCaption(text string) bool {
	return figureCaptionRe.MatchString(strings.TrimSpace(text))
}

// ParseCaptionNumber extracts (chapter, item) from a caption of the
// given kind. ok is false when the caption does not parse.
func ParseCaptionNumber(text string, kind CaptionKind) (chapter, item int, ok bool) {
	re := tableCaptionRe
	if kind == CaptionFigure {
		re = figureCaptionRe
	}
	m := re.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, 0, false
	}
	chapter = atoi(m[1])
	item = atoi(m[2])
	return chapter, item, true
}

// IsUppercaseText reports whether every letter in the text is
// uppercase. Text without letters counts as uppercase.
func IsUppercaseText(text string) bool {
	for _, r := range text {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// titleCaseExceptions are conjunctions allowed to stay lowercase in
// title-case headings.
var titleCaseExceptions = map[string]bool{
	"ve": true, "veya": true, "ya": true, "da": true, "de": true,
	"ile": true, "and": true, "or": true, "the": true, "a": true, "an": true,
}

// IsTitleCase reports whether each word starts with an uppercase
// letter, excepting the usual conjunctions (never the first word).
func IsTitleCase(text string) bool {
	words := strings.Fields(text)
	for i, word := range words {
		r := []rune(word)
		if len(r) == 0 || !unicode.IsLetter(r[0]) {
			continue
		}
		if i > 0 && titleCaseExceptions[lowerTR(word)] {
			continue
		}
		if !unicode.IsUpper(r[0]) {
			return false
		}
	}
	return true
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// NormalizeHeading strips whitespace and dots for TOC comparisons,
// tolerating trailing dot leaders.
func NormalizeHeading(text string) string {
	return cleanHeadingRe.ReplaceAllString(UpperTR(text), "")
}

// HasYearToken reports whether the text contains a "(YYYY)" token.
func HasYearToken(text string) bool {
	return yearTokenRe.MatchString(text)
}

// HasAuthorLead reports whether the text opens with a "Soyad, A."
// author pattern.
func HasAuthorLead(text string) bool {
	return authorLeadRe.MatchString(text)
}

// IsReferenceNoise reports whether a line inside the bibliography
// looks structurally non-bibliographic: too short, numeric-only, or a
// glossary-style "TERM: definition" line. The cut-offs are heuristics,
// not a grammar.
func IsReferenceNoise(text string, maxShortLen int) bool {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) <= maxShortLen {
		return true
	}
	if numericOnlyRe.MatchString(trimmed) {
		return true
	}
	if glossaryLineRe.MatchString(trimmed) {
		return true
	}
	return false
}

func lowerTR(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, s)
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}
