// Package config manages application configuration: the formatting
// rulebook the analyzer checks against and the LLM reviewer providers.
package config

// Config is the top-level application configuration.
type Config struct {
	Rules           Rules               `yaml:"rules"`
	DefaultProvider string              `yaml:"default_provider"`
	Providers       map[string]Provider `yaml:"providers"`
	Server          Server              `yaml:"server"`
}

// Provider is an LLM reviewer provider configuration.
type Provider struct {
	APIKey    string `yaml:"api_key"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// Server configures the optional HTTP surface.
type Server struct {
	Addr string `yaml:"addr"`
}

// Rules holds the EBYÜ 2022 thesis guideline values plus the empirical
// detection thresholds. Every option's effect is as named; there are
// no hidden defaults beyond the documented resolver fallbacks.
type Rules struct {
	// Page layout: 3 cm on every edge, chapter openings start 7 cm
	// from the top.
	MarginTopCm          float64 `yaml:"margin_top_cm"`
	MarginBottomCm       float64 `yaml:"margin_bottom_cm"`
	MarginLeftCm         float64 `yaml:"margin_left_cm"`
	MarginRightCm        float64 `yaml:"margin_right_cm"`
	MarginToleranceCm    float64 `yaml:"margin_tolerance_cm"`
	ChapterStartMarginCm float64 `yaml:"chapter_start_margin_top_cm"`
	FooterDistanceCm     float64 `yaml:"footer_distance_cm"`
	FooterDistanceTolCm  float64 `yaml:"footer_distance_tolerance_cm"`

	// Typography.
	FontName               string  `yaml:"font_name"`
	FontSizeBodyPt         float64 `yaml:"font_size_body_pt"`
	FontSizeFootnotePt     float64 `yaml:"font_size_footnote_pt"`
	FontSizeBlockQuotePt   float64 `yaml:"font_size_block_quote_pt"`
	FontSizeChapterPt      float64 `yaml:"font_size_chapter_heading_pt"`
	FontSizeSubheadingPt   float64 `yaml:"font_size_subheading_pt"`
	FontSizeTableCaptionPt float64 `yaml:"font_size_table_caption_pt"`
	FontSizeFigCaptionPt   float64 `yaml:"font_size_figure_caption_pt"`
	FontSizeTableContentPt float64 `yaml:"font_size_table_content_pt"`
	FontSizePageNumberPt   float64 `yaml:"font_size_page_number_pt"`
	FontSizeEpigraphPt     float64 `yaml:"font_size_epigraph_pt"`
	FontSizeTolerancePt    float64 `yaml:"font_size_tolerance_pt"`

	// Line spacing.
	LineSpacingBody       float64 `yaml:"line_spacing_body"`
	LineSpacingBlockQuote float64 `yaml:"line_spacing_block_quote"`
	LineSpacingTolerance  float64 `yaml:"line_spacing_tolerance"`

	// Paragraph geometry.
	FirstLineIndentCm    float64 `yaml:"paragraph_first_line_indent_cm"`
	FirstLineIndentTolCm float64 `yaml:"paragraph_first_line_indent_tolerance_cm"`
	SpacingBeforePt      float64 `yaml:"paragraph_spacing_before_pt"`
	SpacingAfterPt       float64 `yaml:"paragraph_spacing_after_pt"`
	SpacingTolerancePt   float64 `yaml:"paragraph_spacing_tolerance_pt"`

	// Block quotes are indented 1.25 cm on both sides; detection
	// counts anything above the empirical threshold.
	BlockQuoteIndentCm    float64 `yaml:"block_quote_indent_cm"`
	BlockQuoteDetectMinCm float64 `yaml:"block_quote_detect_min_cm"`

	// BoldRatioThreshold is the qualifying fraction of non-whitespace
	// characters that must be bold for a paragraph to count as bold.
	BoldRatioThreshold float64 `yaml:"bold_ratio_threshold"`

	// Chapter-start clear space: either a large space-before or a run
	// of blank paragraphs above the heading.
	ChapterSpaceBeforeMinPt float64 `yaml:"chapter_space_before_min_pt"`
	ChapterBlankLinesMin    int     `yaml:"chapter_blank_lines_min"`

	// Abstract.
	AbstractMinWords int `yaml:"abstract_min_words"`
	AbstractMaxWords int `yaml:"abstract_max_words"`
	KeywordsMin      int `yaml:"keywords_min"`
	KeywordsMax      int `yaml:"keywords_max"`

	// Bibliography.
	ReferenceHangingIndentCm   float64 `yaml:"reference_hanging_indent_cm"`
	ReferenceIndentToleranceCm float64 `yaml:"reference_indent_tolerance_cm"`
	ReferenceSpacingBeforePt   float64 `yaml:"reference_spacing_before_pt"`
	ReferenceSpacingAfterPt    float64 `yaml:"reference_spacing_after_pt"`
	// ReferenceNoiseMaxLen: lines at or below this length are treated
	// as non-bibliographic noise and skipped.
	ReferenceNoiseMaxLen int `yaml:"reference_noise_max_len"`

	// Placement: how many preceding body blocks to scan for a table's
	// caption, skipping blanks.
	CaptionSearchWindow int `yaml:"caption_search_window"`

	// FrontMatterBodyMinLen: shorter front-matter lines bypass
	// paragraph-body rules.
	FrontMatterBodyMinLen int `yaml:"front_matter_body_min_len"`

	RequiredSections []string `yaml:"required_sections"`
}

// DefaultRules returns the EBYÜ 2022 guideline defaults.
func DefaultRules() Rules {
	return Rules{
		MarginTopCm:          3.0,
		MarginBottomCm:       3.0,
		MarginLeftCm:         3.0,
		MarginRightCm:        3.0,
		MarginToleranceCm:    0.1,
		ChapterStartMarginCm: 7.0,
		FooterDistanceCm:     1.25,
		FooterDistanceTolCm:  0.1,

		FontName:               "Times New Roman",
		FontSizeBodyPt:         12,
		FontSizeFootnotePt:     10,
		FontSizeBlockQuotePt:   11,
		FontSizeChapterPt:      14,
		FontSizeSubheadingPt:   12,
		FontSizeTableCaptionPt: 12,
		FontSizeFigCaptionPt:   12,
		FontSizeTableContentPt: 11,
		FontSizePageNumberPt:   10,
		FontSizeEpigraphPt:     11,
		FontSizeTolerancePt:    0.5,

		LineSpacingBody:       1.5,
		LineSpacingBlockQuote: 1.0,
		LineSpacingTolerance:  0.1,

		FirstLineIndentCm:    1.25,
		FirstLineIndentTolCm: 0.2,
		SpacingBeforePt:      6,
		SpacingAfterPt:       6,
		SpacingTolerancePt:   1.1,

		BlockQuoteIndentCm:    1.25,
		BlockQuoteDetectMinCm: 1.0,

		BoldRatioThreshold: 0.8,

		ChapterSpaceBeforeMinPt: 80,
		ChapterBlankLinesMin:    4,

		AbstractMinWords: 200,
		AbstractMaxWords: 250,
		KeywordsMin:      3,
		KeywordsMax:      5,

		ReferenceHangingIndentCm:   1.0,
		ReferenceIndentToleranceCm: 0.2,
		ReferenceSpacingBeforePt:   3,
		ReferenceSpacingAfterPt:    3,
		ReferenceNoiseMaxLen:       15,

		CaptionSearchWindow: 3,

		FrontMatterBodyMinLen: 150,

		RequiredSections: []string{
			"Özet",
			"Abstract",
			"İçindekiler",
			"Giriş",
			"Sonuç",
			"Kaynakça",
		},
	}
}

// DefaultConfig returns the default application configuration.
func DefaultConfig() *Config {
	return &Config{
		Rules:           DefaultRules(),
		DefaultProvider: "gemini",
		Providers: map[string]Provider{
			"anthropic": {
				APIKey:    "${ANTHROPIC_API_KEY}",
				Model:     "claude-3-5-sonnet-20241022",
				MaxTokens: 4096,
			},
			"openai": {
				APIKey:    "${OPENAI_API_KEY}",
				Model:     "gpt-4o-mini",
				MaxTokens: 4096,
			},
			"gemini": {
				APIKey:    "${GOOGLE_API_KEY}",
				Model:     "gemini-2.5-flash",
				MaxTokens: 4096,
			},
		},
		Server: Server{Addr: ":8080"},
	}
}

// GetProvider returns the provider configuration by name.
func (c *Config) GetProvider(name string) (*Provider, bool) {
	p, ok := c.Providers[name]
	if !ok {
		return nil, false
	}
	return &p, true
}

// GetDefaultProvider returns the default provider configuration.
func (c *Config) GetDefaultProvider() (*Provider, bool) {
	return c.GetProvider(c.DefaultProvider)
}
