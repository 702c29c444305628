package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tezlab/tezdenetim/internal/docparse"
	"github.com/tezlab/tezdenetim/internal/review"
)

var (
	reviewProvider string
	reviewModel    string
	reviewConfig   string
)

var reviewCmd = &cobra.Command{
	Use:   "review <dosya.docx>",
	Short: "Tez bölümlerini yapay zekâ ile içerik yönünden incele",
	Long: `Özet, Giriş ve Sonuç bölümlerini bir dil modeline göndererek
akademik dil, anlatım netliği ve bölüm amacına uygunluk yönünden
geri bildirim alır.

Sağlayıcı API anahtarları ortam değişkenlerinden okunur:
  ANTHROPIC_API_KEY, OPENAI_API_KEY, GOOGLE_API_KEY

Örnekler:
  tezdenetim review tez.docx
  tezdenetim review tez.docx --provider anthropic
  tezdenetim review tez.docx --provider openai --model gpt-4o`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	reviewCmd.Flags().StringVar(&reviewProvider, "provider", "", "sağlayıcı (anthropic, openai, gemini)")
	reviewCmd.Flags().StringVar(&reviewModel, "model", "", "model adı")
	reviewCmd.Flags().StringVar(&reviewConfig, "config", "", "özel yapılandırma dosyası yolu")

	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := newLogger()

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("dosya bulunamadı: %s", inputPath)
	}

	cfg, err := loadConfig(reviewConfig)
	if err != nil {
		return err
	}

	name := reviewProvider
	if name == "" {
		name = cfg.DefaultProvider
	}
	pc, ok := cfg.GetProvider(name)
	if !ok {
		return fmt.Errorf("bilinmeyen sağlayıcı: %s", name)
	}
	if reviewModel != "" {
		pc.Model = reviewModel
	}

	provider, err := review.NewProvider(name, *pc)
	if err != nil {
		return err
	}
	if err := provider.Validate(); err != nil {
		return fmt.Errorf("sağlayıcı yapılandırması eksik: %w", err)
	}

	doc, err := docparse.Parse(inputPath)
	if err != nil {
		return fmt.Errorf("belge okunamadı: %w", err)
	}

	sections := review.ExtractSections(doc)
	if len(sections) == 0 {
		return fmt.Errorf("incelenecek bölüm bulunamadı (Özet, Giriş, Sonuç)")
	}

	out := cmd.OutOrStdout()
	for _, section := range sections {
		logger.Info().Str("section", section.Title).Str("provider", name).Msg("reviewing section")

		req := review.DefaultRequest(section.Title, section.Text)
		req.MaxTokens = pc.MaxTokens
		result, err := provider.Review(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("%s bölümü incelenemedi: %w", section.Title, err)
		}

		fmt.Fprintf(out, "## %s\n\n%s\n\n", section.Title, result.Feedback)
		logger.Debug().
			Int("input_tokens", result.Usage.InputTokens).
			Int("output_tokens", result.Usage.OutputTokens).
			Msg("usage")

		if section.Title == "Özet" {
			if pages := review.EstimatePages(section.Text); pages > 1 {
				fmt.Fprintf(out, "Not: Özet yaklaşık %.1f sayfa; kılavuza göre bir sayfayı geçmemeli.\n\n", pages)
			}
		}
	}

	return nil
}
