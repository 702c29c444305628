package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type providerInfo struct {
	Name         string
	DefaultModel string
	EnvKey       string
	Description  string
}

var providers = []providerInfo{
	{
		Name:         "anthropic",
		DefaultModel: "claude-3-5-sonnet-20241022",
		EnvKey:       "ANTHROPIC_API_KEY",
		Description:  "Anthropic Claude API",
	},
	{
		Name:         "openai",
		DefaultModel: "gpt-4o-mini",
		EnvKey:       "OPENAI_API_KEY",
		Description:  "OpenAI GPT API",
	},
	{
		Name:         "gemini",
		DefaultModel: "gemini-2.5-flash",
		EnvKey:       "GOOGLE_API_KEY",
		Description:  "Google Gemini API",
	},
}

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Kullanılabilir yapay zekâ sağlayıcılarını listele",
	Long: `İçerik incelemesi (review) için kullanılabilir sağlayıcıları
listeler.

Her sağlayıcının API anahtarı ilgili ortam değişkeninde tanımlı
olmalıdır.

Örnekler:
  tezdenetim review tez.docx --provider anthropic
  tezdenetim review tez.docx --provider openai --model gpt-4o`,
	Run: runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "Sağlayıcı\tVarsayılan Model\tOrtam Değişkeni\tDurum\tAçıklama")
	fmt.Fprintln(w, "---------\t----------------\t---------------\t-----\t--------")

	for _, p := range providers {
		status := checkProviderStatus(p)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.Name, p.DefaultModel, p.EnvKey, status, p.Description)
	}
}

func checkProviderStatus(p providerInfo) string {
	if os.Getenv(p.EnvKey) != "" {
		return "✓ ayarlı"
	}
	return "✗ ayarsız"
}
