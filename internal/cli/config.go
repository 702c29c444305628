package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tezlab/tezdenetim/internal/config"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Yapılandırma yönetimi",
	Long: `tezdenetim yapılandırmasını yönetir.

Yapılandırma dosyası: ~/.tezdenetim/config.yaml

Alt komutlar:
  show    geçerli yapılandırmayı göster
  init    varsayılan yapılandırma dosyası oluştur
  set     yapılandırma değeri değiştir
  path    yapılandırma dosyası yolunu göster`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Geçerli yapılandırmayı göster",
	Long: `Geçerli yapılandırmayı gösterir.

Yapılandırma dosyası yoksa varsayılan değerler gösterilir.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Varsayılan yapılandırma dosyası oluştur",
	Long: `Varsayılan yapılandırma dosyasını ~/.tezdenetim/config.yaml
konumunda oluşturur.

Dosya zaten varsa hata verir; üzerine yazmak için --force kullanın.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <anahtar> <değer>",
	Short: "Yapılandırma değeri değiştir",
	Long: `Yapılandırma değerini değiştirir.

Desteklenen anahtarlar:
  default_provider    varsayılan sağlayıcı (anthropic, openai, gemini)
  server.addr         HTTP sunucu adresi

Örnekler:
  tezdenetim config set default_provider openai
  tezdenetim config set server.addr :9090`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Yapılandırma dosyası yolunu göster",
	Run: func(cmd *cobra.Command, args []string) {
		loader, err := config.NewLoader()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "hata: %v\n", err)
			return
		}
		fmt.Println(loader.ConfigPath())
	},
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "var olan dosyanın üzerine yaz")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loader, err := config.NewLoader()
	if err != nil {
		return fmt.Errorf("yapılandırma yükleyici başlatılamadı: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("yapılandırma yüklenemedi: %w", err)
	}

	if loader.Exists() {
		fmt.Fprintf(cmd.OutOrStdout(), "Yapılandırma dosyası: %s\n\n", loader.ConfigPath())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Yapılandırma dosyası: (varsayılanlar kullanılıyor)\n\n")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("yapılandırma yazılamadı: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	fmt.Fprintln(cmd.OutOrStdout(), "Ortam değişkenleri:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	envVars := []struct {
		key   string
		desc  string
		value string
	}{
		{"ANTHROPIC_API_KEY", "Anthropic API anahtarı", maskAPIKey(os.Getenv("ANTHROPIC_API_KEY"))},
		{"OPENAI_API_KEY", "OpenAI API anahtarı", maskAPIKey(os.Getenv("OPENAI_API_KEY"))},
		{"GOOGLE_API_KEY", "Google API anahtarı", maskAPIKey(os.Getenv("GOOGLE_API_KEY"))},
	}
	for _, ev := range envVars {
		status := "(ayarsız)"
		if ev.value != "" {
			status = ev.value
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", ev.key, ev.desc, status)
	}
	w.Flush()

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader, err := config.NewLoader()
	if err != nil {
		return fmt.Errorf("yapılandırma yükleyici başlatılamadı: %w", err)
	}

	if loader.Exists() && !configForce {
		return fmt.Errorf("yapılandırma dosyası zaten var: %s\nüzerine yazmak için --force kullanın", loader.ConfigPath())
	}

	if err := loader.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("yapılandırma dosyası oluşturulamadı: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Yapılandırma dosyası oluşturuldu: %s\n", loader.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	loader, err := config.NewLoader()
	if err != nil {
		return fmt.Errorf("yapılandırma yükleyici başlatılamadı: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("yapılandırma yüklenemedi: %w", err)
	}

	switch key {
	case "default_provider":
		validProviders := []string{"anthropic", "openai", "gemini"}
		if !contains(validProviders, value) {
			return fmt.Errorf("geçersiz sağlayıcı: %s (desteklenen: %s)", value, strings.Join(validProviders, ", "))
		}
		cfg.DefaultProvider = value

	case "server.addr":
		if value == "" {
			return fmt.Errorf("sunucu adresi boş olamaz")
		}
		cfg.Server.Addr = value

	default:
		return fmt.Errorf("bilinmeyen anahtar: %s\ndesteklenen anahtarlar: default_provider, server.addr", key)
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("yapılandırma kaydedilemedi: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Yapılandırma güncellendi: %s = %s\n", key, value)
	return nil
}

func maskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
