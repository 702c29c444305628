package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/tezlab/tezdenetim/internal/server"
)

var (
	serveAddr   string
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Denetleyiciyi HTTP servisi olarak çalıştır",
	Long: `Denetleyiciyi HTTP servisi olarak başlatır.

Uç noktalar:
  POST /api/v1/check   multipart 'file' alanıyla belge yükle, raporu al
  GET  /api/v1/rules   geçerli kural setini göster
  GET  /healthz        sağlık denetimi

Örnek:
  tezdenetim serve --addr :8080
  curl -F file=@tez.docx http://localhost:8080/api/v1/check`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "dinlenecek adres (varsayılan: yapılandırmadan)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "özel yapılandırma dosyası yolu")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := loadConfig(serveConfig)
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}
	if addr == "" {
		addr = ":8080"
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Rules:           cfg.Rules,
	})
	return api.Start()
}
