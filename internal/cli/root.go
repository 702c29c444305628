// Package cli implements the tezdenetim command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string shown by the version command.
func SetVersion(v string) {
	version = v
}

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "tezdenetim",
	Short: "EBYÜ tez yazım kılavuzu biçim denetleyicisi",
	Long: `tezdenetim, Word (.docx) biçimindeki lisansüstü tezlerini
EBYÜ 2022 tez yazım kılavuzuna göre denetler.

Denetlenen başlıca kurallar:
  - Kenar boşlukları ve sayfa düzeni
  - Yazı tipi ve punto (Times New Roman 12)
  - Satır aralığı ve paragraf biçimi
  - Başlık hiyerarşisi ve İçindekiler tutarlılığı
  - Tablo/şekil numaralandırması ve yerleşimi
  - Kaynakça biçimi
  - Özet kelime sayısı

Örnekler:
  tezdenetim check tez.docx
  tezdenetim check tez.docx --json -o rapor.json
  tezdenetim review tez.docx --provider gemini
  tezdenetim serve --addr :8080`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Sürüm bilgisini göster",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tezdenetim %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "ayrıntılı günlük çıktısı")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the CLI logger: human-readable console output on
// stderr, debug level with --verbose.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if rootVerbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
