package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tezlab/tezdenetim/internal/checker"
	"github.com/tezlab/tezdenetim/internal/config"
	"github.com/tezlab/tezdenetim/internal/docparse"
	"github.com/tezlab/tezdenetim/internal/report"
)

var (
	checkOutput string
	checkJSON   bool
	checkConfig string
)

var checkCmd = &cobra.Command{
	Use:   "check <dosya.docx>",
	Short: "Tezi kılavuza göre denetle",
	Long: `Word belgesini EBYÜ tez yazım kılavuzuna göre denetler ve
uyumluluk raporu üretir.

Rapor, kategori başlıkları altında gruplanmış sorunları, eksik
bölümleri ve 0-100 arası uyumluluk puanını içerir.

Örnekler:
  tezdenetim check tez.docx
  tezdenetim check tez.docx --json
  tezdenetim check tez.docx -o rapor.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "rapor çıktı dosyası (varsayılan: stdout)")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "raporu JSON olarak yaz")
	checkCmd.Flags().StringVar(&checkConfig, "config", "", "özel yapılandırma dosyası yolu")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := newLogger()

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("dosya bulunamadı: %s", inputPath)
	}

	cfg, err := loadConfig(checkConfig)
	if err != nil {
		return err
	}

	var rep *report.Report
	doc, err := docparse.Parse(inputPath)
	if err != nil {
		logger.Warn().Err(err).Msg("belge okunamadı")
		rep = report.FatalReport(err.Error())
	} else {
		rep = checker.New(cfg.Rules, logger).Analyze(doc)
	}

	out := cmd.OutOrStdout()
	if checkOutput != "" {
		f, err := os.Create(checkOutput)
		if err != nil {
			return fmt.Errorf("çıktı dosyası oluşturulamadı: %w", err)
		}
		defer f.Close()
		out = f
	}

	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("rapor yazılamadı: %w", err)
		}
		return nil
	}

	renderReport(out, rep)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	var loader *config.Loader
	var err error
	if path != "" {
		loader = config.NewLoaderWithPath(path)
	} else {
		loader, err = config.NewLoader()
		if err != nil {
			return nil, fmt.Errorf("yapılandırma yükleyici başlatılamadı: %w", err)
		}
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("yapılandırma yüklenemedi: %w", err)
	}
	return cfg, nil
}

// renderReport writes the human-readable report.
func renderReport(out io.Writer, rep *report.Report) {
	fmt.Fprintf(out, "Uyumluluk Puanı: %.1f / 100\n", rep.Score)
	fmt.Fprintf(out, "Denetim: %d kontrol, %d başarılı, %d sorun\n",
		rep.TotalChecks, rep.PassedChecks, rep.TotalIssues)
	fmt.Fprintf(out, "Bölümler: %d/%d", rep.SectionsFound, rep.SectionsRequired)
	if len(rep.MissingSections) > 0 {
		fmt.Fprint(out, " (eksik:")
		for _, s := range rep.MissingSections {
			fmt.Fprintf(out, " %s", s)
		}
		fmt.Fprint(out, ")")
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Envanter: %d tablo, %d şekil, %d içindekiler girdisi, özet %d kelime\n",
		rep.TableCount, rep.FigureCount, rep.TOCHeadingCount, rep.AbstractWords)

	if len(rep.Groups) == 0 {
		fmt.Fprintln(out, "\nSorun bulunamadı.")
		return
	}

	for _, group := range rep.Groups {
		fmt.Fprintf(out, "\n%s (%d konum)\n", group.Display, len(group.Items))
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, item := range group.Items {
			for i, msg := range item.Issues {
				loc := item.Location
				if i > 0 {
					loc = ""
				}
				fmt.Fprintf(w, "  %s\t%s\n", loc, msg)
			}
		}
		w.Flush()
	}
}
