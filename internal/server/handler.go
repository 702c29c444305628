package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/tezlab/tezdenetim/internal/checker"
	"github.com/tezlab/tezdenetim/internal/config"
	"github.com/tezlab/tezdenetim/internal/docparse"
	"github.com/tezlab/tezdenetim/internal/report"
)

// maxUploadBytes caps the accepted document size (32 MiB).
const maxUploadBytes = 32 << 20

type checkHandler struct {
	rules  config.Rules
	logger zerolog.Logger
}

func newCheckHandler(rules config.Rules, logger zerolog.Logger) *checkHandler {
	return &checkHandler{rules: rules, logger: logger}
}

// Check accepts a multipart upload under the "file" field and returns
// the compliance report. Unreadable documents yield the score-0 fatal
// report with HTTP 422.
func (h *checkHandler) Check(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "geçersiz yükleme: "+err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "'file' alanı eksik", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// The parser works on paths, so spool the upload to a temp file.
	tmp, err := os.CreateTemp("", "tezdenetim-*"+filepath.Ext(header.Filename))
	if err != nil {
		http.Error(w, "geçici dosya oluşturulamadı", http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		http.Error(w, "yükleme okunamadı", http.StatusInternalServerError)
		return
	}
	tmp.Close()

	doc, err := docparse.Parse(tmp.Name())
	if err != nil {
		h.logger.Warn().Err(err).Str("file", header.Filename).Msg("parse failed")
		writeJSON(w, http.StatusUnprocessableEntity, report.FatalReport(err.Error()))
		return
	}

	rep := checker.New(h.rules, h.logger).Analyze(doc)
	writeJSON(w, http.StatusOK, rep)
}

// Rules returns the active rulebook.
func (h *checkHandler) Rules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.rules)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
