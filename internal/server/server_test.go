package server

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/tezlab/tezdenetim/internal/config"
	"github.com/tezlab/tezdenetim/internal/report"
)

func testAPI() *WebAPI {
	return NewWebAPI(zerolog.Nop(), Config{
		Addr:            ":0",
		ShutdownTimeout: time.Second,
		Rules:           config.DefaultRules(),
	})
}

const minimalDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>ÖZET</w:t></w:r></w:p>
    <w:p><w:r><w:t>Kısa bir özet metni.</w:t></w:r></w:p>
    <w:p><w:r><w:t>GİRİŞ</w:t></w:r></w:p>
    <w:p><w:r><w:t>Araştırmanın amacı bu bölümde anlatılmaktadır.</w:t></w:r></w:p>
  </w:body>
</w:document>`

// minimalDocx builds an in-memory DOCX archive.
func minimalDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte(minimalDocumentXML)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// uploadRequest builds a multipart POST with the given file content.
func uploadRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/check", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHealthz(t *testing.T) {
	api := testAPI()
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestRulesEndpoint(t *testing.T) {
	api := testAPI()
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rules", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var rules config.Rules
	if err := json.NewDecoder(rec.Body).Decode(&rules); err != nil {
		t.Fatalf("failed to decode rules: %v", err)
	}
	if rules.FontName != "Times New Roman" || rules.MarginTopCm != 3.0 {
		t.Errorf("unexpected rulebook values: %+v", rules)
	}
}

func TestCheckUpload(t *testing.T) {
	api := testAPI()
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, uploadRequest(t, "file", "tez.docx", minimalDocx(t)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var rep report.Report
	if err := json.NewDecoder(rec.Body).Decode(&rep); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if rep.TotalChecks == 0 {
		t.Error("expected checks to run on uploaded document")
	}
}

func TestCheckMissingFile(t *testing.T) {
	api := testAPI()
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, uploadRequest(t, "yanlis_alan", "tez.docx", minimalDocx(t)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing 'file' field, got %d", rec.Code)
	}
}

func TestCheckUnparsableFile(t *testing.T) {
	api := testAPI()
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, uploadRequest(t, "file", "tez.docx", []byte("bu bir docx değil")))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for unparsable file, got %d", rec.Code)
	}
	var rep report.Report
	if err := json.NewDecoder(rec.Body).Decode(&rep); err != nil {
		t.Fatalf("failed to decode fatal report: %v", err)
	}
	if rep.Score != 0 || rep.TotalIssues != 1 {
		t.Errorf("expected score-0 fatal report, got %+v", rep)
	}
}

func TestCheckWrongMethod(t *testing.T) {
	api := testAPI()
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/check", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
