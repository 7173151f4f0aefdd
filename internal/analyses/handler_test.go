package analyses

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-relay/internal/llm"
)

func newTestRouter(p llm.Provider, maxUpload int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(newService(p), maxUpload).RegisterRoutes(r.Group("/api"))
	return r
}

func multipartBody(t *testing.T, field, fileName, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func decodeErrorCode(t *testing.T, body []byte) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return payload.Error.Code
}

func TestAnalyzeResumeHandlerProvider(t *testing.T) {
	r := newTestRouter(&mockProvider{resp: `{"score":80,"keywords":["go"],"suggestions":["tip"]}`}, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/analyzeResume", strings.NewReader(`{"resumeText":"John Doe, Software Engineer"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("X-Result-Source"); got != "provider" {
		t.Fatalf("expected X-Result-Source provider, got %q", got)
	}
	if got := strings.TrimSpace(resp.Body.String()); got != `{"score":80,"keywords":["go"],"suggestions":["tip"]}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestAnalyzeResumeHandlerFallback(t *testing.T) {
	r := newTestRouter(&mockProvider{resp: "I cannot process this."}, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/analyzeResume", strings.NewReader(`{"resumeText":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Result-Source"); got != "fallback" {
		t.Fatalf("expected X-Result-Source fallback, got %q", got)
	}
	var got Result
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Score != 50 || len(got.Keywords) != 5 || len(got.Suggestions) != 5 {
		t.Fatalf("unexpected fallback: %+v", got)
	}
}

func TestAnalyzeResumeHandlerMissingText(t *testing.T) {
	p := &mockProvider{}
	r := newTestRouter(p, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/analyzeResume", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if code := decodeErrorCode(t, resp.Body.Bytes()); code != "VALIDATION_ERROR" {
		t.Fatalf("unexpected code: %s", code)
	}
	if p.calls != 0 {
		t.Fatalf("provider should not be called")
	}
}

func TestAnalyzeResumeHandlerBodyTooLarge(t *testing.T) {
	r := newTestRouter(&mockProvider{}, 16)

	req := httptest.NewRequest(http.MethodPost, "/api/analyzeResume", strings.NewReader(`{"resumeText":"`+strings.Repeat("a", 64)+`"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
}

func TestAnalyzeResumeFileHandlerUploadTooLarge(t *testing.T) {
	p := &mockProvider{}
	r := newTestRouter(p, 1024)

	body, contentType := multipartBody(t, resumeFileField, "resume.txt", "text/plain", bytes.Repeat([]byte("a"), 4096))
	req := httptest.NewRequest(http.MethodPost, "/api/analyzeResumeFile", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d: %s", resp.Code, resp.Body.String())
	}
	if code := decodeErrorCode(t, resp.Body.Bytes()); code != "INPUT_TOO_LARGE" {
		t.Fatalf("expected INPUT_TOO_LARGE, got %q", code)
	}
	if p.calls != 0 {
		t.Fatalf("expected provider not called, got %d calls", p.calls)
	}
}

func TestAnalyzeResumeHandlerProviderFailure(t *testing.T) {
	r := newTestRouter(&mockProvider{err: llm.Rejected(errors.New("quota exceeded"))}, 1<<20)

	req := httptest.NewRequest(http.MethodPost, "/api/analyzeResume", strings.NewReader(`{"resumeText":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "quota") {
		t.Fatalf("provider details leaked: %s", resp.Body.String())
	}
	if code := decodeErrorCode(t, resp.Body.Bytes()); code != "PROVIDER_FAILED" {
		t.Fatalf("unexpected code: %s", code)
	}
}

func TestAnalyzeResumeFileHandler(t *testing.T) {
	p := &mockProvider{resp: "```json\n{\"score\":66,\"keywords\":[],\"suggestions\":[]}\n```"}
	r := newTestRouter(p, 1<<20)

	body, contentType := multipartBody(t, "resumeFile", "resume.txt", "text/plain", []byte("Jane Roe, Analyst"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyzeResumeFile", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := strings.TrimSpace(resp.Body.String()); got != `{"score":66,"keywords":[],"suggestions":[]}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestAnalyzeResumeFileHandlerUnsupported(t *testing.T) {
	p := &mockProvider{}
	r := newTestRouter(p, 1<<20)

	body, contentType := multipartBody(t, "resumeFile", "photo.png", "image/png", []byte("\x89PNG\r\n\x1a\n"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyzeResumeFile", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", resp.Code)
	}
	if code := decodeErrorCode(t, resp.Body.Bytes()); code != "UNSUPPORTED_FORMAT" {
		t.Fatalf("unexpected code: %s", code)
	}
	if p.calls != 0 {
		t.Fatalf("provider should not be called")
	}
}

func TestAnalyzeResumeFileHandlerMissingFile(t *testing.T) {
	r := newTestRouter(&mockProvider{}, 1<<20)

	body, contentType := multipartBody(t, "other", "resume.txt", "text/plain", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/analyzeResumeFile", body)
	req.Header.Set("Content-Type", contentType)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
