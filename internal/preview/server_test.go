package preview

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServesPlaceholderBeforeAnyDocument(t *testing.T) {
	s := NewServer(nil)
	w := get(t, s.Handler(), "/")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Waiting for a practice unit") {
		t.Error("expected placeholder document")
	}
}

func TestSetDocumentReplaces(t *testing.T) {
	s := NewServer(nil)
	h := s.Handler()

	s.SetDocument("<html><body>first</body></html>")
	s.SetDocument("<html><body>second</body></html>")

	body := get(t, h, "/").Body.String()
	if !strings.Contains(body, "second") {
		t.Error("latest document not served")
	}
	if strings.Contains(body, "first") {
		t.Error("previous document still present — must be replaced, not appended")
	}
}

func TestVersionBumpsPerDocument(t *testing.T) {
	s := NewServer(nil)
	h := s.Handler()

	if s.Version() != 0 {
		t.Fatalf("initial version = %d, want 0", s.Version())
	}
	s.SetDocument("<html/>")
	s.SetDocument("<html/>")

	w := get(t, h, "/version")
	var got struct {
		Version int64 `json:"version"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode version: %v", err)
	}
	if got.Version != 2 {
		t.Errorf("version = %d, want 2", got.Version)
	}
}

func TestReloadScriptInjected(t *testing.T) {
	s := NewServer(nil)
	s.SetDocument("<html><body>unit</body></html>")

	body := get(t, s.Handler(), "/").Body.String()
	if !strings.Contains(body, "/version") || !strings.Contains(body, "location.reload") {
		t.Error("reload script not injected")
	}
	if !strings.Contains(body, "var served = 1") {
		t.Error("reload script should pin the served version")
	}
}

func TestNoStoreHeaders(t *testing.T) {
	s := NewServer(nil)
	h := s.Handler()

	for _, path := range []string{"/", "/version"} {
		w := get(t, h, path)
		if cc := w.Header().Get("Cache-Control"); cc != "no-store" {
			t.Errorf("%s Cache-Control = %q, want no-store", path, cc)
		}
	}
}

func TestURLEmptyBeforeStart(t *testing.T) {
	s := NewServer(nil)
	if u := s.URL(); u != "" {
		t.Errorf("url before start = %q, want empty", u)
	}
}
