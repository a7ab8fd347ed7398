package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	mocklexicon "glossa-hq/rosetta/internal/lexicon"
	"glossa-hq/rosetta/pkg/config"
	"glossa-hq/rosetta/pkg/engine"
	"glossa-hq/rosetta/pkg/lexicon"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	repo := mocklexicon.NewMockRepository(
		lexicon.Rule{Key: "select.colour", Language: "en_au", Priority: 1, Expression: "_1 == 1", Translation: "Select one colour."},
		lexicon.Rule{Key: "select.colour", Language: "en_au", Translation: "Please select [_1] colours."},
		lexicon.Rule{Key: "close", Language: "en", Context: "distance", Translation: "Near"},
	)

	eng, err := engine.New(repo, engine.Config{
		Preferences:      []string{"en-AU"},
		FallbackLanguage: "en",
	})
	if err != nil {
		t.Fatal(err)
	}

	return New(config.ServerConfig{ListenAddress: "127.0.0.1:0"}, eng, prometheus.NewRegistry(), nil)
}

func TestHandleTranslate(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.routes()

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantText   string
	}{
		{name: "guarded singular", url: "/v1/translate?key=select.colour&arg=1", wantStatus: 200, wantText: "Select one colour."},
		{name: "plural with substitution", url: "/v1/translate?key=select.colour&arg=2", wantStatus: 200, wantText: "Please select 2 colours."},
		{name: "context lookup", url: "/v1/translate?key=close&context=distance", wantStatus: 200, wantText: "Near"},
		{name: "identity fallback", url: "/v1/translate?key=unknown.phrase", wantStatus: 200, wantText: "unknown.phrase"},
		{name: "missing key", url: "/v1/translate", wantStatus: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantText == "" {
				return
			}

			var resp translateResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("bad response body %q: %v", rec.Body.String(), err)
			}
			if resp.Translation != tt.wantText {
				t.Errorf("translation = %q, want %q", resp.Translation, tt.wantText)
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
