package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/thoth-pub/cc-license/internal/catalog"
	"github.com/thoth-pub/cc-license/internal/httpserver/deps"
)

// testLogger discards everything.
type testLogger struct{}

func (testLogger) Debug(string, ...zap.Field) {}
func (testLogger) Info(string, ...zap.Field)  {}
func (testLogger) Warn(string, ...zap.Field)  {}
func (testLogger) Error(string, ...zap.Field) {}

func (testLogger) Debugf(string, ...interface{}) {}
func (testLogger) Infof(string, ...interface{})  {}
func (testLogger) Warnf(string, ...interface{})  {}
func (testLogger) Errorf(string, ...interface{}) {}

func (testLogger) Sync() error { return nil }

func testDeps() deps.Deps {
	return deps.Deps{Logger: testLogger{}}
}

func doResolve(t *testing.T, d deps.Deps, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	Resolve(d)(rec, req)
	return rec
}

func TestResolveSuccess(t *testing.T) {
	rec := doResolve(t, testDeps(),
		"/api/resolve?url=https%3A%2F%2Fcreativecommons.org%2Flicenses%2Fby-nc-sa%2F4.0%2F")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp resolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := resolveResponse{
		Rights:      "CC BY-NC-SA",
		RightsFull:  "Attribution-NonCommercial-ShareAlike",
		Version:     "4.0",
		Short:       "CC BY-NC-SA 4.0",
		Description: "Creative Commons Attribution-NonCommercial-ShareAlike 4.0 International license (CC BY-NC-SA 4.0).",
	}
	if resp != want {
		t.Errorf("response = %+v, want %+v", resp, want)
	}
}

func TestResolveJurisdictionName(t *testing.T) {
	cat := catalog.New()
	cat.Update(&catalog.Config{
		Jurisdictions: []catalog.JurisdictionProps{{Slug: "us", Name: "United States"}},
	})

	d := testDeps()
	d.Catalog = cat

	rec := doResolve(t, d,
		"/api/resolve?url=https%3A%2F%2Fcreativecommons.org%2Flicenses%2Fby%2F3.0%2Fus%2F")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp resolveResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Jurisdiction != "us" {
		t.Errorf("Jurisdiction = %q, want %q", resp.Jurisdiction, "us")
	}
	if resp.JurisdictionName != "United States" {
		t.Errorf("JurisdictionName = %q, want %q", resp.JurisdictionName, "United States")
	}
	if resp.Short != "CC BY 3.0" {
		t.Errorf("Short = %q, want %q", resp.Short, "CC BY 3.0")
	}
}

func TestResolveMissingURL(t *testing.T) {
	rec := doResolve(t, testDeps(), "/api/resolve")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestResolveParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantKind string
	}{
		{
			name:     "wrong host",
			url:      "https://example.com/licenses/by/4.0/",
			wantKind: "unsupported_host",
		},
		{
			name:     "unknown code",
			url:      "https://creativecommons.org/licenses/cc-by/4.0/",
			wantKind: "unknown_license_code",
		},
		{
			name:     "bad version",
			url:      "https://creativecommons.org/licenses/by-nc/4/",
			wantKind: "invalid_version",
		},
		{
			name:     "not a url",
			url:      "not a url at all",
			wantKind: "invalid_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/resolve", nil)
			q := req.URL.Query()
			q.Set("url", tt.url)
			req.URL.RawQuery = q.Encode()

			rec := httptest.NewRecorder()
			Resolve(testDeps())(rec, req)

			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want %d (body: %s)",
					rec.Code, http.StatusUnprocessableEntity, rec.Body.String())
			}

			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", resp.Kind, tt.wantKind)
			}
		})
	}
}

func TestStatsDisabled(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	Stats(testDeps())(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestReload(t *testing.T) {
	t.Run("catalog disabled", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/reload", nil)
		rec := httptest.NewRecorder()
		Reload(testDeps())(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
		}
	})

	t.Run("triggers reload", func(t *testing.T) {
		d := testDeps()
		d.ReloadTrigger = make(chan struct{}, 1)

		req := httptest.NewRequest(http.MethodPost, "/api/reload", nil)
		rec := httptest.NewRecorder()
		Reload(d)(rec, req)

		if rec.Code != http.StatusAccepted {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusAccepted)
		}
		select {
		case <-d.ReloadTrigger:
		default:
			t.Error("reload trigger channel is empty")
		}
	})

	t.Run("reload already pending", func(t *testing.T) {
		d := testDeps()
		d.ReloadTrigger = make(chan struct{}, 1)
		d.ReloadTrigger <- struct{}{}

		req := httptest.NewRequest(http.MethodPost, "/api/reload", nil)
		rec := httptest.NewRecorder()
		Reload(d)(rec, req)

		if rec.Code != http.StatusTooManyRequests {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
		}
	})
}
