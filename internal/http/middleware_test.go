package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/dispatch-scheduler/internal/logging"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("attaches a logger to the request context", func(t *testing.T) {
		t.Parallel()

		var saw bool
		handler := RequestLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				saw = logging.FromContext(r.Context()) != nil
				w.WriteHeader(http.StatusNoContent)
			}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/calendar", nil))
		if !saw {
			t.Fatal("handler did not receive a context logger")
		}
	})

	t.Run("records method and path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		handler := RequestLogger(slog.New(slog.NewJSONHandler(&buf, nil)))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}))

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/availability", nil))

		logged := buf.String()
		if !strings.Contains(logged, `"path":"/availability"`) || !strings.Contains(logged, `"method":"GET"`) {
			t.Fatalf("log output missing request fields:\n%s", logged)
		}
		if !strings.Contains(logged, "request completed") {
			t.Fatalf("log output missing completion entry:\n%s", logged)
		}
	})
}
