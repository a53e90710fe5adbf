package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"badc0de.net/pkg/go-wolf/things"
)

func testRouter(t *testing.T) *mux.Router {
	t.Helper()
	th, err := things.New()
	if err != nil {
		t.Fatalf("things.New: %v", err)
	}
	r := mux.NewRouter()
	NewHandler(th, "").RegisterRoutes(r)
	return r
}

func TestTextureWithoutArchive(t *testing.T) {
	r := testRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/texture/0", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /texture/0 = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestETagShortCircuit(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest("GET", "/texture/0", nil)
	req.Header.Set("If-None-Match", `W/"texture:1:0:image/png"`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotModified {
		t.Errorf("conditional GET /texture/0 = %d, want %d", w.Code, http.StatusNotModified)
	}
	if w.Header().Get("ETag") == "" {
		t.Errorf("304 response carries no ETag")
	}
}

func TestBadSpriteRange(t *testing.T) {
	r := testRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/sprite/5-2.gif", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("GET /sprite/5-2.gif = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestUnroutedPath(t *testing.T) {
	r := testRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/texture/notanumber", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /texture/notanumber = %d, want %d", w.Code, http.StatusNotFound)
	}
}
