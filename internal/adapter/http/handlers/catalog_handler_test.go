package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCatalogHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler()
	r := gin.New()
	r.GET("/v1/services", h.ListServices)

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body) != 4 {
		t.Fatalf("expected 4 services, got %d", len(body))
	}
	ids := map[string]bool{}
	for _, s := range body {
		ids[s["id"].(string)] = true
	}
	for _, want := range []string{"concrete", "house", "roof", "gutter"} {
		if !ids[want] {
			t.Fatalf("missing service %q in %v", want, ids)
		}
	}
}

func TestCatalogHandler_GetService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler()
	r := gin.New()
	r.GET("/v1/services/:service_id", h.GetService)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/services/roof", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "roof" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("unknown", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/services/pool", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
