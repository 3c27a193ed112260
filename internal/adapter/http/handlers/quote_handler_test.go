package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newQuoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewQuoteHandler()
	r := gin.New()
	r.POST("/v1/quotes/preview", h.PreviewQuote)
	return r
}

func postPreview(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_PreviewQuote(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		w := postPreview(t, newQuoteRouter(), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		w := postPreview(t, newQuoteRouter(), `{"services":[{"service_id":"pool","size":"500"}]}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid configuration returns field errors", func(t *testing.T) {
		w := postPreview(t, newQuoteRouter(), `{"services":[{"service_id":"concrete","size":"abc"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Fields map[string]string `json:"fields"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Fields["size"] == "" {
			t.Fatalf("expected field error for size, got %s", w.Body.String())
		}
	})

	t.Run("minimum applies per service", func(t *testing.T) {
		w := postPreview(t, newQuoteRouter(), `{"services":[{"service_id":"concrete","size":"500"}]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Total    float64 `json:"total"`
			Fundable bool    `json:"fundable"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Total != 199 {
			t.Fatalf("expected total 199, got %v", body.Total)
		}
		if !body.Fundable {
			t.Fatalf("expected cart to be fundable")
		}
	})

	t.Run("cart totals accumulate", func(t *testing.T) {
		payload := `{"services":[
			{"service_id":"concrete","size":"500"},
			{"service_id":"house","size":"2000","material":"vinyl","stories":"1"}
		]}`
		w := postPreview(t, newQuoteRouter(), payload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Total          float64 `json:"total"`
			FormattedTotal string  `json:"formatted_total"`
			Deposit        float64 `json:"deposit"`
			Services       []struct {
				Price float64 `json:"price"`
			} `json:"services"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Total != 599 {
			t.Fatalf("expected total 599, got %v", body.Total)
		}
		if body.FormattedTotal != "$599.00" {
			t.Fatalf("unexpected formatted total %q", body.FormattedTotal)
		}
		if len(body.Services) != 2 || body.Services[0].Price != 199 || body.Services[1].Price != 400 {
			t.Fatalf("unexpected per-service prices: %s", w.Body.String())
		}
		if body.Deposit != 50 {
			t.Fatalf("expected deposit 50, got %v", body.Deposit)
		}
	})

	t.Run("empty cart is not fundable", func(t *testing.T) {
		w := postPreview(t, newQuoteRouter(), `{"services":[]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Fundable bool    `json:"fundable"`
			Total    float64 `json:"total"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Fundable || body.Total != 0 {
			t.Fatalf("expected empty unfundable cart, got %s", w.Body.String())
		}
	})
}
