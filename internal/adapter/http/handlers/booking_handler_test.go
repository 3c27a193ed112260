package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/brightwash/booking-service/internal/adapter/http/handlers/mocks"
	"github.com/brightwash/booking-service/internal/adapter/http/middleware"
	"github.com/brightwash/booking-service/internal/domain/catalog"
	"github.com/brightwash/booking-service/internal/domain/entities"
	"github.com/brightwash/booking-service/internal/usecase"
	"github.com/brightwash/booking-service/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/mock/gomock"
)

const testJWTSecret = "handler-test-secret"

func bearerToken(t *testing.T, sub, email, role string) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": sub, "email": email}
	if role != "" {
		claims["role"] = role
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return "Bearer " + signed
}

const createBookingBody = `{
	"contact": {"email": "ana@example.com", "address": "12 Oak St", "city": "Austin", "state": "TX", "zip": "78701"},
	"services": [{"service_id": "concrete", "size": "500"}],
	"is_guest": true
}`

func TestBookingHandler_CreateBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("field errors pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), true, "").
			Return(entities.Booking{}, pkg.NewFieldError(map[string]string{"email": "Please enter a valid email address"}))

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(createBookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Fields map[string]string `json:"fields"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Fields["email"] == "" {
			t.Fatalf("expected field error for email, got %s", w.Body.String())
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		uc.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), true, "").
			Return(entities.Booking{}, catalog.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(createBookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings", h.CreateBooking)

		now := time.Now().UTC()
		uc.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any(), true, "").
			Return(entities.Booking{
				ID:            "bk-1",
				CustomerEmail: "ana@example.com",
				TotalAmount:   199,
				DepositAmount: 50,
				IsGuest:       true,
				Status:        entities.BookingStatusPending,
				CreatedAt:     now,
				UpdatedAt:     now,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString(createBookingBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "bk-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestBookingHandler_GetBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.GET("/v1/bookings/:booking_id", h.GetBooking)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.GET("/v1/bookings/:booking_id", h.GetBooking)

		uc.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusPending}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bk-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBookingHandler_ListBookings(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", testJWTSecret)

	newRouter := func(uc *mocks.MockIBookingUseCase) *gin.Engine {
		h := NewBookingHandler(uc)
		r := gin.New()
		r.GET("/v1/bookings", middleware.Authenticate(), middleware.RequireAuth(), h.ListBookings)
		return r
	}

	t.Run("anonymous is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings?email=ana%40example.com", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("session email wins over the query for customers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings?email=other%40example.com", nil)
		req.Header.Set("Authorization", bearerToken(t, "u-1", "ana@example.com", ""))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("defaults to the session email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ListByEmail(gomock.Any(), "ana@example.com").
			Return([]entities.Booking{{ID: "bk-1"}, {ID: "bk-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
		req.Header.Set("Authorization", bearerToken(t, "u-1", "ana@example.com", ""))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 bookings, got %s", w.Body.String())
		}
	})

	t.Run("admins may list any email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().ListByEmail(gomock.Any(), "other@example.com").
			Return([]entities.Booking{{ID: "bk-3"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings?email=other%40example.com", nil)
		req.Header.Set("Authorization", bearerToken(t, "u-9", "admin@example.com", "admin"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBookingHandler_CancelBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", testJWTSecret)

	newRouter := func(uc *mocks.MockIBookingUseCase) *gin.Engine {
		h := NewBookingHandler(uc)
		r := gin.New()
		r.POST("/v1/bookings/:booking_id/cancel", middleware.Authenticate(), middleware.RequireAuth(), h.CancelBooking)
		return r
	}

	cancel := func(r *gin.Engine, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/cancel", nil)
		if token != "" {
			req.Header.Set("Authorization", token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("anonymous is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newRouter(uc)

		if w := cancel(r, ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("owner cancels own booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "bk-1").
			Return(entities.Booking{ID: "bk-1", CustomerEmail: "Ana@Example.com", Status: entities.BookingStatusPending}, nil)
		uc.EXPECT().Cancel(gomock.Any(), "bk-1").
			Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusCancelled}, nil)

		w := cancel(r, bearerToken(t, "u-1", "ana@example.com", ""))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("other customers are forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "bk-1").
			Return(entities.Booking{ID: "bk-1", CustomerEmail: "ana@example.com", Status: entities.BookingStatusPending}, nil)

		w := cancel(r, bearerToken(t, "u-2", "mallory@example.com", ""))
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admins cancel any booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), "bk-1").
			Return(entities.Booking{ID: "bk-1", CustomerEmail: "ana@example.com", Status: entities.BookingStatusPending}, nil)
		uc.EXPECT().Cancel(gomock.Any(), "bk-1").
			Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusCancelled}, nil)

		w := cancel(r, bearerToken(t, "u-9", "admin@example.com", "admin"))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBookingHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("confirm from wrong state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:booking_id/confirm", h.ConfirmBooking)

		uc.EXPECT().Confirm(gomock.Any(), "bk-1").Return(entities.Booking{}, usecase.ErrBookingNotConfirmable)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/confirm", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("complete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBookingUseCase(ctrl)
		h := NewBookingHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/:booking_id/complete", h.CompleteBooking)

		uc.EXPECT().Complete(gomock.Any(), "bk-1").Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusCompleted}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/bk-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapBookingError(t *testing.T) {
	if got := mapBookingError(usecase.ErrInvalidBookingID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBookingError(usecase.ErrBookingBelowMinimum); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBookingError(catalog.ErrServiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBookingError(usecase.ErrBookingNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBookingError(usecase.ErrBookingNotCancellable); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapBookingError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
