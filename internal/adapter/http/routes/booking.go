package routes

import (
	"github.com/brightwash/booking-service/internal/adapter/http/handlers"
	"github.com/brightwash/booking-service/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathQuotes   = "/quotes"
	PathFlow     = "/flow"
	PathBookings = "/bookings"
	PathPayments = "/payments"
	PathMetrics  = "/metrics"
)

func addBookingRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	quoteHandler *handlers.QuoteHandler,
	flowHandler *handlers.FlowHandler,
	bookingHandler *handlers.BookingHandler,
	paymentHandler *handlers.PaymentHandler,
	metricsHandler *handlers.MetricsHandler,
) {
	services := rg.Group(PathServices)
	{
		services.GET("", catalogHandler.ListServices)
		services.GET("/:service_id", catalogHandler.GetService)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/preview", quoteHandler.PreviewQuote)
	}

	flow := rg.Group(PathFlow)
	{
		flow.POST("", flowHandler.StartFlow)
		flow.GET("/:flow_id", flowHandler.GetFlow)
		flow.POST("/:flow_id/select", flowHandler.SelectService)
		flow.POST("/:flow_id/configure", flowHandler.ConfigureService)
		flow.POST("/:flow_id/cancel-configuration", flowHandler.CancelConfiguration)
		flow.POST("/:flow_id/remove", flowHandler.RemoveQuote)
		flow.POST("/:flow_id/continue", flowHandler.Continue)
		flow.POST("/:flow_id/guest", flowHandler.ContinueAsGuest)
		flow.POST("/:flow_id/signin", flowHandler.SignIn)
		flow.POST("/:flow_id/back", flowHandler.Back)
		flow.POST("/:flow_id/contact", flowHandler.SubmitContact)
		flow.POST("/:flow_id/payment-result", flowHandler.PaymentResult)
	}

	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", middleware.RequireAuth(), bookingHandler.ListBookings)
		bookings.GET("/:booking_id", bookingHandler.GetBooking)
		bookings.POST("/:booking_id/cancel", middleware.RequireAuth(), bookingHandler.CancelBooking)
		bookings.POST("/:booking_id/confirm", middleware.RequireAdmin(), bookingHandler.ConfirmBooking)
		bookings.POST("/:booking_id/complete", middleware.RequireAdmin(), bookingHandler.CompleteBooking)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:booking_id/deposit", paymentHandler.CreateDeposit)
		payments.POST("/:booking_id/confirm", paymentHandler.ConfirmPayment)
		payments.GET("/:booking_id", paymentHandler.ListPayments)
	}

	metrics := rg.Group(PathMetrics)
	metrics.Use(middleware.RequireAdmin())
	{
		metrics.GET("/conversion", metricsHandler.Conversion)
	}
}
