package handlers

import (
	"net/http"

	"github.com/brightwash/booking-service/internal/usecase"
	"github.com/brightwash/booking-service/pkg"

	"github.com/gin-gonic/gin"
)

// MetricsHandler serves conversion analytics to admin users.

type MetricsHandler struct {
	usecase usecase.IMetricsUseCase
}

func NewMetricsHandler(uc usecase.IMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{usecase: uc}
}

// Conversion godoc
// @Summary      Quote-to-booking conversion metrics
// @Tags         metrics
// @Produce      json
// @Security     Bearer
// @Success      200 {object} usecase.ConversionMetrics
// @Failure      500 {object} pkg.HTTPError
// @Router       /metrics/conversion [get]
func (h *MetricsHandler) Conversion(c *gin.Context) {
	m, err := h.usecase.Conversion(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, m)
}
