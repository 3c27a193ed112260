package handlers

import (
	"errors"
	"net/http"

	response "github.com/brightwash/booking-service/internal/adapter/http/dto/response"
	"github.com/brightwash/booking-service/internal/domain/catalog"
	"github.com/brightwash/booking-service/pkg"

	"github.com/gin-gonic/gin"
)

var errServiceNotFound = pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)

// CatalogHandler serves the static service catalog.

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListServices godoc
// @Summary      List catalog services
// @Description  Returns every bookable service with its pricing options.
// @Tags         services
// @Produce      json
// @Success      200 {array} response.ServiceResponse
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromServices(catalog.All()))
}

// GetService godoc
// @Summary      Get one catalog service
// @Tags         services
// @Produce      json
// @Param        service_id path string true "Service id"
// @Success      200 {object} response.ServiceResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /services/{service_id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := catalog.ByID(c.Param("service_id"))
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			c.JSON(errServiceNotFound.HTTPStatus, errServiceNotFound.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}
