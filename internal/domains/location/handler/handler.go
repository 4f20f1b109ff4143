package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogicum-backend/internal/domains/location/service"
	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/logger"
)

type LocationHandler struct {
	locationService service.ServiceInterface
}

func NewLocationHandler(locationService service.ServiceInterface) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// List published locations
// GET /api/v1/locations
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locationService.ListPublished(c.Request.Context())
	if err != nil {
		logger.Error("list locations failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, locations)
}
