package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogicum-backend/internal/domains/category/service"
	"blogicum-backend/internal/shared/response"
	"blogicum-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryService service.ServiceInterface
}

func NewCategoryHandler(categoryService service.ServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List published categories (để client chọn khi tạo post)
// GET /api/v1/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.ListPublished(c.Request.Context())
	if err != nil {
		logger.Error("list categories failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, categories)
}
