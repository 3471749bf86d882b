package handlers

import (
	"net/http"

	response "unimarket/internal/adapter/http/dto/response"
	"unimarket/internal/usecase"
	"unimarket/pkg"

	"github.com/gin-gonic/gin"
)

// SizeHandler serves the size table with the derived logo-scaling ratios.

type SizeHandler struct {
	usecase usecase.ISizeUseCase
}

func NewSizeHandler(uc usecase.ISizeUseCase) *SizeHandler {
	return &SizeHandler{usecase: uc}
}

func (h *SizeHandler) ListSizes(c *gin.Context) {
	sizes, err := h.usecase.ListSizes(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSizes(sizes))
}
