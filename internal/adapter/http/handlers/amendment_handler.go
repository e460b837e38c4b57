package handlers

import (
	"net/http"

	request "boatworks/internal/adapter/http/dto/request"
	response "boatworks/internal/adapter/http/dto/response"
	"boatworks/internal/usecase"
	"boatworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAmendmentPayload = pkg.NewDomainErrorSimple("INVALID_AMENDMENT_INPUT", "Invalid amendment payload", http.StatusBadRequest)

// AmendmentHandler exposes the amendment workflow over HTTP.
type AmendmentHandler struct {
	usecase usecase.IAmendmentUseCase
}

func NewAmendmentHandler(uc usecase.IAmendmentUseCase) *AmendmentHandler {
	return &AmendmentHandler{usecase: uc}
}

func (h *AmendmentHandler) CreateAmendment(c *gin.Context) {
	var payload request.AmendmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAmendmentPayload.HTTPStatus, errInvalidAmendmentPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.RequestAmendment(c.Request.Context(), c.Param("id"), payload.ToRequest())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

func (h *AmendmentHandler) ListAmendments(c *gin.Context) {
	amendments, err := h.usecase.ListAmendments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, amendments)
}
