package handlers

import (
	"context"
	"net/http"

	request "boatworks/internal/adapter/http/dto/request"
	response "boatworks/internal/adapter/http/dto/response"
	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase"
	"boatworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for project quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	projectID := payload.ResolveProjectID()
	if projectID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateDraft(c.Request.Context(), projectID, payload.TotalExclVAT)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// UpdateQuoteTotal re-prices the draft quote from a recalculated
// configuration total.
func (h *QuoteHandler) UpdateQuoteTotal(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	projectID := payload.ResolveProjectID()
	if projectID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateTotalByProjectID(c.Request.Context(), projectID, payload.TotalExclVAT)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.SendByProjectID)
}

func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.AcceptByProjectID)
}

func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatusByRequest(c, h.usecase.RejectByProjectID)
}

func (h *QuoteHandler) GetQuoteByProjectID(c *gin.Context) {
	quote, err := h.usecase.GetByProjectID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) patchQuoteStatusByRequest(
	c *gin.Context,
	updater func(ctx context.Context, projectID string) (entities.Quote, error),
) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	projectID := payload.ResolveProjectID()
	if projectID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := updater(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}
