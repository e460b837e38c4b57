package handlers

import (
	"net/http"

	request "boatworks/internal/adapter/http/dto/request"
	response "boatworks/internal/adapter/http/dto/response"
	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase"
	"boatworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIGURATION_INPUT", "Invalid configuration payload", http.StatusBadRequest)

// ConfigurationHandler handles HTTP requests against a project's priced
// configuration. All endpoints operate on the project aggregate; the frozen
// and editable guards live in the use case.
type ConfigurationHandler struct {
	usecase usecase.IConfigurationUseCase
}

func NewConfigurationHandler(uc usecase.IConfigurationUseCase) *ConfigurationHandler {
	return &ConfigurationHandler{usecase: uc}
}

func (h *ConfigurationHandler) AddItem(c *gin.Context) {
	var payload request.ConfigurationItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(p))
}

func (h *ConfigurationHandler) UpdateItem(c *gin.Context) {
	var payload request.ConfigurationItemUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), payload.ToUpdate())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ConfigurationHandler) RemoveItem(c *gin.Context) {
	p, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ConfigurationHandler) MoveItem(c *gin.Context) {
	var payload request.MoveItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.NewIndex == nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.MoveItem(c.Request.Context(), c.Param("id"), c.Param("item_id"), *payload.NewIndex)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ConfigurationHandler) UpdateConfiguration(c *gin.Context) {
	var payload request.ConfigurationUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.UpdateConfiguration(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ConfigurationHandler) SetDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.DiscountPercent == nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.SetDiscount(c.Request.Context(), c.Param("id"), *payload.DiscountPercent)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// FreezeConfiguration is the manual freeze endpoint; order confirmation
// freezes through the lifecycle orchestrator instead.
func (h *ConfigurationHandler) FreezeConfiguration(c *gin.Context) {
	var payload request.FreezeRequest
	_ = c.ShouldBindJSON(&payload)

	p, err := h.usecase.Freeze(c.Request.Context(), c.Param("id"), entities.SnapshotTriggerManual, payload.FrozenBy, payload.Reason)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ConfigurationHandler) ListSnapshots(c *gin.Context) {
	snaps, err := h.usecase.Snapshots(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, snaps)
}
