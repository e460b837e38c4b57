package handlers

import (
	"net/http"

	request "boatworks/internal/adapter/http/dto/request"
	response "boatworks/internal/adapter/http/dto/response"
	"boatworks/internal/domain/lifecycle"
	"boatworks/internal/usecase"
	"boatworks/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProjectPayload = pkg.NewDomainErrorSimple("INVALID_PROJECT_INPUT", "Invalid project payload", http.StatusBadRequest)

// ProjectHandler handles HTTP requests for the project lifecycle: creation,
// status transitions and the administrative escapes.
type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var payload request.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.CreateProject(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProject(p))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) TransitionStatus(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.TransitionStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus(), usecase.TransitionOptions{
		Force:  payload.Force,
		Reason: payload.Reason,
		Actor:  payload.Actor,
	})
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransitionResult(res))
}

// ValidateTransition is the dry-run counterpart of TransitionStatus: it
// reports errors, warnings and the confirmation flag without mutating
// anything, so the UI can ask the operator first.
func (h *ProjectHandler) ValidateTransition(c *gin.Context) {
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	res, err := h.usecase.ValidateTransition(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_valid":              res.IsValid,
		"errors":                res.Errors,
		"warnings":              res.Warnings,
		"requires_confirmation": res.RequiresConfirmation,
		"milestone_effects":     effectDescriptions(res.Effects),
	})
}

func effectDescriptions(effects []lifecycle.MilestoneEffect) []gin.H {
	out := make([]gin.H, 0, len(effects))
	for _, eff := range effects {
		out = append(out, gin.H{"type": string(eff.Type), "description": eff.Description})
	}
	return out
}

func (h *ProjectHandler) ListBOMSnapshots(c *gin.Context) {
	p, err := h.usecase.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, p.BOMSnapshots)
}

func (h *ProjectHandler) RegenerateBOM(c *gin.Context) {
	var payload request.ArchiveRequest // actor only
	_ = c.ShouldBindJSON(&payload)

	p, err := h.usecase.RegenerateBOM(c.Request.Context(), c.Param("id"), payload.Actor)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, p.BOMSnapshots)
}

func (h *ProjectHandler) ArchiveProject(c *gin.Context) {
	var payload request.ArchiveRequest
	_ = c.ShouldBindJSON(&payload)

	p, err := h.usecase.Archive(c.Request.Context(), c.Param("id"), payload.Actor)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

func (h *ProjectHandler) EmergencyUnlock(c *gin.Context) {
	var payload request.UnlockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProjectPayload.HTTPStatus, errInvalidProjectPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.EmergencyUnlock(c.Request.Context(), c.Param("id"), payload.Actor, payload.Reason)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}
