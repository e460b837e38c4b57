package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boatworks/internal/adapter/http/handlers/mocks"
	"boatworks/internal/domain/entities"
	"boatworks/internal/domain/lifecycle"
	"boatworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		uc.EXPECT().CreateProject(gomock.Any(), gomock.Any()).Return(entities.Project{}, &usecase.ValidationError{Fields: []string{"name is required"}})

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"   ","boat_model_version_id":"bm-v1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects", h.CreateProject)

		now := time.Now().UTC()
		uc.EXPECT().CreateProject(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.CreateProjectInput) (entities.Project, error) {
				if in.Name != "Aurora 42" || in.BoatModelVersionID != "bm-v1" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Project{ID: "prj-1", Name: in.Name, Status: entities.ProjectStatusDraft, Version: 1, CreatedAt: now, UpdatedAt: now}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString(`{"name":"Aurora 42","boat_model_version_id":"bm-v1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "prj-1" || body["status"] != "draft" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().GetProject(gomock.Any(), "prj-missing").Return(entities.Project{}, usecase.ErrProjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/prj-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.GET("/v1/projects/:id", h.GetProject)

		uc.EXPECT().GetProject(gomock.Any(), "prj-1").Return(entities.Project{ID: "prj-1", Status: entities.ProjectStatusInProduction}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/prj-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "in_production" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_TransitionStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/transition", h.TransitionStatus)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/transition", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blocked transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/transition", h.TransitionStatus)

		uc.EXPECT().TransitionStatus(gomock.Any(), "prj-1", entities.ProjectStatusOrderConfirmed, gomock.Any()).
			Return(usecase.TransitionResult{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/transition", bytes.NewBufferString(`{"new_status":"order_confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success reports old and new status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/transition", h.TransitionStatus)

		uc.EXPECT().TransitionStatus(gomock.Any(), "prj-1", entities.ProjectStatusQuoted, usecase.TransitionOptions{Force: true, Reason: "client call", Actor: "sales"}).
			Return(usecase.TransitionResult{
				Project:              entities.Project{ID: "prj-1", Status: entities.ProjectStatusQuoted},
				OldStatus:            entities.ProjectStatusDraft,
				NewStatus:            entities.ProjectStatusQuoted,
				Warnings:             []string{"configuration has no items"},
				RequiresConfirmation: true,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/transition", bytes.NewBufferString(`{"new_status":"Quoted","force":true,"reason":"client call","actor":"sales"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["old_status"] != "draft" || body["new_status"] != "quoted" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["requires_confirmation"] != true {
			t.Fatalf("expected requires_confirmation, got: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_ValidateTransition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	r := gin.New()
	r.POST("/v1/projects/:id/transition/validate", h.ValidateTransition)

	uc.EXPECT().ValidateTransition(gomock.Any(), "prj-1", entities.ProjectStatusOrderConfirmed).
		Return(lifecycle.ValidationResult{
			IsValid:              false,
			Errors:               []string{"no accepted quote"},
			RequiresConfirmation: true,
			Effects:              lifecycle.MilestoneEffects(entities.ProjectStatusOrderConfirmed),
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/transition/validate", bytes.NewBufferString(`{"new_status":"order_confirmed"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["is_valid"] != false {
		t.Fatalf("expected is_valid=false, got: %s", w.Body.String())
	}
	if effects, ok := body["milestone_effects"].([]any); !ok || len(effects) == 0 {
		t.Fatalf("expected milestone effects in response: %s", w.Body.String())
	}
}

func TestProjectHandler_EmergencyUnlock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/unlock", h.EmergencyUnlock)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/unlock", bytes.NewBufferString(`{"actor":"ops"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not frozen maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/unlock", h.EmergencyUnlock)

		uc.EXPECT().EmergencyUnlock(gomock.Any(), "prj-1", "ops", "re-spec engine").Return(entities.Project{}, usecase.ErrNotFrozen)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/unlock", bytes.NewBufferString(`{"actor":"ops","reason":"re-spec engine"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapDomainError(t *testing.T) {
	if got := mapDomainError(usecase.ErrProjectNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapDomainError(usecase.ErrItemNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapDomainError(&usecase.ValidationError{Fields: []string{"x"}}); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapDomainError(usecase.ErrReasonRequired); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapDomainError(usecase.ErrUnauthorizedApprover); got.HTTPStatus != http.StatusForbidden {
		t.Fatalf("expected 403")
	}
	if got := mapDomainError(usecase.ErrInvalidTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapDomainError(usecase.ErrConfigFrozen); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapDomainError(usecase.ErrConcurrentUpdate); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapDomainError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
