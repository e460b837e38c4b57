package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boatworks/internal/adapter/http/handlers/mocks"
	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestConfigurationHandler_AddItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		h := NewConfigurationHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/configuration/items", h.AddItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/configuration/items", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("frozen configuration maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		h := NewConfigurationHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/configuration/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "prj-1", gomock.Any()).Return(entities.Project{}, usecase.ErrConfigFrozen)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/configuration/items", bytes.NewBufferString(`{"name":"Radar","quantity":1,"unit_price_excl_vat":1200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		h := NewConfigurationHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/configuration/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "prj-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, in usecase.ConfigurationItemInput) (entities.Project, error) {
				if in.Name != "Radar" || in.Quantity != 1 || in.UnitPriceExclVAT != 1200 {
					t.Fatalf("unexpected input: %+v", in)
				}
				p := entities.Project{ID: "prj-1", Status: entities.ProjectStatusDraft, Version: 2}
				p.Configuration.Items = []entities.ConfigurationItem{{ID: "item-1", Name: "Radar"}}
				return p, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/configuration/items", bytes.NewBufferString(`{"name":"Radar","quantity":1,"unit_price_excl_vat":1200}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestConfigurationHandler_MoveItem(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing new index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		h := NewConfigurationHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/configuration/items/:item_id/move", h.MoveItem)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/configuration/items/item-1/move", bytes.NewBufferString(`{}`))
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
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		h := NewConfigurationHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/configuration/items/:item_id/move", h.MoveItem)

		uc.EXPECT().MoveItem(gomock.Any(), "prj-1", "item-1", 0).Return(entities.Project{ID: "prj-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/configuration/items/item-1/move", bytes.NewBufferString(`{"new_index":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestConfigurationHandler_FreezeConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already frozen maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		h := NewConfigurationHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/configuration/freeze", h.FreezeConfiguration)

		uc.EXPECT().Freeze(gomock.Any(), "prj-1", entities.SnapshotTriggerManual, "eva", "").Return(entities.Project{}, usecase.ErrAlreadyFrozen)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/configuration/freeze", bytes.NewBufferString(`{"frozen_by":"eva"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("empty body is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConfigurationUseCase(ctrl)
		h := NewConfigurationHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/configuration/freeze", h.FreezeConfiguration)

		uc.EXPECT().Freeze(gomock.Any(), "prj-1", entities.SnapshotTriggerManual, "", "").
			Return(entities.Project{ID: "prj-1", Status: entities.ProjectStatusDraft}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/configuration/freeze", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestConfigurationHandler_ListSnapshots(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConfigurationUseCase(ctrl)
	h := NewConfigurationHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:id/configuration/snapshots", h.ListSnapshots)

	uc.EXPECT().Snapshots(gomock.Any(), "prj-1").Return([]entities.ConfigurationSnapshot{
		{ID: "snap-1", SnapshotNumber: 1, Trigger: entities.SnapshotTriggerManual},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/prj-1/configuration/snapshots", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
