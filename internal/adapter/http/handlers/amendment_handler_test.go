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

func TestAmendmentHandler_CreateAmendment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAmendmentUseCase(ctrl)
		h := NewAmendmentHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/amendments", h.CreateAmendment)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/amendments", bytes.NewBufferString(`{"approved_by":"pm","items_to_remove":["item-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unauthorized approver maps to forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAmendmentUseCase(ctrl)
		h := NewAmendmentHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/amendments", h.CreateAmendment)

		uc.EXPECT().RequestAmendment(gomock.Any(), "prj-1", gomock.Any()).Return(entities.Project{}, usecase.ErrUnauthorizedApprover)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/amendments", bytes.NewBufferString(`{"reason":"client dropped scope","approved_by":"intern","items_to_remove":["item-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("not frozen maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAmendmentUseCase(ctrl)
		h := NewAmendmentHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/amendments", h.CreateAmendment)

		uc.EXPECT().RequestAmendment(gomock.Any(), "prj-1", gomock.Any()).Return(entities.Project{}, usecase.ErrNotFrozen)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/amendments", bytes.NewBufferString(`{"reason":"client dropped scope","approved_by":"pm","items_to_remove":["item-1"]}`))
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
		uc := mocks.NewMockIAmendmentUseCase(ctrl)
		h := NewAmendmentHandler(uc)

		r := gin.New()
		r.POST("/v1/projects/:id/amendments", h.CreateAmendment)

		uc.EXPECT().RequestAmendment(gomock.Any(), "prj-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, req usecase.AmendmentRequest) (entities.Project, error) {
				if req.Reason != "client dropped scope" || req.ApprovedBy != "pm" || len(req.ItemsToRemove) != 1 {
					t.Fatalf("unexpected request: %+v", req)
				}
				p := entities.Project{ID: "prj-1", Status: entities.ProjectStatusOrderConfirmed, Version: 4}
				p.Amendments = []entities.ProjectAmendment{{ID: "amd-1", AmendmentNumber: 1, Type: entities.AmendmentTypeItemChange}}
				return p, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/prj-1/amendments", bytes.NewBufferString(`{"reason":"client dropped scope","approved_by":"pm","items_to_remove":["item-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["amendment_count"] != float64(1) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAmendmentHandler_ListAmendments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAmendmentUseCase(ctrl)
	h := NewAmendmentHandler(uc)

	r := gin.New()
	r.GET("/v1/projects/:id/amendments", h.ListAmendments)

	uc.EXPECT().ListAmendments(gomock.Any(), "prj-1").Return([]entities.ProjectAmendment{
		{ID: "amd-1", AmendmentNumber: 1, Type: entities.AmendmentTypeItemChange, PriceImpactExclVAT: -3500},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/prj-1/amendments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["price_impact_excl_vat"] != float64(-3500) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}
