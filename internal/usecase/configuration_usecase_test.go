package usecase

import (
	"context"
	"errors"
	"testing"

	"boatworks/internal/domain/entities"
	"boatworks/internal/usecase/interfaces"
	mock_interfaces "boatworks/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func editableProject() entities.Project {
	return entities.Project{
		ID:      "prj-1",
		Name:    "Aurora 42",
		Status:  entities.ProjectStatusDraft,
		Version: 1,
		Configuration: entities.ConfigurationState{
			BoatModelVersionID: "bm-v1",
			VATRatePercent:     21,
			Items: []entities.ConfigurationItem{
				{ID: "item-hull", Name: "Hull", Quantity: 1, UnitPriceExclVAT: 6000, Included: true},
				{ID: "item-engine", Name: "Engine", Quantity: 1, UnitPriceExclVAT: 3500, Included: true},
			},
		},
	}
}

func expectRoundTrip(repo *mock_interfaces.MockIProjectRepository, stored entities.Project) {
	repo.EXPECT().GetByID(gomock.Any(), stored.ID).Return(stored, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
		func(_ context.Context, p entities.Project) (entities.Project, error) {
			p.Version++
			return p, nil
		},
	)
}

func TestConfigurationUseCase_AddItem(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewConfigurationUseCase(nil, nil)
		_, err := uc.AddItem(context.Background(), "prj-1", ConfigurationItemInput{Name: " ", Quantity: 0})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(ve.Fields) != 2 {
			t.Fatalf("expected 2 field errors, got %v", ve.Fields)
		}
	})

	t.Run("frozen configuration", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		p := editableProject()
		p.Configuration.IsFrozen = true
		repo.EXPECT().GetByID(gomock.Any(), "prj-1").Return(p, nil)

		_, err := uc.AddItem(context.Background(), "prj-1", ConfigurationItemInput{Name: "Winch", Quantity: 1})
		if !errors.Is(err, ErrConfigFrozen) {
			t.Fatalf("expected ErrConfigFrozen, got %v", err)
		}
	})

	t.Run("status not editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		p := editableProject()
		p.Status = entities.ProjectStatusInProduction
		repo.EXPECT().GetByID(gomock.Any(), "prj-1").Return(p, nil)

		_, err := uc.AddItem(context.Background(), "prj-1", ConfigurationItemInput{Name: "Winch", Quantity: 1})
		if !errors.Is(err, ErrStatusNotEditable) {
			t.Fatalf("expected ErrStatusNotEditable, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Project{}, nil)

		_, err := uc.AddItem(context.Background(), "missing", ConfigurationItemInput{Name: "Winch", Quantity: 1})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("success recalculates totals and defaults included", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		expectRoundTrip(repo, editableProject())

		updated, err := uc.AddItem(context.Background(), "prj-1", ConfigurationItemInput{
			Name:             "  Trim package  ",
			Quantity:         2,
			UnitPriceExclVAT: 250,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Configuration.Items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(updated.Configuration.Items))
		}
		added := updated.Configuration.Items[2]
		if added.ID == "" || added.Name != "Trim package" || !added.Included {
			t.Fatalf("unexpected item: %+v", added)
		}
		if updated.Configuration.SubtotalExclVAT != 10000 {
			t.Fatalf("subtotal = %v, want 10000", updated.Configuration.SubtotalExclVAT)
		}
		if updated.Configuration.TotalInclVAT != 12100 {
			t.Fatalf("total incl vat = %v, want 12100", updated.Configuration.TotalInclVAT)
		}
	})
}

func TestConfigurationUseCase_UpdateItem(t *testing.T) {
	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prj-1").Return(editableProject(), nil)

		qty := 2.0
		_, err := uc.UpdateItem(context.Background(), "prj-1", "missing", ConfigurationItemUpdate{Quantity: &qty})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("partial update leaves other fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		expectRoundTrip(repo, editableProject())

		price := 4000.0
		updated, err := uc.UpdateItem(context.Background(), "prj-1", "item-engine", ConfigurationItemUpdate{UnitPriceExclVAT: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		engine := updated.Configuration.Items[updated.Configuration.ItemByID("item-engine")]
		if engine.UnitPriceExclVAT != 4000 || engine.Name != "Engine" || engine.Quantity != 1 {
			t.Fatalf("unexpected item after update: %+v", engine)
		}
		if updated.Configuration.SubtotalExclVAT != 10000 {
			t.Fatalf("subtotal = %v, want 10000", updated.Configuration.SubtotalExclVAT)
		}
	})
}

func TestConfigurationUseCase_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProjectRepository(ctrl)
	uc := NewConfigurationUseCase(repo, nil)

	expectRoundTrip(repo, editableProject())

	updated, err := uc.RemoveItem(context.Background(), "prj-1", "item-engine")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Configuration.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(updated.Configuration.Items))
	}
	if updated.Configuration.SubtotalExclVAT != 6000 {
		t.Fatalf("subtotal = %v, want 6000", updated.Configuration.SubtotalExclVAT)
	}
}

func TestConfigurationUseCase_MoveItem(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prj-1").Return(editableProject(), nil)

		_, err := uc.MoveItem(context.Background(), "prj-1", "item-hull", 5)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("reorders without changing totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		expectRoundTrip(repo, editableProject())

		updated, err := uc.MoveItem(context.Background(), "prj-1", "item-engine", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Configuration.Items[0].ID != "item-engine" || updated.Configuration.Items[1].ID != "item-hull" {
			t.Fatalf("unexpected order: %+v", updated.Configuration.Items)
		}
	})
}

func TestConfigurationUseCase_UpdateConfiguration(t *testing.T) {
	t.Run("discount out of range", func(t *testing.T) {
		uc := NewConfigurationUseCase(nil, nil)
		pct := 101.0
		_, err := uc.UpdateConfiguration(context.Background(), "prj-1", ConfigurationUpdateInput{DiscountPercent: &pct})
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("boat model version is pinned at creation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prj-1").Return(editableProject(), nil)

		other := "bm-v2"
		_, err := uc.UpdateConfiguration(context.Background(), "prj-1", ConfigurationUpdateInput{BoatModelVersionID: &other})
		if !errors.Is(err, ErrBoatModelPinned) {
			t.Fatalf("expected ErrBoatModelPinned, got %v", err)
		}
	})

	t.Run("set discount recalculates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		expectRoundTrip(repo, editableProject())

		updated, err := uc.SetDiscount(context.Background(), "prj-1", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Configuration.DiscountAmount != 1000 || updated.Configuration.TotalExclVAT != 9000 {
			t.Fatalf("unexpected pricing: %+v", updated.Configuration)
		}
	})
}

func TestConfigurationUseCase_Freeze(t *testing.T) {
	t.Run("unknown trigger", func(t *testing.T) {
		uc := NewConfigurationUseCase(nil, nil)
		_, err := uc.Freeze(context.Background(), "prj-1", "whim", "eva", "")
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("already frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		p := editableProject()
		p.Configuration.IsFrozen = true
		repo.EXPECT().GetByID(gomock.Any(), "prj-1").Return(p, nil)

		_, err := uc.Freeze(context.Background(), "prj-1", entities.SnapshotTriggerManual, "eva", "")
		if !errors.Is(err, ErrAlreadyFrozen) {
			t.Fatalf("expected ErrAlreadyFrozen, got %v", err)
		}
	})

	t.Run("manual freeze snapshots and audits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		audit := mock_interfaces.NewMockIAuditLogger(ctrl)
		uc := NewConfigurationUseCase(repo, audit)

		expectRoundTrip(repo, editableProject())
		audit.EXPECT().Log(gomock.Any())

		updated, err := uc.Freeze(context.Background(), "prj-1", entities.SnapshotTriggerManual, "eva", "pre-production review")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.Configuration.IsFrozen || updated.Configuration.FrozenAt == nil || updated.Configuration.FrozenBy != "eva" {
			t.Fatalf("configuration not frozen: %+v", updated.Configuration)
		}
		if len(updated.ConfigurationSnapshots) != 1 {
			t.Fatalf("expected 1 snapshot, got %d", len(updated.ConfigurationSnapshots))
		}
		snap := updated.ConfigurationSnapshots[0]
		if snap.SnapshotNumber != 1 || snap.Trigger != entities.SnapshotTriggerManual || !snap.Data.IsFrozen {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})
}

func TestUpdateProject_VersionConflictRetry(t *testing.T) {
	t.Run("retries after a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prj-1").Return(editableProject(), nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Project{}, interfaces.ErrVersionConflict),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, p entities.Project) (entities.Project, error) {
					p.Version++
					return p, nil
				},
			),
		)

		updated, err := uc.RemoveItem(context.Background(), "prj-1", "item-engine")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(updated.Configuration.Items) != 1 {
			t.Fatalf("expected mutation to apply after retry")
		}
	})

	t.Run("aggregate deleted between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prj-1").Return(editableProject(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Project{}, nil)

		_, err := uc.RemoveItem(context.Background(), "prj-1", "item-engine")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("gives up after repeated conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewConfigurationUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prj-1").Return(editableProject(), nil).Times(maxUpdateAttempts)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Project{}, interfaces.ErrVersionConflict).Times(maxUpdateAttempts)

		_, err := uc.RemoveItem(context.Background(), "prj-1", "item-engine")
		if !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}
