package entities

import (
	"reflect"
	"testing"
	"time"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{1.004, 1.00},
		{1.005, 1.01},
		{-1.005, -1.01},
		{12100, 12100},
	}
	for _, c := range cases {
		if got := Round2(c.in); got != c.want {
			t.Fatalf("Round2(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestConfigurationState_Recalculate(t *testing.T) {
	t.Run("full totals with vat", func(t *testing.T) {
		cfg := ConfigurationState{
			VATRatePercent: 21,
			Items: []ConfigurationItem{
				{ID: "hull", Quantity: 1, UnitPriceExclVAT: 6000, Included: true},
				{ID: "engine", Quantity: 1, UnitPriceExclVAT: 3500, Included: true},
				{ID: "trim", Quantity: 2, UnitPriceExclVAT: 250, Included: true},
			},
		}
		cfg.Recalculate()

		if cfg.SubtotalExclVAT != 10000 {
			t.Fatalf("subtotal = %v, want 10000", cfg.SubtotalExclVAT)
		}
		if cfg.TotalExclVAT != 10000 {
			t.Fatalf("total excl vat = %v, want 10000", cfg.TotalExclVAT)
		}
		if cfg.VATAmount != 2100 {
			t.Fatalf("vat amount = %v, want 2100", cfg.VATAmount)
		}
		if cfg.TotalInclVAT != 12100 {
			t.Fatalf("total incl vat = %v, want 12100.00", cfg.TotalInclVAT)
		}
	})

	t.Run("excluded items do not count toward the subtotal", func(t *testing.T) {
		cfg := ConfigurationState{
			Items: []ConfigurationItem{
				{ID: "a", Quantity: 1, UnitPriceExclVAT: 100, Included: true},
				{ID: "b", Quantity: 1, UnitPriceExclVAT: 999, Included: false},
			},
		}
		cfg.Recalculate()

		if cfg.SubtotalExclVAT != 100 {
			t.Fatalf("subtotal = %v, want 100", cfg.SubtotalExclVAT)
		}
		// The excluded line still gets its line total maintained.
		if cfg.Items[1].LineTotalExclVAT != 999 {
			t.Fatalf("excluded line total = %v, want 999", cfg.Items[1].LineTotalExclVAT)
		}
	})

	t.Run("discount amount rounds before subtraction", func(t *testing.T) {
		cfg := ConfigurationState{
			DiscountPercent: 10,
			Items: []ConfigurationItem{
				{ID: "a", Quantity: 1, UnitPriceExclVAT: 123.45, Included: true},
			},
		}
		cfg.Recalculate()

		// 123.45 * 10% = 12.345, rounded to 12.35 before subtracting.
		if cfg.DiscountAmount != 12.35 {
			t.Fatalf("discount amount = %v, want 12.35", cfg.DiscountAmount)
		}
		if cfg.TotalExclVAT != 111.10 {
			t.Fatalf("total excl vat = %v, want 111.10", cfg.TotalExclVAT)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		cfg := ConfigurationState{
			DiscountPercent: 7.5,
			VATRatePercent:  21,
			Items: []ConfigurationItem{
				{ID: "a", Quantity: 3, UnitPriceExclVAT: 19.99, Included: true},
			},
		}
		cfg.Recalculate()
		first := cfg.DeepCopy()
		cfg.Recalculate()
		if !reflect.DeepEqual(cfg, first) {
			t.Fatalf("second recalculation changed the state: %+v vs %+v", first, cfg)
		}
	})

	t.Run("empty configuration yields zero totals", func(t *testing.T) {
		cfg := ConfigurationState{VATRatePercent: 21, DiscountPercent: 5}
		cfg.Recalculate()
		if cfg.SubtotalExclVAT != 0 || cfg.TotalInclVAT != 0 {
			t.Fatalf("expected zero totals, got %+v", cfg)
		}
	})
}

func TestConfigurationState_DeepCopy(t *testing.T) {
	frozenAt := time.Now()
	orig := ConfigurationState{
		BoatModelVersionID: "bm-v1",
		IsFrozen:           true,
		FrozenAt:           &frozenAt,
		Items: []ConfigurationItem{
			{ID: "a", Name: "Hull", Quantity: 1, UnitPriceExclVAT: 100, Included: true},
		},
	}

	cp := orig.DeepCopy()
	cp.Items[0].UnitPriceExclVAT = 999
	cp.Items[0].Name = "Tampered"
	*cp.FrozenAt = frozenAt.Add(time.Hour)

	if orig.Items[0].UnitPriceExclVAT != 100 || orig.Items[0].Name != "Hull" {
		t.Fatalf("copy mutation leaked into original items: %+v", orig.Items[0])
	}
	if !orig.FrozenAt.Equal(frozenAt) {
		t.Fatalf("copy mutation leaked into original FrozenAt")
	}
}

func TestConfigurationState_ItemByID(t *testing.T) {
	cfg := ConfigurationState{
		Items: []ConfigurationItem{{ID: "a"}, {ID: "b"}},
	}
	if i := cfg.ItemByID("b"); i != 1 {
		t.Fatalf("ItemByID(b) = %d, want 1", i)
	}
	if i := cfg.ItemByID("missing"); i != -1 {
		t.Fatalf("ItemByID(missing) = %d, want -1", i)
	}
}
