package estimator

import (
	"errors"
	"math"
	"testing"

	"brickonomics/internal/domain/entities"
)

func defaultReference() ReferenceData {
	return ReferenceData{
		Materials: []entities.Material{
			{ID: "m1", Name: "Portland Cement", Category: "cement", Unit: "bag", BaseRate: 350},
			{ID: "m2", Name: "Steel Reinforcement", Category: "steel", Unit: "kg", BaseRate: 65},
			{ID: "m3", Name: "Red Clay Bricks", Category: "bricks", Unit: "piece", BaseRate: 8},
			{ID: "m4", Name: "River Sand", Category: "sand", Unit: "cu.m", BaseRate: 2800},
			{ID: "m5", Name: "Crushed Stone Aggregate", Category: "aggregate", Unit: "cu.m", BaseRate: 2200},
		},
		LaborRates: []entities.LaborRate{
			{ID: "l1", Name: "Skilled Mason", Category: "skilled", BaseRate: 800},
			{ID: "l2", Name: "Unskilled Labor", Category: "unskilled", BaseRate: 500},
			{ID: "l3", Name: "Site Supervisor", Category: "supervisor", BaseRate: 1200},
		},
	}
}

func TestEstimate_ResidentialScenario(t *testing.T) {
	est, err := NewDefault().Estimate(entities.ProjectTypeResidential, 1000, defaultReference())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantMaterials := []entities.MaterialLine{
		{Category: "cement", Name: "Portland Cement", Quantity: 400, Unit: "bag", Rate: 350, Total: 140000},
		{Category: "steel", Name: "Steel Reinforcement", Quantity: 3500, Unit: "kg", Rate: 65, Total: 227500},
		{Category: "bricks", Name: "Red Clay Bricks", Quantity: 8000, Unit: "piece", Rate: 8, Total: 64000},
		{Category: "sand", Name: "River Sand", Quantity: 20, Unit: "cu.m", Rate: 2800, Total: 56000},
		{Category: "aggregate", Name: "Crushed Stone Aggregate", Quantity: 25, Unit: "cu.m", Rate: 2200, Total: 55000},
	}
	if len(est.Materials) != len(wantMaterials) {
		t.Fatalf("materials=%d, want %d", len(est.Materials), len(wantMaterials))
	}
	for i, want := range wantMaterials {
		if est.Materials[i] != want {
			t.Fatalf("materials[%d]=%+v, want %+v", i, est.Materials[i], want)
		}
	}

	wantLabor := []entities.LaborLine{
		{Category: "skilled", Role: "Skilled Mason", Hours: 500, Rate: 800, Total: 400000},
		{Category: "unskilled", Role: "Unskilled Labor", Hours: 1000, Rate: 500, Total: 500000},
		{Category: "supervisor", Role: "Site Supervisor", Hours: 200, Rate: 1200, Total: 240000},
	}
	if len(est.Labor) != len(wantLabor) {
		t.Fatalf("labor=%d, want %d", len(est.Labor), len(wantLabor))
	}
	for i, want := range wantLabor {
		if est.Labor[i] != want {
			t.Fatalf("labor[%d]=%+v, want %+v", i, est.Labor[i], want)
		}
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"materialTotal", est.MaterialTotal, 542500},
		{"laborTotal", est.LaborTotal, 1140000},
		{"subtotal", est.Subtotal, 1682500},
		{"overhead", est.Overhead, 252375},
		{"transportation", est.Transportation, 168250},
		{"totalCost", est.TotalCost, 2103125},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Fatalf("%s=%v, want %v", c.name, c.got, c.want)
		}
	}
	if est.ProjectType != entities.ProjectTypeResidential || est.Area != 1000 {
		t.Fatalf("unexpected header: %+v", est)
	}
}

func TestEstimate_TotalsInvariants(t *testing.T) {
	ref := defaultReference()
	areas := []float64{1, 12.5, 333.33, 1000, 2750.75}

	for _, pt := range entities.ProjectTypes() {
		for _, area := range areas {
			est, err := NewDefault().Estimate(pt, area, ref)
			if err != nil {
				t.Fatalf("%s/%v: %v", pt, area, err)
			}
			if len(est.Materials) != 5 || len(est.Labor) != 3 {
				t.Fatalf("%s/%v: expected full breakdown, got %d/%d lines", pt, area, len(est.Materials), len(est.Labor))
			}

			sub := est.MaterialTotal + est.LaborTotal
			if got := Round(sub * 0.15); math.Abs(est.Overhead-got) > 0.011 {
				t.Fatalf("%s/%v: overhead=%v, want %v", pt, area, est.Overhead, got)
			}
			if got := Round(sub * 0.10); math.Abs(est.Transportation-got) > 0.011 {
				t.Fatalf("%s/%v: transportation=%v, want %v", pt, area, est.Transportation, got)
			}
			if got := Round(sub + est.Overhead + est.Transportation); math.Abs(est.TotalCost-got) > 0.011 {
				t.Fatalf("%s/%v: totalCost=%v, want %v", pt, area, est.TotalCost, got)
			}

			var lines float64
			for _, m := range est.Materials {
				lines += m.Total
			}
			if math.Abs(lines-est.MaterialTotal) > 1e-6 {
				t.Fatalf("%s/%v: materialTotal=%v, lines sum %v", pt, area, est.MaterialTotal, lines)
			}
		}
	}
}

func TestEstimate_FollowsTableOrder(t *testing.T) {
	ref := defaultReference()
	// Reverse the catalog; output order must not depend on it.
	for i, j := 0, len(ref.Materials)-1; i < j; i, j = i+1, j-1 {
		ref.Materials[i], ref.Materials[j] = ref.Materials[j], ref.Materials[i]
	}

	est, err := NewDefault().Estimate(entities.ProjectTypeCommercial, 100, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"cement", "steel", "bricks", "sand", "aggregate"}
	for i, cat := range want {
		if est.Materials[i].Category != cat {
			t.Fatalf("materials[%d].Category=%q, want %q", i, est.Materials[i].Category, cat)
		}
	}
}

func TestEstimate_DoublingAreaDoublesEverything(t *testing.T) {
	ref := defaultReference()
	for _, pt := range entities.ProjectTypes() {
		base, err := NewDefault().Estimate(pt, 1000, ref)
		if err != nil {
			t.Fatalf("%s: %v", pt, err)
		}
		doubled, err := NewDefault().Estimate(pt, 2000, ref)
		if err != nil {
			t.Fatalf("%s: %v", pt, err)
		}

		for i := range base.Materials {
			if doubled.Materials[i].Quantity != 2*base.Materials[i].Quantity || doubled.Materials[i].Total != 2*base.Materials[i].Total {
				t.Fatalf("%s: material %d not doubled: %+v vs %+v", pt, i, base.Materials[i], doubled.Materials[i])
			}
		}
		for i := range base.Labor {
			if doubled.Labor[i].Hours != 2*base.Labor[i].Hours || doubled.Labor[i].Total != 2*base.Labor[i].Total {
				t.Fatalf("%s: labor %d not doubled: %+v vs %+v", pt, i, base.Labor[i], doubled.Labor[i])
			}
		}
		if doubled.TotalCost != 2*base.TotalCost {
			t.Fatalf("%s: totalCost %v, want %v", pt, doubled.TotalCost, 2*base.TotalCost)
		}
	}
}

func TestEstimate_SkipsMissingCategories(t *testing.T) {
	ref := defaultReference()
	ref.Materials = ref.Materials[1:]   // no cement
	ref.LaborRates = ref.LaborRates[:2] // no supervisor

	est, err := NewDefault().Estimate(entities.ProjectTypeResidential, 1000, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(est.Materials) != 4 || est.Materials[0].Category != "steel" {
		t.Fatalf("unexpected materials: %+v", est.Materials)
	}
	if len(est.Labor) != 2 {
		t.Fatalf("unexpected labor: %+v", est.Labor)
	}
	if est.MaterialTotal != 402500 {
		t.Fatalf("materialTotal=%v, want 402500", est.MaterialTotal)
	}
	if est.LaborTotal != 900000 {
		t.Fatalf("laborTotal=%v, want 900000", est.LaborTotal)
	}
}

func TestEstimate_CategoryMatchIsExact(t *testing.T) {
	ref := ReferenceData{
		Materials:  []entities.Material{{Name: "Cement", Category: "Cement", BaseRate: 350}},
		LaborRates: []entities.LaborRate{{Name: "Mason", Category: " skilled", BaseRate: 800}},
	}
	est, err := NewDefault().Estimate(entities.ProjectTypeResidential, 1000, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(est.Materials) != 0 || len(est.Labor) != 0 || est.TotalCost != 0 {
		t.Fatalf("expected empty estimate, got %+v", est)
	}
}

func TestEstimate_FirstMatchWins(t *testing.T) {
	ref := defaultReference()
	ref.Materials = append([]entities.Material{{Name: "Premium Cement", Category: "cement", Unit: "bag", BaseRate: 500}}, ref.Materials...)

	est, err := NewDefault().Estimate(entities.ProjectTypeResidential, 10, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.Materials[0].Name != "Premium Cement" || est.Materials[0].Total != 2000 {
		t.Fatalf("unexpected first line: %+v", est.Materials[0])
	}
}

func TestEstimate_RoundsHalfUp(t *testing.T) {
	ref := ReferenceData{
		Materials:  []entities.Material{{Name: "Cement", Category: "cement", Unit: "bag", BaseRate: 1}},
		LaborRates: []entities.LaborRate{},
	}
	// 0.4 * 0.125 = 0.05 -> overhead 0.0075, transportation 0.005
	est, err := NewDefault().Estimate(entities.ProjectTypeResidential, 0.125, ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if est.MaterialTotal != 0.05 {
		t.Fatalf("materialTotal=%v", est.MaterialTotal)
	}
	if est.Overhead != 0.01 || est.Transportation != 0.01 {
		t.Fatalf("overhead=%v transportation=%v, want 0.01 each", est.Overhead, est.Transportation)
	}
	if est.TotalCost != 0.07 {
		t.Fatalf("totalCost=%v, want 0.07", est.TotalCost)
	}
}

func TestEstimate_Errors(t *testing.T) {
	ref := defaultReference()

	cases := []struct {
		name string
		pt   entities.ProjectType
		area float64
		ref  ReferenceData
		want error
	}{
		{name: "unknown type", pt: "luxury", area: 100, ref: ref, want: ErrInvalidProjectType},
		{name: "empty type", pt: "", area: 100, ref: ref, want: ErrInvalidProjectType},
		{name: "zero area", pt: entities.ProjectTypeResidential, area: 0, ref: ref, want: ErrInvalidArea},
		{name: "negative area", pt: entities.ProjectTypeResidential, area: -5, ref: ref, want: ErrInvalidArea},
		{name: "nan area", pt: entities.ProjectTypeResidential, area: math.NaN(), ref: ref, want: ErrInvalidArea},
		{name: "materials not retrieved", pt: entities.ProjectTypeResidential, area: 100, ref: ReferenceData{LaborRates: ref.LaborRates}, want: ErrMissingReferenceData},
		{name: "labor not retrieved", pt: entities.ProjectTypeResidential, area: 100, ref: ReferenceData{Materials: ref.Materials}, want: ErrMissingReferenceData},
		{
			name: "non-finite rate",
			pt:   entities.ProjectTypeResidential,
			area: 100,
			ref:  ReferenceData{Materials: []entities.Material{{Category: "cement", BaseRate: math.Inf(1)}}, LaborRates: []entities.LaborRate{}},
			want: ErrInternalComputation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			est, err := NewDefault().Estimate(tc.pt, tc.area, tc.ref)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if est.Materials != nil || est.TotalCost != 0 {
				t.Fatalf("expected no partial result, got %+v", est)
			}
		})
	}
}

func TestEstimate_DoesNotMutateReference(t *testing.T) {
	ref := defaultReference()
	before := defaultReference()

	if _, err := NewDefault().Estimate(entities.ProjectTypeIndustrial, 1500, ref); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range ref.Materials {
		if ref.Materials[i] != before.Materials[i] {
			t.Fatalf("material %d mutated", i)
		}
	}
	for i := range ref.LaborRates {
		if ref.LaborRates[i] != before.LaborRates[i] {
			t.Fatalf("labor rate %d mutated", i)
		}
	}
}

func TestRound(t *testing.T) {
	cases := map[float64]float64{
		1.005:   1.01,
		2.675:   2.68,
		-1.005:  -1.01,
		10:      10,
		0.004:   0,
		1234.56: 1234.56,
	}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Fatalf("Round(%v)=%v, want %v", in, got, want)
		}
	}
	if !math.IsNaN(Round(math.NaN())) {
		t.Fatalf("NaN must pass through")
	}
}
