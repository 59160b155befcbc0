package estimation

import (
	"math"
	"testing"

	"paint_estimator/internal/domain/entities"
)

const epsilon = 1e-9

var (
	wallEconomy  = entities.PaintProduct{ID: "wall_economy", Category: entities.ProductCategoryWall, PricePerLitre: 3.50, CoveragePerLitre: 10}
	wallStandard = entities.PaintProduct{ID: "wall_standard", Category: entities.ProductCategoryWall, PricePerLitre: 9.00, CoveragePerLitre: 13}
	trimGloss    = entities.PaintProduct{ID: "trim_gloss", Category: entities.ProductCategoryTrim, PricePerLitre: 16.00, CoveragePerLitre: 15}
	primer       = entities.PaintProduct{ID: entities.PrimerProductID, Category: entities.ProductCategoryPrimer, PricePerLitre: 12.00, CoveragePerLitre: 12}
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestEstimate_DimensionalScenario(t *testing.T) {
	opts := entities.EstimationOptions{Coats: 2, NumDoors: 1, NumWindows: 1, IncludeCeiling: true}
	res := Estimate(entities.Dimensional{Width: 4, Length: 6, Height: 2.4}, wallStandard, nil, opts, 16, nil)

	if !almostEqual(res.GrossWallArea, 72) {
		t.Fatalf("expected gross area 72, got %v", res.GrossWallArea)
	}
	if !almostEqual(res.PaintableArea, 68.5) {
		t.Fatalf("expected paintable area 68.5, got %v", res.PaintableArea)
	}
	if res.WallPaint.LitresNeeded != 11 {
		t.Fatalf("expected 11 litres, got %d", res.WallPaint.LitresNeeded)
	}
	if !almostEqual(res.WallPaint.Cost, 99) {
		t.Fatalf("expected £99.00, got %v", res.WallPaint.Cost)
	}
	if res.WallPaint.Product.ID != "wall_standard" {
		t.Fatalf("unexpected product: %+v", res.WallPaint.Product)
	}
	if res.TrimPaint != nil || res.PrimerPaint != nil {
		t.Fatalf("expected no trim/primer layers, got %+v / %+v", res.TrimPaint, res.PrimerPaint)
	}
	if !almostEqual(res.TotalMaterialsCost, 99) {
		t.Fatalf("expected total materials 99, got %v", res.TotalMaterialsCost)
	}
	if !almostEqual(res.LaborCost.Min, 822) || !almostEqual(res.LaborCost.Max, 1370) {
		t.Fatalf("unexpected labor band: %+v", res.LaborCost)
	}
	if !almostEqual(res.PreciseLaborCost, 1096) {
		t.Fatalf("expected precise labor 1096, got %v", res.PreciseLaborCost)
	}
	if res.Mode != entities.InputModeDimensions || res.PerimeterEstimated {
		t.Fatalf("unexpected mode flags: mode=%s estimated=%v", res.Mode, res.PerimeterEstimated)
	}
	if !almostEqual(res.Perimeter, 20) {
		t.Fatalf("expected perimeter 20, got %v", res.Perimeter)
	}
}

func TestEstimate_AreaOnlyScenario(t *testing.T) {
	opts := entities.EstimationOptions{Coats: 1}
	res := Estimate(entities.AreaOnly{TotalWallArea: 40}, wallEconomy, nil, opts, 16, nil)

	if res.WallPaint.LitresNeeded != 4 {
		t.Fatalf("expected 4 litres, got %d", res.WallPaint.LitresNeeded)
	}
	if !almostEqual(res.WallPaint.Cost, 14) {
		t.Fatalf("expected £14.00, got %v", res.WallPaint.Cost)
	}
	if res.Mode != entities.InputModeArea || !res.PerimeterEstimated {
		t.Fatalf("expected area mode with estimated perimeter, got %+v", res)
	}
	if !almostEqual(res.Perimeter, 40/ReferenceWallHeight) {
		t.Fatalf("expected perimeter %v, got %v", 40/ReferenceWallHeight, res.Perimeter)
	}
}

func TestEstimate_AreaOnlyIgnoresCeilingFlag(t *testing.T) {
	for _, ceiling := range []bool{false, true} {
		res := Estimate(entities.AreaOnly{TotalWallArea: 40}, wallEconomy, nil, entities.EstimationOptions{Coats: 2, IncludeCeiling: ceiling}, 16, nil)
		if !almostEqual(res.GrossWallArea, 40) {
			t.Fatalf("include_ceiling=%v: expected gross area 40, got %v", ceiling, res.GrossWallArea)
		}
	}
}

func TestEstimate_CeilingAddsFloorArea(t *testing.T) {
	rooms := []entities.Dimensional{
		{Width: 4, Length: 6, Height: 2.4},
		{Width: 3.3, Length: 2.7, Height: 2.55},
		{Width: 0, Length: 5, Height: 3},
		{Width: 10.25, Length: 7.5, Height: 4.1},
	}
	for _, room := range rooms {
		without := Estimate(room, wallStandard, nil, entities.EstimationOptions{Coats: 1}, 16, nil)
		with := Estimate(room, wallStandard, nil, entities.EstimationOptions{Coats: 1, IncludeCeiling: true}, 16, nil)
		if !almostEqual(with.GrossWallArea, without.GrossWallArea+room.Width*room.Length) {
			t.Fatalf("%+v: ceiling area mismatch, with=%v without=%v", room, with.GrossWallArea, without.GrossWallArea)
		}
	}
}

func TestEstimate_DeductionsFloorAtZero(t *testing.T) {
	opts := entities.EstimationOptions{Coats: 2, NumDoors: 10, NumWindows: 10}
	res := Estimate(entities.AreaOnly{TotalWallArea: 12}, wallStandard, &trimGloss, opts, 16, nil)

	if res.PaintableArea != 0 {
		t.Fatalf("expected paintable area floored at 0, got %v", res.PaintableArea)
	}
	if res.WallPaint.LitresNeeded != 0 || res.WallPaint.Cost != 0 {
		t.Fatalf("expected no wall paint, got %+v", res.WallPaint)
	}
	if res.LaborCost.Min != 0 || res.LaborCost.Max != 0 || res.PreciseLaborCost != 0 {
		t.Fatalf("expected zero labor, got %+v precise=%v", res.LaborCost, res.PreciseLaborCost)
	}
	if res.TrimPaint == nil || res.TrimPaint.LitresNeeded < 1 {
		t.Fatalf("expected trim layer with at least 1 litre, got %+v", res.TrimPaint)
	}
}

func TestEstimate_WallLitresFormula(t *testing.T) {
	cases := []struct {
		area     float64
		coats    int
		coverage float64
	}{
		{area: 40, coats: 1, coverage: 10},
		{area: 41, coats: 1, coverage: 10},
		{area: 68.5, coats: 2, coverage: 13},
		{area: 68.5, coats: 3, coverage: 14},
		{area: 7.25, coats: 2, coverage: 12},
	}
	for _, tc := range cases {
		product := entities.PaintProduct{ID: "p", PricePerLitre: 5, CoveragePerLitre: tc.coverage}
		res := Estimate(entities.AreaOnly{TotalWallArea: tc.area}, product, nil, entities.EstimationOptions{Coats: tc.coats}, 16, nil)

		want := int(math.Ceil(tc.area * float64(tc.coats) / tc.coverage))
		if res.WallPaint.LitresNeeded != want {
			t.Fatalf("%+v: expected %d litres, got %d", tc, want, res.WallPaint.LitresNeeded)
		}
		if !almostEqual(res.WallPaint.Cost, float64(want)*5) {
			t.Fatalf("%+v: unexpected cost %v", tc, res.WallPaint.Cost)
		}
	}
}

func TestEstimate_DoublingCoats(t *testing.T) {
	for _, area := range []float64{5, 12.5, 40, 68.5, 133} {
		one := Estimate(entities.AreaOnly{TotalWallArea: area}, wallStandard, nil, entities.EstimationOptions{Coats: 1}, 16, nil)
		two := Estimate(entities.AreaOnly{TotalWallArea: area}, wallStandard, nil, entities.EstimationOptions{Coats: 2}, 16, nil)

		// Only rounding separates the two: ceil(2x) is between 2*ceil(x)-1 and 2*ceil(x).
		if two.WallPaint.LitresNeeded > 2*one.WallPaint.LitresNeeded || two.WallPaint.LitresNeeded < 2*one.WallPaint.LitresNeeded-1 {
			t.Fatalf("area %v: 1 coat=%d litres, 2 coats=%d litres", area, one.WallPaint.LitresNeeded, two.WallPaint.LitresNeeded)
		}
	}
}

func TestEstimate_TrimScenario(t *testing.T) {
	opts := entities.EstimationOptions{Coats: 2}
	res := Estimate(entities.Dimensional{Width: 4, Length: 6, Height: 2.4}, wallStandard, &trimGloss, opts, 16, nil)

	if res.TrimPaint == nil {
		t.Fatal("expected trim layer")
	}
	if res.TrimPaint.LitresNeeded != 1 {
		t.Fatalf("expected 1 litre, got %d", res.TrimPaint.LitresNeeded)
	}
	if !almostEqual(res.TrimPaint.Cost, 16) {
		t.Fatalf("expected £16.00, got %v", res.TrimPaint.Cost)
	}
	if !almostEqual(res.TotalMaterialsCost, res.WallPaint.Cost+16) {
		t.Fatalf("expected total %v, got %v", res.WallPaint.Cost+16, res.TotalMaterialsCost)
	}
}

func TestEstimate_TrimUsesOpeningsAndCoats(t *testing.T) {
	// perimeter 40 m → skirting 6 m², 4 openings → 2 m², 3 coats → 24 m² / 15 → 2 litres.
	opts := entities.EstimationOptions{Coats: 3, NumDoors: 2, NumWindows: 2}
	res := Estimate(entities.Dimensional{Width: 8, Length: 12, Height: 2.4}, wallStandard, &trimGloss, opts, 16, nil)

	if res.TrimPaint.LitresNeeded != 2 {
		t.Fatalf("expected 2 litres, got %d", res.TrimPaint.LitresNeeded)
	}
}

func TestEstimate_TrimAndPrimerMinimumPurchase(t *testing.T) {
	opts := entities.EstimationOptions{Coats: 1, IncludePrimer: true}
	res := Estimate(entities.AreaOnly{TotalWallArea: 0.1}, wallStandard, &trimGloss, opts, 16, &primer)

	if res.TrimPaint.LitresNeeded != 1 || res.PrimerPaint.LitresNeeded != 1 {
		t.Fatalf("expected 1 litre floors, got trim=%d primer=%d", res.TrimPaint.LitresNeeded, res.PrimerPaint.LitresNeeded)
	}

	zeroCoats := Estimate(entities.Dimensional{Width: 3, Length: 3, Height: 2.4}, wallStandard, &trimGloss, entities.EstimationOptions{Coats: 0, IncludePrimer: true}, 16, &primer)
	if zeroCoats.TrimPaint.LitresNeeded != 1 || zeroCoats.PrimerPaint.LitresNeeded != 1 {
		t.Fatalf("expected 1 litre floors with zero coverage, got %+v / %+v", zeroCoats.TrimPaint, zeroCoats.PrimerPaint)
	}
}

func TestEstimate_PrimerSharesTrimArea(t *testing.T) {
	opts := entities.EstimationOptions{Coats: 2, NumDoors: 3, NumWindows: 4, IncludePrimer: true}
	room := entities.Dimensional{Width: 10, Length: 15, Height: 2.4}
	res := Estimate(room, wallStandard, &trimGloss, opts, 16, &primer)

	// perimeter 50 → 7.5 m² skirting + 3.5 m² frames = 11 m², 2 coats = 22 m².
	if res.TrimPaint.LitresNeeded != 2 {
		t.Fatalf("expected trim 2 litres (22/15), got %d", res.TrimPaint.LitresNeeded)
	}
	if res.PrimerPaint.LitresNeeded != 2 {
		t.Fatalf("expected primer 2 litres (22/12), got %d", res.PrimerPaint.LitresNeeded)
	}
	if !almostEqual(res.PrimerPaint.Cost, 24) || res.PrimerPaint.Product.ID != entities.PrimerProductID {
		t.Fatalf("unexpected primer layer: %+v", res.PrimerPaint)
	}
	want := res.WallPaint.Cost + res.TrimPaint.Cost + res.PrimerPaint.Cost
	if !almostEqual(res.TotalMaterialsCost, want) {
		t.Fatalf("expected total %v, got %v", want, res.TotalMaterialsCost)
	}
}

func TestEstimate_PrimerRequiresFlagAndProduct(t *testing.T) {
	room := entities.Dimensional{Width: 4, Length: 6, Height: 2.4}

	notRequested := Estimate(room, wallStandard, nil, entities.EstimationOptions{Coats: 2}, 16, &primer)
	if notRequested.PrimerPaint != nil {
		t.Fatalf("expected no primer when not requested, got %+v", notRequested.PrimerPaint)
	}

	noProduct := Estimate(room, wallStandard, nil, entities.EstimationOptions{Coats: 2, IncludePrimer: true}, 16, nil)
	if noProduct.PrimerPaint != nil {
		t.Fatalf("expected no primer without a product, got %+v", noProduct.PrimerPaint)
	}

	withoutTrim := Estimate(room, wallStandard, nil, entities.EstimationOptions{Coats: 2, IncludePrimer: true}, 16, &primer)
	if withoutTrim.PrimerPaint == nil || withoutTrim.TrimPaint != nil {
		t.Fatalf("expected primer without trim, got trim=%+v primer=%+v", withoutTrim.TrimPaint, withoutTrim.PrimerPaint)
	}
	if !almostEqual(withoutTrim.TotalMaterialsCost, withoutTrim.WallPaint.Cost+withoutTrim.PrimerPaint.Cost) {
		t.Fatalf("unexpected total: %+v", withoutTrim)
	}
}

func TestEstimate_LaborRateIsNotClamped(t *testing.T) {
	for _, rate := range []float64{0, 5, 16, 55.5} {
		res := Estimate(entities.AreaOnly{TotalWallArea: 50}, wallStandard, nil, entities.EstimationOptions{Coats: 1}, rate, nil)
		if !almostEqual(res.PreciseLaborCost, 50*rate) {
			t.Fatalf("rate %v: expected %v, got %v", rate, 50*rate, res.PreciseLaborCost)
		}
		if !almostEqual(res.LaborCost.Min, 600) || !almostEqual(res.LaborCost.Max, 1000) {
			t.Fatalf("rate %v: labor band should not depend on rate, got %+v", rate, res.LaborCost)
		}
	}
}

func TestEstimate_TotalNeverIncludesLabor(t *testing.T) {
	res := Estimate(entities.AreaOnly{TotalWallArea: 30}, wallStandard, &trimGloss, entities.EstimationOptions{Coats: 2}, 40, nil)

	if !almostEqual(res.TotalMaterialsCost, res.WallPaint.Cost+res.TrimPaint.Cost) {
		t.Fatalf("unexpected materials total: %+v", res)
	}
	if !almostEqual(res.TotalCost(), res.TotalMaterialsCost+res.PreciseLaborCost) {
		t.Fatalf("unexpected total cost: %v", res.TotalCost())
	}
}

func TestEstimate_PanicsOnNilInput(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic for nil room input")
		}
	}()
	Estimate(nil, wallStandard, nil, entities.EstimationOptions{Coats: 1}, 16, nil)
}
