// Package estimation computes paint quantities and costs for a single room.
//
// Estimate is pure: it reads only its arguments, holds no state and is safe to
// call concurrently. Inputs are expected to be validated by the caller; the
// function does not return errors.
package estimation

import (
	"fmt"
	"math"

	"paint_estimator/internal/domain/entities"
)

// Domain heuristics, all in metres / square metres / GBP.
const (
	// DoorDeduction is the wall area removed per door.
	DoorDeduction = 2.0
	// WindowDeduction is the wall area removed per window.
	WindowDeduction = 1.5

	// SkirtingHeight is the assumed skirting board height used for trim area.
	SkirtingHeight = 0.15
	// OpeningFrameArea is the trim allowance per door frame or window sill.
	OpeningFrameArea = 0.5

	// ReferenceWallHeight is used to approximate a perimeter when only the
	// wall area is known: perimeter ≈ area / ReferenceWallHeight. This is an
	// estimate, not a geometric derivation.
	ReferenceWallHeight = 2.4

	// LaborRateMin and LaborRateMax bound the UK market labor band (£/m²).
	LaborRateMin = 12.0
	LaborRateMax = 20.0

	// MinimumPurchaseLitres applies to trim and primer, which are sold in small tins.
	MinimumPurchaseLitres = 1
)

// Estimate prices a room.
//
// trim and primer are optional; the primer layer is only produced when
// opts.IncludePrimer is set and a primer product is supplied. laborRate is
// used as-is for the precise labor figure.
func Estimate(
	input entities.RoomInput,
	wallProduct entities.PaintProduct,
	trimProduct *entities.PaintProduct,
	opts entities.EstimationOptions,
	laborRate float64,
	primerProduct *entities.PaintProduct,
) entities.EstimationResult {
	grossArea, perimeter, estimated := measure(input, opts.IncludeCeiling)

	deductionArea := float64(opts.NumDoors)*DoorDeduction + float64(opts.NumWindows)*WindowDeduction
	paintableArea := math.Max(0, grossArea-deductionArea)

	wallLitres := litres(paintableArea*float64(opts.Coats), wallProduct.CoveragePerLitre)
	wall := entities.PaintLayer{
		LitresNeeded: wallLitres,
		Cost:         float64(wallLitres) * wallProduct.PricePerLitre,
		Product:      wallProduct,
	}

	// Trim and primer share one heuristic surface: skirting plus frames.
	trimArea := perimeter*SkirtingHeight + float64(opts.NumDoors+opts.NumWindows)*OpeningFrameArea
	trimCoverage := trimArea * float64(opts.Coats)

	var trim, primer *entities.PaintLayer
	if trimProduct != nil {
		trim = smallTinLayer(trimCoverage, *trimProduct)
	}
	if opts.IncludePrimer && primerProduct != nil {
		primer = smallTinLayer(trimCoverage, *primerProduct)
	}

	total := wall.Cost
	if trim != nil {
		total += trim.Cost
	}
	if primer != nil {
		total += primer.Cost
	}

	return entities.EstimationResult{
		Mode:               input.Mode(),
		GrossWallArea:      grossArea,
		PaintableArea:      paintableArea,
		Perimeter:          perimeter,
		PerimeterEstimated: estimated,
		WallPaint:          wall,
		TrimPaint:          trim,
		PrimerPaint:        primer,
		TotalMaterialsCost: total,
		LaborCost: entities.LaborCostRange{
			Min: paintableArea * LaborRateMin,
			Max: paintableArea * LaborRateMax,
		},
		PreciseLaborCost: paintableArea * laborRate,
	}
}

// measure returns the gross paintable surface and the perimeter used for trim.
// The ceiling flag only applies to dimensional input.
func measure(input entities.RoomInput, includeCeiling bool) (grossArea, perimeter float64, estimated bool) {
	switch in := input.(type) {
	case entities.Dimensional:
		perimeter = 2 * (in.Width + in.Length)
		grossArea = perimeter * in.Height
		if includeCeiling {
			grossArea += in.Width * in.Length
		}
		return grossArea, perimeter, false
	case entities.AreaOnly:
		return in.TotalWallArea, in.TotalWallArea / ReferenceWallHeight, true
	default:
		panic(fmt.Sprintf("estimation: unsupported room input %T", input))
	}
}

func litres(coverageNeeded, coveragePerLitre float64) int {
	return int(math.Ceil(coverageNeeded / coveragePerLitre))
}

func smallTinLayer(coverageNeeded float64, product entities.PaintProduct) *entities.PaintLayer {
	n := litres(coverageNeeded, product.CoveragePerLitre)
	if n < MinimumPurchaseLitres {
		n = MinimumPurchaseLitres
	}
	return &entities.PaintLayer{
		LitresNeeded: n,
		Cost:         float64(n) * product.PricePerLitre,
		Product:      product,
	}
}
