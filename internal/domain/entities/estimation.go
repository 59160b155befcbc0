package entities

// EstimationOptions are the per-room knobs besides geometry and products.
//
// LaborRate is £/m². It is passed through unclamped; any range limit belongs
// to the caller.
type EstimationOptions struct {
	Coats          int
	NumDoors       int
	NumWindows     int
	IncludeCeiling bool
	IncludePrimer  bool
	LaborRate      float64
}

// PaintLayer is the quantity and cost of one product for one room.
type PaintLayer struct {
	LitresNeeded int          `json:"litres_needed"`
	Cost         float64      `json:"cost"`
	Product      PaintProduct `json:"product"`
}

// LaborCostRange is the market band for labor, independent of the chosen rate.
type LaborCostRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EstimationResult is a value computed fresh on every estimate.
//
// PerimeterEstimated is true when the trim perimeter was derived from the
// wall area rather than measured (area-only input).
type EstimationResult struct {
	Mode               InputMode      `json:"mode"`
	GrossWallArea      float64        `json:"gross_wall_area"`
	PaintableArea      float64        `json:"paintable_area"`
	Perimeter          float64        `json:"perimeter"`
	PerimeterEstimated bool           `json:"perimeter_estimated"`
	WallPaint          PaintLayer     `json:"wall_paint"`
	TrimPaint          *PaintLayer    `json:"trim_paint,omitempty"`
	PrimerPaint        *PaintLayer    `json:"primer_paint,omitempty"`
	TotalMaterialsCost float64        `json:"total_materials_cost"`
	LaborCost          LaborCostRange `json:"labor_cost"`
	PreciseLaborCost   float64        `json:"precise_labor_cost"`
}

// TotalCost is materials plus the precise labor figure.
func (r EstimationResult) TotalCost() float64 {
	return r.TotalMaterialsCost + r.PreciseLaborCost
}
