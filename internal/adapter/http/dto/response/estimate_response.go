package response

import (
	"paint_estimator/internal/domain/entities"
)

type ProductResponse struct {
	ID               string  `json:"id" example:"wall_standard"`
	Name             string  `json:"name" example:"Vinyl Matt (Standard)"`
	Brand            string  `json:"brand" example:"Dulux / Crown"`
	Category         string  `json:"category" example:"wall"`
	PricePerLitre    Money   `json:"price_per_litre"`
	CoveragePerLitre float64 `json:"coverage_per_litre" example:"13"`
	Description      string  `json:"description"`
}

type PaintLayerResponse struct {
	LitresNeeded int             `json:"litres_needed" example:"11"`
	Cost         Money           `json:"cost"`
	Product      ProductResponse `json:"product"`
}

type LaborCostResponse struct {
	Min Money `json:"min"`
	Max Money `json:"max"`
}

// EstimateResponse renders an EstimationResult. Areas are in m² rounded to
// two decimals; trim_paint and primer_paint are null when not requested.
type EstimateResponse struct {
	Mode               string              `json:"mode" example:"dimensions"`
	GrossWallArea      float64             `json:"gross_wall_area" example:"72"`
	PaintableArea      float64             `json:"paintable_area" example:"68.5"`
	Perimeter          float64             `json:"perimeter" example:"20"`
	PerimeterEstimated bool                `json:"perimeter_estimated"`
	WallPaint          PaintLayerResponse  `json:"wall_paint"`
	TrimPaint          *PaintLayerResponse `json:"trim_paint"`
	PrimerPaint        *PaintLayerResponse `json:"primer_paint"`
	TotalMaterialsCost Money               `json:"total_materials_cost"`
	LaborCost          LaborCostResponse   `json:"labor_cost"`
	PreciseLaborCost   Money               `json:"precise_labor_cost"`
	TotalCost          Money               `json:"total_cost"`
}

type RoomEstimateResponse struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Type   string            `json:"type"`
	Status string            `json:"status" example:"estimated"`
	Reason string            `json:"reason,omitempty"`
	Result *EstimateResponse `json:"result"`
}

type ProjectEstimateResponse struct {
	Rooms          []RoomEstimateResponse `json:"rooms"`
	TotalMaterials Money                  `json:"total_materials"`
	TotalLabor     Money                  `json:"total_labor"`
	GrandTotal     Money                  `json:"grand_total"`
}

func FromProduct(p entities.PaintProduct) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Brand:            p.Brand,
		Category:         string(p.Category),
		PricePerLitre:    NewMoney(p.PricePerLitre),
		CoveragePerLitre: p.CoveragePerLitre,
		Description:      p.Description,
	}
}

func FromProducts(products []entities.PaintProduct) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromEstimationResult(r entities.EstimationResult) EstimateResponse {
	return EstimateResponse{
		Mode:               string(r.Mode),
		GrossWallArea:      round2(r.GrossWallArea),
		PaintableArea:      round2(r.PaintableArea),
		Perimeter:          round2(r.Perimeter),
		PerimeterEstimated: r.PerimeterEstimated,
		WallPaint:          fromLayer(r.WallPaint),
		TrimPaint:          fromOptionalLayer(r.TrimPaint),
		PrimerPaint:        fromOptionalLayer(r.PrimerPaint),
		TotalMaterialsCost: NewMoney(r.TotalMaterialsCost),
		LaborCost: LaborCostResponse{
			Min: NewMoney(r.LaborCost.Min),
			Max: NewMoney(r.LaborCost.Max),
		},
		PreciseLaborCost: NewMoney(r.PreciseLaborCost),
		TotalCost:        NewMoney(r.TotalCost()),
	}
}

func FromProjectEstimate(p entities.ProjectEstimate) ProjectEstimateResponse {
	rooms := make([]RoomEstimateResponse, 0, len(p.Rooms))
	for _, room := range p.Rooms {
		rr := RoomEstimateResponse{
			ID:     room.ID,
			Name:   room.Name,
			Type:   room.Type,
			Status: string(room.Status),
			Reason: room.Reason,
		}
		if room.Result != nil {
			res := FromEstimationResult(*room.Result)
			rr.Result = &res
		}
		rooms = append(rooms, rr)
	}
	return ProjectEstimateResponse{
		Rooms:          rooms,
		TotalMaterials: NewMoney(p.TotalMaterials),
		TotalLabor:     NewMoney(p.TotalLabor),
		GrandTotal:     NewMoney(p.GrandTotal),
	}
}

func fromLayer(l entities.PaintLayer) PaintLayerResponse {
	return PaintLayerResponse{
		LitresNeeded: l.LitresNeeded,
		Cost:         NewMoney(l.Cost),
		Product:      FromProduct(l.Product),
	}
}

func fromOptionalLayer(l *entities.PaintLayer) *PaintLayerResponse {
	if l == nil {
		return nil
	}
	out := fromLayer(*l)
	return &out
}
