package response

import "paint_estimator/internal/domain/entities"

type TrendColorResponse struct {
	ID          string `json:"id" example:"trend_true_joy"`
	Name        string `json:"name" example:"True Joy™"`
	Brand       string `json:"brand" example:"Dulux"`
	Hex         string `json:"hex" example:"#ffcc00"`
	Description string `json:"description"`
	Season      string `json:"season" example:"Winter 2025"`
}

type RoomTypeResponse struct {
	ID    string `json:"id" example:"living"`
	Label string `json:"label" example:"Living Room"`
}

func FromTrends(trends []entities.TrendColor) []TrendColorResponse {
	out := make([]TrendColorResponse, 0, len(trends))
	for _, t := range trends {
		out = append(out, TrendColorResponse(t))
	}
	return out
}

func FromRoomTypes(roomTypes []entities.RoomType) []RoomTypeResponse {
	out := make([]RoomTypeResponse, 0, len(roomTypes))
	for _, rt := range roomTypes {
		out = append(out, RoomTypeResponse(rt))
	}
	return out
}
