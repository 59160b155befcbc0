package entities

// RoomEstimateStatus tells whether a project room produced a result.
type RoomEstimateStatus string

const (
	RoomEstimateStatusEstimated  RoomEstimateStatus = "estimated"
	RoomEstimateStatusIncomplete RoomEstimateStatus = "incomplete"
)

// RoomEstimate is one room of a project. Result is nil while the room's
// input is incomplete; Reason then says what is missing.
type RoomEstimate struct {
	ID     string             `json:"id"`
	Name   string             `json:"name"`
	Type   string             `json:"type"`
	Status RoomEstimateStatus `json:"status"`
	Reason string             `json:"reason,omitempty"`
	Result *EstimationResult  `json:"result"`
}

// ProjectEstimate aggregates several rooms. Rooms without a result count as zero.
type ProjectEstimate struct {
	Rooms          []RoomEstimate `json:"rooms"`
	TotalMaterials float64        `json:"total_materials"`
	TotalLabor     float64        `json:"total_labor"`
	GrandTotal     float64        `json:"grand_total"`
}
