package entities

// TrendColor is a seasonal colour shown for inspiration. It has no effect on estimates.
type TrendColor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Brand       string `json:"brand"`
	Hex         string `json:"hex"`
	Description string `json:"description"`
	Season      string `json:"season"`
}

// RoomType labels a room in a project.
type RoomType struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
