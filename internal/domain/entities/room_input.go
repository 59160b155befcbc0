package entities

// RoomInput is the geometry handed to the estimator. It is a closed sum type:
// the only implementations are Dimensional and AreaOnly, and consumers switch
// on the concrete type.
type RoomInput interface {
	Mode() InputMode
	isRoomInput()
}

// InputMode names the active RoomInput shape.
type InputMode string

const (
	InputModeDimensions InputMode = "dimensions"
	InputModeArea       InputMode = "area"
)

// Geometry bounds accepted for an estimate. They keep litre counts well
// inside int range for any catalog product.
const (
	MaxRoomDimension = 100.0    // metres
	MaxTotalWallArea = 100000.0 // m²
	MaxCoats         = 10
	MaxOpenings      = 100 // doors or windows, each
)

// Dimensional describes a rectangular room in metres.
type Dimensional struct {
	Width  float64
	Length float64
	Height float64
}

// AreaOnly carries a wall area (m²) measured elsewhere. No room shape is known.
type AreaOnly struct {
	TotalWallArea float64
}

func (Dimensional) Mode() InputMode { return InputModeDimensions }
func (AreaOnly) Mode() InputMode    { return InputModeArea }

func (Dimensional) isRoomInput() {}
func (AreaOnly) isRoomInput()    {}
