package request

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"paint_estimator/internal/domain/entities"
	"paint_estimator/internal/usecase"
)

var ErrIncompleteEstimate = errors.New("incomplete estimate input")

const (
	DefaultCoats     = 2
	DefaultLaborRate = 16.0

	// The form bounds the labor rate; the estimator itself never clamps it.
	MinLaborRate = 10.0
	MaxLaborRate = 40.0
)

// RoomEstimateRequest is the body of POST /v1/estimates.
//
// Numeric fields are pointers so an omitted field can be told apart from an
// explicit zero.
type RoomEstimateRequest struct {
	Mode           string   `json:"mode" binding:"omitempty,oneof=dimensions area" example:"dimensions"`
	Width          *float64 `json:"width" example:"4"`
	Length         *float64 `json:"length" example:"6"`
	Height         *float64 `json:"height" example:"2.4"`
	TotalWallArea  *float64 `json:"total_wall_area" example:"40"`
	WallProductID  string   `json:"wall_product_id" example:"wall_standard"`
	TrimProductID  string   `json:"trim_product_id" example:"trim_gloss"`
	IncludeTrim    bool     `json:"include_trim"`
	IncludePrimer  bool     `json:"include_primer"`
	Coats          *int     `json:"coats" binding:"omitempty,min=1,max=10" example:"2"`
	NumDoors       *int     `json:"num_doors" binding:"omitempty,min=0,max=100" example:"1"`
	NumWindows     *int     `json:"num_windows" binding:"omitempty,min=0,max=100" example:"1"`
	IncludeCeiling bool     `json:"include_ceiling"`
	LaborRate      *float64 `json:"labor_rate" example:"16"`
}

func (r RoomEstimateRequest) ResolveMode() entities.InputMode {
	if strings.EqualFold(strings.TrimSpace(r.Mode), string(entities.InputModeArea)) {
		return entities.InputModeArea
	}
	return entities.InputModeDimensions
}

// Complete reports whether the request carries everything an estimate needs.
// An incomplete request means "no result yet"; the estimator is not invoked.
func (r RoomEstimateRequest) Complete() error {
	switch r.ResolveMode() {
	case entities.InputModeArea:
		if !positivePtr(r.TotalWallArea) {
			return fmt.Errorf("%w: total_wall_area must be a positive number", ErrIncompleteEstimate)
		}
		if *r.TotalWallArea > entities.MaxTotalWallArea {
			return fmt.Errorf("%w: total_wall_area must not exceed %g", ErrIncompleteEstimate, entities.MaxTotalWallArea)
		}
	default:
		if !positivePtr(r.Width) || !positivePtr(r.Length) || !positivePtr(r.Height) {
			return fmt.Errorf("%w: width, length and height must be positive numbers", ErrIncompleteEstimate)
		}
		if *r.Width > entities.MaxRoomDimension || *r.Length > entities.MaxRoomDimension || *r.Height > entities.MaxRoomDimension {
			return fmt.Errorf("%w: width, length and height must not exceed %g", ErrIncompleteEstimate, entities.MaxRoomDimension)
		}
	}
	if strings.TrimSpace(r.WallProductID) == "" {
		return fmt.Errorf("%w: wall_product_id is required", ErrIncompleteEstimate)
	}
	if r.IncludeTrim && strings.TrimSpace(r.TrimProductID) == "" {
		return fmt.Errorf("%w: trim_product_id is required when include_trim is set", ErrIncompleteEstimate)
	}
	return nil
}

// ToCommand applies defaults and the labor rate bounds. Missing geometry
// yields a nil Input, which the use case reports as invalid room input.
func (r RoomEstimateRequest) ToCommand() usecase.RoomEstimateCommand {
	mode := r.ResolveMode()

	var input entities.RoomInput
	switch mode {
	case entities.InputModeArea:
		if r.TotalWallArea != nil {
			input = entities.AreaOnly{TotalWallArea: *r.TotalWallArea}
		}
	default:
		if r.Width != nil && r.Length != nil && r.Height != nil {
			input = entities.Dimensional{Width: *r.Width, Length: *r.Length, Height: *r.Height}
		}
	}

	return usecase.RoomEstimateCommand{
		Input:         input,
		WallProductID: strings.TrimSpace(r.WallProductID),
		TrimProductID: strings.TrimSpace(r.TrimProductID),
		IncludeTrim:   r.IncludeTrim,
		Options: entities.EstimationOptions{
			Coats:          intOrDefault(r.Coats, DefaultCoats),
			NumDoors:       intOrDefault(r.NumDoors, 0),
			NumWindows:     intOrDefault(r.NumWindows, 0),
			IncludeCeiling: r.IncludeCeiling && mode == entities.InputModeDimensions,
			IncludePrimer:  r.IncludePrimer,
			LaborRate:      ClampLaborRate(r.LaborRate),
		},
	}
}

// ClampLaborRate returns the default rate when none is given, otherwise the
// rate bounded to [MinLaborRate, MaxLaborRate].
func ClampLaborRate(rate *float64) float64 {
	if rate == nil || math.IsNaN(*rate) {
		return DefaultLaborRate
	}
	return min(max(*rate, MinLaborRate), MaxLaborRate)
}

// ProjectRoomRequest is one room of a project body. Room fields are inlined.
type ProjectRoomRequest struct {
	ID   string `json:"id" example:"room-1"`
	Name string `json:"name" example:"Main bedroom"`
	Type string `json:"type" example:"bedroom"`
	RoomEstimateRequest
}

// ProjectEstimateRequest is the body of POST /v1/estimates/project.
type ProjectEstimateRequest struct {
	Rooms []ProjectRoomRequest `json:"rooms" binding:"required,min=1,max=50,dive"`
}

func (r ProjectEstimateRequest) ToCommands() []usecase.ProjectRoomCommand {
	out := make([]usecase.ProjectRoomCommand, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		out = append(out, usecase.ProjectRoomCommand{
			ID:      room.ID,
			Name:    room.Name,
			Type:    room.Type,
			Command: room.ToCommand(),
		})
	}
	return out
}

func positivePtr(v *float64) bool {
	return v != nil && *v > 0
}

func intOrDefault(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
