package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"paint_estimator/internal/domain/entities"
	"paint_estimator/internal/domain/estimation"
	"paint_estimator/internal/usecase/interfaces"
	"paint_estimator/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound        = errors.New("product not found")
	ErrProductCategory        = errors.New("product category does not match its use")
	ErrInvalidRoomInput       = errors.New("invalid room input")
	ErrInvalidEstimateOptions = errors.New("invalid estimate options")
	ErrEmptyProject           = errors.New("project has no rooms")
	ErrTooManyRooms           = errors.New("project has too many rooms")
)

const (
	MaxProjectRooms = 50
	defaultRoomName = "New Room"
)

// RoomEstimateCommand is a validated request to price one room.
//
// TrimProductID is only looked up when IncludeTrim is set. The primer product
// is always the fixed catalog entry entities.PrimerProductID.
type RoomEstimateCommand struct {
	Input         entities.RoomInput
	WallProductID string
	TrimProductID string
	IncludeTrim   bool
	Options       entities.EstimationOptions
}

// ProjectRoomCommand is one room of a multi-room project.
type ProjectRoomCommand struct {
	ID      string
	Name    string
	Type    string
	Command RoomEstimateCommand
}

// IEstimateUseCase exposes estimation for a single room and for a project.
//
//   - EstimateRoom fails on invalid input or unknown products.
//   - EstimateProject never fails for a room's input: such rooms are reported
//     as incomplete and contribute nothing to the totals.

type IEstimateUseCase interface {
	EstimateRoom(ctx context.Context, cmd RoomEstimateCommand) (entities.EstimationResult, error)
	EstimateProject(ctx context.Context, rooms []ProjectRoomCommand) (entities.ProjectEstimate, error)
}

type EstimateUseCase struct {
	products  interfaces.IProductRepository
	roomTypes interfaces.IRoomTypeRepository
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(products interfaces.IProductRepository, roomTypes interfaces.IRoomTypeRepository) *EstimateUseCase {
	return &EstimateUseCase{products: products, roomTypes: roomTypes}
}

func (u *EstimateUseCase) EstimateRoom(ctx context.Context, cmd RoomEstimateCommand) (entities.EstimationResult, error) {
	if err := validateRoomCommand(cmd); err != nil {
		return entities.EstimationResult{}, err
	}

	wall, err := u.product(ctx, cmd.WallProductID, entities.ProductCategoryWall)
	if err != nil {
		return entities.EstimationResult{}, err
	}

	var trim *entities.PaintProduct
	if cmd.IncludeTrim {
		p, err := u.product(ctx, cmd.TrimProductID, entities.ProductCategoryTrim)
		if err != nil {
			return entities.EstimationResult{}, err
		}
		trim = &p
	}

	var primer *entities.PaintProduct
	if cmd.Options.IncludePrimer {
		p, err := u.products.GetByID(ctx, entities.PrimerProductID)
		if err != nil {
			return entities.EstimationResult{}, err
		}
		if p.ID != "" {
			primer = &p
		} else {
			zap.S().Named("estimate").Warnw("primer requested but not in catalog; skipping primer layer", "primer_id", entities.PrimerProductID)
		}
	}

	opts := cmd.Options
	if _, ok := cmd.Input.(entities.AreaOnly); ok {
		opts.IncludeCeiling = false
	}

	res := estimation.Estimate(cmd.Input, wall, trim, opts, opts.LaborRate, primer)
	metrics.IncreaseEstimatesTotal(string(res.Mode))
	zap.S().Named("estimate").Debugw("room estimated",
		"mode", res.Mode,
		"paintable_area", res.PaintableArea,
		"wall_litres", res.WallPaint.LitresNeeded,
		"total_materials", res.TotalMaterialsCost,
	)
	return res, nil
}

func (u *EstimateUseCase) EstimateProject(ctx context.Context, rooms []ProjectRoomCommand) (entities.ProjectEstimate, error) {
	if len(rooms) == 0 {
		return entities.ProjectEstimate{}, ErrEmptyProject
	}
	if len(rooms) > MaxProjectRooms {
		return entities.ProjectEstimate{}, ErrTooManyRooms
	}

	out := entities.ProjectEstimate{Rooms: make([]entities.RoomEstimate, 0, len(rooms))}
	for _, room := range rooms {
		re := entities.RoomEstimate{
			ID:   strings.TrimSpace(room.ID),
			Name: strings.TrimSpace(room.Name),
			Type: strings.TrimSpace(room.Type),
		}
		if re.ID == "" {
			re.ID = uuid.NewString()
		}
		if re.Name == "" {
			name, err := u.defaultRoomName(ctx, re.Type)
			if err != nil {
				return entities.ProjectEstimate{}, err
			}
			re.Name = name
		}

		res, err := u.EstimateRoom(ctx, room.Command)
		switch {
		case err == nil:
			re.Status = entities.RoomEstimateStatusEstimated
			re.Result = &res
			out.TotalMaterials += res.TotalMaterialsCost
			out.TotalLabor += res.PreciseLaborCost
		case isIncompleteRoomError(err):
			re.Status = entities.RoomEstimateStatusIncomplete
			re.Reason = err.Error()
		default:
			return entities.ProjectEstimate{}, err
		}
		out.Rooms = append(out.Rooms, re)
	}
	out.GrandTotal = out.TotalMaterials + out.TotalLabor

	zap.S().Named("estimate").Infow("project estimated",
		"rooms", len(out.Rooms),
		"total_materials", out.TotalMaterials,
		"total_labor", out.TotalLabor,
	)
	return out, nil
}

func (u *EstimateUseCase) product(ctx context.Context, id string, category entities.ProductCategory) (entities.PaintProduct, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaintProduct{}, fmt.Errorf("%w: %s product id is empty", ErrInvalidEstimateOptions, category)
	}
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.PaintProduct{}, err
	}
	if p.ID == "" {
		return entities.PaintProduct{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	if p.Category != category {
		return entities.PaintProduct{}, fmt.Errorf("%w: %s is a %s product, expected %s", ErrProductCategory, id, p.Category, category)
	}
	return p, nil
}

func (u *EstimateUseCase) defaultRoomName(ctx context.Context, roomType string) (string, error) {
	if roomType == "" || u.roomTypes == nil {
		return defaultRoomName, nil
	}
	rt, err := u.roomTypes.GetByID(ctx, roomType)
	if err != nil {
		return "", err
	}
	if rt.ID == "" {
		return defaultRoomName, nil
	}
	return rt.Label, nil
}

func isIncompleteRoomError(err error) bool {
	return errors.Is(err, ErrInvalidRoomInput) ||
		errors.Is(err, ErrInvalidEstimateOptions) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrProductCategory)
}

// validateRoomCommand enforces the estimator's preconditions so that it is
// never invoked with malformed numbers.
func validateRoomCommand(cmd RoomEstimateCommand) error {
	switch in := cmd.Input.(type) {
	case entities.Dimensional:
		if !positive(in.Width) || !positive(in.Length) || !positive(in.Height) {
			return fmt.Errorf("%w: width, length and height must be positive", ErrInvalidRoomInput)
		}
		if in.Width > entities.MaxRoomDimension || in.Length > entities.MaxRoomDimension || in.Height > entities.MaxRoomDimension {
			return fmt.Errorf("%w: width, length and height must not exceed %g", ErrInvalidRoomInput, entities.MaxRoomDimension)
		}
	case entities.AreaOnly:
		if !positive(in.TotalWallArea) {
			return fmt.Errorf("%w: total wall area must be positive", ErrInvalidRoomInput)
		}
		if in.TotalWallArea > entities.MaxTotalWallArea {
			return fmt.Errorf("%w: total wall area must not exceed %g", ErrInvalidRoomInput, entities.MaxTotalWallArea)
		}
	default:
		return fmt.Errorf("%w: no room geometry", ErrInvalidRoomInput)
	}

	opts := cmd.Options
	switch {
	case opts.Coats < 1 || opts.Coats > entities.MaxCoats:
		return fmt.Errorf("%w: coats must be between 1 and %d", ErrInvalidEstimateOptions, entities.MaxCoats)
	case opts.NumDoors < 0 || opts.NumWindows < 0:
		return fmt.Errorf("%w: doors and windows cannot be negative", ErrInvalidEstimateOptions)
	case opts.NumDoors > entities.MaxOpenings || opts.NumWindows > entities.MaxOpenings:
		return fmt.Errorf("%w: at most %d doors and %d windows", ErrInvalidEstimateOptions, entities.MaxOpenings, entities.MaxOpenings)
	case math.IsNaN(opts.LaborRate) || math.IsInf(opts.LaborRate, 0) || opts.LaborRate < 0:
		return fmt.Errorf("%w: labor rate must be a non-negative number", ErrInvalidEstimateOptions)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
