package repository

import (
	"context"

	"paint_estimator/internal/domain/entities"
	"paint_estimator/internal/usecase/interfaces"
)

type TrendMemoryRepository struct {
	trends []entities.TrendColor
}

var _ interfaces.ITrendRepository = (*TrendMemoryRepository)(nil)

func NewTrendMemoryRepository(trends []entities.TrendColor) *TrendMemoryRepository {
	return &TrendMemoryRepository{trends: append([]entities.TrendColor(nil), trends...)}
}

func (r *TrendMemoryRepository) List(context.Context) ([]entities.TrendColor, error) {
	return append([]entities.TrendColor{}, r.trends...), nil
}

type RoomTypeMemoryRepository struct {
	roomTypes []entities.RoomType
}

var _ interfaces.IRoomTypeRepository = (*RoomTypeMemoryRepository)(nil)

func NewRoomTypeMemoryRepository(roomTypes []entities.RoomType) *RoomTypeMemoryRepository {
	return &RoomTypeMemoryRepository{roomTypes: append([]entities.RoomType(nil), roomTypes...)}
}

func (r *RoomTypeMemoryRepository) List(context.Context) ([]entities.RoomType, error) {
	return append([]entities.RoomType{}, r.roomTypes...), nil
}

func (r *RoomTypeMemoryRepository) GetByID(_ context.Context, id string) (entities.RoomType, error) {
	for _, rt := range r.roomTypes {
		if rt.ID == id {
			return rt, nil
		}
	}
	return entities.RoomType{}, nil
}
