package interfaces

import (
	"context"
	"paint_estimator/internal/domain/entities"
)

// ITrendRepository lists the seasonal trend colours shown next to estimates.

type ITrendRepository interface {
	List(ctx context.Context) ([]entities.TrendColor, error)
}

// IRoomTypeRepository lists the room kinds a project room can be tagged with.

type IRoomTypeRepository interface {
	List(ctx context.Context) ([]entities.RoomType, error)
	GetByID(ctx context.Context, id string) (entities.RoomType, error)
}
