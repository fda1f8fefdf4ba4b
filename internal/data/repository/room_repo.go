package repository

import (
	"context"
	"fmt"
	"net/http"

	"room-booking/internal/data/entity"
	"room-booking/internal/dto/response"
	"room-booking/pkg/apiclient"

	"go.uber.org/zap"
)

const meetingRoomsPath = "/admin/meetingRooms"

type RoomRepository interface {
	// List returns the catalog for the caller's center. A response without
	// data is an empty catalog.
	List(ctx context.Context, accessToken string) ([]entity.Room, error)
}

type roomRepository struct {
	api *apiclient.Client
	log *zap.Logger
}

func NewRoomRepository(api *apiclient.Client, log *zap.Logger) RoomRepository {
	return &roomRepository{
		api: api,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) List(ctx context.Context, accessToken string) ([]entity.Room, error) {
	var res response.CatalogResponse
	if err := r.api.Do(ctx, http.MethodGet, meetingRoomsPath, accessToken, nil, &res); err != nil {
		r.log.Warn("Failed to list meeting rooms", zap.Error(err))
		return nil, fmt.Errorf("list meeting rooms: %w", err)
	}

	if res.Data == nil {
		return []entity.Room{}, nil
	}
	return res.Data, nil
}
