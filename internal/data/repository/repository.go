package repository

import (
	"room-booking/pkg/apiclient"

	"go.uber.org/zap"
)

// Repository groups the device-local session store and the remote API
// resources the front-end reads and writes.
type Repository struct {
	Session SessionRepository
	Room    RoomRepository
	Booking BookingRepository
	Auth    AuthRepository
}

func NewRepository(api *apiclient.Client, session SessionRepository, log *zap.Logger) *Repository {
	return &Repository{
		Session: session,
		Room:    NewRoomRepository(api, log),
		Booking: NewBookingRepository(api, log),
		Auth:    NewAuthRepository(api, log),
	}
}
