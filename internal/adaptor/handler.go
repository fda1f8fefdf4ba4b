package adaptor

import (
	"room-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Session, service.Booking, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
