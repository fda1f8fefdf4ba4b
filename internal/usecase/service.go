package usecase

import (
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Session SessionService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	minDisplay := config.Booking.MinDisplay
	if minDisplay < 0 {
		minDisplay = DefaultMinDisplay
	}

	session := NewSessionService(repo, log)
	return &Service{
		Session: session,
		Booking: NewBookingService(
			repo,
			session,
			NewAlertQueue(log),
			SystemClock(),
			ConfirmPolicy{MinDisplay: minDisplay},
			log,
		),
	}
}
