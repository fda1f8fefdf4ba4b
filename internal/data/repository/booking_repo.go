package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/pkg/apiclient"

	"go.uber.org/zap"
)

const createBookingPath = "/admin/createBookingWithPayment"

type BookingRepository interface {
	// Create asks the server to record the booking and send a payment link.
	// The response body is parsed but not used.
	Create(ctx context.Context, accessToken string, req *request.CreateBookingRequest) error
}

type bookingRepository struct {
	api *apiclient.Client
	log *zap.Logger
}

func NewBookingRepository(api *apiclient.Client, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		api: api,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, accessToken string, req *request.CreateBookingRequest) error {
	var ack json.RawMessage
	if err := r.api.Do(ctx, http.MethodPost, createBookingPath, accessToken, req, &ack); err != nil {
		r.log.Warn("Failed to create booking",
			zap.Error(err),
			zap.String("meeting_room_id", req.MeetingRoomID.String()),
			zap.String("center_id", req.CenterID),
		)
		return fmt.Errorf("create booking: %w", err)
	}

	r.log.Info("Booking request accepted",
		zap.String("meeting_room_id", req.MeetingRoomID.String()),
		zap.String("center_id", req.CenterID),
	)
	return nil
}
