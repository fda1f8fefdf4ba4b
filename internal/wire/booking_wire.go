package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/pkg/middleware"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(repo.Session, log))

		r.Post("/api/screen/mount", bookingHandler.Mount)
		r.Get("/api/screen", bookingHandler.Screen)

		r.Post("/api/rooms/retry", bookingHandler.Retry)
		r.Post("/api/rooms/{id}/select", bookingHandler.SelectRoom)

		r.Patch("/api/draft", bookingHandler.UpdateDraft)
		r.Post("/api/form/cancel", bookingHandler.CancelForm)

		r.Post("/api/booking", bookingHandler.Submit)
		r.Post("/api/dialog/dismiss", bookingHandler.DismissDialog)
	})
}
