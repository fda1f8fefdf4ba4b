package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BookingHandler serves the booking screen. Every answer carries the
// resulting screen and drains pending alerts into it.
type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// Mount handles POST /api/screen/mount
func (h *BookingHandler) Mount(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Mount(r.Context())
	if err != nil {
		h.handleServiceError(w, err, snap, "mount booking screen")
		return
	}

	utils.ResponseSuccess(w, "Booking screen ready", h.screen(snap))
}

// Screen handles GET /api/screen
func (h *BookingHandler) Screen(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Booking screen", h.screen(h.service.Snapshot(r.Context())))
}

// Retry handles POST /api/rooms/retry
func (h *BookingHandler) Retry(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Retry(r.Context())
	if err != nil {
		h.handleServiceError(w, err, snap, "retry rooms")
		return
	}

	utils.ResponseSuccess(w, "Rooms reloaded", h.screen(snap))
}

// SelectRoom handles POST /api/rooms/{id}/select
func (h *BookingHandler) SelectRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")

	snap, err := h.service.SelectRoom(r.Context(), roomID)
	if err != nil {
		h.handleServiceError(w, err, snap, "select room")
		return
	}

	utils.ResponseSuccess(w, "Room selected", h.screen(snap))
}

// UpdateDraft handles PATCH /api/draft
func (h *BookingHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateDraftFieldRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	snap, err := h.service.UpdateDraftField(r.Context(), req.Field, req.Value)
	if err != nil {
		h.handleServiceError(w, err, snap, "update draft")
		return
	}

	utils.ResponseSuccess(w, "Draft updated", h.screen(snap))
}

// CancelForm handles POST /api/form/cancel
func (h *BookingHandler) CancelForm(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.CancelForm(r.Context())
	if err != nil {
		h.handleServiceError(w, err, snap, "cancel form")
		return
	}

	utils.ResponseSuccess(w, "Form closed", h.screen(snap))
}

// Submit handles POST /api/booking. It answers once the dialog has settled
// or closed.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ack, snap, err := h.service.Submit(r.Context())
	if err != nil {
		h.handleServiceError(w, err, snap, "submit booking")
		return
	}

	utils.ResponseSuccess(w, "Payment link sent", response.BookingAckResponse{
		Sent:   ack.Sent,
		Screen: h.screen(snap),
	})
}

// DismissDialog handles POST /api/dialog/dismiss
func (h *BookingHandler) DismissDialog(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.DismissDialog(r.Context())
	if err != nil {
		h.handleServiceError(w, err, snap, "dismiss dialog")
		return
	}

	utils.ResponseSuccess(w, "Dialog dismissed", h.screen(snap))
}

func (h *BookingHandler) screen(snap usecase.Snapshot) response.ScreenResponse {
	return toScreenResponse(snap, h.service.DrainAlerts())
}

// handleServiceError maps controller errors to statuses. The screen is still
// sent so the shell can render the state the failure resolved to.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, snap usecase.Snapshot, operation string) {
	var (
		ve *usecase.ValidationError
		te *usecase.TransportError
	)

	switch {
	case errors.Is(err, usecase.ErrNoSession):
		h.log.Info(operation+" - no stored session", zap.Error(err))
		utils.ResponseUnauthorized(w, "Login required", loginRedirect)

	case errors.As(err, &ve):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseJSON(w, http.StatusBadRequest, false, "Validation failed", h.screen(snap), ve.Fields)

	case errors.Is(err, usecase.ErrRoomNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseJSON(w, http.StatusNotFound, false, err.Error(), h.screen(snap), nil)

	case errors.Is(err, usecase.ErrUnknownField):
		h.log.Warn(operation+" failed - bad field", zap.Error(err))
		utils.ResponseJSON(w, http.StatusBadRequest, false, err.Error(), h.screen(snap), nil)

	case errors.Is(err, usecase.ErrInvalidTransition), errors.Is(err, usecase.ErrNotMounted):
		h.log.Warn(operation+" failed - wrong screen state", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), h.screen(snap))

	case errors.As(err, &te):
		h.log.Warn(operation+" failed - remote", zap.Error(err))
		utils.ResponseBadGateway(w, "Remote request failed", h.screen(snap))

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
