package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"room-booking/internal/dto/request"
	"room-booking/internal/usecase"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.SessionService
	booking usecase.BookingService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.SessionService, booking usecase.BookingService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		booking: booking,
		log:     log,
	}
}

// Status handles GET /api/session
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Status(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "check session")
		return
	}

	utils.ResponseSuccess(w, "Session status", response)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		h.handleServiceError(w, err, "logout")
		return
	}
	h.booking.Unmount()

	utils.ResponseSuccess(w, "Logout successful", loginRedirect)
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var (
		ve *usecase.ValidationError
		te *usecase.TransportError
	)

	switch {
	case errors.As(err, &ve):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", ve.Fields)

	case errors.Is(err, usecase.ErrLoginRejected):
		h.log.Warn(operation+" failed - rejected by server", zap.Error(err))
		msg := strings.TrimPrefix(err.Error(), usecase.ErrLoginRejected.Error()+": ")
		utils.ResponseUnauthorized(w, msg, nil)

	case errors.Is(err, usecase.ErrNoAccessToken):
		h.log.Warn(operation+" failed - no token", zap.Error(err))
		utils.ResponseBadGateway(w, "No access token received", nil)

	case errors.As(err, &te):
		h.log.Warn(operation+" failed - remote unreachable", zap.Error(err))
		utils.ResponseBadGateway(w, "Unable to reach the server", nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
