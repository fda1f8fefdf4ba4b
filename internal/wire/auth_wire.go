package wire

import (
	"room-booking/internal/adaptor"
	"room-booking/internal/data/repository"
	"room-booking/pkg/middleware"
	"room-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/session", authHandler.Status)
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.RequireSession(repo.Session, log)).Post("/api/logout", authHandler.Logout)
}
