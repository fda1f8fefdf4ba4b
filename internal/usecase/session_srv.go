package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/apiclient"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	RouteLogin = "/login"
	RouteIndex = "/"
)

type SessionService interface {
	// Bootstrap reads the stored login. ok is false when no token is stored.
	Bootstrap(ctx context.Context) (session entity.SessionContext, ok bool, err error)
	Status(ctx context.Context) (*response.SessionStatusResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context) error
}

type sessionService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSessionService(repo *repository.Repository, log *zap.Logger) SessionService {
	return &sessionService{
		repo: repo,
		log:  log.With(zap.String("service", "session")),
	}
}

func (s *sessionService) Bootstrap(ctx context.Context) (entity.SessionContext, bool, error) {
	// An unreadable token (store error, rotated secret) sends the user back to login.
	token, ok, err := s.repo.Session.Get(ctx, entity.SessionKeyAccessToken)
	if err != nil {
		s.log.Warn("Failed to read access token, treating as logged out", zap.Error(err))
		return entity.SessionContext{}, false, nil
	}
	if !ok || token == "" {
		return entity.SessionContext{}, false, nil
	}

	// Missing or unreadable user data only costs the center scope.
	userData, _, err := s.repo.Session.Get(ctx, entity.SessionKeyUserData)
	if err != nil {
		s.log.Warn("Failed to read user data, continuing without center", zap.Error(err))
		userData = ""
	}

	return entity.SessionContext{
		AccessToken: token,
		CenterID:    entity.CenterIDFromUserData(userData),
	}, true, nil
}

func (s *sessionService) Status(ctx context.Context) (*response.SessionStatusResponse, error) {
	_, ok, err := s.Bootstrap(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &response.SessionStatusResponse{Authenticated: false, Redirect: RouteLogin}, nil
	}
	return &response.SessionStatusResponse{Authenticated: true}, nil
}

func (s *sessionService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	normalized := request.LoginRequest{Email: email, Password: req.Password}
	if errs := utils.ValidateStruct(normalized); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Fields: errs}
	}

	res, err := s.repo.Auth.Login(ctx, &request.RemoteLoginRequest{
		Email:    email,
		Password: req.Password,
		Remember: true,
	})
	if err != nil {
		if se, ok := apiclient.IsStatusError(err); ok {
			msg := se.ErrorMessage()
			if msg == "" {
				msg = "Authentication failed"
			}
			return nil, fmt.Errorf("%w: %s", ErrLoginRejected, msg)
		}
		return nil, newTransportError("login", err)
	}

	token := res.BearerToken()
	if token == "" {
		s.log.Warn("Login response carried no access token", zap.String("email", email))
		return nil, ErrNoAccessToken
	}

	if err := s.repo.Session.Set(ctx, entity.SessionKeyAccessToken, token); err != nil {
		return nil, fmt.Errorf("store access token: %w", err)
	}

	resp := &response.LoginResponse{Authenticated: true, Redirect: RouteIndex}
	if user := res.UserJSON(); user != nil {
		if err := s.repo.Session.Set(ctx, entity.SessionKeyUserData, string(user)); err != nil {
			return nil, fmt.Errorf("store user data: %w", err)
		}
		resp.CenterID = entity.CenterIDFromUserData(string(user))
	} else if err := s.repo.Session.Delete(ctx, entity.SessionKeyUserData); err != nil {
		// a stale center from a previous login must not leak into this one
		return nil, fmt.Errorf("clear user data: %w", err)
	}

	s.log.Info("Login successful", zap.String("email", email), zap.String("center_id", resp.CenterID))
	return resp, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.repo.Session.Delete(ctx, entity.SessionKeyAccessToken, entity.SessionKeyUserData); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info("Logged out")
	return nil
}

// IsLoginRejected reports whether err is the remote API refusing credentials.
func IsLoginRejected(err error) bool {
	return errors.Is(err, ErrLoginRejected)
}
