package repository

import (
	"context"
	"fmt"
	"net/http"

	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/apiclient"

	"go.uber.org/zap"
)

const loginPath = "/auth/login"

type AuthRepository interface {
	Login(ctx context.Context, req *request.RemoteLoginRequest) (*response.RemoteLoginResponse, error)
}

type authRepository struct {
	api *apiclient.Client
	log *zap.Logger
}

func NewAuthRepository(api *apiclient.Client, log *zap.Logger) AuthRepository {
	return &authRepository{
		api: api,
		log: log.With(zap.String("repository", "auth")),
	}
}

func (r *authRepository) Login(ctx context.Context, req *request.RemoteLoginRequest) (*response.RemoteLoginResponse, error) {
	var res response.RemoteLoginResponse
	if err := r.api.Do(ctx, http.MethodPost, loginPath, "", req, &res); err != nil {
		r.log.Warn("Remote login failed", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("login: %w", err)
	}
	return &res, nil
}
