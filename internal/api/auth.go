package api

import (
	"context"
	"net/http"

	"studydeck/internal/models"
	"studydeck/internal/transport"
)

type AuthAPI struct {
	client *transport.Client
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	err := a.client.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   models.LoginRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.client.Send(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/auth/logout",
	}, nil)
}

func (a *AuthAPI) Status(ctx context.Context) (*models.AuthStatus, error) {
	var status models.AuthStatus
	err := a.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/auth/status",
	}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (a *AuthAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	err := a.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   "/api/auth/user/me",
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
