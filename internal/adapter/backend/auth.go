package backend

import (
	"context"
	"errors"
	"net/http"

	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"
)

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type signInResponse struct {
	User struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Token    string `json:"token"`
		Refresh  string `json:"refresh"`
		Role     string `json:"role"`
		Country  string `json:"country"`
	} `json:"user"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// SignIn exchanges console credentials for upstream tokens.
// The backend has no separate refresh token; the access token doubles as one
// unless the response carries a dedicated refresh value.
func (c *Client) SignIn(ctx context.Context, username, password string) (*ports.SignInResult, error) {
	var resp signInResponse
	err := c.send(ctx, request{
		method:    http.MethodPost,
		path:      "auth/signin",
		body:      signInRequest{Username: username, Password: password},
		anonymous: true,
	}, &resp)
	if err != nil {
		if isClientError(err) {
			return nil, apperror.ErrInvalidCredentials()
		}
		return nil, err
	}
	if resp.User.Token == "" {
		return nil, apperror.ErrInvalidCredentials()
	}

	refresh := resp.User.Refresh
	if refresh == "" {
		refresh = resp.User.Token
	}
	return &ports.SignInResult{
		UserID:       resp.User.ID,
		Username:     resp.User.Username,
		Email:        resp.User.Email,
		Role:         resp.User.Role,
		Country:      resp.User.Country,
		AccessToken:  resp.User.Token,
		RefreshToken: refresh,
	}, nil
}

// Refresh obtains a new access token. Any rejection means the admin must sign in again.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	var resp refreshResponse
	err := c.send(ctx, request{
		method:    http.MethodPost,
		path:      "auth/refresh-token/",
		body:      refreshRequest{Refresh: refreshToken},
		anonymous: true,
	}, &resp)
	if err != nil {
		if isClientError(err) {
			return nil, apperror.ErrSessionExpired()
		}
		return nil, err
	}
	if resp.Access == "" {
		return nil, apperror.ErrSessionExpired()
	}
	return &ports.TokenPair{AccessToken: resp.Access, RefreshToken: resp.Refresh}, nil
}

// isClientError reports whether the backend rejected the call with a 4xx.
func isClientError(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr) && appErr.HTTPStatus >= 400 && appErr.HTTPStatus < 500
}
