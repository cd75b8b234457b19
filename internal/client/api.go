package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	authDto "venuely/internal/domains/auth/model/dto"
	inviteDto "venuely/internal/domains/invite/model/dto"
	roleDto "venuely/internal/domains/role/model/dto"
	"venuely/shared/constant"
	"venuely/transport/http/response"
)

// APIError is a non-2xx answer from the API, carrying the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// API is a thin JSON client for the /v1 endpoints the console uses.
type API struct {
	baseURL string
	http    *http.Client
}

func NewAPI(cfg Config) *API {
	return &API{
		baseURL: strings.TrimRight(cfg.APIURL, "/"),
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

func (a *API) Register(ctx context.Context, req authDto.RegisterRequest) (res authDto.RegisterResponse, err error) {
	err = a.do(ctx, http.MethodPost, "/v1/auth/register", "", req, &res)

	return res, err
}

func (a *API) Login(ctx context.Context, email, password string) (res authDto.LoginResponse, err error) {
	err = a.do(ctx, http.MethodPost, "/v1/auth/login", "", authDto.LoginRequest{Email: email, Password: password}, &res)

	return res, err
}

func (a *API) Refresh(ctx context.Context, refreshToken string) (res authDto.RefreshTokenResponse, err error) {
	err = a.do(ctx, http.MethodPost, "/v1/auth/refresh-token", "", authDto.RefreshTokenRequest{RefreshToken: refreshToken}, &res)

	return res, err
}

func (a *API) Logout(ctx context.Context, accessToken, refreshToken string) error {
	return a.do(ctx, http.MethodPost, "/v1/auth/logout", accessToken, authDto.LogoutRequest{RefreshToken: refreshToken}, nil)
}

func (a *API) Role(ctx context.Context, accessToken string) (res roleDto.RoleResponse, err error) {
	err = a.do(ctx, http.MethodGet, "/v1/auth/role", accessToken, nil, &res)

	return res, err
}

func (a *API) ReceivedInvites(ctx context.Context, accessToken string) (res []inviteDto.UserInviteResponse, err error) {
	err = a.do(ctx, http.MethodGet, "/v1/invites/received", accessToken, nil, &res)

	return res, err
}

func (a *API) ActOnInvite(ctx context.Context, accessToken, inviteID, action string) (res inviteDto.ActResponse, err error) {
	err = a.do(ctx, http.MethodPatch, "/v1/invites/"+inviteID, accessToken, inviteDto.ActRequest{Action: action}, &res)

	return res, err
}

func (a *API) SendInvite(ctx context.Context, accessToken string, req inviteDto.SendInviteRequest) (res inviteDto.InviteResponse, err error) {
	err = a.do(ctx, http.MethodPost, "/v1/invites", accessToken, req, &res)

	return res, err
}

// do sends body as JSON and unwraps the {data} envelope into out.
func (a *API) do(ctx context.Context, method, path, accessToken string, body, out any) error {
	var payload io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}

		payload = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, payload)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	request.Header.Set("Accept", constant.ContentTypeJSON)

	if body != nil {
		request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if accessToken != "" {
		request.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+accessToken)
	}

	resp, err := a.http.Do(request)
	if err != nil {
		return fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}

	envelope := response.Data[json.RawMessage]{}

	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if envelope.Data == nil {
		return nil
	}

	if err := json.Unmarshal(*envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}

	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var envelope struct {
		response.Error
		response.Message
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&envelope); err == nil {
		switch {
		case envelope.Error.Error != nil:
			apiErr.Message = *envelope.Error.Error
		case envelope.Message.Message != nil:
			apiErr.Message = *envelope.Message.Message
		}
	}

	return apiErr
}
