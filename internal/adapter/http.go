// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-cli/internal/config"
	"github.com/MKhiriev/go-chat-cli/internal/logger"
	"github.com/MKhiriev/go-chat-cli/internal/utils"
	"github.com/MKhiriev/go-chat-cli/models"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a per-request identifier that is also written to
// the client log.
const RequestIDHeader = "X-Request-ID"

const userAgent = "go-chat-cli"

type endpoint struct {
	op     string
	method string
	path   string
}

var (
	endpointRegister      = endpoint{"register", http.MethodPost, "/api/v1/auth/register"}
	endpointLogin         = endpoint{"login", http.MethodPost, "/api/v1/auth/login"}
	endpointCreateSession = endpoint{"create session", http.MethodPost, "/api/v1/auth/session"}
	endpointGetMessages   = endpoint{"get history", http.MethodGet, "/api/v1/chatbot/messages"}
	endpointChat          = endpoint{"chat", http.MethodPost, "/api/v1/chatbot/chat"}
	endpointClearMessages = endpoint{"clear history", http.MethodDelete, "/api/v1/chatbot/messages"}
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	authTimeout    time.Duration
	historyTimeout time.Duration
	chatTimeout    time.Duration
	clearTimeout   time.Duration

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and takes the per-endpoint timeouts from adapterCfg.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().
		WithBaseURL(baseURL).
		WithUserAgent(userAgent)

	return &httpServerAdapter{
		client:         client,
		ids:            utils.NewUUIDGenerator(),
		authTimeout:    adapterCfg.AuthTimeout,
		historyTimeout: adapterCfg.HistoryTimeout,
		chatTimeout:    adapterCfg.ChatTimeout,
		clearTimeout:   adapterCfg.ClearTimeout,
		logger:         logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var out models.RegisterResponse

	resp, err := h.send(ctx, endpointRegister, "", h.authTimeout, func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(req)
	})
	if err != nil {
		return out, err
	}
	if err = decode(endpointRegister.op, resp, &out); err != nil {
		return out, err
	}
	if out.Token.AccessToken == "" {
		return out, missingFieldError(endpointRegister.op, "token.access_token")
	}

	return out, nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, creds models.LoginCredentials) (models.LoginResponse, error) {
	var out models.LoginResponse

	resp, err := h.send(ctx, endpointLogin, "", h.authTimeout, func(r *resty.Request) {
		r.SetFormData(map[string]string{
			"username":   creds.Email,
			"password":   creds.Password,
			"grant_type": "password",
		})
	})
	if err != nil {
		return out, err
	}
	if err = decode(endpointLogin.op, resp, &out); err != nil {
		return out, err
	}
	if out.AccessToken == "" {
		return out, missingFieldError(endpointLogin.op, "access_token")
	}

	return out, nil
}

// CreateSession implements [ServerAdapter].
func (h *httpServerAdapter) CreateSession(ctx context.Context, userToken string) (models.SessionResponse, error) {
	var out models.SessionResponse

	resp, err := h.send(ctx, endpointCreateSession, userToken, h.authTimeout, nil)
	if err != nil {
		return out, err
	}
	if err = decode(endpointCreateSession.op, resp, &out); err != nil {
		return out, err
	}
	if out.Token.AccessToken == "" {
		return out, missingFieldError(endpointCreateSession.op, "token.access_token")
	}
	if out.SessionID == "" {
		return out, missingFieldError(endpointCreateSession.op, "session_id")
	}

	return out, nil
}

// GetMessages implements [ServerAdapter].
func (h *httpServerAdapter) GetMessages(ctx context.Context, sessionToken string) (models.Conversation, error) {
	resp, err := h.send(ctx, endpointGetMessages, sessionToken, h.historyTimeout, nil)
	if err != nil {
		return nil, err
	}
	// Only a 200 carries a history; any other success code is reported as a
	// status error so callers can fall back to an empty conversation.
	if resp.StatusCode() != http.StatusOK {
		return nil, &RequestError{
			Op:         endpointGetMessages.op,
			Kind:       KindStatus,
			StatusCode: resp.StatusCode(),
			Body:       strings.TrimSpace(string(resp.Body())),
			Err:        ErrUnexpectedStatus,
		}
	}

	var out models.ChatResponse
	if err = decode(endpointGetMessages.op, resp, &out); err != nil {
		return nil, err
	}
	if out.Messages == nil {
		return models.Conversation{}, nil
	}

	return out.Messages, nil
}

// Chat implements [ServerAdapter].
func (h *httpServerAdapter) Chat(ctx context.Context, sessionToken string, messages models.Conversation) (models.Conversation, error) {
	if messages == nil {
		messages = models.Conversation{}
	}

	resp, err := h.send(ctx, endpointChat, sessionToken, h.chatTimeout, func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json").SetBody(models.ChatRequest{Messages: messages})
	})
	if err != nil {
		return nil, err
	}

	var out models.ChatResponse
	if err = decode(endpointChat.op, resp, &out); err != nil {
		return nil, err
	}
	if out.Messages == nil {
		return nil, missingFieldError(endpointChat.op, "messages")
	}

	return out.Messages, nil
}

// ClearMessages implements [ServerAdapter].
func (h *httpServerAdapter) ClearMessages(ctx context.Context, sessionToken string) error {
	_, err := h.send(ctx, endpointClearMessages, sessionToken, h.clearTimeout, nil)
	return err
}

// send executes a single request against e with its own deadline. token, if
// non-empty, is presented as a bearer token. prepare may add a body.
func (h *httpServerAdapter) send(
	ctx context.Context,
	e endpoint,
	token string,
	timeout time.Duration,
	prepare func(r *resty.Request),
) (*resty.Response, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	requestID := h.ids.Generate()
	req := h.client.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	if prepare != nil {
		prepare(req)
	}

	resp, err := req.Execute(e.method, e.path)

	event := h.logger.Debug()
	if err != nil {
		event = h.logger.Warn().Err(err)
	}
	event.
		Str("op", e.op).
		Str("method", e.method).
		Str("path", e.path).
		Str("request_id", requestID).
		Int("status", statusCode(resp)).
		Dur("duration", utils.RequestDuration(resp)).
		Msg("api request")

	if err != nil {
		return nil, mapTransportError(e.op, err)
	}
	if err = mapHTTPError(e.op, resp); err != nil {
		return resp, err
	}

	return resp, nil
}

func decode(op string, resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return decodeError(op, err)
	}
	return nil
}

func statusCode(resp *resty.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode()
}
