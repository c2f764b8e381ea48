// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-chat-cli/internal/adapter"
	"github.com/MKhiriev/go-chat-cli/internal/logger"
	"github.com/MKhiriev/go-chat-cli/models"
)

type clientChatService struct {
	adapter adapter.ServerAdapter
}

func NewClientChatService(serverAdapter adapter.ServerAdapter) ClientChatService {
	return &clientChatService{adapter: serverAdapter}
}

func (c *clientChatService) SendTurn(ctx context.Context, state *models.State, text string) (string, bool, error) {
	if !state.HasSession() {
		return "", false, ErrNoSession
	}

	log := logger.FromContext(ctx)

	history, err := c.history(ctx, state.SessionToken)
	if err != nil {
		return "", false, err
	}

	conversation, err := c.adapter.Chat(ctx, state.SessionToken, history.WithUserTurn(text))
	if err != nil {
		log.Warn().Err(err).Msg("chat request failed")
		return "", false, wrap(ErrRelayFailed, err)
	}

	reply, ok := conversation.LastAssistantReply()
	if !ok {
		log.Warn().Int("messages", len(conversation)).Msg("no assistant message in response")
	}
	return reply, ok, nil
}

// history returns the server-side conversation. A non-200 answer is treated
// as an empty history, which usually means the session token expired and the
// server will reject the chat call as well.
func (c *clientChatService) history(ctx context.Context, sessionToken string) (models.Conversation, error) {
	history, err := c.adapter.GetMessages(ctx, sessionToken)
	if err == nil {
		return history, nil
	}

	log := logger.FromContext(ctx)
	if adapter.IsStatus(err) {
		log.Warn().Err(err).Msg("history unavailable, session may have expired; continuing with empty history")
		return models.Conversation{}, nil
	}

	log.Warn().Err(err).Msg("history request failed")
	return nil, wrap(ErrRelayFailed, err)
}

func (c *clientChatService) ClearHistory(ctx context.Context, state *models.State) error {
	if !state.HasSession() {
		return ErrNoSession
	}

	if err := c.adapter.ClearMessages(ctx, state.SessionToken); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("clear history failed")
		return wrap(ErrClearFailed, err)
	}

	logger.FromContext(ctx).Info().Msg("history cleared")
	return nil
}
