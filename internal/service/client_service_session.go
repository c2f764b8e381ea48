// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-chat-cli/internal/adapter"
	"github.com/MKhiriev/go-chat-cli/internal/logger"
	"github.com/MKhiriev/go-chat-cli/models"
)

type clientSessionService struct {
	adapter adapter.ServerAdapter
}

func NewClientSessionService(serverAdapter adapter.ServerAdapter) ClientSessionService {
	return &clientSessionService{adapter: serverAdapter}
}

func (s *clientSessionService) CreateSession(ctx context.Context, state *models.State) error {
	if !state.IsAuthenticated() {
		return ErrNotAuthenticated
	}

	log := logger.FromContext(ctx)

	resp, err := s.adapter.CreateSession(ctx, state.UserToken)
	if err != nil {
		log.Warn().Err(err).Msg("session creation failed")
		return wrap(ErrSessionCreationFailed, err)
	}

	state.SessionToken = resp.Token.AccessToken
	state.SessionID = resp.SessionID

	log.Info().Str("session_id", resp.SessionID).Msg("session created")
	return nil
}

func (s *clientSessionService) EnsureSession(ctx context.Context, state *models.State) (bool, error) {
	if state.HasSession() {
		logger.FromContext(ctx).Debug().Str("session_id", state.SessionID).Msg("reusing saved session")
		return false, nil
	}

	if err := s.CreateSession(ctx, state); err != nil {
		return false, err
	}
	return true, nil
}
