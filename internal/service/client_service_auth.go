// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-chat-cli/internal/adapter"
	"github.com/MKhiriev/go-chat-cli/internal/logger"
	"github.com/MKhiriev/go-chat-cli/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

func (a *clientAuthService) Register(ctx context.Context, state *models.State, creds models.LoginCredentials) error {
	log := logger.FromContext(ctx)

	resp, err := a.adapter.Register(ctx, models.RegisterRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		log.Warn().Err(err).Str("email", creds.Email).Msg("registration failed")
		return mapRegisterError(err)
	}

	state.UserToken = resp.Token.AccessToken
	state.Email = creds.Email

	log.Info().Str("email", creds.Email).Msg("registered")
	return nil
}

func (a *clientAuthService) Login(ctx context.Context, state *models.State, creds models.LoginCredentials) error {
	log := logger.FromContext(ctx)

	resp, err := a.adapter.Login(ctx, creds)
	if err != nil {
		log.Warn().Err(err).Str("email", creds.Email).Msg("login failed")
		return mapLoginError(err)
	}

	state.UserToken = resp.AccessToken
	state.Email = creds.Email

	log.Info().Str("email", creds.Email).Msg("logged in")
	return nil
}
