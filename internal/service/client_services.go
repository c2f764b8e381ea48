// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-chat-cli/internal/adapter"
)

type ClientServices struct {
	AuthService    ClientAuthService
	SessionService ClientSessionService
	ChatService    ClientChatService
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter),
		SessionService: NewClientSessionService(serverAdapter),
		ChatService:    NewClientChatService(serverAdapter),
	}
}
