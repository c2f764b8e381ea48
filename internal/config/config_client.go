// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds account settings used by the interactive client.
type ClientApp struct {
	// Email and Password are the quick-login credentials; both empty means
	// the interactive prompt is used.
	Email    string
	Password string
	// Register switches quick login to account registration.
	Register bool
	// DefaultEmail and DefaultPassword pre-fill the login prompt.
	DefaultEmail    string
	DefaultPassword string
}

// QuickLogin reports whether non-interactive login was requested.
func (a ClientApp) QuickLogin() bool {
	return a.Email != "" && a.Password != ""
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the chat API base URL.
	HTTPAddress string
	// AuthTimeout bounds register, login and session creation.
	AuthTimeout time.Duration
	// HistoryTimeout bounds the history fetch.
	HistoryTimeout time.Duration
	// ChatTimeout bounds the chat request.
	ChatTimeout time.Duration
	// ClearTimeout bounds the history delete.
	ClearTimeout time.Duration
}

// ClientStorage holds local persistence settings.
type ClientStorage struct {
	// CredentialsPath is the credential record file.
	CredentialsPath string
}

// ClientLog holds logger settings.
type ClientLog struct {
	Path  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Log     ClientLog
}

// GetClientConfig builds and validates the client configuration view from
// the merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg), nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Email:           cfg.App.Email,
			Password:        cfg.App.Password,
			Register:        cfg.App.Register,
			DefaultEmail:    cfg.App.DefaultEmail,
			DefaultPassword: cfg.App.DefaultPassword,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			AuthTimeout:    cfg.Adapter.AuthTimeout,
			HistoryTimeout: cfg.Adapter.HistoryTimeout,
			ChatTimeout:    cfg.Adapter.ChatTimeout,
			ClearTimeout:   cfg.Adapter.ClearTimeout,
		},
		Storage: ClientStorage{
			CredentialsPath: cfg.Storage.CredentialsPath,
		},
		Log: ClientLog{
			Path:  cfg.Log.Path,
			Level: cfg.Log.Level,
		},
	}
}
