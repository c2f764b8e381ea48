// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultAPIURL          = "http://localhost:8000"
	DefaultEmail           = "test@example.com"
	DefaultPassword        = "Test123!@#"
	DefaultAuthTimeout     = 10 * time.Second
	DefaultHistoryTimeout  = 30 * time.Second
	DefaultChatTimeout     = 60 * time.Second
	DefaultClearTimeout    = 10 * time.Second
	DefaultLogLevel        = "debug"
	defaultCredentialsFile = ".langgraph_chat_cli.json"
	defaultLogFile         = ".langgraph_chat_cli.log"
)

func defaultConfig() *StructuredConfig {
	home := homeDir()

	return &StructuredConfig{
		App: App{
			DefaultEmail:    DefaultEmail,
			DefaultPassword: DefaultPassword,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIURL,
			AuthTimeout:    DefaultAuthTimeout,
			HistoryTimeout: DefaultHistoryTimeout,
			ChatTimeout:    DefaultChatTimeout,
			ClearTimeout:   DefaultClearTimeout,
		},
		Storage: Storage{
			CredentialsPath: filepath.Join(home, defaultCredentialsFile),
		},
		Log: Log{
			Path:  filepath.Join(home, defaultLogFile),
			Level: DefaultLogLevel,
		},
	}
}

// homeDir returns the current user's home directory, or "." when it cannot
// be determined (e.g. HOME unset in a container).
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}
