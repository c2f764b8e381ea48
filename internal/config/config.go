// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the chat
// client. It aggregates all sub-configurations and is populated by merging
// values from flags, environment variables, an optional config file, and
// defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds quick-login credentials and the defaults suggested by the
	// interactive login prompt.
	App App `envPrefix:"APP_"`

	// Adapter holds the API base URL and per-endpoint request timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the location of the local credential record.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds the client log file settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. Populated via the CHAT_CLI_CONFIG environment variable or the
	// -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds account-related settings.
type App struct {
	// Email and Password enable non-interactive quick login. They must be
	// provided together.
	// Env: CHAT_CLI_APP_EMAIL, CHAT_CLI_APP_PASSWORD
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`

	// Register makes quick login register the account instead of logging in.
	// Env: CHAT_CLI_APP_REGISTER
	Register bool `env:"REGISTER"`

	// DefaultEmail and DefaultPassword are pre-filled in the interactive
	// login prompt.
	// Env: CHAT_CLI_APP_DEFAULT_EMAIL, CHAT_CLI_APP_DEFAULT_PASSWORD
	DefaultEmail    string `env:"DEFAULT_EMAIL"`
	DefaultPassword string `env:"DEFAULT_PASSWORD"`
}

// Adapter holds settings of the outbound HTTP transport.
type Adapter struct {
	// HTTPAddress is the base URL of the chat API (e.g. "http://localhost:8000").
	// Env: CHAT_CLI_ADAPTER_API_URL
	HTTPAddress string `env:"API_URL"`

	// AuthTimeout bounds register, login and session creation requests.
	// Env: CHAT_CLI_ADAPTER_AUTH_TIMEOUT
	AuthTimeout time.Duration `env:"AUTH_TIMEOUT"`

	// HistoryTimeout bounds the conversation history fetch.
	// Env: CHAT_CLI_ADAPTER_HISTORY_TIMEOUT
	HistoryTimeout time.Duration `env:"HISTORY_TIMEOUT"`

	// ChatTimeout bounds the chat request; generation may be slow.
	// Env: CHAT_CLI_ADAPTER_CHAT_TIMEOUT
	ChatTimeout time.Duration `env:"CHAT_TIMEOUT"`

	// ClearTimeout bounds the history delete request.
	// Env: CHAT_CLI_ADAPTER_CLEAR_TIMEOUT
	ClearTimeout time.Duration `env:"CLEAR_TIMEOUT"`
}

// Storage holds local persistence settings.
type Storage struct {
	// CredentialsPath is the JSON file holding tokens, session id and email.
	// Env: CHAT_CLI_STORAGE_CREDENTIALS_PATH
	CredentialsPath string `env:"CREDENTIALS_PATH"`
}

// Log holds client logging settings.
type Log struct {
	// Path is the file log entries are appended to.
	// Env: CHAT_CLI_LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: CHAT_CLI_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. args are the command-line arguments without the program
// name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withDotEnv(dotEnvFile).
		withEnv().
		withFile().
		withDefaults().
		build()
}
