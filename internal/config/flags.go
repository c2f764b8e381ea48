// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// ParseFlags parses the client command-line flags from args (program name
// excluded). Unset flags stay zero so lower-priority sources can fill them.
//
// Flags:
//
//	--api-url           API base URL
//	--email             email for quick login (use with --password)
//	--password          password for quick login (use with --email)
//	--register          register the quick-login account instead of logging in
//	-c, --config        JSON or YAML config file path
//	--credentials       credential record path
//	--log-file          client log file path
//	--log-level         log level (debug, info, warn, error)
//	--auth-timeout      register/login/session timeout (e.g. 10s)
//	--history-timeout   history fetch timeout (e.g. 30s)
//	--chat-timeout      chat request timeout (e.g. 60s)
//	--clear-timeout     history delete timeout (e.g. 10s)
//
// Returns [pflag.ErrHelp] (wrapped) when -h/--help is given.
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		apiURL          string
		email           string
		password        string
		register        bool
		configPath      string
		credentialsPath string
		logPath         string
		logLevel        string
		authTimeout     time.Duration
		historyTimeout  time.Duration
		chatTimeout     time.Duration
		clearTimeout    time.Duration
	)

	fs := pflag.NewFlagSet("chat-cli", pflag.ContinueOnError)
	fs.StringVar(&apiURL, "api-url", "", fmt.Sprintf("API base URL (default %s)", DefaultAPIURL))
	fs.StringVar(&email, "email", "", "Email for quick login (use with --password)")
	fs.StringVar(&password, "password", "", "Password for quick login (use with --email)")
	fs.BoolVar(&register, "register", false, "Register the quick-login account instead of logging in")
	fs.StringVarP(&configPath, "config", "c", "", "JSON or YAML config file path")
	fs.StringVar(&credentialsPath, "credentials", "", "Credential record path (default ~/"+defaultCredentialsFile+")")
	fs.StringVar(&logPath, "log-file", "", "Log file path (default ~/"+defaultLogFile+")")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default "+DefaultLogLevel+")")
	fs.DurationVar(&authTimeout, "auth-timeout", 0, fmt.Sprintf("Register/login/session timeout (default %s)", DefaultAuthTimeout))
	fs.DurationVar(&historyTimeout, "history-timeout", 0, fmt.Sprintf("History fetch timeout (default %s)", DefaultHistoryTimeout))
	fs.DurationVar(&chatTimeout, "chat-timeout", 0, fmt.Sprintf("Chat request timeout (default %s)", DefaultChatTimeout))
	fs.DurationVar(&clearTimeout, "clear-timeout", 0, fmt.Sprintf("History delete timeout (default %s)", DefaultClearTimeout))

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Email:    email,
			Password: password,
			Register: register,
		},
		Adapter: Adapter{
			HTTPAddress:    apiURL,
			AuthTimeout:    authTimeout,
			HistoryTimeout: historyTimeout,
			ChatTimeout:    chatTimeout,
			ClearTimeout:   clearTimeout,
		},
		Storage: Storage{
			CredentialsPath: credentialsPath,
		},
		Log: Log{
			Path:  logPath,
			Level: logLevel,
		},
		ConfigFilePath: configPath,
	}, nil
}
