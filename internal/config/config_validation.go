// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// client invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return fmt.Errorf("%w: empty api url", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.AuthTimeout <= 0 || cfg.Adapter.HistoryTimeout <= 0 ||
		cfg.Adapter.ChatTimeout <= 0 || cfg.Adapter.ClearTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Storage.CredentialsPath == "" {
		return fmt.Errorf("%w: empty credentials path", ErrInvalidStorageConfigs)
	}

	if (cfg.App.Email == "") != (cfg.App.Password == "") {
		return fmt.Errorf("%w: email and password must be provided together", ErrInvalidAppConfigs)
	}
	if cfg.App.Register && cfg.App.Email == "" {
		return fmt.Errorf("%w: register requires email and password", ErrInvalidAppConfigs)
	}

	return nil
}
