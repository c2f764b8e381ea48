// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig mirrors [StructuredConfig] for config files. The same
// struct is decoded from JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		Email           string `json:"email" yaml:"email"`
		Password        string `json:"password" yaml:"password"`
		Register        bool   `json:"register" yaml:"register"`
		DefaultEmail    string `json:"default_email" yaml:"default_email"`
		DefaultPassword string `json:"default_password" yaml:"default_password"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Adapter struct {
		APIURL         string   `json:"api_url" yaml:"api_url"`
		AuthTimeout    Duration `json:"auth_timeout" yaml:"auth_timeout"`
		HistoryTimeout Duration `json:"history_timeout" yaml:"history_timeout"`
		ChatTimeout    Duration `json:"chat_timeout" yaml:"chat_timeout"`
		ClearTimeout   Duration `json:"clear_timeout" yaml:"clear_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Storage struct {
		CredentialsPath string `json:"credentials_path" yaml:"credentials_path"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Log struct {
		Path  string `json:"path" yaml:"path"`
		Level string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Email:           fileCfg.App.Email,
			Password:        fileCfg.App.Password,
			Register:        fileCfg.App.Register,
			DefaultEmail:    fileCfg.App.DefaultEmail,
			DefaultPassword: fileCfg.App.DefaultPassword,
		},
		Adapter: Adapter{
			HTTPAddress:    fileCfg.Adapter.APIURL,
			AuthTimeout:    time.Duration(fileCfg.Adapter.AuthTimeout),
			HistoryTimeout: time.Duration(fileCfg.Adapter.HistoryTimeout),
			ChatTimeout:    time.Duration(fileCfg.Adapter.ChatTimeout),
			ClearTimeout:   time.Duration(fileCfg.Adapter.ClearTimeout),
		},
		Storage: Storage{
			CredentialsPath: fileCfg.Storage.CredentialsPath,
		},
		Log: Log{
			Path:  fileCfg.Log.Path,
			Level: fileCfg.Log.Level,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	tmp, err := time.ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
