// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the chat client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables (CHAT_CLI_ prefix, a local .env file is loaded
//     first without overriding variables that are already set)
//  3. Config file (JSON, or YAML when the extension is .yaml/.yml)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
