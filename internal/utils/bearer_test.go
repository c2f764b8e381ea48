// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
)

func TestBearerHeader(t *testing.T) {
	if got := BearerHeader(" abc "); got != "Bearer abc" {
		t.Errorf("expected %q, got %q", "Bearer abc", got)
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer token123", "token123", false},
		{"lowercase scheme", "bearer token123", "token123", false},
		{"extra spaces", "  Bearer   token123  ", "token123", false},
		{"empty", "", "", true},
		{"scheme only", "Bearer", "", true},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", true},
		{"too many parts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAuthorizationHeader) {
					t.Fatalf("expected ErrInvalidAuthorizationHeader, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
