// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/MKhiriev/go-chat-cli/internal/utils"
)

type ctxKey int

const (
	emailCtxKey ctxKey = iota
	sessionCtxKey
)

const requestIDHeader = "X-Request-ID"

// record stores the request and short-circuits it when the route is set to
// fail.
func (s *Server) record(route string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_ = r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))

			s.mu.Lock()
			s.requests = append(s.requests, Request{
				Route:         route,
				Method:        r.Method,
				Path:          r.URL.Path,
				Authorization: r.Header.Get("Authorization"),
				RequestID:     r.Header.Get(requestIDHeader),
				ContentType:   r.Header.Get("Content-Type"),
				Body:          trimBody(body),
			})
			s.mu.Unlock()

			s.logger.Debug().Str("route", route).Str("method", r.Method).Msg("fake api request")

			if f, ok := s.failureFor(route); ok {
				utils.WriteError(w, f.detail, f.status)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// userAuth accepts only user tokens issued by register or login.
func (s *Server) userAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			utils.WriteError(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		s.mu.Lock()
		email, ok := s.userTokens[token]
		s.mu.Unlock()
		if !ok {
			utils.WriteError(w, "Invalid authentication credentials", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), emailCtxKey, email)))
	})
}

// sessionAuth accepts only live session tokens.
func (s *Server) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			utils.WriteError(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		s.mu.Lock()
		_, ok := s.sessions[token]
		s.mu.Unlock()
		if !ok {
			utils.WriteError(w, "Invalid authentication credentials", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionCtxKey, token)))
	})
}
