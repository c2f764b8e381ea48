// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-chat-cli/internal/utils"
	"github.com/MKhiriev/go-chat-cli/models"
	"github.com/google/uuid"
)

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		utils.WriteError(w, "Invalid request body", http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	if _, exists := s.users[req.Email]; exists {
		s.mu.Unlock()
		utils.WriteError(w, "Email already registered", http.StatusBadRequest)
		return
	}
	s.users[req.Email] = req.Password
	s.nextID++
	id := s.nextID
	s.mu.Unlock()

	token, ok := s.issueUserToken(w, req.Email)
	if !ok {
		return
	}

	_, _ = utils.WriteJSON(w, map[string]any{
		"id":    id,
		"email": req.Email,
		"token": token,
	}, http.StatusOK)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.WriteError(w, "Invalid form", http.StatusUnprocessableEntity)
		return
	}

	email := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if r.PostForm.Get("grant_type") != "password" {
		utils.WriteError(w, "Unsupported grant type", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	stored, ok := s.users[email]
	s.mu.Unlock()
	if !ok || stored != password {
		utils.WriteError(w, "Incorrect email or password", http.StatusUnauthorized)
		return
	}

	token, ok := s.issueUserToken(w, email)
	if !ok {
		return
	}

	_, _ = utils.WriteJSON(w, token, http.StatusOK)
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	email, _ := r.Context().Value(emailCtxKey).(string)

	id := uuid.NewString()
	signed, err := utils.GenerateJWTToken(issuer, id, tokenDuration, signKey)
	if err != nil {
		utils.WriteError(w, "token creation failed", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.sessions[signed] = &session{id: id, email: email, messages: models.Conversation{}}
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.SessionResponse{
		SessionID: id,
		Name:      "",
		Token:     models.AccessToken{AccessToken: signed, TokenType: "bearer"},
	}, http.StatusOK)
}

func (s *Server) getMessages(w http.ResponseWriter, r *http.Request) {
	token, _ := r.Context().Value(sessionCtxKey).(string)

	_, _ = utils.WriteJSON(w, models.ChatResponse{Messages: s.Messages(token)}, http.StatusOK)
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	token, _ := r.Context().Value(sessionCtxKey).(string)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		utils.WriteError(w, "Invalid request body", http.StatusUnprocessableEntity)
		return
	}

	s.mu.Lock()
	reply := s.reply
	s.mu.Unlock()

	conversation := reply(req.Messages)

	s.mu.Lock()
	if sess, ok := s.sessions[token]; ok {
		sess.messages = conversation
	}
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, models.ChatResponse{Messages: conversation}, http.StatusOK)
}

func (s *Server) clearMessages(w http.ResponseWriter, r *http.Request) {
	token, _ := r.Context().Value(sessionCtxKey).(string)

	s.mu.Lock()
	if sess, ok := s.sessions[token]; ok {
		sess.messages = models.Conversation{}
	}
	s.mu.Unlock()

	_, _ = utils.WriteJSON(w, map[string]string{"message": "All messages cleared successfully"}, http.StatusOK)
}

// issueUserToken signs a user token for email and remembers it. It writes a
// 500 response and returns false when signing fails.
func (s *Server) issueUserToken(w http.ResponseWriter, email string) (models.AccessToken, bool) {
	signed, err := utils.GenerateJWTToken(issuer, email, tokenDuration, signKey)
	if err != nil {
		utils.WriteError(w, "token creation failed", http.StatusInternalServerError)
		return models.AccessToken{}, false
	}

	s.mu.Lock()
	s.userTokens[signed] = email
	s.mu.Unlock()

	return models.AccessToken{AccessToken: signed, TokenType: "bearer"}, true
}
