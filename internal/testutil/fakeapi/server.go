// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakeapi

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-cli/internal/logger"
	"github.com/MKhiriev/go-chat-cli/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route names accepted by [Server.Fail] and reported in [Request.Route].
const (
	RouteRegister     = "register"
	RouteLogin        = "login"
	RouteSession      = "session"
	RouteGetMessages  = "get messages"
	RouteChat         = "chat"
	RouteClearHistory = "clear messages"
)

const (
	issuer        = "fakeapi"
	signKey       = "fakeapi-sign-key"
	tokenDuration = time.Hour
)

// Request is a recorded call.
type Request struct {
	Route         string
	Method        string
	Path          string
	Authorization string
	RequestID     string
	ContentType   string
	Body          string
}

type failure struct {
	status int
	detail string
}

type session struct {
	id       string
	email    string
	messages models.Conversation
}

// ReplyFunc builds the conversation returned by the chat endpoint from the
// posted one.
type ReplyFunc func(posted models.Conversation) models.Conversation

// Server is the fake chat API.
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	nextID     int
	users      map[string]string
	userTokens map[string]string
	sessions   map[string]*session
	failures   map[string]failure
	requests   []Request
	reply      ReplyFunc

	logger *logger.Logger
}

// Start runs a new fake API and closes it when the test ends.
func Start(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		users:      make(map[string]string),
		userTokens: make(map[string]string),
		sessions:   make(map[string]*session),
		failures:   make(map[string]failure),
		reply:      EchoReply,
		logger:     logger.Nop(),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

// EchoReply appends an assistant message repeating the last user message.
func EchoReply(posted models.Conversation) models.Conversation {
	last := ""
	for i := len(posted) - 1; i >= 0; i-- {
		if posted[i].Role == models.RoleUser {
			last = posted[i].Content
			break
		}
	}
	return append(posted, models.Message{Role: models.RoleAssistant, Content: "echo: " + last})
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.With(s.record(RouteRegister)).Post("/api/v1/auth/register", s.register)
		r.With(s.record(RouteLogin)).Post("/api/v1/auth/login", s.login)
	})

	router.Group(func(r chi.Router) {
		r.With(s.record(RouteSession), s.userAuth).Post("/api/v1/auth/session", s.createSession)
	})

	router.Route("/api/v1/chatbot", func(r chi.Router) {
		r.With(s.record(RouteGetMessages), s.sessionAuth).Get("/messages", s.getMessages)
		r.With(s.record(RouteChat), s.sessionAuth).Post("/chat", s.chat)
		r.With(s.record(RouteClearHistory), s.sessionAuth).Delete("/messages", s.clearMessages)
	})

	return router
}

// AddUser registers an account directly.
func (s *Server) AddUser(email, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = password
}

// Fail makes every following call to route answer with status and a
// {"detail": detail} body. A zero status removes the failure.
func (s *Server) Fail(route string, status int, detail string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status == 0 {
		delete(s.failures, route)
		return
	}
	s.failures[route] = failure{status: status, detail: detail}
}

// SetReply replaces the chat reply builder.
func (s *Server) SetReply(reply ReplyFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply = reply
}

// ExpireSession invalidates a session token.
func (s *Server) ExpireSession(sessionToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionToken)
}

// Messages returns the stored conversation for a session token.
func (s *Server) Messages(sessionToken string) models.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionToken]
	if !ok {
		return nil
	}
	out := make(models.Conversation, len(sess.messages))
	copy(out, sess.messages)
	return out
}

// SessionCount returns how many live sessions exist.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Requests returns a copy of all recorded calls in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsTo returns the recorded calls for one route.
func (s *Server) RequestsTo(route string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Route == route {
			out = append(out, r)
		}
	}
	return out
}

// Routes returns the route names of all recorded calls in order.
func (s *Server) Routes() []string {
	reqs := s.Requests()
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Route)
	}
	return out
}

func (s *Server) failureFor(route string) (failure, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.failures[route]
	return f, ok
}

func trimBody(b []byte) string {
	return strings.TrimSpace(string(b))
}
