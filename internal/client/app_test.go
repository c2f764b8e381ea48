// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-cli/internal/adapter"
	"github.com/MKhiriev/go-chat-cli/internal/config"
	"github.com/MKhiriev/go-chat-cli/internal/logger"
	"github.com/MKhiriev/go-chat-cli/internal/mock"
	"github.com/MKhiriev/go-chat-cli/internal/service"
	"github.com/MKhiriev/go-chat-cli/internal/store"
	"github.com/MKhiriev/go-chat-cli/internal/testutil/fakeapi"
	"github.com/MKhiriev/go-chat-cli/internal/tui"
	"github.com/MKhiriev/go-chat-cli/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	defaultEmail    = "test@example.com"
	defaultPassword = "Test123!@#"
)

type harness struct {
	app      *App
	api      *fakeapi.Server
	out      *bytes.Buffer
	credPath string
}

// newHarness wires a real App against the fake API with a credential file in
// a temp directory. input is what the user types.
func newHarness(t *testing.T, api *fakeapi.Server, credPath, input string, appCfg config.ClientApp) *harness {
	t.Helper()

	if appCfg.DefaultEmail == "" {
		appCfg.DefaultEmail = defaultEmail
		appCfg.DefaultPassword = defaultPassword
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    api.URL,
		AuthTimeout:    2 * time.Second,
		HistoryTimeout: 2 * time.Second,
		ChatTimeout:    2 * time.Second,
		ClearTimeout:   2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	storages, err := store.NewClientStorages(config.ClientStorage{CredentialsPath: credPath}, logger.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	in := strings.NewReader(input)

	a, err := NewApp(service.NewClientServices(serverAdapter), storages, tui.New(in, out), appCfg, logger.Nop())
	require.NoError(t, err)

	return &harness{app: a, api: api, out: out, credPath: credPath}
}

func newDefaultHarness(t *testing.T, input string) *harness {
	t.Helper()
	api := fakeapi.Start(t)
	api.AddUser(defaultEmail, defaultPassword)
	return newHarness(t, api, filepath.Join(t.TempDir(), "creds.json"), input, config.ClientApp{})
}

func readRecord(t *testing.T, path string) models.Record {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec models.Record
	require.NoError(t, json.Unmarshal(raw, &rec))
	return rec
}

// ── startup ──────────────────────────────────────────────────────────────────

func TestNewApp_MissingDependency(t *testing.T) {
	_, err := NewApp(nil, nil, nil, config.ClientApp{}, logger.Nop())
	require.Error(t, err)
}

func TestRun_FreshStartLogsInWithDefaultsAndChats(t *testing.T) {
	h := newDefaultHarness(t, "\n\nhello\nquit\n")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "LangGraph Chat CLI")
	assert.Contains(t, out, "Login Required")
	assert.Contains(t, out, "Email [test@example.com]: ")
	assert.Contains(t, out, "✓ Logged in successfully as test@example.com")
	assert.Contains(t, out, "✓ Session created: ")
	assert.Contains(t, out, "✓ Ready to chat! Type 'quit' or 'exit' to end, 'clear' to clear history")
	assert.Contains(t, out, "Thinking...")
	assert.Contains(t, out, "Assistant: echo: hello")
	assert.True(t, strings.HasSuffix(out, "\nGoodbye!\n\n"))

	assert.Equal(t, []string{
		fakeapi.RouteLogin,
		fakeapi.RouteSession,
		fakeapi.RouteGetMessages,
		fakeapi.RouteChat,
	}, h.api.Routes())

	rec := readRecord(t, h.credPath)
	require.NotNil(t, rec.UserToken)
	require.NotNil(t, rec.SessionToken)
	require.NotNil(t, rec.SessionID)
	require.NotNil(t, rec.Email)
	assert.Equal(t, defaultEmail, *rec.Email)
	assert.Contains(t, out, "Session created: "+(*rec.SessionID)[:8]+"...")

	assert.Equal(t, models.Conversation{
		models.NewUserMessage("hello"),
		{Role: models.RoleAssistant, Content: "echo: hello"},
	}, h.app.transcript)
}

func TestRun_SavedSessionSkipsLoginAndSessionCreation(t *testing.T) {
	api := fakeapi.Start(t)
	api.AddUser(defaultEmail, defaultPassword)
	credPath := filepath.Join(t.TempDir(), "creds.json")

	first := newHarness(t, api, credPath, "\n\nquit\n", config.ClientApp{})
	require.NoError(t, first.app.Run(context.Background()))
	require.Equal(t, 1, api.SessionCount())

	second := newHarness(t, api, credPath, "again\nq\n", config.ClientApp{})
	require.NoError(t, second.app.Run(context.Background()))

	out := second.out.String()
	assert.Contains(t, out, "ℹ Using saved credentials for test@example.com")
	assert.NotContains(t, out, "Login Required")
	assert.NotContains(t, out, "Session created")
	assert.Contains(t, out, "Assistant: echo: again")
	assert.Equal(t, 1, api.SessionCount())
	assert.Equal(t, []string{
		fakeapi.RouteLogin,
		fakeapi.RouteSession,
		fakeapi.RouteGetMessages,
		fakeapi.RouteChat,
	}, api.Routes())
}

func TestRun_InvalidCredentialsEndsRun(t *testing.T) {
	h := newDefaultHarness(t, "test@example.com\nwrong\n")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "✗ Invalid email or password")
	assert.Contains(t, out, "✗ Authentication failed. Exiting.")
	assert.NotContains(t, out, "Ready to chat")
	assert.Equal(t, []string{fakeapi.RouteLogin}, h.api.Routes())

	_, err := os.Stat(h.credPath)
	assert.True(t, os.IsNotExist(err), "nothing is persisted on failure")
}

func TestRun_LoginServerError(t *testing.T) {
	h := newDefaultHarness(t, "\n\n")
	h.api.Fail(fakeapi.RouteLogin, http.StatusInternalServerError, "database offline")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "✗ Login failed: database offline")
	assert.Contains(t, out, "✗ Authentication failed. Exiting.")
}

func TestRun_ServerUnavailable(t *testing.T) {
	api := fakeapi.Start(t)
	api.Close()
	h := newHarness(t, api, filepath.Join(t.TempDir(), "creds.json"), "\n\n", config.ClientApp{})

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "✗ Login failed: server unavailable: ")
	assert.Contains(t, out, "✗ Authentication failed. Exiting.")
}

func TestRun_SessionCreationFailureEndsRun(t *testing.T) {
	h := newDefaultHarness(t, "\n\nhello\n")
	h.api.Fail(fakeapi.RouteSession, http.StatusInternalServerError, "no capacity")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "✓ Logged in successfully as test@example.com")
	assert.Contains(t, out, "✗ Failed to create session: no capacity")
	assert.Contains(t, out, "✗ Failed to create session. Exiting.")
	assert.NotContains(t, out, "Thinking...")

	rec := readRecord(t, h.credPath)
	assert.NotNil(t, rec.UserToken, "login result is persisted before the session attempt")
	assert.Nil(t, rec.SessionToken)
}

func TestRun_MalformedRecordWarnsAndPrompts(t *testing.T) {
	api := fakeapi.Start(t)
	api.AddUser(defaultEmail, defaultPassword)
	credPath := filepath.Join(t.TempDir(), "creds.json")
	require.NoError(t, os.WriteFile(credPath, []byte("{broken"), 0o600))

	h := newHarness(t, api, credPath, "\n\nexit\n", config.ClientApp{})
	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Warning: Could not load config: ")
	assert.Contains(t, out, "Login Required")
	assert.Contains(t, out, "Ready to chat!")

	rec := readRecord(t, credPath)
	assert.NotNil(t, rec.SessionToken, "a good record replaces the broken one")
}

func TestRun_EOFAtPromptSaysGoodbye(t *testing.T) {
	h := newDefaultHarness(t, "")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Goodbye!")
	assert.NotContains(t, out, "Authentication failed")
	assert.Empty(t, h.api.Routes())
}

// ── loop ─────────────────────────────────────────────────────────────────────

func TestRun_QuitCommands(t *testing.T) {
	for _, cmd := range []string{"quit", "EXIT", "Q", "  q  "} {
		t.Run(cmd, func(t *testing.T) {
			h := newDefaultHarness(t, "\n\n\n   \n"+cmd+"\nnever sent\n")

			require.NoError(t, h.app.Run(context.Background()))

			assert.Contains(t, h.out.String(), "Goodbye!")
			assert.Empty(t, h.api.RequestsTo(fakeapi.RouteChat))
		})
	}
}

func TestRun_EOFEndsLoop(t *testing.T) {
	h := newDefaultHarness(t, "\n\nhello\n")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "Assistant: echo: hello")
	assert.True(t, strings.HasSuffix(out, "\nGoodbye!\n\n"))
}

func TestRun_OversizedLineIsReportedAndLoopContinues(t *testing.T) {
	huge := strings.Repeat("x", 1<<20+1)
	h := newDefaultHarness(t, "\n\n"+huge+"\nhello\nquit\n")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "✗ Error: input line too long")
	assert.Contains(t, out, "Assistant: echo: hello")

	chats := h.api.RequestsTo(fakeapi.RouteChat)
	require.Len(t, chats, 1)
	assert.JSONEq(t, `{"messages":[{"role":"user","content":"hello"}]}`, chats[0].Body)
}

func TestRun_ClearHistory(t *testing.T) {
	h := newDefaultHarness(t, "\n\nhello\nCLEAR\nquit\n")

	require.NoError(t, h.app.Run(context.Background()))

	assert.Contains(t, h.out.String(), "✓ Chat history cleared")
	assert.Empty(t, h.app.transcript)

	clears := h.api.RequestsTo(fakeapi.RouteClearHistory)
	require.Len(t, clears, 1)
	assert.Equal(t, http.MethodDelete, clears[0].Method)

	rec := readRecord(t, h.credPath)
	assert.Equal(t, "Bearer "+*rec.SessionToken, clears[0].Authorization)
	assert.Empty(t, h.api.Messages(*rec.SessionToken))
}

func TestRun_ClearFailureContinues(t *testing.T) {
	h := newDefaultHarness(t, "\n\nclear\nhello\nquit\n")
	h.api.Fail(fakeapi.RouteClearHistory, http.StatusInternalServerError, "db down")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "✗ Failed to clear history: db down")
	assert.NotContains(t, out, "Chat history cleared")
	assert.Contains(t, out, "Assistant: echo: hello")
}

func TestRun_HistoryFailurePostsOnlyNewMessage(t *testing.T) {
	h := newDefaultHarness(t, "\n\nhello\nquit\n")
	h.api.SetReply(func(posted models.Conversation) models.Conversation {
		return append(models.Conversation{
			{Role: models.RoleUser, Content: "earlier"},
			{Role: models.RoleAssistant, Content: "earlier reply"},
		}, fakeapi.EchoReply(posted)...)
	})
	h.api.Fail(fakeapi.RouteGetMessages, http.StatusUnauthorized, "Invalid authentication credentials")

	require.NoError(t, h.app.Run(context.Background()))

	chats := h.api.RequestsTo(fakeapi.RouteChat)
	require.Len(t, chats, 1)
	assert.JSONEq(t, `{"messages":[{"role":"user","content":"hello"}]}`, chats[0].Body)
	assert.Contains(t, h.out.String(), "Assistant: echo: hello")
}

func TestRun_HistoryNoContentPostsOnlyNewMessage(t *testing.T) {
	h := newDefaultHarness(t, "\n\nhello\nquit\n")
	h.api.Fail(fakeapi.RouteGetMessages, http.StatusNoContent, "")

	require.NoError(t, h.app.Run(context.Background()))

	chats := h.api.RequestsTo(fakeapi.RouteChat)
	require.Len(t, chats, 1)
	assert.JSONEq(t, `{"messages":[{"role":"user","content":"hello"}]}`, chats[0].Body)
	assert.Contains(t, h.out.String(), "Assistant: echo: hello")
	assert.NotContains(t, h.out.String(), "Chat request failed")
}

func TestRun_HistoryIsRepostedInFull(t *testing.T) {
	h := newDefaultHarness(t, "\n\none\ntwo\nquit\n")

	require.NoError(t, h.app.Run(context.Background()))

	chats := h.api.RequestsTo(fakeapi.RouteChat)
	require.Len(t, chats, 2)
	assert.JSONEq(t, `{"messages":[
		{"role":"user","content":"one"},
		{"role":"assistant","content":"echo: one"},
		{"role":"user","content":"two"}
	]}`, chats[1].Body)
}

func TestRun_NoAssistantReply(t *testing.T) {
	h := newDefaultHarness(t, "\n\nhello\nquit\n")
	h.api.SetReply(func(posted models.Conversation) models.Conversation { return posted })

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "✗ Failed to get response")
	assert.NotContains(t, out, "Assistant:")
	assert.NotContains(t, out, "Chat request failed")
	assert.Empty(t, h.app.transcript)
}

func TestRun_ChatFailureContinues(t *testing.T) {
	h := newDefaultHarness(t, "\n\nhello\nquit\n")
	h.api.Fail(fakeapi.RouteChat, http.StatusInternalServerError, "model unavailable")

	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "✗ Chat request failed: model unavailable")
	assert.Contains(t, out, "✗ Failed to get response")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_EveryRequestCarriesUniqueRequestID(t *testing.T) {
	h := newDefaultHarness(t, "\n\nhello\nclear\nquit\n")

	require.NoError(t, h.app.Run(context.Background()))

	seen := map[string]bool{}
	for _, r := range h.api.Requests() {
		require.NotEmpty(t, r.RequestID, r.Route)
		assert.False(t, seen[r.RequestID], "duplicate request id")
		seen[r.RequestID] = true
	}
	assert.Len(t, seen, 5)
}

func TestTurn_NoSessionCreatesOneAndRetries(t *testing.T) {
	h := newDefaultHarness(t, "")
	ctx := context.Background()
	require.NoError(t, h.app.login(ctx, models.LoginCredentials{Email: defaultEmail, Password: defaultPassword}))
	require.False(t, h.app.state.HasSession())

	h.app.turn(ctx, "hello")

	out := h.out.String()
	assert.Contains(t, out, "✗ No active session. Creating one...")
	assert.Contains(t, out, "✓ Session created: ")
	assert.Contains(t, out, "Assistant: echo: hello")
	assert.Equal(t, []string{
		fakeapi.RouteLogin,
		fakeapi.RouteSession,
		fakeapi.RouteGetMessages,
		fakeapi.RouteChat,
	}, h.api.Routes())

	rec := readRecord(t, h.credPath)
	require.NotNil(t, rec.SessionToken)
	assert.Equal(t, h.app.state.SessionToken, *rec.SessionToken)
}

func TestTurn_NoSessionAndNotAuthenticated(t *testing.T) {
	h := newDefaultHarness(t, "")

	h.app.turn(context.Background(), "hello")

	out := h.out.String()
	assert.Contains(t, out, "✗ No active session. Creating one...")
	assert.Contains(t, out, "✗ Not authenticated. Please login or register first.")
	assert.Contains(t, out, "✗ Failed to get response")
	assert.Empty(t, h.api.Routes())
}

// ── quick login ──────────────────────────────────────────────────────────────

func TestQuickLogin_Success(t *testing.T) {
	api := fakeapi.Start(t)
	api.AddUser("alice@example.com", "pw")
	h := newHarness(t, api, filepath.Join(t.TempDir(), "creds.json"), "hi\nquit\n",
		config.ClientApp{Email: "alice@example.com", Password: "pw"})

	require.NoError(t, h.app.QuickLogin(context.Background()))
	require.NoError(t, h.app.Run(context.Background()))

	out := h.out.String()
	assert.Contains(t, out, "✓ Logged in successfully as alice@example.com")
	assert.Contains(t, out, "ℹ Using saved credentials for alice@example.com")
	assert.NotContains(t, out, "Login Required")
	assert.Contains(t, out, "Assistant: echo: hi")
	assert.Equal(t, []string{
		fakeapi.RouteLogin,
		fakeapi.RouteSession,
		fakeapi.RouteGetMessages,
		fakeapi.RouteChat,
	}, api.Routes())
}

func TestQuickLogin_AlwaysCreatesFreshSession(t *testing.T) {
	api := fakeapi.Start(t)
	api.AddUser("alice@example.com", "pw")
	credPath := filepath.Join(t.TempDir(), "creds.json")
	cfg := config.ClientApp{Email: "alice@example.com", Password: "pw"}

	require.NoError(t, newHarness(t, api, credPath, "", cfg).app.QuickLogin(context.Background()))
	first := readRecord(t, credPath)

	require.NoError(t, newHarness(t, api, credPath, "", cfg).app.QuickLogin(context.Background()))
	second := readRecord(t, credPath)

	assert.NotEqual(t, *first.SessionID, *second.SessionID)
	assert.Equal(t, 2, api.SessionCount())
}

func TestQuickLogin_InvalidCredentials(t *testing.T) {
	api := fakeapi.Start(t)
	api.AddUser("alice@example.com", "pw")
	h := newHarness(t, api, filepath.Join(t.TempDir(), "creds.json"), "",
		config.ClientApp{Email: "alice@example.com", Password: "nope"})

	err := h.app.QuickLogin(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuickLogin)
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Contains(t, h.out.String(), "✗ Invalid email or password")
	assert.Empty(t, api.RequestsTo(fakeapi.RouteSession))
}

func TestQuickLogin_SessionFailure(t *testing.T) {
	api := fakeapi.Start(t)
	api.AddUser("alice@example.com", "pw")
	api.Fail(fakeapi.RouteSession, http.StatusBadGateway, "upstream")
	h := newHarness(t, api, filepath.Join(t.TempDir(), "creds.json"), "",
		config.ClientApp{Email: "alice@example.com", Password: "pw"})

	err := h.app.QuickLogin(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuickSession)
	assert.ErrorIs(t, err, service.ErrSessionCreationFailed)
	assert.Contains(t, h.out.String(), "✗ Failed to create session: upstream")
}

func TestQuickLogin_RegisterThenLoginYieldsUsableSession(t *testing.T) {
	api := fakeapi.Start(t)
	credPath := filepath.Join(t.TempDir(), "creds.json")
	creds := config.ClientApp{Email: "new@example.com", Password: "pw", Register: true}

	reg := newHarness(t, api, credPath, "", creds)
	require.NoError(t, reg.app.QuickLogin(context.Background()))
	assert.Contains(t, reg.out.String(), "✓ Registered successfully as new@example.com")

	again := newHarness(t, api, credPath, "", creds)
	err := again.app.QuickLogin(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrAlreadyRegistered)
	assert.Contains(t, again.out.String(), "✗ Email already registered. Try logging in instead.")

	creds.Register = false
	login := newHarness(t, api, credPath, "ping\nquit\n", creds)
	require.NoError(t, login.app.QuickLogin(context.Background()))
	require.NoError(t, login.app.Run(context.Background()))
	assert.Contains(t, login.out.String(), "Assistant: echo: ping")
}

// ── persistence and interrupts (mocked store) ────────────────────────────────

func newMockedApp(t *testing.T, ctrl *gomock.Controller, in io.Reader) (*App, *mock.MockServerAdapter, *mock.MockCredentialStore, *bytes.Buffer) {
	t.Helper()

	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockCredentialStore(ctrl)
	mockStore.EXPECT().Path().Return("/tmp/creds.json").AnyTimes()

	out := &bytes.Buffer{}

	a, err := NewApp(
		service.NewClientServices(mockAdapter),
		&store.ClientStorages{Credentials: mockStore},
		tui.New(in, out),
		config.ClientApp{DefaultEmail: defaultEmail, DefaultPassword: defaultPassword},
		logger.Nop(),
	)
	require.NoError(t, err)
	return a, mockAdapter, mockStore, out
}

func savedState() models.State {
	return models.State{
		Credentials: models.Credentials{UserToken: "user-token", Email: "alice@example.com"},
		Session:     models.Session{SessionToken: "session-token", SessionID: "0f8fad5b-d9cb"},
	}
}

func TestRun_InterruptedContextSaysGoodbye(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	in, w := io.Pipe()
	defer w.Close()
	a, _, mockStore, out := newMockedApp(t, ctrl, in)
	mockStore.EXPECT().Load(gomock.Any()).Return(savedState(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, a.Run(ctx))
	assert.True(t, strings.HasSuffix(out.String(), "\nGoodbye!\n\n"))
}

func TestRun_InterruptDuringRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockAdapter, mockStore, out := newMockedApp(t, ctrl, strings.NewReader("hello\nnever\n"))
	mockStore.EXPECT().Load(gomock.Any()).Return(savedState(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	mockAdapter.EXPECT().GetMessages(gomock.Any(), "session-token").Return(models.Conversation{}, nil)
	mockAdapter.EXPECT().Chat(gomock.Any(), "session-token", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ models.Conversation) (models.Conversation, error) {
			cancel()
			return nil, &adapter.RequestError{Op: "chat", Kind: adapter.KindCanceled, Err: context.Canceled}
		})

	require.NoError(t, a.Run(ctx))

	s := out.String()
	assert.NotContains(t, s, "Failed to get response")
	assert.NotContains(t, s, "Chat request failed")
	assert.True(t, strings.HasSuffix(s, "\nGoodbye!\n\n"))
}

func TestRun_SaveFailureWarnsAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, mockAdapter, mockStore, out := newMockedApp(t, ctrl, strings.NewReader("\n\nquit\n"))

	gomock.InOrder(
		mockStore.EXPECT().Load(gomock.Any()).Return(models.State{}, nil),
		mockAdapter.EXPECT().Login(gomock.Any(), models.LoginCredentials{Email: defaultEmail, Password: defaultPassword}).
			Return(models.LoginResponse{AccessToken: "user-token"}, nil),
		mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")),
		mockAdapter.EXPECT().CreateSession(gomock.Any(), "user-token").
			Return(models.SessionResponse{SessionID: "sid-123456789", Token: models.AccessToken{AccessToken: "session-token"}}, nil),
		mockStore.EXPECT().Save(gomock.Any(), models.State{
			Credentials: models.Credentials{UserToken: "user-token", Email: defaultEmail},
			Session:     models.Session{SessionToken: "session-token", SessionID: "sid-123456789"},
		}).Return(nil),
	)

	require.NoError(t, a.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Warning: Could not save config: disk full")
	assert.Contains(t, s, "✓ Session created: sid-1234...")
	assert.Contains(t, s, "Ready to chat!")
}

func TestRun_SavedExpiredTokenIsStillUsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a, _, mockStore, out := newMockedApp(t, ctrl, strings.NewReader("q\n"))
	a.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
	mockStore.EXPECT().Load(gomock.Any()).Return(savedState(), nil)

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "Using saved credentials for alice@example.com")
}

func TestDescribeAuthError(t *testing.T) {
	detail := &adapter.RequestError{Kind: adapter.KindStatus, StatusCode: 500, Body: "oops", Err: adapter.ErrInternalServerError}

	assert.Equal(t, "Email already registered. Try logging in instead.",
		describeAuthError(errors.Join(service.ErrAlreadyRegistered, detail), true))
	assert.Equal(t, "Invalid email or password",
		describeAuthError(service.ErrInvalidCredentials, false))
	assert.Equal(t, "Registration failed: oops",
		describeAuthError(errors.Join(service.ErrRegistrationFailed, detail), true))
	assert.Equal(t, "Login failed: oops",
		describeAuthError(errors.Join(service.ErrLoginFailed, detail), false))
}
