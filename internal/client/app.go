// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-chat-cli/internal/app"
	"github.com/MKhiriev/go-chat-cli/internal/config"
	"github.com/MKhiriev/go-chat-cli/internal/logger"
	"github.com/MKhiriev/go-chat-cli/internal/service"
	"github.com/MKhiriev/go-chat-cli/internal/store"
	"github.com/MKhiriev/go-chat-cli/internal/tui"
	"github.com/MKhiriev/go-chat-cli/internal/utils"
	"github.com/MKhiriev/go-chat-cli/models"
)

// App is the interactive chat client. It owns the client state for the
// lifetime of the process and persists it after every change.
type App struct {
	services *service.ClientServices
	store    store.CredentialStore
	ui       *tui.TUI
	cfg      config.ClientApp
	logger   *logger.Logger

	state      models.State
	loaded     bool
	transcript models.Conversation

	now func() time.Time
}

// NewApp wires the client application. The saved credential record is read
// on the first call to Run or QuickLogin.
func NewApp(
	services *service.ClientServices,
	storages *store.ClientStorages,
	ui *tui.TUI,
	cfg config.ClientApp,
	logger *logger.Logger,
) (*App, error) {
	if services == nil || storages == nil || storages.Credentials == nil || ui == nil {
		return nil, errors.New("client app: missing dependency")
	}

	return &App{
		services: services,
		store:    storages.Credentials,
		ui:       ui,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}, nil
}

// QuickLogin logs in (or registers, when configured) with the command-line
// credentials and then always creates a fresh session. Failures are reported
// to the user and returned wrapped in [ErrQuickLogin] or [ErrQuickSession].
func (a *App) QuickLogin(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	a.loadState(ctx)

	creds := models.LoginCredentials{Email: a.cfg.Email, Password: a.cfg.Password}

	var err error
	if a.cfg.Register {
		err = a.register(ctx, creds)
	} else {
		err = a.login(ctx, creds)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrQuickLogin, err)
	}

	if err = a.createSession(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrQuickSession, err)
	}

	return nil
}

// Run implements [Client]. Authentication and session failures end the run
// with a message and a nil error; so do quit, end of input and interrupts.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)
	a.loadState(ctx)

	a.ui.Printer.Header()

	if err := a.authenticate(ctx); err != nil {
		if stopped(ctx, err) {
			a.ui.Printer.Goodbye()
			return nil
		}
		a.ui.Printer.Error(app.MsgAuthFailedExit)
		return nil
	}

	if err := a.ensureSession(ctx); err != nil {
		if stopped(ctx, err) {
			a.ui.Printer.Goodbye()
			return nil
		}
		a.ui.Printer.Error(app.MsgSessionFailedExit)
		return nil
	}

	a.ui.Printer.Success(app.MsgReady)
	a.ui.Printer.Blank()

	return a.loop(ctx)
}

func (a *App) loop(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for {
		a.ui.Printer.UserPrompt()

		line, err := a.ui.Console.ReadLine(ctx)
		if errors.Is(err, tui.ErrLineTooLong) {
			log.Warn().Err(err).Msg("input line dropped")
			a.ui.Printer.Error(fmt.Sprintf(app.MsgInputError, err))
			continue
		}
		if err != nil {
			a.ui.Printer.Goodbye()
			if stopped(ctx, err) {
				log.Info().Msg("chat loop ended")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		input := strings.TrimSpace(line)
		switch {
		case input == "":
			continue
		case isQuitCommand(input):
			a.ui.Printer.Goodbye()
			log.Info().Msg("chat loop ended by user")
			return nil
		case strings.EqualFold(input, "clear"):
			a.clearHistory(ctx)
			continue
		}

		a.turn(ctx, input)
		if ctx.Err() != nil {
			a.ui.Printer.Goodbye()
			return nil
		}
	}
}

// turn relays one message. A missing session is created and the turn is
// retried once.
func (a *App) turn(ctx context.Context, text string) {
	a.ui.Printer.Thinking()

	reply, ok, err := a.services.ChatService.SendTurn(ctx, &a.state, text)
	if errors.Is(err, service.ErrNoSession) {
		a.ui.Printer.Error(app.MsgNoSession)
		if err = a.createSession(ctx); err != nil {
			if ctx.Err() == nil {
				a.ui.Printer.Error(app.MsgNoResponse)
			}
			return
		}
		reply, ok, err = a.services.ChatService.SendTurn(ctx, &a.state, text)
	}

	if ctx.Err() != nil {
		return
	}
	if err != nil {
		a.ui.Printer.Error(fmt.Sprintf(app.MsgChatFailed, tui.HumanizeError(err)))
		a.ui.Printer.Error(app.MsgNoResponse)
		return
	}
	if !ok || reply == "" {
		a.ui.Printer.Error(app.MsgNoResponse)
		return
	}

	a.ui.Printer.Assistant(reply)
	a.transcript = append(a.transcript,
		models.NewUserMessage(text),
		models.Message{Role: models.RoleAssistant, Content: reply},
	)
}

func (a *App) clearHistory(ctx context.Context) {
	if err := a.services.ChatService.ClearHistory(ctx, &a.state); err != nil {
		if ctx.Err() == nil {
			a.ui.Printer.Error(fmt.Sprintf(app.MsgClearFailed, tui.HumanizeError(err)))
		}
		return
	}

	a.transcript = nil
	a.ui.Printer.Success(app.MsgHistoryCleared)
}

// authenticate reuses a saved user token or prompts for credentials and logs
// in.
func (a *App) authenticate(ctx context.Context) error {
	if a.state.IsAuthenticated() {
		a.ui.Printer.Info(fmt.Sprintf(app.MsgSavedLogin, a.state.Email))
		a.logTokenExpiry(ctx)
		return nil
	}

	defaults := models.LoginCredentials{Email: a.cfg.DefaultEmail, Password: a.cfg.DefaultPassword}
	creds, err := a.ui.Prompter.PromptCredentials(ctx, defaults)
	if err != nil {
		return err
	}

	return a.login(ctx, creds)
}

func (a *App) login(ctx context.Context, creds models.LoginCredentials) error {
	if err := a.services.AuthService.Login(ctx, &a.state, creds); err != nil {
		if ctx.Err() == nil {
			a.ui.Printer.Error(describeAuthError(err, false))
		}
		return err
	}

	a.persist(ctx)
	a.ui.Printer.Success(fmt.Sprintf(app.MsgLoggedIn, creds.Email))
	return nil
}

func (a *App) register(ctx context.Context, creds models.LoginCredentials) error {
	if err := a.services.AuthService.Register(ctx, &a.state, creds); err != nil {
		if ctx.Err() == nil {
			a.ui.Printer.Error(describeAuthError(err, true))
		}
		return err
	}

	a.persist(ctx)
	a.ui.Printer.Success(fmt.Sprintf(app.MsgRegistered, creds.Email))
	return nil
}

func (a *App) ensureSession(ctx context.Context) error {
	created, err := a.services.SessionService.EnsureSession(ctx, &a.state)
	if err != nil {
		a.reportSessionError(ctx, err)
		return err
	}
	if created {
		a.sessionCreated(ctx)
	}
	return nil
}

func (a *App) createSession(ctx context.Context) error {
	if err := a.services.SessionService.CreateSession(ctx, &a.state); err != nil {
		a.reportSessionError(ctx, err)
		return err
	}
	a.sessionCreated(ctx)
	return nil
}

func (a *App) sessionCreated(ctx context.Context) {
	a.persist(ctx)
	a.ui.Printer.Success(fmt.Sprintf(app.MsgSessionCreated, a.state.ShortSessionID()))
}

func (a *App) reportSessionError(ctx context.Context, err error) {
	if ctx.Err() != nil {
		return
	}
	if errors.Is(err, service.ErrNotAuthenticated) {
		a.ui.Printer.Error(app.MsgNotAuthenticated)
		return
	}
	a.ui.Printer.Error(fmt.Sprintf(app.MsgSessionFailed, tui.HumanizeError(err)))
}

// loadState merges the saved record into the in-memory state once. A
// broken record is reported and otherwise ignored.
func (a *App) loadState(ctx context.Context) {
	if a.loaded {
		return
	}
	a.loaded = true

	saved, err := a.store.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("path", a.store.Path()).Msg("could not load credentials")
		a.ui.Printer.Warning(fmt.Sprintf(app.MsgLoadWarning, err))
		return
	}
	a.state.Merge(saved)
}

// persist saves the state even when ctx is already canceled so that tokens
// obtained just before an interrupt are kept.
func (a *App) persist(ctx context.Context) {
	if err := a.store.Save(context.WithoutCancel(ctx), a.state); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("path", a.store.Path()).Msg("could not save credentials")
		a.ui.Printer.Warning(fmt.Sprintf(app.MsgSaveWarning, err))
	}
}

func (a *App) logTokenExpiry(ctx context.Context) {
	log := logger.FromContext(ctx)

	claims, err := utils.InspectToken(a.state.UserToken)
	if err != nil {
		log.Debug().Err(err).Msg("saved user token is not a JWT")
		return
	}

	event := log.Info()
	if claims.Expired(a.now()) {
		event = log.Warn()
	}
	event.
		Str("subject", claims.Subject).
		Time("expires_at", claims.ExpiresAt).
		Bool("expired", claims.Expired(a.now())).
		Msg("using saved user token")
}

func describeAuthError(err error, registering bool) string {
	switch {
	case errors.Is(err, service.ErrAlreadyRegistered):
		return app.MsgAlreadyRegistered
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case registering:
		return fmt.Sprintf(app.MsgRegistrationFailed, tui.HumanizeError(err))
	default:
		return fmt.Sprintf(app.MsgLoginFailed, tui.HumanizeError(err))
	}
}

func isQuitCommand(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "q":
		return true
	}
	return false
}

// stopped reports whether err means the user is done: interrupt, end of
// input or leaving the credential form.
func stopped(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, tui.ErrUserQuit)
}
