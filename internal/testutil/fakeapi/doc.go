// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fakeapi is an in-process stand-in for the chat API used by tests.
// It serves the six endpoints the client talks to over a real HTTP listener,
// issues signed JWTs, keeps one conversation per session and records every
// request so tests can assert on headers and bodies. Any route can be told to
// fail with a fixed status.
package fakeapi
