// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrQuickLogin is returned by [App.QuickLogin] when login (or
	// registration) with command-line credentials fails.
	ErrQuickLogin = errors.New("quick login failed")

	// ErrQuickSession is returned by [App.QuickLogin] when the session cannot
	// be created after a successful quick login.
	ErrQuickSession = errors.New("quick session failed")
)
