// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The coffee-shop Authors

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoAuthenticator is returned by NewHandlers when the protected routes
	// would have nothing to check tokens with.
	errNoAuthenticator = errors.New("no authenticator provided")
)
