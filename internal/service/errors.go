package service

import "errors"

var (
	// ErrNotAvailable covers both a missing essay and an unpublished one; the
	// distinction is deliberately not surfaced.
	ErrNotAvailable = errors.New("artikel niet beschikbaar")

	// ErrInvalidCredentials is the single login failure message regardless of
	// underlying cause.
	ErrInvalidCredentials = errors.New("onjuiste inloggegevens")

	// ErrChatBusy rejects a second in-flight send on one transcript.
	ErrChatBusy = errors.New("chat is busy")

	ErrPageNotFound = errors.New("page not found")
)
