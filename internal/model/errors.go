package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	// Credential errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid or expired token")
	ErrScopeDenied        = errors.New("insufficient scope")

	// Game errors
	ErrGameNotFound      = errors.New("game not found")
	ErrViewNotFound      = errors.New("no view for faction")
	ErrNotGameMember     = errors.New("user has no faction in this game")
	ErrInvalidFaction    = errors.New("invalid faction")
	ErrInvalidGalaxySize = errors.New("invalid galaxy size")
)
