package models

import "github.com/friendsofgo/errors"

var (
	// ErrMetadataFetch — единственный класс ошибок получения instance ID (любой из двух шагов).
	ErrMetadataFetch = errors.New("metadata fetch failed")

	// Ошибки эмулятора метаданных.
	ErrTokenMissing    = errors.New("metadata token missing")
	ErrTokenExpired    = errors.New("metadata token expired or unknown")
	ErrInvalidTTL      = errors.New("invalid metadata token ttl")
	ErrInstanceUnknown = errors.New("instance id is not configured")
)
