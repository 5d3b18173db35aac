package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Quote errors
	ErrQuoteNotFound = errors.New("quote not found")
	ErrNoRates       = errors.New("no room rates supplied")
	ErrInvalidCursor = errors.New("invalid cursor")

	// Session errors
	ErrInvalidSession = errors.New("invalid session token")
	ErrExpiredSession = errors.New("session token expired")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrCacheOperationFailed    = errors.New("cache operation failed")
)
