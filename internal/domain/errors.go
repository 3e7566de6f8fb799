package domain

import "errors"

var (
	// Lookup errors. Callers treat these as "absent" and continue.
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrMetadataNotFound    = errors.New("account metadata not found")

	// ErrMalformedRecord marks primary-storage data that cannot be decoded.
	// It is fatal for the affected account's sync step, never skipped.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidAmount is returned for transfers with a negative amount.
	ErrInvalidAmount = errors.New("amount must not be negative")
)
