package services

import "github.com/pkg/errors"

var (
	// ErrUnknownState is returned for state codes missing from the nexus registry
	ErrUnknownState = errors.New("unknown state code")
	// ErrInvalidAmount is returned for negative tax calculation amounts
	ErrInvalidAmount = errors.New("amount must not be negative")
)
