package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Garden slot errors
	ErrMsgNoPlantedTree  = "no tree planted"
	ErrMsgTapWhileReady  = "tree is ready to sell"
	ErrMsgNotReady       = "tree is still growing"
	ErrMsgSlotOccupied   = "slot already has a tree"
	ErrMsgSeedLocked     = "seed is locked"
	ErrMsgSeedNotFound   = "seed not found"
	ErrMsgNothingToFlush = "no pending clicks"

	// Submission errors
	ErrMsgSubmissionFailed = "click submission failed"

	// Backend errors
	ErrMsgUnauthorized   = "not authenticated"
	ErrMsgNotFound       = "resource not found"
	ErrMsgBackendFailure = "backend error"
	ErrMsgEmptyResponse  = "backend returned no data"

	// Storage errors
	ErrMsgTokenNotFound = "auth token not found"

	// Input errors
	ErrMsgInvalidInput     = "invalid input"
	ErrMsgInvalidBoostType = "invalid boost type"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Garden slot errors
	ErrNoPlantedTree  = errors.New(ErrMsgNoPlantedTree)
	ErrTapWhileReady  = errors.New(ErrMsgTapWhileReady)
	ErrNotReady       = errors.New(ErrMsgNotReady)
	ErrSlotOccupied   = errors.New(ErrMsgSlotOccupied)
	ErrSeedLocked     = errors.New(ErrMsgSeedLocked)
	ErrSeedNotFound   = errors.New(ErrMsgSeedNotFound)
	ErrNothingToFlush = errors.New(ErrMsgNothingToFlush)

	// Submission errors
	ErrSubmissionFailed = errors.New(ErrMsgSubmissionFailed)

	// Backend errors
	ErrUnauthorized   = errors.New(ErrMsgUnauthorized)
	ErrNotFound       = errors.New(ErrMsgNotFound)
	ErrBackendFailure = errors.New(ErrMsgBackendFailure)
	ErrEmptyResponse  = errors.New(ErrMsgEmptyResponse)

	// Storage errors
	ErrTokenNotFound = errors.New(ErrMsgTokenNotFound)

	// Validation errors
	ErrInvalidInput     = errors.New(ErrMsgInvalidInput)
	ErrInvalidBoostType = errors.New(ErrMsgInvalidBoostType)
)
