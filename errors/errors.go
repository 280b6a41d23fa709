// Package errors provides error handling for schemagen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints for CLI failures
//   - Assertion failures for broken collaborator contracts
//
// Usage:
//
//	// Wrap with context
//	if err := os.WriteFile(path, data, 0644); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", path)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'schemagen generate' to refresh the output")
//
//	// Check errors
//	if errors.Is(err, errors.ErrOutOfDate) {
//	    os.Exit(1)
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
	Mark          = crdb.Mark
)

// Assertions
var (
	AssertionFailedf    = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Sentinel errors for the generation pipeline.
// Use these with errors.Is(); wrap them with errors.Wrap() to add context.
var (
	// ErrMalformedToken indicates a token that is neither a record nor an enum
	ErrMalformedToken = New("malformed token")

	// ErrUnknownTransformer indicates a configured transformer or writer name that is not registered
	ErrUnknownTransformer = New("unknown transformer")

	// ErrUnsupportedVersion indicates a token stream format version outside the supported range
	ErrUnsupportedVersion = New("unsupported token stream version")

	// ErrOutOfDate indicates generated files differ from what the current tokens produce
	ErrOutOfDate = New("generated files are out of date")
)

// IsMalformedToken checks if an error is or wraps ErrMalformedToken
func IsMalformedToken(err error) bool {
	return err != nil && Is(err, ErrMalformedToken)
}

// IsOutOfDate checks if an error is or wraps ErrOutOfDate
func IsOutOfDate(err error) bool {
	return err != nil && Is(err, ErrOutOfDate)
}

// NewMalformedTokenError creates an assertion failure marked as ErrMalformedToken.
// A malformed token means the collaborator that produced the stream broke its
// contract, so it is reported as a programmer error rather than a user error.
func NewMalformedTokenError(format string, args ...interface{}) error {
	return Mark(AssertionFailedf(format, args...), ErrMalformedToken)
}

// NewUnknownTransformerError creates an error marked as ErrUnknownTransformer
func NewUnknownTransformerError(format string, args ...interface{}) error {
	return Wrap(ErrUnknownTransformer, Newf(format, args...).Error())
}
