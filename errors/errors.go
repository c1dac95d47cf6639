// Package errors provides error handling for wrapgen.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints for the person running the generator
//   - Marks, so a failure category survives any amount of wrapping
//
// Every fatal condition of a generation run carries one of the category
// sentinels below (ErrFilesystem, ErrParse, ErrSynthesis, ErrConfig, ErrDrift).
// The original message is kept; the category is attached with Mark:
//
//	src, err := os.ReadFile(path)
//	if err != nil {
//	    return errors.Filesystem(err, "failed to read module %s", module)
//	}
//
//	if errors.Is(err, errors.ErrParse) {
//	    // the run aborted on a malformed module
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
	Mark         = crdb.Mark
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
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Failure categories of a generation run.
// Use these with errors.Is() for type-safe error checking.
var (
	// ErrFilesystem indicates a directory or file could not be read or written
	ErrFilesystem = New("filesystem error")

	// ErrParse indicates a module source file is not valid Go
	ErrParse = New("parse failure")

	// ErrSynthesis indicates extracted metadata could not be turned into valid code
	ErrSynthesis = New("synthesis failure")

	// ErrConfig indicates the configuration is invalid
	ErrConfig = New("invalid configuration")

	// ErrDrift indicates the committed generated file does not match the sources
	ErrDrift = New("generated client out of date")
)

// Filesystem wraps err with a formatted message and marks it as ErrFilesystem.
func Filesystem(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Mark(Wrapf(err, format, args...), ErrFilesystem)
}

// Parse wraps err with a formatted message and marks it as ErrParse.
func Parse(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Mark(Wrapf(err, format, args...), ErrParse)
}

// Synthesis creates a new error marked as ErrSynthesis.
func Synthesis(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrSynthesis)
}

// WrapSynthesis wraps err with a formatted message and marks it as ErrSynthesis.
func WrapSynthesis(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Mark(Wrapf(err, format, args...), ErrSynthesis)
}

// Config creates a new error marked as ErrConfig.
func Config(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrConfig)
}

// IsParseError checks if an error is or wraps a parse failure
func IsParseError(err error) bool {
	return err != nil && Is(err, ErrParse)
}

// IsSynthesisError checks if an error is or wraps a synthesis failure
func IsSynthesisError(err error) bool {
	return err != nil && Is(err, ErrSynthesis)
}

// IsFilesystemError checks if an error is or wraps a filesystem failure
func IsFilesystemError(err error) bool {
	return err != nil && Is(err, ErrFilesystem)
}
