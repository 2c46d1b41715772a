// Package errors provides sentinel errors and error types for the chess rules
// engine. Rejections of a requested move (wrong turn, illegal destination)
// and contract violations (a caller handing the engine impossible geometry)
// both surface as errors here; errors.Is tells them apart.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongTurn indicates the selected piece belongs to the side not on move.
	ErrWrongTurn = errors.New("piece belongs to the other side")

	// ErrEmptySquare indicates the selected source square holds no piece.
	ErrEmptySquare = errors.New("empty square")

	// ErrSameSquare indicates source and destination are the same square.
	ErrSameSquare = errors.New("source and destination are the same square")

	// ErrInvalidSquare indicates malformed square text.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidNotation indicates malformed move notation.
	ErrInvalidNotation = errors.New("invalid move notation")

	// ErrInvalidPromotion indicates a missing or unsupported promotion piece.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrGameFinished indicates a command issued after checkmate.
	ErrGameFinished = errors.New("game has already finished")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrContractViolation indicates an internal query was called with
	// arguments that break its preconditions. It is never a user mistake.
	ErrContractViolation = errors.New("contract violation")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the ply being attempted, the
// move text and, for illegal moves, the human reason. It supports unwrapping
// via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // 1-based ply number that was attempted (0 if not applicable)
	MoveText string // The move in notation (if known)
	Reason   string // Why the move was refused (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	msg := strings.Join(parts, ", ")
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Err)
		}
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Reason)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// FENError represents a FEN parsing failure located at one field.
type FENError struct {
	Err   error  // The underlying error
	Field string // FEN field name (placement, side, castling, en passant)
	Got   string // Offending text
}

// Error returns a formatted error message with the field and offending text.
func (e *FENError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}
	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "FEN error"
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Contractf reports a broken precondition of an internal query.
func Contractf(format string, args ...interface{}) error {
	return Wrapf(ErrContractViolation, format, args...)
}
