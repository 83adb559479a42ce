package model

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound  = errors.New("player not found")
	ErrPlayerExists    = errors.New("player already exists")
	ErrAmbiguousPlayer = errors.New("name matches multiple players")

	// Match report errors
	ErrPointDiffRange    = errors.New("point difference out of range")
	ErrSamePlayer        = errors.New("winner and loser are the same player")
	ErrDailyCap          = errors.New("daily match cap reached")
	ErrStaleBackdate     = errors.New("retroactive date is too far in the past")
	ErrFormatUnsupported = errors.New("format not supported for rating updates")

	// Snapshot errors
	ErrNoSnapshot = errors.New("no snapshot data")
)

// ValidationError reports a malformed input field along with what was
// expected. It unwraps to the matching sentinel where one exists.
type ValidationError struct {
	Field string
	Value any
	Want  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: want %s", e.Field, e.Value, e.Want)
}

func (e *ValidationError) Unwrap() error {
	if e.Field == "point difference" {
		return ErrPointDiffRange
	}
	return nil
}

func pointDiffError(got int) error {
	return &ValidationError{
		Field: "point difference",
		Value: got,
		Want:  fmt.Sprintf("%d to %d", MinPointDiff, MaxPointDiff),
	}
}

// AmbiguousPlayerError lists the candidate names a query matched, for the
// caller to disambiguate
type AmbiguousPlayerError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousPlayerError) Error() string {
	return fmt.Sprintf("name %q matches multiple players: %s",
		e.Query, strings.Join(e.Candidates, ", "))
}

func (e *AmbiguousPlayerError) Unwrap() error {
	return ErrAmbiguousPlayer
}
