// ABOUTME: Domain-level sentinel errors and the fetch error taxonomy
// ABOUTME: Sentinels are checked with errors.Is, FetchError with errors.As
package domain

import (
	"errors"
	"fmt"
)

// Validation errors, rejected at the boundary before any fetch or analysis.
var (
	// ErrURLRequired indicates the url field is missing or empty
	ErrURLRequired = errors.New("URL is required")

	// ErrTextRequired indicates the text field is missing or empty
	ErrTextRequired = errors.New("text content is required")

	// ErrClaimRequired indicates the claim field is missing or empty
	ErrClaimRequired = errors.New("claim text is required")

	// ErrInvalidURL indicates the url failed syntax or safety validation
	ErrInvalidURL = errors.New("invalid URL")

	// ErrBatchEmpty indicates the urls array is missing or empty
	ErrBatchEmpty = errors.New("valid array of URLs is required")

	// ErrBatchTooLarge indicates the urls array exceeds the batch cap
	ErrBatchTooLarge = errors.New("batch size over limit")
)

// Fetch errors
var (
	// ErrRobotsDisallowed indicates robots.txt forbids fetching the URL
	ErrRobotsDisallowed = errors.New("fetching disallowed by robots.txt")
)

// FetchErrorKind classifies why article retrieval failed.
type FetchErrorKind string

const (
	FetchTimeout        FetchErrorKind = "timeout"
	FetchProcessFailure FetchErrorKind = "process_failure"
	FetchHTTPError      FetchErrorKind = "http_error"
	FetchParseFailure   FetchErrorKind = "parse_failure"
)

// FetchError is raised only after both extraction paths fail.
type FetchError struct {
	Kind FetchErrorKind
	URL  string
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch failed (%s) for %s: %v", e.Kind, e.URL, e.Err)
	}
	return fmt.Sprintf("fetch failed (%s) for %s", e.Kind, e.URL)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError wraps cause into a classified fetch failure.
func NewFetchError(kind FetchErrorKind, url string, cause error) *FetchError {
	return &FetchError{Kind: kind, URL: url, Err: cause}
}

// IsValidationError reports whether err belongs to the boundary-rejection
// class that maps to a 400 response.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrURLRequired) ||
		errors.Is(err, ErrTextRequired) ||
		errors.Is(err, ErrClaimRequired) ||
		errors.Is(err, ErrInvalidURL) ||
		errors.Is(err, ErrBatchEmpty) ||
		errors.Is(err, ErrBatchTooLarge)
}
