// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines the error taxonomy shared by the transport engine,
// the pagination driver and the CLI. Every kind has a sentinel for errors.Is
// checks and a concrete type carrying its diagnostic payload. The sentinels
// map to specific exit codes in the CLI for proper scripting support.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrConfiguration indicates missing credentials or an invalid setting
	// detected before any network activity.
	// Maps to exit code 1.
	ErrConfiguration = errors.New("configuration error")

	// ErrValidation indicates a request payload failed validation before it
	// was sent.
	// Maps to exit code 1.
	ErrValidation = errors.New("validation failed")

	// ErrAuthentication indicates the server rejected the credentials (401/403).
	// Maps to exit code 2.
	ErrAuthentication = errors.New("authentication failed")

	// ErrNotFound indicates the requested resource does not exist (404).
	// Maps to exit code 2.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimit indicates the server is throttling requests (429).
	// Maps to exit code 2.
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrTimeout indicates a local request or connect timeout.
	// Maps to exit code 3.
	ErrTimeout = errors.New("request timed out")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrAPI indicates any other non-2xx response.
	// Maps to exit code 1.
	ErrAPI = errors.New("api error")

	// ErrResponseParse indicates a 2xx body that did not match the expected shape.
	// Maps to exit code 1.
	ErrResponseParse = errors.New("failed to parse response")
)

// ConfigurationError reports a problem with the resolved configuration.
type ConfigurationError struct {
	Detail string
	Err    error
}

// NewConfigurationError creates a ConfigurationError with a formatted detail.
func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Detail: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Detail, e.Err)
	}
	return "configuration error: " + e.Detail
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ValidationError reports one or more invalid request fields.
type ValidationError struct {
	Resource string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Resource, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// AuthenticationError is returned for 401 and 403 responses.
type AuthenticationError struct {
	StatusCode int
	Body       string
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode == 403 {
		return "authentication failed: credentials lack access to this resource (403). Check your public/secret key pair and project"
	}
	return "authentication failed: invalid credentials (401). Check your public/secret key pair"
}

func (e *AuthenticationError) Is(target error) bool { return target == ErrAuthentication }
func (e *AuthenticationError) IsAuthError() bool { return true }

// NotFoundError is returned for 404 responses and carries the body text.
type NotFoundError struct {
	Body string
}

func (e *NotFoundError) Error() string {
	if body := strings.TrimSpace(e.Body); body != "" {
		return "resource not found: " + body
	}
	return "resource not found"
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
func (e *NotFoundError) IsNotFoundError() bool { return true }

// RateLimitError is returned for 429 responses. Nothing retries it.
type RateLimitError struct {
	Body string
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded. Please wait before retrying"
}

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimit }
func (e *RateLimitError) IsRateLimitError() bool { return true }

// TimeoutError is returned when the request or connect timeout elapses.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return "request timed out"
}

func (e *TimeoutError) Unwrap() error { return e.Err }
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }
func (e *TimeoutError) IsNetworkError() bool { return true }
func (e *TimeoutError) IsTimeoutError() bool { return true }

// NetworkError wraps any transport failure that is not a timeout.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
func (e *NetworkError) Is(target error) bool { return target == ErrNetworkFailure }
func (e *NetworkError) IsNetworkError() bool { return true }

// APIError is the catch-all for non-2xx statuses, preserving status and body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if body := strings.TrimSpace(e.Body); body != "" {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, body)
	}
	return fmt.Sprintf("api error (status %d)", e.StatusCode)
}

func (e *APIError) Is(target error) bool { return target == ErrAPI }

// ResponseParseError is returned when a successful body cannot be decoded.
type ResponseParseError struct {
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("failed to parse response: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }
func (e *ResponseParseError) Is(target error) bool { return target == ErrResponseParse }
