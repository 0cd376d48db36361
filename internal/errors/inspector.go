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

package errors

import "errors"

// Inspector provides methods for classifying errors returned by the API
// client, regardless of how deeply they have been wrapped.
type Inspector interface {
	// IsAuthError returns true if the error represents an authentication or authorization failure.
	IsAuthError(err error) bool

	// IsNotFoundError returns true if the error represents a resource not found error.
	IsNotFoundError(err error) bool

	// IsRateLimitError returns true if the error represents a rate limit error.
	IsRateLimitError(err error) bool

	// IsTimeoutError returns true if a local timeout ended the request.
	IsTimeoutError(err error) bool

	// IsNetworkError returns true if the error represents a network connectivity error.
	// Timeouts count as network errors.
	IsNetworkError(err error) bool
}

// ErrorChainInspector checks errors in the chain using errors.As against
// capability interfaces, then falls back to the package sentinels.
type ErrorChainInspector struct{}

// NewInspector creates a new ErrorChainInspector.
func NewInspector() Inspector {
	return &ErrorChainInspector{}
}

// IsAuthError checks the error chain for an authentication failure.
func (e *ErrorChainInspector) IsAuthError(err error) bool {
	var authErr interface{ IsAuthError() bool }
	if errors.As(err, &authErr) && authErr.IsAuthError() {
		return true
	}
	return errors.Is(err, ErrAuthentication)
}

// IsNotFoundError checks the error chain for a missing resource.
func (e *ErrorChainInspector) IsNotFoundError(err error) bool {
	var notFoundErr interface{ IsNotFoundError() bool }
	if errors.As(err, &notFoundErr) && notFoundErr.IsNotFoundError() {
		return true
	}
	return errors.Is(err, ErrNotFound)
}

// IsRateLimitError checks the error chain for server throttling.
func (e *ErrorChainInspector) IsRateLimitError(err error) bool {
	var rateLimitErr interface{ IsRateLimitError() bool }
	if errors.As(err, &rateLimitErr) && rateLimitErr.IsRateLimitError() {
		return true
	}
	return errors.Is(err, ErrRateLimit)
}

// IsTimeoutError checks the error chain for a local timeout.
func (e *ErrorChainInspector) IsTimeoutError(err error) bool {
	var timeoutErr interface{ IsTimeoutError() bool }
	if errors.As(err, &timeoutErr) && timeoutErr.IsTimeoutError() {
		return true
	}
	return errors.Is(err, ErrTimeout)
}

// IsNetworkError checks the error chain for a transport failure.
func (e *ErrorChainInspector) IsNetworkError(err error) bool {
	var networkErr interface{ IsNetworkError() bool }
	if errors.As(err, &networkErr) && networkErr.IsNetworkError() {
		return true
	}
	return errors.Is(err, ErrNetworkFailure) || errors.Is(err, ErrTimeout)
}

// ExitCode maps an error to the CLI exit code documented for its kind.
// Authentication, not found and rate limit errors return 2, network and
// timeout errors return 3, and everything else returns 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	inspector := NewInspector()
	switch {
	case inspector.IsAuthError(err),
		inspector.IsNotFoundError(err),
		inspector.IsRateLimitError(err):
		return 2
	case inspector.IsNetworkError(err):
		return 3
	default:
		return 1
	}
}
