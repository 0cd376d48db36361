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
package langfuse

import (
	"context"
	"errors"
	"testing"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
)

func TestMockClient_ListTraces(t *testing.T) {
	ctx := context.Background()

	t.Run("returns default test data", func(t *testing.T) {
		mock := NewMockClient()

		records, err := mock.ListTraces(ctx, ListOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 3 {
			t.Errorf("expected 3 records, got %d", len(records))
		}
		if mock.CallCount != 1 {
			t.Errorf("expected 1 call, got %d", mock.CallCount)
		}
	})

	t.Run("honors limit", func(t *testing.T) {
		mock := NewMockClient()

		records, err := mock.ListTraces(ctx, ListOptions{Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}
		if mock.LastOptions.Limit != 2 {
			t.Errorf("expected limit 2 to be tracked, got %d", mock.LastOptions.Limit)
		}
	})

	t.Run("simulates auth failure", func(t *testing.T) {
		mock := NewMockClientWithOptions(WithAuthFailure())

		_, err := mock.ListTraces(ctx, ListOptions{})
		if !errors.Is(err, lferrors.ErrAuthentication) {
			t.Errorf("expected ErrAuthentication, got %v", err)
		}
	})

	t.Run("simulates network failure", func(t *testing.T) {
		mock := NewMockClient()
		mock.ShouldFailNetwork = true

		_, err := mock.ListTraces(ctx, ListOptions{})
		if !errors.Is(err, lferrors.ErrNetworkFailure) {
			t.Errorf("expected ErrNetworkFailure, got %v", err)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		mock := NewMockClient()
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := mock.ListTraces(cancelled, ListOptions{})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestMockClient_SingleRecord(t *testing.T) {
	ctx := context.Background()
	mock := NewMockClientWithOptions(WithRecord(Record(`{"id":"p"}`)))

	rec, err := mock.GetPrompt(ctx, "greeting", PromptSelector{Label: "production"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(rec) != `{"id":"p"}` {
		t.Errorf("unexpected record %s", rec)
	}
	if mock.LastID != "greeting" {
		t.Errorf("expected LastID greeting, got %q", mock.LastID)
	}

	mock.Error = &lferrors.NotFoundError{Body: "missing"}
	if _, err := mock.GetTrace(ctx, "t"); !errors.Is(err, lferrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
