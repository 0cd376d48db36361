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
	"net/http"
	"strconv"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
)

func (c *RESTClient) ListPrompts(ctx context.Context, opts ListOptions) ([]Record, error) {
	return c.list(ctx, endpoints.Prompts, opts)
}

// GetPrompt returns one prompt version. Without a selector the server
// returns the version labeled "production".
func (c *RESTClient) GetPrompt(ctx context.Context, name string, sel PromptSelector) (Record, error) {
	if err := sel.validate(); err != nil {
		return nil, err
	}
	return c.get(ctx, endpoints.Prompts.Sub(name), sel.params())
}

// CreatePrompt creates a new version of a text or chat prompt.
func (c *RESTClient) CreatePrompt(ctx context.Context, req PromptRequest) (Record, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return c.send(ctx, http.MethodPost, endpoints.Prompts, req)
}

// UpdatePromptLabels replaces the labels of one prompt version.
func (c *RESTClient) UpdatePromptLabels(ctx context.Context, name string, version int, labels []string) (Record, error) {
	if version < 1 {
		return nil, lferrors.NewConfigurationError("prompt version must be a positive integer, got %d", version)
	}
	if labels == nil {
		labels = []string{}
	}
	endpoint := endpoints.Prompts.Sub(name, "versions", strconv.Itoa(version))
	return c.send(ctx, http.MethodPatch, endpoint, promptLabelsRequest{NewLabels: labels})
}

// DeletePrompt deletes every version of a prompt, or only the versions
// matching sel.
func (c *RESTClient) DeletePrompt(ctx context.Context, name string, sel PromptSelector) error {
	if err := sel.validate(); err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, endpoints.Prompts.Sub(name), sel.params(), nil, nil)
}
