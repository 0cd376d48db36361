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

package main

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/test/testutil"
)

func TestPromptsList(t *testing.T) {
	server := testutil.NewPagedServer(t, [][]map[string]interface{}{{{"name": "summarize", "versions": []int{1, 2}}}}, true)
	te := newTestEnv(t, credsEnv(server.URL))

	require.NoError(t, te.run("prompts", "list", "--label", "production", "--tag", "rag", "-f", "markdown"))

	req := server.LastRequest(t)
	assert.Equal(t, "/api/public/v2/prompts", req.Path)
	assert.Equal(t, "limit=50&page=1&label=production&tag=rag", req.RawQuery)
	assert.Equal(t, "| name | versions |\n| --- | --- |\n| summarize | [1,2] |\n", te.stdout.String())
}

func TestPromptsGet(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{"name":"summarize","version":3,"type":"text","prompt":"Summarize {{text}}"}`)
	te := newTestEnv(t, credsEnv(server.URL))

	require.NoError(t, te.run("prompts", "get", "summarize", "--label", "production"))

	req := server.LastRequest(t)
	assert.Equal(t, "/api/public/v2/prompts/summarize", req.Path)
	assert.Equal(t, "label=production", req.RawQuery)
	assert.True(t, strings.HasPrefix(te.stdout.String(), "{\n  \"name\": \"summarize\""), "prompts get defaults to JSON")
}

func TestPromptsGetEscapesName(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{}`)
	te := newTestEnv(t, credsEnv(server.URL))

	require.NoError(t, te.run("prompts", "get", "team/summarize v2", "--version", "2"))

	req := server.LastRequest(t)
	assert.Equal(t, "/api/public/v2/prompts/team%2Fsummarize%20v2", req.Path)
	assert.Equal(t, "version=2", req.RawQuery)
}

func TestPromptsGetRaw(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "text",
			body: `{"type":"text","prompt":"Hello {{name}} & <friends>"}`,
			want: "Hello {{name}} & <friends>\n",
		},
		{
			name: "chat",
			body: `{"type":"chat","prompt":[{"role":"system","content":"Be brief"}]}`,
			want: "[\n  {\n    \"content\": \"Be brief\",\n    \"role\": \"system\"\n  }\n]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewJSONServer(t, http.StatusOK, tt.body)
			te := newTestEnv(t, credsEnv(server.URL))

			require.NoError(t, te.run("prompts", "get", "p", "--raw"))
			assert.Equal(t, tt.want, te.stdout.String())
		})
	}
}

func TestPromptsGetRejectsVersionAndLabel(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{}`)
	te := newTestEnv(t, credsEnv(server.URL))

	err := te.run("prompts", "get", "p", "--version", "1", "--label", "production")
	require.Error(t, err)
	assert.True(t, errors.Is(err, lferrors.ErrConfiguration))
	assert.Zero(t, server.RequestCount())
}

func TestPromptsCreateText(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusCreated, `{"name":"summarize","version":4}`)
	te := newTestEnv(t, credsEnv(server.URL))
	te.app.stdin = strings.NewReader("Summarize:\n{{text}}\n")

	err := te.run("prompts", "create-text",
		"--name", "summarize",
		"--labels", "production,staging",
		"--tags", "rag",
		"-m", "tighter wording",
		"--config", `{"temperature":0.2}`,
		"-f", "json",
	)
	require.NoError(t, err)

	req := server.LastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/public/v2/prompts", req.Path)

	var body map[string]interface{}
	decodeJSON(t, req.Body, &body)
	assert.Equal(t, "summarize", body["name"])
	assert.Equal(t, "text", body["type"])
	assert.Equal(t, "Summarize:\n{{text}}\n", body["prompt"])
	assert.Equal(t, []interface{}{"production", "staging"}, body["labels"])
	assert.Equal(t, []interface{}{"rag"}, body["tags"])
	assert.Equal(t, "tighter wording", body["commitMessage"])
	assert.Equal(t, map[string]interface{}{"temperature": 0.2}, body["config"])
}

func TestPromptsCreateChatFromFile(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusCreated, `{"name":"assistant","version":1}`)
	te := newTestEnv(t, credsEnv(server.URL))
	testutil.WriteFile(t, te.fs, "/prompts/assistant.json",
		`[{"role":"system","content":"You are terse."},{"role":"user","content":"{{question}}"}]`)

	require.NoError(t, te.run("prompts", "create-chat", "--name", "assistant", "--file", "/prompts/assistant.json"))

	var body struct {
		Type   string                 `json:"type"`
		Prompt []langfuse.ChatMessage `json:"prompt"`
	}
	decodeJSON(t, server.LastRequest(t).Body, &body)
	assert.Equal(t, "chat", body.Type)
	assert.Equal(t, []langfuse.ChatMessage{
		{Role: "system", Content: "You are terse."},
		{Role: "user", Content: "{{question}}"},
	}, body.Prompt)
}

func TestPromptsCreateRejectsBadContent(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdin    string
		sentinel error
	}{
		{name: "empty text", args: []string{"create-text", "--name", "p"}, stdin: "  ", sentinel: lferrors.ErrValidation},
		{name: "missing name", args: []string{"create-text"}, stdin: "hi", sentinel: lferrors.ErrValidation},
		{name: "chat not json", args: []string{"create-chat", "--name", "p"}, stdin: "hello", sentinel: lferrors.ErrConfiguration},
		{name: "chat message without content", args: []string{"create-chat", "--name", "p"}, stdin: `[{"role":"user"}]`, sentinel: lferrors.ErrValidation},
		{name: "config not an object", args: []string{"create-text", "--name", "p", "--config", "[1]"}, stdin: "hi", sentinel: lferrors.ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewJSONServer(t, http.StatusCreated, `{}`)
			te := newTestEnv(t, credsEnv(server.URL))
			te.app.stdin = strings.NewReader(tt.stdin)

			err := te.run(append([]string{"prompts"}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)
			assert.Zero(t, server.RequestCount())
		})
	}
}

func TestPromptsLabel(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{"name":"summarize","version":3,"labels":["production"]}`)
	te := newTestEnv(t, credsEnv(server.URL))

	require.NoError(t, te.run("prompts", "label", "summarize", "3", "--labels", "production,staging"))

	req := server.LastRequest(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/api/public/v2/prompts/summarize/versions/3", req.Path)
	assert.JSONEq(t, `{"newLabels":["production","staging"]}`, string(req.Body))

	err := te.run("prompts", "label", "summarize", "latest", "--labels", "production")
	require.Error(t, err)
	assert.True(t, errors.Is(err, lferrors.ErrConfiguration))
	assert.Equal(t, 1, server.RequestCount())
}

func TestPromptsDelete(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusNoContent, "")
	te := newTestEnv(t, credsEnv(server.URL))

	require.NoError(t, te.run("prompts", "delete", "old-prompt", "--version", "2", "-v"))

	req := server.LastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/public/v2/prompts/old-prompt", req.Path)
	assert.Equal(t, "version=2", req.RawQuery)
	assert.Empty(t, te.stdout.String())
	assert.Contains(t, te.stderr.String(), "Prompt 'old-prompt' deleted successfully")
}
