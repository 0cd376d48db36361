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

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirseerhq/langfuse-cli/internal/config"
	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/test/testutil"
)

func loadProfile(t *testing.T, fs afero.Fs, name string) config.Profile {
	t.Helper()
	profile, ok, err := config.NewStore(fs, testConfigPath).GetProfile(name)
	require.NoError(t, err)
	require.True(t, ok, "profile %q not found", name)
	return profile
}

func TestConfigSet(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{"data":[],"meta":{"page":1,"totalPages":0}}`)
	te := newTestEnv(t, nil)

	err := te.run("config", "set", "staging",
		"--public-key", "pk-lf-staging",
		"--secret-key", "sk-lf-staging",
		"--host", server.URL+"/",
	)
	require.NoError(t, err)

	req := server.LastRequest(t)
	assert.Equal(t, "/api/public/traces", req.Path)
	assert.Equal(t, "limit=1", req.RawQuery)

	assert.Equal(t, config.Profile{
		PublicKey: "pk-lf-staging",
		SecretKey: "sk-lf-staging",
		Host:      server.URL,
	}, loadProfile(t, te.fs, "staging"))
	testutil.AssertFileMode(t, te.fs, testConfigPath, 0o600)
	assert.Contains(t, te.stdout.String(), "Profile 'staging' saved to "+testConfigPath)
}

func TestConfigSetDoesNotSaveOnFailedConnection(t *testing.T) {
	server := testutil.NewErrorServer(t, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	te := newTestEnv(t, nil)

	err := te.run("config", "set", "staging", "--public-key", "pk-bad", "--secret-key", "sk-bad", "--host", server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, lferrors.ErrAuthentication))
	assert.Equal(t, 2, lferrors.ExitCode(err))
	assert.Contains(t, te.stderr.String(), "Connection test failed:")
	testutil.AssertFileNotExists(t, te.fs, testConfigPath)
}

func TestConfigSetRequiresKeys(t *testing.T) {
	te := newTestEnv(t, nil)

	err := te.run("config", "set", "staging", "--host", "https://cloud.langfuse.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, lferrors.ErrConfiguration))
	testutil.AssertFileNotExists(t, te.fs, testConfigPath)
}

func TestConfigSetupInteractive(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{"data":[]}`)
	te := newTestEnv(t, nil)
	te.app.stdin = strings.NewReader("work\npk-lf-work\nsk-lf-work\n" + server.URL + "\n")

	require.NoError(t, te.run("config", "setup"))

	assert.Equal(t, config.Profile{
		PublicKey: "pk-lf-work",
		SecretKey: "sk-lf-work",
		Host:      server.URL,
	}, loadProfile(t, te.fs, "work"))

	out := te.stdout.String()
	assert.Contains(t, out, "Profile name [default]: ")
	assert.Contains(t, out, "Host [https://cloud.langfuse.com]: ")
	assert.Contains(t, out, "Connection successful.")
}

func TestConfigSetupInteractiveDefaults(t *testing.T) {
	mock := langfuse.NewMockClient()
	te := newTestEnv(t, nil)
	te.useMock(mock)
	// Blank and missing answers take the bracketed defaults.
	te.app.stdin = strings.NewReader("\npk-lf-1\nsk-lf-1\n")

	require.NoError(t, te.run("config", "setup"))

	assert.Equal(t, []string{"TestConnection"}, mock.Calls)
	assert.Equal(t, config.Profile{
		PublicKey: "pk-lf-1",
		SecretKey: "sk-lf-1",
		Host:      config.DefaultHost,
	}, loadProfile(t, te.fs, config.DefaultProfile))
}

func TestConfigSetupNonInteractive(t *testing.T) {
	server := testutil.NewJSONServer(t, http.StatusOK, `{"data":[]}`)
	env := credsEnv(server.URL)
	env[config.EnvProfile] = "ci"
	te := newTestEnv(t, env)

	require.NoError(t, te.run("config", "setup", "--non-interactive"))

	profile := loadProfile(t, te.fs, "ci")
	assert.Equal(t, "pk-lf-test-public", profile.PublicKey)
	assert.Equal(t, server.URL, profile.Host)
}

func TestConfigSetupNonInteractiveMissingKeys(t *testing.T) {
	te := newTestEnv(t, nil)

	err := te.run("config", "setup", "--non-interactive")
	require.Error(t, err)
	assert.True(t, errors.Is(err, lferrors.ErrConfiguration))
	testutil.AssertFileNotExists(t, te.fs, testConfigPath)
}

func TestConfigShow(t *testing.T) {
	te := newTestEnv(t, map[string]string{config.EnvPublicKey: "pk-lf-1234567890"})
	testutil.WriteFile(t, te.fs, testConfigPath, `profiles:
  default:
    public_key: pk-lf-from-file
    secret_key: sk-lf-abcdefghij
`)

	require.NoError(t, te.run("config", "show", "-f", "json"))

	var rows []map[string]string
	decodeJSON(t, te.stdout.Bytes(), &rows)

	got := make(map[string]map[string]string)
	for _, row := range rows {
		got[row["setting"]] = row
	}
	assert.Equal(t, "default", got["profile"]["value"])
	assert.Equal(t, testConfigPath, got["config_file"]["value"])
	assert.Equal(t, map[string]string{"setting": "public_key", "value": "pk-lf-12********", "source": "env"}, got["public_key"])
	assert.Equal(t, map[string]string{"setting": "secret_key", "value": "sk-lf-ab********", "source": "profile"}, got["secret_key"])
	assert.Equal(t, map[string]string{"setting": "host", "value": config.DefaultHost, "source": "default"}, got["host"])
	assert.NotContains(t, te.stdout.String(), "sk-lf-abcdefghij")
}

func TestConfigList(t *testing.T) {
	te := newTestEnv(t, nil)

	require.NoError(t, te.run("config", "list"))
	assert.Equal(t, "No profiles configured.\nRun 'lf config setup' to create a profile.\n", te.stdout.String())

	testutil.WriteFile(t, te.fs, testConfigPath, `profiles:
  staging: {public_key: pk, secret_key: sk}
  default: {public_key: pk, secret_key: sk}
`)
	te.stdout.Reset()

	require.NoError(t, te.run("config", "list"))
	assert.Equal(t, "default\nstaging\n", te.stdout.String())
}
