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

// Package config resolves the credentials used to talk to the Langfuse API.
// Values come from several sources with a well-defined precedence order:
//
//  1. Command-line flags
//  2. Environment variables (LANGFUSE_PUBLIC_KEY, LANGFUSE_SECRET_KEY, LANGFUSE_HOST)
//  3. The selected profile in the YAML profile file
//  4. Built-in defaults (host only)
//
// Resolution is a pure function of its inputs. The environment is passed in
// as a lookup function and the profile file as a value, so nothing here reads
// process state implicitly.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
)

// Resolve merges overrides, environment and profile file into one Config.
// A nil file behaves like an empty one.
func Resolve(o Overrides, lookup LookupEnv, file *File) *Config {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	profileName := firstNonEmpty(o.Profile, envValue(lookup, EnvProfile), DefaultProfile)

	var profile Profile
	if file != nil && file.Profiles != nil {
		profile = file.Profiles[profileName]
	}

	cfg := &Config{Profile: profileName}
	cfg.Credentials.PublicKey, cfg.Sources.PublicKey = pick(o.PublicKey, envValue(lookup, EnvPublicKey), profile.PublicKey, "")
	cfg.Credentials.SecretKey, cfg.Sources.SecretKey = pick(o.SecretKey, envValue(lookup, EnvSecretKey), profile.SecretKey, "")
	cfg.Credentials.Host, cfg.Sources.Host = pick(o.Host, envValue(lookup, EnvHost), profile.Host, DefaultHost)
	cfg.Credentials.Host = strings.TrimRight(cfg.Credentials.Host, "/")

	return cfg
}

// Validate reports every missing credential field at once. The returned
// error is a ConfigurationError wrapping the individual problems.
func (c Credentials) Validate() error {
	var result *multierror.Error

	if strings.TrimSpace(c.PublicKey) == "" {
		result = multierror.Append(result, fmt.Errorf("public key is not set (--public-key or %s)", EnvPublicKey))
	}
	if strings.TrimSpace(c.SecretKey) == "" {
		result = multierror.Append(result, fmt.Errorf("secret key is not set (--secret-key or %s)", EnvSecretKey))
	}
	if strings.TrimSpace(c.Host) == "" {
		result = multierror.Append(result, fmt.Errorf("host is not set (--host or %s)", EnvHost))
	}

	if result == nil {
		return nil
	}
	result.ErrorFormat = joinErrors
	return &lferrors.ConfigurationError{
		Detail: "missing credentials. Run 'lf config setup' or set environment variables",
		Err:    result,
	}
}

// IsValid reports whether both keys and the host are present.
func (c Credentials) IsValid() bool {
	return c.Validate() == nil
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set keep their values. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// MaskKey hides all but the first eight characters of a key.
// Keys of eight characters or fewer are masked entirely.
func MaskKey(key string) string {
	runes := []rune(key)
	if len(runes) <= 8 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:8]) + "********"
}

// DefaultPath returns the profile file location. LANGFUSE_CONFIG wins, then
// the user config directory, then ~/.langfuse/config.yml.
func DefaultPath(lookup LookupEnv) string {
	if lookup != nil {
		if path := envValue(lookup, EnvConfig); path != "" {
			return expandPath(path)
		}
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "langfuse", "config.yml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".langfuse", "config.yml")
}

// pick returns the first non-empty candidate in precedence order and the
// source it came from.
func pick(flag, env, profile, def string) (string, Source) {
	switch {
	case flag != "":
		return flag, SourceFlag
	case env != "":
		return env, SourceEnv
	case profile != "":
		return profile, SourceProfile
	case def != "":
		return def, SourceDefault
	default:
		return "", SourceUnset
	}
}

func envValue(lookup LookupEnv, key string) string {
	v, ok := lookup(key)
	if !ok {
		return ""
	}
	return strings.TrimSpace(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

func joinErrors(errs []error) string {
	parts := make([]string, 0, len(errs))
	for _, err := range errs {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "; ")
}
