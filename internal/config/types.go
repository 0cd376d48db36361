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

// Package config types define the profile file layout and the resolved
// credential values handed to the API client.
package config

const (
	// DefaultHost is used when no flag, environment variable or profile sets a host.
	DefaultHost = "https://cloud.langfuse.com"

	// DefaultProfile is the profile consulted when none is selected.
	DefaultProfile = "default"
)

// Environment variables consulted during resolution.
const (
	EnvPublicKey = "LANGFUSE_PUBLIC_KEY"
	EnvSecretKey = "LANGFUSE_SECRET_KEY"
	EnvHost      = "LANGFUSE_HOST"
	EnvProfile   = "LANGFUSE_PROFILE"
	EnvConfig    = "LANGFUSE_CONFIG"
)

// File is the on-disk profile file. Profiles are keyed by name.
type File struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile holds one named set of credentials. Any field may be empty, in
// which case resolution falls through to the next source.
type Profile struct {
	PublicKey string `yaml:"public_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	Host      string `yaml:"host,omitempty"`
}

// Credentials is the resolved credential tuple. It is immutable once
// resolved and is passed by value into client construction.
type Credentials struct {
	PublicKey string
	SecretKey string
	Host      string
}

// Overrides carries values supplied explicitly on the command line.
// Empty fields mean "not given".
type Overrides struct {
	Profile   string
	PublicKey string
	SecretKey string
	Host      string
}

// Source records where a resolved value came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceProfile Source = "profile"
	SourceDefault Source = "default"
	SourceUnset   Source = "unset"
)

// Config is the outcome of credential resolution.
type Config struct {
	Profile     string
	Credentials Credentials
	Sources     Sources
}

// Sources tracks the origin of each credential field.
type Sources struct {
	PublicKey Source
	SecretKey Source
	Host      Source
}

// LookupEnv matches the signature of os.LookupEnv so tests can inject a map.
type LookupEnv func(key string) (string, bool)
