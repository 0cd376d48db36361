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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Store reads and writes the YAML profile file. It holds secrets, so it is
// always written with 0600 permissions.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store for the profile file at path on fs.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the location of the profile file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the profile file. A missing file yields an empty File.
func (s *Store) Load() (*File, error) {
	file := &File{Profiles: make(map[string]Profile)}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return file, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", s.path, err)
	}

	if err := yaml.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", s.path, err)
	}
	if file.Profiles == nil {
		file.Profiles = make(map[string]Profile)
	}

	return file, nil
}

// Save atomically writes the profile file using a temp file and rename.
func (s *Store) Save(file *File) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tempFile := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tempFile, data, 0o600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	// WriteFile only applies the mode on create
	if err := s.fs.Chmod(tempFile, 0o600); err != nil {
		_ = s.fs.Remove(tempFile)
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}

	if err := s.fs.Rename(tempFile, s.path); err != nil {
		_ = s.fs.Remove(tempFile)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// SetProfile creates or replaces the named profile.
func (s *Store) SetProfile(name string, profile Profile) error {
	if name == "" {
		return fmt.Errorf("profile name cannot be empty")
	}

	file, err := s.Load()
	if err != nil {
		return err
	}
	file.Profiles[name] = profile
	return s.Save(file)
}

// GetProfile returns the named profile and whether it exists.
func (s *Store) GetProfile(name string) (Profile, bool, error) {
	file, err := s.Load()
	if err != nil {
		return Profile{}, false, err
	}
	profile, ok := file.Profiles[name]
	return profile, ok, nil
}

// ListProfiles returns the profile names in sorted order.
func (s *Store) ListProfiles() ([]string, error) {
	file, err := s.Load()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(file.Profiles))
	for name := range file.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
