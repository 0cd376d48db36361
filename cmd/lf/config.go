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
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"

	"github.com/sirseerhq/langfuse-cli/internal/config"
	"github.com/sirseerhq/langfuse-cli/internal/output"
)

func newConfigCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage credential profiles",
		Long: `Manage credential profiles.

Profiles are stored in a YAML file readable only by the current user. The
location defaults to the user config directory and can be changed with
LANGFUSE_CONFIG.`,
	}
	cmd.AddCommand(
		newConfigSetupCommand(a),
		newConfigSetCommand(a),
		newConfigShowCommand(a),
		newConfigListCommand(a),
	)
	return cmd
}

func newConfigSetupCommand(a *app) *cobra.Command {
	var nonInteractive bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create or update a profile and test the connection",
		Long: `Create or update a profile.

By default the profile name, keys and host are read from stdin. With
--non-interactive they come from --profile, --public-key, --secret-key and
--host, falling back to LANGFUSE_PROFILE, LANGFUSE_PUBLIC_KEY,
LANGFUSE_SECRET_KEY and LANGFUSE_HOST. The profile is saved only if a test
request with the new credentials succeeds.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				name  string
				creds config.Credentials
				err   error
			)
			if nonInteractive {
				cfg := config.Resolve(a.overrides(), a.lookupEnv, nil)
				name, creds = cfg.Profile, cfg.Credentials
			} else {
				name, creds, err = a.promptProfile()
				if err != nil {
					return err
				}
			}
			return a.saveTestedProfile(cmd.Context(), name, creds)
		},
	}

	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Read values from flags and environment instead of stdin")

	return cmd
}

// promptProfile asks for each profile field on stdin. Empty answers take
// the default shown in brackets.
func (a *app) promptProfile() (string, config.Credentials, error) {
	reader := bufio.NewReader(a.stdin)
	var creds config.Credentials

	fmt.Fprintln(a.stdout, "Langfuse CLI setup")
	fmt.Fprintln(a.stdout, "Find your API keys in the Langfuse project settings.")
	fmt.Fprintln(a.stdout)

	defaultName := a.flags.profile
	if defaultName == "" {
		defaultName = config.DefaultProfile
	}

	name, err := ask(a.stdout, reader, "Profile name", defaultName)
	if err != nil {
		return "", creds, err
	}
	if creds.PublicKey, err = ask(a.stdout, reader, "Public key", a.flags.publicKey); err != nil {
		return "", creds, err
	}
	if creds.SecretKey, err = ask(a.stdout, reader, "Secret key", a.flags.secretKey); err != nil {
		return "", creds, err
	}

	defaultHost := a.flags.host
	if defaultHost == "" {
		defaultHost = config.DefaultHost
	}
	if creds.Host, err = ask(a.stdout, reader, "Host", defaultHost); err != nil {
		return "", creds, err
	}
	creds.Host = strings.TrimRight(creds.Host, "/")

	return name, creds, nil
}

// ask prints one prompt and reads a line. EOF ends the answer.
func ask(w io.Writer, r *bufio.Reader, label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(w, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}

	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func newConfigSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <profile>",
		Short: "Store credentials under a profile name",
		Long: `Store credentials under a profile name.

The keys are taken from --public-key and --secret-key, the host from --host
(default https://cloud.langfuse.com). The profile is saved only if a test
request with these credentials succeeds.`,
		Example: `  lf config set staging --public-key pk-lf-... --secret-key sk-lf-... --host https://langfuse.internal`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			host := a.flags.host
			if host == "" {
				host = config.DefaultHost
			}
			creds := config.Credentials{
				PublicKey: a.flags.publicKey,
				SecretKey: a.flags.secretKey,
				Host:      strings.TrimRight(host, "/"),
			}
			return a.saveTestedProfile(cmd.Context(), args[0], creds)
		},
	}
}

// saveTestedProfile checks the credentials against the API and stores them
// only when the test request succeeds.
func (a *app) saveTestedProfile(ctx context.Context, name string, creds config.Credentials) error {
	if strings.TrimSpace(name) == "" {
		name = config.DefaultProfile
	}

	client, err := a.newClient(creds)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stderr, "Testing connection to %s...\n", creds.Host)
	if err := client.TestConnection(ctx); err != nil {
		fmt.Fprintf(a.stderr, "Connection test failed: %v\n", err)
		return err
	}

	store := a.store()
	profile := config.Profile{
		PublicKey: creds.PublicKey,
		SecretKey: creds.SecretKey,
		Host:      creds.Host,
	}
	if err := store.SetProfile(name, profile); err != nil {
		return err
	}

	a.logger.Debug("profile saved", "profile", name, "path", store.Path())
	fmt.Fprintln(a.stdout, "Connection successful.")
	fmt.Fprintf(a.stdout, "Profile '%s' saved to %s\n", name, store.Path())
	return nil
}

// setting is one row of 'config show'.
type setting struct {
	Setting string `mapstructure:"setting"`
	Value   string `mapstructure:"value"`
	Source  string `mapstructure:"source"`
}

func newConfigShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration with keys masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(output.FormatTable)
			if err != nil {
				return err
			}
			cfg, err := a.resolve()
			if err != nil {
				return err
			}

			rows, err := settingRows(cfg, a.store().Path())
			if err != nil {
				return err
			}
			return a.render(rows, format)
		},
	}
}

// settingRows describes cfg as generic rows for the output formatters.
func settingRows(cfg *config.Config, path string) ([]map[string]interface{}, error) {
	settings := []setting{
		{Setting: "profile", Value: cfg.Profile},
		{Setting: "config_file", Value: path},
		{Setting: "public_key", Value: config.MaskKey(cfg.Credentials.PublicKey), Source: string(cfg.Sources.PublicKey)},
		{Setting: "secret_key", Value: config.MaskKey(cfg.Credentials.SecretKey), Source: string(cfg.Sources.SecretKey)},
		{Setting: "host", Value: cfg.Credentials.Host, Source: string(cfg.Sources.Host)},
	}

	var rows []map[string]interface{}
	if err := mapstructure.Decode(settings, &rows); err != nil {
		return nil, fmt.Errorf("failed to summarize configuration: %w", err)
	}
	return rows, nil
}

func newConfigListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profile names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.store().ListProfiles()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Fprintln(a.stdout, "No profiles configured.")
				fmt.Fprintln(a.stdout, "Run 'lf config setup' to create a profile.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(a.stdout, name)
			}
			return nil
		},
	}
}
