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
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sirseerhq/langfuse-cli/internal/config"
	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/internal/output"
)

// envLogLevel overrides the log level chosen by --verbose.
const envLogLevel = "LF_LOG_LEVEL"

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	profile   string
	publicKey string
	secretKey string
	host      string
	format    output.Format
	output    string
	verbose   bool
	noColor   bool
}

// app carries the process dependencies of the command tree. Tests replace
// them with in-memory versions.
type app struct {
	fs         afero.Fs
	lookupEnv  config.LookupEnv
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	now        func() time.Time
	isTerminal func() bool
	newClient  func(creds config.Credentials) (langfuse.Client, error)

	flags  globalFlags
	logger hclog.Logger
}

// newApp wires the app to the real process environment.
func newApp() *app {
	a := &app{
		fs:        afero.NewOsFs(),
		lookupEnv: os.LookupEnv,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		now:       time.Now,
		isTerminal: func() bool {
			fd := os.Stderr.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		logger: hclog.NewNullLogger(),
	}
	a.newClient = a.restClient
	return a
}

func newRootCommand(a *app) *cobra.Command {
	a.flags = globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "lf",
		Short: "Query and manage Langfuse observability data",
		Long: `lf is a command-line client for the Langfuse public API.

It lists and fetches traces, sessions, observations, scores, prompts and
datasets, runs metrics queries, and renders the results as a table, JSON,
CSV or Markdown.

Credentials are resolved from flags, then LANGFUSE_PUBLIC_KEY,
LANGFUSE_SECRET_KEY and LANGFUSE_HOST, then the selected profile
(see 'lf config setup').`,
		Version:       version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.setupLogger()
		},
	}
	rootCmd.SetIn(a.stdin)
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.profile, "profile", "", "Profile to use (overrides LANGFUSE_PROFILE)")
	flags.StringVar(&a.flags.publicKey, "public-key", "", "Langfuse public key (overrides LANGFUSE_PUBLIC_KEY)")
	flags.StringVar(&a.flags.secretKey, "secret-key", "", "Langfuse secret key (overrides LANGFUSE_SECRET_KEY)")
	flags.StringVar(&a.flags.host, "host", "", "Langfuse host URL (overrides LANGFUSE_HOST)")
	flags.VarP(&a.flags.format, "format", "f", "Output format: table, json, csv or markdown")
	flags.StringVarP(&a.flags.output, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&a.flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newTracesCommand(a),
		newSessionsCommand(a),
		newObservationsCommand(a),
		newScoresCommand(a),
		newMetricsCommand(a),
		newPromptsCommand(a),
		newDatasetsCommand(a),
		newConfigCommand(a),
	)

	return rootCmd
}

// setupLogger builds the stderr logger from --verbose, LF_LOG_LEVEL and the
// color settings.
func (a *app) setupLogger() {
	level := hclog.Warn
	if a.flags.verbose {
		level = hclog.Debug
	}
	if name, ok := a.lookupEnv(envLogLevel); ok && name != "" {
		if parsed := hclog.LevelFromString(name); parsed != hclog.NoLevel {
			level = parsed
		}
	}

	colorOpt := hclog.AutoColor
	if a.colorDisabled() {
		colorOpt = hclog.ColorOff
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "lf",
		Level:  level,
		Output: a.stderr,
		Color:  colorOpt,
	})
}

func (a *app) colorDisabled() bool {
	if a.flags.noColor {
		return true
	}
	_, set := a.lookupEnv("NO_COLOR")
	return set
}

// store opens the profile file selected by LANGFUSE_CONFIG or the default
// location.
func (a *app) store() *config.Store {
	return config.NewStore(a.fs, config.DefaultPath(a.lookupEnv))
}

func (a *app) overrides() config.Overrides {
	return config.Overrides{
		Profile:   a.flags.profile,
		PublicKey: a.flags.publicKey,
		SecretKey: a.flags.secretKey,
		Host:      a.flags.host,
	}
}

// resolve merges flags, environment and the profile file.
func (a *app) resolve() (*config.Config, error) {
	file, err := a.store().Load()
	if err != nil {
		return nil, err
	}
	return config.Resolve(a.overrides(), a.lookupEnv, file), nil
}

// client resolves credentials and constructs the API client. It fails with
// a ConfigurationError before any network activity when credentials are
// incomplete.
func (a *app) client() (langfuse.Client, error) {
	cfg, err := a.resolve()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("resolved configuration",
		"profile", cfg.Profile,
		"host", cfg.Credentials.Host,
		"public_key_source", cfg.Sources.PublicKey,
		"secret_key_source", cfg.Sources.SecretKey,
		"host_source", cfg.Sources.Host,
	)
	return a.newClient(cfg.Credentials)
}

func (a *app) restClient(creds config.Credentials) (langfuse.Client, error) {
	return langfuse.NewRESTClient(creds,
		langfuse.WithLogger(a.logger.Named("http")),
		langfuse.WithUserAgent("lf/"+version),
	)
}

// outputFormat returns the --format value, or def when the flag is unset.
func (a *app) outputFormat(def output.Format) (output.Format, error) {
	if a.flags.format == "" {
		return def, nil
	}
	return output.ParseFormat(string(a.flags.format))
}

// writer returns the sink selected by --output.
func (a *app) writer() output.OutputWriter {
	return output.NewWriter(a.stdout, a.fs, a.flags.output)
}

// render formats data and writes it to the selected sink.
func (a *app) render(data interface{}, format output.Format) error {
	return a.write(func(w output.OutputWriter) error {
		return output.Render(w, data, format)
	})
}

// write hands the sink to fn and reports file destinations when verbose.
func (a *app) write(fn func(w output.OutputWriter) error) error {
	w := a.writer()
	if err := fn(w); err != nil {
		return err
	}
	if fw, ok := w.(*output.FileWriter); ok && a.flags.verbose {
		fmt.Fprintf(a.stderr, "Output written to: %s\n", fw.Path())
	}
	return nil
}

// listFunc is a paginated list operation of the client.
type listFunc func(langfuse.Client, context.Context, langfuse.ListOptions) ([]langfuse.Record, error)

// getFunc fetches one record by identifier.
type getFunc func(langfuse.Client, context.Context, string) (langfuse.Record, error)

// runList performs a paginated list with the progress line and renders the
// result. Filters must already be validated.
func (a *app) runList(ctx context.Context, fetch listFunc, pages listFlags, filters langfuse.Params) error {
	format, err := a.outputFormat(output.FormatTable)
	if err != nil {
		return err
	}
	progress := a.newProgress()
	opts, err := pages.options(filters, progress.update)
	if err != nil {
		return err
	}
	client, err := a.client()
	if err != nil {
		return err
	}

	records, err := fetch(client, ctx, opts)
	progress.done()
	if err != nil {
		return err
	}

	return a.render(records, format)
}

// runGet fetches one record and renders it.
func (a *app) runGet(ctx context.Context, fetch getFunc, id string, def output.Format) error {
	format, err := a.outputFormat(def)
	if err != nil {
		return err
	}
	client, err := a.client()
	if err != nil {
		return err
	}

	record, err := fetch(client, ctx, id)
	if err != nil {
		return err
	}
	return a.render(record, format)
}
