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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	lferrors "github.com/sirseerhq/langfuse-cli/internal/errors"
	"github.com/sirseerhq/langfuse-cli/internal/langfuse"
	"github.com/sirseerhq/langfuse-cli/internal/output"
)

func newPromptsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Manage versioned prompts",
	}
	cmd.AddCommand(
		newPromptsListCommand(a),
		newPromptsGetCommand(a),
		newPromptsCreateCommand(a, langfuse.PromptTypeText),
		newPromptsCreateCommand(a, langfuse.PromptTypeChat),
		newPromptsLabelCommand(a),
		newPromptsDeleteCommand(a),
	)
	return cmd
}

func newPromptsListCommand(a *app) *cobra.Command {
	var pages listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filters, err := a.filters(cmd).
				str("name").
				str("label").
				str("tag").
				build()
			if err != nil {
				return err
			}
			return a.runList(cmd.Context(), langfuse.Client.ListPrompts, pages, filters)
		},
	}

	cmd.Flags().String("name", "", "Filter by prompt name")
	cmd.Flags().String("label", "", "Filter by label")
	cmd.Flags().String("tag", "", "Filter by tag")
	addListFlags(cmd, &pages)

	return cmd
}

func addSelectorFlags(cmd *cobra.Command, sel *langfuse.PromptSelector) {
	cmd.Flags().IntVar(&sel.Version, "version", 0, "Prompt version")
	cmd.Flags().StringVar(&sel.Label, "label", "", "Prompt label, e.g. production")
}

// promptContent is the part of a prompt record that --raw prints.
type promptContent struct {
	Type   string      `mapstructure:"type"`
	Prompt interface{} `mapstructure:"prompt"`
}

func newPromptsGetCommand(a *app) *cobra.Command {
	var (
		sel langfuse.PromptSelector
		raw bool
	)

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Get a prompt, optionally at a version or label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(output.FormatJSON)
			if err != nil {
				return err
			}
			client, err := a.client()
			if err != nil {
				return err
			}

			prompt, err := client.GetPrompt(cmd.Context(), args[0], sel)
			if err != nil {
				return err
			}
			if !raw {
				return a.render(prompt, format)
			}

			content, err := rawPromptContent(prompt)
			if err != nil {
				return err
			}
			return a.write(func(w output.OutputWriter) error {
				return w.WriteOutput(content)
			})
		},
	}

	addSelectorFlags(cmd, &sel)
	cmd.Flags().BoolVar(&raw, "raw", false, "Print only the prompt content")

	return cmd
}

// rawPromptContent extracts the text of a text prompt, or the messages of a
// chat prompt as indented JSON.
func rawPromptContent(record langfuse.Record) (string, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(record, &fields); err != nil {
		return "", &lferrors.ResponseParseError{Err: err}
	}

	var content promptContent
	if err := mapstructure.Decode(fields, &content); err != nil {
		return "", &lferrors.ResponseParseError{Err: err}
	}

	if text, ok := content.Prompt.(string); ok {
		return text, nil
	}
	if content.Prompt == nil {
		return "", &lferrors.ResponseParseError{Err: fmt.Errorf("%s prompt has no content", content.Type)}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(content.Prompt); err != nil {
		return "", fmt.Errorf("failed to format prompt messages: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

type promptCreateFlags struct {
	name    string
	file    string
	message string
	labels  []string
	tags    []string
	config  string
}

func newPromptsCreateCommand(a *app, promptType string) *cobra.Command {
	var f promptCreateFlags

	cmd := &cobra.Command{
		Use:  "create-" + promptType,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPromptsCreate(cmd, a, promptType, f)
		},
	}
	if promptType == langfuse.PromptTypeChat {
		cmd.Short = "Create a new version of a chat prompt"
		cmd.Long = `Create a new version of a chat prompt.

The messages are a JSON array of {"role": ..., "content": ...} objects,
read from --file or from stdin.`
	} else {
		cmd.Short = "Create a new version of a text prompt"
		cmd.Long = `Create a new version of a text prompt.

The prompt text is read from --file or from stdin.`
	}

	cmd.Flags().StringVar(&f.name, "name", "", "Prompt name (required)")
	cmd.Flags().StringVar(&f.file, "file", "", "Read content from this file (default: stdin)")
	cmd.Flags().StringVarP(&f.message, "message", "m", "", "Commit message for this version")
	cmd.Flags().StringSliceVar(&f.labels, "labels", nil, "Labels for this version, e.g. production")
	cmd.Flags().StringSliceVar(&f.tags, "tags", nil, "Tags for the prompt")
	cmd.Flags().StringVar(&f.config, "config", "", "Model config as a JSON object")

	return cmd
}

func runPromptsCreate(cmd *cobra.Command, a *app, promptType string, f promptCreateFlags) error {
	format, err := a.outputFormat(output.FormatTable)
	if err != nil {
		return err
	}

	promptConfig, err := parseJSONObject("config", f.config)
	if err != nil {
		return err
	}

	content, err := a.readContent(f.file)
	if err != nil {
		return err
	}

	req := langfuse.PromptRequest{
		Name:          f.name,
		Type:          promptType,
		Labels:        f.labels,
		Tags:          f.tags,
		Config:        promptConfig,
		CommitMessage: f.message,
	}
	if promptType == langfuse.PromptTypeChat {
		var messages []langfuse.ChatMessage
		if err := json.Unmarshal([]byte(content), &messages); err != nil {
			return &lferrors.ConfigurationError{Detail: "chat prompt content must be a JSON array of {role, content} messages", Err: err}
		}
		req.Prompt = messages
	} else {
		req.Prompt = content
	}
	if err := req.Validate(); err != nil {
		return err
	}

	client, err := a.client()
	if err != nil {
		return err
	}
	prompt, err := client.CreatePrompt(cmd.Context(), req)
	if err != nil {
		return err
	}
	return a.render(prompt, format)
}

// readContent returns the contents of path, or all of stdin when path is empty.
func (a *app) readContent(path string) (string, error) {
	if path != "" {
		data, err := afero.ReadFile(a.fs, path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func newPromptsLabelCommand(a *app) *cobra.Command {
	var labels []string

	cmd := &cobra.Command{
		Use:   "label <name> <version>",
		Short: "Replace the labels of a prompt version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat(output.FormatTable)
			if err != nil {
				return err
			}
			version, err := strconv.Atoi(args[1])
			if err != nil || version < 1 {
				return lferrors.NewConfigurationError("invalid prompt version %q: expected a positive integer", args[1])
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			prompt, err := client.UpdatePromptLabels(cmd.Context(), args[0], version, labels)
			if err != nil {
				return err
			}
			return a.render(prompt, format)
		},
	}

	cmd.Flags().StringSliceVar(&labels, "labels", nil, "Labels to set, e.g. production,staging")
	_ = cmd.MarkFlagRequired("labels")

	return cmd
}

func newPromptsDeleteCommand(a *app) *cobra.Command {
	var sel langfuse.PromptSelector

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a prompt, or only a version or label of it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.client()
			if err != nil {
				return err
			}
			if err := client.DeletePrompt(cmd.Context(), args[0], sel); err != nil {
				return err
			}
			if a.flags.verbose {
				fmt.Fprintf(a.stderr, "Prompt '%s' deleted successfully\n", args[0])
			}
			return nil
		},
	}

	addSelectorFlags(cmd, &sel)

	return cmd
}

// parseJSONObject decodes an optional JSON object flag.
func parseJSONObject(flag, raw string) (map[string]interface{}, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, &lferrors.ConfigurationError{Detail: fmt.Sprintf("--%s must be a JSON object", flag), Err: err}
	}
	return obj, nil
}
