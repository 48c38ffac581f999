package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artpar/yarc/internal/core"
	"github.com/artpar/yarc/internal/storage/filesystem"
)

// SendOptions holds options for the send command.
type SendOptions struct {
	JSON bool
}

// NewSendCommand creates the send command.
func NewSendCommand(root *RootOptions) *cobra.Command {
	opts := &SendOptions{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send the request file without the TUI",
		Long:  "Load the request file given by --file, send it and print the response.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSend(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output response as JSON")

	return cmd
}

func runSend(cmd *cobra.Command, root *RootOptions, opts *SendOptions) error {
	application, err := newApp(root)
	if err != nil {
		return err
	}
	defer application.Close()

	ctx := context.Background()
	req, err := filesystem.NewRequestStore().Load(ctx, root.File)
	if errors.Is(err, filesystem.ErrNotFound) {
		return fmt.Errorf("no request file at %s", root.File)
	}
	if err != nil {
		return err
	}

	resp, err := application.Submit(ctx, req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if opts.JSON {
		return outputJSON(cmd, resp)
	}
	fmt.Fprintln(cmd.OutOrStdout(), resp.Format())
	return nil
}

func outputJSON(cmd *cobra.Command, resp *core.Response) error {
	headers := make(map[string][]string)
	for _, h := range resp.Headers {
		headers[h.Key] = append(headers[h.Key], h.Value)
	}

	result := map[string]any{
		"status":      resp.StatusCode,
		"status_text": resp.Status,
		"headers":     headers,
		"body":        string(resp.Body),
		"timing_ms":   resp.Duration.Milliseconds(),
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
