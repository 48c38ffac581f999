package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/artpar/yarc/internal/history"
)

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	Limit      int
	Method     string
	FailedOnly bool
	JSON       bool
	Clear      bool
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(root *RootOptions) *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List sent requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Number of entries to show")
	cmd.Flags().StringVarP(&opts.Method, "method", "X", "", "Only show this method")
	cmd.Flags().BoolVar(&opts.FailedOnly, "failed", false, "Only show requests that got no response")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output entries as JSON")
	cmd.Flags().BoolVar(&opts.Clear, "clear", false, "Delete all history")

	return cmd
}

func runHistory(cmd *cobra.Command, root *RootOptions, opts *HistoryOptions) error {
	if root.History == "" {
		return fmt.Errorf("history is disabled")
	}

	application, err := newApp(root)
	if err != nil {
		return err
	}
	defer application.Close()

	ctx := context.Background()
	store := application.History()

	if opts.Clear {
		if err := store.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared")
		return nil
	}

	entries, err := store.List(ctx, history.QueryOptions{
		Method:     opts.Method,
		FailedOnly: opts.FailedOnly,
		Limit:      opts.Limit,
	})
	if err != nil {
		return err
	}

	if opts.JSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}
	return outputHistory(cmd, entries)
}

func outputHistory(cmd *cobra.Command, entries []history.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, e := range entries {
		outcome := fmt.Sprintf("%d", e.Status)
		size := humanize.Bytes(uint64(e.ResponseSize))
		if e.Failed() {
			outcome = "ERR"
			size = e.Error
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%dms\t%s\t%s\n",
			humanize.Time(e.Timestamp), e.Method, outcome, e.ResponseTime, e.URL, size)
	}
	return w.Flush()
}
