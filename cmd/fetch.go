package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vishalsachdev/eventbrite-mcp/internal/eventbrite"
	"github.com/vishalsachdev/eventbrite-mcp/internal/server"
)

// newFetchCmd creates the fetch command, a one-shot event listing that
// writes the result to a local JSON file for offline inspection.
func newFetchCmd() *cobra.Command {
	var (
		status     string
		startDate  string
		endDate    string
		outputFile string
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch events and save them to a JSON file",
		Long: `Fetch events for the configured Eventbrite organization and write
them to a local JSON file. The file can be inspected directly or served
with the view command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd.Context(), eventbrite.FilterRequest{
				Status:    status,
				StartDate: startDate,
				EndDate:   endDate,
			}, outputFile)
		},
	}

	cmd.Flags().StringVar(&status, "status", "live", "Event status filter")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Earliest event start date, YYYY-MM-DD (default: configured floor date)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "Latest event start date, YYYY-MM-DD (default: one year from now)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "events.json", "Output file path")

	return cmd
}

func runFetch(ctx context.Context, req eventbrite.FilterRequest, outputFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	sc, err := server.NewServerContext(ctx, eventbrite.ConfigFromEnv(), newLogger(false, "fetch"))
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() {
		_ = sc.Shutdown()
	}()

	query, dateRange, err := sc.Normalizer().NormalizeSearch(req)
	if err != nil {
		return err
	}

	collected, err := sc.Collector().Collect(ctx, query, dateRange)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	payload := eventbrite.ListEventsResult{
		Events:     eventbrite.ProjectEvents(collected.Events),
		Pagination: collected.Pagination,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}

	if err := os.WriteFile(outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}

	fmt.Printf("Saved %d event(s) to %s\n", len(payload.Events), outputFile)
	return nil
}
