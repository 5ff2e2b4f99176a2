package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the eventbrite-mcp application
var rootCmd = &cobra.Command{
	Use:   "eventbrite-mcp",
	Short: "MCP server for Eventbrite event management",
	Long: `eventbrite-mcp exposes the Eventbrite API as MCP (Model Context
Protocol) tools for AI assistants: event listings with date-range
filtering, event details, attendee rosters, and event creation,
updates, and publishing.

It can run as:
  - An MCP server over stdio or HTTP (default)
  - A one-shot fetch tool that saves events to a local JSON file`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// newLogger builds the process logger. Stdio transport keeps stdout
// clean for the MCP protocol, so logs always go to stderr.
func newLogger(debug bool, transport string) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	if transport != "stdio" {
		slog.SetDefault(logger)
	}
	return logger
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "eventbrite-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
