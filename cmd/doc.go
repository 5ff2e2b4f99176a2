// Package cmd implements the command-line interface for eventbrite-mcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server exposing Eventbrite tools for AI assistants
//   - fetch: Fetch events from Eventbrite and save them to a JSON file
//   - view: Serve a local web page for browsing fetched events
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
