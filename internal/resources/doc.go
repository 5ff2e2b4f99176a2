// Package resources provides MCP resources describing server configuration.
// Resources are read-only data sources that MCP clients can fetch, such as the
// organization binding and the default filters applied to event queries.
package resources
