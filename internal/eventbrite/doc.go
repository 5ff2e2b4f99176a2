// Package eventbrite provides a client for the Eventbrite v3 API along
// with the request-normalization, paginated date-range collection, and
// result-projection logic that sits between the MCP tool layer and the
// upstream API.
//
// The package is organized around four pieces:
//
//   - Client: an authenticated HTTP client for the Eventbrite gateway
//     (organizations, events, attendees, event mutations)
//   - Normalizer: converts loosely typed caller filters into the canonical
//     parameter set the gateway expects
//   - Collector: issues a bounded sequence of paginated requests, applies
//     a client-side date-range predicate, and accumulates matches
//   - Project*: pure mappers from gateway records to the reduced shapes
//     returned to tool callers
//
// All entities are transient, single-call-scoped values. The only state
// shared across invocations is the immutable Config established at
// startup.
package eventbrite
