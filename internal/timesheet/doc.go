// Package timesheet provides a client for the Timesheet time-tracking API.
//
// The client wraps the REST endpoints used by the MCP server: timers,
// projects, tasks, teams, export templates, and account data. Every call
// takes a context, performs exactly one HTTP round trip, and returns either
// a decoded response or an *APIError carrying the upstream HTTP status and
// message. No retries are attempted at this layer.
//
// # Usage
//
//	client := timesheet.New(token)
//	timer, err := client.CurrentTimer(ctx)
//
// The bearer token is fixed at construction. Under the stateless HTTP
// transport a fresh client is built per request, so the client itself keeps
// no mutable state beyond its configuration.
package timesheet
