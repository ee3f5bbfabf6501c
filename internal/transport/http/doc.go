// Package http implements the HTTP handlers for the clientpulse report
// service. Handlers are thin: they hold a computed analytics report and
// serve slices of it as JSON, delegating error formatting to the shared
// APIError renderer.
//
// # Request Flow
//
//	HTTP Request → Chi Router → Middleware → Handler → Report
//	                                              ↓
//	HTTP Response ← render.JSON ←────────────────┘
//
// The report is computed once at startup; handlers never mutate it, so
// concurrent requests need no locking.
package http
