// Package api is the client of the finance backend functions.
//
// Each backend function lives at its own URL and speaks JSON. Every response
// body is an envelope carrying "success", an optional "error" message and,
// for premium-gated resources, "premiumRequired". The caller's identity is
// sent as the X-User-Id or X-Admin-Id header.
//
// All methods share one calling convention: they return the decoded payload,
// or a *Failure describing why the call did not succeed. Nothing is retried.
package api
