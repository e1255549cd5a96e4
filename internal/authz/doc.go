// Package authz contains the authorization decision core.
//
// The package is deliberately free of storage and transport concerns: callers
// hydrate an immutable Snapshot of an identity's permission state up front and
// Resolve answers allow/deny from that snapshot alone. This keeps the decision
// function pure and testable without a database.
package authz
