// Package models defines the client-side representation of the finance
// backend's entities and the request bodies sent to it.
//
// Identifiers are opaque strings even though the backend usually emits
// numbers; amounts are decimal.Decimal. Request bodies encode them as bare
// JSON numbers without touching the decimal package's global settings.
package models
