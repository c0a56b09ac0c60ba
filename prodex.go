// Package prodex extracts canonical product records from marketplace
// product pages and normalizes them into a stable schema for storage.
// The same semantic data is rendered by the marketplace under several
// alternative DOM templates depending on experiment and locale; the
// extraction adapter resolves those variants and drives the product
// model through validated setters and a finalization pass.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. goquery/,
// sqlite/, rod/).
package prodex
