// Package services contains domain services that coordinate operations
// across multiple aggregates.
//
// Domain services hold logic that does not belong to a single aggregate:
// gate admission touches the yard arena, a fresh container record, and the
// gate log entry that triggered it, so it lives here rather than inside any
// one of them.
package services
