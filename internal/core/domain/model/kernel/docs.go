// Package kernel contains shared value objects used across all domain
// aggregates: the UUID identity type and the constructor guard that enforces
// creation through factory functions.
//
// Kernel types are immutable and carry no domain behavior of their own; they
// exist so that aggregates in different packages share one identity and
// construction discipline.
package kernel
