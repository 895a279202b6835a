// Package store provides abstractions for data persistence.
//
// It defines the persistence interfaces implemented by the postgres
// platform package, the shared store error taxonomy, and the
// RunInTransaction helper that forms the atomic-unit boundary for
// multi-record mutations.
package store
