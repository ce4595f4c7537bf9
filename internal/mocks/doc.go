// Package mocks provides hand-written test doubles for the store
// interfaces. Each mock exposes function fields to override individual
// methods and falls back to a simple in-memory default implementation.
package mocks
