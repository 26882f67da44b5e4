// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock offers overridable function fields plus a
// simple in-memory default implementation.
package mocks
