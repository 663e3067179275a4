// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one of the application's interfaces with function
// fields for customizable behavior plus simple in-memory defaults, so test
// files across packages can share a single implementation instead of
// redefining inline mocks.
package mocks
