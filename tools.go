//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: generates the *Mock types in mocks_test.go files
// - github.com/pressly/goose/v3/cmd/goose: see the tool directive in go.mod
