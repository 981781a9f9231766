//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/matryer/moq generates the *_mock_test.go files (see the
//   //go:generate lines in the test files).
// - github.com/pressly/goose/v3/cmd/goose can apply ./migrations by hand;
//   actasctl migrate does the same with the embedded copy.
