// Package testutil provides testing utilities for proto-build tests.
//
// This package contains stub toolchain executables used to exercise
// compiler invocations without a real protoc installation. It should
// only be imported by test files (*_test.go) and will not be included
// in production binaries.
//
// The stubs are POSIX shell scripts; tests driving them skip themselves
// on Windows. Platform-specific executable naming is covered separately
// by pure functions that take the target OS as an argument.
package testutil
