// Package compiler assembles and executes protoc invocations.
//
// Assembly combines the project layout, the resolved toolchain and the
// generation manifest into a single stable command line. Execution runs
// the compiler as a child process with its output streamed through, and
// reports a non-zero exit as a typed CompilationError so callers can
// tell a failed compilation apart from a tool that never ran.
package compiler
