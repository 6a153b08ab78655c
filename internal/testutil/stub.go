package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// SkipOnWindows skips tests that drive stub tools written as POSIX
// shell scripts.
func SkipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub tools are POSIX shell scripts")
	}
}

// WriteStubTool writes an executable shell script into dir and returns
// its full path.
func WriteStubTool(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

// StubCompilerOK writes a stub compiler that records its arguments one
// per line into argsFile and exits zero.
func StubCompilerOK(t *testing.T, dir, name, argsFile string) string {
	t.Helper()
	return WriteStubTool(t, dir, name, fmt.Sprintf("printf '%%s\\n' \"$@\" > %s\nexit 0\n", argsFile))
}

// StubCompilerFail writes a stub compiler that prints msg to stderr and
// exits with the given code.
func StubCompilerFail(t *testing.T, dir, name string, code int, msg string) string {
	t.Helper()
	return WriteStubTool(t, dir, name, fmt.Sprintf("echo '%s' >&2\nexit %d\n", msg, code))
}

// StubCompilerFlaky writes a stub compiler that exits 1 for the first
// failures invocations and succeeds afterwards, tracking the invocation
// count in counterFile.
func StubCompilerFlaky(t *testing.T, dir, name, counterFile string, failures int) string {
	t.Helper()
	script := fmt.Sprintf(`count=$(cat %[1]s 2>/dev/null || echo 0)
count=$((count + 1))
echo "$count" > %[1]s
if [ "$count" -le %[2]d ]; then
  echo "attempt $count failed" >&2
  exit 1
fi
exit 0
`, counterFile, failures)
	return WriteStubTool(t, dir, name, script)
}

// StubCompilerHang writes a stub compiler that sleeps far longer than
// any sane test timeout. exec keeps the sleeper from outliving the
// shell and holding the output pipes open.
func StubCompilerHang(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteStubTool(t, dir, name, "exec sleep 3600\n")
}
