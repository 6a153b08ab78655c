package cmdopts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManifestInit_Execute(t *testing.T) {
	w := &strings.Builder{}

	os.Args = []string{0: "config_test", "manifest", "init"}
	c, err := New(w)
	assert.ErrorIs(t, err, ErrNoManifestFile, "should error when no manifest file is named")
	assert.Equal(t, ExitCodeConfigError, c.ExitCode)

	f := filepath.Join(t.TempDir(), "manifest.yaml")
	os.Args = []string{0: "config_test", "--manifest=" + f, "manifest", "init"}
	c, err = New(w)
	assert.NoError(t, err)
	assert.Equal(t, ExitCodeOK, c.ExitCode)
	assert.FileExists(t, f)

	os.Args = []string{0: "config_test", "--manifest=" + filepath.Join(f, "nested.yaml"), "manifest", "init"}
	c, err = New(w)
	assert.Error(t, err, "should error when the manifest file is not writable")
	assert.Equal(t, ExitCodeConfigError, c.ExitCode)
}

func TestManifestPrint_Execute(t *testing.T) {
	w := &strings.Builder{}

	os.Args = []string{0: "config_test", "manifest", "print"}
	c, err := New(w)
	assert.NoError(t, err)
	assert.Equal(t, ExitCodeOK, c.ExitCode)
	assert.Contains(t, w.String(), "munkey.proto")
	assert.Contains(t, w.String(), "protoc-gen-ts")

	w.Reset()
	os.Args = []string{0: "config_test", "--manifest=no_such_manifest.yaml", "manifest", "print"}
	_, err = New(w)
	assert.Error(t, err, "should error when the manifest file is missing")

	w.Reset() // an initialized manifest prints back the built-in template
	f := filepath.Join(t.TempDir(), "manifest.yaml")
	os.Args = []string{0: "config_test", "--manifest=" + f, "manifest", "init"}
	_, err = New(w)
	assert.NoError(t, err)
	os.Args = []string{0: "config_test", "--manifest=" + f, "manifest", "print"}
	_, err = New(w)
	assert.NoError(t, err)
	assert.Contains(t, w.String(), "grpc_tools_node_protoc_plugin")
}
