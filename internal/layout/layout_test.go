package layout_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jtcooper10/proto-build/internal/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	t.Run("explicit root", func(*testing.T) {
		root := t.TempDir()
		l, err := layout.New(layout.CmdOpts{Out: root})
		a.NoError(err)
		a.Equal(root, l.Root)
		a.Equal(filepath.Join(root, "src"), l.SourceDir)
		a.Equal(filepath.Join(root, "bin", "ts"), l.GeneratedDir)
		a.Equal(filepath.Join(root, "node_modules", ".bin"), l.BinDir)
	})

	t.Run("relative root resolves to absolute", func(*testing.T) {
		l, err := layout.New(layout.CmdOpts{Out: "."})
		a.NoError(err)
		a.True(filepath.IsAbs(l.Root))
		a.True(filepath.IsAbs(l.SourceDir))
		a.True(filepath.IsAbs(l.GeneratedDir))
		cwd, err := os.Getwd()
		a.NoError(err)
		a.Equal(cwd, l.Root)
	})
}

func TestEnsure(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	t.Run("creates missing directories with parents", func(t *testing.T) {
		l, err := layout.New(layout.CmdOpts{Out: t.TempDir()})
		r.NoError(err)
		a.NoError(l.Ensure(false))
		a.DirExists(l.GeneratedDir)
	})

	t.Run("existing directory is fine", func(t *testing.T) {
		l, err := layout.New(layout.CmdOpts{Out: t.TempDir()})
		r.NoError(err)
		r.NoError(os.MkdirAll(l.GeneratedDir, 0755))
		a.NoError(l.Ensure(false))
	})

	t.Run("clean removes stale artifacts", func(t *testing.T) {
		l, err := layout.New(layout.CmdOpts{Out: t.TempDir()})
		r.NoError(err)
		r.NoError(os.MkdirAll(l.GeneratedDir, 0755))
		stale := filepath.Join(l.GeneratedDir, "munkey_pb.js")
		r.NoError(os.WriteFile(stale, []byte("// stale"), 0644))

		a.NoError(l.Ensure(true))
		a.DirExists(l.GeneratedDir)
		a.NoFileExists(stale)
	})

	t.Run("without clean stale artifacts survive", func(t *testing.T) {
		l, err := layout.New(layout.CmdOpts{Out: t.TempDir()})
		r.NoError(err)
		r.NoError(os.MkdirAll(l.GeneratedDir, 0755))
		stale := filepath.Join(l.GeneratedDir, "munkey_pb.js")
		r.NoError(os.WriteFile(stale, []byte("// stale"), 0644))

		a.NoError(l.Ensure(false))
		a.FileExists(stale)
	})

	t.Run("root is a file", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "occupied")
		r.NoError(os.WriteFile(file, []byte("not a directory"), 0644))
		l, err := layout.New(layout.CmdOpts{Out: file})
		r.NoError(err)
		a.Error(l.Ensure(false))
	})
}
