package layout

import (
	"os"
	"path/filepath"
)

// Subdirectories of the project root. The proto sources live in src/,
// generated bindings go to bin/ts/, and the npm-installed toolchain
// exposes its executables under node_modules/.bin/.
const (
	sourceDirName    = "src"
	generatedDirName = "bin/ts"
	binDirName       = "node_modules/.bin"
)

// Layout holds the absolute paths of the project directories the
// compiler works with. All paths are derived from the single root.
type Layout struct {
	Root         string
	SourceDir    string
	GeneratedDir string
	BinDir       string
}

// New resolves the project root to an absolute path and derives the
// source, generated and toolchain directories from it.
func New(opts CmdOpts) (Layout, error) {
	root, err := filepath.Abs(opts.Out)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Root:         root,
		SourceDir:    filepath.Join(root, filepath.FromSlash(sourceDirName)),
		GeneratedDir: filepath.Join(root, filepath.FromSlash(generatedDirName)),
		BinDir:       filepath.Join(root, filepath.FromSlash(binDirName)),
	}, nil
}

// Ensure creates the generated output directory with all parents.
// Existing directories are left untouched unless clean is set, in
// which case previously generated artifacts are removed first.
func (l Layout) Ensure(clean bool) error {
	if clean {
		if err := os.RemoveAll(l.GeneratedDir); err != nil {
			return err
		}
	}
	return os.MkdirAll(l.GeneratedDir, 0755)
}
