package manifest

import (
	"errors"
	"fmt"
)

// Plugin registers a protoc code-generation plugin. Name is the suffix
// of the --plugin=protoc-gen-<name>= registration, Executable the
// npm-installed script implementing it.
type Plugin struct {
	Name       string `yaml:"name"`
	Executable string `yaml:"executable"`
}

// Output requests one --<name>_out directive. Options, if any, are
// prepended to the output directory separated by a colon.
type Output struct {
	Name    string `yaml:"name"`
	Options string `yaml:"options,omitempty"`
}

// Manifest describes a single compiler run: the proto files to compile,
// the plugins to register and the outputs to request.
type Manifest struct {
	Protos  []string `yaml:"protos"`
	Plugins []Plugin `yaml:"plugins,omitempty"`
	Outputs []Output `yaml:"outputs"`
}

var (
	ErrNoProtos        = errors.New("manifest names no proto files")
	ErrNoOutputs       = errors.New("manifest requests no outputs")
	ErrBuiltinManifest = errors.New("built-in manifest is read-only, use --manifest to name a file")
)

// Validate checks the manifest for entries the compiler cannot work
// with, returning nil instead of the manifest on the first problem.
func (m *Manifest) Validate() (*Manifest, error) {
	if len(m.Protos) == 0 {
		return nil, ErrNoProtos
	}
	if len(m.Outputs) == 0 {
		return nil, ErrNoOutputs
	}
	for _, proto := range m.Protos {
		if proto == "" {
			return nil, errors.New("empty proto file name")
		}
	}
	names := make(map[string]bool, len(m.Plugins))
	for _, p := range m.Plugins {
		if p.Name == "" || p.Executable == "" {
			return nil, fmt.Errorf("plugin needs both name and executable, got name=%q executable=%q", p.Name, p.Executable)
		}
		if names[p.Name] {
			return nil, fmt.Errorf("duplicate plugin %q", p.Name)
		}
		names[p.Name] = true
	}
	names = make(map[string]bool, len(m.Outputs))
	for _, o := range m.Outputs {
		if o.Name == "" {
			return nil, errors.New("output needs a name")
		}
		if names[o.Name] {
			return nil, fmt.Errorf("duplicate output %q", o.Name)
		}
		names[o.Name] = true
	}
	return m, nil
}

// PluginExecutables returns the executables of all registered plugins.
func (m *Manifest) PluginExecutables() []string {
	execs := make([]string, 0, len(m.Plugins))
	for _, p := range m.Plugins {
		execs = append(execs, p.Executable)
	}
	return execs
}

// Reader reads manifests.
type Reader interface {
	GetManifest() (*Manifest, error)
}

// Writer persists manifests.
type Writer interface {
	WriteManifest(*Manifest) error
}

// ReaderWriter is a manifest storage.
type ReaderWriter interface {
	Reader
	Writer
}
