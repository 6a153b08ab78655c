package manifest

// This file contains the implementation of the ReaderWriter interface for the YAML file.

import (
	"context"
	_ "embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed manifest.yaml
var defaultManifestYAML []byte

// NewYAMLManifestReaderWriter returns a manifest storage backed by a
// YAML file or a folder of YAML files. An empty path serves the
// built-in manifest.
func NewYAMLManifestReaderWriter(ctx context.Context, path string) (ReaderWriter, error) {
	return &fileManifestReaderWriter{
		ctx:  ctx,
		path: path,
	}, nil
}

type fileManifestReaderWriter struct {
	ctx  context.Context
	path string
	sync.Mutex
}

// WriteManifest writes the manifest to file with locking
func (fmr *fileManifestReaderWriter) WriteManifest(m *Manifest) error {
	fmr.Lock()
	defer fmr.Unlock()
	return fmr.writeManifest(m)
}

// writeManifest writes the manifest to file without locking (internal use only)
func (fmr *fileManifestReaderWriter) writeManifest(m *Manifest) error {
	if fmr.path == "" {
		return ErrBuiltinManifest
	}
	yamlData, _ := yaml.Marshal(m)
	return os.WriteFile(fmr.path, yamlData, 0644)
}

// GetManifest reads the manifest with locking
func (fmr *fileManifestReaderWriter) GetManifest() (*Manifest, error) {
	fmr.Lock()
	defer fmr.Unlock()
	return fmr.getManifest()
}

// getManifest reads the manifest from file or returns the built-in one
// if the path is empty without locking (internal use only)
func (fmr *fileManifestReaderWriter) getManifest() (m *Manifest, err error) {
	m = new(Manifest)
	if fmr.path == "" {
		if err = yaml.Unmarshal(defaultManifestYAML, m); err != nil {
			return nil, err
		}
		return m.Validate()
	}
	fi, err := os.Stat(fmr.path)
	if err != nil {
		return nil, err
	}
	switch mode := fi.Mode(); {
	case mode.IsDir():
		err = filepath.WalkDir(fmr.path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			ext := strings.ToLower(filepath.Ext(d.Name()))
			if d.IsDir() || ext != ".yaml" && ext != ".yml" {
				return nil
			}
			var part *Manifest
			if part, err = fmr.loadManifestFromFile(path); err == nil {
				m.Protos = append(m.Protos, part.Protos...)
				m.Plugins = append(m.Plugins, part.Plugins...)
				m.Outputs = append(m.Outputs, part.Outputs...)
			}
			return err
		})
	case mode.IsRegular():
		m, err = fmr.loadManifestFromFile(fmr.path)
	}
	if err != nil {
		return nil, err
	}
	return m.Validate()
}

// loadManifestFromFile reads a manifest from a single YAML file and expands environment variables
func (fmr *fileManifestReaderWriter) loadManifestFromFile(manifestFilePath string) (m *Manifest, err error) {
	var yamlFile []byte
	if yamlFile, err = os.ReadFile(manifestFilePath); err != nil {
		return
	}
	m = new(Manifest)
	if err = yaml.Unmarshal(yamlFile, m); err != nil {
		return nil, err
	}
	return fmr.expandEnvVars(m), nil
}

func (fmr *fileManifestReaderWriter) expandEnvVars(m *Manifest) *Manifest {
	for i, proto := range m.Protos {
		if strings.HasPrefix(proto, "$") {
			m.Protos[i] = os.ExpandEnv(proto)
		}
	}
	for i, p := range m.Plugins {
		if strings.HasPrefix(p.Executable, "$") {
			m.Plugins[i].Executable = os.ExpandEnv(p.Executable)
		}
	}
	for i, o := range m.Outputs {
		if strings.HasPrefix(o.Options, "$") {
			m.Outputs[i].Options = os.ExpandEnv(o.Options)
		}
	}
	return m
}
