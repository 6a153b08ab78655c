package compiler

import (
	"strings"

	"github.com/jtcooper10/proto-build/internal/layout"
	"github.com/jtcooper10/proto-build/internal/manifest"
	"github.com/jtcooper10/proto-build/internal/toolchain"
)

// Invocation is a fully assembled compiler command line.
type Invocation struct {
	Path string
	Args []string
}

// Assemble builds the compiler command line from the project layout,
// the resolved toolchain and the generation manifest. Argument order is
// stable: plugin registrations first, then output directives, the
// include path and finally the proto files, each group in manifest
// order.
func Assemble(l layout.Layout, tc *toolchain.Toolchain, m *manifest.Manifest) Invocation {
	args := make([]string, 0, len(m.Plugins)+len(m.Outputs)+1+len(m.Protos))
	for _, p := range m.Plugins {
		args = append(args, "--plugin=protoc-gen-"+p.Name+"="+tc.PluginPath(p.Executable))
	}
	for _, o := range m.Outputs {
		directive := "--" + o.Name + "_out="
		if o.Options > "" {
			directive += o.Options + ":"
		}
		args = append(args, directive+l.GeneratedDir)
	}
	args = append(args, "-I"+l.SourceDir)
	args = append(args, m.Protos...)
	return Invocation{Path: tc.Compiler(), Args: args}
}

// String returns the command line as a shell would see it.
func (inv Invocation) String() string {
	return strings.Join(append([]string{inv.Path}, inv.Args...), " ")
}
