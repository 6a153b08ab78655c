package toolchain

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Logical tool names as installed by the grpc-tools and protoc-gen-ts
// npm packages.
const (
	CompilerName   = "grpc_tools_node_protoc"
	TSPluginName   = "protoc-gen-ts"
	GRPCPluginName = "grpc_tools_node_protoc_plugin"
)

// ExecutableName returns the executable name of a tool for the given
// platform. npm exposes its scripts as .cmd shims on Windows.
func ExecutableName(base, goos string) string {
	if goos == "windows" {
		return base + ".cmd"
	}
	return base
}

// Toolchain resolves logical tool names to invocable executables for a
// single platform.
type Toolchain struct {
	BinDir string

	compiler string
	goos     string
}

// New returns a toolchain for the host platform.
func New(opts CmdOpts, binDir string) *Toolchain {
	return NewForOS(opts, binDir, runtime.GOOS)
}

// NewForOS returns a toolchain resolving executable names for the given
// GOOS. binDir is used unless overridden by the options.
func NewForOS(opts CmdOpts, binDir, goos string) *Toolchain {
	tc := &Toolchain{BinDir: binDir, compiler: opts.Compiler, goos: goos}
	if opts.BinDir > "" {
		tc.BinDir = opts.BinDir
	}
	return tc
}

// Compiler returns the compiler executable to invoke: the configured
// override if any, otherwise the platform name of grpc_tools_node_protoc.
// A bare name is left for the OS to resolve through PATH.
func (tc *Toolchain) Compiler() string {
	if tc.compiler > "" {
		return tc.compiler
	}
	return ExecutableName(CompilerName, tc.goos)
}

// PluginPath returns the full path of a plugin executable under the
// toolchain directory.
func (tc *Toolchain) PluginPath(executable string) string {
	return filepath.Join(tc.BinDir, ExecutableName(executable, tc.goos))
}

// Probe is the result of a single tool lookup.
type Probe struct {
	Name string
	Path string
	Err  error
}

// Check probes the compiler and the given plugin executables. The
// compiler is searched through PATH unless it names a concrete path,
// plugins must exist under the toolchain directory.
func (tc *Toolchain) Check(plugins []string) []Probe {
	probes := make([]Probe, 0, len(plugins)+1)
	compiler := tc.Compiler()
	resolved, err := exec.LookPath(compiler)
	if err != nil {
		resolved = compiler
	}
	probes = append(probes, Probe{Name: compiler, Path: resolved, Err: err})
	for _, plugin := range plugins {
		path := tc.PluginPath(plugin)
		_, err := os.Stat(path)
		probes = append(probes, Probe{Name: plugin, Path: path, Err: err})
	}
	return probes
}
