package cmdopts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/jtcooper10/proto-build/internal/compiler"
	"github.com/jtcooper10/proto-build/internal/layout"
	"github.com/jtcooper10/proto-build/internal/log"
	"github.com/jtcooper10/proto-build/internal/manifest"
	"github.com/jtcooper10/proto-build/internal/report"
	"github.com/jtcooper10/proto-build/internal/toolchain"
)

const (
	ExitCodeOK int32 = iota
	ExitCodeConfigError
	ExitCodeCmdError
	ExitCodeCompileError
	ExitCodeUserCancel
	ExitCodeFatalError
)

// Options contains the command line options.
type Options struct {
	Layout    layout.CmdOpts    `group:"Layout" mapstructure:"Layout"`
	Toolchain toolchain.CmdOpts `group:"Toolchain" mapstructure:"Toolchain"`
	Manifest  manifest.CmdOpts  `group:"Manifest" mapstructure:"Manifest"`
	Compiler  compiler.CmdOpts  `group:"Compiler" mapstructure:"Compiler"`
	Report    report.CmdOpts    `group:"Report" mapstructure:"Report"`
	Logging   log.CmdOpts       `group:"Logging" mapstructure:"Logging"`

	Help bool

	// ManifestReaderWriter reads the effective generation manifest
	ManifestReaderWriter manifest.ReaderWriter
	// ReportWriter persists build run reports
	ReportWriter report.Writer

	ExitCode         int32
	CommandCompleted bool

	OutputWriter io.Writer
}

func addCommands(parser *flags.Parser, opts *Options) {
	_, _ = parser.AddCommand("manifest", "Manage generation manifests", "", NewManifestCommand(opts))
	_, _ = parser.AddCommand("tools", "Inspect the protoc toolchain", "", NewToolsCommand(opts))
}

// New returns a new instance of Options and immediately executes the subcommand if specified.
// Subcommands are responsible for setting the exit code.
// Function prints the help message only if the options are incorrect. If a subcommand
// is executed but fails, function outputs the error message only, indicating that some
// argument values might be incorrect, e.g. wrong file name, lack of privileges, etc.
func New(writer io.Writer) (cmdOpts *Options, err error) {
	cmdOpts = new(Options)
	parser := flags.NewParser(cmdOpts, flags.HelpFlag)
	parser.SubcommandsOptional = true // if no command specified, compile the protos
	cmdOpts.OutputWriter = writer
	addCommands(parser, cmdOpts)
	nonParsedArgs, err := parser.Parse() // parse and execute the subcommand if any
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			cmdOpts.Help = true
		}
		if !flags.WroteHelp(err) && !cmdOpts.CommandCompleted {
			parser.WriteHelp(writer)
		}
		return cmdOpts, err
	}
	if cmdOpts.CommandCompleted { // subcommand executed, nothing to do more
		return
	}
	if len(nonParsedArgs) > 0 { // we don't expect any non-parsed arguments
		return cmdOpts, fmt.Errorf("unknown argument(s): %v", nonParsedArgs)
	}
	err = cmdOpts.ValidateConfig()
	return
}

// CompleteCommand marks the command as completed with the given exit code.
func (c *Options) CompleteCommand(code int32) {
	c.CommandCompleted = true
	c.ExitCode = code
}

// Verbose returns true if the debug log is enabled
func (c *Options) Verbose() bool {
	return c.Logging.LogLevel == "debug"
}

// GetLayout resolves the project layout for the configured output root.
func (c *Options) GetLayout() (layout.Layout, error) {
	return layout.New(c.Layout)
}

// GetToolchain resolves the toolchain rooted in the given layout.
func (c *Options) GetToolchain(l layout.Layout) *toolchain.Toolchain {
	return toolchain.New(c.Toolchain, l.BinDir)
}

// InitManifestReader creates the reader for the configured manifest,
// falling back to the built-in manifest when none is named. A named
// manifest must exist as a file or folder.
func (c *Options) InitManifestReader(ctx context.Context) (err error) {
	if c.Manifest.Manifest > "" {
		if _, err = os.Stat(c.Manifest.Manifest); err != nil {
			return err
		}
	}
	c.ManifestReaderWriter, err = manifest.NewYAMLManifestReaderWriter(ctx, c.Manifest.Manifest)
	return
}

// InitReportWriter creates the report writer if reporting is configured.
func (c *Options) InitReportWriter(ctx context.Context) (err error) {
	if c.Report.Report == "" {
		return nil
	}
	c.ReportWriter, err = report.NewWriter(ctx, c.Report.Report)
	return
}

// ValidateConfig checks if the configuration is valid.
func (c *Options) ValidateConfig() error {
	switch {
	case c.Layout.Out == "":
		return errors.New("output root (--out) must be specified")
	case c.Compiler.Retries < 0:
		return errors.New("--retries must not be negative")
	case c.Compiler.Timeout < 0:
		return errors.New("--timeout must not be negative")
	case c.Compiler.RetryDelay <= 0:
		return errors.New("--retry-delay must be positive")
	}
	return nil
}
