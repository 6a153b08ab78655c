package cmdopts

import (
	"context"
	"fmt"

	"github.com/jtcooper10/proto-build/internal/manifest"
	"gopkg.in/yaml.v3"
)

type ManifestCommand struct {
	owner *Options
	Init  ManifestInitCommand  `command:"init" description:"Write the built-in manifest to the --manifest file as a starting point"`
	Print ManifestPrintCommand `command:"print" description:"Print the effective generation manifest"`
}

func NewManifestCommand(owner *Options) *ManifestCommand {
	return &ManifestCommand{
		owner: owner,
		Init:  ManifestInitCommand{owner: owner},
		Print: ManifestPrintCommand{owner: owner},
	}
}

type ManifestInitCommand struct {
	owner *Options
}

// Execute initializes the manifest file with the built-in manifest.
func (cmd *ManifestInitCommand) Execute([]string) (err error) {
	if cmd.owner.Manifest.Manifest == "" {
		cmd.owner.CompleteCommand(ExitCodeConfigError)
		return ErrNoManifestFile
	}
	ctx := context.Background()
	builtin, err := manifest.NewYAMLManifestReaderWriter(ctx, "")
	if err == nil {
		var m *manifest.Manifest
		if m, err = builtin.GetManifest(); err == nil {
			var rw manifest.ReaderWriter
			if rw, err = manifest.NewYAMLManifestReaderWriter(ctx, cmd.owner.Manifest.Manifest); err == nil {
				err = rw.WriteManifest(m)
			}
		}
	}
	cmd.owner.CompleteCommand(map[bool]int32{
		true:  ExitCodeOK,
		false: ExitCodeConfigError,
	}[err == nil])
	return
}

type ManifestPrintCommand struct {
	owner *Options
}

// Execute prints the effective manifest after merging and env expansion.
func (cmd *ManifestPrintCommand) Execute([]string) error {
	if err := cmd.owner.InitManifestReader(context.Background()); err != nil {
		return err
	}
	m, err := cmd.owner.ManifestReaderWriter.GetManifest()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(m)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.owner.OutputWriter, string(out))
	cmd.owner.CompleteCommand(ExitCodeOK)
	return nil
}
