package cmdopts

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
)

type ToolsCommand struct {
	owner *Options
	Check ToolsCheckCommand `command:"check" description:"Probe the compiler and every manifest plugin, report what is missing"`
	Env   ToolsEnvCommand   `command:"env" description:"Print the resolved layout, toolchain and host diagnostics"`
}

func NewToolsCommand(owner *Options) *ToolsCommand {
	return &ToolsCommand{
		owner: owner,
		Check: ToolsCheckCommand{owner: owner},
		Env:   ToolsEnvCommand{owner: owner},
	}
}

type ToolsCheckCommand struct {
	owner *Options
}

// Execute probes the compiler and the manifest plugins.
func (cmd *ToolsCheckCommand) Execute([]string) error {
	if err := cmd.owner.InitManifestReader(context.Background()); err != nil {
		return err
	}
	m, err := cmd.owner.ManifestReaderWriter.GetManifest()
	if err != nil {
		return err
	}
	l, err := cmd.owner.GetLayout()
	if err != nil {
		return err
	}
	tc := cmd.owner.GetToolchain(l)
	var failed error
	for _, probe := range tc.Check(m.PluginExecutables()) {
		if probe.Err != nil {
			fmt.Fprintf(cmd.owner.OutputWriter, "FAIL:\t%s\t%v\n", probe.Name, probe.Err)
			failed = errors.Join(failed, probe.Err)
			continue
		}
		fmt.Fprintf(cmd.owner.OutputWriter, "OK:\t%s\t%s\n", probe.Name, probe.Path)
	}
	// missing tools are an execution problem, not a usage problem,
	// so the command itself still completes
	cmd.owner.CompleteCommand(map[bool]int32{
		true:  ExitCodeCmdError,
		false: ExitCodeOK,
	}[failed != nil])
	return nil
}

type ToolsEnvCommand struct {
	owner *Options
}

// Execute prints the resolved paths and some host facts useful in bug reports.
func (cmd *ToolsEnvCommand) Execute([]string) error {
	if err := cmd.owner.InitManifestReader(context.Background()); err != nil {
		return err
	}
	m, err := cmd.owner.ManifestReaderWriter.GetManifest()
	if err != nil {
		return err
	}
	l, err := cmd.owner.GetLayout()
	if err != nil {
		return err
	}
	tc := cmd.owner.GetToolchain(l)
	w := cmd.owner.OutputWriter
	fmt.Fprintf(w, "Root:\t%s\n", l.Root)
	fmt.Fprintf(w, "Sources:\t%s\n", l.SourceDir)
	fmt.Fprintf(w, "Generated:\t%s\n", l.GeneratedDir)
	fmt.Fprintf(w, "Toolchain:\t%s\n", tc.BinDir)
	fmt.Fprintf(w, "Compiler:\t%s\n", tc.Compiler())
	for _, p := range m.Plugins {
		fmt.Fprintf(w, "Plugin:\t%s\t%s\n", p.Name, tc.PluginPath(p.Executable))
	}
	if cpus, err := cpu.Counts(true); err == nil {
		fmt.Fprintf(w, "CPUs:\t%d\n", cpus)
	}
	if la, err := load.Avg(); err == nil {
		fmt.Fprintf(w, "Load:\t%.2f %.2f %.2f\n", la.Load1, la.Load5, la.Load15)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(w, "Memory:\t%d MB available of %d MB\n", vm.Available/1048576, vm.Total/1048576)
	}
	if du, err := disk.Usage(l.Root); err == nil {
		fmt.Fprintf(w, "Disk:\t%d MB free of %d MB\n", du.Free/1048576, du.Total/1048576)
	}
	cmd.owner.CompleteCommand(ExitCodeOK)
	return nil
}
