package layout

// CmdOpts specifies the project layout command-line options
type CmdOpts struct {
	Out   string `short:"o" long:"out" mapstructure:"out" description:"Project root containing src/ with .proto files and node_modules/ with the toolchain" env:"PB_OUT" default:"."`
	Clean bool   `long:"clean" mapstructure:"clean" description:"Remove previously generated bindings before compiling" env:"PB_CLEAN"`
}
