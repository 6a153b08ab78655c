package toolchain

// CmdOpts specifies the toolchain command-line options
type CmdOpts struct {
	BinDir   string `long:"bin-dir" mapstructure:"bin-dir" description:"Directory with the npm-installed protoc plugins, defaults to node_modules/.bin under the project root" env:"PB_BIN_DIR"`
	Compiler string `long:"compiler" mapstructure:"compiler" description:"Protobuf compiler executable name or path" env:"PB_COMPILER"`
}
