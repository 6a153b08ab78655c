package report

// CmdOpts specifies the build report command-line options
type CmdOpts struct {
	Report string `long:"report" mapstructure:"report" description:"URI where build reports are appended, e.g. jsonfile:///var/log/proto-build.ndjson" env:"PB_REPORT"`
}
