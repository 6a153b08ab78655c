package compiler

import "time"

// CmdOpts specifies the compiler execution command-line options
type CmdOpts struct {
	DryRun     bool          `long:"dry-run" mapstructure:"dry-run" description:"Print the compiler command line without executing it" env:"PB_DRY_RUN"`
	Timeout    time.Duration `long:"timeout" mapstructure:"timeout" description:"Maximum time to wait for the compiler, 0 means wait forever" default:"0" env:"PB_TIMEOUT"`
	Retries    int           `long:"retries" mapstructure:"retries" description:"Number of times a failed compilation is retried" default:"0" env:"PB_RETRIES"`
	RetryDelay time.Duration `long:"retry-delay" mapstructure:"retry-delay" description:"Delay between compilation retries" default:"1s" env:"PB_RETRY_DELAY"`
}
