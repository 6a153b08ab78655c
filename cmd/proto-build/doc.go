// proto-build is a command line tool that compiles munkey .proto files into
// TypeScript and JavaScript gRPC bindings using the npm protoc toolchain.
//
// Usage:
//
//	proto-build [OPTIONS] [manifest | tools]
//
// Layout:
//
//	-o, --out=                               Project root containing src/ with
//	                                         .proto files and node_modules/ with
//	                                         the toolchain (default: .) [$PB_OUT]
//	    --clean                              Remove previously generated bindings
//	                                         before compiling [$PB_CLEAN]
//
// Toolchain:
//
//	--bin-dir=                           Directory with the npm-installed
//	                                     protoc plugins, defaults to
//	                                     node_modules/.bin under the project
//	                                     root [$PB_BIN_DIR]
//	--compiler=                          Protobuf compiler executable name or
//	                                     path [$PB_COMPILER]
//
// Manifest:
//
//	-m, --manifest=                          YAML file or folder of YAML files
//	                                         with the generation manifest, uses
//	                                         the built-in manifest when empty
//	                                         [$PB_MANIFEST]
//
// Compiler:
//
//	--dry-run                            Print the compiler command line
//	                                     without executing it [$PB_DRY_RUN]
//	--timeout=                           Maximum time to wait for the
//	                                     compiler, 0 means wait forever
//	                                     (default: 0) [$PB_TIMEOUT]
//	--retries=                           Number of times a failed compilation
//	                                     is retried (default: 0) [$PB_RETRIES]
//	--retry-delay=                       Delay between compilation retries
//	                                     (default: 1s) [$PB_RETRY_DELAY]
//
// Report:
//
//	--report=                            URI where build reports are appended,
//	                                     e.g.
//	                                     jsonfile:///var/log/proto-build.ndjson
//	                                     [$PB_REPORT]
//
// Logging:
//
//	-v, --log-level=[debug|info|error]       Verbosity level for stdout and log
//	                                         file (default: info)
//	    --log-file=                          File name to store logs
//	    --log-file-format=[json|text]        Format of file logs (default: json)
//	    --log-file-rotate                    Rotate log files
//	    --log-file-size=                     Maximum size in MB of the log file
//	                                         before it gets rotated (default: 100)
//	    --log-file-age=                      Number of days to retain old log
//	                                         files, 0 means forever (default: 0)
//	    --log-file-number=                   Maximum number of old log files to
//	                                         retain, 0 to retain all (default: 0)
//
// Help Options:
//
//	-h, --help                               Show this help message
//
// Available commands:
//
//	manifest       Manage generation manifests
//	   init            Write the built-in manifest to the --manifest file as a starting point
//	   print           Print the effective generation manifest
//	tools          Inspect the protoc toolchain
//	   check           Probe the compiler and every manifest plugin, report what is missing
//	   env             Print the resolved layout, toolchain and host diagnostics
package main
