// Provides the generation manifest describing a compiler run.
//
// A manifest lists the .proto files to compile, the code-generation
// plugins to register and the output directives to request. The
// built-in manifest compiles munkey.proto with the TypeScript and gRPC
// node plugins; a YAML file or a folder of YAML files can be supplied
// to replace it.
//
// * `yaml.go` covers reading and writing manifest files.
// * `types.go` defines the types and validation.
// * `manifest.yaml` is the built-in default manifest.
package manifest
