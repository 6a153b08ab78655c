package manifest

// CmdOpts specifies the manifest command-line options
type CmdOpts struct {
	Manifest string `short:"m" long:"manifest" mapstructure:"manifest" description:"YAML file or folder of YAML files with the generation manifest, uses the built-in manifest when empty" env:"PB_MANIFEST"`
}
