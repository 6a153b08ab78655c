package cmdopts

import "errors"

// ErrNoManifestFile is returned when a command needs a manifest file
// on disk but only the built-in manifest is configured.
var ErrNoManifestFile = errors.New("no manifest file specified, use --manifest to name one")
