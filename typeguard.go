package typeguard

import (
	_ "embed"
)

// Version is the release version of the module and the typeguard CLI.
//
//go:embed VERSION
var Version string
