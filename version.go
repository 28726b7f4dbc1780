package catena

import (
	_ "embed"
)

// Version is the release version of catena, read from the VERSION file.
//
//go:embed VERSION
var Version string
