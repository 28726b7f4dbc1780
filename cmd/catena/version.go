package main

import (
	"strings"

	"github.com/aretw0/catena"
	"github.com/spf13/cobra"
)

// setVersion enables --version. No -v shorthand is registered for it
// because -v is --show-nonprinting.
func setVersion(cmd *cobra.Command) {
	cmd.Version = strings.TrimSpace(catena.Version)
	cmd.SetVersionTemplate("catena version {{.Version}}\n")
}
