package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grovetools/pick/version"
)

// SetVersionTemplate wires the build information into cobra's --version
// output on the root command.
func SetVersionTemplate(cmd *cobra.Command, info version.Info) {
	cmd.Version = info.Version
	cmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:    %s
  Built:     %s
  Platform:  %s
`, info.Commit, info.BuildDate, info.Platform))
}
