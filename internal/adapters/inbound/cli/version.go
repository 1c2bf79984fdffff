package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func setVersionTemplate(cmd *cobra.Command) {
	cmd.SetVersionTemplate(fmt.Sprintf("%s %s (%s)\n", programName, version, commit))
}
