package cmd

import (
	"github.com/spf13/cobra"
)

const planLongDescription = `Show which duplicates a run would unstage, without touching any file.

The plan lists every duplicate with the file it duplicates and its destination,
followed by a diff of the affected paths before and after the run.`

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [collections...]",
		Short: "Show the relocation plan without executing it",
		Long:  planLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindRunFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollections(cmd, args, true)
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
