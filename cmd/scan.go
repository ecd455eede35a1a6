package cmd

import (
	"github.com/spf13/cobra"
)

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [directory]",
		Short: "Report sets of duplicate files",
		Long:  scanLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanArgs, err := parseScanArgs(args)
			if err != nil {
				return err
			}

			return newWorkflow(cmd).Scan(cmd.Context(), scanArgs)
		},
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
