package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dupes.dev/pkg/dupes/internal/domain"
	m "dupes.dev/pkg/dupes/internal/model"
)

// removeCmd represents the remove command.
var removeCmd = newRemoveCmd()

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [directory]",
		Short: "Remove duplicate files, keeping one copy per set",
		Long:  removeLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scanArgs, err := parseScanArgs(args)
			if err != nil {
				return err
			}

			strategy, err := m.ParseStrategy(viper.GetString(strategyConfigKey))
			if err != nil {
				return err
			}

			// Never read from config or env: deleting files takes an explicit flag.
			noDryRun, err := cmd.Flags().GetBool(noDryRunFlagName)
			if err != nil {
				return err
			}

			return newWorkflow(cmd).Remove(cmd.Context(), domain.RemoveArgs{
				ScanArgs: scanArgs,
				Strategy: strategy,
				DryRun:   !noDryRun,
				Symlink:  viper.GetBool(symlinkConfigKey),
			})
		},
	}

	configureRemoveFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func configureRemoveFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(noDryRunFlagName, false, "actually remove files (default is a dry run)")

	cmd.Flags().String(strategyFlagName, m.DefaultStrategy.String(), fmt.Sprintf("which file of a set to keep %v", m.Strategies()))
	bindFlagToConfig(cmd.Flags().Lookup(strategyFlagName), strategyConfigKey)

	cmd.Flags().Bool(symlinkFlagName, defaultSymlink, "replace each removed file with a relative symlink to the kept file")
	bindFlagToConfig(cmd.Flags().Lookup(symlinkFlagName), symlinkConfigKey)
}
