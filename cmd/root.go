// Package cmd provides the root command and CLI setup for dupes.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dupes.dev/pkg/dupes/internal/adapter"
	"dupes.dev/pkg/dupes/internal/controller"
	"dupes.dev/pkg/dupes/internal/domain"
	m "dupes.dev/pkg/dupes/internal/model"
)

var fsAdapter adapter.FSAdapter
var scanner domain.Scanner
var executor domain.Executor

// newWorkflow builds the pipeline that writes to the output of cmd.
var newWorkflow = func(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, isTerminal(cmd.OutOrStdout()))
	return domain.NewWorkflow(fsAdapter, ui, scanner, executor)
}

func init() {
	fsAdapter = adapter.NewLocalFSAdapter()
	scanner = domain.NewScanner(fsAdapter)
	executor = domain.NewExecutor(fsAdapter)
}

const directoryHelp = `DIRECTORY defaults to the current directory. Directories named .git,
node_modules and __pycache__ are always skipped; add more with --exclude.
Symbolic links are never followed or hashed.`

const rootLongDescription = `Dupes finds files with identical content below a directory and can
remove the redundant copies, optionally replacing them with symbolic links
to the copy that is kept.

` + directoryHelp

const scanLongDescription = `Scan a directory tree and report every set of files with identical content.
Nothing is modified.

` + directoryHelp

const removeLongDescription = `Scan a directory tree and remove all but one file of every duplicate set.

Runs as a dry run unless --no-dry-run is given: the files that would be
removed are listed and nothing is touched.

` + directoryHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dupes",
		Short:   "Find and remove duplicate files",
		Long:    rootLongDescription,
		Version: buildVersion(),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringSliceP(excludeFlagName, "x", nil, "additional directory names to skip (can be repeated or comma separated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().String(hashFlagName, string(m.DefaultHashAlgorithm), fmt.Sprintf("content hash algorithm %v", m.HashAlgorithms()))
	bindFlagToConfig(cmd.PersistentFlags().Lookup(hashFlagName), hashConfigKey)

	cmd.PersistentFlags().String(logFileFlagName, "", "log file path (default "+defaultLogFilename()+")")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolP(verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := fang.Execute(ctx, rootCmd)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && controller.IsTTY(f)
}

func parseRoot(args []string) m.Path {
	if len(args) == 0 || args[0] == "" {
		return "."
	}

	return m.Path(args[0])
}

// parseScanArgs resolves the settings shared by scan and remove.
func parseScanArgs(args []string) (domain.ScanArgs, error) {
	algorithm, err := m.ParseHashAlgorithm(viper.GetString(hashConfigKey))
	if err != nil {
		return domain.ScanArgs{}, err
	}

	return domain.ScanArgs{
		Root:      parseRoot(args),
		Exclude:   viper.GetStringSlice(excludeConfigKey),
		Algorithm: algorithm,
	}, nil
}
