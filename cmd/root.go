// Package cmd provides the root command and CLI setup for regren.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"regren.dev/pkg/regren/internal/adapter"
	"regren.dev/pkg/regren/internal/controller"
	"regren.dev/pkg/regren/internal/domain"
	m "regren.dev/pkg/regren/internal/model"
)

var fsAdapter adapter.DirFSAdapter
var reportStore adapter.ReportStore
var scanner domain.Scanner
var renamer domain.Renamer
var workflow domain.Workflow
var ui *controller.SimpleUI

var (
	pathFlag        string
	ignoreExtFlag   bool
	deleteFlag      bool
	testFlag        bool
	quietFlag       int
	onlyFilesFlag   bool
	onlyFoldersFlag bool
	diffFlag        bool
	reportFlag      string
	colorFlag       string
	logFileFlag     string
	verboseFlag     bool
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewSimpleUI(rootCmd)
	fsAdapter = adapter.NewLocalDirFSAdapter()
	reportStore = adapter.NewReportStore()
	scanner = domain.NewScanner(fsAdapter)
	renamer = domain.NewRenamer(fsAdapter, ui)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		scanner,
		renamer,
	)
}

const rootLongDescription = `Regren renames the files and folders of one directory by matching their
names against a regular expression and substituting the matches.

Without a replacement the matching names are only listed, with every match
highlighted. Use --test to preview the renames without touching anything.

Replacements refer to groups with \1 or \g<name>; a '$' is plain text.
References to groups the pattern does not define are rejected before
anything is renamed.

Every argument is a pattern: use --init-config to write a default
regren.yaml and --version to print the version.

Examples:
  regren 'o+'                      list names containing "o"
  regren -x 'o' '0'                foo.txt -> f00.txt
  regren -t -d --files '\s'        preview removing whitespace from file names
  regren -p ./photos 'IMG_(\d+)' 'photo-\1'`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "regren <pattern> [replacement]",
		Short:   "Rename files and folders with regular expressions",
		Long:    rootLongDescription,
		Version: versionString(),
		Args:    validateRootArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments parsed fine; from here on errors are runtime errors.
			cmd.SilenceUsage = true

			if initConfigFlag {
				return writeDefaultConfig(cmd)
			}

			mode, err := controller.ParseColorMode(viper.GetString(colorConfigKey))
			if err != nil {
				return err
			}

			ui.UsePalette(controller.ResolvePalette(mode, cmd.OutOrStdout()))

			_, err = workflow.Rename(cmd.Context(), domain.RenameArgs{
				Config:     newRunConfig(args),
				ReportPath: m.Path(reportFlag),
			})

			return err
		},
	}

	cmd.SetVersionTemplate(versionTemplate)
	configureRootFlags(cmd)

	return cmd
}

// validateRootArgs requires a pattern and an optional replacement, or no
// arguments at all with --init-config.
func validateRootArgs(cmd *cobra.Command, args []string) error {
	if initConfigFlag {
		return cobra.NoArgs(cmd, args)
	}

	return cobra.RangeArgs(1, 2)(cmd, args)
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.SetGlobalNormalizationFunc(normalizeFlagAliases)

	cmd.Flags().StringVarP(&pathFlag, pathFlagName, "p", ".", "directory whose entries are renamed")
	cmd.Flags().BoolVarP(&deleteFlag, deleteFlagName, "d", false, "delete the matches (the replacement is ignored)")
	cmd.Flags().BoolVarP(&testFlag, testFlagName, "t", false, "show what would be renamed without renaming")
	cmd.Flags().BoolVar(&onlyFilesFlag, onlyFilesFlagName, false, "rename files only (alias --only-files)")
	cmd.Flags().BoolVar(&onlyFoldersFlag, onlyFoldersFlagName, false, "rename folders only (alias --only-folders)")
	cmd.Flags().StringVar(&reportFlag, reportFlagName, "", "write a YAML report of the run to this file")
	cmd.Flags().BoolVar(&initConfigFlag, initConfigFlagName, false, "write a default regren.yaml to the working directory and exit")
	cmd.MarkFlagsMutuallyExclusive(onlyFilesFlagName, onlyFoldersFlagName)

	cmd.Flags().BoolVarP(&ignoreExtFlag, ignoreExtFlagName, "x", defaultIgnoreExt, "keep file extensions out of the match")
	bindFlagToConfig(cmd.Flags().Lookup(ignoreExtFlagName), ignoreExtConfigKey)

	cmd.Flags().CountVarP(&quietFlag, quietFlagName, "q", "less output: -q hides the renames, -qq the summary too")
	bindFlagToConfig(cmd.Flags().Lookup(quietFlagName), quietConfigKey)

	cmd.Flags().BoolVar(&diffFlag, diffFlagName, defaultDiff, "print a unified diff of the directory listing")
	bindFlagToConfig(cmd.Flags().Lookup(diffFlagName), diffConfigKey)

	cmd.Flags().StringVar(&colorFlag, colorFlagName, defaultColor, "highlight matches: auto, always or never")
	bindFlagToConfig(cmd.Flags().Lookup(colorFlagName), colorConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "write logs to this file (disabled when empty)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// normalizeFlagAliases maps the long alias spellings onto their flags.
func normalizeFlagAliases(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "only-files":
		name = onlyFilesFlagName
	case "only-folders":
		name = onlyFoldersFlagName
	}

	return pflag.NormalizedName(name)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func newRunConfig(args []string) m.RunConfig {
	cfg := m.RunConfig{
		Pattern:         args[0],
		Path:            m.Path(pathFlag),
		IgnoreExtension: viper.GetBool(ignoreExtConfigKey),
		Delete:          deleteFlag,
		DryRun:          testFlag,
		Quiet:           viper.GetInt(quietConfigKey),
		OnlyFiles:       onlyFilesFlag,
		OnlyFolders:     onlyFoldersFlag,
		ExcludedPath:    executablePath(),
		ShowDiff:        viper.GetBool(diffConfigKey),
	}

	if len(args) > 1 {
		cfg.Replacement = args[1]
		cfg.HasReplacement = true
	}

	return cfg
}

// executablePath returns the resolved path of the running binary, or an
// empty path when it cannot be determined.
func executablePath() m.Path {
	exe, err := os.Executable()
	if err != nil {
		slog.Debug("cannot locate executable", "error", err)
		return ""
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return m.Path(exe)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
