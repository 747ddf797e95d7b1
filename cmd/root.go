// Package cmd provides the root command and CLI setup for shepherd.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"shepherd.dev/pkg/shepherd/internal/adapter"
	"shepherd.dev/pkg/shepherd/internal/controller"
	"shepherd.dev/pkg/shepherd/internal/domain"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

// orchestratorFactory builds the pipeline for a validated configuration.
type orchestratorFactory func(ctx context.Context, config m.Config, dryRun bool) (domain.CollectionOrchestrator, error)

var fileManager adapter.FileManager
var systemAdapter adapter.SystemAdapter
var metadataStore adapter.MetadataStore
var ui controller.UI
var newOrchestrator orchestratorFactory

// verboseFlag forces debug logging.
var verboseFlag bool

// logFileFlag overrides the log file location.
var logFileFlag string

// reportDirFlag is a root-level flag shared by commands that read/write metadata and journals.
var reportDirFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fileManager = adapter.NewLocalFileManager()
	systemAdapter = adapter.NewLocalSystemAdapter()
	metadataStore = adapter.NewMetadataStore(afero.NewOsFs())
	newOrchestrator = defaultOrchestrator
}

const rootLongDescription = `Shepherd keeps file collections free of duplicate content.

Each collection has an archive that must hold every file exactly once. Shepherd
hashes the archive, elects one original per group of identical files and moves
every other copy into the collection's unstage folder, next to a symbolic link
pointing back at the original.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shepherd",
		Short: "Duplicate detection for file collections",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFlagName, viper.GetString(logFilenameKey), "log file location")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFlagName), logFilenameKey)

	cmd.PersistentFlags().
		StringVarP(
			&reportDirFlag, reportDirFlagName, "r",
			viper.GetString(reportDirConfigKey),
			"directory for collection metadata and relocation journals",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(reportDirFlagName), reportDirConfigKey)
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
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// defaultOrchestrator wires the pipeline on the local filesystem.
func defaultOrchestrator(ctx context.Context, config m.Config, dryRun bool) (domain.CollectionOrchestrator, error) {
	hasher, err := domain.NewHasher(fileManager, config.Hash, func(path m.Path, read, size uint64) {
		ui.DisplayHashProgress(ctx, path, read, size)
	})
	if err != nil {
		return nil, err
	}

	scanner := domain.NewScanner(fileManager)
	options := []domain.OrchestratorOption{domain.WithMetadataStore(metadataStore)}

	if dryRun {
		options = append(options, domain.WithDryRun())
	}

	return domain.NewCollectionOrchestrator(
		config,
		ui,
		domain.NewPreflight(fileManager, systemAdapter, config),
		scanner,
		hasher,
		domain.NewRelocator(fileManager),
		domain.NewSourceStager(scanner, hasher, config),
		options...,
	), nil
}
