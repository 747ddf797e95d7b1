package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"shepherd.dev/pkg/shepherd/internal/controller"
	m "shepherd.dev/pkg/shepherd/internal/model"
)

var runParallelFlag int
var algorithmFlag string
var minSizeFlag uint64
var maxSizeFlag uint64

const runLongDescription = `Remove duplicate content from the archive of each collection.

Duplicates are moved into the unstage folder of their collection, each next to a
symbolic link to the file that stays in the archive. When the archive holds no
duplicates, the files of the source folder are classified against it.

Without arguments every configured collection is processed.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [collections...]",
		Short: "Unstage duplicates from collection archives",
		Long:  runLongDescription,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindRunFlags(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCollections(cmd, args, false)
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of collections processed at once")
	cmd.Flags().StringVarP(&algorithmFlag, algorithmFlagName, "a", viper.GetString(hashAlgorithmKey), "hash algorithm, MD5 or SHA1")
	cmd.Flags().Uint64Var(&minSizeFlag, minSizeFlagName, viper.GetUint64(hashMinSizeKey), "smallest file size hashed in bytes, 0 for no limit")
	cmd.Flags().Uint64Var(&maxSizeFlag, maxSizeFlagName, viper.GetUint64(hashMaxSizeKey), "largest file size hashed in bytes, 0 for no limit")
}

// bindRunFlags binds the flags of the command being executed; run and plan share the keys.
func bindRunFlags(cmd *cobra.Command) {
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(algorithmFlagName), hashAlgorithmKey)
	bindFlagToConfig(cmd.Flags().Lookup(minSizeFlagName), hashMinSizeKey)
	bindFlagToConfig(cmd.Flags().Lookup(maxSizeFlagName), hashMaxSizeKey)
}

// runCollections processes the named collections, all of them when names is empty.
// Collections run concurrently up to run.parallel; a failing collection does not stop the others.
func runCollections(cmd *cobra.Command, names []string, dryRun bool) error {
	ctx := cmd.Context()

	config, err := loadConfig()
	if err != nil {
		return err
	}

	collections, err := selectCollections(config, names)
	if err != nil {
		return err
	}

	orchestrator, err := newOrchestrator(ctx, config, dryRun)
	if err != nil {
		return err
	}

	mode := controller.WithRunMode()
	if dryRun {
		mode = controller.WithPlanMode()
	}

	if err := ui.Start(ctx, mode); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer ui.Close(ctx)

	var (
		failures []error
		mu       sync.Mutex
	)

	var group errgroup.Group
	if parallel := viper.GetInt(runParallelConfigKey); parallel > 0 {
		group.SetLimit(parallel)
	}

	for _, collection := range collections {
		group.Go(func() error {
			report, err := orchestrator.Run(ctx, collection)

			if displayErr := ui.DisplayReport(ctx, report, err); displayErr != nil {
				slog.Warn("failed to display report", "collection", collection.Name, "error", displayErr)
			}

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				failures = append(failures, fmt.Errorf("collection %s: %w", collection.Name, err))
				return nil
			}

			storeCollectionPaths(report.Collection)

			return nil
		})
	}

	_ = group.Wait()

	return errors.Join(failures...)
}

func selectCollections(config m.Config, names []string) ([]m.Collection, error) {
	if len(config.Collections) == 0 {
		return nil, m.PreconditionError("select collections", "",
			fmt.Errorf("%w: no collections configured in %s", m.ErrInvalidConfig, configFileName))
	}

	if len(names) == 0 {
		return config.Collections, nil
	}

	selected := make([]m.Collection, 0, len(names))

	for _, name := range names {
		// viper lowercases map keys.
		collection, ok := config.Collection(strings.ToLower(name))
		if !ok {
			return nil, m.PreconditionError("select collections", "",
				fmt.Errorf("%w: unknown collection %q", m.ErrInvalidConfig, name))
		}

		selected = append(selected, collection)
	}

	return selected, nil
}
