package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"shepherd.dev/pkg/shepherd/internal/controller"
	"shepherd.dev/pkg/shepherd/internal/domain"
	m "shepherd.dev/pkg/shepherd/internal/model"
	"shepherd.dev/pkg/shepherd/pkg"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <collection>",
		Short: "View the metadata saved by the last run of a collection",
		Long: `View the files, digests and pending relocations saved by the last run of a
collection, followed by the relocations it already executed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return viewCollection(cmd, args[0])
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

func viewCollection(cmd *cobra.Command, name string) error {
	ctx := cmd.Context()

	reportDir := m.Path(viper.GetString(reportDirConfigKey))
	if reportDir == "" {
		return m.PreconditionError("view", "", fmt.Errorf("%w: --%s is not set", m.ErrPathNotConfigured, reportDirFlagName))
	}

	metadata, err := metadataStore.Load(ctx, domain.MetadataPath(reportDir, name))
	if err != nil {
		return err
	}

	if err := ui.Start(ctx, controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer ui.Close(ctx)

	if err := ui.DisplayMetadata(ctx, metadata); err != nil {
		return err
	}

	executed, err := pkg.ReadJournal[m.DuplicateEdge](string(domain.JournalPath(reportDir, name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return err
	}

	if len(executed) == 0 {
		return nil
	}

	return ui.DisplayPlan(ctx, metadata.Collection, executed)
}
