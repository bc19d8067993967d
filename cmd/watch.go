package cmd

import (
	"github.com/nikogura/folio/pkg/config"
	"github.com/nikogura/folio/pkg/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var watchOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var watchDebounce int

//nolint:gochecknoglobals // Cobra boilerplate
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rebuild the site whenever the content file changes",
	Long: `Build the site once, then watch the content file and rebuild after each
burst of changes. Build errors are logged and watching continues. Stop with
Ctrl-C.

Example:
  folio watch
  folio watch --debounce 500`,
	RunE: runWatch,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchOutputDir, "output-dir", "", "Output directory (default from config)")
	watchCmd.Flags().IntVar(&watchDebounce, "debounce", int(watch.DefaultDebounce.Milliseconds()), "Debounce interval in milliseconds")
}

func runWatch(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	var logger *zap.Logger
	cfg, logger, err = setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	outDir := getOutputDir(watchOutputDir, cfg.OutputDir)

	err = build(ctx, cfg, outDir, logger)
	if err != nil {
		logger.Error("build failed", zap.Error(err))
	}

	w := watch.New(cfg.Content, millis(watchDebounce), logger)

	logger.Info("watching for changes", zap.String("path", cfg.Content))

	err = w.Run(ctx, func() {
		buildErr := build(ctx, cfg, outDir, logger)
		if buildErr != nil {
			logger.Error("build failed", zap.Error(buildErr))
		}
	})
	return err
}
