package cmd

import (
	"context"
	"sync"
	"time"

	"github.com/nikogura/folio/pkg/config"
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/preview"
	"github.com/nikogura/folio/pkg/watch"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var previewWatch bool

//nolint:gochecknoglobals // Cobra boilerplate
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the portfolio in the terminal",
	Long: `Open an interactive terminal rendition of the portfolio page.

Keys:
  j/k, arrows     scroll
  tab/shift+tab   next/previous section
  1-9             jump to section
  c               copy the e-mail address
  q               quit

With --watch the preview reloads when the content file changes.

Example:
  folio preview
  folio preview --watch`,
	RunE: runPreview,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().BoolVar(&previewWatch, "watch", false, "Reload when the content file changes")
}

func runPreview(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	var logger *zap.Logger
	cfg, logger, err = setup()
	if err != nil {
		return err
	}

	var portfolio content.Portfolio
	portfolio, err = content.Load(cfg.Content)
	if err != nil {
		return err
	}

	// The terminal belongs to the preview; keep log output off it.
	quiet := zap.NewNop()
	if getVerbose() {
		quiet = logger
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	var reload chan content.Portfolio
	var wg sync.WaitGroup

	if previewWatch {
		reload = make(chan content.Portfolio, 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			watchContent(ctx, cfg.Content, reload, quiet)
		}()
	}

	err = preview.Run(ctx, portfolio, preview.Options{Logger: quiet}, reload)

	cancel()
	wg.Wait()

	return err
}

// watchContent reloads the content on change and offers it to the preview.
// Invalid edits are skipped until the next change.
func watchContent(ctx context.Context, path string, reload chan<- content.Portfolio, logger *zap.Logger) {
	w := watch.New(path, 0, logger)

	err := w.Run(ctx, func() {
		p, loadErr := content.Load(path)
		if loadErr != nil {
			logger.Warn("content reload failed", zap.Error(loadErr))
			return
		}
		select {
		case reload <- p:
		case <-ctx.Done():
		}
	})
	if err != nil {
		logger.Warn("content watch stopped", zap.Error(err))
	}
}

func millis(n int) (d time.Duration) {
	d = time.Duration(n) * time.Millisecond
	return d
}
