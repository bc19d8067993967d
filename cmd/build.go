package cmd

import (
	"bytes"
	"context"
	"path/filepath"

	"github.com/nikogura/folio/pkg/config"
	"github.com/nikogura/folio/pkg/content"
	"github.com/nikogura/folio/pkg/page"
	"github.com/nikogura/folio/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var buildOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var buildKeepMarkdown bool

//nolint:gochecknoglobals // Cobra boilerplate
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the portfolio site",
	Long: `Render the content file to a static site: index.html plus the folio.js
client script that drives the spotlight, copy button, smooth scrolling and
active section highlighting.

When pandoc is enabled in the config, a markdown resume is generated from the
same content and rendered to PDF, and the sidebar links to it.

Example:
  folio build
  folio build --content portfolio.yaml --output-dir public`,
	RunE: runBuild,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildOutputDir, "output-dir", "", "Output directory (default from config)")
	buildCmd.Flags().BoolVar(&buildKeepMarkdown, "keep-markdown", false, "Keep the resume markdown after PDF generation")
}

func runBuild(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	var logger *zap.Logger
	cfg, logger, err = setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	outDir := getOutputDir(buildOutputDir, cfg.OutputDir)

	err = build(cmd.Context(), cfg, outDir, logger)
	return err
}

// build renders the site, and the resume when pandoc is enabled, into outDir.
func build(ctx context.Context, cfg config.Config, outDir string, logger *zap.Logger) (err error) {
	var portfolio content.Portfolio
	portfolio, err = content.Load(cfg.Content)
	if err != nil {
		return err
	}

	logger.Debug("loaded content",
		zap.String("path", cfg.Content),
		zap.Int("sections", len(portfolio.Sections)),
	)

	if cfg.Pandoc.Enabled {
		var pdfName string
		pdfName, err = buildResume(ctx, cfg, portfolio, outDir, logger)
		if err != nil {
			// The site is still useful without the PDF.
			logger.Warn("resume PDF not generated", zap.Error(err))
		} else if portfolio.Metadata.Resume == "" {
			portfolio.Metadata.Resume = pdfName
		}
	}

	composer := page.NewComposer(portfolio)

	var buf bytes.Buffer
	err = composer.Write(&buf, page.State{})
	if err != nil {
		err = errors.Wrap(err, "failed to render page")
		return err
	}

	var paths []string
	paths, err = renderer.WriteSite(outDir,
		renderer.File{Name: "index.html", Data: buf.Bytes()},
		renderer.File{Name: page.ScriptName, Data: page.Script()},
	)
	if err != nil {
		return err
	}

	skipped := len(portfolio.Sections) - len(composer.Renderable())
	logger.Info("site built",
		zap.String("dir", outDir),
		zap.Int("files", len(paths)),
		zap.Int("sections", len(composer.Renderable())),
		zap.Int("skipped", skipped),
	)

	return err
}

// buildResume writes the markdown resume and renders it to PDF. It returns
// the PDF file name relative to outDir.
func buildResume(ctx context.Context, cfg config.Config, portfolio content.Portfolio, outDir string, logger *zap.Logger) (pdfName string, err error) {
	var mdName string
	mdName, pdfName = renderer.ResumeFilenames(portfolio.Metadata.Name)
	resumeMD := filepath.Join(outDir, mdName)
	resumePDF := filepath.Join(outDir, pdfName)

	err = renderer.WriteMarkdown(renderer.ResumeMarkdown(portfolio), resumeMD)
	if err != nil {
		err = errors.Wrap(err, "failed to write resume markdown")
		return pdfName, err
	}

	err = renderer.RenderPDF(ctx, resumeMD, resumePDF, renderer.PandocOptions{
		TemplatePath: cfg.Pandoc.TemplatePath,
		ClassFile:    cfg.Pandoc.ClassFile,
	})
	if err != nil {
		logger.Info("resume markdown kept", zap.String("path", resumeMD))
		return pdfName, err
	}

	logger.Info("resume PDF saved", zap.String("path", resumePDF))

	if !buildKeepMarkdown {
		err = renderer.CleanupMarkdown(resumeMD)
		if err != nil {
			logger.Warn("failed to clean up markdown", zap.Error(err))
			err = nil
		}
	}

	return pdfName, err
}
