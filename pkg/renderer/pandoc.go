// Package renderer writes build outputs: the static site files and the
// markdown/PDF resume.
package renderer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// PandocOptions select the LaTeX template used for PDF output. Both are
// optional; ClassFile requires TemplatePath.
type PandocOptions struct {
	TemplatePath string
	ClassFile    string
}

// RenderPDF converts markdown to PDF using pandoc, with an optional LaTeX
// template.
func RenderPDF(ctx context.Context, markdownPath, outputPath string, opts PandocOptions) (err error) {
	// Validate pandoc exists
	err = checkPandocExists(ctx)
	if err != nil {
		return err
	}

	// Validate input files exist
	inputs := []string{markdownPath}
	if opts.TemplatePath != "" {
		inputs = append(inputs, opts.TemplatePath)
	}
	if opts.ClassFile != "" {
		inputs = append(inputs, opts.ClassFile)
	}
	err = validateFiles(inputs...)
	if err != nil {
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	cmd := exec.CommandContext(ctx, "pandoc", pandocArgs(markdownPath, outputPath, opts)...)

	// Set TEXINPUTS to include directory with .cls file
	if opts.ClassFile != "" {
		classDir := filepath.Dir(opts.ClassFile)
		texinputs := classDir + ":" + os.Getenv("TEXINPUTS")
		cmd.Env = append(os.Environ(), "TEXINPUTS="+texinputs)
	}

	// Capture output
	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return err
	}

	return err
}

func pandocArgs(markdownPath, outputPath string, opts PandocOptions) (args []string) {
	args = []string{
		"-f", "markdown",
		"-t", "pdf",
		"-o", outputPath,
	}
	if opts.TemplatePath != "" {
		args = append(args, "--template", opts.TemplatePath)
	}
	args = append(args, "--number-sections=false", markdownPath)
	return args
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists(ctx context.Context) (err error) {
	cmd := exec.CommandContext(ctx, "pandoc", "--version")
	err = cmd.Run()
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to generate PDFs)")
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}

// WriteMarkdown writes markdown content to a file.
func WriteMarkdown(content, outputPath string) (err error) {
	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	// Write file
	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown file: %s", outputPath)
		return err
	}

	return err
}

// CleanupMarkdown removes markdown files after PDF generation.
func CleanupMarkdown(paths ...string) (err error) {
	for _, path := range paths {
		err = os.Remove(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to remove markdown file: %s", path)
			return err
		}
	}
	return err
}
