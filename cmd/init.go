package cmd

import (
	"fmt"
	"os"

	"github.com/nikogura/folio/pkg/config"
	"github.com/nikogura/folio/pkg/content"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file and a sample content file",
	Long: `Create a default configuration file (default $HOME/.folio/config.yaml) and,
unless it already exists, a sample portfolio content file next to it.

Example:
  folio init
  folio init --config ./folio.yaml`,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to initialize config")
		return err
	}

	fmt.Printf("Config file created at: %s\n", path)

	var cfg config.Config
	cfg, err = config.Load(path)
	if err != nil {
		err = errors.Wrap(err, "failed to load new config")
		return err
	}

	contentPath := cfg.Content
	if contentFile != "" {
		contentPath = contentFile
	}

	_, err = os.Stat(contentPath)
	if err == nil {
		fmt.Printf("Content file already exists: %s\n", contentPath)
		return nil
	}

	err = content.WriteSample(contentPath)
	if err != nil {
		return err
	}

	fmt.Printf("Sample content created at: %s\n", contentPath)
	fmt.Println("\nEdit the content file, then run 'folio build' or 'folio preview'.")

	return err
}
