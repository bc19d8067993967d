package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/nikogura/folio/pkg/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var contentFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Build a personal portfolio site from a content file",
	Long: `folio renders a single-page portfolio site from a declarative content file:
a profile sidebar with in-page navigation, typed content sections (text,
experience, projects, articles, certifications) and a pointer-following
spotlight.

The same content can be previewed interactively in the terminal, rebuilt on
change, and rendered to a PDF resume with pandoc.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.folio/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "content file (default from config)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// setup loads the configuration and builds the logger. The --content flag
// overrides the configured content file.
func setup() (cfg config.Config, logger *zap.Logger, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, logger, err
	}

	if contentFile != "" {
		cfg.Content = contentFile
	}

	logger = cfg.Logging.Prepare(getVerbose())
	return cfg, logger, err
}

func getOutputDir(flagValue, configValue string) (outDir string) {
	outDir = flagValue
	if outDir == "" {
		outDir = configValue
	}
	return outDir
}
