package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/greencart/internal/config"
	"github.com/rshade/greencart/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// baseLogger is logger without the cli component tag, handed to services
// that tag their own component.
var baseLogger zerolog.Logger //nolint:gochecknoglobals // Set once per command in setupLogging

// NewRootCmd creates the root command for the greencart CLI. It loads the
// configuration, sets up logging and tracing, and registers the serve,
// carbon, catalog and config command groups.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult   *logging.Result
		configPath  string
		overlayPath string
	)

	cmd := &cobra.Command{
		Use:     "greencart",
		Short:   "GreenCart storefront and carbon footprint estimator",
		Long:    "GreenCart: estimate, grade and reduce the carbon footprint of a shopping cart",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath, overlayPath)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "",
		"path to config file (default $GREENCART_HOME/config.yaml)")
	cmd.PersistentFlags().StringVar(&overlayPath, "overlay", "",
		"YAML file whose top-level sections replace those of the config file")
	cmd.AddCommand(NewServeCmd(), newCarbonCmd(), newCatalogCmd(), newConfigCmd())

	return cmd
}

// loadConfig reads the config file at path, or the default location when
// path is empty, and layers the overlay file on top. A missing config file
// yields the defaults.
func loadConfig(path, overlay string) (*config.Config, error) {
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return nil, err
		}
	}
	cfg, err := config.LoadWithOverlay(path, overlay)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

const rootCmdExample = `  # Start the storefront API on port 8080
  greencart serve

  # Estimate the footprint of a 2 kg bag of rice
  greencart carbon estimate --category Pantry --price 3.49 --weight 2

  # Grade an arbitrary footprint
  greencart carbon rate 4.2

  # Rank the products listed in a YAML file
  greencart carbon compare --file basket.yaml

  # List the seeded catalog as JSON
  greencart catalog list --output json

  # Browse the catalog interactively
  greencart catalog browse

  # Write a default configuration file
  greencart config init`

// newCarbonCmd creates the carbon command group.
func newCarbonCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "carbon", Short: "Carbon footprint estimation commands"}
	cmd.AddCommand(
		NewCarbonEstimateCmd(), NewCarbonRateCmd(),
		NewCarbonCompareCmd(), NewCarbonSuggestCmd(),
	)
	return cmd
}

// newCatalogCmd creates the catalog command group.
func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "catalog", Short: "Product catalog commands"}
	cmd.AddCommand(NewCatalogListCmd(), NewCatalogBrowseCmd(), NewCatalogScrapeCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigGetCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
