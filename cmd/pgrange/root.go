package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iotaledger/pgrange/configuration"
	"github.com/iotaledger/pgrange/ierrors"
	"github.com/iotaledger/pgrange/logger"
)

const (
	envPrefix = "PGRANGE"

	configurationKeyRangeKind    = "range.kind"
	configurationKeyNilOnEmpty   = "range.nilOnEmpty"
	configurationKeyOutputFormat = "output.format"
)

var (
	// ErrUnknownRangeKind is returned if the configured range kind is neither "int" nor "num".
	ErrUnknownRangeKind = ierrors.New("unknown range kind")
	// ErrUnknownOutputFormat is returned if the configured output format is not supported.
	ErrUnknownOutputFormat = ierrors.New("unknown output format")
	// ErrMissingValue is returned if the value to look up in a range is empty.
	ErrMissingValue = ierrors.New("missing value")
)

var (
	configFile   string
	rangeKind    string
	nilOnEmpty   bool
	outputFormat string

	log = logger.NewNopLogger()
)

var rootCmd = &cobra.Command{
	Use:   "pgrange",
	Short: "pgrange - parse and render PostgreSQL range values",
	Long: `pgrange parses the textual representation of PostgreSQL int8range and numrange values,
converts them to their tuple representation and back, and checks whether values lie within them.

Settings are read from the defaults, an optional config file (--config), environment variables
prefixed with PGRANGE_ and the command line, in this order.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.SortFlags = false

	flags.StringVar(&configFile, "config", "", "Path to a JSON, YAML or TOML config file")
	flags.StringVarP(&rangeKind, configurationKeyRangeKind, "k", rangeKindInt, "Range kind (int, num)")
	flags.BoolVar(&nilOnEmpty, configurationKeyNilOnEmpty, false, "Treat empty range text as null instead of unbounded")
	flags.StringVarP(&outputFormat, configurationKeyOutputFormat, "o", outputFormatText, "Output format (text, json, yaml, inspect)")
	flags.String(logger.ConfigurationKeyLevel, "info", "Minimum enabled logging level")
	flags.String(logger.ConfigurationKeyEncoding, "console", "Log encoding (console, json)")
	flags.StringSlice(logger.ConfigurationKeyOutputPaths, []string{"stderr"}, "Log output paths")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(arrayCmd)
	rootCmd.AddCommand(containsCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func defaultSettings() map[string]any {
	defaults := map[string]any{
		configurationKeyRangeKind:    rangeKindInt,
		configurationKeyNilOnEmpty:   false,
		configurationKeyOutputFormat: outputFormatText,
	}
	for key, value := range logger.Defaults() {
		defaults[key] = value
	}

	return defaults
}

// newConfiguration merges the defaults, the config file, the environment and the given flags.
func newConfiguration(flags *pflag.FlagSet, file string) (*configuration.Configuration, error) {
	config := configuration.New()
	if err := config.SetDefaults(defaultSettings()); err != nil {
		return nil, ierrors.Wrap(err, "unable to set default settings")
	}

	if file != "" {
		if err := config.LoadFile(file); err != nil {
			return nil, ierrors.Wrapf(err, "unable to load config file %s", file)
		}
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, ierrors.Wrap(err, "unable to load environment variables")
	}

	if err := config.LoadFlagSet(flags); err != nil {
		return nil, ierrors.Wrap(err, "unable to load command line flags")
	}

	return config, nil
}

func loadSettings(cmd *cobra.Command, _ []string) error {
	config, err := newConfiguration(cmd.Flags(), configFile)
	if err != nil {
		return err
	}

	rangeKind = config.String(configurationKeyRangeKind)
	nilOnEmpty = config.Bool(configurationKeyNilOnEmpty)
	outputFormat = config.String(configurationKeyOutputFormat)

	loggerCfg, err := logger.ConfigFrom(config)
	if err != nil {
		return err
	}

	rootLogger, err := logger.NewRootLogger(loggerCfg)
	if err != nil {
		return err
	}
	log = rootLogger.Named("pgrange")

	log.Debugw("settings loaded", "kind", rangeKind, "nilOnEmpty", nilOnEmpty, "format", outputFormat)

	return nil
}
