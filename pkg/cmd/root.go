package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/coltonb-mixpanel/import-sorter/pkg/config"
	"github.com/coltonb-mixpanel/import-sorter/pkg/runner"
	"github.com/coltonb-mixpanel/import-sorter/pkg/sorter"
	"github.com/coltonb-mixpanel/import-sorter/pkg/version"
)

const (
	UseDescription   = "igs [flags] PATH..."
	ShortDescription = "Imports group sorter - orders import records within a semantic group"
	LongDescription  = `igs decides the final in-group order of module-import records.

Upstream tooling buckets import statements into semantic groups (standard
library, third-party packages, project packages, ...) and hands each group
over as a JSON document of records. igs reorders each group by:

1. Natural alphabetical order (embedded numbers compare by value), or
2. Specifier length, ascending or descending, with a fixed alphabetical
   tie-break, and optionally
3. Namespace-style imports placed before all others.

igs never parses source text, never decides group boundaries, and never
rewrites source spans; it only reorders the records it is given, and the
downstream rewrite stage emits them back into source.

PATH can be a record file, a directory (searched recursively for record
files, each sorted as an independent group), or - to read one group from
stdin.`
)

var (
	configPath     string
	noSort         bool
	namespaceFirst bool
	lengthMode     string
	sourcesOnly    bool
	inPlace        bool
	verbose        bool
	showVersion    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:               UseDescription,
	Short:             ShortDescription,
	Long:              LongDescription,
	Args:              validateArgs,
	PersistentPreRunE: setupLogger,
	PersistentPostRun: teardownLogger,
	RunE:              run,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML sort configuration file")
	rootCmd.PersistentFlags().BoolVar(&noSort, "no-sort", false, "Disable sorting and pass records through in their original order")
	rootCmd.PersistentFlags().BoolVar(&namespaceFirst, "namespace-first", false, "Place namespace-style imports before all others")
	rootCmd.PersistentFlags().StringVar(&lengthMode, "length-mode", "", "Sort by specifier length instead of natural order (none, ascending, descending)")
	rootCmd.PersistentFlags().BoolVar(&sourcesOnly, "sources-only", false, "Print only the ordered module specifiers, one per line")
	rootCmd.PersistentFlags().BoolVar(&inPlace, "in-place", false, "Rewrite each record file in place instead of printing to stdout")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need record file arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	var err error
	logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func teardownLogger(cmd *cobra.Command, args []string) {
	if logger != nil {
		_ = logger.Sync()
	}
}

// buildOptions merges the config file with flag overrides. Flag values win.
func buildOptions() (sorter.Options, error) {
	opts := config.Default()

	if configPath != "" {
		var err error
		opts, err = config.Load(configPath)
		if err != nil {
			return sorter.Options{}, err
		}
	}

	if noSort {
		opts.Enabled = false
	}
	if namespaceFirst {
		opts.NamespaceFirst = true
	}
	if lengthMode != "" {
		mode, err := config.ParseLengthMode(lengthMode)
		if err != nil {
			return sorter.Options{}, err
		}
		opts.LengthMode = mode
	}

	return opts, nil
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Println(version.Get().String())
		return nil
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	r := runner.New(runner.RunnerConfig{
		Options:     opts,
		InPlace:     inPlace,
		SourcesOnly: sourcesOnly,
		Logger:      logger,
	})

	for _, path := range args {
		if err := r.ProcessPath(path); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the root command. The build-info version fills in the ldflags
// version when a release build did not set one.
func Execute(buildVersion string) error {
	if version.Version == "dev" && buildVersion != "" {
		version.Version = buildVersion
	}
	return rootCmd.Execute()
}
