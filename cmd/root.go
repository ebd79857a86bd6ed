package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/propmap-cli/internal/config"
	"github.com/KaramelBytes/propmap-cli/internal/logging"
)

var (
	// Global flags
	cfgFile    string
	debug      bool
	flagFormat string
	flagOutput string
	flagDelim  string
	flagSheet  string

	// Loaded configuration
	cfg    *cfgpkg.Global
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "propmap",
	Short: "propmap: query and band property assessment rolls",
	Long: `propmap loads a property assessment roll (CSV, TSV or XLSX), answers lookups and
filters over it, computes value statistics and classifies assessed values into colour bands
around a center value. The same queries are available over HTTP with "propmap serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)

	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.propmap/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "", "output format: markdown | json | yaml (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "write output to this file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&flagDelim, "delimiter", "", "field delimiter for text sources: ',' | ';' | '|' | 'tab' (default by extension)")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "XLSX: sheet name to read (default first sheet)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so read-only commands still work
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{OutputFormat: "markdown", LogLevel: "info", ListenAddr: "127.0.0.1:8080", MaxListRows: 100}
	}
	cfg = c

	level := cfg.LogLevel
	if debug {
		level = logrus.DebugLevel.String()
	}
	logger = logging.New("propmap", level, os.Stderr)
}
