package cmd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/propmap-cli/internal/dataset"
	"github.com/KaramelBytes/propmap-cli/internal/loader"
	"github.com/KaramelBytes/propmap-cli/internal/report"
	"github.com/KaramelBytes/propmap-cli/internal/utils"
)

// outputFormat resolves --format, then config.
func outputFormat() (report.Format, error) {
	if flagFormat != "" {
		return report.ParseFormat(flagFormat)
	}
	return report.ParseFormat(cfg.OutputFormat)
}

// emit renders doc to --output or the command's stdout.
func emit(cmd *cobra.Command, doc report.Document) error {
	f, err := outputFormat()
	if err != nil {
		return err
	}
	if flagOutput == "" {
		return report.Render(cmd.OutOrStdout(), doc, f)
	}
	var buf bytes.Buffer
	if err := report.Render(&buf, doc, f); err != nil {
		return err
	}
	if err := utils.SafeWriteFile(flagOutput, buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s to %s\n", f, flagOutput)
	return nil
}

// loaderOptions merges config with the --delimiter and --sheet flags.
func loaderOptions() (loader.Options, error) {
	opt := cfg.LoaderOptions()
	if flagSheet != "" {
		opt.Sheet = flagSheet
	}
	switch strings.ToLower(flagDelim) {
	case "":
	case ",":
		opt.Delimiter = ','
	case "\t", `\t`, "tab":
		opt.Delimiter = '\t'
	case ";":
		opt.Delimiter = ';'
	case "|":
		opt.Delimiter = '|'
	default:
		return opt, fmt.Errorf("unsupported --delimiter: %s", flagDelim)
	}
	return opt, nil
}

// sourceArgs splits args into an optional leading source and the n
// arguments that follow it. Without a source, data_source from config is used.
func sourceArgs(args []string, n int) (string, []string, error) {
	if len(args) > n {
		return args[0], args[1:], nil
	}
	if cfg.DataSource == "" {
		return "", nil, fmt.Errorf("no source given and data_source is not configured")
	}
	return cfg.DataSource, args, nil
}

func openSource(source string) (*dataset.Dataset, error) {
	opt, err := loaderOptions()
	if err != nil {
		return nil, err
	}
	ds, err := loader.Load(source, opt)
	if err != nil {
		return nil, err
	}
	logger.Debugf("loaded %d records from %s", ds.Count(), ds.Source())
	return ds, nil
}

// resolveCenter picks the banding center: flag, config, then the median of ds.
func resolveCenter(cmd *cobra.Command, flagCenter int64, ds *dataset.Dataset) (int64, error) {
	if cmd.Flags().Changed("center") {
		if flagCenter <= 0 {
			return 0, fmt.Errorf("invalid --center: %d (must be positive)", flagCenter)
		}
		return flagCenter, nil
	}
	if cfg.Center > 0 {
		return cfg.Center, nil
	}
	if ds == nil {
		return 0, fmt.Errorf("no center: pass --center or set center in config")
	}
	m, err := ds.Median()
	if err != nil {
		return 0, fmt.Errorf("derive center: %w", err)
	}
	logger.Debugf("using dataset median %d as center", m)
	return m, nil
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 10, 64)
}
