package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/propmap-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set propmap configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No config loaded")
			return nil
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "data_source: %s\n", cfg.DataSource)
		if cfg.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %s\n", cfg.Delimiter)
		}
		if cfg.Sheet != "" {
			fmt.Fprintf(out, "sheet: %s\n", cfg.Sheet)
		}
		if cfg.Center > 0 {
			fmt.Fprintf(out, "center: %d\n", cfg.Center)
		} else {
			fmt.Fprintln(out, "center: (roll median)")
		}
		fmt.Fprintf(out, "output_format: %s\n", cfg.OutputFormat)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "listen_addr: %s\n", cfg.ListenAddr)
		fmt.Fprintf(out, "cors_origins: %s\n", strings.Join(cfg.CORSOrigins, ","))
		fmt.Fprintf(out, "max_list_rows: %d\n", cfg.MaxListRows)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		next := *cfg
		switch key {
		case "data_source":
			next.DataSource = val
		case "delimiter":
			next.Delimiter = val
		case "sheet":
			next.Sheet = val
		case "center":
			i, err := parseInt64(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for center: %v", val)
			}
			next.Center = i
		case "output_format":
			next.OutputFormat = strings.ToLower(val)
		case "log_level":
			next.LogLevel = strings.ToLower(val)
		case "listen_addr":
			next.ListenAddr = val
		case "cors_origins":
			var origins []string
			for _, o := range strings.Split(val, ",") {
				if o = strings.TrimSpace(o); o != "" {
					origins = append(origins, o)
				}
			}
			next.CORSOrigins = origins
		case "max_list_rows":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for max_list_rows: %w", err)
			}
			next.MaxListRows = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := next.Validate(); err != nil {
			return err
		}
		if err := cfgpkg.Save(&next, cfgFile); err != nil {
			return err
		}
		cfg = &next
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
