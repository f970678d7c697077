package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-apfs-format/internal/config"
	"github.com/deploymenttheory/go-apfs-format/pkg/app"
)

var (
	// Global output flags
	verbose      bool
	quiet        bool
	outputFormat string

	// Reader policy flags
	configFile            string
	lenient               bool
	enforcePinExclusivity bool

	appCtx *app.Context
)

var rootCmd = &cobra.Command{
	Use:   "go-apfs-format",
	Short: "Decode and validate APFS file-system record constants",
	Long: `go-apfs-format decodes the raw values found in APFS file-system records:
record types and kinds, inode, extended attribute and directory record flags,
reserved inode numbers, record size limits and file modes.

It is a read-only tool for checking values pulled from raw disks, partitions
or images against the on-disk format.

Commands:
  inspect     Decode and validate a single raw value
  list        Print the format's named values`,
	Version:           "0.1.0-dev",
	SilenceUsage:      true,
	PersistentPreRunE: loadContext,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: apfs-format.yaml in ., ./config, $HOME/.apfs, /etc/apfs)")
	rootCmd.PersistentFlags().BoolVar(&lenient, "lenient", false, "strip unknown inode flag bits with a warning instead of rejecting them")
	rootCmd.PersistentFlags().BoolVar(&enforcePinExclusivity, "enforce-pin-exclusivity", false, "reject inodes pinned to both main and tier2")
}

// loadContext merges config file, environment and flags into the application context
func loadContext(cmd *cobra.Command, args []string) error {
	v := config.New(configFile)

	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag(config.KeyOutputFormat, flags.Lookup("output")); err != nil {
		return err
	}
	if err := v.BindPFlag(config.KeyEnforcePinExclusivity, flags.Lookup("enforce-pin-exclusivity")); err != nil {
		return err
	}
	if flags.Changed("lenient") {
		v.Set(config.KeyStrictFlags, !lenient)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return app.NewError(app.ErrCodeConfig, "failed to load configuration", err)
	}

	appCtx = app.NewContext(cfg)
	appCtx.SetVerbosity(verbose, quiet)
	appCtx.Log(fmt.Sprintf("Configuration: strict_flags=%t enforce_pin_exclusivity=%t output=%s",
		cfg.StrictFlags, cfg.EnforcePinExclusivity, cfg.OutputFormat))
	return nil
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}

// GetQuiet returns the quiet flag value
func GetQuiet() bool {
	return quiet
}

// GetOutputFormat returns the output format after config and environment are applied
func GetOutputFormat() string {
	if appCtx != nil {
		return appCtx.OutputFormat
	}
	return outputFormat
}
