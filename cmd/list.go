package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-apfs-format/pkg/app/inspect"
)

var listCmd = &cobra.Command{
	Use:   "list <table>",
	Short: "Print the named values of the APFS record format",
	Long: `Print one of the format's value tables.

Tables:
  types         record types and their numeric values
  kinds         record kinds
  inode-flags   inode internal flags and the inherited, cloned, valid and pinned masks
  entry-types   directory entry types and their file mode bits
  limits        inode number and record size limits`,
	Example: `  go-apfs-format list types
  go-apfs-format list inode-flags -o yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: tableNames(),
	RunE:      runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	resp, err := inspect.List(inspect.Table(strings.ToLower(args[0])))
	if err != nil {
		return err
	}
	appCtx.Log(resp.Summary)
	if appCtx.Quiet {
		return nil
	}
	return inspect.FormatOutput(cmd.OutOrStdout(), resp, appCtx.OutputFormat)
}

func tableNames() []string {
	names := make([]string, 0, len(inspect.AllTables))
	for _, t := range inspect.AllTables {
		names = append(names, string(t))
	}
	return names
}
