package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-apfs-format/pkg/app"
	"github.com/deploymenttheory/go-apfs-format/pkg/app/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <what> <value> [value...]",
	Short: "Decode and validate a raw APFS record value",
	Long: `Decode a raw value taken from an APFS file-system record and check it
against the on-disk format.

Values may be given in decimal, hex (0x), octal (0o or leading 0) or binary (0b).

What:
  type          j_obj_types value (top nibble of obj_id_and_type)
  kind          j_obj_kinds value
  inode-flags   j_inode_val_t internal_flags
  xattr-flags   j_xattr_val_t flags
  drec-flags    j_drec_val_t flags
  mode          j_inode_val_t mode
  ino           inode number
  jkey          full obj_id_and_type header
  size          record key size, value size and optional inline xattr data size

A value that violates the format exits with a non-zero status.`,
	Example: `  go-apfs-format inspect type 3
  go-apfs-format inspect inode-flags 0x3000 --enforce-pin-exclusivity
  go-apfs-format inspect mode 0o100644 -o json
  go-apfs-format inspect size 16 3809
  go-apfs-format inspect size 16 3808 3804`,
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: whatNames(),
	RunE:      runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	req := &inspect.Request{
		What:   inspect.What(strings.ToLower(args[0])),
		Values: args[1:],
	}

	resp, err := inspect.Handle(appCtx, req)
	if err != nil {
		return err
	}

	if !appCtx.Quiet || !resp.Valid {
		if err := inspect.FormatOutput(cmd.OutOrStdout(), resp, appCtx.OutputFormat); err != nil {
			return err
		}
	}

	if !resp.Valid {
		return app.NewError(app.ErrCodeFormatViolation, resp.Violation, nil)
	}
	return nil
}

func whatNames() []string {
	names := make([]string, 0, len(inspect.AllWhats))
	for _, w := range inspect.AllWhats {
		names = append(names, string(w))
	}
	return names
}
