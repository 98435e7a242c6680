package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/greencart/internal/config"
)

const tabPadding = 2

// addOutputFlag registers the shared --output flag.
func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", "",
		"output format: table or json (default from config)")
}

// resolveOutputFormat returns the explicit format, or the configured default.
func resolveOutputFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	switch format {
	case config.FormatTable, config.FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use %s or %s)",
			format, config.FormatTable, config.FormatJSON)
	}
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
}

// styledOutput reports whether cmd writes straight to an interactive
// terminal, in which case ratings are rendered as coloured badges.
func styledOutput(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && isTerminal(f)
}
