package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/greencart/internal/config"
)

// NewConfigGetCmd creates the config get command for reading one dotted key.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		Example: `  greencart config get server.addr
  greencart config get vendor`,
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := lookupKey(config.GetGlobalConfig(), args[0])
			if err != nil {
				return err
			}

			if _, isMap := value.(map[string]any); !isMap {
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			}
			out, err := yaml.Marshal(value)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", args[0], err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

// lookupKey resolves a dotted key such as "vendor.max_items" against the
// config's YAML form.
func lookupKey(cfg *config.Config, key string) (any, error) {
	tree, err := configTree(cfg)
	if err != nil {
		return nil, err
	}

	var cur any = tree
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unknown configuration key %q", key)
		}
		if cur, ok = m[part]; !ok {
			return nil, fmt.Errorf("unknown configuration key %q", key)
		}
	}
	return cur, nil
}

// configTree converts cfg to the generic map its YAML file would decode to,
// so keys and duration strings match the file format.
func configTree(cfg *config.Config) (map[string]any, error) {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding configuration: %w", err)
	}
	var tree map[string]any
	if err = yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	return tree, nil
}

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			if output == config.FormatJSON {
				tree, err := configTree(cfg)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), tree)
			}

			if path := cfg.Path(); path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "# defaults (no config file)")
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding configuration: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")
	return cmd
}
