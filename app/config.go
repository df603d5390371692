package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/objid/objid/internal/config"
)

func newConfigCmd(o *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dump := config.DumpConfig
			if asJSON {
				dump = config.DumpConfigJSON
			}

			out, err := dump(&o.cfg)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)

			return err //nolint:wrapcheck
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON instead of TOML")

	return cmd
}
