package app

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/objid/objid/pkg/objid"
)

// envPrefix is prepended to the upper-cased flag names, e.g. OBJID_SIZE.
const envPrefix = "OBJID"

// ErrInvalidCount is returned if less than one id is requested.
var ErrInvalidCount = errors.New("count must be greater than 0")

func newGenerateCmd(o *options) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Print new random ids, one per line",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// precedence: flag, env, config file, config.Default
			v.SetDefault("size", strconv.Itoa(o.cfg.Generator.Size))
			v.SetDefault("alphabet", o.cfg.Generator.Alphabet)
			v.SetDefault("count", o.cfg.Generator.Count)

			return runGenerate(cmd.OutOrStdout(), v)
		},
	}

	cmd.Flags().StringP("size", "s", "", "length of each id")
	cmd.Flags().StringP("alphabet", "a", "", "characters to draw from (default A-Za-z0-9_-)")
	cmd.Flags().IntP("count", "n", 0, "number of ids to print")

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	return cmd
}

func runGenerate(w io.Writer, v *viper.Viper) error {
	size, err := objid.ParseSize(v.GetString("size"))
	if err != nil {
		return err //nolint:wrapcheck
	}

	count := v.GetInt("count")
	if count <= 0 {
		return errors.Wrapf(ErrInvalidCount, "got %d", count)
	}

	var gen objid.GenerateFunc = objid.New

	if alphabet := v.GetString("alphabet"); alphabet != "" {
		if gen, err = objid.CustomAlphabet(alphabet, size); err != nil {
			return err //nolint:wrapcheck
		}
	}

	log.Debug().
		Int("size", size).
		Int("count", count).
		Str("alphabet", v.GetString("alphabet")).
		Msg("generating ids")

	for range count {
		id, err := gen(size)
		if err != nil {
			return errors.Wrap(err, "can not read random bytes")
		}

		if _, err = fmt.Fprintln(w, id); err != nil {
			return errors.Wrap(err, "can not write id")
		}
	}

	return nil
}
