package main

import (
	"fmt"
	"strings"

	"github.com/apex/log"
	num "github.com/cryptolabs/go-num512"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type calc struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	c := &calc{v: viper.New()}

	root := &cobra.Command{
		Use:           "num512",
		Short:         "512-bit modular arithmetic calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if c.v.GetBool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolP("verbose", "V", false, "verbose output")
	root.PersistentFlags().Bool("dump", false, "dump parsed operands to stderr")
	root.PersistentFlags().StringP("format", "f", "dec", "output format (dec, hex)")
	cobra.CheckErr(c.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose")))
	cobra.CheckErr(c.v.BindPFlag("dump", root.PersistentFlags().Lookup("dump")))
	cobra.CheckErr(c.v.BindPFlag("format", root.PersistentFlags().Lookup("format")))

	c.v.SetEnvPrefix("num512")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()

	root.AddCommand(
		c.divremCmd(),
		c.addmodCmd(),
		c.mulmodCmd(),
		c.powmodCmd(),
		c.primeCmd(),
		c.rsaCmd(),
		c.hexCmd(),
	)
	root.CompletionOptions.HiddenDefaultCmd = true
	return root
}

func (c *calc) operands(cmd *cobra.Command, args []string) ([]num.U512, error) {
	out := make([]num.U512, len(args))
	for i, s := range args {
		u, accurate, err := num.U512FromString(s)
		if err != nil {
			return nil, errors.Wrapf(err, "operand %d", i+1)
		} else if !accurate {
			return nil, errors.Errorf("operand %d: %q does not fit in 512 unsigned bits", i+1, s)
		}
		out[i] = u
	}
	if c.v.GetBool("dump") {
		spew.Fdump(cmd.ErrOrStderr(), out)
	}
	log.WithField("cmd", cmd.Name()).Debugf("parsed %d operands", len(out))
	return out, nil
}

func (c *calc) print(cmd *cobra.Command, label string, u num.U512) error {
	var s string
	switch f := c.v.GetString("format"); f {
	case "dec", "":
		s = u.String()
	case "hex":
		s = u.Hex()
	default:
		return errors.Errorf("unknown format %q", f)
	}
	if label != "" {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", label, s)
		return err
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}
