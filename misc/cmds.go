package main

import (
	"fmt"
	"time"

	"github.com/apex/log"
	num "github.com/cryptolabs/go-num512"
	"github.com/spf13/cobra"
)

func (c *calc) divremCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "divrem <a> <b>",
		Short: "Quotient and remainder of a / b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := c.operands(cmd, args)
			if err != nil {
				return err
			}
			q, r, err := ops[0].QuoRem(ops[1])
			if err != nil {
				return err
			}
			if err := c.print(cmd, "q", q); err != nil {
				return err
			}
			return c.print(cmd, "r", r)
		},
	}
}

type modOp func(a, b, m num.U512) (num.U512, error)

func (c *calc) modCmd(use, short string, op modOp) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := c.operands(cmd, args)
			if err != nil {
				return err
			}
			start := time.Now()
			r, err := op(ops[0], ops[1], ops[2])
			if err != nil {
				return err
			}
			log.WithField("took", time.Since(start)).Debug(cmd.Name())
			return c.print(cmd, "", r)
		},
	}
}

func (c *calc) addmodCmd() *cobra.Command {
	return c.modCmd("addmod <a> <b> <m>", "(a + b) mod m", func(a, b, m num.U512) (num.U512, error) {
		return a.AddMod(b, m)
	})
}

func (c *calc) mulmodCmd() *cobra.Command {
	return c.modCmd("mulmod <a> <b> <m>", "(a * b) mod m, m below 2^511", func(a, b, m num.U512) (num.U512, error) {
		return a.MulMod(b, m)
	})
}

func (c *calc) powmodCmd() *cobra.Command {
	return c.modCmd("powmod <a> <e> <m>", "a^e mod m, m below 2^511", func(a, e, m num.U512) (num.U512, error) {
		return a.PowMod(e, m)
	})
}

func (c *calc) primeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prime <n>",
		Short: "Miller-Rabin probable prime test",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := c.operands(cmd, args)
			if err != nil {
				return err
			}
			rounds := c.v.GetInt("rounds")
			seed := c.v.GetUint32("seed")
			if seed == 0 {
				seed = uint32(time.Now().UnixNano())
			}
			log.WithFields(log.Fields{"rounds": rounds, "seed": seed}).Debug("miller-rabin")

			ok, err := num.ProbablyPrime(ops[0], rounds, num.NewXorShift32(seed))
			if err != nil {
				return err
			}
			verdict := "composite"
			if ok {
				verdict = "probably prime"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), verdict)
			return err
		},
	}
	cmd.Flags().IntP("rounds", "r", 20, "number of random bases to try")
	cmd.Flags().Uint32P("seed", "s", 0, "base generator seed (0 == current nanotime)")
	cobra.CheckErr(c.v.BindPFlag("rounds", cmd.Flags().Lookup("rounds")))
	cobra.CheckErr(c.v.BindPFlag("seed", cmd.Flags().Lookup("seed")))
	return cmd
}

func (c *calc) rsaCmd() *cobra.Command {
	rsaCmd := &cobra.Command{
		Use:   "rsa",
		Short: "Textbook RSA with a key given as integers",
	}
	rsaCmd.AddCommand(
		&cobra.Command{
			Use:   "encrypt <n> <e> <msg>",
			Short: "msg^e mod n",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				ops, err := c.operands(cmd, args)
				if err != nil {
					return err
				}
				out, err := num.RSAEncrypt(&num.RSAPublicKey{N: ops[0], E: ops[1]}, ops[2])
				if err != nil {
					return err
				}
				return c.print(cmd, "", out)
			},
		},
		&cobra.Command{
			Use:   "decrypt <n> <d> <c>",
			Short: "c^d mod n",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				ops, err := c.operands(cmd, args)
				if err != nil {
					return err
				}
				key := &num.RSAPrivateKey{RSAPublicKey: num.RSAPublicKey{N: ops[0]}, D: ops[1]}
				out, err := num.RSADecrypt(key, ops[2])
				if err != nil {
					return err
				}
				return c.print(cmd, "", out)
			},
		},
	)
	return rsaCmd
}

func (c *calc) hexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hex <a>",
		Short: "Print a as 128 hex digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := c.operands(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ops[0].Hex())
			return err
		},
	}
}
