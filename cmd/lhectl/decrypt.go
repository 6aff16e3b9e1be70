package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pado-labs/threshold-zk-lhe/bfv"
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var decryptCommand = &cli.Command{
	Name:  "decrypt",
	Usage: "decrypt a ciphertext under a secret key and print the recovered coefficients",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "sk-in", Value: "sk.bin", Usage: "secret key input path"},
		&cli.StringFlag{Name: "ct-in", Value: "ct.bin", Usage: "ciphertext input path"},
		&cli.IntFlag{Name: "show", Value: 8, Usage: "number of leading coefficients to print"},
	},
	Action: func(c *cli.Context) error {
		params, err := bfv.NewParametersFromLiteral(bfv.DefaultParametersLiteral)
		if err != nil {
			return err
		}
		ctx, err := bfv.NewContext[field.CipherModulus](params)
		if err != nil {
			return err
		}

		skBytes, err := os.ReadFile(c.String("sk-in"))
		if err != nil {
			return err
		}
		sk := bfv.SecretKeyFromBytes[field.CipherModulus](skBytes)

		ctBytes, err := os.ReadFile(c.String("ct-in"))
		if err != nil {
			return err
		}
		ct := bfv.CiphertextFromBytes[field.CipherModulus](ctBytes)

		pt := bfv.Decrypt(ctx, sk, ct)

		show := c.Int("show")
		if show > len(pt.Poly) {
			show = len(pt.Poly)
		}
		coeffs := make([]string, show)
		for i := 0; i < show; i++ {
			coeffs[i] = fmt.Sprintf("%d", pt.Poly[i].Get())
		}
		log.Info().Str("coeffs", strings.Join(coeffs, ",")).Msg("recovered plaintext")
		return nil
	},
}
