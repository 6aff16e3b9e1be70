package main

import (
	"os"

	"github.com/pado-labs/threshold-zk-lhe/bfv"
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var keygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "sample a fresh BFV keypair and write sk/pk to disk",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "sk-out", Value: "sk.bin", Usage: "secret key output path"},
		&cli.StringFlag{Name: "pk-out", Value: "pk.bin", Usage: "public key output path"},
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

		sk := bfv.NewSecretKey[field.CipherModulus](ctx)
		pk := sk.GenPublicKey(ctx)

		if err := os.WriteFile(c.String("sk-out"), sk.ToBytes(), 0600); err != nil {
			return err
		}
		if err := os.WriteFile(c.String("pk-out"), pk.ToBytes(), 0644); err != nil {
			return err
		}

		log.Info().
			Str("sk", c.String("sk-out")).
			Str("pk", c.String("pk-out")).
			Int("n", params.N()).
			Msg("keypair written")
		return nil
	},
}
