// Command lhectl is a manual-exercise driver for the bfv/tpke/hybrid
// packages: keygen, encrypt, decrypt, and an in-process threshold-demo
// walking a full Shamir-share / re-encrypt / combine round trip.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	app := &cli.App{
		Name:  "lhectl",
		Usage: "exercise single-modulus BFV and threshold PKE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "loglevel",
				Value: "info",
				Usage: "panic, fatal, error, warn, info, debug, trace",
			},
		},
		Before: func(c *cli.Context) error {
			lvl, err := zerolog.ParseLevel(c.String("loglevel"))
			if err != nil {
				return err
			}
			zerolog.SetGlobalLevel(lvl)
			return nil
		},
		Commands: []*cli.Command{
			keygenCommand,
			encryptCommand,
			decryptCommand,
			thresholdDemoCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("lhectl failed")
	}
}
