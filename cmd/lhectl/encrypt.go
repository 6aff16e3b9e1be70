package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pado-labs/threshold-zk-lhe/bfv"
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var encryptCommand = &cli.Command{
	Name:  "encrypt",
	Usage: "encrypt a comma-separated list of plaintext coefficients under a public key",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "pk-in", Value: "pk.bin", Usage: "public key input path"},
		&cli.StringFlag{Name: "message", Required: true, Usage: "comma-separated F_t coefficients, e.g. 3,1,4,1,5"},
		&cli.StringFlag{Name: "ct-out", Value: "ct.bin", Usage: "ciphertext output path"},
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

		pkBytes, err := os.ReadFile(c.String("pk-in"))
		if err != nil {
			return err
		}
		pk := bfv.PublicKeyFromBytes[field.CipherModulus](pkBytes)

		pt, err := parsePlaintext(c.String("message"), params.N(), params.T())
		if err != nil {
			return err
		}

		ct := bfv.Encrypt(ctx, pk, pt)
		if err := os.WriteFile(c.String("ct-out"), ct.ToBytes(), 0644); err != nil {
			return err
		}

		log.Info().Str("ct", c.String("ct-out")).Int("coeffs", len(pt.Poly)).Msg("ciphertext written")
		return nil
	},
}

// parsePlaintext builds a degree-n plaintext from a comma-separated
// list of coefficients, zero-padding the remainder.
func parsePlaintext(message string, n int, t uint64) (*bfv.Plaintext, error) {
	pt := bfv.NewPlaintext(n)
	parts := strings.Split(message, ",")
	if len(parts) > n {
		return nil, fmt.Errorf("message has %d coefficients, exceeds ring degree %d", len(parts), n)
	}
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coefficient %q: %w", part, err)
		}
		if v >= t {
			return nil, fmt.Errorf("coefficient %d exceeds plaintext modulus %d", v, t)
		}
		pt.Poly[i] = field.New[field.PlainModulus](v)
	}
	return pt, nil
}
