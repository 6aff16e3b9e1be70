package main

import (
	"fmt"
	"strings"

	"github.com/pado-labs/threshold-zk-lhe/bfv"
	"github.com/pado-labs/threshold-zk-lhe/field"
	"github.com/pado-labs/threshold-zk-lhe/tpke"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

var thresholdDemoCommand = &cli.Command{
	Name:  "threshold-demo",
	Usage: "run an in-process (n,k) threshold PKE round trip: encrypt, re-encrypt k shares, combine, decrypt",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "n", Value: 3, Usage: "total number of nodes"},
		&cli.IntFlag{Name: "k", Value: 2, Usage: "reconstruction threshold"},
		&cli.StringFlag{Name: "message", Value: "3,1,4,1,5", Usage: "comma-separated F_t coefficients"},
	},
	Action: func(c *cli.Context) error {
		n, k := c.Int("n"), c.Int("k")
		indices := make([]field.Plain, n)
		for i := range indices {
			indices[i] = field.New[field.PlainModulus](uint64(i + 1))
		}

		ctx, err := tpke.NewContext(n, k, indices)
		if err != nil {
			return fmt.Errorf("threshold-demo: building context: %w", err)
		}
		log.Info().Int("n", n).Int("k", k).Msg("threshold policy established")

		nodeSKs := make([]*bfv.SecretKey[field.CipherModulus], n)
		nodePKs := make([]*bfv.PublicKey[field.CipherModulus], n)
		for i := range nodeSKs {
			nodeSKs[i], nodePKs[i] = tpke.GenKeyPair(ctx)
		}
		log.Info().Int("keys", n).Msg("per-node keypairs sampled")

		pt, err := parsePlaintext(c.String("message"), ctx.BFVContext().N(), ctx.BFVContext().Params().T())
		if err != nil {
			return err
		}

		shares, err := tpke.Encrypt(ctx, nodePKs, pt)
		if err != nil {
			return fmt.Errorf("threshold-demo: sharing and encrypting: %w", err)
		}
		log.Info().Int("shares", len(shares)).Msg("plaintext shared and encrypted per node")

		recipientSK, recipientPK := tpke.GenKeyPair(ctx)
		reEncrypted := make([]*tpke.Share, k)
		for i := 0; i < k; i++ {
			reEncrypted[i], err = tpke.ReEncrypt(ctx, shares[i], nodeSKs[i], recipientPK)
			if err != nil {
				return fmt.Errorf("threshold-demo: re-encrypting share %d: %w", i, err)
			}
		}
		log.Info().Int("reencrypted", k).Msg("shares re-encrypted to recipient key")

		combined, err := tpke.Combine(ctx, reEncrypted)
		if err != nil {
			return fmt.Errorf("threshold-demo: combining shares: %w", err)
		}
		log.Info().Msg("shares combined via Lagrange interpolation")

		recovered := tpke.Decrypt(ctx, recipientSK, combined.Ciphertext)

		show := 8
		if show > len(recovered.Poly) {
			show = len(recovered.Poly)
		}
		coeffs := make([]string, show)
		for i := 0; i < show; i++ {
			coeffs[i] = fmt.Sprintf("%d", recovered.Poly[i].Get())
		}
		log.Info().Str("coeffs", strings.Join(coeffs, ",")).Msg("recovered plaintext")
		return nil
	},
}
