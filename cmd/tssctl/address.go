package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/nakasendo/tss/pkg/bitcoin"
	"github.com/nakasendo/tss/pkg/curve"
)

var addressCmd = &cobra.Command{
	Use:   "address <private-key-hex>",
	Short: "Derive the P2PKH address for a private key",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddress,
}

func runAddress(cmd *cobra.Command, args []string) error {
	d, ok := new(big.Int).SetString(args[0], 16)
	if !ok {
		return fmt.Errorf("address: malformed private key hex")
	}
	Q := curve.ScalarBaseMul(d)
	fmt.Println(bitcoin.PublicKeyToAddress(Q, true))
	return nil
}
