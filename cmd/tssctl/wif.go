package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/nakasendo/tss/pkg/bitcoin"
)

var compressed bool

var wifCmd = &cobra.Command{
	Use:   "wif",
	Short: "Convert between private keys and WIF",
}

var wifEncodeCmd = &cobra.Command{
	Use:   "encode <private-key-hex>",
	Short: "Encode a private key as WIF",
	Args:  cobra.ExactArgs(1),
	RunE:  runWIFEncode,
}

var wifDecodeCmd = &cobra.Command{
	Use:   "decode <wif>",
	Short: "Decode a WIF string to a private key",
	Args:  cobra.ExactArgs(1),
	RunE:  runWIFDecode,
}

func init() {
	wifCmd.AddCommand(wifEncodeCmd, wifDecodeCmd)
}

func runWIFEncode(cmd *cobra.Command, args []string) error {
	d, ok := new(big.Int).SetString(args[0], 16)
	if !ok {
		return fmt.Errorf("wif: malformed private key hex")
	}
	fmt.Println(bitcoin.PrivateKeyToWIF(d, compressed))
	return nil
}

func runWIFDecode(cmd *cobra.Command, args []string) error {
	d, err := bitcoin.WIFToPrivateKey(args[0])
	if err != nil {
		return fmt.Errorf("wif: %w", err)
	}
	fmt.Printf("%x\n", d)
	return nil
}
