// tssctl is a command-line tool for exercising the JVRSS threshold
// signature toolkit: generate a distributed group key, sign a message
// under it, verify a signature, and convert between private keys,
// WIF, and P2PKH addresses.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	groupSize     int
	thresholdFlag int
	outputFile    string
)

var rootCmd = &cobra.Command{
	Use:   "tssctl",
	Short: "Threshold ECDSA signing toolkit for secp256k1",
	Long: `tssctl drives a JVRSS (joint verifiable random secret sharing)
threshold signature scheme over secp256k1: a group of participants jointly
generates a shared key pair with nobody ever holding the full private key,
and any sufficiently large quorum can sign without reconstructing it.`,
}

func init() {
	keygenCmd.Flags().IntVarP(&groupSize, "group-size", "n", 3, "number of participants")
	keygenCmd.Flags().IntVarP(&thresholdFlag, "threshold", "t", 2, "key threshold: shares needed to restore the key (signing needs 2*threshold-1)")
	keygenCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file for shares (default: stdout)")

	signCmd.Flags().StringVarP(&inputFile, "input", "i", "", "threshold group config file (required)")
	signCmd.Flags().StringVarP(&messageText, "message", "m", "", "message to sign (required)")
	signCmd.MarkFlagRequired("input")
	signCmd.MarkFlagRequired("message")

	verifyCmd.Flags().StringVarP(&addressText, "address", "a", "", "signer's P2PKH address (required)")
	verifyCmd.Flags().StringVarP(&messageText, "message", "m", "", "signed message text (required)")
	verifyCmd.Flags().StringVarP(&signatureText, "signature", "s", "", "Base64 compact signature (required)")
	verifyCmd.MarkFlagRequired("address")
	verifyCmd.MarkFlagRequired("message")
	verifyCmd.MarkFlagRequired("signature")

	wifCmd.Flags().BoolVarP(&compressed, "compressed", "c", true, "use the compressed public key form")

	rootCmd.AddCommand(keygenCmd, signCmd, verifyCmd, addressCmd, wifCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
