package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nakasendo/tss/pkg/wallet"
)

var (
	addressText   string
	signatureText string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a signed-message signature",
	Long:  "Verify a compact signature against a claimed P2PKH address and message.",
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	ok := wallet.VerifyMessage(addressText, messageText, signatureText)
	if !ok {
		fmt.Println("invalid")
		return fmt.Errorf("verify: signature does not match address")
	}
	fmt.Println("valid")
	return nil
}
