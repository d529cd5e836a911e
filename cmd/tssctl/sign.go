package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/protocols/threshold"
)

var (
	inputFile   string
	messageText string
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a message with a saved threshold group",
	Long:  "Load a group config produced by keygen and jointly sign a message.",
	RunE:  runSign,
}

func loadGroupConfig(path string) (*threshold.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sign: read config: %w", err)
	}
	var cfg groupConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("sign: parse config: %w", err)
	}

	shares := make([]*big.Int, len(cfg.Shares))
	for i, s := range cfg.Shares {
		v, ok := new(big.Int).SetString(s, 16)
		if !ok {
			return nil, fmt.Errorf("sign: malformed share %d", i)
		}
		shares[i] = v
	}

	pubBytes, err := hex.DecodeString(cfg.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("sign: malformed public key: %w", err)
	}
	publicKey, err := curve.ParsePublicKey(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}

	order := cfg.Threshold - 1
	return &threshold.Context{
		GroupSize:          cfg.GroupSize,
		PolynomialOrder:    order,
		KeyThreshold:       cfg.Threshold,
		SignatureThreshold: 2*order + 1,
		Shares:             shares,
		PublicKey:          publicKey,
	}, nil
}

func runSign(cmd *cobra.Command, args []string) error {
	ctx, err := loadGroupConfig(inputFile)
	if err != nil {
		return err
	}

	address, signature, err := ctx.SignMessage(messageText)
	if err != nil {
		return fmt.Errorf("sign: %w", err)
	}

	fmt.Printf("address:   %s\n", address)
	fmt.Printf("signature: %s\n", signature)
	return nil
}
