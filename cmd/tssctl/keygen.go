package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nakasendo/tss/pkg/bitcoin"
	"github.com/nakasendo/tss/pkg/curve"
	"github.com/nakasendo/tss/protocols/threshold"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Jointly generate a threshold key pair",
	Long:  "Run JVRSS to generate a distributed private key and its shared public key.",
	RunE:  runKeygen,
}

// groupConfig is the JSON form a keygen run is saved as and sign reads
// back in. Production deployments would keep each participant's share on
// its own machine; this simulation keeps them together for convenience.
type groupConfig struct {
	GroupSize int      `json:"group_size"`
	Threshold int      `json:"threshold"`
	Shares    []string `json:"shares"`
	PublicKey string   `json:"public_key"`
	Address   string   `json:"address"`
}

func runKeygen(cmd *cobra.Command, args []string) error {
	ctx, err := threshold.NewContext(groupSize, thresholdFlag)
	if err != nil {
		return fmt.Errorf("keygen: %w", err)
	}

	shares := make([]string, len(ctx.Shares))
	for i, s := range ctx.Shares {
		shares[i] = s.Text(16)
	}

	cfg := groupConfig{
		GroupSize: ctx.GroupSize,
		Threshold: ctx.KeyThreshold,
		Shares:    shares,
		PublicKey: fmt.Sprintf("%x", curve.SerializePublicKey(ctx.PublicKey, true)),
		Address:   bitcoin.PublicKeyToAddress(ctx.PublicKey, true),
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("keygen: marshal config: %w", err)
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outputFile, data, 0600); err != nil {
		return fmt.Errorf("keygen: write config: %w", err)
	}
	fmt.Printf("group key generated, %d/%d shares written to %s\n", cfg.Threshold, cfg.GroupSize, outputFile)
	fmt.Printf("address: %s\n", cfg.Address)
	return nil
}
