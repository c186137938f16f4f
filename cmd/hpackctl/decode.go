package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/hpackenc/pkg/hpack"
)

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <hex-block>",
		Short: "Decode a hex-encoded HPACK block back into a header list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decoding hex input: %w", err)
			}

			dec := hpack.NewDecoder(cfg.MaxTableSize)
			headers, err := dec.Decode(block)
			if err != nil {
				return fmt.Errorf("decoding HPACK block: %w", err)
			}

			logger.Info("decoded header block",
				zap.Int("bytes", len(block)),
				zap.Int("headers", len(headers)),
			)

			formatHeaderList(os.Stdout, headers)
			return nil
		},
	}
	return cmd
}
