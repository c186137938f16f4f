package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"
	"go.uber.org/zap"

	"github.com/yourusername/hpackenc/pkg/hpack"
)

func newEncodeCmd() *cobra.Command {
	var inputPath string
	var capacityLimit int

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a header list (read as name: value lines) into an HPACK block",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := os.Stdin
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			headers, err := parseHeaderList(in)
			if err != nil {
				return fmt.Errorf("parsing header list: %w", err)
			}

			limit := capacityLimit
			if limit == 0 {
				limit = cfg.CapacityLimit
			}
			enc := hpack.New(cfg.MaxTableSize, limit)

			buf := bytebufferpool.Get()
			defer bytebufferpool.Put(buf)

			if err := enc.Encode(headers, buf); err != nil {
				return fmt.Errorf("encoding: %w", err)
			}

			logger.Info("encoded header block",
				zap.Int("headers", len(headers)),
				zap.Int("bytes", len(buf.B)),
			)

			fmt.Println(hex.EncodeToString(buf.B))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a header-list file (default stdin)")
	cmd.Flags().IntVar(&capacityLimit, "capacity-limit", 0, "peer SETTINGS_HEADER_TABLE_SIZE (0 = from config)")

	return cmd
}
