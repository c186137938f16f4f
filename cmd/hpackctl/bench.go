package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"

	"github.com/yourusername/hpackenc/pkg/hpack"
)

// fixtureHeader is the on-disk shape of one header in the msgpack golden
// fixture file passed to hpackctl bench.
type fixtureHeader struct {
	Name      string `msgpack:"name"`
	Value     string `msgpack:"value"`
	Sensitive bool   `msgpack:"sensitive"`
}

func loadFixture(path string) ([]hpack.Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []fixtureHeader
	if err := msgpack.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshaling fixture %s: %w", path, err)
	}

	headers := make([]hpack.Header, len(records))
	for i, r := range records {
		if r.Sensitive {
			headers[i] = hpack.SensitiveField(r.Name, r.Value)
		} else {
			headers[i] = hpack.Field(r.Name, r.Value)
		}
	}
	return headers, nil
}

func newBenchCmd() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench <fixture.msgpack>",
		Short: "Repeatedly encode a golden header sequence and report throughput",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, err := loadFixture(args[0])
			if err != nil {
				return fmt.Errorf("loading fixture: %w", err)
			}

			enc := hpack.New(cfg.MaxTableSize, cfg.CapacityLimit)
			buf := bytebufferpool.Get()
			defer bytebufferpool.Put(buf)

			start := time.Now()
			totalBytes := 0
			for i := 0; i < iterations; i++ {
				buf.Reset()
				if err := enc.Encode(headers, buf); err != nil {
					return fmt.Errorf("encoding iteration %d: %w", i, err)
				}
				totalBytes += len(buf.B)
			}
			elapsed := time.Since(start)

			logger.Info("bench complete",
				zap.Int("iterations", iterations),
				zap.Int("headers_per_iteration", len(headers)),
				zap.Duration("elapsed", elapsed),
				zap.Int("total_bytes", totalBytes),
			)

			fmt.Printf("%d iterations of %d headers in %s (%.0f headers/sec)\n",
				iterations, len(headers), elapsed, float64(iterations*len(headers))/elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 1000, "number of encode passes over the fixture")
	return cmd
}
