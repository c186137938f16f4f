package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/valyala/bytebufferpool"

	"github.com/yourusername/hpackenc/pkg/hpack"
)

// classifyWirePrefix reports which of the five HPACK representations a
// block's first byte encodes, independent of the encoder's internal
// decision state — it only needs the bits RFC 7541 defines.
func classifyWirePrefix(b byte) string {
	switch {
	case b&0x80 != 0:
		return "indexed"
	case b&0xc0 == 0x40:
		return "incremental"
	case b&0xe0 == 0x20:
		return "size-update"
	case b&0xf0 == 0x10:
		return "never-indexed"
	default:
		return "without-indexing"
	}
}

func newInspectCmd() *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Encode a header list one field at a time and show each wire representation",
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

			enc := hpack.New(cfg.MaxTableSize, cfg.CapacityLimit)
			rt := newRenderTable([]string{"name", "value", "representation", "bytes"})

			for _, h := range headers {
				buf := bytebufferpool.Get()
				if err := enc.Encode([]hpack.Header{h}, buf); err != nil {
					bytebufferpool.Put(buf)
					return fmt.Errorf("encoding %q: %w", h.Name, err)
				}
				rt.addRow([]string{
					string(h.Name),
					h.Value.S,
					classifyWirePrefix(buf.B[0]),
					fmt.Sprintf("%d", len(buf.B)),
				})
				bytebufferpool.Put(buf)
			}

			fmt.Print(rt.render())
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to a header-list file (default stdin)")
	return cmd
}
