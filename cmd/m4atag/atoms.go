package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var atomsCmd = &cobra.Command{
	Use:   "atoms <file>",
	Short: "Dump the atom tree of an MP4/M4A file",
	Long:  "Walks the full container structure and prints every atom with its size and offset. Useful for confirming what a file actually carries.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		stat, err := f.Stat()
		if err != nil {
			return err
		}

		dumpAtoms(f, 0, stat.Size(), 0)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(atomsCmd)
}

// dumpAtoms walks every atom in [offset, end), descending into all
// container atoms. Unlike the tag loader this dump is exhaustive; it
// exists to inspect files, not to minimize reads.
func dumpAtoms(r io.ReaderAt, offset, end int64, depth int) {
	indent := strings.Repeat("  ", depth)

	for offset < end {
		header := make([]byte, 8)
		if _, err := r.ReadAt(header, offset); err != nil {
			return
		}

		size := int64(binary.BigEndian.Uint32(header[0:4]))
		name := string(header[4:8])
		if size == 0 {
			return
		}

		fmt.Printf("%s%s (size: %d, offset: %d)\n", indent, printableName(name), size, offset)

		switch name {
		case "moov", "udta", "meta", "ilst", "trak", "mdia", "minf", "stbl":
			dataOffset := offset + 8
			if name == "meta" {
				dataOffset += 4
			}
			dumpAtoms(r, dataOffset, offset+size, depth+1)
		}

		offset += size
	}
}

// printableName renders FourCCs with the raw 0xA9 copyright byte as ©.
func printableName(name string) string {
	return strings.ReplaceAll(name, "\xA9", "©")
}
