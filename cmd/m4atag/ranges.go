package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmercer/m4atag"
)

var rangesCmd = &cobra.Command{
	Use:   "ranges <file-or-url>",
	Short: "Trace the byte ranges the lazy loader requests",
	Long:  "Runs the tag extraction while printing every range request the load pass issues. Shows how little of a file tag reading actually touches.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]

		var (
			src m4atag.Source
			err error
		)
		if isURL(target) {
			src, err = m4atag.OpenURLSource(cmd.Context(), target, nil)
		} else {
			var fs *m4atag.FileSource
			fs, err = m4atag.OpenFileSource(target)
			if err == nil {
				defer fs.Close()
			}
			src = fs
		}
		if err != nil {
			return err
		}

		traced := &tracingSource{Source: src}
		if _, err := m4atag.ReadFrom(cmd.Context(), traced); err != nil {
			return err
		}

		fmt.Printf("\n%d requests, %d bytes requested, %d bytes total (%.2f%%)\n",
			traced.count, traced.bytes, src.Size(),
			100*float64(traced.bytes)/float64(src.Size()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rangesCmd)
}

// tracingSource logs every range request before passing it through.
type tracingSource struct {
	m4atag.Source
	count int
	bytes int64
}

func (t *tracingSource) LoadRange(ctx context.Context, r m4atag.Range) error {
	fmt.Printf("load [%9d, %9d]  %d bytes\n", r.Start, r.End, r.Length())
	t.count++
	t.bytes += r.Length()
	return t.Source.LoadRange(ctx, r)
}
