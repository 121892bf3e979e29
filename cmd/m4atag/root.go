package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmercer/m4atag"
)

var rootCmd = &cobra.Command{
	Use:     "m4atag",
	Short:   "m4atag reads metadata tags from MP4/M4A files",
	Version: m4atag.Version,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
