package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmercer/m4atag"
)

var saveArtwork bool

var tagsCmd = &cobra.Command{
	Use:   "tags <file-or-url>",
	Short: "Print the metadata tags of an M4A file",
	Long:  "Reads the tag atoms of a local file or a remote URL and prints the decoded fields. Remote files are fetched with HTTP range requests.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]

		var (
			file *m4atag.File
			err  error
		)
		if isURL(target) {
			file, err = m4atag.ReadURL(cmd.Context(), target)
		} else {
			file, err = m4atag.ReadFileContext(cmd.Context(), target)
		}
		if err != nil {
			return err
		}

		printTags(file)

		if saveArtwork && file.Artwork != nil {
			name := "cover." + file.Artwork.Extension()
			if err := os.WriteFile(name, file.Artwork.Data, 0o644); err != nil {
				return fmt.Errorf("save artwork: %w", err)
			}
			fmt.Printf("artwork saved to %s\n", name)
		}
		return nil
	},
}

func init() {
	tagsCmd.Flags().BoolVar(&saveArtwork, "save-artwork", false, "write embedded artwork to cover.<ext>")
	rootCmd.AddCommand(tagsCmd)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func printTags(file *m4atag.File) {
	t := file.Tags

	printIf := func(label, value string) {
		if value != "" {
			fmt.Printf("%-12s %s\n", label+":", value)
		}
	}
	printIf("Title", t.Title)
	printIf("Artist", t.Artist)
	printIf("Album", t.Album)
	printIf("Genre", t.Genre)
	printIf("Composer", t.Composer)
	printIf("Comment", t.Comment)
	printIf("Grouping", t.Grouping)
	printIf("Keyword", t.Keyword)
	printIf("Encoder", t.Encoder)
	printIf("Copyright", t.Copyright)

	if t.Year != 0 {
		fmt.Printf("%-12s %d\n", "Year:", t.Year)
	}
	if t.TrackNumber != 0 || t.TrackTotal != 0 {
		fmt.Printf("%-12s %d/%d\n", "Track:", t.TrackNumber, t.TrackTotal)
	}
	if t.Disc != 0 {
		fmt.Printf("%-12s %d\n", "Disc:", t.Disc)
	}
	if t.Tempo != 0 {
		fmt.Printf("%-12s %d\n", "Tempo:", t.Tempo)
	}
	if t.Compilation {
		fmt.Printf("%-12s yes\n", "Compilation:")
	}
	if file.Artwork != nil {
		fmt.Printf("%-12s %s\n", "Artwork:", file.Artwork)
	}

	for _, w := range file.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}
