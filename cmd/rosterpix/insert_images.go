package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rosterpix/pkg/rosterpix"
)

var insertImagesCmd = &cobra.Command{
	Use:   "insert-images <workbook> <images-dir>",
	Short: "Tile per-person photos into each person's worksheet",
	Long: `Scan a directory of photos named after people ("张三1.jpg", "张三2.jpg")
and tile the first two photos of each person across the merged photo
region of the same-named worksheet. People with a single photo, or
without a matching worksheet, are skipped. The workbook is saved in
place.`,
	Args: cobra.ExactArgs(2),
	RunE: runInsertImages,
}

func init() {
	rootCmd.AddCommand(insertImagesCmd)
}

func runInsertImages(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	workbookPath, imagesDir := args[0], args[1]

	if err := requireFile(workbookPath); err != nil {
		return err
	}
	if err := requireDir(imagesDir); err != nil {
		return err
	}

	updated, skipped, err := rosterpix.InsertImages(workbookPath, imagesDir, rosterpix.DefaultRegionConfig())
	if err != nil {
		return err
	}
	for _, name := range skipped {
		fmt.Fprintf(os.Stderr, "warning: sheet %q has no drawable photo region, skipped\n", name)
	}

	fmt.Printf("Inserted photos into %d sheet(s).\n", updated)
	return nil
}
