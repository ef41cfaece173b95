// Package main provides the CLI entry point for rosterpix.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rosterpix",
	Short: "Maintain personnel workbooks: sheets from a roster, photos into merged regions",
	Long: `rosterpix automates clerical workbook maintenance. It can provision one
worksheet per person from a roster workbook, tile each person's photos
across a fixed merged cell region of their sheet, and prune leftover
worksheets.`,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
