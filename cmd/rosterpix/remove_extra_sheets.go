package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rosterpix/pkg/rosterpix"
)

var removeExtraSheetsCmd = &cobra.Command{
	Use:   "remove-extra-sheets <workbook>",
	Short: "Delete every worksheet except the first",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveExtraSheets,
}

func init() {
	rootCmd.AddCommand(removeExtraSheetsCmd)
}

func runRemoveExtraSheets(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	workbookPath := args[0]

	if err := requireFile(workbookPath); err != nil {
		return err
	}

	if err := rosterpix.PruneSheets(workbookPath); err != nil {
		return err
	}

	fmt.Printf("Removed extra worksheets in %s.\n", workbookPath)
	return nil
}
