package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rosterpix/pkg/rosterpix"
)

var (
	rosterPath    string
	targetPath    string
	templateSheet string
)

var createPersonSheetsCmd = &cobra.Command{
	Use:   "create-person-sheets --roster <roster.xlsx> --target <workbook.xlsx>",
	Short: "Provision one worksheet per roster entry from a template sheet",
	Long: `Read the roster workbook (sheet "Sheet1", data from row 3, columns C–E:
name, service number, ID card number) and for each person clone the
template sheet of the target workbook under the person's name, or reuse
an existing same-named sheet. The person's name, digit-only service
number and ID card number are written to B3, D3 and B4; every other
cell keeps its value and formatting. The target workbook is saved in
place.`,
	Args: cobra.NoArgs,
	RunE: runCreatePersonSheets,
}

func init() {
	createPersonSheetsCmd.Flags().StringVar(&rosterPath, "roster", "", "Roster workbook path")
	createPersonSheetsCmd.Flags().StringVar(&targetPath, "target", "", "Target workbook path")
	createPersonSheetsCmd.Flags().StringVar(&templateSheet, "template", "Template", "Template sheet name in the target workbook")
	cobra.CheckErr(createPersonSheetsCmd.MarkFlagRequired("roster"))
	cobra.CheckErr(createPersonSheetsCmd.MarkFlagRequired("target"))
	rootCmd.AddCommand(createPersonSheetsCmd)
}

func runCreatePersonSheets(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if err := requireFile(rosterPath); err != nil {
		return err
	}
	if err := requireFile(targetPath); err != nil {
		return err
	}

	n, err := rosterpix.ProvisionSheets(rosterPath, targetPath, templateSheet)
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d people.\n", n)
	return nil
}
