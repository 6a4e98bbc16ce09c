package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var departmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "Список специальностей из пресета",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		for _, code := range a.departments.Codes() {
			spec := a.departments[code]
			fmt.Printf("%-10s link=%s row=%d\n", code, spec.Link, spec.Row)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(departmentsCmd)
}
