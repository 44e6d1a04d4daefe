package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// hospitals: list the hospital catalog.
func hospitalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hospitals",
		Short: "List hospitals",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Browser.LoadCatalog(cmd.Context()); err != nil {
				return err
			}
			for _, h := range appCtx.Store.Hospitals() {
				fmt.Printf("%-4s %s", h.ID, h.Name)
				if h.District != "" {
					fmt.Printf(" (%s)", h.District)
				}
				fmt.Println()
			}
			return nil
		},
	}
}

// service-types: list the category catalog.
func serviceTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "service-types",
		Short: "List service categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Browser.LoadCatalog(cmd.Context()); err != nil {
				return err
			}
			for _, t := range appCtx.Store.ServiceTypes() {
				fmt.Printf("%-4d %s %s\n", t.ID, t.Icon, t.Name)
			}
			return nil
		},
	}
}
