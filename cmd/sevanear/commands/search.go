package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sevanear/internal/domain"
)

// search <hospital-id>: list the services of one hospital, optionally
// narrowed to a category with --type.
func searchCmd() *cobra.Command {
	var serviceType int
	cmd := &cobra.Command{
		Use:   "search <hospital-id>",
		Short: "List services available at a hospital",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Catalog first, so the list title can carry the hospital name.
			if err := appCtx.Browser.LoadCatalog(cmd.Context()); err != nil {
				return err
			}
			err := appCtx.Browser.Search(
				cmd.Context(),
				domain.HospitalID(args[0]),
				domain.ServiceTypeID(serviceType),
			)
			if err != nil {
				return err
			}
			printServiceList()
			return nil
		},
	}
	cmd.Flags().IntVar(&serviceType, "type", 0, "service type id (0 = all)")
	return cmd
}

// nearby: list services around the current position.
func nearbyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nearby",
		Short: "List services near your location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Browser.FindNearby(cmd.Context()); err != nil {
				return err
			}
			printServiceList()
			return nil
		},
	}
}

func printServiceList() {
	title, counter := appCtx.Store.ListTexts()
	fmt.Printf("%s - %s\n", title, counter)
	for _, s := range appCtx.Store.Services() {
		fmt.Printf("  %-4s %s", s.ID, s.Name)
		if s.ServiceTypeName != "" {
			fmt.Printf(" [%s]", s.ServiceTypeName)
		}
		fmt.Println()
	}
}
