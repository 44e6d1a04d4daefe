package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sevanear/internal/domain"
	"sevanear/internal/services/browser"
)

// show <service-id>: print one listing in full.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <service-id>",
		Short: "Show the details of one service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Browser.ViewDetail(cmd.Context(), domain.ServiceID(args[0])); err != nil {
				return err
			}
			svc, ok := appCtx.Store.Current()
			if !ok {
				return nil
			}
			printServiceDetail(svc)
			return nil
		},
	}
}

func printServiceDetail(svc domain.Service) {
	fmt.Println(svc.Name)
	section("Provider", svc.Provider)
	section("Description", svc.Description)
	section("Timings", svc.Timings)
	contact := svc.ProviderContact
	if contact == "" {
		contact = svc.Contact
	}
	section("Contact", contact)
	// Optional sections are omitted entirely when absent.
	if svc.Eligibility != "" {
		section("Eligibility", svc.Eligibility)
	}
	if svc.RequiredDocs != "" {
		section("Required Documents", svc.RequiredDocs)
	}
	fmt.Println("Call:       " + browser.CallLink(svc))
	fmt.Println("Directions: " + browser.DirectionsLink(svc))
}

func section(label, value string) {
	fmt.Printf("  %-12s %s\n", label+":", value)
}
