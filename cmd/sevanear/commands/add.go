package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sevanear/internal/services/submission"
)

// add: submit a new service listing. Numeric inputs are coerced, not
// validated; whatever was typed is what the backend receives.
func addCmd() *cobra.Command {
	var form submission.Form
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a new service listing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ack, err := appCtx.Submissions.Submit(cmd.Context(), form)
			if err != nil {
				return fmt.Errorf("failed to add service: %w", err)
			}
			fmt.Printf("%s (id %s)\n", ack.Message, ack.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&form.HospitalID, "hospital", "", "hospital id")
	cmd.Flags().StringVar(&form.ServiceTypeID, "type", "", "service type id")
	cmd.Flags().StringVar(&form.Name, "name", "", "service name")
	cmd.Flags().StringVar(&form.Provider, "provider", "", "provider name")
	cmd.Flags().StringVar(&form.Contact, "contact", "", "contact number")
	cmd.Flags().StringVar(&form.Description, "description", "", "description")
	cmd.Flags().StringVar(&form.Timings, "timings", "", "timings text")
	cmd.Flags().StringVar(&form.Eligibility, "eligibility", "", "eligibility text")
	cmd.Flags().StringVar(&form.RequiredDocs, "required-docs", "", "required documents text")
	cmd.Flags().StringVar(&form.Latitude, "lat", "", "latitude")
	cmd.Flags().StringVar(&form.Longitude, "lng", "", "longitude")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
