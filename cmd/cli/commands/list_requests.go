package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hady-salama/hr-portal/pkg/core/model"
	"github.com/hady-salama/hr-portal/pkg/core/services"
)

// ListRequestsCmd creates the listRequests command
func ListRequestsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRequests [status]",
		Short: "List transfer requests, optionally filtered by status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var status model.RequestStatus
			if len(args) > 0 {
				status = model.RequestStatus(strings.ToUpper(args[0]))
			}

			requests, err := services.ListTransferRequests(app.Ctx, app.Database, app.Logger, status)
			if err != nil {
				return err
			}

			if len(requests) == 0 {
				fmt.Println("\nNo transfer requests found.")
				return nil
			}

			fmt.Printf("\nFound %d transfer requests:\n\n", len(requests))
			for _, r := range requests {
				prefs := make([]string, 0, len(r.PreferredUnits))
				for _, p := range r.PreferredUnits {
					prefs = append(prefs, fmt.Sprintf("%d", p.UnitID))
				}
				fmt.Printf("  %-6d %-25s %-12s grade %-3d tenure %4.1fy  units [%s]\n",
					r.TransferID,
					r.EmployeeName,
					r.Status,
					r.GradeID,
					r.TenureYears,
					strings.Join(prefs, ", "),
				)
			}
			fmt.Println()

			return nil
		},
	}
}
