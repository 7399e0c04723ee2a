package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hady-salama/hr-portal/pkg/core/services"
)

// PreviewAllocationCmd creates the previewAllocation command
func PreviewAllocationCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "previewAllocation",
		Short: "Run the fair allocation engine without committing anything",
		Long: `Run the weighted multi-criteria allocation over all HR-approved transfer
requests and print the proposed assignments with a fairness report.
Nothing is written to the database - review the preview, then commit it
with approveAllocation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			outPath, _ := cmd.Flags().GetString("out")

			result, err := services.PreviewAllocation(app.Ctx, app.Database, app.Cfg, app.Logger)
			if err != nil {
				return fmt.Errorf("allocation preview failed: %w", err)
			}

			if outPath != "" {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode preview: %w", err)
				}
				if err := os.WriteFile(outPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write preview file: %w", err)
				}
				app.Logger.Info("Preview saved", zap.String("path", outPath))
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			// Display results
			fmt.Printf("\nAllocation Preview\n\n")
			fmt.Printf("Allocation ID:  %s\n", result.AllocationID)
			fmt.Printf("Date:           %s\n", result.AllocationDate.Format("2006-01-02 15:04:05 MST"))
			fmt.Printf("Algorithm:      v%s\n", result.AlgorithmVersion)
			fmt.Printf("Summary:        %s\n\n", result.Summary)

			fmt.Printf("Requests:  %d total, %d matched, %d unmatched\n\n",
				result.TotalRequests, result.MatchedRequests, result.UnmatchedRequests)

			if len(result.MatchedAllocations) > 0 {
				fmt.Printf("Matched Allocations:\n")
				for _, alloc := range result.MatchedAllocations {
					fmt.Printf("  transfer %-6d -> unit %-5d score %6.2f\n",
						alloc.TransferID, alloc.AllocatedUnitID, alloc.Score)
					fmt.Printf("    %s\n", alloc.Reason)
				}
				fmt.Println()
			}

			if len(result.UnmatchedTransferIDs) > 0 {
				fmt.Printf("Unmatched Transfers:\n")
				for _, id := range result.UnmatchedTransferIDs {
					fmt.Printf("  transfer %d\n", id)
				}
				fmt.Println()
			}

			fmt.Printf("Fairness Report:\n")
			fmt.Printf("  Fairness Score:           %.2f\n", result.FairnessScore)
			fmt.Printf("  Preference Satisfaction:  %.2f\n", result.FairnessDetails.PreferenceSatisfaction)
			fmt.Printf("  Experience Distribution:  %.2f\n", result.FairnessDetails.ExperienceDistribution)
			if result.FairnessDetails.GenderBalanceMaintained {
				fmt.Printf("  Gender Balance:           maintained\n")
			} else {
				fmt.Printf("  Gender Balance:           NOT maintained\n")
			}
			fmt.Println()

			if len(result.Recommendations) > 0 {
				fmt.Printf("Recommendations:\n")
				for _, rec := range result.Recommendations {
					fmt.Printf("  - %s\n", rec)
				}
				fmt.Println()
			}

			if outPath != "" {
				fmt.Printf("Preview saved to %s - commit it with:\n", outPath)
				fmt.Printf("  approveAllocation %s\n\n", outPath)
			} else {
				fmt.Println("This was a preview. Re-run with --out <file> to save it for approval.")
			}

			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the full result as JSON")
	cmd.Flags().String("out", "", "Save the preview to a file for later approval")

	return cmd
}
