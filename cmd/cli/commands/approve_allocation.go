package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hady-salama/hr-portal/pkg/core/allocation"
	"github.com/hady-salama/hr-portal/pkg/core/services"
)

// ApproveAllocationCmd creates the approveAllocation command
func ApproveAllocationCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approveAllocation <preview_file>",
		Short: "Commit a previously saved allocation preview",
		Long: `Load an allocation preview saved by previewAllocation --out and commit
its matched allocations: each allocation is recorded and the corresponding
transfer requests transition to ALLOCATED. The preview is committed exactly
as reviewed - the engine is not re-run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yes, _ := cmd.Flags().GetBool("yes")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read preview file: %w", err)
			}

			var result allocation.Result
			if err := json.Unmarshal(data, &result); err != nil {
				return fmt.Errorf("failed to parse preview file: %w", err)
			}

			app.Logger.Debug("Loaded allocation preview",
				zap.String("allocation_id", result.AllocationID),
				zap.Int("matched", len(result.MatchedAllocations)))

			fmt.Printf("\nAllocation %s\n", result.AllocationID)
			fmt.Printf("  %d matched allocations, fairness score %.2f\n\n",
				len(result.MatchedAllocations), result.FairnessScore)

			if !yes {
				fmt.Print("Commit these allocations? [y/N] ")
				reader := bufio.NewReader(os.Stdin)
				answer, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("failed to read confirmation: %w", err)
				}
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					fmt.Println("Aborted - nothing was committed.")
					return nil
				}
			}

			if err := services.ApproveAllocations(
				app.Ctx, app.Database, app.Logger,
				result.AllocationID, result.MatchedAllocations,
			); err != nil {
				return err
			}

			fmt.Printf("\nCommitted %d allocations.\n", len(result.MatchedAllocations))

			return nil
		},
	}

	cmd.Flags().Bool("yes", false, "Commit without asking for confirmation")

	return cmd
}
