package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/2beens/gymplates/internal/plates"

	"github.com/spf13/cobra"
)

type solveMode string

const (
	solveModeRegular  solveMode = "solve"
	solveModeDeadlift solveMode = "deadlift"
)

type solveOutput struct {
	Total    float64   `json:"total"`
	Bar      float64   `json:"bar"`
	Plates   []float64 `json:"plates"`
	Display  string    `json:"display"`
	Loaded   float64   `json:"loaded"`
	Residual float64   `json:"residual"`
	Exact    bool      `json:"exact"`
}

func newSolveCmd(mode solveMode) *cobra.Command {
	var (
		total      float64
		bar        float64
		plateFlags []string
	)

	cmd := &cobra.Command{
		Use:   string(mode),
		Short: "Show the plates for one side of the bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inventory, err := parsePlates(plateFlags)
			if err != nil {
				return err
			}

			solve := plates.Solve
			if mode == solveModeDeadlift {
				solve = plates.SolveForDeadlift
			}
			solution, err := solve(total, bar, inventory)
			if err != nil {
				return err
			}

			out := solveOutput{
				Total:    total,
				Bar:      bar,
				Plates:   solution.Plates,
				Display:  plates.Format(solution.Plates),
				Loaded:   solution.Loaded(bar),
				Residual: solution.Residual,
				Exact:    solution.Exact(),
			}

			jsonOutput, _ := cmd.Flags().GetBool("json")
			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", titleColor.Sprint("Per side:"), out.Display)
			if out.Exact {
				fmt.Fprintf(w, "%s %s\n", okColor.Sprint("Loaded:"), formatWeight(out.Loaded))
				return nil
			}
			fmt.Fprintf(w, "%s %s (%s per side %s)\n",
				warnColor.Sprint("Loaded:"),
				formatWeight(out.Loaded),
				formatWeight(abs(out.Residual)),
				overOrUnder(out.Residual),
			)
			return nil
		},
	}
	if mode == solveModeDeadlift {
		cmd.Short = "Like solve, but keeps the bar at deadlift height"
	}

	cmd.Flags().Float64Var(&total, "total", 0, "Target total weight, bar included")
	cmd.Flags().Float64Var(&bar, "bar", 45, "Bar weight")
	cmd.Flags().StringArrayVar(&plateFlags, "plate", nil, "Available plates as weight:quantity, repeatable (default inventory when omitted)")
	_ = cmd.MarkFlagRequired("total")

	return cmd
}

// parsePlates reads weight:quantity pairs; quantity counts physical plates.
func parsePlates(values []string) (plates.Inventory, error) {
	inventory := make(plates.Inventory, 0, len(values))
	for _, v := range values {
		weightStr, quantityStr, ok := strings.Cut(v, ":")
		if !ok {
			return nil, fmt.Errorf("invalid plate %q, expected weight:quantity", v)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid plate weight %q: %w", weightStr, err)
		}
		quantity, err := strconv.Atoi(strings.TrimSpace(quantityStr))
		if err != nil {
			return nil, fmt.Errorf("invalid plate quantity %q: %w", quantityStr, err)
		}
		inventory = append(inventory, plates.Plate{Weight: weight, Quantity: quantity})
	}
	return inventory, nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func overOrUnder(residual float64) string {
	if residual < 0 {
		return "over"
	}
	return "short"
}
