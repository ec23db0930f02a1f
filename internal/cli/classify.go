package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/2beens/gymplates/internal/plates"

	"github.com/spf13/cobra"
)

type classifyOutput struct {
	Exercise string `json:"exercise"`
	Barbell  bool   `json:"barbell"`
	Deadlift bool   `json:"deadlift"`
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <exercise name>",
		Short: "Tell whether an exercise is loaded on a barbell",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exercise := strings.Join(args, " ")
			out := classifyOutput{
				Exercise: exercise,
				Barbell:  plates.IsBarbellExercise(exercise),
				Deadlift: plates.IsDeadlift(exercise),
			}

			jsonOutput, _ := cmd.Flags().GetBool("json")
			if jsonOutput {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}

			w := cmd.OutOrStdout()
			switch {
			case out.Deadlift:
				fmt.Fprintf(w, "%s: %s\n", exercise, okColor.Sprint("barbell (deadlift)"))
			case out.Barbell:
				fmt.Fprintf(w, "%s: %s\n", exercise, okColor.Sprint("barbell"))
			default:
				fmt.Fprintf(w, "%s: %s\n", exercise, warnColor.Sprint("not a barbell exercise"))
			}
			return nil
		},
	}
}
