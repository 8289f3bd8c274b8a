package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/job-qualifier/internal/dto"
	"github.com/ignatzorin/job-qualifier/internal/usecase/qualification"
)

func newPositionsCommand(checker *qualification.CheckApplicationUseCase) *cobra.Command {
	return &cobra.Command{
		Use:   "positions",
		Short: "List positions and their requirements",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, p := range dto.NewPositionResponses(checker.Positions()) {
				fmt.Fprintln(out, p.Title)
				for _, r := range p.Required {
					fmt.Fprintf(out, "  required: %s\n", r)
				}
				for _, d := range p.Desired {
					fmt.Fprintf(out, "  desired:  %s\n", d)
				}
			}
		},
	}
}
