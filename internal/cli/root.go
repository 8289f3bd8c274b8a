package cli

import (
	"github.com/spf13/cobra"

	"github.com/ignatzorin/job-qualifier/internal/catalog"
	"github.com/ignatzorin/job-qualifier/internal/logger"
	"github.com/ignatzorin/job-qualifier/internal/usecase/qualification"
)

const app = "qualify"

// NewRootCommand собирает CLI. Все команды используют статический каталог позиций.
func NewRootCommand() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:           app,
		Short:         "qualify checks which positions an applicant qualifies for",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := "warn"
			if debug {
				level = "debug"
			}
			logger.Init(level)
			logger.SetTextFormatter()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")

	checker := qualification.NewCheckApplicationUseCase(catalog.Positions())

	rootCmd.AddCommand(newCheckCommand(checker))
	rootCmd.AddCommand(newPositionsCommand(checker))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
