package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ignatzorin/job-qualifier/internal/domain/entity"
	"github.com/ignatzorin/job-qualifier/internal/pkg/apperror"
	"github.com/ignatzorin/job-qualifier/internal/usecase/qualification"
	"github.com/ignatzorin/job-qualifier/internal/validation"
)

// flagName переводит имя поля формы в имя флага: python_years -> python-years.
func flagName(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func newCheckCommand(checker *qualification.CheckApplicationUseCase) *cobra.Command {
	var (
		asJSON bool
		input  = validation.ApplicantInput{Years: make(map[string]string)}
		years  = make(map[string]*string)
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check an applicant against every position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for key, value := range years {
				input.Years[key] = *value
			}

			eval, err := checker.Execute(cmd.Context(), input)
			if err != nil {
				for _, detail := range apperror.Details(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), "-", detail)
				}
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(eval)
			}
			printEvaluation(cmd.OutOrStdout(), eval)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&input.Degree, flagName(validation.FieldDegree), "", "degree: Bachelor in CS | Masters in CS | Bachelor and Masters in CS | None")
	flags.StringVar(&input.Certification, flagName(validation.FieldCertification), "", "certification: PMI Lean Project Management Certification | None")
	for _, f := range validation.YearFields() {
		years[f.Key] = flags.String(flagName(f.Key), "", f.Label)
	}
	flags.BoolVar(&input.PythonCoursework, flagName(validation.FieldPythonCoursework), false, "completed Python coursework")
	flags.BoolVar(&input.SoftwareEngCoursework, flagName(validation.FieldSoftwareEngCoursework), false, "completed Software Engineering coursework")
	flags.BoolVar(&input.AgileCourse, flagName(validation.FieldAgileCourse), false, "completed an Agile course")
	flags.BoolVar(&input.UsedGit, flagName(validation.FieldUsedGit), false, "has used Git")
	flags.BoolVar(&asJSON, "json", false, "print result as JSON")

	return cmd
}

func printEvaluation(w io.Writer, eval *entity.Evaluation) {
	fmt.Fprintln(w, "Qualified:")
	if len(eval.Qualified) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, r := range eval.Qualified {
		fmt.Fprintf(w, "  %s\n", r.Title)
		printDesired(w, r)
	}

	fmt.Fprintln(w, "Not qualified:")
	if len(eval.NotQualified) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, r := range eval.NotQualified {
		fmt.Fprintf(w, "  %s\n", r.Title)
		for _, msg := range r.Unmet {
			fmt.Fprintf(w, "    - %s\n", msg)
		}
		printDesired(w, r)
	}
}

func printDesired(w io.Writer, r entity.PositionResult) {
	if len(r.MetDesired) > 0 {
		fmt.Fprintf(w, "    desired met: %s\n", strings.Join(r.MetDesired, ", "))
	}
	if len(r.UnmetDesired) > 0 {
		fmt.Fprintf(w, "    desired missing: %s\n", strings.Join(r.UnmetDesired, ", "))
	}
}
