package qualification_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/job-qualifier/internal/catalog"
	"github.com/ignatzorin/job-qualifier/internal/domain/entity"
	"github.com/ignatzorin/job-qualifier/internal/metrics"
	"github.com/ignatzorin/job-qualifier/internal/pkg/apperror"
	"github.com/ignatzorin/job-qualifier/internal/usecase/qualification"
	"github.com/ignatzorin/job-qualifier/internal/validation"
)

func projectManagerInput() validation.ApplicantInput {
	return validation.ApplicantInput{
		Degree:        "None",
		Certification: "PMI Lean Project Management Certification",
		Years: map[string]string{
			validation.FieldPythonYears:       "0",
			validation.FieldDataDevYears:      "0",
			validation.FieldAgileProjectYears: "2",
			validation.FieldManageYears:       "3",
			validation.FieldExpertSystemYears: "0",
			validation.FieldDataArchYears:     "0",
		},
	}
}

func titles(results []entity.PositionResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Title)
	}
	return out
}

func TestCheckApplicationUseCase_ProjectManagerQualified(t *testing.T) {
	uc := qualification.NewCheckApplicationUseCase(catalog.Positions())

	eval, err := uc.Execute(context.Background(), projectManagerInput())
	require.NoError(t, err)

	require.Equal(t, []string{catalog.TitleProjectManager}, titles(eval.Qualified))
	assert.Empty(t, eval.Qualified[0].Unmet)
	assert.Equal(t, []string{
		catalog.TitleEntryLevelPythonEngineer,
		catalog.TitlePythonEngineer,
		catalog.TitleSeniorKnowledgeEngineer,
	}, titles(eval.NotQualified))
}

func TestCheckApplicationUseCase_DesiredReported(t *testing.T) {
	in := projectManagerInput()
	in.Degree = "Bachelor in CS"
	in.PythonCoursework = true
	in.SoftwareEngCoursework = true
	in.UsedGit = true

	uc := qualification.NewCheckApplicationUseCase(catalog.Positions())
	eval, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, []string{catalog.TitleEntryLevelPythonEngineer, catalog.TitleProjectManager}, titles(eval.Qualified))
	entry := eval.Qualified[0]
	assert.Empty(t, entry.MetDesired)
	assert.Equal(t, []string{"Agile course"}, entry.UnmetDesired)

	python := eval.NotQualified[0]
	assert.Equal(t, catalog.TitlePythonEngineer, python.Title)
	assert.Equal(t, []string{
		"Needs at least 3 years of Python development",
		"Needs at least 1 year of data development",
	}, python.Unmet)
	assert.Equal(t, []string{"Used Git"}, python.MetDesired)
}

func TestCheckApplicationUseCase_ValidationStopsEvaluation(t *testing.T) {
	in := projectManagerInput()
	in.Years[validation.FieldManageYears] = "101"
	in.Years[validation.FieldPythonYears] = "-1"

	invalidBefore := testutil.ToFloat64(metrics.ApplicationsChecked.WithLabelValues(metrics.OutcomeInvalid))
	errorsBefore := testutil.ToFloat64(metrics.ValidationErrors)

	uc := qualification.NewCheckApplicationUseCase(catalog.Positions())
	eval, err := uc.Execute(context.Background(), in)

	assert.Nil(t, eval)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Len(t, apperror.Details(err), 2)

	assert.Equal(t, invalidBefore+1, testutil.ToFloat64(metrics.ApplicationsChecked.WithLabelValues(metrics.OutcomeInvalid)))
	assert.Equal(t, errorsBefore+2, testutil.ToFloat64(metrics.ValidationErrors))
}

func TestCheckApplicationUseCase_CountsPositionResults(t *testing.T) {
	counter := metrics.PositionResults.WithLabelValues(catalog.TitleProjectManager, metrics.ResultQualified)
	before := testutil.ToFloat64(counter)

	uc := qualification.NewCheckApplicationUseCase(catalog.Positions())
	_, err := uc.Execute(context.Background(), projectManagerInput())
	require.NoError(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestEvaluate_EmptyCatalog(t *testing.T) {
	eval := qualification.Evaluate(nil, &entity.Applicant{})

	assert.NotNil(t, eval.Qualified)
	assert.NotNil(t, eval.NotQualified)
	assert.Empty(t, eval.Qualified)
	assert.Empty(t, eval.NotQualified)
}
