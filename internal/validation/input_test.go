package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/job-qualifier/internal/domain/valueobject"
	"github.com/ignatzorin/job-qualifier/internal/pkg/apperror"
)

func validInput() ApplicantInput {
	return ApplicantInput{
		Degree:        "Bachelor in CS",
		Certification: "None",
		Years: map[string]string{
			FieldPythonYears:       "3",
			FieldDataDevYears:      "1",
			FieldAgileProjectYears: "2",
			FieldManageYears:       "0",
			FieldExpertSystemYears: "0",
			FieldDataArchYears:     "0",
		},
		PythonCoursework: true,
		UsedGit:          true,
	}
}

func TestParseApplicant_Valid(t *testing.T) {
	a, err := ParseApplicant(validInput())
	require.NoError(t, err)

	assert.Equal(t, valueobject.DegreeBachelor, a.Degree)
	assert.Equal(t, valueobject.CertificationNone, a.Certification)
	assert.Equal(t, 3, a.PythonYears)
	assert.Equal(t, 1, a.DataDevYears)
	assert.Equal(t, 2, a.AgileProjectYears)
	assert.True(t, a.PythonCoursework)
	assert.False(t, a.SoftwareEngCoursework)
	assert.True(t, a.UsedGit)
}

func TestParseApplicant_TrimsWhitespace(t *testing.T) {
	in := validInput()
	in.Degree = "  Masters in CS "
	in.Years[FieldManageYears] = " 7\t"

	a, err := ParseApplicant(in)
	require.NoError(t, err)
	assert.Equal(t, valueobject.DegreeMasters, a.Degree)
	assert.Equal(t, 7, a.ManageYears)
}

func TestParseApplicant_YearBounds(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"0", true},
		{"100", true},
		{"-1", false},
		{"101", false},
		{"", false},
		{"abc", false},
		{"2.5", false},
		{"99999999999999999999", false},
	}

	for _, tc := range cases {
		t.Run(tc.value, func(t *testing.T) {
			in := validInput()
			in.Years[FieldDataArchYears] = tc.value

			_, err := ParseApplicant(in)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t,
				[]string{"Years in data architecture and data development must be a whole number from 0 to 100."},
				apperror.Details(err))
		})
	}
}

func TestParseApplicant_CollectsAllErrors(t *testing.T) {
	in := ApplicantInput{
		Degree:        "PhD",
		Certification: "",
		Years: map[string]string{
			FieldPythonYears:       "",
			FieldDataDevYears:      "x",
			FieldAgileProjectYears: "-1",
			FieldManageYears:       "101",
			FieldExpertSystemYears: "5",
		},
	}

	a, err := ParseApplicant(in)
	assert.Nil(t, a)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Equal(t, ErrMessageInvalidApplication, apperror.Message(err))
	assert.Equal(t, []string{
		`Invalid degree value: "PhD". Use exactly one of: Bachelor in CS, Masters in CS, Bachelor and Masters in CS, None.`,
		`Invalid certification value: "(empty)". Use exactly one of: PMI Lean Project Management Certification, None.`,
		"Years of Python development must be a whole number from 0 to 100.",
		"Years of data development must be a whole number from 0 to 100.",
		"Years of Agile project experience must be a whole number from 0 to 100.",
		"Years managing software projects must be a whole number from 0 to 100.",
		"Years in data architecture and data development must be a whole number from 0 to 100.",
	}, apperror.Details(err))
}

func TestParseApplicant_NilYearsMap(t *testing.T) {
	_, err := ParseApplicant(ApplicantInput{Degree: "None", Certification: "None"})
	require.Error(t, err)
	assert.Len(t, apperror.Details(err), len(YearFields()))
}

func TestYearFields_Copy(t *testing.T) {
	fields := YearFields()
	fields[0].Label = "changed"
	assert.Equal(t, "Years of Python development", YearFields()[0].Label)
}
