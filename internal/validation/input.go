package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ignatzorin/job-qualifier/internal/domain/entity"
	"github.com/ignatzorin/job-qualifier/internal/domain/valueobject"
	"github.com/ignatzorin/job-qualifier/internal/pkg/apperror"
)

// Константы валидации
const (
	MinYears = 0
	MaxYears = 100
)

// Имена полей формы.
const (
	FieldDegree                = "degree"
	FieldCertification         = "certification"
	FieldPythonYears           = "python_years"
	FieldDataDevYears          = "data_dev_years"
	FieldAgileProjectYears     = "agile_project_years"
	FieldManageYears           = "manage_years"
	FieldExpertSystemYears     = "expert_system_years"
	FieldDataArchYears         = "data_arch_years"
	FieldPythonCoursework      = "python_coursework"
	FieldSoftwareEngCoursework = "software_eng_coursework"
	FieldAgileCourse           = "agile_course"
	FieldUsedGit               = "used_git"
)

// ErrMessageInvalidApplication задаёт общий текст ошибки, детали лежат в AppError.Details.
const ErrMessageInvalidApplication = "application contains invalid values"

// YearField описывает одно поле со стажем.
type YearField struct {
	Key   string
	Label string
	set   func(a *entity.Applicant, years int)
}

var yearFields = []YearField{
	{Key: FieldPythonYears, Label: "Years of Python development", set: func(a *entity.Applicant, v int) { a.PythonYears = v }},
	{Key: FieldDataDevYears, Label: "Years of data development", set: func(a *entity.Applicant, v int) { a.DataDevYears = v }},
	{Key: FieldAgileProjectYears, Label: "Years of Agile project experience", set: func(a *entity.Applicant, v int) { a.AgileProjectYears = v }},
	{Key: FieldManageYears, Label: "Years managing software projects", set: func(a *entity.Applicant, v int) { a.ManageYears = v }},
	{Key: FieldExpertSystemYears, Label: "Years developing Expert Systems", set: func(a *entity.Applicant, v int) { a.ExpertSystemYears = v }},
	{Key: FieldDataArchYears, Label: "Years in data architecture and data development", set: func(a *entity.Applicant, v int) { a.DataArchYears = v }},
}

// YearFields возвращает поля со стажем в порядке формы.
func YearFields() []YearField {
	out := make([]YearField, len(yearFields))
	copy(out, yearFields)
	return out
}

// ApplicantInput хранит сырые значения формы до проверки.
// Years индексируется ключами полей (FieldPythonYears и т.д.).
type ApplicantInput struct {
	Degree        string
	Certification string
	Years         map[string]string

	PythonCoursework      bool
	SoftwareEngCoursework bool
	AgileCourse           bool
	UsedGit               bool
}

// Year возвращает сырое значение поля стажа.
func (in ApplicantInput) Year(key string) string {
	return in.Years[key]
}

// Normalize обрезает пробелы во всех строковых значениях.
func (in ApplicantInput) Normalize() ApplicantInput {
	out := in
	out.Degree = strings.TrimSpace(in.Degree)
	out.Certification = strings.TrimSpace(in.Certification)
	out.Years = make(map[string]string, len(yearFields))
	for _, f := range yearFields {
		out.Years[f.Key] = strings.TrimSpace(in.Years[f.Key])
	}
	return out
}

// ParseApplicant проверяет все поля и собирает все ошибки сразу.
// При любой ошибке соискатель не возвращается.
func ParseApplicant(in ApplicantInput) (*entity.Applicant, error) {
	in = in.Normalize()

	var errs []string
	applicant := &entity.Applicant{
		PythonCoursework:      in.PythonCoursework,
		SoftwareEngCoursework: in.SoftwareEngCoursework,
		AgileCourse:           in.AgileCourse,
		UsedGit:               in.UsedGit,
	}

	degree, err := valueobject.NewDegree(in.Degree)
	if err != nil {
		errs = append(errs, apperror.Message(err))
	}
	applicant.Degree = degree

	cert, err := valueobject.NewCertification(in.Certification)
	if err != nil {
		errs = append(errs, apperror.Message(err))
	}
	applicant.Certification = cert

	for _, f := range yearFields {
		years, err := ValidateYears(f.Label, in.Years[f.Key])
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}
		f.set(applicant, years)
	}

	if len(errs) > 0 {
		return nil, apperror.NewValidation(ErrMessageInvalidApplication, errs)
	}
	return applicant, nil
}

// ValidateYears разбирает стаж: целое десятичное число от MinYears до MaxYears.
func ValidateYears(label, value string) (int, error) {
	years, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || years < MinYears || years > MaxYears {
		return 0, fmt.Errorf("%s must be a whole number from %d to %d.", label, MinYears, MaxYears)
	}
	return years, nil
}
