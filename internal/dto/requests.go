package dto

import (
	"bytes"
	"encoding/json"

	"github.com/ignatzorin/job-qualifier/internal/validation"
)

// YearsValue принимает стаж и строкой, и числом. Диапазон проверяет validation.
type YearsValue string

func (v *YearsValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = YearsValue(s)
		return nil
	}
	*v = YearsValue(data)
	return nil
}

// QualificationRequest это тело POST /api/qualifications.
type QualificationRequest struct {
	Degree                string     `json:"degree"`
	Certification         string     `json:"certification"`
	PythonYears           YearsValue `json:"python_years"`
	DataDevYears          YearsValue `json:"data_dev_years"`
	AgileProjectYears     YearsValue `json:"agile_project_years"`
	ManageYears           YearsValue `json:"manage_years"`
	ExpertSystemYears     YearsValue `json:"expert_system_years"`
	DataArchYears         YearsValue `json:"data_arch_years"`
	PythonCoursework      bool       `json:"python_coursework"`
	SoftwareEngCoursework bool       `json:"software_eng_coursework"`
	AgileCourse           bool       `json:"agile_course"`
	UsedGit               bool       `json:"used_git"`
}

// ToInput переводит запрос в сырой ввод для валидации.
func (r QualificationRequest) ToInput() validation.ApplicantInput {
	return validation.ApplicantInput{
		Degree:        r.Degree,
		Certification: r.Certification,
		Years: map[string]string{
			validation.FieldPythonYears:       string(r.PythonYears),
			validation.FieldDataDevYears:      string(r.DataDevYears),
			validation.FieldAgileProjectYears: string(r.AgileProjectYears),
			validation.FieldManageYears:       string(r.ManageYears),
			validation.FieldExpertSystemYears: string(r.ExpertSystemYears),
			validation.FieldDataArchYears:     string(r.DataArchYears),
		},
		PythonCoursework:      r.PythonCoursework,
		SoftwareEngCoursework: r.SoftwareEngCoursework,
		AgileCourse:           r.AgileCourse,
		UsedGit:               r.UsedGit,
	}
}
